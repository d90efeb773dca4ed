package formatter

import (
	"fmt"
	"strings"

	"github.com/oakwood-commons/zksim/internal/znode"
)

// MermaidOptions controls Mermaid diagram output formatting.
type MermaidOptions struct {
	// Direction sets the diagram direction: TD (top-down), LR (left-right),
	// BT (bottom-top), RL (right-left). Default is TD.
	Direction string
	// NoValues hides node data (structure only).
	NoValues bool
}

// ValidMermaidDirections contains all accepted diagram directions.
var ValidMermaidDirections = []string{"TD", "LR", "BT", "RL"}

// ValidateMermaidDirection returns an error if direction is not a Mermaid
// flowchart direction. Empty means the default.
func ValidateMermaidDirection(direction string) error {
	if direction == "" {
		return nil
	}
	for _, valid := range ValidMermaidDirections {
		if direction == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid mermaid direction %q: valid values are %s", direction, strings.Join(ValidMermaidDirections, ", "))
}

// mermaidBuilder tracks state during diagram generation.
type mermaidBuilder struct {
	lines  []string
	nodeID int
	opts   MermaidOptions
}

// FormatAsMermaid renders the subtree under n as a Mermaid flowchart. The top
// node is labelled with top; every descendant gets an edge from its parent.
func FormatAsMermaid(n *znode.Node, top string, opts MermaidOptions) string {
	if opts.Direction == "" {
		opts.Direction = "TD"
	}

	b := &mermaidBuilder{
		lines: []string{fmt.Sprintf("graph %s", opts.Direction)},
		opts:  opts,
	}

	rootID := b.nextID()
	b.addNode(rootID, top)
	b.build(rootID, n)

	return strings.Join(b.lines, "\n") + "\n"
}

// nextID generates a unique node identifier.
func (b *mermaidBuilder) nextID() string {
	id := fmt.Sprintf("n%d", b.nodeID)
	b.nodeID++
	return id
}

func (b *mermaidBuilder) addNode(id, label string) {
	b.lines = append(b.lines, "    "+id+`["`+escapeLabel(label)+`"]`)
}

func (b *mermaidBuilder) addEdge(fromID, toID string) {
	b.lines = append(b.lines, fmt.Sprintf("    %s --> %s", fromID, toID))
}

func (b *mermaidBuilder) build(parentID string, n *znode.Node) {
	for _, c := range n.Children() {
		id := b.nextID()
		label := c.Name
		if !b.opts.NoValues {
			label = NodeLabel(c)
		}
		b.addNode(id, label)
		b.addEdge(parentID, id)
		b.build(id, c)
	}
}

// escapeLabel makes a label safe inside a quoted Mermaid node.
func escapeLabel(label string) string {
	label = strings.ReplaceAll(label, `"`, `'`)
	label = strings.ReplaceAll(label, "\n", " ")
	return strings.ReplaceAll(label, "\r", "")
}
