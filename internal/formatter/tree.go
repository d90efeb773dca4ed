package formatter

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/oakwood-commons/zksim/internal/znode"
)

const (
	// branchMarker precedes each node name in plain output.
	branchMarker = "|- "
	// levelIndent is repeated once per level below the top node.
	levelIndent = "   "
)

// TreeStyle selects how a tree is drawn.
type TreeStyle string

const (
	// TreeStylePlain draws "|- name" lines indented three spaces per level.
	TreeStylePlain TreeStyle = "plain"
	// TreeStyleBox draws box-drawing branches via treeprint.
	TreeStyleBox TreeStyle = "box"
)

// ValidTreeStyles contains all valid tree style values.
var ValidTreeStyles = []TreeStyle{TreeStylePlain, TreeStyleBox}

// ValidateTreeStyle returns an error if the style is invalid.
func ValidateTreeStyle(style string) error {
	if style == "" {
		return nil // empty means use default
	}
	for _, valid := range ValidTreeStyles {
		if TreeStyle(style) == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid tree style %q: valid values are plain, box", style)
}

// NodeLabel formats a node as its name, the parenthesized flag letters when
// any flag is set, and the quoted data when non-empty.
func NodeLabel(n *znode.Node) string {
	var b strings.Builder
	b.WriteString(n.Name)
	if flags := n.Flags(); flags != "" {
		b.WriteString(" (")
		b.WriteString(flags)
		b.WriteString(")")
	}
	if n.Data != "" {
		b.WriteString(` "`)
		b.WriteString(n.Data)
		b.WriteString(`"`)
	}
	return b.String()
}

// FormatTree renders the subtree under n in depth-first preorder. The first
// line is top on its own (the node's path); descendants follow in insertion
// order.
func FormatTree(n *znode.Node, top string, style TreeStyle) string {
	if style == TreeStyleBox {
		tree := treeprint.NewWithRoot(top)
		buildBoxTree(tree, n)
		return tree.String()
	}

	var b strings.Builder
	b.WriteString(top)
	b.WriteString("\n")
	writePlain(&b, n, "")
	return b.String()
}

func writePlain(b *strings.Builder, n *znode.Node, prefix string) {
	for _, c := range n.Children() {
		b.WriteString(prefix)
		b.WriteString(branchMarker)
		b.WriteString(NodeLabel(c))
		b.WriteString("\n")
		writePlain(b, c, prefix+levelIndent)
	}
}

// buildBoxTree adds branches for nodes with children and leaves otherwise.
func buildBoxTree(branch treeprint.Tree, n *znode.Node) {
	for _, c := range n.Children() {
		if c.NumChildren() == 0 {
			branch.AddNode(NodeLabel(c))
			continue
		}
		buildBoxTree(branch.AddBranch(NodeLabel(c)), c)
	}
}
