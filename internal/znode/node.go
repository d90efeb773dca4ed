// Package znode implements the in-memory hierarchical namespace: named nodes
// holding data and flags, addressed by slash-delimited paths from a single root.
package znode

// RootName is the name and path of the root node.
const RootName = "/"

// Node is a named entity in the tree. Children are kept in insertion order;
// the order drives both sequential numbering and listing.
type Node struct {
	Name string
	Data string
	// Ephemeral is informational only; no session or expiry acts on it.
	Ephemeral bool
	// Sequential records that the name carries a creation-time numeric suffix.
	Sequential bool

	order    []string
	children map[string]*Node
}

// NewNode returns a node with no children.
func NewNode(name, data string, ephemeral, sequential bool) *Node {
	return &Node{
		Name:       name,
		Data:       data,
		Ephemeral:  ephemeral,
		Sequential: sequential,
		children:   map[string]*Node{},
	}
}

// Child returns the named child.
func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.children[name]
	return c, ok
}

// Children returns the children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.order))
	for _, name := range n.order {
		out = append(out, n.children[name])
	}
	return out
}

// ChildNames returns the child names in insertion order.
func (n *Node) ChildNames() []string {
	return append([]string(nil), n.order...)
}

// NumChildren reports the number of immediate children.
func (n *Node) NumChildren() int {
	return len(n.order)
}

// Flags renders the flag annotation letters: "E" and/or "S", or "".
func (n *Node) Flags() string {
	flags := ""
	if n.Ephemeral {
		flags += "E"
	}
	if n.Sequential {
		flags += "S"
	}
	return flags
}

func (n *Node) addChild(c *Node) {
	n.children[c.Name] = c
	n.order = append(n.order, c.Name)
}

func (n *Node) removeChild(name string) bool {
	if _, ok := n.children[name]; !ok {
		return false
	}
	delete(n.children, name)
	for i, o := range n.order {
		if o == name {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
	return true
}
