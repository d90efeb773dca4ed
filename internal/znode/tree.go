package znode

import (
	"fmt"
	"strconv"
)

// Tree owns the root node and implements the path-addressed operations.
// It is not safe for concurrent use.
type Tree struct {
	root *Node
}

// NewTree returns a tree holding only the root.
func NewTree() *Tree {
	return &Tree{root: NewNode(RootName, "", false, false)}
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Resolve walks from the root following each path segment.
func (t *Tree) Resolve(path string) (*Node, error) {
	curr := t.root
	for _, seg := range Split(path) {
		next, ok := curr.Child(seg)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		curr = next
	}
	return curr, nil
}

// CreateOptions holds the optional attributes of a new node.
type CreateOptions struct {
	Data       string
	Ephemeral  bool
	Sequential bool
}

// Create inserts a node at path, creating missing ancestors as empty nodes.
// With Sequential set, the parent's child count plus one is appended to the
// final segment. It returns the stored path of the new node.
//
// Ancestors created on the way are kept even when the final insert fails.
func (t *Tree) Create(path string, opts CreateOptions) (string, error) {
	segs := Split(path)
	if len(segs) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNodeExists, RootName)
	}

	parent := t.root
	for _, seg := range segs[:len(segs)-1] {
		next, ok := parent.Child(seg)
		if !ok {
			next = NewNode(seg, "", false, false)
			parent.addChild(next)
		}
		parent = next
	}

	name := segs[len(segs)-1]
	if opts.Sequential {
		name += strconv.Itoa(parent.NumChildren() + 1)
	}
	stored := Join(append(segs[:len(segs)-1:len(segs)-1], name)...)
	if _, ok := parent.Child(name); ok {
		return "", fmt.Errorf("%w: %s", ErrNodeExists, stored)
	}

	parent.addChild(NewNode(name, opts.Data, opts.Ephemeral, opts.Sequential))
	return stored, nil
}

// List returns the child names of the node at path in insertion order.
func (t *Tree) List(path string) ([]string, error) {
	n, err := t.Resolve(path)
	if err != nil {
		return nil, err
	}
	return n.ChildNames(), nil
}

// Get returns the data held by the node at path.
func (t *Tree) Get(path string) (string, error) {
	n, err := t.Resolve(path)
	if err != nil {
		return "", err
	}
	return n.Data, nil
}

// Set overwrites the data of the node at path.
func (t *Tree) Set(path, data string) error {
	n, err := t.Resolve(path)
	if err != nil {
		return err
	}
	n.Data = data
	return nil
}

// Delete removes the node at path together with its subtree. Unlike Create,
// missing ancestors are an error.
func (t *Tree) Delete(path string) error {
	segs := Split(path)
	if len(segs) == 0 {
		return ErrRootDelete
	}

	parent := t.root
	for _, seg := range segs[:len(segs)-1] {
		next, ok := parent.Child(seg)
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		parent = next
	}
	if !parent.removeChild(segs[len(segs)-1]) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return nil
}

// WalkFunc is called for every node visited by Walk. depth is 0 for the start
// node. Returning false skips the node's children.
type WalkFunc func(n *Node, path string, depth int) bool

// Walk visits the subtree at path in depth-first preorder, children in
// insertion order.
func (t *Tree) Walk(path string, fn WalkFunc) error {
	n, err := t.Resolve(path)
	if err != nil {
		return err
	}
	walk(n, Join(Split(path)...), 0, fn)
	return nil
}

func walk(n *Node, path string, depth int, fn WalkFunc) {
	if !fn(n, path, depth) {
		return
	}
	for _, c := range n.Children() {
		walk(c, Child(path, c.Name), depth+1, fn)
	}
}
