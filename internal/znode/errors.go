package znode

import "errors"

var (
	// ErrNotFound is returned when a path does not resolve to a node.
	ErrNotFound = errors.New("path not found")
	// ErrNodeExists is returned when create collides with an existing sibling.
	ErrNodeExists = errors.New("node already exists")
	// ErrRootDelete is returned on any attempt to delete the root.
	ErrRootDelete = errors.New("cannot delete root")
)
