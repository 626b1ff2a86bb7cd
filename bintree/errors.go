package bintree

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidPosition is returned when a Position belongs to another
	// tree, was moved out of this tree by Attach, or denotes a deleted node.
	ErrInvalidPosition = errors.New("bintree: invalid position")

	// ErrRootExists is returned by AddRoot on a non-empty tree.
	ErrRootExists = errors.New("bintree: root already exists")

	// ErrChildExists is returned by AddLeft and AddRight when the
	// requested slot is occupied.
	ErrChildExists = errors.New("bintree: child already exists")

	// ErrTwoChildren is returned by Delete on a node with two children.
	ErrTwoChildren = errors.New("bintree: position has two children")

	// ErrNotLeaf is returned by Attach when the target has children.
	ErrNotLeaf = errors.New("bintree: position is not a leaf")

	// ErrSelfAttach is returned by Attach when a donor is the receiving
	// tree or both donors are the same non-empty tree.
	ErrSelfAttach = errors.New("bintree: cannot attach a tree to itself")
)
