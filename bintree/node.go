package bintree

import (
	"fmt"
)

type node[E any] struct {
	value  E
	parent *node[E]
	left   *node[E]
	right  *node[E]
	owner  *Tree[E]

	// deleted marks a tombstone left behind by Delete
	deleted bool
}

func newNode[E any](owner *Tree[E], value E, parent *node[E]) *node[E] {
	return &node[E]{
		value:  value,
		parent: parent,
		owner:  owner,
	}
}

func (n *node[E]) kidsCount() (c int) {
	if n == nil {
		return
	}
	if n.left != nil {
		c++
	}
	if n.right != nil {
		c++
	}
	return
}

// onlyKid returns the single child of n, or nil if n has none.
// Callers make sure n does not have two children.
func (n *node[E]) onlyKid() *node[E] {
	if n.left != nil {
		return n.left
	}
	return n.right
}

// replaceKid repoints whichever child slot of n holds old to kid.
func (n *node[E]) replaceKid(old, kid *node[E]) {
	if n.left == old {
		n.left = kid
	} else {
		n.right = kid
	}
}

func (n *node[E]) tombstone() {
	n.deleted = true
	n.parent = nil
	n.left = nil
	n.right = nil
	n.owner = nil
}

// node implements [fmt.Stringer]
func (n *node[E]) String() string {
	if n == nil {
		return "<nil>"
	}
	if s, ok := any(n.value).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", n.value)
}
