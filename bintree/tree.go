// Package bintree implements a linked binary tree that is manipulated
// through Position handles instead of raw node pointers.
//
// A Position stays valid until the node it refers to is deleted or moved
// into another tree by Attach. Operations given an invalid Position fail
// with ErrInvalidPosition and leave the tree untouched.
//
// A Tree is not safe for concurrent use. Callers that share one across
// goroutines must hold a single exclusive lock around every call, and
// must not mutate the tree while a traversal is in progress.
package bintree

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Tree[E any] struct {
	root *node[E]
	size int
}

func New[E any]() *Tree[E] {
	return &Tree[E]{}
}

func (t *Tree[E]) Size() int {
	return t.size
}

func (t *Tree[E]) IsEmpty() bool {
	return t.size == 0
}

// Root returns the root position, or the zero Position if t is empty.
func (t *Tree[E]) Root() Position[E] {
	return t.makePosition(t.root)
}

func (t *Tree[E]) makePosition(n *node[E]) Position[E] {
	if n == nil {
		return Position[E]{}
	}
	return Position[E]{tree: t, node: n}
}

func (t *Tree[E]) validate(p Position[E]) (*node[E], error) {
	switch {
	case p.node == nil:
		return nil, errors.Wrap(ErrInvalidPosition, "zero position")
	case p.tree != t:
		return nil, errors.Wrap(ErrInvalidPosition, "position belongs to another tree")
	case p.node.deleted:
		return nil, errors.Wrap(ErrInvalidPosition, "position was deleted")
	case p.node.owner != t:
		return nil, errors.Wrap(ErrInvalidPosition, "position was attached to another tree")
	}
	return p.node, nil
}

// Validate reports whether p may be used with t.
func (t *Tree[E]) Validate(p Position[E]) error {
	_, err := t.validate(p)
	return err
}

func (t *Tree[E]) Element(p Position[E]) (e E, err error) {
	n, err := t.validate(p)
	if err != nil {
		return e, err
	}
	return n.value, nil
}

func (t *Tree[E]) Parent(p Position[E]) (Position[E], error) {
	n, err := t.validate(p)
	if err != nil {
		return Position[E]{}, err
	}
	return t.makePosition(n.parent), nil
}

func (t *Tree[E]) Left(p Position[E]) (Position[E], error) {
	n, err := t.validate(p)
	if err != nil {
		return Position[E]{}, err
	}
	return t.makePosition(n.left), nil
}

func (t *Tree[E]) Right(p Position[E]) (Position[E], error) {
	n, err := t.validate(p)
	if err != nil {
		return Position[E]{}, err
	}
	return t.makePosition(n.right), nil
}

// Sibling returns the other child of p's parent. The result is the zero
// Position when p is the root or the other slot is empty.
func (t *Tree[E]) Sibling(p Position[E]) (Position[E], error) {
	n, err := t.validate(p)
	if err != nil {
		return Position[E]{}, err
	}
	if n.parent == nil {
		return Position[E]{}, nil
	}
	if n.parent.left == n {
		return t.makePosition(n.parent.right), nil
	}
	return t.makePosition(n.parent.left), nil
}

// Children returns the present children of p, left before right.
func (t *Tree[E]) Children(p Position[E]) ([]Position[E], error) {
	n, err := t.validate(p)
	if err != nil {
		return nil, err
	}
	kids := make([]Position[E], 0, n.kidsCount())
	if n.left != nil {
		kids = append(kids, t.makePosition(n.left))
	}
	if n.right != nil {
		kids = append(kids, t.makePosition(n.right))
	}
	return kids, nil
}

func (t *Tree[E]) NumChildren(p Position[E]) (int, error) {
	n, err := t.validate(p)
	if err != nil {
		return 0, err
	}
	return n.kidsCount(), nil
}

func (t *Tree[E]) IsLeaf(p Position[E]) (bool, error) {
	c, err := t.NumChildren(p)
	return err == nil && c == 0, err
}

func (t *Tree[E]) IsRoot(p Position[E]) (bool, error) {
	n, err := t.validate(p)
	if err != nil {
		return false, err
	}
	return n == t.root, nil
}

// Depth returns the number of ancestors of p.
func (t *Tree[E]) Depth(p Position[E]) (int, error) {
	n, err := t.validate(p)
	if err != nil {
		return 0, err
	}
	d := 0
	for n = n.parent; n != nil; n = n.parent {
		d++
	}
	return d, nil
}

// Height returns the number of edges on the longest downward path
// from p to a leaf.
func (t *Tree[E]) Height(p Position[E]) (int, error) {
	n, err := t.validate(p)
	if err != nil {
		return 0, err
	}
	h := -1
	for level := []*node[E]{n}; len(level) > 0; h++ {
		var next []*node[E]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return h, nil
}

// Tree implements [fmt.Stringer]
func (t *Tree[E]) String() string {
	if t.root == nil {
		return "bintree.Tree()"
	}
	parts := make([]string, 0, t.size)
	for p := range t.Inorder() {
		parts = append(parts, p.node.String())
	}
	return fmt.Sprintf("bintree.Tree(inorder: [%s])", strings.Join(parts, " "))
}
