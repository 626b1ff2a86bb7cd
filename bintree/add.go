package bintree

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// AddRoot places v at the root of an empty tree.
func (t *Tree[E]) AddRoot(v E) (Position[E], error) {
	if t.root != nil {
		return Position[E]{}, errors.Wrapf(ErrRootExists, "root is %s", t.root)
	}
	t.root = newNode(t, v, nil)
	t.size = 1

	Log.WithFields(logrus.Fields{
		"op": "addRoot", "root": t.root,
	}).Debug("created new root")

	return t.makePosition(t.root), nil
}

// AddLeft creates a new left child of p holding v.
func (t *Tree[E]) AddLeft(p Position[E], v E) (Position[E], error) {
	return t.addKid(p, v, true)
}

// AddRight creates a new right child of p holding v.
func (t *Tree[E]) AddRight(p Position[E], v E) (Position[E], error) {
	return t.addKid(p, v, false)
}

func (t *Tree[E]) addKid(p Position[E], v E, left bool) (Position[E], error) {
	n, err := t.validate(p)
	if err != nil {
		return Position[E]{}, err
	}

	slot, side := &n.right, "right"
	if left {
		slot, side = &n.left, "left"
	}
	if *slot != nil {
		return Position[E]{}, errors.Wrapf(ErrChildExists, "%s child of %s", side, n)
	}

	*slot = newNode(t, v, n)
	t.size++

	Log.WithFields(logrus.Fields{
		"op": "addKid", "parent": n, "side": side, "kid": *slot, "size": t.size,
	}).Debug("added child")

	return t.makePosition(*slot), nil
}

// Replace swaps the payload at p for v and returns the previous one.
// The shape of the tree does not change.
func (t *Tree[E]) Replace(p Position[E], v E) (old E, err error) {
	n, err := t.validate(p)
	if err != nil {
		return old, err
	}
	old, n.value = n.value, v
	return old, nil
}
