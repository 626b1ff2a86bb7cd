package bintree

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

/*
Attach grafts the whole of t1 as the left subtree and the whole of t2 as
the right subtree of the leaf at p. Either donor may be empty or nil.
Donors are left empty, and positions they handed out become invalid in
every tree. A donor may not be t itself, and the same non-empty tree may
not be given twice.
*/
func (t *Tree[E]) Attach(p Position[E], t1, t2 *Tree[E]) error {
	n, err := t.validate(p)
	if err != nil {
		return err
	}
	if n.kidsCount() != 0 {
		return errors.Wrapf(ErrNotLeaf, "cannot attach under %s", n)
	}
	if t1 == t || t2 == t {
		return errors.Wrap(ErrSelfAttach, "donor is the receiving tree")
	}
	if t1 != nil && t1 == t2 && !t1.IsEmpty() {
		return errors.Wrap(ErrSelfAttach, "same donor given for both sides")
	}

	log := Log.WithFields(logrus.Fields{
		"op": "attach", "node": n,
	})

	if t1 != nil && t1.root != nil {
		n.left = t.adopt(t1, n)
	}
	if t2 != nil && t2.root != nil {
		n.right = t.adopt(t2, n)
	}

	log.WithFields(logrus.Fields{
		"left": n.left, "right": n.right, "size": t.size,
	}).Debug("attached subtrees")

	return nil
}

// adopt empties donor and returns its old root, re-owned by t and
// parented at n.
func (t *Tree[E]) adopt(donor *Tree[E], n *node[E]) *node[E] {
	sub := donor.root
	for m := range walkPreorder(sub) {
		m.owner = t
	}
	sub.parent = n
	t.size += donor.size

	donor.root = nil
	donor.size = 0
	return sub
}
