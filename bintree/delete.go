package bintree

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

/*
Delete removes the node at p and returns its payload. A node with two
children cannot be deleted. If the node has one child, that child is
spliced into the slot the node occupied (becoming the new root if p was
the root). p and every other copy of it are permanently invalid
afterwards.
*/
func (t *Tree[E]) Delete(p Position[E]) (removed E, err error) {
	n, err := t.validate(p)
	if err != nil {
		return removed, err
	}
	if n.kidsCount() == 2 {
		return removed, errors.Wrapf(ErrTwoChildren, "cannot delete %s", n)
	}

	log := Log.WithFields(logrus.Fields{
		"op": "delete", "node": n, "parent": n.parent,
	})

	kid := n.onlyKid()
	if kid != nil {
		kid.parent = n.parent
	}
	if n == t.root {
		t.root = kid
	} else {
		n.parent.replaceKid(n, kid)
	}
	t.size--

	log.WithFields(logrus.Fields{
		"kid": kid, "size": t.size,
	}).Debug("spliced out node")

	removed = n.value
	n.tombstone()
	return removed, nil
}
