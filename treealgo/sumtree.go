// Package treealgo holds algorithms that run on top of the public
// bintree API and never reach into its internals.
package treealgo

import (
	"github.com/cockroachdb/errors"
	"github.com/vancomm/bintree/bintree"
	"golang.org/x/exp/constraints"
)

// Number is the payload constraint of the sum-tree algorithms.
type Number interface {
	constraints.Integer | constraints.Float
}

/*
IsSumTree reports whether every internal node of t holds the sum of all
values below it. Leaves are sum trees on their own, and so is the empty
tree. A missing child contributes zero.
*/
func IsSumTree[N Number](t *bintree.Tree[N]) (bool, error) {
	if t.IsEmpty() {
		return true, nil
	}
	ok, _, err := checkSum(t, t.Root())
	return ok, err
}

// checkSum returns whether the subtree at p is a sum tree and, if it is,
// the total of all its values.
func checkSum[N Number](t *bintree.Tree[N], p bintree.Position[N]) (ok bool, total N, err error) {
	if p.IsZero() {
		return true, 0, nil
	}
	v, err := t.Element(p)
	if err != nil {
		return false, 0, err
	}
	kids, err := t.NumChildren(p)
	if err != nil {
		return false, 0, err
	}
	if kids == 0 {
		return true, v, nil
	}

	left, right, err := children(t, p)
	if err != nil {
		return false, 0, err
	}
	okLeft, sumLeft, err := checkSum(t, left)
	if err != nil || !okLeft {
		return false, 0, err
	}
	okRight, sumRight, err := checkSum(t, right)
	if err != nil || !okRight {
		return false, 0, err
	}
	if v != sumLeft+sumRight {
		return false, 0, nil
	}
	return true, v + sumLeft + sumRight, nil
}

/*
ToSumTree rewrites t in place so that every node holds the sum of the
original values of its descendants. Leaves become zero.

	    10                20
	   /  \              /  \
	 -2    6     ->     4    12
	 / \  / \          / \  / \
	8 -4 7   5        0   0 0  0
*/
func ToSumTree[N Number](t *bintree.Tree[N]) error {
	if t.IsEmpty() {
		return nil
	}
	_, err := toSum(t, t.Root())
	return err
}

// toSum converts the subtree at p and returns the sum of its original
// values.
func toSum[N Number](t *bintree.Tree[N], p bintree.Position[N]) (N, error) {
	if p.IsZero() {
		return 0, nil
	}
	left, right, err := children(t, p)
	if err != nil {
		return 0, err
	}
	sumLeft, err := toSum(t, left)
	if err != nil {
		return 0, err
	}
	sumRight, err := toSum(t, right)
	if err != nil {
		return 0, err
	}
	old, err := t.Replace(p, sumLeft+sumRight)
	if err != nil {
		return 0, errors.Wrap(err, "rewriting node")
	}
	return old + sumLeft + sumRight, nil
}

func children[E any](t *bintree.Tree[E], p bintree.Position[E]) (left, right bintree.Position[E], err error) {
	if left, err = t.Left(p); err != nil {
		return
	}
	right, err = t.Right(p)
	return
}
