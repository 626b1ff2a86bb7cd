package treealgo

import "github.com/vancomm/bintree/bintree"

// Ancestors returns the payloads of all ancestors of the first node
// holding target, nearest first. Nodes are searched depth first, left
// subtree before right. The result is empty when target is missing or
// sits at the root.
func Ancestors[E comparable](t *bintree.Tree[E], target E) ([]E, error) {
	var found []E
	if t.IsEmpty() {
		return found, nil
	}
	_, err := findAncestors(t, t.Root(), target, &found)
	return found, err
}

func findAncestors[E comparable](t *bintree.Tree[E], p bintree.Position[E], target E, found *[]E) (bool, error) {
	if p.IsZero() {
		return false, nil
	}
	v, err := t.Element(p)
	if err != nil {
		return false, err
	}
	if v == target {
		return true, nil
	}

	left, right, err := children(t, p)
	if err != nil {
		return false, err
	}
	ok, err := findAncestors(t, left, target, found)
	if err != nil {
		return false, err
	}
	if !ok {
		if ok, err = findAncestors(t, right, target, found); err != nil {
			return false, err
		}
	}
	if ok {
		*found = append(*found, v)
	}
	return ok, nil
}
