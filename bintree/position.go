package bintree

import "fmt"

// Position is a lightweight handle to one node of one Tree. It owns
// nothing and may be copied freely. Two positions are equal iff they
// refer to the same node of the same tree, so == works as expected.
//
// The zero Position means "no node"; accessors return it for an absent
// parent, child or sibling.
type Position[E any] struct {
	tree *Tree[E]
	node *node[E]
}

func (p Position[E]) IsZero() bool {
	return p.node == nil
}

// Position implements [fmt.Stringer]. It prints the payload without
// checking validity and is meant for logs and debugging only.
func (p Position[E]) String() string {
	if p.node == nil {
		return "Position(<nil>)"
	}
	if p.node.deleted {
		return "Position(<deleted>)"
	}
	return fmt.Sprintf("Position(%s)", p.node.String())
}
