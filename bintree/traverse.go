package bintree

import "iter"

// The walks below keep their own stacks so that a degenerate, list-shaped
// tree does not turn into deep native recursion.

func walkPreorder[E any](root *node[E]) iter.Seq[*node[E]] {
	return func(yield func(*node[E]) bool) {
		if root == nil {
			return
		}
		stack := []*node[E]{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			// right goes first so that left is popped first
			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
		}
	}
}

func walkInorder[E any](root *node[E]) iter.Seq[*node[E]] {
	return func(yield func(*node[E]) bool) {
		var (
			stack []*node[E]
			n     = root
		)
		for n != nil || len(stack) > 0 {
			for ; n != nil; n = n.left {
				stack = append(stack, n)
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			n = n.right
		}
	}
}

func walkPostorder[E any](root *node[E]) iter.Seq[*node[E]] {
	return func(yield func(*node[E]) bool) {
		var (
			stack []*node[E]
			last  *node[E]
			n     = root
		)
		for n != nil || len(stack) > 0 {
			if n != nil {
				stack = append(stack, n)
				n = n.left
				continue
			}
			top := stack[len(stack)-1]
			if top.right != nil && top.right != last {
				n = top.right
				continue
			}
			if !yield(top) {
				return
			}
			last = top
			stack = stack[:len(stack)-1]
		}
	}
}

func walkBreadthFirst[E any](root *node[E]) iter.Seq[*node[E]] {
	return func(yield func(*node[E]) bool) {
		if root == nil {
			return
		}
		queue := []*node[E]{root}
		for head := 0; head < len(queue); head++ {
			n := queue[head]
			if !yield(n) {
				return
			}
			if n.left != nil {
				queue = append(queue, n.left)
			}
			if n.right != nil {
				queue = append(queue, n.right)
			}
		}
	}
}

func (t *Tree[E]) positions(walk func(*node[E]) iter.Seq[*node[E]]) iter.Seq[Position[E]] {
	return func(yield func(Position[E]) bool) {
		for n := range walk(t.root) {
			if !yield(t.makePosition(n)) {
				return
			}
		}
	}
}

// Preorder visits a node before its left and then its right subtree.
func (t *Tree[E]) Preorder() iter.Seq[Position[E]] {
	return t.positions(walkPreorder[E])
}

// Inorder visits the left subtree, then the node, then the right subtree.
func (t *Tree[E]) Inorder() iter.Seq[Position[E]] {
	return t.positions(walkInorder[E])
}

// Postorder visits both subtrees, left first, before the node itself.
func (t *Tree[E]) Postorder() iter.Seq[Position[E]] {
	return t.positions(walkPostorder[E])
}

// BreadthFirst visits the tree level by level, left to right.
func (t *Tree[E]) BreadthFirst() iter.Seq[Position[E]] {
	return t.positions(walkBreadthFirst[E])
}

// Positions is the default traversal, inorder.
func (t *Tree[E]) Positions() iter.Seq[Position[E]] {
	return t.Inorder()
}

// Values yields the payloads of t in inorder.
func (t *Tree[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for n := range walkInorder(t.root) {
			if !yield(n.value) {
				return
			}
		}
	}
}

// All yields inorder positions along with their inorder index.
func (t *Tree[E]) All() iter.Seq2[int, Position[E]] {
	return func(yield func(int, Position[E]) bool) {
		i := 0
		for p := range t.Inorder() {
			if !yield(i, p) {
				return
			}
			i++
		}
	}
}
