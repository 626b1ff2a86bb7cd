package bintree

type nodePair[E any] struct{ x, y *node[E] }

// Identical reports whether a and b have the same shape and equal
// payloads at every node.
func Identical[E comparable](a, b *Tree[E]) bool {
	return IdenticalFunc(a, b, func(x, y E) bool { return x == y })
}

// IdenticalFunc is like Identical but compares payloads with eq.
func IdenticalFunc[E any](a, b *Tree[E], eq func(x, y E) bool) bool {
	if a.size != b.size {
		return false
	}
	stack := []nodePair[E]{{a.root, b.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.x == nil || p.y == nil {
			if p.x != p.y {
				return false
			}
			continue
		}
		if !eq(p.x.value, p.y.value) {
			return false
		}
		stack = append(stack, nodePair[E]{p.x.right, p.y.right}, nodePair[E]{p.x.left, p.y.left})
	}
	return true
}
