package treealgo

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vancomm/bintree/bintree"
)

// DefaultPathSep separates values in FormatPath output.
const DefaultPathSep = " -> "

// RootToLeafPaths returns the payloads along every root-to-leaf path of
// t, leftmost path first.
func RootToLeafPaths[E any](t *bintree.Tree[E]) ([][]E, error) {
	var paths [][]E
	if t.IsEmpty() {
		return paths, nil
	}
	err := walkPaths(t, t.Root(), nil, func(path []E) {
		paths = append(paths, slices.Clone(path))
	})
	return paths, err
}

func walkPaths[E any](t *bintree.Tree[E], p bintree.Position[E], path []E, emit func([]E)) error {
	if p.IsZero() {
		return nil
	}
	v, err := t.Element(p)
	if err != nil {
		return err
	}
	path = append(path, v)

	kids, err := t.NumChildren(p)
	if err != nil {
		return err
	}
	if kids == 0 {
		emit(path)
		return nil
	}

	left, right, err := children(t, p)
	if err != nil {
		return err
	}
	if err := walkPaths(t, left, path, emit); err != nil {
		return err
	}
	return walkPaths(t, right, path, emit)
}

// FormatPath renders path with sep between values, e.g. "1 -> 2 -> 4".
func FormatPath[E any](path []E, sep string) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, sep)
}
