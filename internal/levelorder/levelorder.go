// Package levelorder builds trees from level-order token lists such as
// "1 2 3 _ 4", where "_" stands for an absent child. Absent nodes do not
// reserve slots for children of their own.
package levelorder

import (
	"iter"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vancomm/bintree/bintree"
)

// Absent marks a missing child in a token list.
const Absent = "_"

// ParseFunc converts one token into a payload.
type ParseFunc[E any] func(string) (E, error)

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

// Tokens splits s on commas and whitespace, dropping empty pieces.
func Tokens(s string) []string {
	var tokens []string
	s = strings.Join(strings.Fields(s), ",")
	for _, piece := range byPiece(s, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			tokens = append(tokens, piece)
		}
	}
	return tokens
}

// Int parses a base-10 integer token.
func Int(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "bad token %q", s)
	}
	return v, nil
}

// String keeps the token as is.
func String(s string) (string, error) {
	return s, nil
}

// Build creates a tree from tokens in level order. An empty token list or
// a leading Absent yields an empty tree.
func Build[E any](tokens []string, parse ParseFunc[E]) (*bintree.Tree[E], error) {
	tree := bintree.New[E]()
	if len(tokens) == 0 || tokens[0] == Absent {
		if len(tokens) > 1 {
			return nil, errors.Newf("token %q has no parent", tokens[1])
		}
		return tree, nil
	}

	v, err := parse(tokens[0])
	if err != nil {
		return nil, err
	}
	root, err := tree.AddRoot(v)
	if err != nil {
		return nil, err
	}

	queue := []bintree.Position[E]{root}
	next := 1
	for head := 0; head < len(queue) && next < len(tokens); head++ {
		parent := queue[head]
		for _, add := range []func(bintree.Position[E], E) (bintree.Position[E], error){
			tree.AddLeft, tree.AddRight,
		} {
			if next >= len(tokens) {
				break
			}
			tok := tokens[next]
			next++
			if tok == Absent {
				continue
			}
			v, err := parse(tok)
			if err != nil {
				return nil, err
			}
			kid, err := add(parent, v)
			if err != nil {
				return nil, err
			}
			queue = append(queue, kid)
		}
	}
	if next < len(tokens) {
		return nil, errors.Newf("token %q has no parent", tokens[next])
	}
	return tree, nil
}

// Ints is a shorthand for Build(Tokens(s), Int).
func Ints(s string) (*bintree.Tree[int], error) {
	return Build(Tokens(s), Int)
}
