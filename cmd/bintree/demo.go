package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vancomm/bintree/treealgo"
)

var demoTrees = []struct {
	name   string
	tokens string
}{
	{"sum tree", "44 9 13 4 5 6 7"},
	{"not a sum tree", "10 3 5 1 2"},
	{"nine nodes", "1 2 3 4 5 6 7 _ _ _ _ 8 _ _ 9"},
	{"single node", "42"},
	{"empty", ""},
}

func (a *application) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every algorithm on a few sample trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, demo := range demoTrees {
				if err := a.runDemo(demo.name, demo.tokens); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *application) runDemo(name, tokens string) error {
	fmt.Fprintf(a.out, "%s\n%s\n", name, strings.Repeat("-", len(name)))

	tree, err := a.buildInts(strings.Fields(tokens))
	if err != nil {
		return err
	}
	a.printOrders(tree)

	ok, err := treealgo.IsSumTree(tree)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "sum tree: %t\n", ok)

	fmt.Fprintln(a.out, "paths:")
	if err := a.printPaths(tree); err != nil {
		return err
	}

	if !tree.IsEmpty() {
		var deepest int
		for v := range tree.BreadthFirst() {
			deepest, _ = tree.Element(v)
		}
		fmt.Fprint(a.out, "ancestors of last node in level order: ")
		if err := a.printAncestors(tree, deepest); err != nil {
			return err
		}
	}

	if err := treealgo.ToSumTree(tree); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "as sum tree (inorder): %s\n\n", inorderLine(tree))
	return nil
}
