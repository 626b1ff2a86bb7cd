package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/vancomm/bintree/bintree"
	"github.com/vancomm/bintree/treealgo"
)

func (a *application) traverseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "traverse TOKEN...",
		Short: "Print the preorder, inorder, postorder and breadth-first orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.buildInts(args)
			if err != nil {
				return err
			}
			a.printOrders(tree)
			return nil
		},
	}
}

func (a *application) printOrders(tree *bintree.Tree[int]) {
	table := tablewriter.NewWriter(a.out)
	table.SetHeader([]string{"Order", "Values"})
	table.SetAutoWrapText(false)
	for _, order := range []struct {
		name string
		seq  func(func(bintree.Position[int]) bool)
	}{
		{"preorder", tree.Preorder()},
		{"inorder", tree.Inorder()},
		{"postorder", tree.Postorder()},
		{"breadthfirst", tree.BreadthFirst()},
	} {
		var values []string
		for p := range order.seq {
			v, _ := tree.Element(p)
			values = append(values, fmt.Sprint(v))
		}
		table.Append([]string{order.name, strings.Join(values, " ")})
	}
	table.Render()
}

func (a *application) sumTreeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sumtree",
		Short: "Check or build sum trees",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "check TOKEN...",
			Short: "Report whether every inner node equals the sum of the values below it",
			RunE: func(cmd *cobra.Command, args []string) error {
				tree, err := a.buildInts(args)
				if err != nil {
					return err
				}
				ok, err := treealgo.IsSumTree(tree)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, ok)
				return nil
			},
		},
		&cobra.Command{
			Use:   "convert TOKEN...",
			Short: "Replace every node with the sum of the values below it and print it inorder",
			RunE: func(cmd *cobra.Command, args []string) error {
				tree, err := a.buildInts(args)
				if err != nil {
					return err
				}
				if err := treealgo.ToSumTree(tree); err != nil {
					return err
				}
				fmt.Fprintln(a.out, inorderLine(tree))
				return nil
			},
		},
	)
	return cmd
}

func (a *application) pathsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "paths TOKEN...",
		Short: "Print every root-to-leaf path",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.buildInts(args)
			if err != nil {
				return err
			}
			return a.printPaths(tree)
		},
	}
}

func (a *application) printPaths(tree *bintree.Tree[int]) error {
	if tree.IsEmpty() {
		fmt.Fprintln(a.out, "empty tree")
		return nil
	}
	paths, err := treealgo.RootToLeafPaths(tree)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Fprintln(a.out, treealgo.FormatPath(path, a.sep))
	}
	return nil
}

func (a *application) ancestorsCommand() *cobra.Command {
	var of int
	cmd := &cobra.Command{
		Use:   "ancestors --of VALUE TOKEN...",
		Short: "Print the ancestors of a value, nearest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.buildInts(args)
			if err != nil {
				return err
			}
			return a.printAncestors(tree, of)
		},
	}
	cmd.Flags().IntVar(&of, "of", 0, "Value whose ancestors are listed")
	_ = cmd.MarkFlagRequired("of")
	return cmd
}

func (a *application) printAncestors(tree *bintree.Tree[int], of int) error {
	found, err := treealgo.Ancestors(tree, of)
	if err != nil {
		return err
	}
	a.logger.Debug("ancestor lookup", slog.Int("target", of), slog.Int("found", len(found)))
	if len(found) == 0 {
		fmt.Fprintf(a.out, "%d: no ancestors\n", of)
		return nil
	}
	fmt.Fprintf(a.out, "%d: %s\n", of, treealgo.FormatPath(found, ", "))
	return nil
}

func inorderLine(tree *bintree.Tree[int]) string {
	var values []string
	for v := range tree.Values() {
		values = append(values, fmt.Sprint(v))
	}
	return strings.Join(values, " ")
}
