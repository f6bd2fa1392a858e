package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ayana-dev/dfa2regex/stepview"
	"github.com/ayana-dev/dfa2regex/synthesize"
)

var stepsFlags = struct {
	label *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "steps [dfa.json]",
		Short:   "Show the DP step tree, or a single cell's regex by label",
		Example: `  dfa2regex steps dfa.json --label "a(1, 1, 1)"`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runSteps,
	}
	stepsFlags.label = cmd.Flags().String("label", "", `look up a single cell, e.g. "a(1, 2, 3)"`)
	rootCmd.AddCommand(cmd)
}

func runSteps(cmd *cobra.Command, args []string) error {
	d, err := loadDFA(args)
	if err != nil {
		return err
	}

	if *stepsFlags.label != "" {
		k, i, j, err := stepview.ParseLabel(*stepsFlags.label)
		if err != nil {
			return err
		}
		result := synthesize.Synthesize(d)
		if k < 0 || k >= len(result.Table) || i < 1 || i > d.States || j < 1 || j > d.States {
			return fmt.Errorf("steps: label %q is out of range for a %d-state DFA", *stepsFlags.label, d.States)
		}
		cell := result.Table[k][i][j]
		if cell.Tree == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Ø")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), cell.Tree.String())
		}
		return nil
	}

	tree := stepview.BuildTree(d.States, d.Initial, d.Accept)
	printNode(cmd.OutOrStdout(), tree, 0)
	return nil
}

func printNode(w io.Writer, n *stepview.Node, depth int) {
	mark := ""
	if n.Highlight {
		mark = " *"
	}
	fmt.Fprintf(w, "%s%s%s\n", strings.Repeat("  ", depth), n.Label, mark)
	for _, c := range n.Children {
		printNode(w, c, depth+1)
	}
}
