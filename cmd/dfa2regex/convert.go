package main

import (
	"fmt"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"

	"github.com/ayana-dev/dfa2regex/dotgraph"
	"github.com/ayana-dev/dfa2regex/synthesize"
)

var convertFlags = struct {
	dotPath *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "convert [dfa.json]",
		Short:   "Synthesize a regular expression from a DFA",
		Example: `  dfa2regex convert dfa.json --dot dfa.dot`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runConvert,
	}
	convertFlags.dotPath = cmd.Flags().String("dot", "", "also write the DFA as a DOT graph to this path")
	rootCmd.AddCommand(cmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	d, err := loadDFA(args)
	if err != nil {
		return err
	}
	gologger.Verbose().Msgf("loaded DFA with %d states over alphabet %v", d.States, d.Alphabet)

	result := synthesize.Synthesize(d)
	if result.Final == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Ø")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), result.Final.String())
	}

	if *convertFlags.dotPath != "" {
		f, err := os.Create(*convertFlags.dotPath)
		if err != nil {
			return fmt.Errorf("writing DOT graph: %w", err)
		}
		defer f.Close()
		if err := dotgraph.Write(f, d, nil); err != nil {
			return fmt.Errorf("writing DOT graph: %w", err)
		}
		gologger.Info().Msgf("wrote DOT graph to %s", *convertFlags.dotPath)
	}
	return nil
}
