package main

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	verbose *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "dfa2regex",
	Short: "Synthesize a regular expression from a deterministic finite automaton",
	Long: `dfa2regex converts a DFA, given as JSON, into an equivalent regular
expression via state elimination, and can show the steps that produced
it or render the automaton as a DOT graph.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if *rootFlags.verbose {
			gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
		}
	},
}

func init() {
	rootFlags.verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command and returns the first error encountered;
// main prints it.
func Execute() error {
	return rootCmd.Execute()
}
