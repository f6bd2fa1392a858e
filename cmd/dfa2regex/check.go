package main

import (
	"fmt"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"

	"github.com/ayana-dev/dfa2regex/regextree"
	"github.com/ayana-dev/dfa2regex/synthesize"
)

var checkFlags = struct {
	dfaPath *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "check <word>",
		Short:   "Check a word against a DFA and its synthesized regex independently",
		Example: `  dfa2regex check --dfa dfa.json aab`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCheck,
	}
	checkFlags.dfaPath = cmd.Flags().String("dfa", "", "path to the DFA JSON document (default stdin)")
	rootCmd.AddCommand(cmd)
}

// runCheck reports the DFA's acceptance verdict and the synthesized
// regex's match verdict for the same word separately. The source this
// module is modeled on conflates the two -- its sanity-check route
// labels the regex verdict using the DFA's own result instead of the
// regex's actual match -- so a synthesis bug would never surface as a
// mismatch. This command always computes and prints both.
func runCheck(cmd *cobra.Command, args []string) error {
	word := args[0]

	var dfaArgs []string
	if *checkFlags.dfaPath != "" {
		dfaArgs = []string{*checkFlags.dfaPath}
	}
	d, err := loadDFA(dfaArgs)
	if err != nil {
		return err
	}

	automatonVerdict, err := d.IsAccepted(word)
	if err != nil {
		return fmt.Errorf("checking word against DFA: %w", err)
	}

	final := synthesize.Synthesize(d).Final
	regexVerdict := regextree.Match(final, word)

	if automatonVerdict != regexVerdict {
		gologger.Warning().Msgf("verdicts disagree for %q: automaton=%v regex=%v", word, automatonVerdict, regexVerdict)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "automaton: %v\n", automatonVerdict)
	fmt.Fprintf(cmd.OutOrStdout(), "regex:     %v\n", regexVerdict)
	return nil
}
