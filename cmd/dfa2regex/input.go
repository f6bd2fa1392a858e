package main

import (
	"fmt"
	"os"

	"github.com/ayana-dev/dfa2regex/automaton"
	"github.com/ayana-dev/dfa2regex/dfaio"
)

// loadDFA reads a DFA document from args[0] if given, or from stdin
// otherwise, and validates it.
func loadDFA(args []string) (*automaton.DFA, error) {
	if len(args) == 0 {
		d, err := dfaio.Decode(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading DFA from stdin: %w", err)
		}
		return d, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()

	d, err := dfaio.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("reading DFA from %s: %w", args[0], err)
	}
	return d, nil
}
