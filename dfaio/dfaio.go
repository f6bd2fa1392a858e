// Package dfaio decodes and encodes the JSON wire format for DFAs:
//
//	{
//	  "states": 3,
//	  "alphabet": ["a", "b"],
//	  "initial": 1,
//	  "accept": [3],
//	  "transitions": [
//	    {"start": 1, "end": 2, "input": "a"},
//	    ...
//	  ]
//	}
//
// There is no ecosystem library in the retrieval pack for this specific
// shape, so this package decodes into a plain document struct with
// encoding/json (the only (de)serialization library any example repo
// pulls in at all) and hands the result to automaton.Build for
// validation -- the wire decoder itself does no semantic checking.
package dfaio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ayana-dev/dfa2regex/automaton"
)

// Document is the wire representation of a DFA, before validation.
type Document struct {
	States      int             `json:"states"`
	Alphabet    []string        `json:"alphabet"`
	Initial     int             `json:"initial"`
	Accept      []int           `json:"accept"`
	Transitions []TransitionDoc `json:"transitions"`
}

// TransitionDoc is one entry of Document.Transitions.
type TransitionDoc struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Input string `json:"input"`
}

// Decode reads a Document from r and validates it into an *automaton.DFA.
func Decode(r io.Reader) (*automaton.DFA, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("dfaio: decoding DFA document: %w", err)
	}
	return ToDFA(doc)
}

// ToDFA validates doc into an *automaton.DFA.
func ToDFA(doc Document) (*automaton.DFA, error) {
	transitions := make([]automaton.Transition, len(doc.Transitions))
	for i, t := range doc.Transitions {
		transitions[i] = automaton.Transition{Start: t.Start, End: t.End, Input: t.Input}
	}
	return automaton.Build(doc.States, doc.Alphabet, doc.Initial, doc.Accept, transitions)
}

// Encode writes d to w in the wire format. It reconstructs the
// transitions list from d's alphabet and δ, so a round trip through
// Encode/Decode always produces one transition entry per (state,
// symbol) pair, even if the original document had them in a different
// order.
func Encode(w io.Writer, d *automaton.DFA) error {
	doc := Document{
		States:   d.States,
		Alphabet: d.Alphabet,
		Initial:  d.Initial,
		Accept:   d.Accept,
	}
	for i := 1; i <= d.States; i++ {
		for _, a := range d.Alphabet {
			next, ok := d.Delta(i, a)
			if !ok {
				continue
			}
			doc.Transitions = append(doc.Transitions, TransitionDoc{Start: i, End: next, Input: a})
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("dfaio: encoding DFA document: %w", err)
	}
	return nil
}
