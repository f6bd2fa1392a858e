// Package automaton validates and simulates deterministic finite
// automata: a fixed state count, a single-character alphabet, a total
// transition function, an initial state and a set of accepting states.
//
// Build performs all-or-nothing validation: either every field checks
// out and a usable *DFA comes back, or the first violation is reported
// and nothing is returned. There is no partially-valid DFA.
package automaton

import (
	"fmt"
	"slices"
)

// Transition is one entry of the wire-format transition table: δ(Start,
// Input) = End.
type Transition struct {
	Start int
	End   int
	Input string
}

// DFA is a validated deterministic finite automaton. States are numbered
// 1..States throughout (matching the wire format and the synthesizer's
// 1-indexed DP tables); there is no state 0.
type DFA struct {
	States      int
	Alphabet    []string
	Initial     int
	Accept      []int
	transitions map[int]map[string]int
	edges       map[[2]int][]string
}

// Build validates its arguments and constructs a DFA, or returns the
// first validation failure encountered. Checks run in the order a
// reader would naturally reason about the shape: state count, alphabet,
// initial state, accept states, then the transition table and its
// totality.
func Build(states int, alphabet []string, initial int, accept []int, transitions []Transition) (*DFA, error) {
	if states <= 0 {
		return nil, fmt.Errorf("%w: number of states must be positive, got %d", ErrShape, states)
	}

	seenSymbols := make(map[string]bool, len(alphabet))
	for _, a := range alphabet {
		if len(a) == 0 || len([]rune(a)) != 1 {
			return nil, fmt.Errorf("%w: alphabet entries must be a single character, got %q", ErrSymbol, a)
		}
		if seenSymbols[a] {
			return nil, fmt.Errorf("%w: alphabet contains duplicate symbol %q", ErrDuplicate, a)
		}
		seenSymbols[a] = true
	}

	if initial < 1 || initial > states {
		return nil, fmt.Errorf("%w: initial state %d must be between 1 and %d", ErrRange, initial, states)
	}

	seenAccept := make(map[int]bool, len(accept))
	for _, s := range accept {
		if seenAccept[s] {
			return nil, fmt.Errorf("%w: accept states contain duplicate %d", ErrDuplicate, s)
		}
		seenAccept[s] = true
		if s < 1 || s > states {
			return nil, fmt.Errorf("%w: accept state %d must be between 1 and %d", ErrRange, s, states)
		}
	}

	delta := make(map[int]map[string]int, states)
	for i := 1; i <= states; i++ {
		delta[i] = make(map[string]int, len(alphabet))
	}
	for idx, tr := range transitions {
		if tr.Start < 1 || tr.Start > states {
			return nil, fmt.Errorf("%w: transition %d has start state %d outside 1..%d", ErrRange, idx, tr.Start, states)
		}
		if tr.End < 1 || tr.End > states {
			return nil, fmt.Errorf("%w: transition %d has end state %d outside 1..%d", ErrRange, idx, tr.End, states)
		}
		if len([]rune(tr.Input)) != 1 {
			return nil, fmt.Errorf("%w: transition %d input must be a single character, got %q", ErrSymbol, idx, tr.Input)
		}
		if !seenSymbols[tr.Input] {
			return nil, fmt.Errorf("%w: transition %d input %q is not in the alphabet", ErrSymbol, idx, tr.Input)
		}
		delta[tr.Start][tr.Input] = tr.End
	}

	for i := 1; i <= states; i++ {
		for _, a := range alphabet {
			if _, ok := delta[i][a]; !ok {
				return nil, fmt.Errorf("%w: δ(%d, %q) is missing", ErrIncompleteDelta, i, a)
			}
		}
	}

	edges := make(map[[2]int][]string)
	for i := 1; i <= states; i++ {
		for _, a := range alphabet {
			j := delta[i][a]
			edges[[2]int{i, j}] = append(edges[[2]int{i, j}], a)
		}
	}

	return &DFA{
		States:      states,
		Alphabet:    append([]string(nil), alphabet...),
		Initial:     initial,
		Accept:      append([]int(nil), accept...),
		transitions: delta,
		edges:       edges,
	}, nil
}

// Delta returns δ(state, symbol) and whether it's defined. A validated
// DFA always has it defined for every state/alphabet-symbol pair.
func (d *DFA) Delta(state int, symbol string) (int, bool) {
	next, ok := d.transitions[state][symbol]
	return next, ok
}

// Edges returns the alphabet symbols labeling the edge from i to j, in
// alphabet order. A nil/empty result means there's no edge.
func (d *DFA) Edges(i, j int) []string {
	return d.edges[[2]int{i, j}]
}

// IsAccepted reports whether word is in the language d recognizes. A
// word containing a symbol outside the alphabet is rejected with
// ErrInput first. It then takes the same two shortcuts as the fast paths
// in the original implementation before walking the transition function:
// an automaton with no accepting states recognizes only the empty word,
// and one where every state accepts recognizes everything.
func (d *DFA) IsAccepted(word string) (bool, error) {
	for _, r := range word {
		if sym := string(r); !slices.Contains(d.Alphabet, sym) {
			return false, fmt.Errorf("%w: %q", ErrInput, sym)
		}
	}
	if len(d.Accept) == 0 {
		return word == "", nil
	}
	if len(d.Accept) == d.States {
		return true, nil
	}

	current := d.Initial
	for _, r := range word {
		sym := string(r)
		next, ok := d.transitions[current][sym]
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrInput, sym)
		}
		current = next
	}
	return slices.Contains(d.Accept, current), nil
}
