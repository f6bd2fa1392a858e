package automaton

import "errors"

// Sentinel errors for DFA construction and simulation, wrapped with
// fmt.Errorf("%w: ...") at the call site to add the offending value --
// the same pattern the teacher's nex.go and nihei9-vartan's
// grammar/semantic_error.go use for their own structured error sets.
var (
	// ErrShape is returned for malformed top-level shape: a non-positive
	// state count.
	ErrShape = errors.New("automaton: malformed DFA shape")

	// ErrDuplicate is returned when the alphabet or the accept list
	// contains a repeated entry.
	ErrDuplicate = errors.New("automaton: duplicate entry")

	// ErrSymbol is returned when an alphabet entry or a transition's
	// input is not a single-character string, or references a symbol
	// outside the declared alphabet.
	ErrSymbol = errors.New("automaton: invalid alphabet symbol")

	// ErrRange is returned when a state number (initial, accept entry,
	// or a transition's start/end) falls outside [1, states].
	ErrRange = errors.New("automaton: state out of range")

	// ErrIncompleteDelta is returned when the transition function
	// doesn't define δ(state, symbol) for some reachable-by-construction
	// state/symbol pair -- this DFA type requires a total transition
	// function, never partial.
	ErrIncompleteDelta = errors.New("automaton: transition function is not fully defined")

	// ErrInput is returned by IsAccepted when a word contains a
	// character outside the DFA's alphabet.
	ErrInput = errors.New("automaton: input contains a symbol outside the alphabet")
)
