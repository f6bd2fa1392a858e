package synthesize

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ayana-dev/dfa2regex/automaton"
	"github.com/ayana-dev/dfa2regex/regextree"
)

// A single state with a self-loop on 'a', accepting: the language is a*.
func TestSynthesizeSingleAcceptingIdentity(t *testing.T) {
	d, err := automaton.Build(1, []string{"a"}, 1, []int{1}, []automaton.Transition{
		{Start: 1, End: 1, Input: "a"},
	})
	require.NoError(t, err)

	result := Synthesize(d)
	require.Equal(t, "a*", result.Final.String())
}

// State 1 goes to state 2 on a and b, state 2 loops on a and b, and the
// second state accepts: the language is (a|b)(a|b)*, which simplifies to
// (a|b)+.
func TestSynthesizeTwoStateAlternation(t *testing.T) {
	d, err := automaton.Build(2, []string{"a", "b"}, 1, []int{2}, []automaton.Transition{
		{Start: 1, End: 2, Input: "a"},
		{Start: 1, End: 2, Input: "b"},
		{Start: 2, End: 2, Input: "a"},
		{Start: 2, End: 2, Input: "b"},
	})
	require.NoError(t, err)

	result := Synthesize(d)
	require.Equal(t, "(a|b)+", result.Final.String())
}

// No accepting states: the language is empty, so the result is the
// nil empty-sentinel.
func TestSynthesizeEmptyAccept(t *testing.T) {
	d, err := automaton.Build(2, []string{"a"}, 1, nil, []automaton.Transition{
		{Start: 1, End: 2, Input: "a"},
		{Start: 2, End: 2, Input: "a"},
	})
	require.NoError(t, err)

	result := Synthesize(d)
	require.Nil(t, result.Final)
}

// The only accepting state is unreachable from the initial state: the
// language is still empty, so the result is the nil empty-sentinel.
func TestSynthesizeUnreachableAccept(t *testing.T) {
	d, err := automaton.Build(2, []string{"a"}, 1, []int{2}, []automaton.Transition{
		{Start: 1, End: 1, Input: "a"},
		{Start: 2, End: 2, Input: "a"},
	})
	require.NoError(t, err)

	result := Synthesize(d)
	require.Nil(t, result.Final)
}

// The base layer for a self-looping accepting state should produce the
// ε|a shortcut, which the k=1 layer then folds down to a*.
func TestSynthesizeBaseLayerEpsilonShortcut(t *testing.T) {
	d, err := automaton.Build(1, []string{"a"}, 1, []int{1}, []automaton.Transition{
		{Start: 1, End: 1, Input: "a"},
	})
	require.NoError(t, err)

	result := Synthesize(d)
	base := result.Table[0][1][1].Tree
	require.Equal(t, "ε|a", base.String())

	stepOne := result.Table[1][1][1].Tree
	require.Equal(t, "a*", stepOne.String())
}

// TestSynthesizeDeterministic checks that running synthesis twice on the
// same DFA produces a structurally identical final tree.
func TestSynthesizeDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 30; i++ {
		d := randomDFA(rng, 3, []string{"a", "b"})
		a := Synthesize(d).Final
		b := Synthesize(d).Final
		require.True(t, regextree.Equal(a, b))
	}
}

// TestSynthesizeMatchesAcceptance checks that for random small DFAs,
// DFA.IsAccepted agrees with the synthesized regex's Match over all
// words up to a bounded length.
func TestSynthesizeMatchesAcceptance(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []string{"a", "b"}
	for i := 0; i < 50; i++ {
		d := randomDFA(rng, 3, alphabet)
		final := Synthesize(d).Final
		for _, w := range wordsUpTo(alphabet, 6) {
			want, err := d.IsAccepted(w)
			require.NoError(t, err)
			got := regextree.Match(final, w)
			require.Equal(t, want, got, "word %q over DFA %+v", w, d)
		}
	}
}

// TestSynthesizeTableIsMonotonic checks that allowing one more
// intermediate state (k-1 -> k) never shrinks a cell's language: every
// word R[k-1][i][j] accepts is still accepted by R[k][i][j].
func TestSynthesizeTableIsMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	alphabet := []string{"a", "b"}
	for i := 0; i < 30; i++ {
		d := randomDFA(rng, 3, alphabet)
		table := Synthesize(d).Table
		words := wordsUpTo(alphabet, 5)
		for k := 1; k < len(table); k++ {
			for i := 1; i <= d.States; i++ {
				for j := 1; j <= d.States; j++ {
					prev := table[k-1][i][j].Tree
					cur := table[k][i][j].Tree
					for _, w := range words {
						if regextree.Match(prev, w) {
							require.True(t, regextree.Match(cur, w),
								"k=%d i=%d j=%d: word %q accepted at k-1 but not at k", k, i, j, w)
						}
					}
				}
			}
		}
	}
}

func randomDFA(rng *rand.Rand, n int, alphabet []string) *automaton.DFA {
	var transitions []automaton.Transition
	for i := 1; i <= n; i++ {
		for _, a := range alphabet {
			transitions = append(transitions, automaton.Transition{
				Start: i, End: 1 + rng.Intn(n), Input: a,
			})
		}
	}
	var accept []int
	for i := 1; i <= n; i++ {
		if rng.Intn(2) == 0 {
			accept = append(accept, i)
		}
	}
	d, err := automaton.Build(n, alphabet, 1, accept, transitions)
	if err != nil {
		panic(err)
	}
	return d
}

func wordsUpTo(alphabet []string, maxLen int) []string {
	words := []string{""}
	frontier := []string{""}
	for l := 0; l < maxLen; l++ {
		var next []string
		for _, w := range frontier {
			for _, a := range alphabet {
				next = append(next, w+a)
			}
		}
		words = append(words, next...)
		frontier = next
	}
	return words
}
