package dotgraph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ayana-dev/dfa2regex/automaton"
)

func sampleDFA(t *testing.T) *automaton.DFA {
	t.Helper()
	d, err := automaton.Build(2, []string{"a", "b"}, 1, []int{2}, []automaton.Transition{
		{Start: 1, End: 2, Input: "a"},
		{Start: 1, End: 1, Input: "b"},
		{Start: 2, End: 2, Input: "a"},
		{Start: 2, End: 1, Input: "b"},
	})
	require.NoError(t, err)
	return d
}

func TestWriteContainsStatesAndEdges(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Write(&buf, sampleDFA(t), nil))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "digraph dfa {"))
	require.Contains(t, out, "z1 [shape=circle]")
	require.Contains(t, out, "z2 [shape=doublecircle]")
	require.Contains(t, out, `"" -> z1;`)
	require.Contains(t, out, "z1 -> z2")
}

func TestWriteHighlightsEdges(t *testing.T) {
	var buf strings.Builder
	hl := &Highlight{
		Left:  []Edge{{From: 1, To: 2}},
		Right: []Edge{{From: 2, To: 2}},
	}
	require.NoError(t, Write(&buf, sampleDFA(t), hl))

	out := buf.String()
	require.Contains(t, out, "z1 -> z2 [label=\"a\", color=blue, style=dashed];")
	require.Contains(t, out, "z2 -> z2 [label=\"a\", color=red, style=dashed];")
	require.Contains(t, out, "z1 -> z1 [label=\"b\", color=black, style=solid];")
}
