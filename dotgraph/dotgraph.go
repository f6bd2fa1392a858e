// Package dotgraph renders a DFA as a Graphviz DOT digraph, optionally
// highlighting the edges that contributed to one synthesis step.
//
// Grounded on liran-funaro-nex's nex/graph/graph.go:WriteDotGraph (the
// "ignore Fprintf errors while building the digraph body" style, and
// marking accepting states specially) and on original_source/dfa.py's
// visualize (the three-color, dashed-vs-solid scheme for highlighted
// edges). This package only renders the DOT source; running it through
// a `dot` binary or serving it over HTTP is out of scope here, same as
// it was for the teacher's WriteDotGraph.
package dotgraph

import (
	"fmt"
	"io"
	"strings"

	"github.com/ayana-dev/dfa2regex/automaton"
)

// Edge identifies a DFA edge by its endpoints, for highlighting.
type Edge struct {
	From, To int
}

// Highlight marks which edges contributed to a synthesis step's left
// and right operand. An edge present on both sides draws green/solid;
// left-only draws blue/dashed; right-only draws red/dashed -- the same
// three-way scheme original_source/dfa.py's visualize uses.
type Highlight struct {
	Left  []Edge
	Right []Edge
}

// Write renders d to out as a DOT digraph named "dfa". Accepting states
// draw as double circles; the initial state gets a phantom incoming
// arrow from an empty-label node, following the teacher's convention of
// marking the start node specially.
func Write(out io.Writer, d *automaton.DFA, highlight *Highlight) error {
	accept := make(map[int]bool, len(d.Accept))
	for _, s := range d.Accept {
		accept[s] = true
	}
	left, right := edgeSets(highlight)

	_, _ = fmt.Fprintln(out, "digraph dfa {")
	_, _ = fmt.Fprintln(out, "  rankdir=LR;")
	_, _ = fmt.Fprintln(out, `  "" [shape=plaintext, label=""];`)

	for i := 1; i <= d.States; i++ {
		shape := "circle"
		if accept[i] {
			shape = "doublecircle"
		}
		_, _ = fmt.Fprintf(out, "  z%d [shape=%s];\n", i, shape)
	}
	_, _ = fmt.Fprintf(out, "  \"\" -> z%d;\n", d.Initial)

	for i := 1; i <= d.States; i++ {
		for j := 1; j <= d.States; j++ {
			syms := d.Edges(i, j)
			if len(syms) == 0 {
				continue
			}
			color, style := edgeStyle(Edge{From: i, To: j}, left, right)
			_, _ = fmt.Fprintf(out, "  z%d -> z%d [label=%q, color=%s, style=%s];\n",
				i, j, strings.Join(syms, ", "), color, style)
		}
	}

	_, err := fmt.Fprintln(out, "}")
	return err
}

func edgeStyle(e Edge, left, right map[Edge]bool) (color, style string) {
	switch {
	case left[e] && right[e]:
		return "green", "solid"
	case left[e]:
		return "blue", "dashed"
	case right[e]:
		return "red", "dashed"
	default:
		return "black", "solid"
	}
}

func edgeSets(h *Highlight) (left, right map[Edge]bool) {
	left, right = make(map[Edge]bool), make(map[Edge]bool)
	if h == nil {
		return left, right
	}
	for _, e := range h.Left {
		left[e] = true
	}
	for _, e := range h.Right {
		right[e] = true
	}
	return left, right
}
