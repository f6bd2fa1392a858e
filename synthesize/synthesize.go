// Package synthesize builds a RegexTree from a validated DFA via the
// classical state-elimination dynamic program:
//
//	a(0,i,i) = ε | (single-symbol labels of the self-loop on i)
//	a(0,i,j) = single-symbol labels on edge i→j                  (i != j)
//	a(k,i,j) = a(k-1,i,j) | a(k-1,i,k) · a(k-1,k,k)* · a(k-1,k,j)
//
// Grounded on original_source/dfa.py's to_regex, including its
// structural-index tie-break shortcuts (cheap and sufficient, not
// necessary, for the underlying algebraic equality -- correctness
// still rests on the simplifier run after each cell is built) and its
// per-cell provenance bookkeeping.
package synthesize

import (
	"github.com/ayana-dev/dfa2regex/automaton"
	"github.com/ayana-dev/dfa2regex/regextree"
	"github.com/ayana-dev/dfa2regex/simplifier"
)

// Edge identifies one DFA transition edge by its endpoints (an edge can
// carry more than one symbol; provenance tracks the edge, not the
// symbol).
type Edge struct {
	From, To int
}

// Cell is one entry a(k,i,j) of the DP table: the simplified tree for
// that cell (nil means the empty language), plus the DFA edges that
// justified the left and right sides of the defining alternation at
// this step. Provenance tracks the step's own structure, not the
// simplified tree -- a cell's edges stay meaningful even after the
// simplifier has rewritten its Tree beyond recognition.
type Cell struct {
	Tree       *regextree.Tree
	LeftEdges  []Edge
	RightEdges []Edge
}

// Table is the full a(k,i,j) table, indexed Table[k][i][j] for
// 0 <= k <= n and 1 <= i,j <= n (index 0 of i/j is unused, keeping the
// DFA's own 1-based state numbering).
type Table [][][]*Cell

// Result is the outcome of synthesizing a regex from a DFA.
type Result struct {
	Table Table
	Final *regextree.Tree
}

// Synthesize runs the DP over d and returns the full table plus the
// assembled final regex.
func Synthesize(d *automaton.DFA) *Result {
	n := d.States
	size := n + 1

	table := make(Table, size)
	for k := 0; k <= n; k++ {
		table[k] = make([][]*Cell, size)
		for i := 0; i <= n; i++ {
			table[k][i] = make([]*Cell, size)
		}
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			table[0][i][j] = baseCell(d, i, j)
		}
	}

	for k := 1; k <= n; k++ {
		for i := 1; i <= n; i++ {
			for j := 1; j <= n; j++ {
				table[k][i][j] = inductiveCell(table, k, i, j)
			}
		}
	}

	return &Result{Table: table, Final: assembleFinal(table, d)}
}

func baseCell(d *automaton.DFA, i, j int) *Cell {
	var tree *regextree.Tree
	if i == j {
		tree = regextree.NewString(regextree.Epsilon)
	}

	syms := d.Edges(i, j)
	if len(syms) > 0 {
		symTree := stringAlt(syms)
		if tree == nil {
			tree = symTree
		} else {
			tree = regextree.NewAlt(tree, symTree)
		}
	}

	cell := &Cell{Tree: tree}
	if tree != nil {
		cell.LeftEdges = []Edge{{From: i, To: j}}
	}
	return cell
}

func stringAlt(syms []string) *regextree.Tree {
	if len(syms) == 1 {
		return regextree.NewString(syms[0])
	}
	parts := make([]*regextree.Tree, len(syms))
	for i, s := range syms {
		parts[i] = regextree.NewString(s)
	}
	return regextree.NewAlt(parts...)
}

func inductiveCell(table Table, k, i, j int) *Cell {
	left := table[k-1][i][j]
	aik := table[k-1][i][k]
	akk := table[k-1][k][k]
	akj := table[k-1][k][j]

	leftEmpty := left.Tree == nil
	rightEmpty := aik.Tree == nil || akk.Tree == nil || akj.Tree == nil

	switch {
	case leftEmpty && rightEmpty:
		return &Cell{}

	case leftEmpty:
		tree := regextree.NewConcat(
			regextree.Clone(aik.Tree),
			regextree.NewStar(regextree.Clone(akk.Tree)),
			regextree.Clone(akj.Tree),
		)
		return &Cell{
			Tree:       simplifier.Simplify(tree),
			LeftEdges:  unionBoth(left),
			RightEdges: unionBoth(aik, akk, akj),
		}

	case rightEmpty:
		return &Cell{
			Tree:      simplifier.Simplify(regextree.Clone(left.Tree)),
			LeftEdges: unionBoth(left),
		}

	default:
		tree := tieBreak(k, i, j, left.Tree, aik.Tree, akk.Tree, akj.Tree)
		return &Cell{
			Tree:       simplifier.Simplify(tree),
			LeftEdges:  unionBoth(left),
			RightEdges: unionBoth(aik, akk, akj),
		}
	}
}

// tieBreak builds the regex for the "both sides present" case, using
// four structural-index shortcuts before falling back to the vanilla
// alternation. The checks compare the DP indices, not the
// trees themselves: by induction two cells at equal indices always
// hold an equal tree, so index equality is a cheap, sufficient (not
// necessary) stand-in for a tree-equality check the simplifier would
// clean up anyway.
func tieBreak(k, i, j int, left, aik, akk, akj *regextree.Tree) *regextree.Tree {
	left = regextree.Clone(left)
	aik = regextree.Clone(aik)
	akk = regextree.Clone(akk)
	akj = regextree.Clone(akj)

	switch {
	case j == k:
		// Rule I: w|w·y*·z = w·(y*·z)?
		return regextree.NewConcat(aik, regextree.NewOpt(regextree.NewConcat(regextree.NewStar(akk), akj)))
	case i == k && j == k:
		// Rule II: x·x*·x = x·x+ (unreachable given the j==k check above
		// always fires first, kept for fidelity with the source algorithm)
		return regextree.NewAlt(left, regextree.NewConcat(aik, regextree.NewPlus(aik)))
	case i == k:
		// Rule III: x·x*·z = x+·z
		return regextree.NewAlt(left, regextree.NewConcat(regextree.NewPlus(aik), akj))
	case j == k:
		// Rule IV: x·y*·y = x·y+ (unreachable for the same reason as II)
		return regextree.NewAlt(left, regextree.NewConcat(aik, regextree.NewPlus(akk)))
	default:
		return regextree.NewAlt(left, regextree.NewConcat(aik, regextree.NewStar(akk), akj))
	}
}

func unionBoth(cells ...*Cell) []Edge {
	var out []Edge
	seen := make(map[Edge]bool)
	for _, c := range cells {
		for _, e := range c.LeftEdges {
			if !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
		for _, e := range c.RightEdges {
			if !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return out
}

func assembleFinal(table Table, d *automaton.DFA) *regextree.Tree {
	n := d.States
	var candidates []*regextree.Tree
	for _, j := range d.Accept {
		if cell := table[n][d.Initial][j]; cell.Tree != nil {
			candidates = append(candidates, cell.Tree)
		}
	}
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return candidates[0]
	default:
		return regextree.NewAlt(candidates...)
	}
}
