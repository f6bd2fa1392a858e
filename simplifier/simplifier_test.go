package simplifier

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ayana-dev/dfa2regex/regextree"
)

func str(s string) *regextree.Tree { return regextree.NewString(s) }

func TestSimplifyNil(t *testing.T) {
	require.Nil(t, Simplify(nil))
}

func TestSimplifyAltDedup(t *testing.T) {
	in := regextree.NewAlt(str("a"), str("a"), str("b"))
	got := Simplify(in)
	require.Equal(t, "a|b", got.String())
}

func TestSimplifyAltSubsumedByStar(t *testing.T) {
	// a|a* = a*
	in := regextree.NewAlt(str("a"), regextree.NewStar(str("a")))
	got := Simplify(in)
	require.Equal(t, "a*", got.String())
}

func TestSimplifyAltEpsilonBecomesOpt(t *testing.T) {
	// ε|a = a?
	in := regextree.NewAlt(str(regextree.Epsilon), str("a"))
	got := Simplify(in)
	require.Equal(t, "a?", got.String())
}

func TestSimplifyAltOptSplice(t *testing.T) {
	// a?|b = (a|b)?
	in := regextree.NewAlt(regextree.NewOpt(str("a")), str("b"))
	got := Simplify(in)
	require.Equal(t, "(a|b)?", got.String())
}

func TestSimplifyConcatStarMerge(t *testing.T) {
	// a·a* = a+
	in := regextree.NewConcat(str("a"), regextree.NewStar(str("a")))
	got := Simplify(in)
	require.Equal(t, "a+", got.String())

	// a*·a = a+
	in2 := regextree.NewConcat(regextree.NewStar(str("a")), str("a"))
	got2 := Simplify(in2)
	require.Equal(t, "a+", got2.String())
}

func TestSimplifyConcatOptStarMerge(t *testing.T) {
	// a?·a* = a*
	in := regextree.NewConcat(regextree.NewOpt(str("a")), regextree.NewStar(str("a")))
	got := Simplify(in)
	require.Equal(t, "a*", got.String())
}

func TestSimplifyConcatEpsilonDrop(t *testing.T) {
	// ε·a·ε = a
	in := regextree.NewConcat(str(regextree.Epsilon), str("a"), str(regextree.Epsilon))
	got := Simplify(in)
	require.Equal(t, "a", got.String())
}

func TestSimplifyConcatDistribute(t *testing.T) {
	// a(b|c) = ab|ac
	in := regextree.NewConcat(str("a"), regextree.NewAlt(str("b"), str("c")))
	got := Simplify(in)
	require.Equal(t, "ab|ac", got.String())
}

func TestSimplifyStarOfEpsilon(t *testing.T) {
	got := Simplify(regextree.NewStar(str(regextree.Epsilon)))
	require.True(t, regextree.IsEpsilon(got))
}

func TestSimplifyStarOfStar(t *testing.T) {
	// (a*)* = a*
	got := Simplify(regextree.NewStar(regextree.NewStar(str("a"))))
	require.Equal(t, "a*", got.String())
}

func TestSimplifyPlusOfStar(t *testing.T) {
	// (a*)+ = a*
	got := Simplify(regextree.NewPlus(regextree.NewStar(str("a"))))
	require.Equal(t, "a*", got.String())
}

func TestSimplifyOptOfStar(t *testing.T) {
	// (a*)? = a*
	got := Simplify(regextree.NewOpt(regextree.NewStar(str("a"))))
	require.Equal(t, "a*", got.String())
}

func TestSimplifyNestedAltWrappedInOptFullyCollapses(t *testing.T) {
	// (ε|a)|b simplifies across more than one fixed-point iteration:
	// the first pass turns the inner ALT into a? and splices it into the
	// outer ALT, giving (ALT(a)|b)?; the second pass collapses the
	// single-child inner ALT, giving (a|b)?.
	in := regextree.NewAlt(
		regextree.NewAlt(str(regextree.Epsilon), str("a")),
		str("b"),
	)
	got := Simplify(in)
	require.Equal(t, "(a|b)?", got.String())
}

// TestSimplifyIsIdempotent checks that re-simplifying an already-simplified
// tree never changes it -- the defining property of a fixed point.
func TestSimplifyIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	alphabet := []string{"a", "b", "c"}
	for i := 0; i < 200; i++ {
		tree := randomTree(rng, alphabet, 4)
		once := Simplify(tree)
		twice := Simplify(once)
		require.True(t, regextree.Equal(once, twice), "not idempotent: %s", once.String())
	}
}

// TestSimplifyNeverGrows checks that simplification never increases node
// count, a termination argument's minimal observable consequence.
func TestSimplifyNeverGrows(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alphabet := []string{"a", "b"}
	for i := 0; i < 200; i++ {
		tree := randomTree(rng, alphabet, 4)
		before := regextree.Size(tree)
		after := regextree.Size(Simplify(tree))
		require.LessOrEqual(t, after, before)
	}
}

// TestSimplifyPreservesLanguage checks that simplification never changes
// which words a tree matches: for random trees, Match agrees before and
// after Simplify over every word up to a bounded length.
func TestSimplifyPreservesLanguage(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	alphabet := []string{"a", "b"}
	for i := 0; i < 100; i++ {
		tree := randomTree(rng, alphabet, 3)
		simplified := Simplify(tree)
		for _, w := range wordsUpTo(alphabet, 4) {
			want := regextree.Match(tree, w)
			got := regextree.Match(simplified, w)
			require.Equal(t, want, got, "word %q: tree %s simplified to %s", w, tree.String(), simplified.String())
		}
	}
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

func randomTree(rng *rand.Rand, alphabet []string, depth int) *regextree.Tree {
	if depth <= 0 || rng.Intn(3) == 0 {
		if rng.Intn(4) == 0 {
			return regextree.NewString(regextree.Epsilon)
		}
		return regextree.NewString(alphabet[rng.Intn(len(alphabet))])
	}
	switch rng.Intn(5) {
	case 0:
		n := 2 + rng.Intn(2)
		children := make([]*regextree.Tree, n)
		for i := range children {
			children[i] = randomTree(rng, alphabet, depth-1)
		}
		return regextree.NewAlt(children...)
	case 1:
		n := 2 + rng.Intn(2)
		children := make([]*regextree.Tree, n)
		for i := range children {
			children[i] = randomTree(rng, alphabet, depth-1)
		}
		return regextree.NewConcat(children...)
	case 2:
		return regextree.NewStar(randomTree(rng, alphabet, depth-1))
	case 3:
		return regextree.NewPlus(randomTree(rng, alphabet, depth-1))
	default:
		return regextree.NewOpt(randomTree(rng, alphabet, depth-1))
	}
}
