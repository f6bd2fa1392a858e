package simplifier

import "github.com/ayana-dev/dfa2regex/regextree"

// stepConcat applies the CONCAT rule set to an already-simplified child
// list, in order:
//
//  1. collapse to the sole child if there's only one
//  2. right-to-left scan: x·x* = x+, x*·x = x+
//  3. left-to-right scan: x?·x* = x*, x*·x? = x*
//  4. left-to-right scan: εε = ε, x*·x* = x*
//  5. left-to-right scan: drop any remaining ε (identity element)
//  6. left-to-right scan: distribute concatenation over an adjacent ALT
//  7. collapse to the sole child if the rules above left just one
func stepConcat(children []*regextree.Tree) *regextree.Tree {
	if len(children) == 1 {
		return children[0]
	}

	children = mergeAdjacentStar(children)
	children = mergeAdjacentOptStar(children)
	children = collapseEpsilonAndStarPairs(children)
	children = dropEpsilon(children)
	children = distributeOverAlt(children)

	if len(children) == 1 {
		return children[0]
	}
	return regextree.NewConcat(children...)
}

// mergeAdjacentStar scans right to left, folding x·x* and x*·x into x+.
func mergeAdjacentStar(children []*regextree.Tree) []*regextree.Tree {
	i := len(children) - 1
	for i > 0 {
		left := children[i-1]
		right := children[i]
		if right.Tag == regextree.TagStar && regextree.Equal(left, right.Children[0]) {
			children = append(children[:i-1], children[i:]...)
			children[i-1] = regextree.NewPlus(right.Children[0])
			i--
			continue
		}
		if left.Tag == regextree.TagStar && regextree.Equal(right, left.Children[0]) {
			children = append(children[:i], children[i+1:]...)
			children[i-1] = regextree.NewPlus(left.Children[0])
			i--
			continue
		}
		i--
	}
	return children
}

// mergeAdjacentOptStar scans left to right, folding x?·x* and x*·x? into x*.
func mergeAdjacentOptStar(children []*regextree.Tree) []*regextree.Tree {
	i := 0
	for i < len(children)-1 {
		left := children[i]
		right := children[i+1]
		if left.Tag == regextree.TagOpt && right.Tag == regextree.TagStar &&
			regextree.Equal(left.Children[0], right.Children[0]) {
			children = append(children[:i], children[i+1:]...)
			continue
		}
		if left.Tag == regextree.TagStar && right.Tag == regextree.TagOpt &&
			regextree.Equal(left.Children[0], right.Children[0]) {
			children = append(children[:i+1], children[i+2:]...)
			continue
		}
		i++
	}
	return children
}

// collapseEpsilonAndStarPairs scans left to right, folding εε into ε and
// x*·x* into x*, keeping the left element of each pair.
func collapseEpsilonAndStarPairs(children []*regextree.Tree) []*regextree.Tree {
	i := 0
	for i < len(children)-1 {
		left := children[i]
		right := children[i+1]
		epsPair := regextree.IsEpsilon(left) && regextree.IsEpsilon(right)
		starPair := left.Tag == regextree.TagStar && right.Tag == regextree.TagStar &&
			regextree.Equal(left.Children[0], right.Children[0])
		if epsPair || starPair {
			children = append(children[:i+1], children[i+2:]...)
			continue
		}
		i++
	}
	return children
}

// dropEpsilon scans left to right, dropping any ε neighbor -- it's the
// concatenation identity.
func dropEpsilon(children []*regextree.Tree) []*regextree.Tree {
	i := 0
	for i < len(children)-1 {
		left := children[i]
		right := children[i+1]
		if regextree.IsEpsilon(left) {
			children = append(children[:i], children[i+1:]...)
			continue
		}
		if regextree.IsEpsilon(right) {
			children = append(children[:i+1], children[i+2:]...)
			continue
		}
		i++
	}
	return children
}

// distributeOverAlt scans left to right: when one neighbor is an ALT and
// the other isn't a postfix-quantified node, it distributes concatenation
// across the ALT's branches: x·(a|b) = xa|xb, (a|b)·x = ax|bx.
func distributeOverAlt(children []*regextree.Tree) []*regextree.Tree {
	i := 0
	for i < len(children)-1 {
		left := children[i]
		right := children[i+1]
		if right.Tag == regextree.TagAlt && !isWrapping(left) {
			parts := make([]*regextree.Tree, len(right.Children))
			for k, e := range right.Children {
				parts[k] = regextree.NewConcat(left, e)
			}
			children = spliceOne(children, i, regextree.NewAlt(parts...))
			continue
		}
		if left.Tag == regextree.TagAlt && !isWrapping(right) {
			parts := make([]*regextree.Tree, len(left.Children))
			for k, e := range left.Children {
				parts[k] = regextree.NewConcat(e, right)
			}
			children = spliceOne(children, i, regextree.NewAlt(parts...))
			continue
		}
		i++
	}
	return children
}

// spliceOne replaces the pair at i, i+1 with a single replacement node.
func spliceOne(children []*regextree.Tree, i int, replacement *regextree.Tree) []*regextree.Tree {
	out := make([]*regextree.Tree, 0, len(children)-1)
	out = append(out, children[:i]...)
	out = append(out, replacement)
	out = append(out, children[i+2:]...)
	return out
}
