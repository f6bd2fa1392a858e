package simplifier

import "github.com/ayana-dev/dfa2regex/regextree"

// stepAlt applies the ALT rule set to an already-simplified child list, in
// order:
//
//  1. drop duplicate children (first occurrence wins)
//  2. drop a child x when some sibling is x*, x+ or x? (it already matches
//     everything x would)
//  3. ε|X = X? -- if ε is present alongside other children, wrap the rest
//     in OPT
//  4. X?|Y = (X|Y)? -- splice an OPT child's body back into the ALT and
//     wrap the whole thing in OPT
//  5. collapse to the sole child if only one remains
func stepAlt(children []*regextree.Tree) *regextree.Tree {
	children = dedupAlt(children)
	children = dropSubsumed(children)

	if idx := findEpsilon(children); idx >= 0 && len(children) > 1 {
		rest := removeAt(children, idx)
		return regextree.NewOpt(regextree.NewAlt(rest...))
	}

	if idx := findOpt(children); idx >= 0 && len(children) > 1 {
		rest := make([]*regextree.Tree, len(children))
		copy(rest, children)
		rest[idx] = children[idx].Children[0]
		return regextree.NewOpt(regextree.NewAlt(rest...))
	}

	if len(children) == 1 {
		return children[0]
	}
	return regextree.NewAlt(children...)
}

func dedupAlt(children []*regextree.Tree) []*regextree.Tree {
	out := make([]*regextree.Tree, 0, len(children))
	for _, c := range children {
		dup := false
		for _, o := range out {
			if regextree.Equal(c, o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}

// dropSubsumed removes a non-wrapping child (STRING/ALT/CONCAT) when some
// sibling STAR/PLUS/OPT wraps an equal body. A STAR/PLUS/OPT child is
// never itself a removal candidate, even if it happens to equal another
// sibling's wrapped body.
func dropSubsumed(children []*regextree.Tree) []*regextree.Tree {
	var wrapped []*regextree.Tree
	for _, c := range children {
		if isWrapping(c) {
			wrapped = append(wrapped, c.Children[0])
		}
	}
	if len(wrapped) == 0 {
		return children
	}
	out := make([]*regextree.Tree, 0, len(children))
	for _, c := range children {
		if !isWrapping(c) {
			subsumed := false
			for _, w := range wrapped {
				if regextree.Equal(c, w) {
					subsumed = true
					break
				}
			}
			if subsumed {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

func isWrapping(t *regextree.Tree) bool {
	return t.Tag == regextree.TagStar || t.Tag == regextree.TagPlus || t.Tag == regextree.TagOpt
}

func findEpsilon(children []*regextree.Tree) int {
	for i, c := range children {
		if regextree.IsEpsilon(c) {
			return i
		}
	}
	return -1
}

func findOpt(children []*regextree.Tree) int {
	for i, c := range children {
		if c.Tag == regextree.TagOpt {
			return i
		}
	}
	return -1
}

func removeAt(children []*regextree.Tree, i int) []*regextree.Tree {
	out := make([]*regextree.Tree, 0, len(children)-1)
	out = append(out, children[:i]...)
	out = append(out, children[i+1:]...)
	return out
}
