// Package simplifier implements the fixed-point algebraic rewriter over
// regextree.Tree: roughly twenty Kleene-algebra and emptiness/epsilon
// identities, applied bottom-up until the tree stops changing.
//
// The rewrite system is not confluent and does not define a unique normal
// form -- reordering the rules can change the output. The rule order
// below is fixed and deliberate so results stay stable across runs;
// tests check idempotence, not canonicality.
package simplifier

import "github.com/ayana-dev/dfa2regex/regextree"

// Simplify repeatedly rewrites t until a step leaves it structurally
// unchanged. It never mutates t or any of its descendants -- every rule
// constructs new nodes, following the "retag by construction, not
// mutation" guidance for this kind of tagged variant. Simplify(nil) is
// nil.
func Simplify(t *regextree.Tree) *regextree.Tree {
	if t == nil {
		return nil
	}
	cur := t
	for {
		next := step(cur)
		if regextree.Equal(next, cur) {
			return next
		}
		cur = next
	}
}

// step simplifies all children first, applies the tag-specific rules to
// the current node, then flattens any ALT/CONCAT child that shares its
// parent's tag.
func step(t *regextree.Tree) *regextree.Tree {
	if t == nil || t.Tag == regextree.TagString {
		return t
	}

	children := make([]*regextree.Tree, len(t.Children))
	for i, c := range t.Children {
		children[i] = step(c)
	}

	var result *regextree.Tree
	switch t.Tag {
	case regextree.TagAlt:
		result = stepAlt(children)
	case regextree.TagConcat:
		result = stepConcat(children)
	case regextree.TagStar:
		result = stepStar(children[0])
	case regextree.TagPlus:
		result = stepPlus(children[0])
	case regextree.TagOpt:
		result = stepOpt(children[0])
	}
	return flatten(result)
}

// flatten implements the post-step associativity pass: for ALT and
// CONCAT (the tags with no postfix operator), a child sharing the
// parent's tag has its children spliced into the parent at the same
// position.
func flatten(t *regextree.Tree) *regextree.Tree {
	if t == nil || (t.Tag != regextree.TagAlt && t.Tag != regextree.TagConcat) {
		return t
	}

	var out []*regextree.Tree
	changed := false
	for _, c := range t.Children {
		if c.Tag == t.Tag {
			out = append(out, c.Children...)
			changed = true
		} else {
			out = append(out, c)
		}
	}
	if !changed {
		return t
	}
	if t.Tag == regextree.TagAlt {
		return regextree.NewAlt(out...)
	}
	return regextree.NewConcat(out...)
}
