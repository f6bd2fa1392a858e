package simplifier

import "github.com/ayana-dev/dfa2regex/regextree"

// stepStar applies the STAR rules to an already-simplified body:
//
//   - ε* = ε
//   - (ε|X)* = X* -- drop ε from an inner ALT body
//   - (x*)* = (x+)* = (x?)* = x* -- a nested STAR/PLUS/OPT collapses one level
func stepStar(body *regextree.Tree) *regextree.Tree {
	if regextree.IsEpsilon(body) {
		return regextree.NewString(regextree.Epsilon)
	}
	if body.Tag == regextree.TagAlt {
		if idx := findEpsilon(body.Children); idx >= 0 && len(body.Children) > 1 {
			rest := removeAt(body.Children, idx)
			return regextree.NewStar(altOf(rest))
		}
	}
	if isWrapping(body) {
		return regextree.NewStar(body.Children[0])
	}
	return regextree.NewStar(body)
}

// stepPlus applies the PLUS rules to an already-simplified body:
//
//   - ε+ = ε
//   - (x*)+ = (x?)+ = x* -- PLUS over an optional repetition is just the repetition
//   - (x+)+ = x+ -- nested PLUS collapses one level
func stepPlus(body *regextree.Tree) *regextree.Tree {
	if regextree.IsEpsilon(body) {
		return regextree.NewString(regextree.Epsilon)
	}
	if body.Tag == regextree.TagStar || body.Tag == regextree.TagOpt {
		return regextree.NewStar(body.Children[0])
	}
	if body.Tag == regextree.TagPlus {
		return regextree.NewPlus(body.Children[0])
	}
	return regextree.NewPlus(body)
}

// stepOpt applies the OPT rules to an already-simplified body:
//
//   - ε? = ε
//   - (x*)? = x* -- optional repetition is just the repetition
//   - (x?)? = x? -- nested OPT collapses one level
func stepOpt(body *regextree.Tree) *regextree.Tree {
	if regextree.IsEpsilon(body) {
		return regextree.NewString(regextree.Epsilon)
	}
	if body.Tag == regextree.TagStar {
		return regextree.NewStar(body.Children[0])
	}
	if body.Tag == regextree.TagOpt {
		return regextree.NewOpt(body.Children[0])
	}
	return regextree.NewOpt(body)
}

func altOf(children []*regextree.Tree) *regextree.Tree {
	if len(children) == 1 {
		return children[0]
	}
	return regextree.NewAlt(children...)
}
