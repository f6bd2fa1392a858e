package regextree

// Match reports whether t's language contains word, matching the full
// string (no anchors needed since there is nothing left unmatched once a
// continuation succeeds). Match(nil, word) is always false: nil is ∅.
//
// This is a direct continuation-passing backtracking matcher over the six
// tree cases rather than a compiled automaton -- the inputs this module
// needs to check are short test words and small synthesized regexes, so
// there is no reason to build anything heavier. Regex trees of the sizes
// this package produces never get deep enough to make that a problem.
func Match(t *Tree, word string) bool {
	if t == nil {
		return false
	}
	runes := []rune(word)
	return matchNode(t, runes, func(rest []rune) bool { return len(rest) == 0 })
}

type cont func(rest []rune) bool

func matchNode(t *Tree, s []rune, k cont) bool {
	switch t.Tag {
	case TagString:
		if t.Literal == Epsilon {
			return k(s)
		}
		lit := []rune(t.Literal)
		if len(s) < len(lit) {
			return false
		}
		for i, r := range lit {
			if s[i] != r {
				return false
			}
		}
		return k(s[len(lit):])
	case TagConcat:
		return matchSeq(t.Children, s, k)
	case TagAlt:
		for _, c := range t.Children {
			if matchNode(c, s, k) {
				return true
			}
		}
		return false
	case TagStar:
		return matchStar(t.Children[0], s, k)
	case TagPlus:
		body := t.Children[0]
		return matchNode(body, s, func(rest []rune) bool {
			return matchStar(body, rest, k)
		})
	case TagOpt:
		if matchNode(t.Children[0], s, k) {
			return true
		}
		return k(s)
	default:
		return false
	}
}

func matchSeq(children []*Tree, s []rune, k cont) bool {
	if len(children) == 0 {
		return k(s)
	}
	return matchNode(children[0], s, func(rest []rune) bool {
		return matchSeq(children[1:], rest, k)
	})
}

// matchStar matches zero or more repetitions of body, refusing to repeat
// on a zero-length consumption so an epsilon-matching body can't loop
// forever.
func matchStar(body *Tree, s []rune, k cont) bool {
	if k(s) {
		return true
	}
	return matchNode(body, s, func(rest []rune) bool {
		if len(rest) == len(s) {
			return false
		}
		return matchStar(body, rest, k)
	})
}
