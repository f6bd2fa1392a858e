package regextree

import (
	"strings"
	"unicode/utf8"
)

// String prints t following these rules: ALT and CONCAT get
// parenthesized when they have more than one child and are not the
// outermost node being printed, except a CONCAT of only STRING children,
// which never needs parentheses. Postfix operators (*, +, ?) print
// immediately after their operand, parenthesizing the operand if it is
// itself an ALT/CONCAT with more than one child, or a STRING literal
// longer than one rune.
//
// String(nil) is "" -- the printed form of the empty-sentinel. Callers
// that display to a user distinguish ∅ themselves (see the CLI, which
// renders it as "Ø").
func (t *Tree) String() string {
	return t.format(true)
}

func (t *Tree) format(outermost bool) string {
	if t == nil {
		return ""
	}
	switch t.Tag {
	case TagString:
		return t.Literal
	case TagAlt, TagConcat:
		parts := make([]string, len(t.Children))
		for i, c := range t.Children {
			parts[i] = c.format(false)
		}
		sep := ""
		if t.Tag == TagAlt {
			sep = "|"
		}
		body := strings.Join(parts, sep)
		if t.Tag == TagConcat && allStrings(t.Children) {
			return body
		}
		if len(t.Children) > 1 && !outermost {
			return "(" + body + ")"
		}
		return body
	case TagStar:
		return t.Children[0].postfixOperand() + "*"
	case TagPlus:
		return t.Children[0].postfixOperand() + "+"
	case TagOpt:
		return t.Children[0].postfixOperand() + "?"
	default:
		return ""
	}
}

// postfixOperand renders t as it should appear immediately before a
// postfix operator, adding parentheses per the rule above. It formats t
// as if it were outermost first, so an ALT/CONCAT doesn't pick up the
// general nesting parentheses on top of the postfix-specific ones.
func (t *Tree) postfixOperand() string {
	inner := t.format(true)
	switch t.Tag {
	case TagAlt, TagConcat:
		if len(t.Children) > 1 && !(t.Tag == TagConcat && allStrings(t.Children)) {
			return "(" + inner + ")"
		}
	case TagString:
		if utf8.RuneCountInString(t.Literal) > 1 {
			return "(" + inner + ")"
		}
	}
	return inner
}

func allStrings(children []*Tree) bool {
	for _, c := range children {
		if c.Tag != TagString {
			return false
		}
	}
	return true
}
