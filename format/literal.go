package format

import (
	"strings"
	"unicode/utf8"
)

// charLiteral prints and parses one fixed rune.
type charLiteral rune

func (cl charLiteral) print(pc *printContext, buf *strings.Builder) error {
	buf.WriteRune(rune(cl))
	return nil
}

func (cl charLiteral) parse(pc *parseContext, text string, pos int) int {
	checkBounds(text, pos)
	if pos == len(text) {
		return ^pos
	}
	r, size := utf8.DecodeRuneInString(text[pos:])
	if r != rune(cl) {
		if pc.caseSensitive || !runesEqualFold(r, rune(cl)) {
			return ^pos
		}
	}
	return pos + size
}

func (cl charLiteral) describe(sb *strings.Builder) {
	if cl == '\'' {
		sb.WriteString("''")
		return
	}
	sb.WriteByte('\'')
	sb.WriteRune(rune(cl))
	sb.WriteByte('\'')
}

// stringLiteral prints and parses a fixed string. Never empty; the
// builder rejects empty literals.
type stringLiteral string

func (sl stringLiteral) print(pc *printContext, buf *strings.Builder) error {
	buf.WriteString(string(sl))
	return nil
}

func (sl stringLiteral) parse(pc *parseContext, text string, pos int) int {
	checkBounds(text, pos)
	n := pc.match(text, pos, string(sl))
	if n < 0 {
		return ^pos
	}
	return pos + n
}

func (sl stringLiteral) describe(sb *strings.Builder) {
	appendQuoted(sb, string(sl))
}

// appendQuoted writes s wrapped in apostrophes, doubling embedded ones.
func appendQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('\'')
	for _, r := range s {
		if r == '\'' {
			sb.WriteString("''")
		} else {
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('\'')
}
