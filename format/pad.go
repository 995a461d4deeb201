package format

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// padElement renders its inner element left-padded to a fixed width.
// On parsing it carves a window of exactly the pad width out of the
// input, strips leading pad characters and requires the inner element
// to consume the window completely.
type padElement struct {
	inner   element
	width   int
	padChar rune
}

func (pe *padElement) print(pc *printContext, buf *strings.Builder) error {
	var tmp strings.Builder
	if err := pe.inner.print(pc, &tmp); err != nil {
		return err
	}
	s := tmp.String()
	n := utf8.RuneCountInString(s)
	if n > pe.width {
		return fmt.Errorf("output of %d chars wider than pad width %d: %w", n, pe.width, ErrPadExceeded)
	}
	for i := n; i < pe.width; i++ {
		buf.WriteRune(pe.padChar)
	}
	buf.WriteString(s)
	return nil
}

func (pe *padElement) parse(pc *parseContext, text string, pos int) int {
	checkBounds(text, pos)
	// locate the window end: width runes from pos
	endPos := pos
	for i := 0; i < pe.width; i++ {
		if endPos == len(text) {
			if pc.strict {
				return ^pos
			}
			break
		}
		_, size := utf8.DecodeRuneInString(text[endPos:])
		endPos += size
	}
	window := text[:endPos]
	p := pos
	for p < endPos {
		r, size := utf8.DecodeRuneInString(window[p:])
		if r != pe.padChar {
			break
		}
		p += size
	}
	// The inner element must end exactly at the window end. If it fails
	// after all pad chars are stripped, retry with pad chars restored one
	// by one -- a '-' pad may well be part of a negative number.
	firstError := 0
	for p >= pos {
		resultPos := pe.inner.parse(pc, window, p)
		if resultPos < 0 {
			if firstError == 0 {
				firstError = resultPos
			}
			if p == pos {
				break
			}
			_, size := utf8.DecodeLastRuneInString(window[:p])
			p -= size
			continue
		}
		if resultPos != endPos {
			return ^pos
		}
		return resultPos
	}
	return firstError
}

func (pe *padElement) describe(sb *strings.Builder) {
	sb.WriteString("Pad(")
	pe.inner.describe(sb)
	fmt.Fprintf(sb, ",%d", pe.width)
	if pe.padChar != ' ' {
		sb.WriteString(",'")
		sb.WriteRune(pe.padChar)
		sb.WriteByte('\'')
	}
	sb.WriteByte(')')
}
