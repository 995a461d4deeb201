package format

import (
	"fmt"
	"strings"

	"github.com/npillmayer/chronofmt"
	"github.com/npillmayer/chronofmt/symbols"
)

// TextStyle selects the form of localized text output, re-exported
// from the symbols package for client convenience.
type TextStyle = symbols.Style

// Text styles for AppendText.
const (
	StyleFull  TextStyle = symbols.Full
	StyleShort TextStyle = symbols.Short
)

// textElement prints and parses a field value as localized text, e.g.
// month-of-year 1 as "January". Values without a localized name fall
// back to their numeric form.
type textElement struct {
	field *chronofmt.FieldRule
	style TextStyle
}

func (te *textElement) numeric() *numberElement {
	return &numberElement{field: te.field, minWidth: 1, maxWidth: 10, style: SignNormal}
}

func (te *textElement) print(pc *printContext, buf *strings.Builder) error {
	if !pc.src.HasField(te.field) {
		return fieldError(te.field)
	}
	value := pc.src.Field(te.field)
	if text, ok := pc.names.Text(te.field, te.style, value); ok {
		buf.WriteString(text)
		return nil
	}
	return te.numeric().print(pc, buf)
}

func (te *textElement) parse(pc *parseContext, text string, pos int) int {
	checkBounds(text, pos)
	if pc.strict {
		for _, vt := range pc.names.Candidates(te.field, te.style) {
			if n := pc.match(text, pos, vt.Text); n >= 0 {
				pc.setField(te.field, vt.Value)
				return pos + n
			}
		}
		return ^pos
	}
	// lenient: any style matches, longest text wins
	bestLen := -1
	var bestValue int64
	for _, style := range []TextStyle{StyleFull, StyleShort} {
		for _, vt := range pc.names.Candidates(te.field, style) {
			n := pc.match(text, pos, vt.Text)
			if n > bestLen {
				bestLen = n
				bestValue = vt.Value
			}
		}
	}
	if bestLen >= 0 {
		pc.setField(te.field, bestValue)
		return pos + bestLen
	}
	return te.numeric().parse(pc, text, pos)
}

func (te *textElement) describe(sb *strings.Builder) {
	if te.style == StyleFull {
		fmt.Fprintf(sb, "Text(%s)", te.field.Name())
	} else {
		fmt.Fprintf(sb, "Text(%s,%s)", te.field.Name(), te.style)
	}
}
