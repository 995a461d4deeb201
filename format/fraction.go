package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/chronofmt"
)

// fractionElement prints a field value as a decimal fraction of its
// range, e.g. nano-of-second 500000000 as ".5". Only fields with a
// fixed range have a well-defined fractional representation; the
// builder enforces that.
type fractionElement struct {
	field    *chronofmt.FieldRule
	minWidth int // 0..9
	maxWidth int // max(1,minWidth)..9
}

func (fe *fractionElement) print(pc *printContext, buf *strings.Builder) error {
	if !pc.src.HasField(fe.field) {
		return fieldError(fe.field)
	}
	value := pc.src.Field(fe.field)
	rng := fe.field.Range()
	if !rng.Contains(value) {
		return fmt.Errorf("field %s: cannot print value %d as fraction: %w",
			fe.field.Name(), value, ErrValueRange)
	}
	// nine fractional digits of (value-min)/span, rounded down
	nine := (value - rng.Min) * pow10[9] / rng.Span()
	digits := fmt.Sprintf("%09d", nine)
	sig := len(strings.TrimRight(digits, "0"))
	if sig == 0 {
		if fe.minWidth > 0 {
			buf.WriteRune(pc.syms.DecimalSeparator)
			for i := 0; i < fe.minWidth; i++ {
				buf.WriteRune(pc.syms.ZeroDigit)
			}
		}
		return nil
	}
	outputScale := sig
	if outputScale < fe.minWidth {
		outputScale = fe.minWidth
	}
	if outputScale > fe.maxWidth {
		outputScale = fe.maxWidth
	}
	buf.WriteRune(pc.syms.DecimalSeparator)
	buf.WriteString(pc.syms.ConvertDigits(digits[:outputScale]))
	return nil
}

func (fe *fractionElement) parse(pc *parseContext, text string, pos int) int {
	checkBounds(text, pos)
	effMin, effMax := fe.minWidth, fe.maxWidth
	if !pc.strict {
		effMin, effMax = 0, 9
	}
	noPoint := pos == len(text)
	if !noPoint {
		r, _ := utf8.DecodeRuneInString(text[pos:])
		noPoint = r != pc.syms.DecimalSeparator
	}
	if noPoint {
		if effMin > 0 {
			return ^pos
		}
		return pos // zero-width success, no value recorded
	}
	_, sepSize := utf8.DecodeRuneInString(text[pos:])
	p := pos + sepSize
	digitsStart := p
	count := 0
	var total int64
	for count < effMax && p < len(text) {
		r, size := utf8.DecodeRuneInString(text[p:])
		d := pc.syms.DigitValue(r)
		if d < 0 {
			break
		}
		total = total*10 + int64(d)
		p += size
		count++
	}
	if count == 0 || count < effMin {
		return ^digitsStart
	}
	rng := fe.field.Range()
	// scale back into the field's native range, independent of how many
	// digits were present
	value := total*rng.Span()/pow10[count] + rng.Min
	pc.setField(fe.field, value)
	return p
}

func (fe *fractionElement) describe(sb *strings.Builder) {
	fmt.Fprintf(sb, "Fraction(%s,%d,%d)", fe.field.Name(), fe.minWidth, fe.maxWidth)
}
