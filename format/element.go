package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/chronofmt"
)

// Error kinds reported by formatters. Parse mismatches are not among
// them: inside the engine a mismatch travels as a negative position
// and becomes a *ParseError only at the whole-string entry point.
var (
	// ErrUnsupportedField flags printing a field the source holds no value for.
	ErrUnsupportedField = errors.New("field not supported by printing source")
	// ErrSignRejected flags printing a negative value under a sign style forbidding it.
	ErrSignRejected = errors.New("negative value rejected by sign style")
	// ErrValueRange flags printing a value outside its field's range where
	// the representation requires the range (fractions).
	ErrValueRange = errors.New("value out of range for field")
	// ErrPadExceeded flags a padded element whose output exceeds the pad width.
	ErrPadExceeded = errors.New("pad width exceeded")
	// ErrPattern flags a syntax error in a letter-based pattern.
	ErrPattern = errors.New("invalid pattern")
	// ErrDescription flags a syntax error in a description pattern.
	ErrDescription = errors.New("invalid description")
	// ErrUnparsed flags input left over after a successful whole-string parse.
	ErrUnparsed = errors.New("unparsed text remains")
)

func fieldError(f *chronofmt.FieldRule) error {
	return fmt.Errorf("field %s: %w", f.Name(), ErrUnsupportedField)
}

// element is the unit of composition. Implementations are immutable
// after construction; all mutable parse state lives in the context.
//
// parse returns the new position on success. On mismatch it returns
// the bitwise complement of the position at which matching failed,
// consuming nothing. A parse position outside [0, len(text)] is a
// programming error and panics.
type element interface {
	print(pc *printContext, buf *strings.Builder) error
	parse(pc *parseContext, text string, pos int) int
	describe(sb *strings.Builder)
}

func checkBounds(text string, pos int) {
	if pos < 0 || pos > len(text) {
		panic(fmt.Sprintf("format: parse position %d out of range [0,%d]", pos, len(text)))
	}
}

// --- Composite -------------------------------------------------------------

// composite sequences elements. An optional composite rolls back to its
// entry position when any child mismatches, discarding the field values,
// offset and zone its children recorded, and skips printing entirely
// when a child's field is unavailable.
type composite struct {
	elements []element
	optional bool
}

func (cp *composite) print(pc *printContext, buf *strings.Builder) error {
	if cp.optional {
		var tmp strings.Builder
		for _, el := range cp.elements {
			if err := el.print(pc, &tmp); err != nil {
				if errors.Is(err, ErrUnsupportedField) {
					return nil // skip the whole section
				}
				return err
			}
		}
		buf.WriteString(tmp.String())
		return nil
	}
	for _, el := range cp.elements {
		if err := el.print(pc, buf); err != nil {
			return err
		}
	}
	return nil
}

func (cp *composite) parse(pc *parseContext, text string, pos int) int {
	checkBounds(text, pos)
	start := pos
	var frame parseFrame
	if cp.optional {
		frame = pc.snapshot()
	}
	for _, el := range cp.elements {
		p := el.parse(pc, text, pos)
		if p < 0 {
			if cp.optional {
				pc.restore(frame)
				return start
			}
			return p
		}
		pos = p
	}
	return pos
}

func (cp *composite) describe(sb *strings.Builder) {
	if cp.optional {
		sb.WriteByte('[')
	} else {
		sb.WriteByte('(')
	}
	for _, el := range cp.elements {
		el.describe(sb)
	}
	if cp.optional {
		sb.WriteByte(']')
	} else {
		sb.WriteByte(')')
	}
}

// --- Zero-width mode toggles -----------------------------------------------

// caseElement switches the parse context's case sensitivity. Printing
// emits nothing.
type caseElement bool

func (ce caseElement) print(pc *printContext, buf *strings.Builder) error {
	return nil
}

func (ce caseElement) parse(pc *parseContext, text string, pos int) int {
	checkBounds(text, pos)
	pc.caseSensitive = bool(ce)
	return pos
}

func (ce caseElement) describe(sb *strings.Builder) {
	fmt.Fprintf(sb, "ParseCaseSensitive(%t)", bool(ce))
}

// strictElement switches the parse context's strictness. Printing
// emits nothing.
type strictElement bool

func (se strictElement) print(pc *printContext, buf *strings.Builder) error {
	return nil
}

func (se strictElement) parse(pc *parseContext, text string, pos int) int {
	checkBounds(text, pos)
	pc.strict = bool(se)
	return pos
}

func (se strictElement) describe(sb *strings.Builder) {
	fmt.Fprintf(sb, "ParseStrict(%t)", bool(se))
}
