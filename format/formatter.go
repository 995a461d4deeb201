package format

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"

	"github.com/npillmayer/chronofmt"
	"github.com/npillmayer/chronofmt/symbols"
)

// A Formatter prints field values as text and parses text back into
// field values. Formatters are immutable and safe for concurrent use;
// the With… methods derive variants instead of mutating.
type Formatter struct {
	root  *composite
	syms  *symbols.Symbols
	names *symbols.FieldNames
}

// WithSymbols derives a formatter printing and parsing with different
// decimal symbols, e.g. Arabic-Indic digits.
func (f *Formatter) WithSymbols(syms *symbols.Symbols) *Formatter {
	if syms == nil {
		panic("chronofmt/format: symbols must not be nil")
	}
	return &Formatter{root: f.root, syms: syms, names: f.names}
}

// WithLocale derives a formatter localized for a locale: both the
// decimal symbols and the field name table follow the locale.
func (f *Formatter) WithLocale(tag language.Tag) *Formatter {
	return &Formatter{root: f.root, syms: symbols.For(tag), names: symbols.Names(tag)}
}

// Symbols returns the decimal symbols the formatter works with.
func (f *Formatter) Symbols() *symbols.Symbols {
	return f.syms
}

// Format renders the fields of src as text. It fails when src lacks a
// field a non-optional element needs, or a value cannot be expressed
// under an element's sign or width rules.
func (f *Formatter) Format(src chronofmt.FieldSource) (string, error) {
	if src == nil {
		panic("chronofmt/format: source must not be nil")
	}
	pc := &printContext{syms: f.syms, names: f.names, src: src}
	var sb strings.Builder
	for _, el := range f.root.elements {
		if err := el.print(pc, &sb); err != nil {
			T().Debugf("formatting failed: %v", err)
			return "", err
		}
	}
	return sb.String(), nil
}

// FormatTo renders the fields of src into a writer. Nothing is
// written when formatting fails.
func (f *Formatter) FormatTo(src chronofmt.FieldSource, w io.Writer) error {
	s, err := f.Format(src)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("formatted output not written: %w", err)
	}
	return nil
}

// Parse reads the whole of text into field values. Input that
// mismatches, or input left over after the elements are exhausted,
// yields a *ParseError.
func (f *Formatter) Parse(text string) (*Parsed, error) {
	pc := borrowParseContext(f.syms, f.names)
	defer pc.release()
	pos := f.root.parse(pc, text, 0)
	if pos < 0 {
		T().Debugf("parse of %q failed at %d", text, ^pos)
		return nil, &ParseError{Input: text, Pos: ^pos}
	}
	if pos < len(text) {
		T().Debugf("parse of %q left input at %d", text, pos)
		return nil, &ParseError{Input: text, Pos: pos, err: ErrUnparsed}
	}
	return pc.harvest(), nil
}

// ParseAt reads text starting at position pos, not requiring the
// input to be exhausted. On success it returns the parsed values and
// the position after the consumed input; on mismatch it returns nil
// and the bitwise complement of the failure position. No error object
// is allocated, which makes ParseAt the right entry point for parsing
// embedded in larger scanners.
func (f *Formatter) ParseAt(text string, pos int) (*Parsed, int) {
	checkBounds(text, pos)
	pc := borrowParseContext(f.syms, f.names)
	defer pc.release()
	p := f.root.parse(pc, text, pos)
	if p < 0 {
		return nil, p
	}
	return pc.harvest(), p
}

// String returns the formatter's canonical description, parseable by
// Builder.AppendDescription.
func (f *Formatter) String() string {
	var sb strings.Builder
	for _, el := range f.root.elements {
		el.describe(&sb)
	}
	return sb.String()
}

// --- Parse results ---------------------------------------------------------

// Parsed holds the outcome of a parse: the recorded field values plus
// the offset and zone when the formatter's elements captured one. A
// Parsed implements FieldSource, OffsetProvider and ZoneProvider, so
// parse results feed straight back into Format.
//
// Values are as written in the text. The engine does not cross-check
// them against each other or against their field's range; resolving
// them into an actual date is the caller's business.
type Parsed struct {
	fields    chronofmt.FieldMap
	offset    chronofmt.Offset
	hasOffset bool
	zone      string
}

// Fields returns a copy of all recorded field values.
func (p *Parsed) Fields() chronofmt.FieldMap {
	fields := make(chronofmt.FieldMap, len(p.fields))
	for f, v := range p.fields {
		fields[f] = v
	}
	return fields
}

// HasField is part of interface chronofmt.FieldSource.
func (p *Parsed) HasField(f *chronofmt.FieldRule) bool {
	return p.fields.HasField(f)
}

// Field is part of interface chronofmt.FieldSource.
func (p *Parsed) Field(f *chronofmt.FieldRule) int64 {
	return p.fields.Field(f)
}

// Offset is part of interface chronofmt.OffsetProvider.
func (p *Parsed) Offset() (chronofmt.Offset, bool) {
	return p.offset, p.hasOffset
}

// ZoneID is part of interface chronofmt.ZoneProvider.
func (p *Parsed) ZoneID() (string, bool) {
	return p.zone, p.zone != ""
}

// Calendrical copies the parse outcome into a Calendrical value.
func (p *Parsed) Calendrical() *chronofmt.Calendrical {
	c := &chronofmt.Calendrical{FieldMap: make(chronofmt.FieldMap, len(p.fields)), Zone: p.zone}
	for f, v := range p.fields {
		c.FieldMap[f] = v
	}
	if p.hasOffset {
		off := p.offset
		c.Off = &off
	}
	return c
}

// --- Parse errors ----------------------------------------------------------

// ParseError reports where a whole-string parse gave up.
type ParseError struct {
	Input string // the complete input text
	Pos   int    // byte position of the failure
	err   error  // ErrUnparsed for leftover input, nil for a mismatch
}

func (pe *ParseError) Error() string {
	if pe.err != nil {
		return fmt.Sprintf("text '%s' could not be parsed: unparsed text found at index %d",
			abbreviate(pe.Input), pe.Pos)
	}
	return fmt.Sprintf("text '%s' could not be parsed at index %d", abbreviate(pe.Input), pe.Pos)
}

func (pe *ParseError) Unwrap() error {
	return pe.err
}

// Error messages quote at most 64 characters of input.
func abbreviate(s string) string {
	runes := []rune(s)
	if len(runes) <= 64 {
		return s
	}
	return string(runes[:64]) + "..."
}
