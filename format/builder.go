package format

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/npillmayer/chronofmt"
	"github.com/npillmayer/chronofmt/symbols"
)

// A Builder assembles formatter elements into a Formatter. Builders
// are for one-time use: configure, call Build, throw away. Argument
// validation is strict; illegal arguments are programming errors and
// panic.
//
// Appending a fixed-width numeric element directly after another
// numeric element links the two: the earlier element reserves the
// later one's digits during parsing, so "201012" can parse as year
// 2010, month 10, day 12 with a variable-width year. Any non-numeric
// element in between breaks the link.
type Builder struct {
	active     *Builder // innermost open group; only used on the outermost builder
	parent     *Builder // nil on the outermost builder
	optional   bool
	elements   *arraylist.List
	padWidth   int
	padChar    rune
	valueIndex int // index of the head of the current numeric chain, or -1
}

// NewBuilder creates an empty formatter builder.
func NewBuilder() *Builder {
	b := &Builder{elements: arraylist.New(), valueIndex: -1}
	b.active = b
	return b
}

// appendInternal adds an element to the open group, wrapping it in a
// pending pad decoration first. Returns the element's index.
func (b *Builder) appendInternal(e element) int {
	a := b.active
	if a.padWidth > 0 {
		e = &padElement{inner: e, width: a.padWidth, padChar: a.padChar}
		a.padWidth = 0
		a.padChar = 0
	}
	a.elements.Add(e)
	a.valueIndex = -1
	return a.elements.Size() - 1
}

// appendNumeric maintains the adjacent-value chain. fixedMax is the
// element's digit count when it has a fixed width, 0 otherwise.
func (b *Builder) appendNumeric(e element, fixedMax int) {
	a := b.active
	if a.valueIndex >= 0 && fixedMax > 0 {
		idx := a.valueIndex
		if raw, ok := a.elements.Get(idx); ok {
			if head, isNum := raw.(*numberElement); isNum {
				h := *head
				h.subsequentWidth += fixedMax
				b.appendInternal(e)
				a.elements.Set(idx, &h)
				a.valueIndex = idx
				return
			}
		}
	}
	a.valueIndex = b.appendInternal(e)
}

func checkField(f *chronofmt.FieldRule) {
	if f == nil {
		panic("chronofmt/format: field rule must not be nil")
	}
}

// AppendValue appends a variable-width numeric element for a field,
// parsing 1 to 10 digits with an optional leading sign.
func (b *Builder) AppendValue(f *chronofmt.FieldRule) *Builder {
	checkField(f)
	b.appendNumeric(&numberElement{field: f, minWidth: 1, maxWidth: 10, style: SignNormal}, 0)
	return b
}

// AppendValueFixed appends a fixed-width numeric element: exactly
// width digits, zero-padded, no sign.
func (b *Builder) AppendValueFixed(f *chronofmt.FieldRule, width int) *Builder {
	checkField(f)
	if width < 1 || width > 10 {
		panic(fmt.Sprintf("chronofmt/format: illegal width %d, must be 1..10", width))
	}
	b.appendNumeric(&numberElement{field: f, minWidth: width, maxWidth: width, style: SignNotNegative}, width)
	return b
}

// AppendValueStyled appends a numeric element with full control over
// widths and sign handling.
func (b *Builder) AppendValueStyled(f *chronofmt.FieldRule, minWidth, maxWidth int, style SignStyle) *Builder {
	checkField(f)
	if minWidth == maxWidth && style == SignNotNegative {
		return b.AppendValueFixed(f, maxWidth)
	}
	if minWidth < 1 || minWidth > 10 {
		panic(fmt.Sprintf("chronofmt/format: illegal minimum width %d, must be 1..10", minWidth))
	}
	if maxWidth < 1 || maxWidth > 10 {
		panic(fmt.Sprintf("chronofmt/format: illegal maximum width %d, must be 1..10", maxWidth))
	}
	if maxWidth < minWidth {
		panic(fmt.Sprintf("chronofmt/format: maximum width %d less than minimum width %d", maxWidth, minWidth))
	}
	b.appendNumeric(&numberElement{field: f, minWidth: minWidth, maxWidth: maxWidth, style: style}, 0)
	return b
}

// AppendValueReduced appends a reduced-value element: exactly width
// digits interpreted relative to baseValue, so two-digit years around
// a pivot can round-trip.
func (b *Builder) AppendValueReduced(f *chronofmt.FieldRule, width int, baseValue int64) *Builder {
	checkField(f)
	if width < 1 || width > 10 {
		panic(fmt.Sprintf("chronofmt/format: illegal width %d, must be 1..10", width))
	}
	b.appendNumeric(&reducedElement{field: f, width: width, base: baseValue}, width)
	return b
}

// AppendFraction appends a fractional element for a field with a
// fixed value range, e.g. nano-of-second printed as ".5".
func (b *Builder) AppendFraction(f *chronofmt.FieldRule, minWidth, maxWidth int) *Builder {
	checkField(f)
	if !f.Range().Fixed() {
		panic(fmt.Sprintf("chronofmt/format: field %s has no fixed range, cannot be a fraction", f.Name()))
	}
	if minWidth < 0 || minWidth > 9 {
		panic(fmt.Sprintf("chronofmt/format: illegal fraction minimum width %d, must be 0..9", minWidth))
	}
	lower := minWidth
	if lower < 1 {
		lower = 1
	}
	if maxWidth < lower || maxWidth > 9 {
		panic(fmt.Sprintf("chronofmt/format: illegal fraction maximum width %d, must be %d..9", maxWidth, lower))
	}
	b.appendInternal(&fractionElement{field: f, minWidth: minWidth, maxWidth: maxWidth})
	return b
}

// AppendText appends a localized text element in the full style.
func (b *Builder) AppendText(f *chronofmt.FieldRule) *Builder {
	return b.AppendTextStyled(f, StyleFull)
}

// AppendTextStyled appends a localized text element, e.g. "January"
// or "Jan" for month 1 depending on the style.
func (b *Builder) AppendTextStyled(f *chronofmt.FieldRule, style TextStyle) *Builder {
	checkField(f)
	if style != StyleFull && style != StyleShort {
		panic(fmt.Sprintf("chronofmt/format: illegal text style %d", style))
	}
	b.appendInternal(&textElement{field: f, style: style})
	return b
}

// AppendOffsetID appends a UTC offset element in ISO-8601 extended
// form, "Z" for UTC.
func (b *Builder) AppendOffsetID() *Builder {
	return b.AppendOffset("Z", true, true)
}

// AppendOffset appends a UTC offset element. noOffsetText is printed
// for offset zero, includeColon selects "+01:30" over "+0130", and
// allowSeconds enables a seconds part.
func (b *Builder) AppendOffset(noOffsetText string, includeColon, allowSeconds bool) *Builder {
	b.appendInternal(&offsetElement{
		noOffsetText: noOffsetText,
		includeColon: includeColon,
		allowSeconds: allowSeconds,
	})
	return b
}

// AppendZoneID appends a timezone identifier element.
func (b *Builder) AppendZoneID() *Builder {
	b.appendInternal(zoneIDElement{})
	return b
}

// AppendZoneText appends a timezone name element. Until name data is
// registered it prints the zone ID and never parses.
func (b *Builder) AppendZoneText(style TextStyle) *Builder {
	if style != StyleFull && style != StyleShort {
		panic(fmt.Sprintf("chronofmt/format: illegal text style %d", style))
	}
	b.appendInternal(&zoneTextElement{style: style})
	return b
}

// AppendLiteralRune appends a single fixed character.
func (b *Builder) AppendLiteralRune(r rune) *Builder {
	b.appendInternal(charLiteral(r))
	return b
}

// AppendLiteral appends a fixed string. The string must not be empty.
func (b *Builder) AppendLiteral(s string) *Builder {
	if s == "" {
		panic("chronofmt/format: literal must not be empty")
	}
	if len([]rune(s)) == 1 {
		return b.AppendLiteralRune([]rune(s)[0])
	}
	b.appendInternal(stringLiteral(s))
	return b
}

// ParseCaseSensitive makes parsing of all following elements match
// text exactly. This is the initial state of every parse.
func (b *Builder) ParseCaseSensitive() *Builder {
	b.appendInternal(caseElement(true))
	return b
}

// ParseCaseInsensitive makes parsing of all following elements ignore
// case.
func (b *Builder) ParseCaseInsensitive() *Builder {
	b.appendInternal(caseElement(false))
	return b
}

// ParseStrict makes all following elements parse strictly. This is
// the initial state of every parse.
func (b *Builder) ParseStrict() *Builder {
	b.appendInternal(strictElement(true))
	return b
}

// ParseLenient makes all following elements parse leniently: numbers
// accept any sign and any width, text matches any style.
func (b *Builder) ParseLenient() *Builder {
	b.appendInternal(strictElement(false))
	return b
}

// PadNext causes the next appended element to print left-padded with
// spaces to the given width.
func (b *Builder) PadNext(width int) *Builder {
	return b.PadNextWith(width, ' ')
}

// PadNextWith causes the next appended element to print left-padded
// with padChar to the given width.
func (b *Builder) PadNextWith(width int, padChar rune) *Builder {
	if width < 1 {
		panic(fmt.Sprintf("chronofmt/format: illegal pad width %d", width))
	}
	a := b.active
	a.padWidth = width
	a.padChar = padChar
	a.valueIndex = -1
	return b
}

// Append appends all elements of an existing formatter.
func (b *Builder) Append(f *Formatter) *Builder {
	if f == nil {
		panic("chronofmt/format: formatter must not be nil")
	}
	b.appendInternal(&composite{elements: f.root.elements})
	return b
}

// OptionalStart opens an optional section. During printing the whole
// section is skipped when a field is missing; during parsing a failed
// section rolls back and parsing continues after it. Sections nest.
func (b *Builder) OptionalStart() *Builder {
	b.groupStart(true)
	return b
}

// OptionalEnd closes the innermost optional section. It panics when
// no section is open.
func (b *Builder) OptionalEnd() *Builder {
	if b.active.parent == nil {
		panic("chronofmt/format: OptionalEnd without matching OptionalStart")
	}
	b.groupEnd()
	return b
}

func (b *Builder) groupStart(optional bool) {
	child := &Builder{
		parent:     b.active,
		optional:   optional,
		elements:   arraylist.New(),
		valueIndex: -1,
	}
	b.active = child
}

func (b *Builder) groupEnd() {
	child := b.active
	if child.padWidth > 0 {
		panic("chronofmt/format: pad width pending without element to pad")
	}
	b.active = child.parent
	if child.elements.Size() == 0 {
		return
	}
	b.appendInternal(&composite{
		elements: listElements(child.elements),
		optional: child.optional,
	})
}

func listElements(l *arraylist.List) []element {
	out := make([]element, 0, l.Size())
	for _, v := range l.Values() {
		out = append(out, v.(element))
	}
	return out
}

// Build closes any open optional sections and creates the Formatter,
// localized for the environment's locale. The builder must not be
// used afterwards.
func (b *Builder) Build() *Formatter {
	return b.BuildWith(symbols.Default(), symbols.DefaultNames())
}

// BuildWith is Build with explicit symbols and field names.
func (b *Builder) BuildWith(syms *symbols.Symbols, names *symbols.FieldNames) *Formatter {
	for b.active.parent != nil {
		b.groupEnd()
	}
	if b.padWidth > 0 {
		panic("chronofmt/format: pad width pending without element to pad")
	}
	return &Formatter{
		root:  &composite{elements: listElements(b.elements)},
		syms:  syms,
		names: names,
	}
}
