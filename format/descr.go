package format

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/chronofmt"
)

// AppendDescription compiles a formatter description, the verbose
// sibling of the letter pattern language and exactly the notation
// Formatter.String produces. "Value(Year)'-'Value(MonthOfYear,2)" is
// a description; every description a formatter prints about itself
// parses back into an equivalent formatter.
func (b *Builder) AppendDescription(descr string) error {
	dp := &descrParser{b: b, text: descr}
	return dp.run()
}

func descrErr(pos int, format string, args ...interface{}) error {
	return fmt.Errorf("description index %d: %s: %w", pos, fmt.Sprintf(format, args...), ErrDescription)
}

type descrParser struct {
	b    *Builder
	text string
	pos  int
}

func (dp *descrParser) run() error {
	depth := 0
	for dp.pos < len(dp.text) {
		r, size := utf8.DecodeRuneInString(dp.text[dp.pos:])
		switch {
		case isPatternLetter(r):
			if err := dp.parseNamedElement(); err != nil {
				return err
			}
		case r == '\'':
			if err := dp.parseLiteral(); err != nil {
				return err
			}
		case r == '(':
			dp.b.groupStart(false)
			depth++
			dp.pos += size
		case r == '[':
			dp.b.groupStart(true)
			depth++
			dp.pos += size
		case r == ')':
			if depth == 0 || dp.b.active.optional {
				return descrErr(dp.pos, "')' without matching '('")
			}
			dp.b.groupEnd()
			depth--
			dp.pos += size
		case r == ']':
			if depth == 0 || !dp.b.active.optional {
				return descrErr(dp.pos, "']' without matching '['")
			}
			dp.b.groupEnd()
			depth--
			dp.pos += size
		default:
			dp.b.AppendLiteralRune(r)
			dp.pos += size
		}
	}
	if depth != 0 {
		return descrErr(dp.pos, "unclosed group")
	}
	return nil
}

// parseLiteral consumes a quoted literal. "''" is the apostrophe
// itself, which is also how an apostrophe literal describes itself.
func (dp *descrParser) parseLiteral() error {
	s, err := dp.quotedString()
	if err != nil {
		return err
	}
	if s == "" {
		dp.b.AppendLiteralRune('\'')
		return nil
	}
	dp.b.AppendLiteral(s)
	return nil
}

// parseNamedElement consumes one element: a name and its argument
// list, e.g. "Value(Year,1,10,NORMAL)".
func (dp *descrParser) parseNamedElement() error {
	e, fixedMax, err := dp.element()
	if err != nil {
		return err
	}
	switch e.(type) {
	case *numberElement, *reducedElement:
		dp.b.appendNumeric(e, fixedMax)
	default:
		dp.b.appendInternal(e)
	}
	return nil
}

// element parses a named element and returns it along with its fixed
// digit count when it extends an adjacent-value chain.
func (dp *descrParser) element() (element, int, error) {
	start := dp.pos
	name := dp.ident()
	if err := dp.expect('('); err != nil {
		return nil, 0, err
	}
	switch name {
	case "Value":
		return dp.valueArgs(start)
	case "ReducedValue":
		f, err := dp.fieldArg()
		if err != nil {
			return nil, 0, err
		}
		if err := dp.expect(','); err != nil {
			return nil, 0, err
		}
		width, err := dp.intArg()
		if err != nil {
			return nil, 0, err
		}
		if width < 1 || width > 10 {
			return nil, 0, descrErr(start, "illegal width %d, must be 1..10", width)
		}
		if err := dp.expect(','); err != nil {
			return nil, 0, err
		}
		base, err := dp.int64Arg()
		if err != nil {
			return nil, 0, err
		}
		if err := dp.expect(')'); err != nil {
			return nil, 0, err
		}
		return &reducedElement{field: f, width: width, base: base}, width, nil
	case "Fraction":
		f, err := dp.fieldArg()
		if err != nil {
			return nil, 0, err
		}
		if !f.Range().Fixed() {
			return nil, 0, descrErr(start, "field %s has no fixed range, cannot be a fraction", f.Name())
		}
		if err := dp.expect(','); err != nil {
			return nil, 0, err
		}
		minWidth, err := dp.intArg()
		if err != nil {
			return nil, 0, err
		}
		if err := dp.expect(','); err != nil {
			return nil, 0, err
		}
		maxWidth, err := dp.intArg()
		if err != nil {
			return nil, 0, err
		}
		if err := dp.expect(')'); err != nil {
			return nil, 0, err
		}
		lower := minWidth
		if lower < 1 {
			lower = 1
		}
		if minWidth < 0 || minWidth > 9 || maxWidth < lower || maxWidth > 9 {
			return nil, 0, descrErr(start, "illegal fraction widths %d,%d", minWidth, maxWidth)
		}
		return &fractionElement{field: f, minWidth: minWidth, maxWidth: maxWidth}, 0, nil
	case "Text":
		f, err := dp.fieldArg()
		if err != nil {
			return nil, 0, err
		}
		style := StyleFull
		if dp.peek() == ',' {
			dp.pos++
			s, err := dp.styleArg()
			if err != nil {
				return nil, 0, err
			}
			style = s
		}
		if err := dp.expect(')'); err != nil {
			return nil, 0, err
		}
		return &textElement{field: f, style: style}, 0, nil
	case "OffsetId":
		if err := dp.expect(')'); err != nil {
			return nil, 0, err
		}
		return &offsetElement{noOffsetText: "Z", includeColon: true, allowSeconds: true}, 0, nil
	case "Offset":
		noOffsetText, err := dp.quotedString()
		if err != nil {
			return nil, 0, err
		}
		if err := dp.expect(','); err != nil {
			return nil, 0, err
		}
		includeColon, err := dp.boolArg()
		if err != nil {
			return nil, 0, err
		}
		if err := dp.expect(','); err != nil {
			return nil, 0, err
		}
		allowSeconds, err := dp.boolArg()
		if err != nil {
			return nil, 0, err
		}
		if err := dp.expect(')'); err != nil {
			return nil, 0, err
		}
		return &offsetElement{
			noOffsetText: noOffsetText,
			includeColon: includeColon,
			allowSeconds: allowSeconds,
		}, 0, nil
	case "ZoneId":
		if err := dp.expect(')'); err != nil {
			return nil, 0, err
		}
		return zoneIDElement{}, 0, nil
	case "ZoneText":
		style, err := dp.styleArg()
		if err != nil {
			return nil, 0, err
		}
		if err := dp.expect(')'); err != nil {
			return nil, 0, err
		}
		return &zoneTextElement{style: style}, 0, nil
	case "Pad":
		return dp.padArgs(start)
	case "ParseCaseSensitive":
		v, err := dp.boolArg()
		if err != nil {
			return nil, 0, err
		}
		if err := dp.expect(')'); err != nil {
			return nil, 0, err
		}
		return caseElement(v), 0, nil
	case "ParseStrict":
		v, err := dp.boolArg()
		if err != nil {
			return nil, 0, err
		}
		if err := dp.expect(')'); err != nil {
			return nil, 0, err
		}
		return strictElement(v), 0, nil
	}
	return nil, 0, descrErr(start, "unknown element %q", name)
}

// valueArgs handles the three arities of Value.
func (dp *descrParser) valueArgs(start int) (element, int, error) {
	f, err := dp.fieldArg()
	if err != nil {
		return nil, 0, err
	}
	if dp.peek() == ')' {
		dp.pos++
		return &numberElement{field: f, minWidth: 1, maxWidth: 10, style: SignNormal}, 0, nil
	}
	if err := dp.expect(','); err != nil {
		return nil, 0, err
	}
	width, err := dp.intArg()
	if err != nil {
		return nil, 0, err
	}
	if dp.peek() == ')' {
		if width < 1 || width > 10 {
			return nil, 0, descrErr(start, "illegal width %d, must be 1..10", width)
		}
		dp.pos++
		return &numberElement{field: f, minWidth: width, maxWidth: width, style: SignNotNegative}, width, nil
	}
	if err := dp.expect(','); err != nil {
		return nil, 0, err
	}
	maxWidth, err := dp.intArg()
	if err != nil {
		return nil, 0, err
	}
	if err := dp.expect(','); err != nil {
		return nil, 0, err
	}
	styleName := dp.ident()
	style, ok := signStyleByName(styleName)
	if !ok {
		return nil, 0, descrErr(start, "unknown sign style %q", styleName)
	}
	if err := dp.expect(')'); err != nil {
		return nil, 0, err
	}
	if width < 1 || width > 10 || maxWidth < width || maxWidth > 10 {
		return nil, 0, descrErr(start, "illegal widths %d,%d", width, maxWidth)
	}
	fixedMax := 0
	if width == maxWidth && style == SignNotNegative {
		fixedMax = maxWidth
	}
	return &numberElement{field: f, minWidth: width, maxWidth: maxWidth, style: style}, fixedMax, nil
}

// padArgs handles Pad(inner,width) and Pad(inner,width,'c').
func (dp *descrParser) padArgs(start int) (element, int, error) {
	var inner element
	r, _ := utf8.DecodeRuneInString(dp.text[dp.pos:])
	switch {
	case isPatternLetter(r):
		e, _, err := dp.element()
		if err != nil {
			return nil, 0, err
		}
		inner = e
	case r == '\'':
		s, err := dp.quotedString()
		if err != nil {
			return nil, 0, err
		}
		if runes := []rune(s); len(runes) == 1 {
			inner = charLiteral(runes[0])
		} else if s == "" {
			inner = charLiteral('\'')
		} else {
			inner = stringLiteral(s)
		}
	default:
		return nil, 0, descrErr(dp.pos, "padded element expected")
	}
	if err := dp.expect(','); err != nil {
		return nil, 0, err
	}
	width, err := dp.intArg()
	if err != nil {
		return nil, 0, err
	}
	if width < 1 {
		return nil, 0, descrErr(start, "illegal pad width %d", width)
	}
	padChar := ' '
	if dp.peek() == ',' {
		dp.pos++
		s, err := dp.quotedString()
		if err != nil {
			return nil, 0, err
		}
		runes := []rune(s)
		if len(runes) != 1 {
			return nil, 0, descrErr(start, "pad character must be a single character")
		}
		padChar = runes[0]
	}
	if err := dp.expect(')'); err != nil {
		return nil, 0, err
	}
	return &padElement{inner: inner, width: width, padChar: padChar}, 0, nil
}

// --- Token helpers ---------------------------------------------------------

func (dp *descrParser) peek() byte {
	if dp.pos < len(dp.text) {
		return dp.text[dp.pos]
	}
	return 0
}

func (dp *descrParser) expect(c byte) error {
	if dp.peek() != c {
		return descrErr(dp.pos, "%q expected", c)
	}
	dp.pos++
	return nil
}

func (dp *descrParser) ident() string {
	start := dp.pos
	for dp.pos < len(dp.text) {
		c := dp.text[dp.pos]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') && c != '_' {
			break
		}
		dp.pos++
	}
	return dp.text[start:dp.pos]
}

func (dp *descrParser) fieldArg() (*chronofmt.FieldRule, error) {
	start := dp.pos
	name := dp.ident()
	f, ok := chronofmt.RuleByName(name)
	if !ok {
		return nil, descrErr(start, "unknown field %q", name)
	}
	return f, nil
}

func (dp *descrParser) int64Arg() (int64, error) {
	start := dp.pos
	if dp.peek() == '-' || dp.peek() == '+' {
		dp.pos++
	}
	for dp.pos < len(dp.text) && dp.text[dp.pos] >= '0' && dp.text[dp.pos] <= '9' {
		dp.pos++
	}
	v, err := strconv.ParseInt(dp.text[start:dp.pos], 10, 64)
	if err != nil {
		return 0, descrErr(start, "number expected")
	}
	return v, nil
}

func (dp *descrParser) intArg() (int, error) {
	v, err := dp.int64Arg()
	return int(v), err
}

func (dp *descrParser) boolArg() (bool, error) {
	start := dp.pos
	switch dp.ident() {
	case "true", "T":
		return true, nil
	case "false", "F":
		return false, nil
	}
	return false, descrErr(start, "boolean expected")
}

func (dp *descrParser) styleArg() (TextStyle, error) {
	start := dp.pos
	switch dp.ident() {
	case "FULL":
		return StyleFull, nil
	case "SHORT":
		return StyleShort, nil
	}
	return StyleFull, descrErr(start, "text style expected")
}

// quotedString consumes a quoted string with "''" escapes and returns
// its unescaped content.
func (dp *descrParser) quotedString() (string, error) {
	start := dp.pos
	if dp.peek() != '\'' {
		return "", descrErr(dp.pos, "quoted text expected")
	}
	dp.pos++
	var sb strings.Builder
	for dp.pos < len(dp.text) {
		r, size := utf8.DecodeRuneInString(dp.text[dp.pos:])
		if r == '\'' {
			if dp.pos+size < len(dp.text) && dp.text[dp.pos+size] == '\'' {
				sb.WriteByte('\'')
				dp.pos += size + 1
				continue
			}
			dp.pos += size
			return sb.String(), nil
		}
		sb.WriteRune(r)
		dp.pos += size
	}
	return "", descrErr(start, "unterminated quoted text")
}
