package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/chronofmt"
)

// SignStyle is the policy governing whether a sign is printed with a
// numeric field and which signs are accepted while parsing.
type SignStyle int8

// Sign styles for numeric elements.
const (
	// SignNormal prints a sign only for negative values.
	SignNormal SignStyle = iota
	// SignAlways prints a sign for every value and requires one in
	// strict parsing.
	SignAlways
	// SignNever prints no sign and rejects signed input.
	SignNever
	// SignNotNegative is for inherently non-negative fields: no sign is
	// printed, negative values are a print error, signed input is
	// rejected.
	SignNotNegative
	// SignExceedsPad prints a positive sign only when the digit count
	// exceeds the minimum width, negative values always get their sign.
	SignExceedsPad
)

func (s SignStyle) String() string {
	switch s {
	case SignNormal:
		return "NORMAL"
	case SignAlways:
		return "ALWAYS"
	case SignNever:
		return "NEVER"
	case SignNotNegative:
		return "NOT_NEGATIVE"
	case SignExceedsPad:
		return "EXCEEDS_PAD"
	}
	return fmt.Sprintf("SignStyle(%d)", int8(s))
}

func signStyleByName(name string) (SignStyle, bool) {
	switch name {
	case "NORMAL":
		return SignNormal, true
	case "ALWAYS":
		return SignAlways, true
	case "NEVER":
		return SignNever, true
	case "NOT_NEGATIVE":
		return SignNotNegative, true
	case "EXCEEDS_PAD":
		return SignExceedsPad, true
	}
	return 0, false
}

// Powers of ten for the legal digit widths 0..10.
var pow10 = [...]int64{1, 10, 100, 1000, 10000, 100000, 1000000,
	10000000, 100000000, 1000000000, 10000000000}

// numberElement prints and parses a decimal field value.
// subsequentWidth reserves digits for fixed-width numeric elements
// appended directly after this one, bounding greedy consumption when
// two numbers are adjacent with no separator.
type numberElement struct {
	field           *chronofmt.FieldRule
	minWidth        int
	maxWidth        int
	style           SignStyle
	subsequentWidth int
}

// Fixed-width elements consume exactly minWidth digits and never join
// an adjacency chain as heads.
func (n *numberElement) fixedWidth() bool {
	return n.minWidth == n.maxWidth && n.style == SignNotNegative
}

func (n *numberElement) print(pc *printContext, buf *strings.Builder) error {
	if !pc.src.HasField(n.field) {
		return fieldError(n.field)
	}
	value := pc.src.Field(n.field)
	abs := value
	if abs < 0 {
		abs = -abs
	}
	str := strconv.FormatInt(abs, 10)
	syms := pc.syms
	if value >= 0 {
		switch n.style {
		case SignExceedsPad:
			if len(str) > n.minWidth {
				buf.WriteRune(syms.PositiveSign)
			}
		case SignAlways:
			buf.WriteRune(syms.PositiveSign)
		}
	} else {
		switch n.style {
		case SignNormal, SignExceedsPad, SignAlways:
			buf.WriteRune(syms.NegativeSign)
		case SignNever, SignNotNegative:
			return fmt.Errorf("field %s: cannot print value %d: %w",
				n.field.Name(), value, ErrSignRejected)
		}
	}
	for i := len(str); i < n.minWidth; i++ {
		buf.WriteRune(syms.ZeroDigit)
	}
	buf.WriteString(syms.ConvertDigits(str))
	return nil
}

// signAllowed reports whether a leading sign may be consumed.
func (n *numberElement) signAllowed(positive bool, strict bool) bool {
	if !strict {
		return true
	}
	switch n.style {
	case SignNormal:
		return !positive
	case SignAlways, SignExceedsPad:
		return true
	}
	return false // NEVER, NOT_NEGATIVE
}

func (n *numberElement) parse(pc *parseContext, text string, pos int) int {
	checkBounds(text, pos)
	length := len(text)
	if pos == length {
		return ^pos
	}
	syms := pc.syms
	start := pos
	negative, positive := false, false
	r, size := utf8.DecodeRuneInString(text[pos:])
	switch r {
	case syms.PositiveSign:
		if !n.signAllowed(true, pc.strict) {
			return ^pos
		}
		positive = true
		pos += size
	case syms.NegativeSign:
		if !n.signAllowed(false, pc.strict) {
			return ^pos
		}
		negative = true
		pos += size
	default:
		if n.style == SignAlways && pc.strict {
			return ^pos
		}
	}
	effMin, effMax := n.minWidth, n.maxWidth
	if !pc.strict && !n.fixedWidth() {
		effMin, effMax = 1, 10
	}
	// A digit occupies at least one byte, so this is a safe quick reject.
	if pos+effMin > length {
		return ^pos
	}
	// Values accumulate within the 32-bit range; a digit that would
	// leave it rolls the parse back to just before that digit.
	limit := int64(math.MaxInt32)
	if negative {
		limit = int64(math.MaxInt32) + 1
	}
	digitsStart := pos
	maxDigits := effMax
	var total int64
	var p, count int
	for pass := 0; ; pass++ {
		total = 0
		p = digitsStart
		count = 0
		for count < maxDigits && p < length {
			r, size := utf8.DecodeRuneInString(text[p:])
			d := syms.DigitValue(r)
			if d < 0 {
				break
			}
			next := total*10 + int64(d)
			if next > limit {
				break
			}
			total = next
			p += size
			count++
		}
		if count < effMin {
			return ^digitsStart
		}
		if n.subsequentWidth > 0 && pass == 0 {
			// leave the reserved digits over for the elements that follow
			maxDigits = count - n.subsequentWidth
			if maxDigits < n.minWidth {
				maxDigits = n.minWidth
			}
			continue
		}
		break
	}
	if negative {
		if total == 0 {
			return ^start // negative zero is never valid
		}
		total = -total
	} else if n.style == SignExceedsPad && pc.strict {
		if positive {
			if count <= n.minWidth {
				return ^digitsStart // '+' only valid when the pad width is exceeded
			}
		} else if count > n.minWidth {
			return ^start // '+' required when the pad width is exceeded
		}
	}
	pc.setField(n.field, total)
	return p
}

func (n *numberElement) describe(sb *strings.Builder) {
	if n.minWidth == 1 && n.maxWidth == 10 && n.style == SignNormal {
		fmt.Fprintf(sb, "Value(%s)", n.field.Name())
	} else if n.minWidth == n.maxWidth && n.style == SignNotNegative {
		fmt.Fprintf(sb, "Value(%s,%d)", n.field.Name(), n.minWidth)
	} else {
		fmt.Fprintf(sb, "Value(%s,%d,%d,%s)", n.field.Name(), n.minWidth, n.maxWidth, n.style)
	}
}

// reducedElement prints a value as its low-order digits and
// reconstructs the full value on parsing by choosing the candidate
// congruent to the parsed digits within [base, base+10^width).
type reducedElement struct {
	field *chronofmt.FieldRule
	width int
	base  int64
}

func (rp *reducedElement) print(pc *printContext, buf *strings.Builder) error {
	if !pc.src.HasField(rp.field) {
		return fieldError(rp.field)
	}
	value := pc.src.Field(rp.field)
	lastPart := value % pow10[rp.width]
	if lastPart < 0 {
		lastPart = -lastPart
	}
	str := strconv.FormatInt(lastPart, 10)
	syms := pc.syms
	for i := len(str); i < rp.width; i++ {
		buf.WriteRune(syms.ZeroDigit)
	}
	buf.WriteString(syms.ConvertDigits(str))
	return nil
}

func (rp *reducedElement) parse(pc *parseContext, text string, pos int) int {
	checkBounds(text, pos)
	syms := pc.syms
	p := pos
	count := 0
	var total int64
	for count < rp.width && p < len(text) {
		r, size := utf8.DecodeRuneInString(text[p:])
		d := syms.DigitValue(r)
		if d < 0 {
			break
		}
		total = total*10 + int64(d)
		p += size
		count++
	}
	if count < rp.width {
		return ^pos
	}
	window := pow10[rp.width]
	lastPart := rp.base % window
	value := rp.base - lastPart
	if rp.base > 0 {
		value += total
	} else {
		value -= total
	}
	if value < rp.base {
		value += window
	}
	pc.setField(rp.field, value)
	return p
}

func (rp *reducedElement) describe(sb *strings.Builder) {
	fmt.Fprintf(sb, "ReducedValue(%s,%d,%d)", rp.field.Name(), rp.width, rp.base)
}
