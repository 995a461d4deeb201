package symbols

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Symbols is the set of characters used to decorate numbers in one
// locale. A Symbols value is immutable once published.
type Symbols struct {
	ZeroDigit        rune
	PositiveSign     rune
	NegativeSign     rune
	DecimalSeparator rune
}

// Standard is the locale-independent symbol set: ASCII digits, '+', '-'
// and '.'. Formatters fall back to it whenever no locale data applies.
var Standard = &Symbols{
	ZeroDigit:        '0',
	PositiveSign:     '+',
	NegativeSign:     '-',
	DecimalSeparator: '.',
}

// DigitValue converts a rune to its digit value under this symbol set,
// or -1 if the rune is not one of the set's ten digits.
func (s *Symbols) DigitValue(r rune) int {
	d := int(r - s.ZeroDigit)
	if d < 0 || d > 9 {
		return -1
	}
	return d
}

// Digit converts a digit value 0–9 to the corresponding rune.
func (s *Symbols) Digit(v int) rune {
	return s.ZeroDigit + rune(v)
}

// ConvertDigits maps a string of ASCII digits to this symbol set's
// digits. Non-digit runes pass through unchanged.
func (s *Symbols) ConvertDigits(digits string) string {
	if s.ZeroDigit == '0' {
		return digits
	}
	var sb strings.Builder
	for _, r := range digits {
		if r >= '0' && r <= '9' {
			sb.WriteRune(s.ZeroDigit + (r - '0'))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Supported symbol locales. The first entry doubles as the matcher
// fallback.
var symMatch = language.NewMatcher([]language.Tag{
	language.English,
	language.Arabic,
})

var symByIndex = []*Symbols{
	Standard,
	{ZeroDigit: '٠', PositiveSign: '+', NegativeSign: '-', DecimalSeparator: '٫'},
}

var symCache sync.Map // language.Tag → *Symbols

// For returns the symbol set for a locale. Unsupported locales resolve
// to the closest supported one, ultimately to Standard. The result is
// cached and shared.
func For(tag language.Tag) *Symbols {
	if cached, ok := symCache.Load(tag); ok {
		return cached.(*Symbols)
	}
	_, index, confidence := symMatch.Match(tag)
	syms := Standard
	if confidence != language.No {
		syms = symByIndex[index]
	}
	actual, _ := symCache.LoadOrStore(tag, syms)
	return actual.(*Symbols)
}

// Default returns the symbol set for the OS environment's locale.
func Default() *Symbols {
	return For(DefaultTag())
}
