package format

import (
	"golang.org/x/text/language"

	"github.com/npillmayer/chronofmt"
	"github.com/npillmayer/chronofmt/symbols"
)

// Predefined formatters for the ISO-8601 and RFC 1123 text shapes.
// They are locale-independent: standard symbols, English names.
var (
	// ISODate formats and parses "2008-06-30". Years outside 0000-9999
	// print with a sign and up to ten digits.
	ISODate = newISODate()

	// ISOTime formats and parses "11:05", "11:05:30" and
	// "11:05:30.123456789"; seconds and fraction are optional.
	ISOTime = newISOTime()

	// ISODateTime combines ISODate and ISOTime with a 'T' separator and
	// an optional offset, as in "2008-06-30T11:05:30+02:00".
	ISODateTime = newISODateTime()

	// RFC1123 formats and parses "Mon, 30 Jun 2008 11:05:30 GMT".
	// Parsing ignores case.
	RFC1123 = newRFC1123()
)

func newISODate() *Formatter {
	return NewBuilder().
		AppendValueStyled(chronofmt.Year, 4, 10, SignExceedsPad).
		AppendLiteralRune('-').
		AppendValueFixed(chronofmt.MonthOfYear, 2).
		AppendLiteralRune('-').
		AppendValueFixed(chronofmt.DayOfMonth, 2).
		BuildWith(symbols.Standard, symbols.Names(language.English))
}

func newISOTime() *Formatter {
	return NewBuilder().
		AppendValueFixed(chronofmt.HourOfDay, 2).
		AppendLiteralRune(':').
		AppendValueFixed(chronofmt.MinuteOfHour, 2).
		OptionalStart().
		AppendLiteralRune(':').
		AppendValueFixed(chronofmt.SecondOfMinute, 2).
		OptionalStart().
		AppendFraction(chronofmt.NanoOfSecond, 0, 9).
		BuildWith(symbols.Standard, symbols.Names(language.English))
}

func newISODateTime() *Formatter {
	return NewBuilder().
		Append(ISODate).
		AppendLiteralRune('T').
		Append(ISOTime).
		OptionalStart().
		AppendOffsetID().
		BuildWith(symbols.Standard, symbols.Names(language.English))
}

func newRFC1123() *Formatter {
	return NewBuilder().
		ParseCaseInsensitive().
		AppendTextStyled(chronofmt.DayOfWeek, StyleShort).
		AppendLiteral(", ").
		AppendValueFixed(chronofmt.DayOfMonth, 2).
		AppendLiteralRune(' ').
		AppendTextStyled(chronofmt.MonthOfYear, StyleShort).
		AppendLiteralRune(' ').
		AppendValueFixed(chronofmt.Year, 4).
		AppendLiteralRune(' ').
		AppendValueFixed(chronofmt.HourOfDay, 2).
		AppendLiteralRune(':').
		AppendValueFixed(chronofmt.MinuteOfHour, 2).
		AppendLiteralRune(':').
		AppendValueFixed(chronofmt.SecondOfMinute, 2).
		AppendLiteralRune(' ').
		AppendOffset("GMT", false, false).
		BuildWith(symbols.Standard, symbols.Names(language.English))
}
