package format

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/chronofmt"
)

// Field rules selected by pattern letters with plain numeric output.
var patternFields = map[rune]*chronofmt.FieldRule{
	'd': chronofmt.DayOfMonth,
	'H': chronofmt.HourOfDay,
	'K': chronofmt.HourOfAMPM,
	'k': chronofmt.ClockHourOfDay,
	'h': chronofmt.ClockHourOfAMPM,
	'm': chronofmt.MinuteOfHour,
	's': chronofmt.SecondOfMinute,
	'D': chronofmt.DayOfYear,
	'Q': chronofmt.QuarterOfYear,
	'w': chronofmt.WeekOfYear,
}

// Field rules selected by the letter following an 'f' fraction prefix.
var fractionFields = map[rune]*chronofmt.FieldRule{
	'n': chronofmt.NanoOfSecond,
	'S': chronofmt.MilliOfSecond,
	's': chronofmt.SecondOfMinute,
	'm': chronofmt.MinuteOfHour,
	'H': chronofmt.HourOfDay,
}

func isPatternLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func patternErr(pos int, format string, args ...interface{}) error {
	return fmt.Errorf("pattern index %d: %s: %w", pos, fmt.Sprintf(format, args...), ErrPattern)
}

// AppendPattern compiles a date-time pattern in the compact letter
// language, e.g. "yyyy-MM-dd'T'HH:mm:ss", appending its elements to
// the builder. Letters select fields, their repeat count selects the
// representation; see the package documentation for the full table.
func (b *Builder) AppendPattern(pattern string) error {
	pos := 0
	for pos < len(pattern) {
		r, size := utf8.DecodeRuneInString(pattern[pos:])
		if isPatternLetter(r) {
			start := pos
			count := 0
			for pos < len(pattern) {
				rr, s := utf8.DecodeRuneInString(pattern[pos:])
				if rr != r {
					break
				}
				count++
				pos += s
			}
			switch r {
			case 'p':
				if pos == len(pattern) {
					return patternErr(start, "pad prefix 'p' at end of pattern")
				}
				nr, _ := utf8.DecodeRuneInString(pattern[pos:])
				if !isPatternLetter(nr) {
					return patternErr(pos, "pad prefix 'p' must be followed by a field letter")
				}
				b.PadNext(count)
			case 'f':
				fstart := pos
				if pos == len(pattern) {
					return patternErr(start, "fraction prefix 'f' at end of pattern")
				}
				nr, _ := utf8.DecodeRuneInString(pattern[pos:])
				f, ok := fractionFields[nr]
				if !ok {
					return patternErr(fstart, "fraction prefix 'f' must be followed by a fraction field letter")
				}
				ncount := 0
				for pos < len(pattern) {
					rr, s := utf8.DecodeRuneInString(pattern[pos:])
					if rr != nr {
						break
					}
					ncount++
					pos += s
				}
				if ncount > 9 {
					return patternErr(fstart, "too many %q letters for a fraction: %d", nr, ncount)
				}
				b.AppendFraction(f, ncount, ncount)
			default:
				if err := b.appendPatternField(r, count, start); err != nil {
					return err
				}
			}
			continue
		}
		switch r {
		case '\'':
			end, err := b.appendPatternQuoted(pattern, pos)
			if err != nil {
				return err
			}
			pos = end
		case '[':
			b.OptionalStart()
			pos += size
		case ']':
			if b.active.parent == nil {
				return patternErr(pos, "']' without matching '['")
			}
			b.OptionalEnd()
			pos += size
		case '{', '}', '#':
			return patternErr(pos, "character %q is reserved", r)
		default:
			b.AppendLiteralRune(r)
			pos += size
		}
	}
	return nil
}

// appendPatternQuoted consumes a quoted literal starting at the
// apostrophe at pos and returns the position after the closing quote.
func (b *Builder) appendPatternQuoted(pattern string, pos int) (int, error) {
	p := pos + 1
	var lit []rune
	for p < len(pattern) {
		r, size := utf8.DecodeRuneInString(pattern[p:])
		if r == '\'' {
			if p+size < len(pattern) && pattern[p+size] == '\'' {
				lit = append(lit, '\'')
				p += size + 1
				continue
			}
			if len(lit) == 0 {
				b.AppendLiteralRune('\'')
			} else {
				b.AppendLiteral(string(lit))
			}
			return p + size, nil
		}
		lit = append(lit, r)
		p += size
	}
	return 0, patternErr(pos, "unterminated quoted literal")
}

// appendPatternField translates one run of a pattern letter.
func (b *Builder) appendPatternField(letter rune, count, pos int) error {
	switch letter {
	case 'y':
		switch {
		case count < 4:
			b.AppendValueStyled(chronofmt.Year, count, 10, SignNormal)
		case count <= 10:
			b.AppendValueStyled(chronofmt.Year, count, 10, SignExceedsPad)
		default:
			return patternErr(pos, "too many 'y' letters: %d", count)
		}
	case 'M':
		switch count {
		case 1:
			b.AppendValue(chronofmt.MonthOfYear)
		case 2:
			b.AppendValueFixed(chronofmt.MonthOfYear, 2)
		case 3:
			b.AppendTextStyled(chronofmt.MonthOfYear, StyleShort)
		case 4:
			b.AppendTextStyled(chronofmt.MonthOfYear, StyleFull)
		default:
			return patternErr(pos, "too many 'M' letters: %d", count)
		}
	case 'd', 'H', 'K', 'k', 'h', 'm', 's', 'Q', 'w':
		f := patternFields[letter]
		switch count {
		case 1:
			b.AppendValue(f)
		case 2:
			b.AppendValueFixed(f, 2)
		default:
			return patternErr(pos, "too many %q letters: %d", letter, count)
		}
	case 'D':
		switch {
		case count == 1:
			b.AppendValue(chronofmt.DayOfYear)
		case count <= 3:
			b.AppendValueFixed(chronofmt.DayOfYear, count)
		default:
			return patternErr(pos, "too many 'D' letters: %d", count)
		}
	case 'E', 'e':
		switch {
		case count <= 3:
			b.AppendTextStyled(chronofmt.DayOfWeek, StyleShort)
		case count == 4:
			b.AppendTextStyled(chronofmt.DayOfWeek, StyleFull)
		default:
			return patternErr(pos, "too many %q letters: %d", letter, count)
		}
	case 'G':
		switch {
		case count <= 3:
			b.AppendTextStyled(chronofmt.Era, StyleShort)
		case count == 4:
			b.AppendTextStyled(chronofmt.Era, StyleFull)
		default:
			return patternErr(pos, "too many 'G' letters: %d", count)
		}
	case 'a':
		if count > 1 {
			return patternErr(pos, "too many 'a' letters: %d", count)
		}
		b.AppendTextStyled(chronofmt.AMPMOfDay, StyleShort)
	case 'S':
		if count > 3 {
			return patternErr(pos, "too many 'S' letters: %d", count)
		}
		b.AppendValueFixed(chronofmt.MilliOfSecond, count)
	case 'n':
		if count > 10 {
			return patternErr(pos, "too many 'n' letters: %d", count)
		}
		b.AppendValueStyled(chronofmt.NanoOfSecond, count, 10, SignNotNegative)
	case 'z':
		switch {
		case count <= 3:
			b.AppendZoneText(StyleShort)
		case count == 4:
			b.AppendZoneText(StyleFull)
		default:
			return patternErr(pos, "too many 'z' letters: %d", count)
		}
	case 'I':
		b.AppendZoneID()
	case 'Z':
		switch {
		case count <= 2:
			b.AppendOffset("+0000", false, false)
		case count == 3:
			b.AppendOffset("+00:00", true, false)
		default:
			return patternErr(pos, "too many 'Z' letters: %d", count)
		}
	case 'X':
		if count > 1 {
			return patternErr(pos, "too many 'X' letters: %d", count)
		}
		b.AppendOffsetID()
	default:
		return patternErr(pos, "unknown pattern letter %q", letter)
	}
	return nil
}
