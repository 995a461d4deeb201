package format

import (
	"fmt"
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/npillmayer/chronofmt"
)

// offsetElement prints and parses a UTC offset such as "+01:30" or
// "Z". noOffsetText is printed for offset zero and recognized during
// parsing; when it is empty, a parse that finds no numeric offset
// succeeds with zero width and records UTC.
type offsetElement struct {
	noOffsetText string
	includeColon bool
	allowSeconds bool
}

func errNoOffset() error {
	return fmt.Errorf("source carries no UTC offset: %w", ErrUnsupportedField)
}

func (oe *offsetElement) print(pc *printContext, buf *strings.Builder) error {
	prov, ok := pc.src.(chronofmt.OffsetProvider)
	if !ok {
		return errNoOffset()
	}
	off, ok := prov.Offset()
	if !ok {
		return errNoOffset()
	}
	secs := off.Seconds()
	if secs == 0 {
		buf.WriteString(oe.noOffsetText)
		return nil
	}
	if secs < 0 {
		buf.WriteByte('-')
		secs = -secs
	} else {
		buf.WriteByte('+')
	}
	sep := ""
	if oe.includeColon {
		sep = ":"
	}
	hh, mm, ss := secs/3600, secs/60%60, secs%60
	fmt.Fprintf(buf, "%02d%s%02d", hh, sep, mm)
	if oe.allowSeconds && ss != 0 {
		fmt.Fprintf(buf, "%s%02d", sep, ss)
	}
	return nil
}

// twoDigits reads exactly two ASCII digits. Offsets use the Latin
// digits of the wire formats regardless of the formatter's symbols.
func twoDigits(text string, pos int) (int, bool) {
	if pos+2 > len(text) {
		return 0, false
	}
	hi, lo := text[pos], text[pos+1]
	if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
		return 0, false
	}
	return int(hi-'0')*10 + int(lo-'0'), true
}

func (oe *offsetElement) parse(pc *parseContext, text string, pos int) int {
	checkBounds(text, pos)
	if oe.noOffsetText != "" {
		if n := pc.match(text, pos, oe.noOffsetText); n >= 0 {
			pc.setOffset(chronofmt.UTC)
			return pos + n
		}
	}
	if p, secs, ok := oe.parseNumeric(text, pos); ok {
		pc.setOffset(chronofmt.OffsetSeconds(secs))
		return p
	}
	// A sign announces a numeric offset; a malformed one is a failure
	// even when noOffsetText is empty.
	if oe.noOffsetText == "" &&
		(pos == len(text) || (text[pos] != '+' && text[pos] != '-')) {
		pc.setOffset(chronofmt.UTC)
		return pos // zero width, resolves to UTC
	}
	return ^pos
}

// parseNumeric consumes "+HH:MM", "+HHMM" and friends, returning the
// end position and the offset in seconds. It reports failure instead
// of a complemented position so that the caller can decide how an
// absent offset is treated.
func (oe *offsetElement) parseNumeric(text string, pos int) (int, int, bool) {
	if pos == len(text) {
		return 0, 0, false
	}
	var negative bool
	switch text[pos] {
	case '+':
	case '-':
		negative = true
	default:
		return 0, 0, false
	}
	p := pos + 1
	hh, ok := twoDigits(text, p)
	if !ok {
		return 0, 0, false
	}
	p += 2
	if oe.includeColon {
		if p >= len(text) || text[p] != ':' {
			return 0, 0, false
		}
		p++
	}
	mm, ok := twoDigits(text, p)
	if !ok {
		return 0, 0, false
	}
	p += 2
	ss := 0
	if oe.allowSeconds {
		q := p
		if oe.includeColon {
			if q < len(text) && text[q] == ':' {
				q++
			} else {
				q = -1
			}
		}
		if q >= 0 {
			if v, ok := twoDigits(text, q); ok {
				ss = v
				p = q + 2
			}
		}
	}
	secs := hh*3600 + mm*60 + ss
	if negative {
		secs = -secs
	}
	if secs < -18*3600 || secs > 18*3600 {
		return 0, 0, false
	}
	return p, secs, true
}

func (oe *offsetElement) describe(sb *strings.Builder) {
	if oe.noOffsetText == "Z" && oe.includeColon && oe.allowSeconds {
		sb.WriteString("OffsetId()")
		return
	}
	sb.WriteString("Offset(")
	appendQuoted(sb, oe.noOffsetText)
	fmt.Fprintf(sb, ",%t,%t)", oe.includeColon, oe.allowSeconds)
}

// --- Zone ID ---------------------------------------------------------------

// The engine knows nothing about timezone databases. Parseable zone
// identifiers are published by clients through RegisterZone; the
// engine pre-registers the UTC aliases only.
var zoneReg = struct {
	sync.RWMutex
	ids *treemap.Map // zone ID -> struct{}
}{ids: treemap.NewWith(utils.StringComparator)}

func init() {
	RegisterZone("UTC", "GMT", "UT")
}

// RegisterZone publishes timezone identifiers for parsing, e.g.
// "Europe/Paris". Registering an ID twice is harmless.
func RegisterZone(ids ...string) {
	zoneReg.Lock()
	defer zoneReg.Unlock()
	for _, id := range ids {
		if id == "" {
			panic("chronofmt/format: cannot register empty zone ID")
		}
		zoneReg.ids.Put(id, struct{}{})
	}
}

// zoneIDElement prints and parses a timezone identifier. Parsing
// recognizes the UTC aliases with an optional offset suffix, plus all
// registered IDs, longest match first.
type zoneIDElement struct{}

func errNoZone() error {
	return fmt.Errorf("source carries no timezone: %w", ErrUnsupportedField)
}

func (ze zoneIDElement) print(pc *printContext, buf *strings.Builder) error {
	prov, ok := pc.src.(chronofmt.ZoneProvider)
	if !ok {
		return errNoZone()
	}
	id, ok := prov.ZoneID()
	if !ok {
		return errNoZone()
	}
	buf.WriteString(id)
	return nil
}

func (ze zoneIDElement) parse(pc *parseContext, text string, pos int) int {
	checkBounds(text, pos)
	// UTC aliases may carry a numeric offset suffix, like "UTC+01:00"
	for _, prefix := range []string{"UTC", "GMT", "UT"} {
		n := pc.match(text, pos, prefix)
		if n < 0 {
			continue
		}
		oe := &offsetElement{includeColon: true, allowSeconds: true}
		if p, _, ok := oe.parseNumeric(text, pos+n); ok {
			pc.setZone(prefix + text[pos+n:p])
			return p
		}
		pc.setZone(prefix)
		return pos + n
	}
	bestLen := -1
	var bestID string
	deepest := 0
	zoneReg.RLock()
	it := zoneReg.ids.Iterator()
	for it.Next() {
		id := it.Key().(string)
		if n := pc.match(text, pos, id); n > bestLen {
			bestLen = n
			bestID = id
		}
		if d := pc.commonPrefix(text, pos, id); d > deepest {
			deepest = d
		}
	}
	zoneReg.RUnlock()
	if bestLen < 0 {
		// the failure position reports how far any registered ID
		// could be followed
		return ^(pos + deepest)
	}
	pc.setZone(bestID)
	return pos + bestLen
}

func (ze zoneIDElement) describe(sb *strings.Builder) {
	sb.WriteString("ZoneId()")
}

// zoneTextElement prints the localized name of a timezone. No name
// data ships with the engine, so printing falls back to the zone ID
// and parsing always fails.
type zoneTextElement struct {
	style TextStyle
}

func (zt *zoneTextElement) print(pc *printContext, buf *strings.Builder) error {
	return zoneIDElement{}.print(pc, buf)
}

func (zt *zoneTextElement) parse(pc *parseContext, text string, pos int) int {
	checkBounds(text, pos)
	return ^pos
}

func (zt *zoneTextElement) describe(sb *strings.Builder) {
	fmt.Fprintf(sb, "ZoneText(%s)", zt.style)
}
