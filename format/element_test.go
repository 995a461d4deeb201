package format

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/chronofmt"
)

func TestLiteralParse(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := buildStrict(func(b *Builder) {
		b.AppendLiteral("hello")
	})
	if _, pos := f.ParseAt("hello world", 0); pos != 5 {
		t.Errorf("expected position 5, have %d", pos)
	}
	if _, pos := f.ParseAt("HELLO", 0); pos != ^0 {
		t.Errorf("expected case-sensitive failure at ^0, have %d", pos)
	}
	if _, pos := f.ParseAt("help", 0); pos != ^0 {
		t.Errorf("expected failure at ^0, have %d", pos)
	}
}

func TestLiteralParseCaseInsensitive(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := buildStrict(func(b *Builder) {
		b.ParseCaseInsensitive()
		b.AppendLiteral("hello")
		b.ParseCaseSensitive()
		b.AppendLiteralRune('!')
	})
	if _, pos := f.ParseAt("HeLLo!", 0); pos != 6 {
		t.Errorf("expected position 6, have %d", pos)
	}
	if _, err := f.Parse("HELLO!"); err != nil {
		t.Errorf("case-insensitive parse failed: %v", err)
	}
}

func TestOptionalSectionParse(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := buildStrict(func(b *Builder) {
		b.AppendLiteralRune('A')
		b.OptionalStart()
		b.AppendLiteralRune('B')
		b.AppendValueFixed(chronofmt.DayOfMonth, 2)
		b.OptionalEnd()
		b.AppendLiteralRune('C')
	})
	parsed, err := f.Parse("AB30C")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if v := parsed.Field(chronofmt.DayOfMonth); v != 30 {
		t.Errorf("expected day-of-month 30, have %d", v)
	}
	// the optional section rolls back and the tail still matches
	parsed, err = f.Parse("AC")
	if err != nil {
		t.Fatalf("parse without optional section failed: %v", err)
	}
	if parsed.HasField(chronofmt.DayOfMonth) {
		t.Error("rolled-back section must not record values")
	}
}

func TestOptionalSectionPartialMatchRollsBack(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := buildStrict(func(b *Builder) {
		b.OptionalStart()
		b.AppendLiteralRune('B')
		b.AppendValueFixed(chronofmt.DayOfMonth, 2)
		b.OptionalEnd()
		b.AppendLiteralRune('B')
	})
	// "B" matches inside the section first, the missing digits roll the
	// whole section back, and the literal after it consumes the "B"
	if _, err := f.Parse("B"); err != nil {
		t.Errorf("parse failed: %v", err)
	}
}

func TestOptionalSectionRollbackDiscardsFields(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := buildStrict(func(b *Builder) {
		b.OptionalStart()
		b.AppendValueFixed(chronofmt.DayOfMonth, 2)
		b.AppendLiteralRune('Z')
		b.OptionalEnd()
		b.AppendValueFixed(chronofmt.HourOfDay, 2)
	})
	// the section records DayOfMonth=30 before failing on 'Z'; rolling
	// it back must discard the recording as well
	parsed, err := f.Parse("30")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if h := parsed.Field(chronofmt.HourOfDay); h != 30 {
		t.Errorf("expected hour 30, have %d", h)
	}
	if parsed.HasField(chronofmt.DayOfMonth) {
		t.Errorf("rolled-back section leaked DayOfMonth=%d",
			parsed.Field(chronofmt.DayOfMonth))
	}
}

func TestOptionalSectionRollbackDiscardsOffsetAndZone(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := buildStrict(func(b *Builder) {
		b.OptionalStart()
		b.AppendOffsetID()
		b.AppendLiteralRune('!')
		b.OptionalEnd()
		b.AppendLiteral("+01:00")
	})
	// the section parses "+01:00" into an offset before failing on '!'
	parsed, err := f.Parse("+01:00")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if off, ok := parsed.Offset(); ok {
		t.Errorf("rolled-back section leaked offset %v", off)
	}
	f = buildStrict(func(b *Builder) {
		b.OptionalStart()
		b.AppendZoneID()
		b.AppendLiteralRune('!')
		b.OptionalEnd()
		b.AppendLiteral("UTC")
	})
	parsed, err = f.Parse("UTC")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if zone, ok := parsed.ZoneID(); ok {
		t.Errorf("rolled-back section leaked zone %q", zone)
	}
}

func TestOptionalSectionPrint(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := buildStrict(func(b *Builder) {
		b.AppendValueFixed(chronofmt.HourOfDay, 2)
		b.OptionalStart()
		b.AppendLiteralRune(':')
		b.AppendValueFixed(chronofmt.MinuteOfHour, 2)
		b.OptionalEnd()
	})
	out, err := f.Format(chronofmt.FieldMap{chronofmt.HourOfDay: 11, chronofmt.MinuteOfHour: 30})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if out != "11:30" {
		t.Errorf("expected \"11:30\", have %q", out)
	}
	// without minutes, the section vanishes instead of failing
	out, err = f.Format(chronofmt.FieldMap{chronofmt.HourOfDay: 11})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if out != "11" {
		t.Errorf("expected \"11\", have %q", out)
	}
}

func TestPadPrint(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := buildStrict(func(b *Builder) {
		b.PadNext(3)
		b.AppendValue(chronofmt.DayOfMonth)
	})
	out, err := f.Format(chronofmt.FieldMap{chronofmt.DayOfMonth: 2})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if out != "  2" {
		t.Errorf("expected \"  2\", have %q", out)
	}
	// output wider than the pad is an error
	if _, err = f.Format(chronofmt.FieldMap{chronofmt.DayOfMonth: 1234}); err == nil {
		t.Error("expected pad overflow error")
	}
}

func TestPadParse(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := buildStrict(func(b *Builder) {
		b.PadNext(3)
		b.AppendValueStyled(chronofmt.DayOfMonth, 1, 2, SignNever)
	})
	parsed, pos := f.ParseAt("  2", 0)
	if pos != 3 {
		t.Fatalf("expected position 3, have %d", pos)
	}
	if v := parsed.Field(chronofmt.DayOfMonth); v != 2 {
		t.Errorf("expected 2, have %d", v)
	}
	if _, pos = f.ParseAt(" 12", 0); pos != 3 {
		t.Errorf("expected position 3, have %d", pos)
	}
	// the inner element must fill the window completely
	if _, pos = f.ParseAt(" 2X", 0); pos != ^0 {
		t.Errorf("expected failure at ^0, have %d", pos)
	}
	// strict parsing needs the full window
	if _, pos = f.ParseAt(" 2", 0); pos != ^0 {
		t.Errorf("expected failure at ^0, have %d", pos)
	}
}

func TestPadParseNegativeNumber(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// a '-' pad char can turn out to be the sign of the padded number:
	// stripping both dashes leaves "5", which a sign-requiring element
	// rejects, so one dash is restored and "-5" parses
	f := buildStrict(func(b *Builder) {
		b.PadNextWith(3, '-')
		b.AppendValueStyled(chronofmt.Year, 1, 3, SignAlways)
	})
	parsed, pos := f.ParseAt("--5", 0)
	if pos != 3 {
		t.Fatalf("expected position 3, have %d", pos)
	}
	if v := parsed.Field(chronofmt.Year); v != -5 {
		t.Errorf("expected -5, have %d", v)
	}
}

func TestFormatMissingField(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := buildStrict(func(b *Builder) {
		b.AppendValue(chronofmt.DayOfMonth)
	})
	if _, err := f.Format(chronofmt.FieldMap{chronofmt.MonthOfYear: 6}); err == nil {
		t.Error("expected an error for the missing field")
	}
}
