package format

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/chronofmt"
)

var fractionNanoCases = []struct {
	min, max int
	value    int64
	out      string
}{
	{0, 9, 0, ""},
	{0, 9, 2, ".000000002"},
	{0, 9, 20, ".00000002"},
	{0, 9, 2000, ".000002"},
	{0, 9, 2000000, ".002"},
	{0, 9, 200000000, ".2"},
	{0, 9, 123456789, ".123456789"},
	{0, 9, 12345678, ".012345678"},
	{1, 9, 0, ".0"},
	{1, 9, 200000000, ".2"},
	{2, 3, 0, ".00"},
	{2, 3, 2, ".000"},
	{2, 3, 2000000, ".002"},
	{2, 3, 200000000, ".20"},
	{2, 3, 123456789, ".123"},
	{6, 6, 0, ".000000"},
	{6, 6, 123456, ".000123"},
	{6, 6, 1234567, ".001234"},
	{6, 6, 123456789, ".123456"},
}

func TestFractionPrintNanos(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, c := range fractionNanoCases {
		min, max := c.min, c.max
		f := buildStrict(func(b *Builder) {
			b.AppendFraction(chronofmt.NanoOfSecond, min, max)
		})
		out, err := f.Format(chronofmt.FieldMap{chronofmt.NanoOfSecond: c.value})
		if err != nil {
			t.Errorf("Fraction(%d,%d) of %d: unexpected error %v", c.min, c.max, c.value, err)
			continue
		}
		if out != c.out {
			t.Errorf("Fraction(%d,%d) of %d: expected %q, have %q", c.min, c.max, c.value, c.out, out)
		}
	}
}

func TestFractionParseNanos(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, c := range fractionNanoCases {
		min, max := c.min, c.max
		f := buildStrict(func(b *Builder) {
			b.AppendFraction(chronofmt.NanoOfSecond, min, max)
		})
		parsed, pos := f.ParseAt(c.out, 0)
		if pos != len(c.out) {
			t.Errorf("Fraction(%d,%d) on %q: expected position %d, have %d",
				c.min, c.max, c.out, len(c.out), pos)
			continue
		}
		if c.out == "" {
			// zero-width success records nothing
			if parsed.HasField(chronofmt.NanoOfSecond) {
				t.Errorf("Fraction(%d,%d) on empty input recorded a value", c.min, c.max)
			}
			continue
		}
		// parsing truncated output recovers the truncated value
		expected := c.value
		if c.max < 9 {
			expected = c.value / pow10[9-c.max] * pow10[9-c.max]
		}
		if v := parsed.Field(chronofmt.NanoOfSecond); v != expected {
			t.Errorf("Fraction(%d,%d) on %q: expected value %d, have %d",
				c.min, c.max, c.out, expected, v)
		}
	}
}

func TestFractionSecondOfMinute(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		min, max int
		value    int64
		out      string
	}{
		{0, 9, 0, ""},
		{0, 9, 3, ".05"},
		{0, 9, 6, ".1"},
		{0, 9, 15, ".25"},
		{0, 9, 30, ".5"},
		{0, 9, 45, ".75"},
		{2, 2, 0, ".00"},
		{2, 2, 3, ".05"},
		{2, 2, 6, ".10"},
		{2, 2, 30, ".50"},
	}
	for _, c := range cases {
		min, max := c.min, c.max
		f := buildStrict(func(b *Builder) {
			b.AppendFraction(chronofmt.SecondOfMinute, min, max)
		})
		out, err := f.Format(chronofmt.FieldMap{chronofmt.SecondOfMinute: c.value})
		if err != nil {
			t.Errorf("Fraction(%d,%d) of %d s: unexpected error %v", c.min, c.max, c.value, err)
			continue
		}
		if out != c.out {
			t.Errorf("Fraction(%d,%d) of %d s: expected %q, have %q", c.min, c.max, c.value, c.out, out)
			continue
		}
		if out == "" {
			continue
		}
		parsed, pos := f.ParseAt(out, 0)
		if pos != len(out) {
			t.Errorf("Fraction(%d,%d) on %q: expected position %d, have %d", c.min, c.max, out, len(out), pos)
			continue
		}
		if v := parsed.Field(chronofmt.SecondOfMinute); v != c.value {
			t.Errorf("Fraction(%d,%d) on %q: expected %d s back, have %d", c.min, c.max, out, c.value, v)
		}
	}
}

func TestFractionParseFailures(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	minThree := buildStrict(func(b *Builder) {
		b.AppendFraction(chronofmt.NanoOfSecond, 3, 6)
	})
	// missing separator with a minimum width
	if _, pos := minThree.ParseAt("123456789", 0); pos != ^0 {
		t.Errorf("expected failure at ^0, have %d", pos)
	}
	// separator but not enough digits
	if _, pos := minThree.ParseAt(".12", 0); pos != ^1 {
		t.Errorf("expected failure at ^1, have %d", pos)
	}
	// separator with no digits at all
	optional := buildStrict(func(b *Builder) {
		b.AppendFraction(chronofmt.NanoOfSecond, 0, 9)
	})
	if _, pos := optional.ParseAt(".A", 0); pos != ^1 {
		t.Errorf("expected failure at ^1, have %d", pos)
	}
	// no separator with minimum width zero is a zero-width success
	if _, pos := optional.ParseAt("A", 0); pos != 0 {
		t.Errorf("expected zero-width success, have %d", pos)
	}
}

func TestFractionParseLenient(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// lenient drops the width requirements to 0..9
	f := buildLenient(func(b *Builder) {
		b.AppendFraction(chronofmt.NanoOfSecond, 3, 6)
	})
	parsed, pos := f.ParseAt(".5", 0)
	if pos != 2 {
		t.Fatalf("expected position 2, have %d", pos)
	}
	if v := parsed.Field(chronofmt.NanoOfSecond); v != 500000000 {
		t.Errorf("expected 500000000 nanos, have %d", v)
	}
	if _, pos := f.ParseAt("no fraction", 0); pos != 0 {
		t.Errorf("expected zero-width success, have %d", pos)
	}
}

func TestFractionRequiresFixedRange(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	defer func() {
		if recover() == nil {
			t.Error("expected AppendFraction to panic for a variable-range field")
		}
	}()
	NewBuilder().AppendFraction(chronofmt.DayOfMonth, 0, 9)
}
