package chronofmt

import "testing"

func TestOffsetID(t *testing.T) {
	cases := []struct {
		h, m, s int
		id      string
	}{
		{0, 0, 0, "Z"},
		{1, 0, 0, "+01:00"},
		{-1, -2, -3, "-01:02:03"},
		{18, 0, 0, "+18:00"},
		{-18, 0, 0, "-18:00"},
		{5, 30, 0, "+05:30"},
	}
	for _, c := range cases {
		if id := OffsetOf(c.h, c.m, c.s).ID(); id != c.id {
			t.Errorf("offset %d:%d:%d: expected %q, have %q", c.h, c.m, c.s, c.id, id)
		}
	}
}

func TestOffsetSeconds(t *testing.T) {
	if s := OffsetOf(-1, -30, 0).Seconds(); s != -5400 {
		t.Errorf("expected -5400 s, have %d", s)
	}
	if o := OffsetSeconds(3600); o != OffsetOf(1, 0, 0) {
		t.Errorf("expected +01:00, have %v", o)
	}
}

func TestOffsetPanics(t *testing.T) {
	mustPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected a panic", name)
			}
		}()
		f()
	}
	mustPanic("mixed signs", func() { OffsetOf(1, -30, 0) })
	mustPanic("minutes out of range", func() { OffsetOf(0, 60, 0) })
	mustPanic("beyond +18:00", func() { OffsetOf(18, 0, 1) })
	mustPanic("beyond -18:00", func() { OffsetSeconds(-maxOffsetSeconds - 1) })
}
