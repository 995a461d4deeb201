package symbols

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/npillmayer/chronofmt"
)

func TestStandardDigits(t *testing.T) {
	if v := Standard.DigitValue('7'); v != 7 {
		t.Errorf("expected 7, have %d", v)
	}
	if v := Standard.DigitValue('A'); v >= 0 {
		t.Errorf("expected a non-digit, have %d", v)
	}
	if r := Standard.Digit(3); r != '3' {
		t.Errorf("expected '3', have %q", r)
	}
}

func TestConvertDigits(t *testing.T) {
	ar := For(language.Arabic)
	if ar.ZeroDigit != '٠' {
		t.Fatalf("expected Arabic-Indic zero, have %q", ar.ZeroDigit)
	}
	if s := ar.ConvertDigits("2008-06-30"); s != "٢٠٠٨-٠٦-٣٠" {
		t.Errorf("unexpected conversion %q", s)
	}
	// identity for the standard symbols
	if s := Standard.ConvertDigits("2008"); s != "2008" {
		t.Errorf("unexpected conversion %q", s)
	}
}

func TestForResolvesLocales(t *testing.T) {
	if For(language.English) != Standard {
		t.Error("English must resolve to the standard symbols")
	}
	if For(language.German) != Standard {
		t.Error("unsupported locales must fall back to the standard symbols")
	}
	if For(language.Arabic).ZeroDigit != For(language.MustParse("ar-EG")).ZeroDigit {
		t.Error("Arabic variants must share their symbols")
	}
}

func TestNamesLookup(t *testing.T) {
	en := Names(language.English)
	if s, ok := en.Text(chronofmt.MonthOfYear, Full, 1); !ok || s != "January" {
		t.Errorf("expected January, have %q (%t)", s, ok)
	}
	if s, ok := en.Text(chronofmt.MonthOfYear, Short, 1); !ok || s != "Jan" {
		t.Errorf("expected Jan, have %q (%t)", s, ok)
	}
	if _, ok := en.Text(chronofmt.MonthOfYear, Full, 13); ok {
		t.Error("expected no name for month 13")
	}
	if _, ok := en.Text(chronofmt.Year, Full, 2008); ok {
		t.Error("expected no name table for years")
	}
}

func TestNamesFallback(t *testing.T) {
	if Names(language.Japanese) != Names(language.English) {
		t.Error("unsupported locales must fall back to English")
	}
	fr := Names(language.French)
	if s, _ := fr.Text(chronofmt.MonthOfYear, Full, 8); s != "août" {
		t.Errorf("expected août, have %q", s)
	}
}

func TestCandidatesLongestFirst(t *testing.T) {
	en := Names(language.English)
	cands := en.Candidates(chronofmt.MonthOfYear, Full)
	if len(cands) != 12 {
		t.Fatalf("expected 12 candidates, have %d", len(cands))
	}
	for i := 1; i < len(cands); i++ {
		if len(cands[i].Text) > len(cands[i-1].Text) {
			t.Fatalf("candidates out of order: %q before %q",
				cands[i-1].Text, cands[i].Text)
		}
	}
}

func TestRegisterNamesReplaces(t *testing.T) {
	n := NewFieldNames(language.Italian)
	n.Set(chronofmt.MonthOfYear, Full, 1, "gennaio")
	RegisterNames(n)
	if s, _ := Names(language.Italian).Text(chronofmt.MonthOfYear, Full, 1); s != "gennaio" {
		t.Errorf("expected gennaio, have %q", s)
	}
}
