package format

import (
	"math"
	"testing"
)

func TestDateRFC3339(t *testing.T) {
	got := Date("2024-06-01T14:30:00Z", LangEN)
	want := "Jun 01, 2024, 14:30"
	if got != want {
		t.Errorf("Date = %q, want %q", got, want)
	}
}

func TestDateRussian(t *testing.T) {
	got := Date("2024-01-05T09:05:00Z", LangRU)
	want := "05 янв. 2024 г., 09:05"
	if got != want {
		t.Errorf("Date = %q, want %q", got, want)
	}
}

func TestDateRSSLayout(t *testing.T) {
	// RSS published strings pass through the builder untouched.
	got := Date("Mon, 02 Jan 2006 15:04:05 -0700", LangEN)
	want := "Jan 02, 2006, 15:04"
	if got != want {
		t.Errorf("Date = %q, want %q", got, want)
	}
}

func TestDateFallsBackToRawInput(t *testing.T) {
	raw := "sometime last week"
	if got := Date(raw, LangEN); got != raw {
		t.Errorf("Date should return unparseable input unchanged, got %q", got)
	}
}

func TestDateEmpty(t *testing.T) {
	if got := Date("", LangRU); got != "" {
		t.Errorf("Date of empty input should be empty, got %q", got)
	}
}

func TestParseDateReportsFailure(t *testing.T) {
	if _, ok := ParseDate("not a date"); ok {
		t.Error("ParseDate should fail on garbage input")
	}
	if _, ok := ParseDate(""); ok {
		t.Error("ParseDate should fail on empty input")
	}
	if _, ok := ParseDate("2024-06-01T14:30:00Z"); !ok {
		t.Error("ParseDate should accept RFC3339")
	}
}

func TestLeftRight(t *testing.T) {
	tests := []struct {
		index float64
		lang  Lang
		want  string
	}{
		{-50, LangEN, `moderately "left"`},
		{-35, LangEN, `moderately "left"`},
		{50, LangEN, `moderately "right"`},
		{35, LangEN, `moderately "right"`},
		{0, LangEN, `near "center"`},
		{-34.9, LangEN, `near "center"`},
		{34.9, LangEN, `near "center"`},
		{-50, LangRU, `умеренно "левый"`},
		{50, LangRU, `умеренно "правый"`},
		{0, LangRU, `ближе к "центру"`},
	}
	for _, tt := range tests {
		if got := LeftRight(tt.index, tt.lang); got != tt.want {
			t.Errorf("LeftRight(%v, %s) = %q, want %q", tt.index, tt.lang, got, tt.want)
		}
	}
}

func TestLeftRightNonFinite(t *testing.T) {
	if got := LeftRight(math.NaN(), LangEN); got != "n/a" {
		t.Errorf("LeftRight(NaN, en) = %q, want n/a", got)
	}
	if got := LeftRight(math.Inf(1), LangRU); got != "н/д" {
		t.Errorf("LeftRight(+Inf, ru) = %q, want н/д", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-20, 0, 100); got != 0 {
		t.Errorf("Clamp(-20) = %v, want 0", got)
	}
	if got := Clamp(150, 0, 100); got != 100 {
		t.Errorf("Clamp(150) = %v, want 100", got)
	}
	if got := Clamp(42, 0, 100); got != 42 {
		t.Errorf("Clamp(42) = %v, want 42", got)
	}
}

func TestParseLang(t *testing.T) {
	if ParseLang("ru_RU.UTF-8") != LangRU {
		t.Error("ru_RU.UTF-8 should map to LangRU")
	}
	if ParseLang("ru") != LangRU {
		t.Error("ru should map to LangRU")
	}
	if ParseLang("en_US.UTF-8") != LangEN {
		t.Error("en_US.UTF-8 should map to LangEN")
	}
	if ParseLang("") != LangEN {
		t.Error("empty locale should fall back to LangEN")
	}
}
