// Package format provides display formatting helpers for the viewer:
// locale-aware dates, left-right leaning labels, and numeric clamping.
package format

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"
)

// Lang selects the display language for formatted output.
type Lang string

const (
	LangEN Lang = "en"
	LangRU Lang = "ru"
)

// ParseLang normalizes a language code to a supported Lang.
// Anything that is not Russian falls back to English.
func ParseLang(code string) Lang {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "ru" || strings.HasPrefix(code, "ru_") || strings.HasPrefix(code, "ru-") {
		return LangRU
	}
	return LangEN
}

// DetectLang picks the display language from the process locale
// (LC_ALL, then LC_MESSAGES, then LANG).
func DetectLang() Lang {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return ParseLang(v)
		}
	}
	return LangEN
}

// dateLayouts are the timestamp layouts accepted when parsing published_at.
// Feeds pass RSS dates through untouched, so RFC 1123 variants show up
// alongside ISO-8601.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	"2006-01-02",
}

// ruMonths are abbreviated Russian month names, indexed by time.Month-1.
var ruMonths = [12]string{
	"янв.", "февр.", "марта", "апр.", "мая", "июня",
	"июля", "авг.", "сент.", "окт.", "нояб.", "дек.",
}

// ParseDate parses a feed timestamp. Returns the zero time and false when
// the input is empty or matches no accepted layout.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date formats a feed timestamp for display: numeric year, abbreviated
// month, two-digit day, two-digit hour and minute. On parse failure the raw
// input is returned unmodified; an absent value yields the empty string.
func Date(raw string, lang Lang) string {
	t, ok := ParseDate(raw)
	if !ok {
		return raw
	}
	if lang == LangRU {
		return fmt.Sprintf("%02d %s %d г., %02d:%02d",
			t.Day(), ruMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
	}
	return t.Format("Jan 02, 2006, 15:04")
}

// DateTime formats an absolute time the same way Date does.
func DateTime(t time.Time, lang Lang) string {
	if t.IsZero() {
		return ""
	}
	if lang == LangRU {
		return fmt.Sprintf("%02d %s %d г., %02d:%02d",
			t.Day(), ruMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
	}
	return t.Format("Jan 02, 2006, 15:04")
}

// LeftRight maps a signed left-right index to a qualitative label.
// Values at or below -35 lean left, at or above +35 lean right, everything
// between reads as near center. Non-finite input yields an n/a marker.
func LeftRight(index float64, lang Lang) string {
	if math.IsNaN(index) || math.IsInf(index, 0) {
		if lang == LangRU {
			return "н/д"
		}
		return "n/a"
	}
	switch {
	case index <= -35:
		if lang == LangRU {
			return `умеренно "левый"`
		}
		return `moderately "left"`
	case index >= 35:
		if lang == LangRU {
			return `умеренно "правый"`
		}
		return `moderately "right"`
	default:
		if lang == LangRU {
			return `ближе к "центру"`
		}
		return `near "center"`
	}
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
