package update

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CleanHTML strips markup from feed-supplied text: entities are unescaped,
// tags removed, and whitespace collapsed to single spaces.
func CleanHTML(s string) string {
	s = html.UnescapeString(s)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err == nil {
		s = doc.Text()
	}
	return strings.Join(strings.Fields(s), " ")
}

// Shorten trims text to at most max runes, appending an ellipsis when cut.
func Shorten(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimRight(string(runes[:max-1]), " ") + "…"
}
