package ui

import (
	"strings"
	"testing"

	"github.com/prizma-news/prizma/internal/feed"
	"github.com/prizma-news/prizma/internal/format"
)

func TestRenderBiasBarClamped(t *testing.T) {
	over := renderBiasBar(150)
	if strings.Count(over, "█") != biasBarWidth {
		t.Errorf("bias above 100 should fill the whole bar, got %q", over)
	}
	under := renderBiasBar(-20)
	if strings.Count(under, "█") != 0 {
		t.Errorf("negative bias should leave the bar empty, got %q", under)
	}
	half := renderBiasBar(50)
	if strings.Count(half, "█") != biasBarWidth/2 {
		t.Errorf("bias 50 should half-fill the bar, got %q", half)
	}
}

func TestRenderCardFallbacks(t *testing.T) {
	card := renderCard(feed.NewsItem{Lang: "en"}, false, 80, format.LangEN)
	if !strings.Contains(card, noTitle) {
		t.Error("titleless card should show the fixed placeholder")
	}
	if !strings.Contains(card, "—") {
		t.Error("recapless card should show an em-dash placeholder")
	}
}

func TestRenderCardFields(t *testing.T) {
	it := feed.NewsItem{
		URL:            "https://example.org/a",
		Source:         "BBC World",
		TitleNeutral:   "Parliament passes budget",
		RecapNeutral:   "The budget passed.",
		MainIdea:       "Budget approved",
		Lang:           "en",
		BiasScore:      42,
		LeftRightIndex: -50,
		Confidence:     "llm",
		Tags:           []string{"politics"},
		PublishedAt:    "2024-03-10T08:00:00Z",
	}
	card := renderCard(it, true, 100, format.LangEN)

	for _, want := range []string{
		"Parliament passes budget",
		"BBC World",
		"Mar 10, 2024, 08:00",
		"EN",
		"42/100",
		`moderately "left"`,
		"The budget passed.",
		"Main idea: Budget approved",
		"politics",
		"llm",
		"https://example.org/a",
	} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q", want)
		}
	}
}

func TestRenderCardTagCap(t *testing.T) {
	it := feed.NewsItem{
		TitleNeutral: "t",
		Tags:         []string{"one", "two", "three", "four", "five"},
	}
	card := renderCard(it, false, 100, format.LangEN)
	if strings.Contains(card, "five") {
		t.Error("more than four tag chips rendered")
	}
	if !strings.Contains(card, "four") {
		t.Error("fourth tag chip missing")
	}
}

func TestRenderCardsEmpty(t *testing.T) {
	got := RenderCards(nil, 0, 80, 24, format.LangEN)
	if !strings.Contains(got, "No items") {
		t.Errorf("empty list should render the hint, got %q", got)
	}
}

func TestRenderCardsKeepsCursorVisible(t *testing.T) {
	items := make([]feed.NewsItem, 30)
	for i := range items {
		items[i] = feed.NewsItem{TitleNeutral: "item", Source: "Wire"}
	}
	// A short viewport with the cursor at the end: the last card must
	// still be in the output.
	got := RenderCards(items, len(items)-1, 80, 20, format.LangEN)
	if got == "" {
		t.Fatal("RenderCards returned nothing")
	}
}
