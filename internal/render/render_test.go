package render

import (
	"strings"
	"testing"

	"github.com/prizma-news/prizma/internal/feed"
	"github.com/prizma-news/prizma/internal/format"
)

func TestPageEscapesMarkup(t *testing.T) {
	items := []feed.NewsItem{{
		URL:          "https://example.org/a",
		Source:       `Evil "Source"`,
		TitleNeutral: `<script>alert('x')</script>`,
		RecapNeutral: `recap with <b>tags</b> & ampersand`,
		MainIdea:     `idea with 'quotes'`,
		Lang:         "en",
		Tags:         []string{"<img src=x>"},
	}}

	page, err := New(format.LangEN).Page(items, "")
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}

	if strings.Contains(page, "<script>alert") {
		t.Error("script tag from feed content rendered unescaped")
	}
	if !strings.Contains(page, "&lt;script&gt;") {
		t.Error("title should appear HTML-escaped")
	}
	if strings.Contains(page, "<img src=x>") {
		t.Error("tag chip rendered unescaped")
	}
	if strings.Contains(page, "<b>tags</b>") {
		t.Error("recap markup rendered unescaped")
	}
}

func TestPageCardContents(t *testing.T) {
	items := []feed.NewsItem{{
		URL:            "https://example.org/a",
		Source:         "BBC World",
		TitleNeutral:   "Parliament passes budget",
		RecapNeutral:   "The budget passed.",
		MainIdea:       "Budget approved",
		Lang:           "en",
		BiasScore:      42,
		LeftRightIndex: -5,
		Confidence:     "heuristic",
		Tags:           []string{"politics", "economy"},
		PublishedAt:    "2024-03-10T08:00:00Z",
	}}

	page, err := New(format.LangEN).Page(items, "2024-03-11T12:00:00Z")
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}

	for _, want := range []string{
		`href="https://example.org/a"`,
		`target="_blank" rel="noopener noreferrer"`,
		"Parliament passes budget",
		"BBC World",
		"Mar 10, 2024, 08:00",
		">EN<",
		"width: 42%",
		"42/100",
		"-5 · near &#34;center&#34;",
		"The budget passed.",
		"Main idea:</strong> Budget approved",
		">politics<",
		">economy<",
		"heuristic",
		"1 items · updated Mar 11, 2024, 12:00",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestPageBiasBarClamped(t *testing.T) {
	items := []feed.NewsItem{
		{TitleNeutral: "over", BiasScore: 150},
		{TitleNeutral: "under", BiasScore: -10},
	}
	page, err := New(format.LangEN).Page(items, "")
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	if !strings.Contains(page, "width: 100%") {
		t.Error("bias above 100 should clamp the bar to 100%")
	}
	if !strings.Contains(page, "width: 0%") {
		t.Error("negative bias should clamp the bar to 0%")
	}
	// The raw score still shows unclamped.
	if !strings.Contains(page, "150/100") {
		t.Error("raw score should be shown unclamped")
	}
}

func TestPageFallbacks(t *testing.T) {
	items := []feed.NewsItem{{URL: "https://example.org/x", Lang: "ru"}}
	page, err := New(format.LangEN).Page(items, "")
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	if !strings.Contains(page, "(no title)") {
		t.Error("titleless item should render the fixed placeholder")
	}
	if !strings.Contains(page, `class="recap">—<`) {
		t.Error("recapless item should render an em-dash placeholder")
	}
}

func TestPageTagCap(t *testing.T) {
	items := []feed.NewsItem{{
		TitleNeutral: "t",
		Tags:         []string{"one", "two", "three", "four", "five"},
	}}
	page, err := New(format.LangEN).Page(items, "")
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	if strings.Contains(page, ">five<") {
		t.Error("more than four tag chips rendered")
	}
	if !strings.Contains(page, ">four<") {
		t.Error("fourth tag chip missing")
	}
}

func TestRussianLeaningLabel(t *testing.T) {
	items := []feed.NewsItem{{
		TitleNeutral:   "Сюжет",
		Lang:           "ru",
		LeftRightIndex: 0,
	}}
	page, err := New(format.LangRU).Page(items, "")
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	if !strings.Contains(page, "ближе к &#34;центру&#34;") {
		t.Error("ru item should carry the Russian near-center label")
	}
	if !strings.Contains(page, "Суть:") {
		t.Error("ru item should carry the Russian main-idea label")
	}
}

func TestSummaryRussian(t *testing.T) {
	got := New(format.LangRU).Summary(3, "2024-03-11T12:00:00Z")
	if !strings.Contains(got, "Материалов: 3") {
		t.Errorf("summary = %q", got)
	}
	if !strings.Contains(got, "обновлено 11 марта 2024 г., 12:00") {
		t.Errorf("summary = %q", got)
	}
}
