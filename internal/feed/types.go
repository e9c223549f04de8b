// Package feed defines the feed document consumed by the viewer and the
// loader that retrieves it.
//
// A feed is a pre-built JSON snapshot produced by the builder (przm update)
// or any compatible external process. Items are never mutated after load;
// a reload replaces the whole slice.
package feed

import (
	"time"

	"github.com/prizma-news/prizma/internal/format"
)

// NewsItem is a single neutral-summarized news entry.
//
// Every field is optional on the wire. Missing numeric fields decode as 0
// and missing strings as ""; Normalize fills the stated defaults.
type NewsItem struct {
	URL            string   `json:"url"`
	Source         string   `json:"source"`
	TitleOriginal  string   `json:"title_original"`
	TitleNeutral   string   `json:"title_neutral"`
	Excerpt        string   `json:"excerpt,omitempty"`
	RecapNeutral   string   `json:"recap_neutral"`
	MainIdea       string   `json:"main_idea"`
	Lang           string   `json:"lang"`
	BiasScore      float64  `json:"bias_score"`
	LeftRightIndex float64  `json:"left_right_index"`
	Confidence     string   `json:"confidence"`
	Tags           []string `json:"tags"`
	PublishedAt    string   `json:"published_at"`
}

// Document is the top-level shape of feed.json.
type Document struct {
	LastUpdated string     `json:"last_updated"`
	Items       []NewsItem `json:"items"`
}

// Title returns the display title: neutral first, then original.
// Returns "" when the item carries no title at all.
func (it NewsItem) Title() string {
	if it.TitleNeutral != "" {
		return it.TitleNeutral
	}
	return it.TitleOriginal
}

// DisplayBias returns the bias score clamped into [0,100] for display.
// The stored value is left untouched.
func (it NewsItem) DisplayBias() float64 {
	return format.Clamp(it.BiasScore, 0, 100)
}

// Published parses the item timestamp. Missing or unparseable values yield
// the zero time, which sorts after everything else under recency order.
func (it NewsItem) Published() time.Time {
	t, _ := format.ParseDate(it.PublishedAt)
	return t
}

// Normalize applies per-field defaults to decoded items: lang defaults to
// "ru" and a nil tag slice becomes empty so callers can range freely.
func (d *Document) Normalize() {
	for i := range d.Items {
		if d.Items[i].Lang == "" {
			d.Items[i].Lang = "ru"
		}
		if d.Items[i].Tags == nil {
			d.Items[i].Tags = []string{}
		}
	}
}
