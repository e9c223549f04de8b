package update

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/prizma-news/prizma/internal/feed"
	"github.com/prizma-news/prizma/internal/logging"
)

// EntrySource retrieves cleaned entries for one configured source.
// Satisfied by *Fetcher; tests substitute a fake.
type EntrySource interface {
	Fetch(ctx context.Context, src Source) ([]Entry, error)
}

// Builder assembles a feed document from live sources.
type Builder struct {
	fetcher    EntrySource
	summarizer Summarizer
	now        func() time.Time
}

// NewBuilder creates a Builder. summarizer may be nil or unavailable; the
// heuristic summary is used then.
func NewBuilder(fetcher EntrySource, summarizer Summarizer) *Builder {
	return &Builder{fetcher: fetcher, summarizer: summarizer, now: time.Now}
}

// Build fetches every source and produces the feed document: titleless
// entries are skipped, duplicates (by URL, falling back to title) dropped,
// items sorted newest-first, last_updated stamped with the build time.
//
// A failing source is logged and skipped; Build only fails when not a
// single source could be fetched.
func (b *Builder) Build(ctx context.Context, sources []Source) (*feed.Document, error) {
	var items []feed.NewsItem
	seen := make(map[string]bool)
	fetched := 0

	for _, src := range sources {
		entries, err := b.fetcher.Fetch(ctx, src)
		if err != nil {
			logging.Warn("Source fetch failed", "source", src.Name, "url", src.URL, "error", err)
			continue
		}
		fetched++

		for _, entry := range entries {
			if entry.Title == "" {
				continue
			}
			key := entry.URL
			if key == "" {
				key = entry.Title
			}
			if seen[key] {
				continue
			}
			seen[key] = true

			items = append(items, b.newsItem(ctx, src, entry))
		}
		logging.Info("Source fetched", "source", src.Name, "entries", len(entries))
	}

	if fetched == 0 && len(sources) > 0 {
		return nil, fmt.Errorf("all %d sources failed", len(sources))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Published().After(items[j].Published())
	})

	if items == nil {
		items = []feed.NewsItem{}
	}
	return &feed.Document{
		LastUpdated: b.now().UTC().Format(time.RFC3339),
		Items:       items,
	}, nil
}

// newsItem summarizes and scores one entry. The LLM path is best-effort;
// any failure falls back to the heuristic summary.
func (b *Builder) newsItem(ctx context.Context, src Source, entry Entry) feed.NewsItem {
	var (
		recap, mainIdea string
		tags            []string
		confidence      string
	)

	if b.summarizer != nil && b.summarizer.Available() {
		if summary, err := b.summarizer.Summarize(ctx, entry.Title, entry.Excerpt, src.Lang); err == nil {
			recap = summary.Recap
			mainIdea = summary.MainIdea
			tags = summary.Tags
			confidence = "llm"
		} else {
			logging.Debug("LLM summary failed, using heuristic", "title", entry.Title, "error", err)
		}
	}

	if confidence == "" {
		recap, mainIdea = HeuristicSummary(entry.Title, entry.Excerpt)
		confidence = "heuristic"
	}
	if mainIdea == "" {
		mainIdea = Shorten(entry.Title, ideaLen)
	}
	if len(tags) == 0 {
		tags = ExtractTags(entry.Title + " " + entry.Excerpt)
	}
	if len(tags) > maxItemTags {
		tags = tags[:maxItemTags]
	}

	return feed.NewsItem{
		URL:            entry.URL,
		Source:         src.Name,
		TitleOriginal:  entry.Title,
		TitleNeutral:   entry.Title,
		Excerpt:        entry.Excerpt,
		RecapNeutral:   recap,
		MainIdea:       mainIdea,
		Lang:           src.Lang,
		BiasScore:      ScoreBias(entry.Title, src.BiasScore),
		LeftRightIndex: src.LeftRightIndex,
		Confidence:     confidence,
		Tags:           tags,
		PublishedAt:    entry.PublishedAt,
	}
}

// WriteDocument writes the feed document as indented JSON, creating parent
// directories as needed.
func WriteDocument(doc *feed.Document, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode feed: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write feed: %w", err)
	}
	return nil
}
