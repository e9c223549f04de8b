// Package filter provides the pure filter/sort engine for feed items.
// All functions are simple: []NewsItem in, []NewsItem out. No side effects.
package filter

import (
	"sort"
	"strings"

	"github.com/prizma-news/prizma/internal/feed"
)

// SortMode selects the ordering of filtered results.
type SortMode string

const (
	// SortRecency orders by published time, newest first. This is the
	// default; items without a parseable timestamp sort last.
	SortRecency SortMode = "recency"

	// SortBias orders by bias score, highest first. A missing score counts
	// as 0.
	SortBias SortMode = "bias"
)

// Query describes one filter/sort pass over the item list.
type Query struct {
	// Text is matched case-insensitively as a substring of the item
	// haystack (neutral title, main idea, and tags joined by spaces).
	// Empty matches everything.
	Text string

	// Source keeps only items whose source equals it exactly
	// (case-sensitive). Empty keeps all sources.
	Source string

	// MaxBias is the inclusive upper bound on bias_score. Items with a
	// missing score (0) always pass.
	MaxBias float64

	// Sort selects the ordering. Anything other than SortBias means
	// recency order.
	Sort SortMode
}

// NewQuery returns the default query: no text, all sources, bias up to 100,
// recency order.
func NewQuery() Query {
	return Query{MaxBias: 100, Sort: SortRecency}
}

// haystack builds the searchable text for an item.
func haystack(it feed.NewsItem) string {
	parts := []string{it.TitleNeutral, it.MainIdea}
	parts = append(parts, it.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Apply runs the query over items and returns a newly materialized, ordered
// subset. The input slice is never mutated; ties keep first-seen order.
func Apply(items []feed.NewsItem, q Query) []feed.NewsItem {
	text := strings.ToLower(strings.TrimSpace(q.Text))

	result := make([]feed.NewsItem, 0, len(items))
	for _, it := range items {
		if q.Source != "" && it.Source != q.Source {
			continue
		}
		if it.BiasScore > q.MaxBias {
			continue
		}
		if text != "" && !strings.Contains(haystack(it), text) {
			continue
		}
		result = append(result, it)
	}

	if q.Sort == SortBias {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].BiasScore > result[j].BiasScore
		})
	} else {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Published().After(result[j].Published())
		})
	}

	return result
}

// Sources returns the distinct, alphabetically sorted set of source names
// across items. Empty source fields are ignored.
func Sources(items []feed.NewsItem) []string {
	seen := make(map[string]bool, len(items))
	var names []string
	for _, it := range items {
		if it.Source == "" || seen[it.Source] {
			continue
		}
		seen[it.Source] = true
		names = append(names, it.Source)
	}
	sort.Strings(names)
	return names
}
