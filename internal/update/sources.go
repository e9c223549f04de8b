// Package update builds feed.json from live RSS sources: it fetches and
// cleans entries, extracts tags, scores bias, and attaches a neutral recap
// (heuristic, or LLM when configured).
package update

import (
	"encoding/json"
	"fmt"
	"os"
)

// Source is one configured RSS feed with its editorial baseline.
type Source struct {
	URL            string  `json:"url"`
	Name           string  `json:"source"`
	Lang           string  `json:"lang"`
	BiasScore      float64 `json:"bias_score"`
	LeftRightIndex float64 `json:"left_right_index"`
}

// sourceJSON distinguishes absent numeric fields from explicit zeros.
type sourceJSON struct {
	URL            string   `json:"url"`
	Source         string   `json:"source"`
	Lang           string   `json:"lang"`
	BiasScore      *float64 `json:"bias_score"`
	LeftRightIndex *float64 `json:"left_right_index"`
}

// DefaultSources is the built-in roster used when no sources.json exists.
func DefaultSources() []Source {
	return []Source{
		{URL: "https://feeds.bbci.co.uk/news/world/rss.xml", Name: "BBC World", Lang: "en", BiasScore: 42, LeftRightIndex: -5},
		{URL: "https://rss.nytimes.com/services/xml/rss/nyt/World.xml", Name: "NYTimes World", Lang: "en", BiasScore: 55, LeftRightIndex: -18},
		{URL: "https://www.theguardian.com/world/rss", Name: "The Guardian", Lang: "en", BiasScore: 60, LeftRightIndex: -28},
		{URL: "https://meduza.io/rss/all", Name: "Meduza", Lang: "ru", BiasScore: 58, LeftRightIndex: -22},
		{URL: "https://tass.ru/rss/v2.xml", Name: "ТАСС", Lang: "ru", BiasScore: 62, LeftRightIndex: 12},
	}
}

// LoadSources reads a sources.json file: an array of
// {url, source, lang?, bias_score?, left_right_index?} records.
// Defaults: lang "en", bias_score 50, left_right_index 0.
func LoadSources(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var raw []sourceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode sources file: %w", err)
	}

	sources := make([]Source, 0, len(raw))
	for i, r := range raw {
		if r.URL == "" {
			return nil, fmt.Errorf("source %d has no url", i)
		}
		s := Source{URL: r.URL, Name: r.Source, Lang: "en", BiasScore: 50}
		if r.Lang != "" {
			s.Lang = r.Lang
		}
		if r.BiasScore != nil {
			s.BiasScore = *r.BiasScore
		}
		if r.LeftRightIndex != nil {
			s.LeftRightIndex = *r.LeftRightIndex
		}
		if s.Name == "" {
			s.Name = s.URL
		}
		sources = append(sources, s)
	}
	return sources, nil
}

// ResolveSources picks the source roster: an explicit path wins, then the
// SOURCES_JSON environment variable, then the built-in defaults.
func ResolveSources(path string) ([]Source, error) {
	if path == "" {
		path = os.Getenv("SOURCES_JSON")
	}
	if path == "" {
		return DefaultSources(), nil
	}
	return LoadSources(path)
}
