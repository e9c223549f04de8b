package e2e

import (
	"path/filepath"

	"github.com/prizma-news/prizma/internal/feed"
	"github.com/prizma-news/prizma/internal/update"
)

// seedFixtureFeed writes a deterministic feed.json and returns its path.
func seedFixtureFeed(dir string) (string, error) {
	doc := &feed.Document{
		LastUpdated: "2024-06-01T12:00:00Z",
		Items: []feed.NewsItem{
			{
				URL:            "https://example.com/fixture-1",
				Source:         "Fixture Wire",
				TitleNeutral:   "Fixture Item One",
				RecapNeutral:   "A deterministic item for UI tests.",
				MainIdea:       "Deterministic fixtures keep assertions stable.",
				Lang:           "en",
				BiasScore:      40,
				LeftRightIndex: -5,
				Confidence:     "heuristic",
				Tags:           []string{"tech"},
				PublishedAt:    "2024-06-01T10:00:00Z",
			},
			{
				URL:          "https://example.com/fixture-2",
				Source:       "Fixture Wire",
				TitleNeutral: "Unrelated budget story",
				RecapNeutral: "Second item so filtering changes the count.",
				Lang:         "en",
				BiasScore:    70,
				Tags:         []string{"economy"},
				PublishedAt:  "2024-06-01T09:00:00Z",
			},
		},
	}
	path := filepath.Join(dir, "feed.json")
	if err := update.WriteDocument(doc, path); err != nil {
		return "", err
	}
	return path, nil
}
