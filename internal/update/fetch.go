package update

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"
)

// maxEntriesPerFeed caps how many entries one source contributes per build.
const maxEntriesPerFeed = 15

// excerptLen bounds the cleaned excerpt kept from each entry.
const excerptLen = 300

// Entry is one cleaned RSS entry before summarization.
type Entry struct {
	Title       string
	Excerpt     string
	URL         string
	PublishedAt string // raw feed timestamp, passed through to feed.json
}

// Fetcher retrieves and cleans entries from RSS sources. Requests are
// rate-limited so a build never hammers the upstream feeds.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewFetcher creates a Fetcher with the given HTTP timeout and a global
// requests-per-second cap across all sources.
func NewFetcher(timeout time.Duration, rps float64) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Fetch retrieves one source and returns its cleaned entries, newest-first
// as provided by the feed, capped at maxEntriesPerFeed.
func (f *Fetcher) Fetch(ctx context.Context, src Source) ([]Entry, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "prizma/1.0 (+https://github.com/prizma-news/prizma)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := make([]Entry, 0, maxEntriesPerFeed)
	for _, item := range parsed.Items {
		if len(entries) == maxEntriesPerFeed {
			break
		}

		published := item.Published
		if published == "" {
			published = item.Updated
		}

		entries = append(entries, Entry{
			Title:       CleanHTML(item.Title),
			Excerpt:     Shorten(CleanHTML(item.Description), excerptLen),
			URL:         item.Link,
			PublishedAt: published,
		})
	}
	return entries, nil
}
