package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prizma-news/prizma/internal/logging"
)

// FailedMessage is the fixed status shown in place of the item count when
// the feed cannot be loaded. Load failures never crash the viewer; they
// leave it interactive with an empty list.
const FailedMessage = "failed to load"

// Loader retrieves feed documents from an HTTP URL or a local file path.
type Loader struct {
	client *http.Client
}

// NewLoader creates a Loader with the given HTTP timeout.
func NewLoader(timeout time.Duration) *Loader {
	return &Loader{
		client: &http.Client{Timeout: timeout},
	}
}

// Load retrieves and decodes the feed at location. Locations starting with
// http:// or https:// are fetched over the network with caching disabled;
// everything else is read as a file path.
//
// Decoding is permissive: a missing items field means an empty feed and a
// missing last_updated means an empty string. Any fetch or decode failure is
// logged and returned; callers surface FailedMessage and keep an empty list.
func (l *Loader) Load(ctx context.Context, location string) (*Document, error) {
	var (
		doc *Document
		err error
	)
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		doc, err = l.fetch(ctx, location)
	} else {
		doc, err = readFile(location)
	}
	if err != nil {
		logging.Error("Feed load failed", "location", location, "error", err)
		return nil, err
	}

	if doc.Items == nil {
		doc.Items = []NewsItem{}
	}
	doc.Normalize()

	logging.Info("Feed loaded", "location", location, "items", len(doc.Items), "last_updated", doc.LastUpdated)
	return doc, nil
}

func (l *Loader) fetch(ctx context.Context, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "prizma/1.0 (+https://github.com/prizma-news/prizma)")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}
	return &doc, nil
}

func readFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed file: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}
	return &doc, nil
}
