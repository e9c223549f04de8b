package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleFeed = `{
	"last_updated": "2024-03-11T12:00:00+00:00",
	"items": [
		{
			"url": "https://example.org/a",
			"source": "BBC World",
			"title_neutral": "Parliament passes budget",
			"recap_neutral": "The budget passed.",
			"main_idea": "Budget approved",
			"lang": "en",
			"bias_score": 42,
			"left_right_index": -5,
			"confidence": "heuristic",
			"tags": ["politics"],
			"published_at": "2024-03-10T08:00:00Z"
		},
		{
			"url": "https://example.org/b",
			"source": "Meduza",
			"title_neutral": "Второй сюжет"
		}
	]
}`

func TestLoadFromHTTP(t *testing.T) {
	var gotCacheControl string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCacheControl = r.Header.Get("Cache-Control")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	doc, err := NewLoader(5 * time.Second).Load(context.Background(), srv.URL+"/feed.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if gotCacheControl != "no-cache" {
		t.Errorf("fetch should disable caching, Cache-Control = %q", gotCacheControl)
	}
	if len(doc.Items) != 2 {
		t.Fatalf("loaded %d items, want 2", len(doc.Items))
	}
	if doc.LastUpdated != "2024-03-11T12:00:00+00:00" {
		t.Errorf("LastUpdated = %q", doc.LastUpdated)
	}

	// Defaults for the sparse second item.
	second := doc.Items[1]
	if second.Lang != "ru" {
		t.Errorf("missing lang should default to ru, got %q", second.Lang)
	}
	if second.Tags == nil {
		t.Error("missing tags should decode as an empty slice")
	}
	if second.BiasScore != 0 {
		t.Errorf("missing bias_score should default to 0, got %v", second.BiasScore)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.json")
	if err := os.WriteFile(path, []byte(sampleFeed), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := NewLoader(time.Second).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(doc.Items) != 2 {
		t.Errorf("loaded %d items, want 2", len(doc.Items))
	}
}

func TestLoadMissingItemsField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"last_updated": ""}`))
	}))
	defer srv.Close()

	doc, err := NewLoader(time.Second).Load(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Items == nil || len(doc.Items) != 0 {
		t.Errorf("missing items field should mean an empty feed, got %v", doc.Items)
	}
}

func TestLoadNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := NewLoader(time.Second).Load(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Load should fail when the server is unreachable")
	}
}

func TestLoadHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewLoader(time.Second).Load(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Load should fail on HTTP 404")
	}
}

func TestLoadMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer srv.Close()

	_, err := NewLoader(time.Second).Load(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Load should fail on a non-JSON body")
	}
}

func TestDisplayBiasClamped(t *testing.T) {
	if got := (NewsItem{BiasScore: -20}).DisplayBias(); got != 0 {
		t.Errorf("DisplayBias(-20) = %v, want 0", got)
	}
	if got := (NewsItem{BiasScore: 140}).DisplayBias(); got != 100 {
		t.Errorf("DisplayBias(140) = %v, want 100", got)
	}
	if got := (NewsItem{BiasScore: 55}).DisplayBias(); got != 55 {
		t.Errorf("DisplayBias(55) = %v, want 55", got)
	}
}

func TestTitleFallback(t *testing.T) {
	it := NewsItem{TitleNeutral: "neutral", TitleOriginal: "original"}
	if it.Title() != "neutral" {
		t.Errorf("Title should prefer the neutral title")
	}
	it.TitleNeutral = ""
	if it.Title() != "original" {
		t.Errorf("Title should fall back to the original title")
	}
	it.TitleOriginal = ""
	if it.Title() != "" {
		t.Errorf("Title of a titleless item should be empty")
	}
}

func TestPublishedZeroOnGarbage(t *testing.T) {
	it := NewsItem{PublishedAt: "never"}
	if !it.Published().IsZero() {
		t.Error("unparseable published_at should yield the zero time")
	}
}
