package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/prizma-news/prizma/internal/feed"
	"github.com/prizma-news/prizma/internal/filter"
	"github.com/prizma-news/prizma/internal/format"
	"github.com/prizma-news/prizma/internal/render"
)

func runRender() {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	in := fs.String("feed", envOrDefault("PRIZMA_FEED", defaultFeed), "feed.json path or URL")
	out := fs.String("out", "docs/index.html", "Output path for the HTML page")
	langCode := fs.String("lang", "en", "Page language, en or ru")
	source := fs.String("source", "", "Only render items from this source")
	maxBias := fs.Float64("max-bias", 100, "Only render items at or below this bias score")
	sortMode := fs.String("sort", string(filter.SortRecency), "Sort order: recency or bias")
	fs.Parse(os.Args[1:])

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	loader := feed.NewLoader(15 * time.Second)
	doc, err := loader.Load(ctx, *in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", feed.FailedMessage)
		os.Exit(1)
	}

	q := filter.NewQuery()
	q.Source = *source
	q.MaxBias = *maxBias
	if *sortMode == string(filter.SortBias) {
		q.Sort = filter.SortBias
	}
	items := filter.Apply(doc.Items, q)

	page, err := render.New(format.ParseLang(*langCode)).Page(items, doc.LastUpdated)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, []byte(page), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered %d of %d items to %s\n", len(items), len(doc.Items), *out)
}
