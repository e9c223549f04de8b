package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/prizma-news/prizma/internal/logging"
	"github.com/prizma-news/prizma/internal/update"
)

func runUpdate() {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	out := fs.String("out", defaultFeed, "Output path for feed.json")
	sourcesPath := fs.String("sources", "", "sources.json path (default $SOURCES_JSON or the built-in roster)")
	skipArchive := fs.Bool("no-archive", false, "Skip recording the build into the history database")
	timeout := fs.Duration("timeout", 3*time.Minute, "Overall build timeout")
	fs.Parse(os.Args[1:])

	// Best-effort; the environment may already carry the keys.
	_ = godotenv.Load()

	// Unlike the TUI, the CLI logs straight to stderr.
	logging.InitWriter(os.Stderr, log.InfoLevel)

	sources, err := update.ResolveSources(*sourcesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var summarizer update.Summarizer
	if key := strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY")); key != "" {
		summarizer = update.NewOpenRouterSummarizer(key)
		fmt.Println("LLM recaps: enabled (OpenRouter)")
	} else {
		fmt.Println("LLM recaps: disabled, using heuristic summaries")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	fetcher := update.NewFetcher(30*time.Second, 2)
	builder := update.NewBuilder(fetcher, summarizer)

	fmt.Printf("Fetching %d sources...\n", len(sources))
	doc, err := builder.Build(ctx, sources)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := update.WriteDocument(doc, *out); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d items to %s (last_updated %s)\n", len(doc.Items), *out, doc.LastUpdated)

	if *skipArchive {
		return
	}
	st := openArchive()
	defer st.Close()
	added, err := st.Record(doc.Items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to archive items: %v\n", err)
		return
	}
	fmt.Printf("Archived %d new items\n", added)
}
