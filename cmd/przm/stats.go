package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/prizma-news/prizma/internal/feed"
	"github.com/prizma-news/prizma/internal/filter"
)

func runStats() {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	in := fs.String("feed", envOrDefault("PRIZMA_FEED", defaultFeed), "feed.json path or URL")
	noArchive := fs.Bool("no-archive", false, "Skip the history section")
	fs.Parse(os.Args[1:])

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	loader := feed.NewLoader(15 * time.Second)
	doc, err := loader.Load(ctx, *in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", feed.FailedMessage)
		os.Exit(1)
	}

	// --- Current feed ---

	fmt.Printf("Feed:                  %s\n", *in)
	fmt.Printf("Last updated:          %s\n", doc.LastUpdated)
	fmt.Printf("Items:                 %d\n", len(doc.Items))

	var biasSum float64
	var scored, ru int
	for _, it := range doc.Items {
		if it.BiasScore > 0 {
			biasSum += it.DisplayBias()
			scored++
		}
		if it.Lang == "ru" {
			ru++
		}
	}
	if scored > 0 {
		fmt.Printf("Mean bias (scored):    %.1f\n", biasSum/float64(scored))
	}
	fmt.Printf("Russian-language:      %d\n", ru)

	sources := filter.Sources(doc.Items)
	fmt.Printf("\nSources (%d):\n", len(sources))
	for _, name := range sources {
		q := filter.NewQuery()
		q.Source = name
		fmt.Printf("  %-25s %d\n", name, len(filter.Apply(doc.Items, q)))
	}

	// --- History ---
	if *noArchive {
		return
	}

	st := openArchive()
	defer st.Close()

	total, err := st.Count()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to read archive: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("=== Archive ===")
	fmt.Printf("Total archived:        %d\n", total)

	counts, err := st.SourceCounts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to read source counts: %v\n", err)
		return
	}
	for _, sc := range counts {
		fmt.Printf("  %-25s %-6d mean bias %.1f\n", sc.Source, sc.Count, sc.Bias)
	}
}
