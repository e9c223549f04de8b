// Command prizma is the terminal news viewer: it loads feed.json (a local
// path or an http(s) URL) and presents the items as filterable cards.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prizma-news/prizma/internal/feed"
	"github.com/prizma-news/prizma/internal/format"
	"github.com/prizma-news/prizma/internal/logging"
	"github.com/prizma-news/prizma/internal/ui"
)

const defaultFeed = "docs/feed.json"

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	feedFlag := flag.String("feed", "", "feed.json path or URL (default $PRIZMA_FEED or docs/feed.json)")
	langFlag := flag.String("lang", "", "interface language, en or ru (default $PRIZMA_LANG or the locale)")
	flag.Parse()

	location := *feedFlag
	if location == "" {
		location = envOrDefault("PRIZMA_FEED", defaultFeed)
	}

	// Flag wins over environment wins over locale.
	lang := format.DetectLang()
	if code := os.Getenv("PRIZMA_LANG"); code != "" {
		lang = format.ParseLang(code)
	}
	if *langFlag != "" {
		lang = format.ParseLang(*langFlag)
	}

	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Close()

	loader := feed.NewLoader(15 * time.Second)
	loadFeed := func() tea.Cmd {
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
			defer cancel()
			doc, err := loader.Load(ctx, location)
			return ui.FeedLoaded{Doc: doc, Err: err}
		}
	}

	app := ui.NewApp(loadFeed, lang)
	logging.Info("Starting prizma", "feed", location, "lang", string(lang))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Error("UI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
