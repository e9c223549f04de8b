// Command przm is the prizma maintenance CLI.
//
// Usage:
//
//	przm                    Show help
//	przm update             Rebuild feed.json from the configured sources
//	przm render             Render feed.json to a static HTML page
//	przm stats              Feed and archive statistics
package main

import (
	"fmt"
	"os"
)

const usage = `przm — prizma feed maintenance CLI

Usage:
  przm <command> [flags]

Commands:
  update      Fetch the configured RSS sources and rebuild feed.json
  render      Render feed.json to a static HTML page
  stats       Feed and archive statistics

Environment:
  OPENROUTER_API_KEY  OpenRouter key for LLM recaps (optional; heuristic fallback)
  SOURCES_JSON        Path to a sources.json overriding the built-in roster
  PRIZMA_FEED         feed.json location used by render and stats

Run 'przm <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "update":
		runUpdate()
	case "render":
		runRender()
	case "stats":
		runStats()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "przm: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
