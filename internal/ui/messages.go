// Package ui provides the Bubble Tea TUI for prizma.
package ui

import "github.com/prizma-news/prizma/internal/feed"

// FeedLoaded is sent when the feed document has been fetched and decoded.
// Err is set when the load failed; the viewer then shows the fixed failure
// message and keeps an empty list.
type FeedLoaded struct {
	Doc *feed.Document
	Err error
}
