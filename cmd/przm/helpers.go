package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/prizma-news/prizma/internal/archive"
)

const defaultFeed = "docs/feed.json"

// dataDir returns ~/.prizma/, creating it if needed.
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("failed to get home directory: %v", err)
	}
	dir := filepath.Join(home, ".prizma")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("failed to create data directory: %v", err)
	}
	return dir
}

// archivePath returns the path to the item history database.
func archivePath() string {
	return filepath.Join(dataDir(), "archive.db")
}

// openArchive opens the history store or fatals.
func openArchive() *archive.Store {
	st, err := archive.Open(archivePath())
	if err != nil {
		log.Fatalf("failed to open archive: %v", err)
	}
	return st
}

// envOrDefault returns the environment variable value or a fallback.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
