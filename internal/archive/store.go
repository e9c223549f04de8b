// Package archive keeps a history of every item that ever appeared in the
// feed. The feed file itself only holds the latest build; the archive is
// append-only SQLite, so runs of the updater accumulate.
//
// Store is safe for concurrent use. The underlying sql.DB handles connection
// pooling and serialization.
package archive

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"database/sql"

	"github.com/prizma-news/prizma/internal/feed"
	"github.com/prizma-news/prizma/internal/logging"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// Store persists seen feed items.
type Store struct {
	db *sql.DB
}

// Open creates or opens the archive database at the given path and applies
// the schema.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS items (
		id TEXT PRIMARY KEY,
		url TEXT,
		source TEXT NOT NULL,
		title TEXT NOT NULL,
		bias_score REAL,
		left_right_index REAL,
		published_at TEXT,
		first_seen DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_items_source ON items(source);
	CREATE INDEX IF NOT EXISTS idx_items_first_seen ON items(first_seen DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// itemID keys an item by its URL, falling back to the title for entries
// published without one. Matches the builder's dedup rule.
func itemID(it feed.NewsItem) string {
	key := it.URL
	if key == "" {
		key = it.Title()
	}
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// Record inserts items not seen before and returns how many were new.
// Already-archived items are left untouched, so bias rescoring in a later
// build does not rewrite history.
func (s *Store) Record(items []feed.NewsItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback is safe to call even after commit - it's a no-op
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO items (id, url, source, title, bias_score, left_right_index, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	var added int
	for _, it := range items {
		result, err := stmt.Exec(
			itemID(it),
			it.URL,
			it.Source,
			it.Title(),
			it.BiasScore,
			it.LeftRightIndex,
			it.PublishedAt,
		)
		if err != nil {
			logging.Debug("Failed to archive item", "url", it.URL, "error", err)
			continue
		}
		rows, err := result.RowsAffected()
		if err == nil && rows > 0 {
			added++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return added, nil
}

// Count returns the total number of archived items.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM items").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return n, nil
}

// SourceCount pairs a source name with its archived item count.
type SourceCount struct {
	Source string
	Count  int
	Bias   float64 // mean bias score across the source's archived items
}

// SourceCounts returns per-source totals, busiest source first.
func (s *Store) SourceCounts() ([]SourceCount, error) {
	rows, err := s.db.Query(`
		SELECT source, COUNT(*), AVG(bias_score)
		FROM items
		GROUP BY source
		ORDER BY COUNT(*) DESC, source
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query source counts: %w", err)
	}
	defer rows.Close()

	var counts []SourceCount
	for rows.Next() {
		var sc SourceCount
		var bias sql.NullFloat64
		if err := rows.Scan(&sc.Source, &sc.Count, &bias); err != nil {
			return nil, fmt.Errorf("failed to scan source count: %w", err)
		}
		sc.Bias = bias.Float64
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
