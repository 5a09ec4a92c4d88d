// Package cache is the durable embed cache: a SQLite table mapping a
// provider-scoped video ID to previously resolved embed markup and
// aspect ratio. It is the single authority for avoiding redundant
// oEmbed calls.
package cache

import (
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"vidembed/internal/media"
)

// Store is a durable embed cache backed by SQLite. Safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path and applies
// any pending schema migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating cache db: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Lookup returns the cached embed for videoID, or nil when absent.
func (s *Store) Lookup(videoID string) (*media.Embed, error) {
	row := s.db.QueryRow(
		"SELECT video_id, embed_markup, aspect_ratio, created_at FROM embed_cache WHERE video_id = ?",
		videoID,
	)

	var e media.Embed
	var createdAt int64
	err := row.Scan(&e.VideoID, &e.Markup, &e.AspectRatio, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cache row: %w", err)
	}
	e.CreatedAt = time.Unix(createdAt, 0)
	return &e, nil
}

// Insert stores a freshly fetched embed. A duplicate key is ignored:
// two requests racing to resolve the same previously-uncached video both
// write the same content, so the first write wins harmlessly. Rows are
// never updated in place; an aspect ratio of 0 stays 0.
func (s *Store) Insert(videoID, markup string, aspectRatio float64) error {
	// 2-decimal precision is sufficient for padding computation
	ratio := math.Round(aspectRatio*100) / 100

	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO embed_cache (video_id, embed_markup, aspect_ratio, created_at) VALUES (?, ?, ?, ?)",
		videoID, markup, ratio, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("inserting cache row: %w", err)
	}
	return nil
}

// Clear removes all cached rows and returns how many were deleted.
func (s *Store) Clear() (int64, error) {
	res, err := s.db.Exec("DELETE FROM embed_cache")
	if err != nil {
		return 0, fmt.Errorf("clearing cache: %w", err)
	}
	return res.RowsAffected()
}

// Count returns the number of cached rows.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM embed_cache").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cache rows: %w", err)
	}
	return n, nil
}
