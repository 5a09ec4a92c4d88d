package cache

import "fmt"

// migration is one schema step. Statements must be idempotent; the target
// version is persisted via PRAGMA user_version only after the whole step
// commits.
type migration struct {
	version int
	stmts   []string
}

var migrations = []migration{
	{
		version: 1,
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS embed_cache (
				video_id TEXT PRIMARY KEY,
				embed_markup TEXT NOT NULL,
				aspect_ratio REAL NOT NULL DEFAULT 0,
				created_at INTEGER NOT NULL
			)`,
		},
	},
}

// migrate applies pending migrations in order.
func (s *Store) migrate() error {
	var current int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning migration %d: %w", m.version, err)
		}
		for _, stmt := range m.stmts {
			if _, err := tx.Exec(stmt); err != nil {
				tx.Rollback()
				return fmt.Errorf("applying migration %d: %w", m.version, err)
			}
		}
		// PRAGMA does not accept bind parameters
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", m.version, err)
		}
	}

	return nil
}
