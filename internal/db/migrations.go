package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS programs (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			title      TEXT NOT NULL CHECK(title <> ''),
			weekday    INTEGER NOT NULL CHECK(weekday BETWEEN 0 AND 6),
			slot       INTEGER NOT NULL CHECK(slot BETWEEN 1 AND 24),
			span       INTEGER NOT NULL DEFAULT 1 CHECK(span >= 1),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_programs_weekday_slot ON programs(weekday, slot);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating programs table: %w", err)
	}

	return nil
}
