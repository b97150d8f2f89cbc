package store

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS timeblocks (
			date_key   TEXT NOT NULL,
			position   INTEGER NOT NULL,
			id         INTEGER NOT NULL,
			task_name  TEXT NOT NULL DEFAULT '',
			category   TEXT NOT NULL DEFAULT '',
			start_time TEXT NOT NULL,
			end_time   TEXT NOT NULL,
			PRIMARY KEY (date_key, id)
		);

		CREATE TABLE IF NOT EXISTS day_order (
			date_key     TEXT NOT NULL,
			position     INTEGER NOT NULL,
			timeblock_id INTEGER NOT NULL,
			PRIMARY KEY (date_key, position)
		);

		CREATE TABLE IF NOT EXISTS counters (
			name  TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS categories (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			name  TEXT NOT NULL UNIQUE,
			color TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS task_names (
			id   INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		);

		CREATE INDEX IF NOT EXISTS idx_timeblocks_day ON timeblocks(date_key, position);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
