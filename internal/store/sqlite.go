// Package store provides the SQLite persistence layer.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nvaldez/daygrid/internal/timeblock"
)

// Store errors.
var (
	// ErrPersistence wraps every storage-level failure so callers can
	// distinguish them from domain errors.
	ErrPersistence = errors.New("persistence failure")

	ErrBlankCategoryName     = errors.New("category name must not be blank")
	ErrDuplicateCategoryName = errors.New("category name already exists")
	ErrBlankTaskName         = errors.New("task name must not be blank")
)

const lastIDCounter = "last_timeblock_id"

// SQLite implements timeblock.Store using SQLite.
type SQLite struct {
	db *sql.DB
}

// interface conformance
var _ timeblock.Store = (*SQLite)(nil)

// New opens (or creates) the database at path and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// failure tags a storage error with ErrPersistence. The driver error is
// flattened into the message since callers branch on the sentinel, not the
// driver type.
func failure(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrPersistence, op, err)
}

// Timeblocks returns the day's blocks in stored (chronological) order.
func (s *SQLite) Timeblocks(ctx context.Context, dayKey string) ([]*timeblock.Timeblock, error) {
	query := `
		SELECT id, task_name, category, start_time, end_time
		FROM timeblocks
		WHERE date_key = ?
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query, dayKey)
	if err != nil {
		return nil, failure("querying timeblocks", err)
	}
	defer rows.Close()

	var blocks []*timeblock.Timeblock
	for rows.Next() {
		var tb timeblock.Timeblock
		if err := rows.Scan(&tb.ID, &tb.TaskName, &tb.Category, &tb.Start, &tb.End); err != nil {
			return nil, failure("scanning timeblock", err)
		}
		tb.Recompute()
		blocks = append(blocks, &tb)
	}
	if err := rows.Err(); err != nil {
		return nil, failure("iterating timeblocks", err)
	}

	return blocks, nil
}

// SetTimeblocks replaces the day's whole block list in one transaction.
func (s *SQLite) SetTimeblocks(ctx context.Context, dayKey string, blocks []*timeblock.Timeblock) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return failure("beginning transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM timeblocks WHERE date_key = ?`, dayKey); err != nil {
		return failure("clearing timeblocks", err)
	}

	query := `
		INSERT INTO timeblocks (date_key, position, id, task_name, category, start_time, end_time)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return failure("preparing insert", err)
	}
	defer stmt.Close()

	for i, tb := range blocks {
		if _, err := stmt.ExecContext(ctx, dayKey, i, tb.ID, tb.TaskName, tb.Category, tb.Start, tb.End); err != nil {
			return failure("inserting timeblock", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return failure("committing timeblocks", err)
	}
	return nil
}

// Order returns the day's order index.
func (s *SQLite) Order(ctx context.Context, dayKey string) ([]int64, error) {
	query := `SELECT timeblock_id FROM day_order WHERE date_key = ? ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query, dayKey)
	if err != nil {
		return nil, failure("querying order", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, failure("scanning order", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, failure("iterating order", err)
	}

	return ids, nil
}

// SetOrder replaces the day's whole order index in one transaction.
func (s *SQLite) SetOrder(ctx context.Context, dayKey string, ids []int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return failure("beginning transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM day_order WHERE date_key = ?`, dayKey); err != nil {
		return failure("clearing order", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO day_order (date_key, position, timeblock_id) VALUES (?, ?, ?)`)
	if err != nil {
		return failure("preparing insert", err)
	}
	defer stmt.Close()

	for i, id := range ids {
		if _, err := stmt.ExecContext(ctx, dayKey, i, id); err != nil {
			return failure("inserting order entry", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return failure("committing order", err)
	}
	return nil
}

// LastID returns the installation-wide timeblock id counter, zero when it
// has never been set.
func (s *SQLite) LastID(ctx context.Context) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT value FROM counters WHERE name = ?`, lastIDCounter).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, failure("querying id counter", err)
	}
	return id, nil
}

// SetLastID stores the timeblock id counter.
func (s *SQLite) SetLastID(ctx context.Context, id int64) error {
	query := `
		INSERT INTO counters (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`
	if _, err := s.db.ExecContext(ctx, query, lastIDCounter, id); err != nil {
		return failure("storing id counter", err)
	}
	return nil
}

// Categories returns all categories in creation order.
func (s *SQLite) Categories(ctx context.Context) ([]*timeblock.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, color FROM categories ORDER BY id`)
	if err != nil {
		return nil, failure("querying categories", err)
	}
	defer rows.Close()

	var cats []*timeblock.Category
	for rows.Next() {
		var c timeblock.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color); err != nil {
			return nil, failure("scanning category", err)
		}
		cats = append(cats, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, failure("iterating categories", err)
	}

	return cats, nil
}

// CreateCategory adds a category. The name is trimmed; blank and duplicate
// names are rejected.
func (s *SQLite) CreateCategory(ctx context.Context, name, color string) (*timeblock.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankCategoryName
	}

	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM categories WHERE name = ?`, name).Scan(&exists)
	if err == nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateCategoryName, name)
	}
	if err != sql.ErrNoRows {
		return nil, failure("checking category name", err)
	}

	result, err := s.db.ExecContext(ctx, `INSERT INTO categories (name, color) VALUES (?, ?)`, name, color)
	if err != nil {
		return nil, failure("inserting category", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, failure("getting category id", err)
	}

	return &timeblock.Category{ID: id, Name: name, Color: color}, nil
}

// RenameCategory changes a category's name. Timeblocks referencing the old
// name are not rewritten; they keep the dangling name.
func (s *SQLite) RenameCategory(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankCategoryName
	}
	return s.updateCategory(ctx, `UPDATE categories SET name = ? WHERE id = ?`, name, id)
}

// RecolorCategory changes a category's display color.
func (s *SQLite) RecolorCategory(ctx context.Context, id int64, color string) error {
	return s.updateCategory(ctx, `UPDATE categories SET color = ? WHERE id = ?`, color, id)
}

// DeleteCategory removes a category. Deletion does not cascade: timeblocks
// referencing the category by name are left untouched.
func (s *SQLite) DeleteCategory(ctx context.Context, id int64) error {
	return s.updateCategory(ctx, `DELETE FROM categories WHERE id = ?`, id)
}

func (s *SQLite) updateCategory(ctx context.Context, query string, args ...any) error {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return failure("updating category", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("category: %w", timeblock.ErrNotFound)
	}
	return nil
}

// TaskNames returns all stored task names in creation order.
func (s *SQLite) TaskNames(ctx context.Context) ([]*timeblock.TaskName, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM task_names ORDER BY id`)
	if err != nil {
		return nil, failure("querying task names", err)
	}
	defer rows.Close()

	var names []*timeblock.TaskName
	for rows.Next() {
		var n timeblock.TaskName
		if err := rows.Scan(&n.ID, &n.Name); err != nil {
			return nil, failure("scanning task name", err)
		}
		names = append(names, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, failure("iterating task names", err)
	}

	return names, nil
}

// CreateTaskName stores a task name for autocomplete. Storing a name that
// already exists returns the existing entry.
func (s *SQLite) CreateTaskName(ctx context.Context, name string) (*timeblock.TaskName, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankTaskName
	}

	var existing timeblock.TaskName
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM task_names WHERE name = ?`, name).Scan(&existing.ID, &existing.Name)
	if err == nil {
		return &existing, nil
	}
	if err != sql.ErrNoRows {
		return nil, failure("checking task name", err)
	}

	result, err := s.db.ExecContext(ctx, `INSERT INTO task_names (name) VALUES (?)`, name)
	if err != nil {
		return nil, failure("inserting task name", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, failure("getting task name id", err)
	}

	return &timeblock.TaskName{ID: id, Name: name}, nil
}
