// Package db provides SQLite storage for the weekly lineup.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/tvguide/internal/program"
)

// SQLite implements program.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CreateProgram adds a program to the lineup.
// Returns program.ErrProgramOverlap if it shares a slot with an existing program.
func (s *SQLite) CreateProgram(ctx context.Context, p *program.Program) error {
	return insertProgram(ctx, s.db, p)
}

// CreatePrograms adds several programs atomically. Either all are stored or none.
func (s *SQLite) CreatePrograms(ctx context.Context, programs []*program.Program) error {
	if len(programs) == 0 {
		return nil
	}

	// Check the new programs against each other first
	if err := program.CheckOverlaps(programs); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, p := range programs {
		if err := insertProgram(ctx, tx, p); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func insertProgram(ctx context.Context, q querier, p *program.Program) error {
	if err := checkOverlap(ctx, q, p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO programs (title, weekday, slot, span, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := q.ExecContext(ctx, query,
		p.Title,
		p.Weekday,
		p.Slot,
		p.Span,
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting program %q: %w", p.Title, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	p.ID = id

	return nil
}

// checkOverlap returns ErrProgramOverlap if p shares a slot with a stored program.
func checkOverlap(ctx context.Context, q querier, p *program.Program) error {
	query := `
		SELECT title FROM programs
		WHERE weekday = ? AND slot < ? AND ? < slot + span
		LIMIT 1
	`

	var title string
	err := q.QueryRowContext(ctx, query, p.Weekday, p.EndSlot(), p.Slot).Scan(&title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking overlap: %w", err)
	}
	return fmt.Errorf("%w: %q", program.ErrProgramOverlap, title)
}

// GetProgram retrieves a program by ID.
func (s *SQLite) GetProgram(ctx context.Context, id int64) (*program.Program, error) {
	query := `
		SELECT id, title, weekday, slot, span, created_at
		FROM programs
		WHERE id = ?
	`

	p, err := scanProgram(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", program.ErrProgramNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying program: %w", err)
	}
	return p, nil
}

// DeleteProgram removes a program from the lineup.
func (s *SQLite) DeleteProgram(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM programs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting program: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %d", program.ErrProgramNotFound, id)
	}

	return nil
}

// ListPrograms returns the whole lineup ordered by weekday and slot.
func (s *SQLite) ListPrograms(ctx context.Context) ([]*program.Program, error) {
	query := `
		SELECT id, title, weekday, slot, span, created_at
		FROM programs
		ORDER BY weekday, slot
	`
	return s.list(ctx, query)
}

// ListProgramsByWeekday returns one weekday's programs ordered by slot.
func (s *SQLite) ListProgramsByWeekday(ctx context.Context, weekday int) ([]*program.Program, error) {
	query := `
		SELECT id, title, weekday, slot, span, created_at
		FROM programs
		WHERE weekday = ?
		ORDER BY slot
	`
	return s.list(ctx, query, weekday)
}

func (s *SQLite) list(ctx context.Context, query string, args ...any) ([]*program.Program, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying programs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var programs []*program.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning program: %w", err)
		}
		programs = append(programs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating programs: %w", err)
	}

	return programs, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProgram(row scanner) (*program.Program, error) {
	var (
		p         program.Program
		createdAt string
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Weekday, &p.Slot, &p.Span, &createdAt); err != nil {
		return nil, err
	}

	var err error
	p.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	return &p, nil
}

// parseTimestamp accepts RFC3339 and SQLite's CURRENT_TIMESTAMP format.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", s)
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
