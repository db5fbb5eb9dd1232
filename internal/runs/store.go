package runs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"namesong/internal/config"
)

// Store manages run history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the history database and verifies the
// schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.OutputDir, "runs.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:   db,
		path: dbPath,
		lock: flock.New(dbPath + ".lock"),
	}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the on-disk location of the database.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// withWriteLock serializes mutations across CLI processes.
func (s *Store) withWriteLock(fn func() error) error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("acquire history lock: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()
	return fn()
}

// Record inserts a run. A missing ID is assigned, a missing timestamp is
// stamped with the current time; the stored run is returned.
func (s *Store) Record(ctx context.Context, run Run) (*Run, error) {
	if strings.TrimSpace(run.ID) == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	err := s.withWriteLock(func() error {
		_, err := s.db.ExecContext(
			ctx,
			`INSERT INTO runs (
                id, name, length, hash, result, instructions,
                tempo, musical_key, note_count, score_path, created_at
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID,
			run.Name,
			run.Length,
			int64(run.Hash),
			int64(run.Result),
			run.Instructions,
			run.Tempo,
			run.Key,
			run.NoteCount,
			nullableString(run.ScorePath),
			run.CreatedAt.Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("insert run: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, run.ID)
}

// GetByID fetches a run by identifier.
func (s *Store) GetByID(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+" FROM runs WHERE id = ?", id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, nil
}

// List returns runs newest first. A limit of 0 returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]*Run, error) {
	query := selectColumns + " FROM runs ORDER BY created_at DESC, id"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var result []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		result = append(result, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return result, nil
}

// ListByName returns runs for one name, newest first.
func (s *Store) ListByName(ctx context.Context, name string) ([]*Run, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+" FROM runs WHERE name = ? ORDER BY created_at DESC, id", name)
	if err != nil {
		return nil, fmt.Errorf("list runs for %q: %w", name, err)
	}
	defer rows.Close()

	var result []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		result = append(result, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return result, nil
}

// Count returns the number of recorded runs.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM runs").Scan(&count); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return count, nil
}

// Clear removes all runs and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	var deleted int64
	err := s.withWriteLock(func() error {
		res, err := s.db.ExecContext(ctx, "DELETE FROM runs")
		if err != nil {
			return fmt.Errorf("clear runs: %w", err)
		}
		deleted, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		return nil
	})
	return deleted, err
}

const selectColumns = `SELECT id, name, length, hash, result, instructions,
    tempo, musical_key, note_count, score_path, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var (
		run       Run
		hash      int64
		result    int64
		scorePath sql.NullString
		createdAt string
	)
	err := row.Scan(
		&run.ID,
		&run.Name,
		&run.Length,
		&hash,
		&result,
		&run.Instructions,
		&run.Tempo,
		&run.Key,
		&run.NoteCount,
		&scorePath,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	run.Hash = uint32(hash)
	run.Result = uint32(result)
	run.ScorePath = scorePath.String

	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	run.CreatedAt = parsed
	return &run, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
