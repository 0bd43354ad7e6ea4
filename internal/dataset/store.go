// Package dataset persists the animal dataset in SQLite so the server does
// not have to re-parse the CSV export on every start.
//
// A Store is also an animal.DataSource: resolvers can read from it exactly
// as they read from a CSV file.
package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/HendryAvila/uranai/internal/animal"
	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// timeNow is a package-level var to allow test injection.
var timeNow = time.Now

// ─── Config ──────────────────────────────────────────────────────────────────

// Config holds dataset store configuration.
type Config struct {
	// Path is the SQLite database file.
	Path string
}

// DefaultConfig returns the default configuration for the dataset store.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{Path: filepath.Join(home, ".uranai", "animals.db")}
}

// ─── Store ───────────────────────────────────────────────────────────────────

// Store is the SQLite-backed animal dataset.
type Store struct {
	db  *sql.DB
	cfg Config

	// beginTx is swapped in tests to exercise rollback paths.
	beginTx func(ctx context.Context, db *sql.DB) (*sql.Tx, error)
}

// Open creates the parent directory if needed, opens SQLite with WAL mode,
// and runs migrations.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("dataset: empty database path")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0700); err != nil {
		return nil, fmt.Errorf("dataset: create data dir: %w", err)
	}

	db, err := openDB("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("dataset: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, cfg: cfg, beginTx: func(ctx context.Context, db *sql.DB) (*sql.Tx, error) {
		return db.BeginTx(ctx, nil)
	}}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("dataset: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file the store was opened on.
func (s *Store) Path() string { return s.cfg.Path }

// ─── Migrations ──────────────────────────────────────────────────────────────

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS animal_rows (
			year        INTEGER NOT NULL,
			month       INTEGER NOT NULL,
			day         INTEGER NOT NULL,
			serial_date TEXT    NOT NULL,
			idx         INTEGER NOT NULL CHECK (idx BETWEEN 1 AND 60),
			animal      TEXT    NOT NULL,
			label       TEXT    NOT NULL,
			color       TEXT    NOT NULL DEFAULT '',
			PRIMARY KEY (year, month, day)
		);

		CREATE TABLE IF NOT EXISTS imports (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			source      TEXT    NOT NULL,
			row_count   INTEGER NOT NULL,
			skipped     INTEGER NOT NULL,
			imported_at TEXT    NOT NULL
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// ─── Import ──────────────────────────────────────────────────────────────────

// ImportInfo describes the most recent import.
type ImportInfo struct {
	Source     string    `json:"source"`
	Rows       int       `json:"rows"`
	Skipped    int       `json:"skipped"`
	ImportedAt time.Time `json:"imported_at"`
}

// Import replaces every stored row with the rows of t in one transaction.
// source is recorded for LastImport; it is typically the CSV path.
func (s *Store) Import(ctx context.Context, source string, t *animal.Table) (ImportInfo, error) {
	if t.Len() == 0 {
		return ImportInfo{}, fmt.Errorf("dataset: import: %w: no rows", animal.ErrDatasetMalformed)
	}

	tx, err := s.beginTx(ctx, s.db)
	if err != nil {
		return ImportInfo{}, fmt.Errorf("dataset: begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM animal_rows"); err != nil {
		return ImportInfo{}, fmt.Errorf("dataset: clear rows: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO animal_rows (year, month, day, serial_date, idx, animal, label, color)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return ImportInfo{}, fmt.Errorf("dataset: prepare insert: %w", err)
	}
	defer stmt.Close()

	rows := t.Rows()
	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx,
			r.Key.Year, r.Key.Month, r.Key.Day, r.Date, int(r.Index), r.Animal, r.Label, r.Color,
		); err != nil {
			return ImportInfo{}, fmt.Errorf("dataset: insert %04d-%02d-%02d: %w", r.Key.Year, r.Key.Month, r.Key.Day, err)
		}
	}

	info := ImportInfo{
		Source:     source,
		Rows:       len(rows),
		Skipped:    t.Skipped(),
		ImportedAt: timeNow().UTC().Truncate(time.Second),
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO imports (source, row_count, skipped, imported_at) VALUES (?, ?, ?, ?)",
		info.Source, info.Rows, info.Skipped, info.ImportedAt.Format(time.RFC3339),
	); err != nil {
		return ImportInfo{}, fmt.Errorf("dataset: record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return ImportInfo{}, fmt.Errorf("dataset: commit import: %w", err)
	}
	return info, nil
}

// LastImport returns the most recent import record. ok is false when the
// store has never been imported into.
func (s *Store) LastImport(ctx context.Context) (info ImportInfo, ok bool, err error) {
	var at string
	err = s.db.QueryRowContext(ctx,
		"SELECT source, row_count, skipped, imported_at FROM imports ORDER BY id DESC LIMIT 1",
	).Scan(&info.Source, &info.Rows, &info.Skipped, &at)
	if errors.Is(err, sql.ErrNoRows) {
		return ImportInfo{}, false, nil
	}
	if err != nil {
		return ImportInfo{}, false, fmt.Errorf("dataset: last import: %w", err)
	}
	info.ImportedAt, err = time.Parse(time.RFC3339, at)
	if err != nil {
		return ImportInfo{}, false, fmt.Errorf("dataset: last import time %q: %w", at, err)
	}
	return info, true, nil
}

// ─── Read ────────────────────────────────────────────────────────────────────

// Count returns the number of stored rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM animal_rows").Scan(&n); err != nil {
		return 0, fmt.Errorf("dataset: count: %w", err)
	}
	return n, nil
}

// TryRead loads every stored row as an animal.Table. A query failure is
// animal.ErrDatasetUnavailable and an empty store is
// animal.ErrDatasetMalformed, so resolvers fall back either way.
func (s *Store) TryRead(ctx context.Context) (*animal.Table, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT year, month, day, serial_date, idx, animal, label, color
		FROM animal_rows
		ORDER BY year, month, day`)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", animal.ErrDatasetUnavailable, s.cfg.Path, err)
	}
	defer rows.Close()

	var out []animal.Row
	for rows.Next() {
		var (
			r   animal.Row
			idx int
		)
		if err := rows.Scan(&r.Key.Year, &r.Key.Month, &r.Key.Day, &r.Date, &idx, &r.Animal, &r.Label, &r.Color); err != nil {
			return nil, fmt.Errorf("%w: %s: scan: %w", animal.ErrDatasetUnavailable, s.cfg.Path, err)
		}
		r.Index = animal.DatasetIndex(idx)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", animal.ErrDatasetUnavailable, s.cfg.Path, err)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s: no rows imported", animal.ErrDatasetMalformed, s.cfg.Path)
	}
	return animal.NewTable(out), nil
}

var _ animal.DataSource = (*Store)(nil)
