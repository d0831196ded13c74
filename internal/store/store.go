// Package store keeps the history of genero runs in a local SQLite file.
// Queries are built with ent's SQL builders over the pure Go sqlite driver.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// EnvDB overrides the default database location.
const EnvDB = "GENERO_DB"

// Store holds the database handle and provides access to repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas are per connection; a single connection keeps them in force.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{
		db:  db,
		drv: entsql.OpenDB(dialect.SQLite, db),
	}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// RunRepo returns a RunRepo backed by this store.
func (s *Store) RunRepo() RunRepo {
	return &runRepo{drv: s.drv}
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id            TEXT    PRIMARY KEY,
		seq           INTEGER NOT NULL UNIQUE,
		kind          TEXT    NOT NULL,
		started_at    INTEGER NOT NULL,
		finished_at   INTEGER NOT NULL,
		input_path    TEXT    NOT NULL DEFAULT '',
		output_path   TEXT    NOT NULL DEFAULT '',
		row_count     INTEGER NOT NULL DEFAULT 0,
		rules_version TEXT    NOT NULL DEFAULT '',
		accuracy      REAL
	)`,
	`CREATE INDEX IF NOT EXISTS runs_kind_seq ON runs (kind, seq)`,
	`CREATE TABLE IF NOT EXISTS run_counts (
		run_id    TEXT    NOT NULL REFERENCES runs (id) ON DELETE CASCADE,
		dimension TEXT    NOT NULL,
		label     TEXT    NOT NULL,
		total     INTEGER NOT NULL,
		PRIMARY KEY (run_id, dimension, label)
	)`,
}

// migrate creates missing tables. The schema only ever grows, so
// CREATE ... IF NOT EXISTS is enough.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range append(schema, sequenceSchema...) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. GENERO_DB environment variable
// 2. $XDG_DATA_HOME/genero/genero.db
// 3. ~/.local/share/genero/genero.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv(EnvDB); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "genero", "genero.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
