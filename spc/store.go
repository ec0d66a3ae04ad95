package spc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS spc (
    code TEXT PRIMARY KEY,
    name TEXT NOT NULL
)`

// Store is a SQLite copy of the reference table, opened read-only.
type Store struct {
	db     *sql.DB
	lookup *sql.Stmt
}

var _ Lookuper = (*Store)(nil)

// OpenStore opens the SQLite reference store at path.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("cannot open spc DB at %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot open spc DB at %s: %w", path, err)
	}
	stmt, err := db.PrepareContext(ctx, `SELECT name FROM spc WHERE code = ? LIMIT 1`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("spc DB %s: %w", path, err)
	}
	return &Store{db: db, lookup: stmt}, nil
}

// Lookup returns the name stored for code. Query failures count as a miss.
func (s *Store) Lookup(code string) (string, bool) {
	var name string
	err := s.lookup.QueryRow(code).Scan(&name)
	switch {
	case err == nil:
		return name, true
	case !errors.Is(err, sql.ErrNoRows):
		slog.Warn("spc lookup failed", "code", code, "error", err)
	}
	return "", false
}

// Count returns the number of codes in the store.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM spc`).Scan(&n)
	return n, err
}

func (s *Store) Close() error {
	s.lookup.Close()
	return s.db.Close()
}

// Import replaces the contents of the SQLite store at path with t,
// creating the database when needed.
func Import(ctx context.Context, path string, t Table) error {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=rwc", path))
	if err != nil {
		return fmt.Errorf("cannot open spc DB at %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("spc DB %s: %w", path, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create spc table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM spc`); err != nil {
		return fmt.Errorf("clear spc table: %w", err)
	}
	ins, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO spc (code, name) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer ins.Close()
	for code, name := range t {
		if _, err := ins.ExecContext(ctx, code, name); err != nil {
			return fmt.Errorf("insert %q: %w", code, err)
		}
	}
	return tx.Commit()
}
