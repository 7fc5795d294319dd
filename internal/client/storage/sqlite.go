/*
Package storage provides the client's persistent key/value store.

It is the terminal-app analog of the browser's localStorage: a small SQLite
table of string pairs under the user's data directory, surviving restarts.
Writes that must land together go through a single transaction.
*/
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// ErrKeyNotFound indicates that the requested key has no persisted value.
var ErrKeyNotFound = errors.New("key not found")

// KV is a SQLite-backed string key/value store.
type KV struct {
	db *sql.DB
}

// Open creates (if needed) and opens the store at the given file path.
func Open(path string) (*KV, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS metadata (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize store schema: %w", err)
	}

	return &KV{db: db}, nil
}

// Get returns the value for key, or ErrKeyNotFound.
func (s *KV) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return value, nil
}

// SetMany upserts all given pairs in a single transaction, so partially
// written state can never be observed after a crash.
func (s *KV) SetMany(ctx context.Context, pairs map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, value := range pairs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO metadata (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteAll removes all given keys in a single transaction. Missing keys are
// not an error.
func (s *KV) DeleteAll(ctx context.Context, keys ...string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, key := range keys {
		if _, err := tx.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Close releases the underlying database handle.
func (s *KV) Close() error {
	return s.db.Close()
}
