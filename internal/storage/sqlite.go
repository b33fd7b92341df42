package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// slotsSchema holds every slot in a single key-value table. There is no
// per-entity schema; the value column carries the serialized collection.
const slotsSchema = `
CREATE TABLE IF NOT EXISTS slots (
    key   TEXT PRIMARY KEY,
    value BLOB NOT NULL
);
`

// SQLite is an Adapter backed by a single-file SQLite database.
type SQLite struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLite opens (or creates) slots.db under dir, creating dir if needed.
func NewSQLite(dir string) (*SQLite, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", ErrStorageUnavailable, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "slots.db"))
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", ErrStorageUnavailable, err)
	}
	if _, err := db.Exec(slotsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: init schema: %v", ErrStorageUnavailable, err)
	}
	return &SQLite{db: db}, nil
}

// Read returns the slot value, or ok=false if the key is absent.
func (s *SQLite) Read(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var value []byte
	err := s.db.QueryRow("SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, key, err)
	}
	return value, true, nil
}

// Write upserts the slot value.
func (s *SQLite) Write(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT INTO slots (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, key, err)
	}
	return nil
}

// Delete removes the slot. No-op if the key is absent.
func (s *SQLite) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM slots WHERE key = ?", key); err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrStorageUnavailable, key, err)
	}
	return nil
}

// Close closes the underlying database. Idempotent.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
