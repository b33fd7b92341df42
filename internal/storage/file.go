package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// File is an Adapter that keeps one JSON file per slot under a data
// directory. Writes use the temp-file, fsync, rename pattern so a crashed
// write never leaves a truncated slot behind.
type File struct {
	mu  sync.Mutex
	dir string
}

// NewFile creates a file adapter rooted at dir, creating dir if needed.
func NewFile(dir string) (*File, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", ErrStorageUnavailable, err)
	}
	return &File{dir: dir}, nil
}

// path maps a slot key to its file. Keys contain only the namespace prefix
// and a collection name, so the mapping is a plain join.
func (f *File) path(key string) string {
	return filepath.Join(f.dir, strings.TrimPrefix(key, Namespace)+".json")
}

// Read returns the slot contents, or ok=false if the file does not exist.
func (f *File) Read(key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, key, err)
	}
	return data, true, nil
}

// Write atomically replaces the slot file.
func (f *File) Write(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.path(key)
	tmp, err := os.CreateTemp(f.dir, ".slot-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing slot: %v", ErrStorageUnavailable, err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: flushing buffer: %v", ErrStorageUnavailable, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: syncing temp file: %v", ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", ErrStorageUnavailable, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming temp file: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// Delete removes the slot file. No-op if it does not exist.
func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: delete %s: %v", ErrStorageUnavailable, key, err)
	}
	return nil
}

// Close is a no-op for the file adapter.
func (f *File) Close() error { return nil }
