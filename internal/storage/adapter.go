// Package storage provides the key-value slot adapters that back the entity
// stores. Each slot holds one JSON-serialized collection under a fixed
// application-namespaced key.
package storage

import (
	"errors"
	"fmt"

	"github.com/lexhall/lawdesk/pkg/types"
)

// Namespace is the prefix applied to every slot key.
const Namespace = "lawdesk."

// ErrStorageUnavailable wraps any backend failure. Callers surface it as a
// non-fatal notice and fall back to in-memory operation for the session.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Adapter is a synchronous key-value store for serialized collections.
// Read reports ok=false when the key is absent. Write overwrites the slot
// unconditionally.
type Adapter interface {
	Read(key string) (value []byte, ok bool, err error)
	Write(key string, value []byte) error
	Delete(key string) error

	// Close releases backend resources. Idempotent.
	Close() error
}

// Key returns the namespaced slot key for a collection name.
func Key(name string) string {
	return Namespace + name
}

// Open constructs the Adapter selected by config.Backend. The file and
// sqlite backends create config.DataDir if it does not exist.
func Open(config types.Config) (Adapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	switch config.Backend {
	case types.BackendMemory:
		return NewMemory(), nil
	case types.BackendFile:
		return NewFile(config.DataDir)
	case types.BackendSQLite:
		return NewSQLite(config.DataDir)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrBackendUnknown, config.Backend)
	}
}
