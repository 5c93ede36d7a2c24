package storage

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrNotInitialized is returned by Load when no store exists at the configured path.
var ErrNotInitialized = errors.New("storage not initialized, run 'studydash init' first")

// Provider is a durable key/value store holding JSON-encoded collections.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Items
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
	// SetItems writes every entry or none of them.
	SetItems(items map[string]string) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}

// New returns the provider for path: a JSON file when the path ends in .json,
// otherwise a SQLite database.
func New(path string) Provider {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}
