package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/studydash/internal/logger"
	"github.com/julianstephens/studydash/internal/migration"
	"github.com/julianstephens/studydash/migrations"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

// Init creates the database if needed and applies pending migrations.
func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if s.db == nil {
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		s.db = db
	}

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return ErrNotInitialized
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Older databases are brought forward; newer ones are refused.
	if err := s.runMigrations(); err != nil {
		return err
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) runMigrations() error {
	runner, err := s.migrationRunner()
	if err != nil {
		return err
	}
	_, err = runner.ApplyMigrations(func(msg string) {
		logger.Debug(msg)
	})
	return err
}

func (s *SQLiteStore) migrationRunner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS), nil
}

// MigrationStatus reports the schema version of the open database.
func (s *SQLiteStore) MigrationStatus() (migration.Status, error) {
	if s.db == nil {
		return migration.Status{}, ErrNotInitialized
	}
	runner, err := s.migrationRunner()
	if err != nil {
		return migration.Status{}, err
	}
	return runner.Status()
}

func (s *SQLiteStore) GetItem(key string) (string, bool, error) {
	if s.db == nil {
		return "", false, ErrNotInitialized
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM local_storage WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) SetItem(key, value string) error {
	return s.SetItems(map[string]string{key: value})
}

func (s *SQLiteStore) SetItems(items map[string]string) error {
	if s.db == nil {
		return ErrNotInitialized
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.Prepare(`
		INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, key := range sortedKeys(items) {
		if _, err := stmt.Exec(key, items[key], now); err != nil {
			return fmt.Errorf("failed to write %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Keys() ([]string, error) {
	if s.db == nil {
		return nil, ErrNotInitialized
	}

	rows, err := s.db.Query("SELECT key FROM local_storage ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying connection, or nil before Init or Load.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func sortedKeys(items map[string]string) []string {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
