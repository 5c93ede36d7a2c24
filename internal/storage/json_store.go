package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// JSONStore keeps all items in a single JSON object on disk.
type JSONStore struct {
	path  string
	mu    sync.Mutex
	items map[string]string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

// Init creates an empty store file if none exists, then loads it.
func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		s.mu.Lock()
		s.items = map[string]string{}
		err := s.save(s.items)
		s.mu.Unlock()
		return err
	}
	return s.Load()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	items := map[string]string{}
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetItem(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items == nil {
		return "", false, ErrNotInitialized
	}
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *JSONStore) SetItem(key, value string) error {
	return s.SetItems(map[string]string{key: value})
}

func (s *JSONStore) SetItems(items map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items == nil {
		return ErrNotInitialized
	}

	next := make(map[string]string, len(s.items)+len(items))
	for k, v := range s.items {
		next[k] = v
	}
	for k, v := range items {
		next[k] = v
	}

	if err := s.save(next); err != nil {
		return err
	}
	s.items = next
	return nil
}

func (s *JSONStore) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items == nil {
		return nil, ErrNotInitialized
	}
	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

// save writes items to a temp file and renames it over the store, so a
// failed write leaves the previous contents intact.
func (s *JSONStore) save(items map[string]string) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".studydash-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace storage: %w", err)
	}
	return nil
}
