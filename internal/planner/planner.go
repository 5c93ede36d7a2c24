// Package planner owns the student's classes, homework and notes. It keeps
// the three collections in memory and writes all of them back to storage
// after every successful mutation.
package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/studydash/internal/constants"
	"github.com/julianstephens/studydash/internal/logger"
	"github.com/julianstephens/studydash/internal/models"
	"github.com/julianstephens/studydash/internal/storage"
)

// ErrNotFound is returned when an id does not match any record. The
// collections are left untouched and nothing is written.
var ErrNotFound = errors.New("not found")

// Snapshot is a copy of all three collections.
type Snapshot struct {
	Classes  []models.Class    `json:"classes"`
	Homework []models.Homework `json:"homework"`
	Notes    []models.Note     `json:"notes"`
}

// Planner is the single owner of the planner state.
type Planner struct {
	mu       sync.RWMutex
	store    storage.Provider
	clock    func() time.Time
	newID    func() string
	classes  []models.Class
	homework []models.Homework
	notes    []models.Note
}

// Option configures a Planner.
type Option func(*Planner)

// WithClock replaces time.Now. The clock's location decides what "today" is.
func WithClock(clock func() time.Time) Option {
	return func(p *Planner) { p.clock = clock }
}

// WithIDGenerator replaces the UUID generator used for new records.
func WithIDGenerator(gen func() string) Option {
	return func(p *Planner) { p.newID = gen }
}

// New returns an empty planner backed by store. Call Load before use.
func New(store storage.Provider, opts ...Option) *Planner {
	p := &Planner{
		store:    store,
		clock:    time.Now,
		newID:    uuid.NewString,
		classes:  []models.Class{},
		homework: []models.Homework{},
		notes:    []models.Note{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// stamp is the timestamp recorded on new and edited records.
func (p *Planner) stamp() time.Time {
	return p.clock().UTC().Truncate(time.Millisecond)
}

// Load reads the three collections from storage. A collection whose key is
// absent or holds malformed JSON is replaced by its sample data.
func (p *Planner) Load() error {
	now := p.stamp()

	classes, err := loadCollection(p.store, constants.KeyClasses, func() []models.Class {
		return models.SeedClasses(p.clock())
	})
	if err != nil {
		return err
	}
	homework, err := loadCollection(p.store, constants.KeyHomework, func() []models.Homework {
		return models.SeedHomework(now)
	})
	if err != nil {
		return err
	}
	notes, err := loadCollection(p.store, constants.KeyNotes, func() []models.Note {
		return models.SeedNotes(now)
	})
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.classes, p.homework, p.notes = classes, homework, notes
	p.mu.Unlock()

	logger.Debug("planner loaded", "classes", len(classes), "homework", len(homework), "notes", len(notes))
	return nil
}

func loadCollection[T any](store storage.Provider, key string, seed func() []T) ([]T, error) {
	raw, ok, err := store.GetItem(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok {
		logger.Debug("no saved collection, using sample data", "key", key)
		return seed(), nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Warn("saved collection is malformed, using sample data", "key", key, "error", err)
		return seed(), nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Reset replaces every collection with the sample data, or with empty
// collections when seed is false, and persists the result.
func (p *Planner) Reset(seed bool) error {
	classes, homework, notes := []models.Class{}, []models.Homework{}, []models.Note{}
	if seed {
		now := p.stamp()
		classes = models.SeedClasses(p.clock())
		homework = models.SeedHomework(now)
		notes = models.SeedNotes(now)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.commit(classes, homework, notes)
}

// commit persists the given collections and, only if that succeeds, makes
// them the current state. Callers hold p.mu for writing.
func (p *Planner) commit(classes []models.Class, homework []models.Homework, notes []models.Note) error {
	items := make(map[string]string, 3)
	for key, v := range map[string]any{
		constants.KeyClasses:  classes,
		constants.KeyHomework: homework,
		constants.KeyNotes:    notes,
	} {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		items[key] = string(data)
	}

	if err := p.store.SetItems(items); err != nil {
		logger.Error("failed to persist planner", "error", err)
		return fmt.Errorf("failed to save planner: %w", err)
	}

	p.classes, p.homework, p.notes = classes, homework, notes
	return nil
}

// Snapshot returns copies of all three collections.
func (p *Planner) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Snapshot{
		Classes:  clone(p.classes),
		Homework: clone(p.homework),
		Notes:    clone(p.notes),
	}
}

// Now returns the planner's current time.
func (p *Planner) Now() time.Time {
	return p.clock()
}

func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func indexOf[T any](s []T, match func(T) bool) int {
	for i, v := range s {
		if match(v) {
			return i
		}
	}
	return -1
}

func without[T any](s []T, drop func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if !drop(v) {
			out = append(out, v)
		}
	}
	return out
}

func replaced[T any](s []T, i int, v T) []T {
	out := clone(s)
	out[i] = v
	return out
}
