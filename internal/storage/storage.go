package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/chessboard/internal/board"
)

// Storage keys
const (
	keyPreferences  = "preferences"
	keyLayoutPrefix = "layout/"
)

// ErrLayoutNotFound is returned when no layout is stored under a name.
var ErrLayoutNotFound = errors.New("layout not found")

// Preferences stores display settings shared by the CLI and the viewer.
type Preferences struct {
	Theme       string    `json:"theme"`
	Flipped     bool      `json:"flipped"`
	SquareSize  int       `json:"square_size"`
	Coordinates bool      `json:"coordinates"`
	Layout      string    `json:"layout"`
	LastUsed    time.Time `json:"last_used"`
}

// DefaultPreferences returns default display preferences
func DefaultPreferences() *Preferences {
	return &Preferences{
		Theme:       "brown",
		SquareSize:  60,
		Coordinates: true,
		Layout:      board.StandardLayout.Name,
		LastUsed:    time.Now(),
	}
}

// storedLayout is the JSON value kept for a named layout.
type storedLayout struct {
	Placement string    `json:"placement"`
	Saved     time.Time `json:"saved"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) the database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", dir, err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves display preferences
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastUsed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads display preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	if _, err := s.get(keyPreferences, prefs); err != nil {
		return DefaultPreferences(), err
	}
	return prefs, nil
}

// SaveLayout stores a layout under its name, replacing any previous one.
func (s *Storage) SaveLayout(l board.Layout) error {
	if l.Name == "" {
		return errors.New("storage: layout has no name")
	}
	return s.put(keyLayoutPrefix+l.Name, storedLayout{
		Placement: l.Placement(),
		Saved:     time.Now(),
	})
}

// LoadLayout returns the layout stored under name.
// The standard layout is always available, stored or not.
func (s *Storage) LoadLayout(name string) (board.Layout, error) {
	var v storedLayout
	found, err := s.get(keyLayoutPrefix+name, &v)
	if err != nil {
		return board.Layout{}, err
	}
	if !found {
		if name == board.StandardLayout.Name {
			return board.StandardLayout, nil
		}
		return board.Layout{}, fmt.Errorf("%w: %q", ErrLayoutNotFound, name)
	}
	return board.ParseLayout(name, v.Placement)
}

// ListLayouts returns the names of stored layouts, sorted.
func (s *Storage) ListLayouts() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyLayoutPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, keyLayoutPrefix))
		}
		return nil
	})
	sort.Strings(names)
	return names, err
}

// DeleteLayout removes a stored layout. Deleting a missing layout is not
// an error.
func (s *Storage) DeleteLayout(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyLayoutPrefix + name))
	})
}

// put stores v as JSON under key.
func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes the JSON value under key into v. found is false, and v left
// untouched, when the key is missing.
func (s *Storage) get(key string, v any) (found bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	return found, err
}
