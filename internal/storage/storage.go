// Package storage persists replayed games in a BadgerDB database so that a
// later run can resume from the stored position.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/playchess-go/internal/engine"
	"github.com/lgbarn/playchess-go/internal/errors"
)

// Key prefixes
const (
	gamePrefix = "game/"
)

// GameRecord is the stored state of one game.
type GameRecord struct {
	ID        string    `json:"id"`
	FEN       string    `json:"fen"`
	Ply       int       `json:"ply"`
	Moves     []string  `json:"moves"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Restore builds a game positioned at the stored FEN.
func (r *GameRecord) Restore() (*engine.Game, error) {
	g, err := engine.NewGameFromFEN(r.FEN)
	if err != nil {
		return nil, errors.Wrapf(err, "restore game %s", r.ID)
	}
	return g, nil
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (creating if needed) the database in dir.
func Open(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open game store: %w", err)
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

func gameKey(id string) []byte {
	return []byte(gamePrefix + id)
}

// SaveGame stores the current position of g under id, replacing any
// previous record.
func (s *Storage) SaveGame(id string, g *engine.Game, moves []string) error {
	if id == "" {
		return errors.ErrEmptyGameID
	}
	record := GameRecord{
		ID:        id,
		FEN:       g.FEN(),
		Ply:       g.Ply(),
		Moves:     append([]string(nil), moves...),
		UpdatedAt: time.Now(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(id), data)
	})
}

// LoadGame returns the record stored under id. It returns an error wrapping
// errors.ErrGameNotFound when there is none.
func (s *Storage) LoadGame(id string) (*GameRecord, error) {
	var record GameRecord

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("game %q: %w", id, errors.ErrGameNotFound)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteGame removes the record stored under id, if any.
func (s *Storage) DeleteGame(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(gameKey(id))
	})
}

// ListGames returns the ids of all stored games in lexical order.
func (s *Storage) ListGames() ([]string, error) {
	var ids []string
	prefix := []byte(gamePrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			ids = append(ids, string(key[len(prefix):]))
		}
		return nil
	})

	sort.Strings(ids)
	return ids, err
}
