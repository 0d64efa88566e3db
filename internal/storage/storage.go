// Package storage archives games in an embedded BadgerDB database.
package storage

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
)

// Storage keys
const keyGamePrefix = "game/"

// MoveRecord is one archived ply.
type MoveRecord struct {
	From [2]int `json:"from"`
	To   [2]int `json:"to"`
}

// GameRecord is the archived form of a game: enough to replay it.
type GameRecord struct {
	ID        string       `json:"id"`
	StartFEN  string       `json:"start_fen"`
	Moves     []MoveRecord `json:"moves"`
	Result    string       `json:"result"`
	Status    string       `json:"status"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// NewGameRecord captures the current state of g under id.
func NewGameRecord(id string, g *engine.Game) *GameRecord {
	rec := &GameRecord{
		ID:       id,
		StartFEN: g.StartFEN,
		Result:   g.Result(),
		Status:   g.Status().String(),
	}
	for _, m := range g.Moves() {
		rec.Moves = append(rec.Moves, MoveRecord{
			From: [2]int{m.From.Row, m.From.Col},
			To:   [2]int{m.To.Row, m.To.Col},
		})
	}
	return rec
}

// Restore replays the record into a live game.
func (r *GameRecord) Restore() (*engine.Game, error) {
	moves := make([]chess.MovePair, len(r.Moves))
	for i, m := range r.Moves {
		moves[i] = chess.MovePair{
			From: chess.Coord{Row: m.From[0], Col: m.From[1]},
			To:   chess.Coord{Row: m.To[0], Col: m.To[1]},
		}
	}
	g, err := engine.Replay(r.StartFEN, moves)
	if err != nil {
		if gameErr, ok := err.(*errors.GameError); ok {
			gameErr.GameID = r.ID
			return nil, gameErr
		}
		return nil, &errors.GameError{Err: err, GameID: r.ID}
	}
	return g, nil
}

// NewGameID returns a time-ordered identifier for a new archive entry.
func NewGameID() string {
	return time.Now().UTC().Format("20060102-150405.000000")
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) the archive in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens an archive that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening game archive")
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

// SaveGame stores rec, replacing any record with the same ID.
func (s *Storage) SaveGame(rec *GameRecord) error {
	rec.UpdatedAt = time.Now()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyGamePrefix+rec.ID), data)
	})
}

// LoadGame returns the record stored under id.
func (s *Storage) LoadGame(id string) (*GameRecord, error) {
	rec := &GameRecord{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyGamePrefix + id))
		if err == badger.ErrKeyNotFound {
			return &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListGames returns the IDs of all archived games in key order.
func (s *Storage) ListGames() ([]string, error) {
	var ids []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyGamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			ids = append(ids, strings.TrimPrefix(key, keyGamePrefix))
		}
		return nil
	})

	return ids, err
}

// DeleteGame removes the record stored under id.
func (s *Storage) DeleteGame(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := []byte(keyGamePrefix + id)
		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
		} else if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}
