// Package hashing provides position hashing and duplicate detection for
// replayed games.
package hashing

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
)

// Zobrist keys, one per (colour, kind, cell) plus one for Black to move.
var (
	pieceKeys [2][chess.NumKinds][chess.BoardSize * chess.BoardSize]uint64
	blackKey  uint64
)

func init() {
	var seed [4]byte
	for colour := 0; colour < 2; colour++ {
		for kind := 0; kind < int(chess.NumKinds); kind++ {
			for cell := 0; cell < chess.BoardSize*chess.BoardSize; cell++ {
				seed[0], seed[1], seed[2] = byte(colour), byte(kind), byte(cell)
				pieceKeys[colour][kind][cell] = xxhash.Sum64(seed[:])
			}
		}
	}
	binary.LittleEndian.PutUint32(seed[:], 0xffffffff)
	blackKey = xxhash.Sum64(seed[:])
}

// PositionHash returns the Zobrist hash of b with toMove to play.
func PositionHash(b *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for _, p := range b.Pieces() {
		pos := p.Position()
		hash ^= pieceKeys[p.Colour()][p.Kind()][pos.Row*chess.BoardSize+pos.Col]
	}
	if toMove == chess.Black {
		hash ^= blackKey
	}
	return hash
}

// GameSignature identifies a game by its final position.
type GameSignature struct {
	Name string
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// FEN is the final placement, compared on a hash hit
	FEN string
	// Plies is the number of half-moves in the game
	Plies int
}

// DuplicateDetector tracks the final positions of games seen so far.
// It is safe for concurrent use.
type DuplicateDetector struct {
	mu sync.Mutex
	// hashTable stores seen signatures by hash
	hashTable map[uint64][]GameSignature
	// exactMatch also requires equal game lengths
	exactMatch     bool
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:  make(map[uint64][]GameSignature),
		exactMatch: exactMatch,
	}
}

// Signature computes the signature of g's current position.
func Signature(name string, g *engine.Game) GameSignature {
	return GameSignature{
		Name:  name,
		Hash:  PositionHash(g.Board, g.ToMove),
		FEN:   g.Board.FEN(),
		Plies: len(g.History),
	}
}

// CheckAndAdd records the game and reports the first earlier game that
// reached the same final position, if any.
func (d *DuplicateDetector) CheckAndAdd(name string, g *engine.Game) (GameSignature, bool) {
	sig := Signature(name, g)

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing, true
		}
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return GameSignature{}, false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.FEN != b.FEN {
		return false
	}
	if d.exactMatch && a.Plies != b.Plies {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}
