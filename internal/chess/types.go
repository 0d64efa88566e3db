// Package chess provides the board, pieces and move-legality rules.
package chess

import (
	"fmt"
	"strings"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour converts "white"/"w" or "black"/"b" (any case) to a Colour.
func ParseColour(s string) (Colour, bool) {
	switch strings.ToLower(s) {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	}
	return Black, false
}

// Forward returns the row delta a pawn of colour c advances by.
// White starts on rows 6-7 and moves toward row 0.
func Forward(c Colour) int {
	if c == White {
		return -1
	}
	return 1
}

// Kind identifies a piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Pattern is the movement pattern a kind uses to generate candidates.
type Pattern int

const (
	Stepping Pattern = iota // fixed offsets, single hop
	Sliding                 // repeated direction until blocked
	PawnStep                // asymmetric advance/capture
)

// Pattern returns the movement pattern of the kind.
func (k Kind) Pattern() Pattern {
	switch k {
	case Pawn:
		return PawnStep
	case Bishop, Rook, Queen:
		return Sliding
	default:
		return Stepping
	}
}

// Board dimensions.
const (
	BoardSize = 8

	WhiteBackRow = BoardSize - 1
	BlackBackRow = 0
)

// Coord is a (row, column) cell address. Row 0 is Black's back rank.
type Coord struct {
	Row int
	Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by the given offset.
func (c Coord) Add(o Offset) Coord {
	return Coord{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// InBounds reports whether c lies on the board.
func (c Coord) InBounds() bool {
	return WithinBounds(c.Row, c.Col)
}

// WithinBounds reports whether both components lie in [0,8).
func WithinBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Offset is a relative displacement on the board.
type Offset struct {
	Row int
	Col int
}

// MovePair is a source-destination pair.
type MovePair struct {
	From Coord
	To   Coord
}

// String formats the pair as "(r,c)->(r,c)".
func (m MovePair) String() string {
	return m.From.String() + "->" + m.To.String()
}
