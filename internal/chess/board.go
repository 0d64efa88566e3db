package chess

import (
	"github.com/lgbarn/chessrules/internal/errors"
)

// Grid is the 8x8 array of optional occupants, indexed [row][col].
type Grid [BoardSize][BoardSize]*Piece

// Board owns the grid and every piece on it.
//
// Invariant: a piece stored at grid[r][c] has Position() == Coord{r, c}.
type Board struct {
	grid Grid
}

// backRow is the standard piece order along a back rank.
var backRow = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewEmptyBoard creates a board with no pieces.
func NewEmptyBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewEmptyBoard()
	b.SetupInitialPosition()
	return b
}

// NewPiece returns a piece not yet placed on any board, for use in a Grid
// passed to NewBoardFromGrid.
func NewPiece(kind Kind, colour Colour) *Piece {
	return &Piece{kind: kind, colour: colour}
}

// NewBoardFromGrid builds a board with the same kinds and colours as grid.
// Fresh pieces are created; the pieces in grid are not adopted.
func NewBoardFromGrid(grid Grid) *Board {
	b := NewEmptyBoard()
	for row := range grid {
		for col, p := range grid[row] {
			if p != nil {
				b.Place(Coord{Row: row, Col: col}, p.kind, p.colour)
			}
		}
	}
	return b
}

// SetupInitialPosition clears the board and sets up the standard start.
// Black occupies rows 0-1 and White rows 6-7.
func (b *Board) SetupInitialPosition() {
	b.grid = Grid{}
	for col := 0; col < BoardSize; col++ {
		b.Place(Coord{Row: BlackBackRow, Col: col}, backRow[col], Black)
		b.Place(Coord{Row: BlackBackRow + 1, Col: col}, Pawn, Black)
		b.Place(Coord{Row: WhiteBackRow - 1, Col: col}, Pawn, White)
		b.Place(Coord{Row: WhiteBackRow, Col: col}, backRow[col], White)
	}
}

// Place puts a new piece on c, replacing any occupant, and returns it.
func (b *Board) Place(c Coord, kind Kind, colour Colour) *Piece {
	p := &Piece{kind: kind, colour: colour, pos: c, board: b}
	b.grid[c.Row][c.Col] = p
	return p
}

// Remove clears c and returns the former occupant, if any.
func (b *Board) Remove(c Coord) *Piece {
	p := b.grid[c.Row][c.Col]
	b.grid[c.Row][c.Col] = nil
	return p
}

// Get returns the occupant of c, or nil. c must be within bounds.
func (b *Board) Get(c Coord) *Piece {
	return b.grid[c.Row][c.Col]
}

// WithinBounds reports whether both coordinates lie in [0,8).
func (b *Board) WithinBounds(row, col int) bool {
	return WithinBounds(row, col)
}

// Pieces returns all live pieces in row-major order.
func (b *Board) Pieces() []*Piece {
	pieces := make([]*Piece, 0, 32)
	for row := range b.grid {
		for _, p := range b.grid[row] {
			if p != nil {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// PiecesOf returns the live pieces of one colour in row-major order.
func (b *Board) PiecesOf(colour Colour) []*Piece {
	var pieces []*Piece
	for _, p := range b.Pieces() {
		if p.colour == colour {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// Move validates and plays a move. It returns a *errors.MoveError wrapping
// errors.ErrIllegalMove when end is not a legal destination of the piece on
// start; the board is left untouched in that case.
func (b *Board) Move(start, end Coord) error {
	if !start.InBounds() || !end.InBounds() {
		return &errors.MoveError{Err: errors.ErrOutOfBounds, From: start.String(), To: end.String()}
	}
	p := b.Get(start)
	if p == nil {
		return &errors.MoveError{Err: errors.ErrNoPiece, From: start.String(), To: end.String()}
	}
	if !p.CanMoveTo(end) {
		return &errors.MoveError{
			Err:   errors.ErrIllegalMove,
			From:  start.String(),
			To:    end.String(),
			Piece: p.String(),
		}
	}
	b.ApplyMove(start, end)
	return nil
}

// ApplyMove relocates the occupant of start to end without any legality
// check. An occupant of end is captured. It returns the captured piece.
func (b *Board) ApplyMove(start, end Coord) *Piece {
	p := b.grid[start.Row][start.Col]
	captured := b.grid[end.Row][end.Col]
	b.grid[end.Row][end.Col] = p
	b.grid[start.Row][start.Col] = nil
	if p != nil {
		p.pos = end
	}
	return captured
}

// Copy returns an independent board with the same placement. The new
// pieces refer to the new board.
func (b *Board) Copy() *Board {
	return NewBoardFromGrid(b.grid)
}

// Equal reports whether two boards hold the same kinds and colours on
// the same cells.
func (b *Board) Equal(other *Board) bool {
	for row := range b.grid {
		for col, p := range b.grid[row] {
			q := other.grid[row][col]
			if (p == nil) != (q == nil) {
				return false
			}
			if p != nil && (p.kind != q.kind || p.colour != q.colour) {
				return false
			}
		}
	}
	return true
}
