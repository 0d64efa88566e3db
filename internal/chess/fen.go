package chess

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
// Only the placement and side-to-move fields are interpreted.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// KindFromLetter converts a FEN piece letter (either case) to a Kind.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'R', 'r':
		return Rook, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'P', 'p':
		return Pawn, true
	}
	return 0, false
}

// Letter returns the FEN letter for the piece: uppercase for White.
func (p *Piece) Letter() byte {
	letter := p.kind.Letter()
	if p.colour == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from the placement field of a FEN string
// and returns the side to move (White when the field is absent).
// Castling, en passant and clock fields are accepted and ignored.
func NewBoardFromFEN(fen string) (*Board, Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := NewEmptyBoard()
	if err := parsePlacement(board, parts[0]); err != nil {
		return nil, White, err
	}

	toMove := White
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
			toMove = White
		case "b":
			toMove = Black
		default:
			return nil, White, &errors.ParseError{
				Err:      errors.ErrInvalidFEN,
				Column:   len(parts[0]) + 2,
				Expected: "side to move",
				Got:      parts[1],
			}
		}
	}
	return board, toMove, nil
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error.
// It simplifies fixed positions in tests and examples.
func MustBoardFromFEN(fen string) *Board {
	b, _, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// parsePlacement fills board from a FEN placement field. Row 0 is the
// first rank listed (rank 8).
func parsePlacement(board *Board, placement string) error {
	row, col := 0, 0
	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if col != BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Column: i + 1, Expected: "8 cells in row", Got: fmt.Sprint(col)}
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Column: i + 1, Got: "row overflow"}
			}
		default:
			kind, ok := KindFromLetter(c)
			if !ok {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Column: i + 1, Expected: "piece letter", Got: string(c)}
			}
			if row >= BoardSize || col >= BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Column: i + 1, Got: "position out of bounds"}
			}
			colour := White
			if unicode.IsLower(rune(c)) {
				colour = Black
			}
			board.Place(Coord{Row: row, Col: col}, kind, colour)
			col++
		}
	}
	if row != BoardSize-1 || col != BoardSize {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Expected: "8 rows of 8 cells", Got: placement}
	}
	return nil
}

// FEN returns the placement field describing the board.
func (b *Board) FEN() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < BoardSize; col++ {
			p := b.grid[row][col]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}
