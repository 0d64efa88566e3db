package chess

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/testutil"
)

func TestInCheck(t *testing.T) {
	tests := []struct {
		name   string
		setup  func() *Board
		colour Colour
		want   bool
	}{
		{
			name:   "initial position white",
			setup:  NewInitialBoard,
			colour: White,
			want:   false,
		},
		{
			name:   "initial position black",
			setup:  NewInitialBoard,
			colour: Black,
			want:   false,
		},
		{
			name: "queen on open rank",
			setup: func() *Board {
				b := NewEmptyBoard()
				b.Place(Coord{7, 4}, King, White)
				b.Place(Coord{7, 0}, Queen, Black)
				return b
			},
			colour: White,
			want:   true,
		},
		{
			name: "queen blocked on rank",
			setup: func() *Board {
				b := NewEmptyBoard()
				b.Place(Coord{7, 4}, King, White)
				b.Place(Coord{7, 2}, Bishop, White)
				b.Place(Coord{7, 0}, Queen, Black)
				return b
			},
			colour: White,
			want:   false,
		},
		{
			name: "knight check",
			setup: func() *Board {
				b := NewEmptyBoard()
				b.Place(Coord{0, 4}, King, Black)
				b.Place(Coord{2, 5}, Knight, White)
				return b
			},
			colour: Black,
			want:   true,
		},
		{
			name: "pawn attacks diagonally",
			setup: func() *Board {
				b := NewEmptyBoard()
				b.Place(Coord{3, 3}, King, Black)
				b.Place(Coord{4, 4}, Pawn, White)
				return b
			},
			colour: Black,
			want:   true,
		},
		{
			name: "pawn does not attack ahead",
			setup: func() *Board {
				b := NewEmptyBoard()
				b.Place(Coord{3, 4}, King, Black)
				b.Place(Coord{4, 4}, Pawn, White)
				return b
			},
			colour: Black,
			want:   false,
		},
		{
			name: "own pieces never give check",
			setup: func() *Board {
				b := NewEmptyBoard()
				b.Place(Coord{7, 4}, King, White)
				b.Place(Coord{7, 0}, Rook, White)
				return b
			},
			colour: White,
			want:   false,
		},
		{
			name: "no king",
			setup: func() *Board {
				b := NewEmptyBoard()
				b.Place(Coord{7, 0}, Queen, Black)
				return b
			},
			colour: White,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.setup().InCheck(tt.colour); got != tt.want {
				t.Errorf("InCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestKingPosition(t *testing.T) {
	b := NewInitialBoard()

	pos, ok := b.KingPosition(White)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, pos, Coord{7, 4})

	_, ok = NewEmptyBoard().KingPosition(Black)
	testutil.AssertFalse(t, ok)
}

// ladderMate has the white king on its home cell with a black queen on the
// back rank and a black rook covering the row in front of it.
func ladderMate() *Board {
	b := NewEmptyBoard()
	b.Place(Coord{7, 4}, King, White)
	b.Place(Coord{7, 0}, Queen, Black)
	b.Place(Coord{6, 0}, Rook, Black)
	return b
}

func TestCheckmate(t *testing.T) {
	tests := []struct {
		name   string
		setup  func() *Board
		colour Colour
		want   bool
	}{
		{
			name:   "initial position",
			setup:  NewInitialBoard,
			colour: White,
			want:   false,
		},
		{
			name: "lone king escapes the queen",
			setup: func() *Board {
				b := NewEmptyBoard()
				b.Place(Coord{7, 4}, King, White)
				b.Place(Coord{7, 0}, Queen, Black)
				return b
			},
			colour: White,
			want:   false,
		},
		{
			name:   "ladder mate",
			setup:  ladderMate,
			colour: White,
			want:   true,
		},
		{
			name: "ladder with a blocking rook",
			setup: func() *Board {
				b := ladderMate()
				b.Place(Coord{0, 2}, Rook, White)
				return b
			},
			colour: White,
			want:   false,
		},
		{
			name: "ladder with the queen capturable",
			setup: func() *Board {
				b := ladderMate()
				b.Place(Coord{5, 1}, Knight, White)
				return b
			},
			colour: White,
			want:   false,
		},
		{
			name: "stalemate is not checkmate",
			setup: func() *Board {
				b := NewEmptyBoard()
				b.Place(Coord{0, 0}, King, Black)
				b.Place(Coord{2, 1}, Queen, White)
				b.Place(Coord{7, 7}, King, White)
				return b
			},
			colour: Black,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.setup().Checkmate(tt.colour); got != tt.want {
				t.Errorf("Checkmate(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestStalemate(t *testing.T) {
	b := NewEmptyBoard()
	b.Place(Coord{0, 0}, King, Black)
	b.Place(Coord{2, 1}, Queen, White)
	b.Place(Coord{7, 7}, King, White)

	testutil.AssertTrue(t, b.Stalemate(Black))
	testutil.AssertFalse(t, b.Stalemate(White))
	testutil.AssertFalse(t, ladderMate().Stalemate(White))
	testutil.AssertFalse(t, NewInitialBoard().Stalemate(White))
}

// TestFoolsMate plays the shortest mate through validated moves.
func TestFoolsMate(t *testing.T) {
	b := NewInitialBoard()
	moves := []MovePair{
		{From: Coord{6, 5}, To: Coord{5, 5}},
		{From: Coord{1, 4}, To: Coord{3, 4}},
		{From: Coord{6, 6}, To: Coord{4, 6}},
		{From: Coord{0, 3}, To: Coord{4, 7}},
	}
	for i, m := range moves {
		if err := b.Move(m.From, m.To); err != nil {
			t.Fatalf("move %d %v: %v", i+1, m, err)
		}
	}

	testutil.AssertTrue(t, b.InCheck(White), "white should be in check")
	testutil.AssertTrue(t, b.Checkmate(White), "white should be mated")
	testutil.AssertFalse(t, b.Checkmate(Black))
	testutil.AssertEqual(t, len(b.LegalMoves(White)), 0)
}

func TestLegalMoves_InitialPosition(t *testing.T) {
	b := NewInitialBoard()
	testutil.AssertEqual(t, len(b.LegalMoves(White)), 20)
	testutil.AssertEqual(t, len(b.LegalMoves(Black)), 20)
	testutil.AssertTrue(t, b.HasLegalMoves(White))
}
