package chess

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/testutil"
)

func coordLess(a, b Coord) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

func TestWithinBounds(t *testing.T) {
	b := NewEmptyBoard()
	for row := -2; row < BoardSize+2; row++ {
		for col := -2; col < BoardSize+2; col++ {
			want := row >= 0 && row < 8 && col >= 0 && col < 8
			if got := b.WithinBounds(row, col); got != want {
				t.Errorf("WithinBounds(%d, %d) = %v, want %v", row, col, got, want)
			}
		}
	}
}

func TestNewInitialBoard(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name   string
		at     Coord
		kind   Kind
		colour Colour
	}{
		{"white king", Coord{7, 4}, King, White},
		{"white queen", Coord{7, 3}, Queen, White},
		{"white rook a-file", Coord{7, 0}, Rook, White},
		{"white knight", Coord{7, 6}, Knight, White},
		{"white pawn", Coord{6, 2}, Pawn, White},
		{"black king", Coord{0, 4}, King, Black},
		{"black bishop", Coord{0, 2}, Bishop, Black},
		{"black pawn", Coord{1, 7}, Pawn, Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := b.Get(tt.at)
			if p == nil {
				t.Fatalf("Get(%v) = nil, want %v %v", tt.at, tt.colour, tt.kind)
			}
			if p.Kind() != tt.kind || p.Colour() != tt.colour {
				t.Errorf("Get(%v) = %v, want %v %v", tt.at, p, tt.colour, tt.kind)
			}
			if p.Position() != tt.at {
				t.Errorf("Get(%v).Position() = %v", tt.at, p.Position())
			}
		})
	}

	if got := len(b.Pieces()); got != 32 {
		t.Errorf("len(Pieces()) = %d, want 32", got)
	}
	for row := 2; row < 6; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.Get(Coord{row, col}); p != nil {
				t.Errorf("Get(%d,%d) = %v, want empty", row, col, p)
			}
		}
	}
}

func TestPieces_RowMajorAndConsistent(t *testing.T) {
	b := NewInitialBoard()
	pieces := b.Pieces()

	for i, p := range pieces {
		if b.Get(p.Position()) != p {
			t.Errorf("piece %v not stored at its position %v", p, p.Position())
		}
		if i > 0 && !coordLess(pieces[i-1].Position(), p.Position()) {
			t.Errorf("Pieces()[%d] at %v not after %v", i, p.Position(), pieces[i-1].Position())
		}
	}
	if got := len(b.PiecesOf(White)); got != 16 {
		t.Errorf("len(PiecesOf(White)) = %d, want 16", got)
	}
}

func TestApplyMove(t *testing.T) {
	b := NewInitialBoard()
	start, end := Coord{7, 6}, Coord{5, 5}
	knight := b.Get(start)

	captured := b.ApplyMove(start, end)

	if captured != nil {
		t.Errorf("ApplyMove captured %v, want nil", captured)
	}
	if got := b.Get(end); got != knight {
		t.Fatalf("Get(%v) = %v, want the moved knight", end, got)
	}
	if knight.Position() != end {
		t.Errorf("knight.Position() = %v, want %v", knight.Position(), end)
	}
	if got := b.Get(start); got != nil {
		t.Errorf("Get(%v) = %v, want empty", start, got)
	}
}

func TestApplyMove_Capture(t *testing.T) {
	b := NewEmptyBoard()
	rook := b.Place(Coord{4, 0}, Rook, White)
	victim := b.Place(Coord{4, 6}, Knight, Black)

	captured := b.ApplyMove(Coord{4, 0}, Coord{4, 6})

	if captured != victim {
		t.Errorf("ApplyMove captured %v, want %v", captured, victim)
	}
	if b.Get(Coord{4, 6}) != rook {
		t.Error("rook not on capture square")
	}
	testutil.AssertEqual(t, len(b.Pieces()), 1)
}

func TestCopy_Independent(t *testing.T) {
	original := NewInitialBoard()
	dup := original.Copy()

	testutil.AssertTrue(t, dup.Equal(original), "copy should equal original")

	dup.ApplyMove(Coord{6, 4}, Coord{4, 4})
	dup.ApplyMove(Coord{0, 3}, Coord{4, 7})

	if original.Get(Coord{6, 4}) == nil {
		t.Error("original lost its pawn after mutating the copy")
	}
	if original.Get(Coord{4, 4}) != nil {
		t.Error("original gained a pawn after mutating the copy")
	}
	if p := original.Get(Coord{0, 3}); p == nil || p.Position() != (Coord{0, 3}) {
		t.Errorf("original queen = %v, want at (0,3)", p)
	}
	testutil.AssertFalse(t, dup.Equal(original), "mutated copy should differ")

	// The copy's pieces must consult the copy, not the original.
	for _, p := range dup.Pieces() {
		if p.board != dup {
			t.Fatalf("piece %v refers to another board", p)
		}
		if original.Get(p.Position()) == p {
			t.Fatalf("piece %v shared between boards", p)
		}
	}
}

func TestNewBoardFromGrid(t *testing.T) {
	var grid Grid
	grid[7][4] = NewPiece(King, White)
	grid[0][4] = NewPiece(King, Black)
	grid[3][3] = NewPiece(Queen, Black)

	b := NewBoardFromGrid(grid)

	testutil.AssertEqual(t, len(b.Pieces()), 3)
	q := b.Get(Coord{3, 3})
	if q == nil || q.Kind() != Queen || q.Colour() != Black {
		t.Fatalf("Get(3,3) = %v, want Black Queen", q)
	}
	if q == grid[3][3] {
		t.Error("grid piece adopted, want a fresh piece")
	}
	testutil.AssertEqual(t, q.Position(), Coord{3, 3})
	testutil.AssertFalse(t, b.InCheck(White))
}

func TestMove_Legal(t *testing.T) {
	b := NewInitialBoard()
	testutil.AssertNoError(t, b.Move(Coord{6, 4}, Coord{4, 4}))

	p := b.Get(Coord{4, 4})
	if p == nil || p.Kind() != Pawn || p.Colour() != White {
		t.Fatalf("Get(4,4) = %v, want White Pawn", p)
	}
	testutil.AssertEqual(t, p.Position(), Coord{4, 4})
}

func TestMove_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		start Coord
		end   Coord
		want  error
	}{
		{"rook through pawn", Coord{7, 0}, Coord{4, 0}, errors.ErrIllegalMove},
		{"pawn three steps", Coord{6, 0}, Coord{3, 0}, errors.ErrIllegalMove},
		{"knight onto own pawn", Coord{7, 1}, Coord{6, 3}, errors.ErrIllegalMove},
		{"empty start", Coord{4, 4}, Coord{3, 4}, errors.ErrNoPiece},
		{"start off board", Coord{8, 0}, Coord{7, 0}, errors.ErrOutOfBounds},
		{"end off board", Coord{7, 1}, Coord{9, 2}, errors.ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewInitialBoard()
			before := b.Copy()

			err := b.Move(tt.start, tt.end)

			testutil.AssertErrorIs(t, err, tt.want)
			testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
			testutil.AssertTrue(t, b.Equal(before), "board changed after rejected move")
		})
	}
}

func TestMove_CaptureRemovesPiece(t *testing.T) {
	b := NewInitialBoard()
	victim := b.Place(Coord{5, 3}, Knight, Black)
	mover := b.Get(Coord{6, 4})

	testutil.AssertNoError(t, b.Move(Coord{6, 4}, Coord{5, 3}))

	for _, p := range b.Pieces() {
		if p == victim {
			t.Fatal("captured knight still listed in Pieces()")
		}
	}
	testutil.AssertEqual(t, len(b.Pieces()), 32)
	if b.Get(Coord{5, 3}) != mover {
		t.Error("capturing pawn not on (5,3)")
	}
}

func TestMove_ErrorContext(t *testing.T) {
	b := NewInitialBoard()
	err := b.Move(Coord{7, 4}, Coord{5, 4})

	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertContains(t, err.Error(), "White King")
	testutil.AssertContains(t, err.Error(), "(7,4)->(5,4)")
}
