package engine

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/testutil"
)

func mv(fr, fc, tr, tc int) chess.MovePair {
	return chess.MovePair{From: chess.Coord{Row: fr, Col: fc}, To: chess.Coord{Row: tr, Col: tc}}
}

var foolsMate = []chess.MovePair{
	mv(6, 5, 5, 5),
	mv(1, 4, 3, 4),
	mv(6, 6, 4, 6),
	mv(0, 3, 4, 7),
}

func TestNewGame(t *testing.T) {
	g := NewGame()

	testutil.AssertEqual(t, g.ToMove, chess.White)
	testutil.AssertEqual(t, g.Status(), InPlay)
	testutil.AssertEqual(t, g.Result(), "*")
	testutil.AssertEqual(t, len(g.History), 0)
}

func TestGame_AlternatesTurns(t *testing.T) {
	g := NewGame()

	played, err := g.Play(chess.Coord{Row: 6, Col: 4}, chess.Coord{Row: 4, Col: 4})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, played.Ply, 1)
	testutil.AssertEqual(t, played.Colour, chess.White)
	testutil.AssertEqual(t, played.Piece, chess.Pawn)
	testutil.AssertEqual(t, g.ToMove, chess.Black)

	// White may not move twice.
	_, err = g.Play(chess.Coord{Row: 6, Col: 3}, chess.Coord{Row: 4, Col: 3})
	testutil.AssertErrorIs(t, err, errors.ErrNotYourTurn)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertEqual(t, len(g.History), 1)
}

func TestGame_IllegalMoveKeepsTurn(t *testing.T) {
	g := NewGame()
	before := g.Board.Copy()

	_, err := g.Play(chess.Coord{Row: 7, Col: 0}, chess.Coord{Row: 3, Col: 0})

	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertEqual(t, g.ToMove, chess.White)
	testutil.AssertTrue(t, g.Board.Equal(before))
}

func TestGame_Capture(t *testing.T) {
	g := NewGame()
	moves := []chess.MovePair{
		mv(6, 4, 4, 4),
		mv(1, 3, 3, 3),
	}
	for _, m := range moves {
		if _, err := g.Play(m.From, m.To); err != nil {
			t.Fatalf("Play(%v): %v", m, err)
		}
	}

	played, err := g.Play(chess.Coord{Row: 4, Col: 4}, chess.Coord{Row: 3, Col: 3})
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, played.Capture)
	testutil.AssertEqual(t, played.Captured, chess.Pawn)
	testutil.AssertEqual(t, len(g.Board.PiecesOf(chess.Black)), 15)
	testutil.AssertContains(t, played.String(), "xPawn")
}

func TestGame_FoolsMate(t *testing.T) {
	g := NewGame()
	var last PlayedMove
	for _, m := range foolsMate {
		var err error
		if last, err = g.Play(m.From, m.To); err != nil {
			t.Fatalf("Play(%v): %v", m, err)
		}
	}

	testutil.AssertEqual(t, g.Status(), Checkmate)
	testutil.AssertEqual(t, last.Status, Checkmate)
	testutil.AssertEqual(t, g.Result(), "0-1")
	winner, ok := g.Winner()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, winner, chess.Black)

	_, err := g.Play(chess.Coord{Row: 6, Col: 0}, chess.Coord{Row: 5, Col: 0})
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
}

func TestGame_CheckStatus(t *testing.T) {
	g, err := NewGameFromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	testutil.AssertNoError(t, err)

	played, err := g.Play(chess.Coord{Row: 7, Col: 0}, chess.Coord{Row: 0, Col: 0})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, played.Status, Check)
	testutil.AssertEqual(t, g.Status(), Check)
	_, ok := g.Winner()
	testutil.AssertFalse(t, ok)
}

func TestGame_Stalemate(t *testing.T) {
	g, err := NewGameFromFEN("k7/8/2Q5/8/8/8/8/7K w - - 0 1")
	testutil.AssertNoError(t, err)

	// Qc6-b6 leaves the black king without a move.
	_, err = g.Play(chess.Coord{Row: 2, Col: 2}, chess.Coord{Row: 2, Col: 1})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Status(), Stalemate)
	testutil.AssertEqual(t, g.Result(), "1/2-1/2")
}

func TestNewGameFromFEN_Invalid(t *testing.T) {
	_, err := NewGameFromFEN("not a fen")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestReplay(t *testing.T) {
	g, err := Replay(chess.InitialFEN, foolsMate)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Status(), Checkmate)
	testutil.AssertEqual(t, g.Moves(), foolsMate)
}

func TestReplay_ReportsPly(t *testing.T) {
	moves := []chess.MovePair{
		mv(6, 4, 4, 4),
		mv(6, 3, 4, 3), // white again
	}
	_, err := Replay(chess.InitialFEN, moves)

	testutil.AssertErrorIs(t, err, errors.ErrNotYourTurn)
	gameErr, ok := err.(*errors.GameError)
	if !ok {
		t.Fatalf("Replay error = %T, want *errors.GameError", err)
	}
	testutil.AssertEqual(t, gameErr.PlyNum, 2)
}

func TestGame_Undo(t *testing.T) {
	g := NewGame()
	for _, m := range foolsMate {
		if _, err := g.Play(m.From, m.To); err != nil {
			t.Fatalf("Play(%v): %v", m, err)
		}
	}

	testutil.AssertNoError(t, g.Undo())

	testutil.AssertEqual(t, len(g.History), 3)
	testutil.AssertEqual(t, g.ToMove, chess.Black)
	testutil.AssertEqual(t, g.Status(), InPlay)
	if p := g.Board.Get(chess.Coord{Row: 0, Col: 3}); p == nil || p.Kind() != chess.Queen {
		t.Errorf("queen not restored to (0,3), got %v", p)
	}

	empty := NewGame()
	testutil.AssertNoError(t, empty.Undo())
}
