// Package engine runs a game over a chess.Board: it alternates turns,
// records history and tracks whether the game has ended.
package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// Status is the state of the side to move.
type Status int

const (
	InPlay Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "in play"
	}
}

// Over reports whether no further moves may be played.
func (s Status) Over() bool {
	return s == Checkmate || s == Stalemate
}

// PlayedMove records one ply of a game.
type PlayedMove struct {
	Ply      int          // 1-based
	Colour   chess.Colour // Side that moved
	From     chess.Coord
	To       chess.Coord
	Piece    chess.Kind
	Capture  bool
	Captured chess.Kind // Valid only when Capture is set
	Status   Status     // Status of the opponent after the move
}

// String formats the move as e.g. "3. White Knight (7,6)->(5,5)".
func (m PlayedMove) String() string {
	s := fmt.Sprintf("%d. %v %v %v->%v", m.Ply, m.Colour, m.Piece, m.From, m.To)
	if m.Capture {
		s += fmt.Sprintf(" x%v", m.Captured)
	}
	if m.Status != InPlay {
		s += " " + m.Status.String()
	}
	return s
}

// Pair returns the from/to cells of the move.
func (m PlayedMove) Pair() chess.MovePair {
	return chess.MovePair{From: m.From, To: m.To}
}

// Game holds one board and the turn order played on it.
type Game struct {
	Board    *chess.Board
	ToMove   chess.Colour
	StartFEN string
	History  []PlayedMove

	status Status
}

// NewGame starts a game from the standard position with White to move.
func NewGame() *Game {
	g, err := NewGameFromFEN(chess.InitialFEN)
	if err != nil {
		panic(err) // InitialFEN is a constant
	}
	return g
}

// NewGameFromFEN starts a game from a FEN position.
func NewGameFromFEN(fen string) (*Game, error) {
	board, toMove, err := chess.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{
		Board:    board,
		ToMove:   toMove,
		StartFEN: fen,
	}
	g.status = g.evaluate()
	return g, nil
}

// Status returns the status of the side to move.
func (g *Game) Status() Status {
	return g.status
}

// Play validates and plays a move for the side to move.
func (g *Game) Play(from, to chess.Coord) (PlayedMove, error) {
	if g.status.Over() {
		return PlayedMove{}, errors.ErrGameOver
	}
	if from.InBounds() {
		if p := g.Board.Get(from); p != nil && p.Colour() != g.ToMove {
			return PlayedMove{}, &errors.MoveError{
				Err:   errors.ErrNotYourTurn,
				From:  from.String(),
				To:    to.String(),
				Piece: p.String(),
			}
		}
	}

	var captured *chess.Piece
	if to.InBounds() {
		captured = g.Board.Get(to)
	}
	if err := g.Board.Move(from, to); err != nil {
		return PlayedMove{}, err
	}

	mover := g.Board.Get(to)
	played := PlayedMove{
		Ply:    len(g.History) + 1,
		Colour: g.ToMove,
		From:   from,
		To:     to,
		Piece:  mover.Kind(),
	}
	if captured != nil {
		played.Capture = true
		played.Captured = captured.Kind()
	}

	g.ToMove = g.ToMove.Opposite()
	g.status = g.evaluate()
	played.Status = g.status
	g.History = append(g.History, played)
	return played, nil
}

// Undo takes back the last ply by replaying the history before it.
func (g *Game) Undo() error {
	if len(g.History) == 0 {
		return nil
	}
	moves := make([]chess.MovePair, 0, len(g.History)-1)
	for _, m := range g.History[:len(g.History)-1] {
		moves = append(moves, m.Pair())
	}
	replayed, err := Replay(g.StartFEN, moves)
	if err != nil {
		return err
	}
	*g = *replayed
	return nil
}

// Winner returns the winning colour once the game ended in checkmate.
func (g *Game) Winner() (chess.Colour, bool) {
	if g.status != Checkmate {
		return chess.White, false
	}
	return g.ToMove.Opposite(), true
}

// Result returns the result in PGN style: "1-0", "0-1", "1/2-1/2" or "*".
func (g *Game) Result() string {
	switch g.status {
	case Checkmate:
		if g.ToMove == chess.Black {
			return "1-0"
		}
		return "0-1"
	case Stalemate:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Moves returns the history as from/to pairs.
func (g *Game) Moves() []chess.MovePair {
	moves := make([]chess.MovePair, len(g.History))
	for i, m := range g.History {
		moves[i] = m.Pair()
	}
	return moves
}

// evaluate classifies the position for the side to move.
func (g *Game) evaluate() Status {
	inCheck := g.Board.InCheck(g.ToMove)
	hasMoves := g.Board.HasLegalMoves(g.ToMove)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case inCheck:
		return Check
	case !hasMoves:
		return Stalemate
	default:
		return InPlay
	}
}

// Replay starts a game from fen and plays moves in order. A rejected move
// is reported as a *errors.GameError carrying its ply number.
func Replay(fen string, moves []chess.MovePair) (*Game, error) {
	g, err := NewGameFromFEN(fen)
	if err != nil {
		return nil, err
	}
	for i, m := range moves {
		if _, err := g.Play(m.From, m.To); err != nil {
			return nil, &errors.GameError{Err: err, PlyNum: i + 1, MoveText: m.String()}
		}
	}
	return g, nil
}
