// session.go - Reads moves from the input stream and plays them
package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/output"
	"github.com/lgbarn/chessrules/internal/storage"
)

// Session couples a game with its configuration and optional archive.
type Session struct {
	cfg    *config.Config
	game   *engine.Game
	store  *storage.Storage
	gameID string

	rejected int
}

// NewSession starts a fresh game from cfg.StartFEN, or resumes the archived
// game named by cfg.Archive.ResumeID.
func NewSession(cfg *config.Config, store *storage.Storage) (*Session, error) {
	s := &Session{cfg: cfg, store: store}

	if cfg.Archive.ResumeID != "" {
		if store == nil {
			return nil, fmt.Errorf("resume %s: archive not open: %w", cfg.Archive.ResumeID, errors.ErrInvalidConfig)
		}
		rec, err := store.LoadGame(cfg.Archive.ResumeID)
		if err != nil {
			return nil, err
		}
		g, err := rec.Restore()
		if err != nil {
			return nil, err
		}
		s.game = g
		s.gameID = rec.ID
		cfg.Logf(config.Summary, "Resumed game %s after %d ply\n", rec.ID, len(g.History))
		return s, nil
	}

	g, err := engine.NewGameFromFEN(cfg.StartFEN)
	if err != nil {
		return nil, err
	}
	s.game = g
	s.gameID = cfg.Archive.GameID
	if s.gameID == "" {
		s.gameID = storage.NewGameID()
	}
	return s, nil
}

// Game returns the game being played.
func (s *Session) Game() *engine.Game {
	return s.game
}

// Run reads commands until the input ends or the game is over, then writes
// the result and archives the game if enabled.
func (s *Session) Run() error {
	if !s.cfg.Output.JSONFormat {
		if err := s.showPosition(); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(s.cfg.InputFile)
	lineNum := 0
	for !s.game.Status().Over() && scanner.Scan() {
		lineNum++
		if err := s.handleLine(scanner.Text(), lineNum); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading moves")
	}

	return s.finish()
}

// handleLine interprets one input line. Rejected moves are logged and
// leave the game unchanged; only output failures are returned.
func (s *Session) handleLine(line string, lineNum int) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	switch strings.ToLower(line) {
	case "undo":
		if err := s.game.Undo(); err != nil {
			return err
		}
		s.cfg.Logf(config.Commentary, "Took back a ply, %v to move\n", s.game.ToMove)
		return s.showPosition()
	case "board":
		return s.showPosition()
	case "moves":
		return s.showLegalMoves()
	}

	m, err := parseMoveLine(line)
	if err != nil {
		s.rejected++
		s.cfg.Logf(config.Summary, "line %d: %v\n", lineNum, err)
		return nil
	}

	played, err := s.game.Play(m.From, m.To)
	if err != nil {
		s.rejected++
		s.cfg.Logf(config.Summary, "line %d: %v\n", lineNum, err)
		return nil
	}
	s.cfg.Logf(config.Commentary, "%v\n", played)

	if s.cfg.Output.JSONFormat {
		return nil
	}
	return s.showPosition()
}

// showPosition draws the board followed by the side to move.
func (s *Session) showPosition() error {
	if s.cfg.Output.JSONFormat {
		return output.WriteJSON(s.cfg.OutputFile, output.BoardToJSON(s.game.Board))
	}
	w := s.cfg.OutputFile
	if err := output.RenderBoard(w, s.game.Board, s.cfg.Output); err != nil {
		return err
	}
	status := s.game.Status()
	if status == engine.InPlay {
		fmt.Fprintf(w, "%v to move\n", s.game.ToMove)
	} else {
		fmt.Fprintf(w, "%v to move: %v\n", s.game.ToMove, status)
	}
	if s.cfg.Output.ShowLegalMoves && !status.Over() {
		return s.showLegalMoves()
	}
	return nil
}

func (s *Session) showLegalMoves() error {
	moves := s.game.Board.LegalMoves(s.game.ToMove)
	_, err := fmt.Fprintf(s.cfg.OutputFile, "Legal moves: %s\n", output.FormatMoves(moves))
	return err
}

// finish writes the JSON summary, archives the game and logs the result.
func (s *Session) finish() error {
	if s.cfg.Output.JSONFormat {
		if err := output.WriteJSON(s.cfg.OutputFile, output.GameToJSON(s.game)); err != nil {
			return err
		}
	}

	if s.store != nil && s.cfg.Archive.Active() {
		if err := s.store.SaveGame(storage.NewGameRecord(s.gameID, s.game)); err != nil {
			return errors.Wrapf(err, "archiving game %s", s.gameID)
		}
		s.cfg.Logf(config.Summary, "Archived game %s\n", s.gameID)
	}

	s.cfg.Logf(config.Summary, "%d ply played, %d rejected, result %s\n",
		len(s.game.History), s.rejected, s.game.Result())
	return nil
}

// parseMoveLine reads a move given as four cell indices: start row, start
// column, end row, end column. Any non-digit characters separate them, so
// "6 4 4 4", "6,4-4,4" and "(6,4)->(4,4)" are equivalent.
func parseMoveLine(line string) (chess.MovePair, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	if len(fields) != 4 {
		return chess.MovePair{}, &errors.ParseError{
			Err:      errors.ErrIllegalMove,
			Expected: "four cell indices",
			Got:      strconv.Quote(line),
		}
	}

	var n [4]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return chess.MovePair{}, &errors.ParseError{Err: err, Column: i + 1, Got: f}
		}
		n[i] = v
	}
	return chess.MovePair{
		From: chess.Coord{Row: n[0], Col: n[1]},
		To:   chess.Coord{Row: n[2], Col: n[3]},
	}, nil
}
