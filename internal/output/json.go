package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
)

// JSONPiece represents one occupant in JSON format.
type JSONPiece struct {
	Kind   string `json:"kind"`
	Colour string `json:"colour"` // "white" or "black"
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

// JSONBoard represents a board snapshot in JSON format.
type JSONBoard struct {
	FEN          string      `json:"fen"`
	Pieces       []JSONPiece `json:"pieces"`
	WhiteInCheck bool        `json:"whiteInCheck,omitempty"`
	BlackInCheck bool        `json:"blackInCheck,omitempty"`
}

// JSONMove represents a played move in JSON format.
type JSONMove struct {
	Ply      int    `json:"ply"`
	Colour   string `json:"colour"`
	From     [2]int `json:"from"`
	To       [2]int `json:"to"`
	Piece    string `json:"piece"`
	Captured string `json:"captured,omitempty"`
	Status   string `json:"status,omitempty"`
}

// JSONGame represents a game in JSON format.
type JSONGame struct {
	StartFEN string     `json:"startFEN"`
	ToMove   string     `json:"toMove"`
	Status   string     `json:"status"`
	Result   string     `json:"result"`
	Moves    []JSONMove `json:"moves,omitempty"`
	Board    *JSONBoard `json:"board"`
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// BoardToJSON converts a board to JSON format.
func BoardToJSON(b *chess.Board) *JSONBoard {
	jb := &JSONBoard{
		FEN:          b.FEN(),
		WhiteInCheck: b.InCheck(chess.White),
		BlackInCheck: b.InCheck(chess.Black),
	}
	for _, p := range b.Pieces() {
		pos := p.Position()
		jb.Pieces = append(jb.Pieces, JSONPiece{
			Kind:   p.Kind().String(),
			Colour: colourName(p.Colour()),
			Row:    pos.Row,
			Col:    pos.Col,
		})
	}
	return jb
}

// GameToJSON converts a game to JSON format.
func GameToJSON(g *engine.Game) *JSONGame {
	jg := &JSONGame{
		StartFEN: g.StartFEN,
		ToMove:   colourName(g.ToMove),
		Status:   g.Status().String(),
		Result:   g.Result(),
		Board:    BoardToJSON(g.Board),
	}
	for _, m := range g.History {
		jm := JSONMove{
			Ply:    m.Ply,
			Colour: colourName(m.Colour),
			From:   [2]int{m.From.Row, m.From.Col},
			To:     [2]int{m.To.Row, m.To.Col},
			Piece:  m.Piece.String(),
		}
		if m.Capture {
			jm.Captured = m.Captured.String()
		}
		if m.Status != engine.InPlay {
			jm.Status = m.Status.String()
		}
		jg.Moves = append(jg.Moves, jm)
	}
	return jg
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
