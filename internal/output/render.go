// Package output renders boards and games as text and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
)

// ANSI sequences for cell shading: black text on red or white.
const (
	ansiDark  = "\x1b[30;41m"
	ansiLight = "\x1b[30;47m"
	ansiReset = "\x1b[0m"
)

var unicodeGlyphs = [2][chess.NumKinds]string{
	chess.Black: {"♟", "♞", "♝", "♜", "♛", "♚"},
	chess.White: {"♙", "♘", "♗", "♖", "♕", "♔"},
}

// Glyph returns the character drawn for p.
func Glyph(p *chess.Piece, glyphs config.Glyphs) string {
	if glyphs == config.UnicodeGlyphs {
		return unicodeGlyphs[p.Colour()][p.Kind()]
	}
	return string(p.Letter())
}

// RenderBoard writes the grid with a column header and a row index on
// each line. Cells whose row and column share parity are dark.
func RenderBoard(w io.Writer, b *chess.Board, opts config.OutputConfig) error {
	var sb strings.Builder

	sb.WriteString("   ")
	for col := 0; col < chess.BoardSize; col++ {
		fmt.Fprintf(&sb, "%d ", col)
	}
	sb.WriteString("\n\n")

	for row := 0; row < chess.BoardSize; row++ {
		fmt.Fprintf(&sb, "%d  ", row)
		for col := 0; col < chess.BoardSize; col++ {
			cell := ". "
			if opts.Colour {
				cell = "  "
			}
			if p := b.Get(chess.Coord{Row: row, Col: col}); p != nil {
				cell = Glyph(p, opts.Glyphs) + " "
			}
			if opts.Colour {
				shade := ansiLight
				if row%2 == col%2 {
					shade = ansiDark
				}
				cell = shade + cell + ansiReset
			}
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatMoves formats move pairs as "r,c-r,c" separated by spaces.
func FormatMoves(moves []chess.MovePair) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = fmt.Sprintf("%d,%d-%d,%d", m.From.Row, m.From.Col, m.To.Row, m.To.Col)
	}
	return strings.Join(parts, " ")
}
