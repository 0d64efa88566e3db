package config

// Glyphs selects how pieces are drawn in text output.
type Glyphs int

const (
	LetterGlyphs  Glyphs = iota // FEN letters: K Q R B N P / k q r b n p
	UnicodeGlyphs               // Chess symbols U+2654..U+265F
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Glyphs selects letters or Unicode symbols for pieces
	Glyphs Glyphs

	// Colour shades alternate cells with ANSI escape sequences
	Colour bool

	// JSONFormat prints JSON snapshots instead of a drawn board
	JSONFormat bool

	// ShowLegalMoves lists the legal moves of the side to move after each ply
	ShowLegalMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Glyphs: UnicodeGlyphs,
		Colour: true,
	}
}
