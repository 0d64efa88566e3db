// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output the finished game in JSON format")
	letters      = flag.Bool("letters", false, "Draw pieces as FEN letters instead of Unicode symbols")
	noColour     = flag.Bool("nocolour", false, "Don't shade cells with ANSI colours")
	showMoves    = flag.Bool("moves", false, "List the legal moves of the side to move after each ply")

	// Position
	startFEN = flag.String("fen", "", "Starting position in FEN (default: standard position)")

	// Archive
	archiveDir  = flag.String("archive", "", "Save the game to the archive in this directory")
	gameID      = flag.String("id", "", "Archive identifier for the game (default: generated)")
	resumeID    = flag.String("resume", "", "Continue the archived game with this identifier")
	listArchive = flag.Bool("list", false, "List archived games and exit")
	deleteID    = flag.String("delete", "", "Delete the archived game with this identifier and exit")

	// Batch replay
	batchMode = flag.Bool("batch", false, "Replay each move file and report its result (implied by several files)")
	workers   = flag.Int("workers", 0, "Number of worker threads for batch replay (0 = auto-detect based on CPU cores)")
	failFast  = flag.Bool("failfast", false, "Stop batch replay at the first file that fails")

	// Logging
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	appendLog  = flag.String("L", "", "Append diagnostics to log file")
	commentary = flag.Bool("v", false, "Log a running commentary of each ply")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no result summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyArchiveFlags(cfg)

	cfg.Workers = *workers
	cfg.FailFast = *failFast

	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}

	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *commentary:
		cfg.Verbosity = config.Commentary
	}
}

// applyOutputFlags configures board and move output.
func applyOutputFlags(cfg *config.Config) {
	if *letters {
		cfg.Output.Glyphs = config.LetterGlyphs
	}
	cfg.Output.Colour = !*noColour
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowLegalMoves = *showMoves
}

// applyArchiveFlags configures the game archive.
func applyArchiveFlags(cfg *config.Config) {
	cfg.Archive.Dir = *archiveDir
	cfg.Archive.Enabled = *archiveDir != "" && !*listArchive && *deleteID == ""
	cfg.Archive.GameID = *gameID
	cfg.Archive.ResumeID = *resumeID
}
