// chess plays a two-player game of chess from coordinate moves read from a
// file or standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openArchive(cfg)
	if store != nil {
		defer store.Close() //nolint:errcheck // best effort on exit
	}

	if *listArchive || *deleteID != "" {
		if err := manageArchive(store, cfg.OutputFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if args := flag.Args(); *batchMode || len(args) > 1 {
		if cfg.Archive.ResumeID != "" {
			fmt.Fprintf(os.Stderr, "Error: -resume cannot be combined with batch replay\n")
			os.Exit(1)
		}
		failed, err := runBatch(cfg, store, args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	input := setupInputFile(cfg)
	if input != nil {
		defer input.Close() //nolint:errcheck // read-only file
	}

	session, err := NewSession(cfg, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := session.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// setupInputFile opens the move file named on the command line, if any.
// Moves are read from stdin otherwise.
func setupInputFile(cfg *config.Config) *os.File {
	args := flag.Args()
	if len(args) == 0 {
		return nil
	}

	file, err := os.Open(args[0]) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", args[0], err)
		os.Exit(1)
	}
	cfg.InputFile = file
	return file
}

// openArchive opens the game archive when any archive flag needs it.
func openArchive(cfg *config.Config) *storage.Storage {
	if cfg.Archive.Dir == "" {
		return nil
	}

	store, err := storage.Open(cfg.Archive.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening archive %s: %v\n", cfg.Archive.Dir, err)
		os.Exit(1)
	}
	return store
}

// manageArchive handles -list and -delete.
func manageArchive(store *storage.Storage, w io.Writer) error {
	if store == nil {
		return fmt.Errorf("-list and -delete require -archive")
	}

	if *deleteID != "" {
		return store.DeleteGame(*deleteID)
	}

	ids, err := store.ListGames()
	if err != nil {
		return err
	}
	for _, id := range ids {
		rec, err := store.LoadGame(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d ply\t%s\t%s\n", rec.ID, len(rec.Moves), rec.Result, rec.Status)
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options] [move-file...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays a two-player game of chess. Each input line is a move given\n")
	fmt.Fprintf(os.Stderr, "as start row, start column, end row, end column (e.g. \"6 4 4 4\").\n")
	fmt.Fprintf(os.Stderr, "Row 0 is Black's back row; White moves first.\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  undo   take back the last ply\n")
	fmt.Fprintf(os.Stderr, "  board  redraw the board\n")
	fmt.Fprintf(os.Stderr, "  moves  list the legal moves of the side to move\n\n")
	fmt.Fprintf(os.Stderr, "With several move files (or -batch) each file is replayed as a\n")
	fmt.Fprintf(os.Stderr, "separate game and one result line is printed per file.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
