// Package config provides configuration for the chess front end.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// Verbosity levels for LogFile output.
const (
	Silent     = 0 // nothing
	Summary    = 1 // game result
	Commentary = 2 // running commentary per ply
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// StartFEN is the starting position
	StartFEN string

	Output  OutputConfig
	Archive ArchiveConfig

	// Workers is the number of goroutines replaying move files in batch
	// mode (0 = one per CPU)
	Workers int

	// FailFast stops a batch at the first game that fails to replay
	FailFast bool

	// Streams
	InputFile  io.Reader
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		StartFEN:   chess.InitialFEN,
		Output:     *NewOutputConfig(),
		Archive:    *NewArchiveConfig(),
		InputFile:  os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d is negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Archive.Active() && c.Archive.Dir == "" {
		return fmt.Errorf("archive directory required: %w", errors.ErrInvalidConfig)
	}
	if _, _, err := chess.NewBoardFromFEN(c.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes to LogFile when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
