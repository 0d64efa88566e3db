// batch.go - Replays several move files in parallel
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/hashing"
	"github.com/lgbarn/chessrules/internal/output"
	"github.com/lgbarn/chessrules/internal/storage"
	"github.com/lgbarn/chessrules/internal/worker"
)

// batchEntry is the report line for one move file.
type batchEntry struct {
	File        string `json:"file"`
	Plies       int    `json:"plies"`
	Status      string `json:"status,omitempty"`
	Result      string `json:"result,omitempty"`
	DuplicateOf string `json:"duplicateOf,omitempty"`
	Error       string `json:"error,omitempty"`
}

// String formats the entry as one report line.
func (e batchEntry) String() string {
	if e.Error != "" {
		return fmt.Sprintf("%s: error: %s", e.File, e.Error)
	}
	s := fmt.Sprintf("%s: %d ply, %s, result %s", e.File, e.Plies, e.Status, e.Result)
	if e.DuplicateOf != "" {
		s += ", same final position as " + e.DuplicateOf
	}
	return s
}

// readMoves reads one move per line, skipping blank lines and '#' comments.
func readMoves(r io.Reader) ([]chess.MovePair, error) {
	var moves []chess.MovePair
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m, err := parseMoveLine(line)
		if err != nil {
			return nil, &errors.GameError{Err: err, PlyNum: len(moves) + 1, MoveText: line}
		}
		moves = append(moves, m)
	}
	return moves, scanner.Err()
}

// replayFile replays the move file name from startFEN.
func replayFile(name, startFEN string) (*engine.Game, error) {
	file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck // read-only file

	moves, err := readMoves(file)
	if err != nil {
		return nil, err
	}
	return engine.Replay(startFEN, moves)
}

// archiveID derives an archive identifier from a file name.
func archiveID(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// runBatch replays every file on a worker pool and reports one entry per
// file in argument order. It returns the number of files that failed.
func runBatch(cfg *config.Config, store *storage.Storage, files []string) (int, error) {
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		g, err := replayFile(item.Name, cfg.StartFEN)
		return worker.ProcessResult{Name: item.Name, Index: item.Index, Game: g, Error: err}
	}, worker.WithWorkers(workers), worker.WithBufferSize(2*workers))
	pool.Start()

	go func() {
		for i, name := range files {
			pool.Submit(worker.WorkItem{Name: name, Index: i})
		}
		pool.Close()
	}()

	results := make([]worker.ProcessResult, 0, len(files))
	for r := range pool.Results() {
		if r.Error != nil && cfg.FailFast {
			pool.Stop()
		}
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	detector := hashing.NewDuplicateDetector(false)
	entries := make([]batchEntry, 0, len(results))
	failed := 0
	for _, r := range results {
		entry := batchEntry{File: r.Name}
		if r.Error != nil {
			failed++
			entry.Error = r.Error.Error()
			entries = append(entries, entry)
			continue
		}

		entry.Plies = len(r.Game.History)
		entry.Status = r.Game.Status().String()
		entry.Result = r.Game.Result()
		if first, dup := detector.CheckAndAdd(r.Name, r.Game); dup {
			entry.DuplicateOf = first.Name
		}
		entries = append(entries, entry)

		if store != nil && cfg.Archive.Enabled {
			id := archiveID(r.Name)
			if err := store.SaveGame(storage.NewGameRecord(id, r.Game)); err != nil {
				return failed, errors.Wrapf(err, "archiving game %s", id)
			}
			cfg.Logf(config.Commentary, "Archived game %s\n", id)
		}
	}

	if err := writeBatchReport(cfg, entries); err != nil {
		return failed, err
	}

	cfg.Logf(config.Summary, "%d game(s) replayed, %d failed, %d duplicate(s)\n",
		len(results), failed, detector.DuplicateCount())
	if skipped := len(files) - len(results); skipped > 0 {
		cfg.Logf(config.Summary, "%d game(s) skipped after the first failure\n", skipped)
	}
	return failed, nil
}

func writeBatchReport(cfg *config.Config, entries []batchEntry) error {
	if cfg.Output.JSONFormat {
		return output.WriteJSON(cfg.OutputFile, entries)
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(cfg.OutputFile, e); err != nil {
			return err
		}
	}
	return nil
}
