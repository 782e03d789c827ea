// processor.go - Position reading, analysis and output functions
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/bureaucrat-chess/internal/config"
	"github.com/lgbarn/bureaucrat-chess/internal/hashing"
	"github.com/lgbarn/bureaucrat-chess/internal/output"
	"github.com/lgbarn/bureaucrat-chess/internal/worker"
)

// maxBufferSize bounds the pool's channel buffers.
const maxBufferSize = 100

// inputStats counts analysed positions.
type inputStats struct {
	positions  int
	failed     int
	duplicates int
	skipped    int // not analysed because of an interrupt
}

func (s *inputStats) add(other inputStats) {
	s.positions += other.positions
	s.failed += other.failed
	s.duplicates += other.duplicates
	s.skipped += other.skipped
}

// ProcessingContext holds state shared across all inputs.
type ProcessingContext struct {
	cfg      *config.Config
	writer   output.AnalysisWriter
	detector *hashing.DuplicateDetector // nil unless duplicates are suppressed
}

// readPositions reads one position per line. Blank lines and lines starting
// with '#' are skipped; indices are contiguous from 0.
func readPositions(r io.Reader, source string) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, worker.WorkItem{
			Line:   line,
			Source: source,
			LineNo: lineNo,
			Index:  len(items),
		})
	}
	return items, scanner.Err()
}

// loadFileList reads input file names, one per line, skipping blank lines and
// '#' comments.
func loadFileList(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, scanner.Err()
}

// setupDuplicateDetector creates a detector when duplicate positions are suppressed.
func setupDuplicateDetector(suppress bool, capacity int) *hashing.DuplicateDetector {
	if !suppress {
		return nil
	}
	return hashing.NewDuplicateDetector(capacity)
}

// newAnalysisWriter picks the writer for the configured output format.
// lines selects one JSON object per position instead of one document.
func newAnalysisWriter(cfg *config.Config, lines bool) output.AnalysisWriter {
	a := cfg.Analysis
	switch {
	case a.JSONFormat && lines:
		return output.NewJSONWriterSingle(cfg.OutputFile, a.JSONIndent)
	case a.JSONFormat:
		return output.NewJSONWriter(cfg.OutputFile, a.JSONIndent)
	default:
		return output.NewTextWriter(cfg.OutputFile, a.MaxLineLength)
	}
}

// analyzeItems analyses items on a worker pool and writes the results in
// input order. When ctx is cancelled the output stops at the first position
// that was not analysed and the rest are counted as skipped.
//
// Concurrency model: workers analyse positions in parallel; a single consumer
// (this goroutine) reorders and writes results, so the writer and duplicate
// detector need no locking.
func analyzeItems(ctx context.Context, items []worker.WorkItem, pc *ProcessingContext) inputStats {
	var stats inputStats
	if len(items) == 0 {
		return stats
	}
	cfg := pc.cfg
	logger := cfg.Logger()

	bufferSize := len(items)
	if bufferSize > maxBufferSize {
		bufferSize = maxBufferSize
	}
	pool := worker.NewPool(
		worker.AnalyzeFunc(cfg.Analysis.IncludeEmpty),
		worker.WithWorkers(cfg.Analysis.Workers),
		worker.WithBufferSize(bufferSize),
	)
	logger.Logf(config.Events, "%s: analysing %d position(s) on %d worker(s)", items[0].Source, len(items), pool.NumWorkers())

	worker.CollectOrdered(pool.Run(ctx, items), func(result worker.ProcessResult) {
		entry := output.Entry{
			Source:   result.Item.Source,
			LineNo:   result.Item.LineNo,
			Analysis: result.Analysis,
			Err:      result.Error,
		}
		stats.positions++
		if result.Error != nil {
			stats.failed++
			logger.Logf(config.Events, "%s: %v", entry.Location(), result.Error)
		} else if pc.detector != nil && pc.detector.CheckAndAdd(result.Analysis.Board, result.Analysis.ToMove) {
			stats.duplicates++
			logger.Logf(config.Events, "%s: duplicate position", entry.Location())
			return
		}
		if err := pc.writer.WriteEntry(entry); err != nil {
			logger.Logf(config.Silent, "write error: %v", err)
		}
	})

	if pool.Stopped() {
		stats.skipped = len(items) - stats.positions
		logger.Logf(config.Lifecycle, "%s: interrupted, %d position(s) not analysed", items[0].Source, stats.skipped)
	}
	return stats
}

// processInput reads and analyses one input.
func processInput(ctx context.Context, r io.Reader, name string, pc *ProcessingContext) inputStats {
	items, err := readPositions(r, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", name, err)
	}
	return analyzeItems(ctx, items, pc)
}

// processAllInputs analyses every named file, or stdin when there are none.
// It stops after the current file once ctx is cancelled.
func processAllInputs(ctx context.Context, pc *ProcessingContext, files []string) inputStats {
	var stats inputStats

	if len(files) == 0 {
		stats.add(processInput(ctx, os.Stdin, "stdin", pc))
		return stats
	}

	for _, filename := range files {
		if ctx.Err() != nil {
			break
		}
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
			continue
		}
		stats.add(processInput(ctx, file, filename, pc))
		file.Close() //nolint:errcheck,gosec // G104: read-only file
	}

	return stats
}
