// bureaucrat-chess analyses Bureaucrat chess positions and serves live games
// over websockets.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/bureaucrat-chess/internal/config"
	"github.com/lgbarn/bureaucrat-chess/internal/errors"
	"github.com/lgbarn/bureaucrat-chess/internal/server"
	"github.com/lgbarn/bureaucrat-chess/internal/session"
)

const programVersion = "0.1.0"

var errLogFlags = errors.Wrap(errors.ErrInvalidConfig, "-l and -L cannot be used together")

func main() {
	flag.Usage = usage
	flag.Parse()
	os.Exit(run())
}

// run executes the command and returns the exit status. Files it opens are
// closed before it returns.
func run() int {
	if *help {
		usage()
		return 0
	}

	if *version {
		fmt.Printf("bureaucrat-chess version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Set up logging and output files
	logFile, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeFile(logFile)

	outFile, err := setupOutputFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeFile(outFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *serve {
		return runServer(ctx, cfg)
	}

	files, err := inputFiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file list %s: %v\n", *fileListFile, err)
		return 1
	}

	pc := &ProcessingContext{
		cfg:      cfg,
		writer:   newAnalysisWriter(cfg, *jsonLines),
		detector: setupDuplicateDetector(*suppressDuplicates, *duplicateCapacity),
	}
	stats := processAllInputs(ctx, pc, files)
	if err := pc.writer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		return 1
	}

	// Report statistics
	if cfg.Verbosity > 0 {
		reportStatistics(stats)
	}
	if stats.failed > 0 || stats.skipped > 0 || ctx.Err() != nil {
		return 1
	}
	return 0
}

// runServer serves until ctx is cancelled and returns the exit status.
func runServer(ctx context.Context, cfg *config.Config) int {
	store := session.NewMemoryStore(cfg.Server.MaxRooms)
	srv := server.NewServer(cfg, store, programVersion)
	if err := srv.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		return 1
	}
	return 0
}

// inputFiles returns the files named on the command line and in the -f list.
func inputFiles() ([]string, error) {
	files := flag.Args()
	if *fileListFile == "" {
		return files, nil
	}
	listed, err := loadFileList(*fileListFile)
	if err != nil {
		return nil, err
	}
	return append(files, listed...), nil
}

// setupLogFile opens the -l or -L log file and points cfg at it.
// It returns nil when logging stays on stderr.
func setupLogFile(cfg *config.Config) (*os.File, error) {
	if *logFile != "" && *appendLog != "" {
		return nil, errLogFlags
	}

	var file *os.File
	var err error
	switch {
	case *logFile != "":
		file, err = os.Create(*logFile)
	case *appendLog != "":
		file, err = os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	default:
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	cfg.LogFile = file
	return file, nil
}

// setupOutputFile opens the -o output file and points cfg at it.
// It returns nil when output stays on stdout.
func setupOutputFile(cfg *config.Config) (*os.File, error) {
	if *outputFile == "" {
		return nil, nil
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	cfg.OutputFile = file
	return file, nil
}

// closeFile closes a file opened by the setup functions, if any.
func closeFile(file *os.File) {
	if file == nil {
		return
	}
	if err := file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing %s: %v\n", file.Name(), err)
	}
}

// reportStatistics prints the final statistics to stderr.
func reportStatistics(stats inputStats) {
	fmt.Fprintf(os.Stderr, "%d position(s) analysed", stats.positions)
	if stats.duplicates > 0 {
		fmt.Fprintf(os.Stderr, ", %d duplicate(s) suppressed", stats.duplicates)
	}
	if stats.failed > 0 {
		fmt.Fprintf(os.Stderr, ", %d could not be parsed", stats.failed)
	}
	if stats.skipped > 0 {
		fmt.Fprintf(os.Stderr, ", %d skipped after interrupt", stats.skipped)
	}
	fmt.Fprintln(os.Stderr, ".")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: bureaucrat-chess [options] [input-files...]\n")
	fmt.Fprintf(os.Stderr, "       bureaucrat-chess -serve [-addr host:port]\n\n")
	fmt.Fprintf(os.Stderr, "Lists the legal moves of Bureaucrat chess positions, or serves live games.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInput lines:\n")
	fmt.Fprintf(os.Stderr, "  <placement> [w|b] [moves...]\n")
	fmt.Fprintf(os.Stderr, "  placement uses FEN letters plus c/C for the Bureaucrat;\n")
	fmt.Fprintf(os.Stderr, "  moves are from-to squares such as e2e4, replayed before analysis.\n")
	fmt.Fprintf(os.Stderr, "  Blank lines and lines starting with # are ignored.\n")
}
