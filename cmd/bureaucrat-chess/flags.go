// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/bureaucrat-chess/internal/config"
)

var (
	// Mode
	serve = flag.Bool("serve", false, "Run the HTTP and websocket server instead of analysing positions")

	// Server options
	addr            = flag.String("addr", config.DefaultAddr, "Address to listen on with -serve")
	origins         = flag.String("origins", "", "Comma-separated websocket origins to accept (default: any)")
	maxRooms        = flag.Int("max-rooms", 0, "Maximum number of live rooms (0 = unlimited)")
	shutdownTimeout = flag.Duration("shutdown-timeout", config.DefaultShutdownTimeout, "Time allowed for graceful shutdown")
	roomIdleTimeout = flag.Duration("room-idle-timeout", config.DefaultRoomIdleTimeout, "Evict rooms without clients after this long idle (0 = never)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength   = flag.Int("w", 80, "Maximum line length for text output")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format (one document)")
	jsonLines    = flag.Bool("jsonl", false, "Output one JSON object per position")
	jsonIndent   = flag.String("indent", "", "Indent string for JSON output")
	includeEmpty = flag.Bool("all", false, "List pieces that have no legal moves")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum positions remembered for -D (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", config.Lifecycle, "Log verbosity: 0=silent, 1=lifecycle, 2=every event")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	// File input options
	fileListFile = flag.String("f", "", "File containing list of position files to process (one per line)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyServerFlags(cfg)
	applyAnalysisFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
}

// applyServerFlags configures the server.
func applyServerFlags(cfg *config.Config) {
	cfg.Server.Addr = *addr
	cfg.Server.MaxRooms = *maxRooms
	cfg.Server.ShutdownTimeout = *shutdownTimeout
	cfg.Server.RoomIdleTimeout = *roomIdleTimeout
	cfg.Server.AllowedOrigins = splitList(*origins)
}

// applyAnalysisFlags configures batch analysis and its output.
func applyAnalysisFlags(cfg *config.Config) {
	cfg.Analysis.Workers = *workers
	cfg.Analysis.JSONFormat = *jsonOutput || *jsonLines
	cfg.Analysis.JSONIndent = *jsonIndent
	cfg.Analysis.IncludeEmpty = *includeEmpty
	if *lineLength > 0 {
		cfg.Analysis.MaxLineLength = uint(*lineLength)
	}
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
