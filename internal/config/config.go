// Package config provides configuration for bureaucrat-chess.
package config

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lgbarn/bureaucrat-chess/internal/errors"
)

// Verbosity levels.
const (
	Silent    = 0 // errors only
	Lifecycle = 1 // startup, shutdown, room creation and eviction
	Events    = 2 // every request and client event
)

// Config holds all program configuration.
type Config struct {
	// Verbosity is the logging level: 0=silent, 1=lifecycle, 2=per event.
	Verbosity int

	// Server settings for -serve
	Server *ServerConfig

	// Analysis settings for batch position analysis
	Analysis *AnalysisConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Lifecycle,
		Server:     NewServerConfig(),
		Analysis:   NewAnalysisConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Events {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.Analysis.Validate()
}

// Logger returns a logger writing to LogFile that drops messages above the
// configured verbosity.
func (c *Config) Logger() *Logger {
	w := c.LogFile
	if w == nil {
		w = io.Discard
	}
	return &Logger{
		Logger: log.New(w, "", log.LstdFlags),
		level:  c.Verbosity,
	}
}

// Logger is a standard logger gated by a verbosity level.
type Logger struct {
	*log.Logger
	level int
}

// Logf writes a message when the logger's verbosity is at least level.
func (l *Logger) Logf(level int, format string, args ...interface{}) {
	if l == nil || l.level < level {
		return
	}
	l.Printf(format, args...)
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level int) bool {
	return l != nil && l.level >= level
}
