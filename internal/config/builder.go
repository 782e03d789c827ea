package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithAddr sets the server listen address.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithTimeouts sets the server read, write and idle timeouts.
func (b *ConfigBuilder) WithTimeouts(read, write, idle time.Duration) *ConfigBuilder {
	b.cfg.Server.ReadTimeout = read
	b.cfg.Server.WriteTimeout = write
	b.cfg.Server.IdleTimeout = idle
	return b
}

// WithShutdownTimeout sets the graceful shutdown bound.
func (b *ConfigBuilder) WithShutdownTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Server.ShutdownTimeout = d
	return b
}

// WithAllowedOrigins restricts websocket origins.
func (b *ConfigBuilder) WithAllowedOrigins(origins ...string) *ConfigBuilder {
	b.cfg.Server.AllowedOrigins = origins
	return b
}

// WithMaxRooms caps the number of concurrent rooms.
func (b *ConfigBuilder) WithMaxRooms(n int) *ConfigBuilder {
	b.cfg.Server.MaxRooms = n
	return b
}

// WithRoomIdleTimeout sets how long an unwatched room survives without activity.
func (b *ConfigBuilder) WithRoomIdleTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Server.RoomIdleTimeout = d
	return b
}

// WithWorkers sets the number of analysis workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Analysis.Workers = n
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Analysis.JSONFormat = enabled
	return b
}

// WithIncludeEmpty lists pieces without legal moves in analysis output.
func (b *ConfigBuilder) WithIncludeEmpty(enabled bool) *ConfigBuilder {
	b.cfg.Analysis.IncludeEmpty = enabled
	return b
}

// WithMaxLineLength sets the maximum line length for text output.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Analysis.MaxLineLength = length
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogWriter sets the log writer.
func (b *ConfigBuilder) WithLogWriter(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
