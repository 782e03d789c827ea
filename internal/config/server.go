package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/bureaucrat-chess/internal/errors"
)

// Server defaults.
const (
	DefaultAddr            = "localhost:5000"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultRoomIdleTimeout = 30 * time.Minute
)

// ServerConfig holds settings for the HTTP and websocket server.
type ServerConfig struct {
	// Addr is the listen address (host:port)
	Addr string

	// Timeouts for the underlying http.Server
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// ShutdownTimeout bounds the graceful shutdown
	ShutdownTimeout time.Duration

	// AllowedOrigins lists websocket origins; empty allows any origin
	AllowedOrigins []string

	// MaxRooms caps concurrent rooms (0 = unlimited)
	MaxRooms int

	// RoomIdleTimeout evicts rooms with no websocket clients that have seen
	// no activity for this long (0 = never)
	RoomIdleTimeout time.Duration
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            DefaultAddr,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: DefaultShutdownTimeout,
		RoomIdleTimeout: DefaultRoomIdleTimeout,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.ReadTimeout < 0 || s.WriteTimeout < 0 || s.IdleTimeout < 0 {
		return fmt.Errorf("negative server timeout: %w", errors.ErrInvalidConfig)
	}
	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout (%v) must be positive: %w", s.ShutdownTimeout, errors.ErrInvalidConfig)
	}
	if s.RoomIdleTimeout < 0 {
		return fmt.Errorf("room idle timeout (%v) < 0: %w", s.RoomIdleTimeout, errors.ErrInvalidConfig)
	}
	if s.MaxRooms < 0 {
		return fmt.Errorf("max rooms (%d) < 0: %w", s.MaxRooms, errors.ErrInvalidConfig)
	}
	return nil
}

// OriginAllowed reports whether a websocket origin may connect.
func (s *ServerConfig) OriginAllowed(origin string) bool {
	if len(s.AllowedOrigins) == 0 {
		return true
	}
	for _, allowed := range s.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
