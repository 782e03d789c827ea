// Package errors provides sentinel errors and error types for bureaucrat-chess.
// The rules engine itself never returns errors; these describe failures at the
// edges: decoding wire boards and position strings, configuration, and rooms.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed position string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidBoard indicates a wire board that is not 8 rows of 8 cells.
	ErrInvalidBoard = errors.New("invalid board")

	// ErrInvalidPiece indicates an unknown cell code.
	ErrInvalidPiece = errors.New("invalid piece code")

	// ErrInvalidSquare indicates a coordinate pair that is malformed or off the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidColour indicates a turn value other than white or black.
	ErrInvalidColour = errors.New("invalid colour")

	// ErrUnknownRoom indicates a room that has not been joined.
	ErrUnknownRoom = errors.New("unknown room")

	// ErrRoomLimit indicates the session store is full.
	ErrRoomLimit = errors.New("room limit reached")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidMessage indicates a client message that cannot be handled.
	ErrInvalidMessage = errors.New("invalid message")
)

// RoomError wraps errors with room context. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type RoomError struct {
	Err    error  // The underlying error
	Room   string // Room identifier
	Event  string // Event being handled ("join", "select", "move")
	Client string // Client connection id (if known)
}

// Error returns a formatted error message including all available context.
func (e *RoomError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("room %q", e.Room))

	if e.Event != "" {
		parts = append(parts, fmt.Sprintf("event %s", e.Event))
	}
	if e.Client != "" {
		parts = append(parts, fmt.Sprintf("client %s", e.Client))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the RoomError wrapper.
func (e *RoomError) Unwrap() error {
	return e.Err
}

// ParseError represents a decoding error with board location context.
// Row and Column are 1-based; zero means unknown.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // Name of the input being parsed
	Row      int    // Board row (1-based)
	Column   int    // Cell or character column (1-based)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" || e.Row > 0 {
		loc := e.Input
		if e.Row > 0 {
			if loc != "" {
				loc += " "
			}
			loc += fmt.Sprintf("row %d", e.Row)
			if e.Column > 0 {
				loc += fmt.Sprintf(" col %d", e.Column)
			}
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
