package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrInvalidFEN, ErrInvalidBoard, ErrInvalidPiece, ErrInvalidSquare,
		ErrInvalidColour, ErrUnknownRoom, ErrRoomLimit, ErrInvalidConfig, ErrInvalidMessage,
	}

	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("decoding request: %w", sentinel)
			if !errors.Is(wrapped, sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
			}
		})
	}
}

// TestRoomError_Error verifies the error message format
func TestRoomError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *RoomError
		contains []string
	}{
		{
			name:     "full context",
			err:      &RoomError{Err: ErrUnknownRoom, Room: "lobby", Event: "move", Client: "c1"},
			contains: []string{`room "lobby"`, "event move", "client c1", "unknown room"},
		},
		{
			name:     "room only",
			err:      &RoomError{Room: "lobby"},
			contains: []string{`room "lobby"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, want it to contain %q", msg, want)
				}
			}
		})
	}
}

// TestRoomError_As verifies errors.As works through wrapping
func TestRoomError_As(t *testing.T) {
	err := Wrap(&RoomError{Err: ErrRoomLimit, Room: "r1", Event: "join"}, "handling message")

	var roomErr *RoomError
	if !errors.As(err, &roomErr) {
		t.Fatal("errors.As(err, *RoomError) = false, want true")
	}
	if roomErr.Room != "r1" {
		t.Errorf("Room = %q, want r1", roomErr.Room)
	}
	if !errors.Is(err, ErrRoomLimit) {
		t.Error("errors.Is(err, ErrRoomLimit) = false, want true")
	}
}

// TestParseError_Error verifies parse error formatting
func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "location and expected/got",
			err:  &ParseError{Err: ErrInvalidPiece, Input: "board", Row: 2, Column: 5, Expected: "cell code", Got: `"x"`},
			want: `board row 2 col 5: expected cell code, got "x": invalid piece code`,
		},
		{
			name: "got only",
			err:  &ParseError{Err: ErrInvalidFEN, Got: "'9'"},
			want: "unexpected '9': invalid FEN string",
		},
		{
			name: "bare",
			err:  &ParseError{},
			want: "parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestParseError_Unwrap verifies unwrapping
func TestParseError_Unwrap(t *testing.T) {
	err := &ParseError{Err: ErrInvalidBoard, Row: 9}
	if !errors.Is(err, ErrInvalidBoard) {
		t.Error("errors.Is(ParseError, ErrInvalidBoard) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) != nil")
	}
	err := Wrap(ErrInvalidColour, "turn")
	if err.Error() != "turn: invalid colour" {
		t.Errorf("Wrap() = %q", err.Error())
	}
	if !errors.Is(err, ErrInvalidColour) {
		t.Error("errors.Is(Wrap(...), ErrInvalidColour) = false")
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "row %d", 3) != nil {
		t.Error("Wrapf(nil) != nil")
	}
	err := Wrapf(ErrInvalidSquare, "pos [%d,%d]", 9, 1)
	if err.Error() != "pos [9,1]: invalid square" {
		t.Errorf("Wrapf() = %q", err.Error())
	}
}
