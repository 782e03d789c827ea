package testutil

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/bureaucrat-chess/internal/chess"
)

// SortSquares returns a row-major sorted copy of squares. Nil and empty
// inputs both give an empty, non-nil slice so they compare equal.
func SortSquares(squares []chess.Square) []chess.Square {
	sorted := append([]chess.Square{}, squares...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})
	return sorted
}

// AssertSquares compares two square lists as sets.
func AssertSquares(t *testing.T, got, want []chess.Square, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(SortSquares(want), SortSquares(got)); diff != "" {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: squares mismatch (-want +got):\n%s", msg, diff)
		} else {
			t.Errorf("squares mismatch (-want +got):\n%s", diff)
		}
	}
}

// AssertBoardsEqual compares two boards square by square and reports the
// difference as a pair of diagrams.
func AssertBoardsEqual(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if got.Squares == want.Squares {
		return
	}
	msg := formatMessage(msgAndArgs...)
	if msg != "" {
		msg += ": "
	}
	t.Errorf("%sboard mismatch (-want +got):\n%s", msg, cmp.Diff(Diagram(want), Diagram(got)))
}

// Diagram renders a board one row per line using the wire letters.
func Diagram(b *chess.Board) string {
	const letters = ".PNBRQKC"
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := b.Squares[row][col]
			kind := chess.ExtractPiece(piece)
			c := byte('?')
			if int(kind) < len(letters) {
				c = letters[kind]
			}
			if piece != chess.Empty && chess.ExtractColour(piece) == chess.Black {
				c += 'a' - 'A'
			}
			sb.WriteByte(c)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
