package engine

import (
	"testing"

	"github.com/lgbarn/bureaucrat-chess/internal/chess"
)

// mustPosition parses a position string or aborts the test.
func mustPosition(t testing.TB, fen string) Position {
	t.Helper()
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error: %v", fen, err)
	}
	return pos
}

// mustBoard parses a position string and returns only the board.
func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	return mustPosition(t, fen).Board
}

// rowSquares returns every square of the given rows.
func rowSquares(rows ...int) []chess.Square {
	var squares []chess.Square
	for _, row := range rows {
		for col := 0; col < chess.BoardSize; col++ {
			squares = append(squares, chess.Sq(row, col))
		}
	}
	return squares
}

// propertyFENs are positions used by the whole-board property tests.
var propertyFENs = []string{
	InitialFEN,
	"4k3/4c3/8/8/8/8/4C3/4K3 w",
	"4k3/8/8/8/4R3/8/8/K7 b",
	"4r2k/8/8/8/8/8/4R3/4K3 w",
	"4k3/8/8/8/8/8/8/r3K2C w",
	"r1bqkb1r/pppp1ppp/2n2n2/8/2B1c3/5N2/PPPPCPPP/RNBQK2R w",
	"r1bqkb1r/pppp1ppp/2n2n2/8/2B1c3/5N2/PPPPCPPP/RNBQK2R b",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w",
	"8/2C5/3k4/8/2pP4/8/5c2/4K3 b",
}
