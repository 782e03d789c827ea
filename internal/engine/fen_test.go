package engine

import (
	"testing"

	"github.com/lgbarn/bureaucrat-chess/internal/chess"
	"github.com/lgbarn/bureaucrat-chess/internal/errors"
	"github.com/lgbarn/bureaucrat-chess/internal/testutil"
)

func TestNewInitialBoard(t *testing.T) {
	board := NewInitialBoard()
	if board == nil {
		t.Fatal("NewInitialBoard() = nil, want non-nil board")
	}

	tests := []struct {
		name  string
		sq    chess.Square
		piece chess.Piece
	}{
		{"black rook a-file", chess.Sq(0, 0), chess.B(chess.Rook)},
		{"black queen", chess.Sq(0, 3), chess.B(chess.Queen)},
		{"black king", chess.Sq(0, 4), chess.B(chess.King)},
		{"black bureaucrat", chess.Sq(1, 4), chess.B(chess.Bureaucrat)},
		{"black pawn", chess.Sq(1, 3), chess.B(chess.Pawn)},
		{"white bureaucrat", chess.Sq(6, 4), chess.W(chess.Bureaucrat)},
		{"white pawn", chess.Sq(6, 5), chess.W(chess.Pawn)},
		{"white king", chess.Sq(7, 4), chess.W(chess.King)},
		{"white knight", chess.Sq(7, 6), chess.W(chess.Knight)},
		{"centre empty", chess.Sq(4, 4), chess.Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := board.Get(tt.sq); got != tt.piece {
				t.Errorf("Get(%v) = %v, want %v", tt.sq, got, tt.piece)
			}
		})
	}

	if got := len(board.EmptySquares()); got != 32 {
		t.Errorf("empty squares = %d, want 32", got)
	}
	if board.Count(chess.W(chess.King)) != 1 || board.Count(chess.B(chess.King)) != 1 {
		t.Error("initial board must hold exactly one king per side")
	}
	if board.Count(chess.W(chess.Pawn)) != 7 || board.Count(chess.B(chess.Pawn)) != 7 {
		t.Error("initial board must hold seven pawns per side")
	}
}

func TestNewInitialBoard_Independent(t *testing.T) {
	a := NewInitialBoard()
	b := NewInitialBoard()
	a.Set(chess.Sq(4, 4), chess.W(chess.Queen))
	if b.Get(chess.Sq(4, 4)) != chess.Empty {
		t.Error("NewInitialBoard returned shared state")
	}
}

func TestFEN_RoundTrip(t *testing.T) {
	for _, fen := range propertyFENs {
		t.Run(fen, func(t *testing.T) {
			pos := mustPosition(t, fen)
			testutil.AssertEqual(t, PositionToFEN(pos), fen)
		})
	}
}

func TestNewPositionFromFEN_SideToMove(t *testing.T) {
	tests := []struct {
		fen  string
		want chess.Colour
	}{
		{"8/8/8/8/8/8/8/8", chess.White},
		{"8/8/8/8/8/8/8/8 w", chess.White},
		{"8/8/8/8/8/8/8/8 b", chess.Black},
	}
	for _, tt := range tests {
		pos := mustPosition(t, tt.fen)
		if pos.ToMove != tt.want {
			t.Errorf("NewPositionFromFEN(%q).ToMove = %v, want %v", tt.fen, pos.ToMove, tt.want)
		}
	}
}

func TestNewPositionFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few rows", "8/8/8/8/8/8/8"},
		{"too many rows", "8/8/8/8/8/8/8/8/8"},
		{"short row", "7/8/8/8/8/8/8/8"},
		{"long row", "8/8/8/8/8/8/8/K8"},
		{"digit nine", "9/8/8/8/8/8/8/8"},
		{"unknown letter", "8/8/8/8/3x4/8/8/8"},
		{"dot is not a placement letter", "8/8/8/8/3.4/8/8/8"},
		{"bad side", "8/8/8/8/8/8/8/8 x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPositionFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN, "NewPositionFromFEN(%q)", tt.fen)
		})
	}
}

func TestLetterConversions(t *testing.T) {
	tests := []struct {
		letter byte
		piece  chess.Piece
	}{
		{'.', chess.Empty},
		{'P', chess.W(chess.Pawn)},
		{'n', chess.B(chess.Knight)},
		{'B', chess.W(chess.Bishop)},
		{'r', chess.B(chess.Rook)},
		{'Q', chess.W(chess.Queen)},
		{'k', chess.B(chess.King)},
		{'C', chess.W(chess.Bureaucrat)},
		{'c', chess.B(chess.Bureaucrat)},
	}

	for _, tt := range tests {
		got, ok := LetterToColouredPiece(tt.letter)
		if !ok || got != tt.piece {
			t.Errorf("LetterToColouredPiece(%c) = %v, %v; want %v, true", tt.letter, got, ok, tt.piece)
		}
		if back := ColouredPieceToLetter(tt.piece); back != tt.letter {
			t.Errorf("ColouredPieceToLetter(%v) = %c, want %c", tt.piece, back, tt.letter)
		}
	}

	if _, ok := LetterToColouredPiece('x'); ok {
		t.Error("LetterToColouredPiece('x') ok = true, want false")
	}
}
