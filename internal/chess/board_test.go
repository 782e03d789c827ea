package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				if got := b.Get(Sq(row, col)); got != Empty {
					t.Errorf("Get(%d, %d) = %v; want Empty", row, col, got)
				}
			}
		}
	})

	t.Run("empty squares listed row-major", func(t *testing.T) {
		squares := b.EmptySquares()
		if len(squares) != BoardSize*BoardSize {
			t.Fatalf("len(EmptySquares()) = %d; want 64", len(squares))
		}
		if squares[0] != Sq(0, 0) || squares[1] != Sq(0, 1) || squares[63] != Sq(7, 7) {
			t.Errorf("EmptySquares() order = %v ... %v; want row-major", squares[:2], squares[63])
		}
	})
}

func TestBoardGetSet(t *testing.T) {
	tests := []struct {
		name  string
		sq    Square
		piece Piece
	}{
		{"white pawn", Sq(4, 4), W(Pawn)},
		{"black knight", Sq(2, 5), B(Knight)},
		{"white queen", Sq(7, 3), W(Queen)},
		{"black king", Sq(0, 4), B(King)},
		{"black bureaucrat", Sq(1, 4), B(Bureaucrat)},
		{"empty square", Sq(7, 0), Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			b.Set(tt.sq, tt.piece)
			got := b.Get(tt.sq)
			if got != tt.piece {
				t.Errorf("after Set(%v, %v), Get() = %v; want %v", tt.sq, tt.piece, got, tt.piece)
			}
		})
	}

	t.Run("invalid coordinates return Empty", func(t *testing.T) {
		b := NewBoard()
		for _, sq := range []Square{Sq(-1, 0), Sq(0, 8), Sq(8, 8), Sq(3, -2)} {
			b.Squares[0][0] = W(Rook)
			if got := b.Get(sq); got != Empty {
				t.Errorf("Get(%v) = %v; want Empty", sq, got)
			}
		}
	})

	t.Run("Set with invalid coordinates is no-op", func(t *testing.T) {
		b := NewBoard()
		b.Set(Sq(9, 9), W(Queen))
		if got := b.Count(W(Queen)); got != 0 {
			t.Errorf("Count(white queen) = %d after invalid Set; want 0", got)
		}
	})
}

func TestBoardCopy(t *testing.T) {
	original := NewBoard()
	original.Set(Sq(7, 4), W(King))
	original.Set(Sq(0, 4), B(King))

	copied := original.Copy()

	t.Run("copies piece positions", func(t *testing.T) {
		if got := copied.Get(Sq(7, 4)); got != W(King) {
			t.Errorf("Get(7, 4) = %v; want white king", got)
		}
		if got := copied.Get(Sq(0, 4)); got != B(King) {
			t.Errorf("Get(0, 4) = %v; want black king", got)
		}
	})

	t.Run("modifications are independent", func(t *testing.T) {
		copied.Set(Sq(4, 4), W(Pawn))
		copied.Relocate(Sq(7, 4), Sq(6, 4))

		if got := original.Get(Sq(4, 4)); got != Empty {
			t.Errorf("original Get(4, 4) = %v after copy modification; want Empty", got)
		}
		if got := original.Get(Sq(7, 4)); got != W(King) {
			t.Errorf("original Get(7, 4) = %v after copy modification; want white king", got)
		}
	})

	t.Run("value assignment copies", func(t *testing.T) {
		scratch := *original
		scratch.Set(Sq(0, 4), Empty)
		if got := original.Get(Sq(0, 4)); got != B(King) {
			t.Errorf("original Get(0, 4) = %v after value copy modification; want black king", got)
		}
	})
}

func TestBoardRelocate(t *testing.T) {
	b := NewBoard()
	b.Set(Sq(7, 0), W(Rook))
	b.Set(Sq(0, 0), B(Rook))

	b.Relocate(Sq(7, 0), Sq(0, 0))

	if got := b.Get(Sq(7, 0)); got != Empty {
		t.Errorf("origin = %v; want Empty", got)
	}
	if got := b.Get(Sq(0, 0)); got != W(Rook) {
		t.Errorf("destination = %v; want white rook", got)
	}
	if got := b.Count(B(Rook)); got != 0 {
		t.Errorf("Count(black rook) = %d; want 0", got)
	}
}
