package chess

import "testing"

func TestColouredPieces(t *testing.T) {
	for piece := Pawn; piece < NumPieceValues; piece++ {
		for _, colour := range []Colour{White, Black} {
			cp := MakeColouredPiece(colour, piece)
			if cp == Empty {
				t.Fatalf("MakeColouredPiece(%v, %v) = Empty", colour, piece)
			}
			if got := ExtractPiece(cp); got != piece {
				t.Errorf("ExtractPiece(%v %v) = %v; want %v", colour, piece, got, piece)
			}
			if got := ExtractColour(cp); got != colour {
				t.Errorf("ExtractColour(%v %v) = %v; want %v", colour, piece, got, colour)
			}
		}
	}

	if got := MakeColouredPiece(White, Empty); got != Empty {
		t.Errorf("MakeColouredPiece(White, Empty) = %v; want Empty", got)
	}
}

func TestIsEnemy(t *testing.T) {
	tests := []struct {
		name   string
		p      Piece
		target Piece
		want   bool
	}{
		{"white vs black", W(Rook), B(Pawn), true},
		{"black vs white", B(Bureaucrat), W(King), true},
		{"same colour", W(Queen), W(Pawn), false},
		{"empty target", W(Knight), Empty, false},
		{"empty mover", Empty, B(Pawn), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEnemy(tt.p, tt.target); got != tt.want {
				t.Errorf("IsEnemy(%v, %v) = %v; want %v", tt.p, tt.target, got, tt.want)
			}
		})
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{7, 7, true},
		{3, 4, true},
		{-1, 0, false},
		{0, -1, false},
		{8, 0, false},
		{0, 8, false},
	}
	for _, tt := range tests {
		if got := InBounds(tt.row, tt.col); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v; want %v", tt.row, tt.col, got, tt.want)
		}
		if got := Sq(tt.row, tt.col).Valid(); got != tt.want {
			t.Errorf("Sq(%d, %d).Valid() = %v; want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestIsBureaucratStart(t *testing.T) {
	if !IsBureaucratStart(Sq(1, 4)) || !IsBureaucratStart(Sq(6, 4)) {
		t.Error("IsBureaucratStart is false for a starting square")
	}
	for _, sq := range []Square{Sq(0, 4), Sq(7, 4), Sq(1, 3), Sq(4, 4)} {
		if IsBureaucratStart(sq) {
			t.Errorf("IsBureaucratStart(%v) = true; want false", sq)
		}
	}
}

func TestColourOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap colours")
	}
	if White.String() != "White" || Black.String() != "Black" {
		t.Errorf("String() = %q, %q", White.String(), Black.String())
	}
}

func TestPieceLetter(t *testing.T) {
	want := map[Piece]byte{Empty: '.', Pawn: 'P', Knight: 'N', Bishop: 'B', Rook: 'R', Queen: 'Q', King: 'K', Bureaucrat: 'C'}
	for piece, letter := range want {
		if got := piece.Letter(); got != letter {
			t.Errorf("%v.Letter() = %c; want %c", piece, got, letter)
		}
	}
	if got := Piece(42).Letter(); got != '?' {
		t.Errorf("Piece(42).Letter() = %c; want ?", got)
	}
}

func TestSquareNames(t *testing.T) {
	tests := []struct {
		sq   Square
		name string
	}{
		{Sq(0, 0), "a8"},
		{Sq(7, 0), "a1"},
		{Sq(6, 4), "e2"},
		{Sq(1, 4), "e7"},
		{Sq(7, 7), "h1"},
	}
	for _, tt := range tests {
		if got := tt.sq.String(); got != tt.name {
			t.Errorf("%#v.String() = %q, want %q", tt.sq, got, tt.name)
		}
		got, ok := ParseSquare(tt.name)
		if !ok || got != tt.sq {
			t.Errorf("ParseSquare(%q) = %#v, %v", tt.name, got, ok)
		}
	}

	if got := Sq(8, 0).String(); got != "-" {
		t.Errorf("off-board String() = %q, want -", got)
	}
	for _, bad := range []string{"", "e", "e9", "i1", "E2", "e0", "e22"} {
		if _, ok := ParseSquare(bad); ok {
			t.Errorf("ParseSquare(%q) succeeded", bad)
		}
	}
}
