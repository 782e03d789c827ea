// Package chess provides the core types of the Bureaucrat chess variant.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a piece type, or a coloured piece built with
// MakeColouredPiece. The zero value is an empty square.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	Bureaucrat
	NumPieceValues
)

// String returns the string representation of a piece type.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King", "Bureaucrat"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K', 'C'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	if piece == Empty {
		return Empty
	}
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
// The result is meaningless for Empty.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsEnemy reports whether target holds a piece of the other colour than p.
// An empty target is never an enemy.
func IsEnemy(p, target Piece) bool {
	return target != Empty && p != Empty && ExtractColour(p) != ExtractColour(target)
}

// Square is a (row, column) reference. Row 0 is Black's back rank.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return InBounds(s.Row, s.Col)
}

// Offset returns the square shifted by (dr, dc). The result may be off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String returns the algebraic name of the square ("e2" is row 6, col 4),
// or "-" for a square off the board.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.Col), byte('8' - s.Row)})
}

// ParseSquare parses an algebraic square name such as "e2".
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	s := Sq(int('8'-name[1]), int(name[0]-'a'))
	if !s.Valid() {
		return Square{}, false
	}
	return s, true
}

// BureaucratStarts are the squares the Bureaucrats occupy at the start of a game.
// They keep their rule significance for the whole game.
var BureaucratStarts = [2]Square{{Row: 1, Col: 4}, {Row: 6, Col: 4}}

// IsBureaucratStart reports whether s is one of BureaucratStarts.
func IsBureaucratStart(s Square) bool {
	return s == BureaucratStarts[0] || s == BureaucratStarts[1]
}
