package chess

// Board is the 8x8 grid of the game. Squares is indexed [row][col].
// Board has value semantics: assigning or copying a Board copies every square,
// which is how the rules engine simulates moves without touching the caller's board.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Get returns the piece on the given square, or Empty if the square is off the board.
func (b *Board) Get(s Square) Piece {
	if !s.Valid() {
		return Empty
	}
	return b.Squares[s.Row][s.Col]
}

// Set places a piece on the given square. Off-board squares are ignored.
func (b *Board) Set(s Square, piece Piece) {
	if s.Valid() {
		b.Squares[s.Row][s.Col] = piece
	}
}

// IsEmpty reports whether the square is on the board and holds no piece.
func (b *Board) IsEmpty(s Square) bool {
	return s.Valid() && b.Squares[s.Row][s.Col] == Empty
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Relocate moves whatever stands on from to to, clearing from.
// Any piece on to is overwritten. No rules are checked.
func (b *Board) Relocate(from, to Square) {
	piece := b.Get(from)
	b.Set(from, Empty)
	b.Set(to, piece)
}

// Count returns the number of squares holding the given coloured piece.
func (b *Board) Count(piece Piece) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == piece {
				n++
			}
		}
	}
	return n
}

// EmptySquares returns every empty square in row-major order.
func (b *Board) EmptySquares() []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == Empty {
				squares = append(squares, Square{Row: row, Col: col})
			}
		}
	}
	return squares
}
