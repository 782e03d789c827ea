// Package wire converts between engine types and the JSON form used by
// browser clients: boards as 8 rows of 8 one-character cell codes,
// squares as [row, col] pairs and turns as "white" / "black".
package wire

import (
	"fmt"

	"github.com/lgbarn/bureaucrat-chess/internal/chess"
	"github.com/lgbarn/bureaucrat-chess/internal/engine"
	"github.com/lgbarn/bureaucrat-chess/internal/errors"
)

// Board is the wire form of a board. Row 0 is Black's back rank.
type Board [][]string

// Coord is a square as a [row, col] pair.
type Coord [2]int

// Move is a move as [fromRow, fromCol, toRow, toCol].
type Move [4]int

// Turn names used on the wire.
const (
	TurnWhite = "white"
	TurnBlack = "black"
)

// EncodeBoard converts a board to its wire form.
func EncodeBoard(board *chess.Board) Board {
	rows := make(Board, chess.BoardSize)
	for row := 0; row < chess.BoardSize; row++ {
		cells := make([]string, chess.BoardSize)
		for col := 0; col < chess.BoardSize; col++ {
			cells[col] = string(engine.ColouredPieceToLetter(board.Squares[row][col]))
		}
		rows[row] = cells
	}
	return rows
}

// DecodeBoard converts the wire form to a board.
// It rejects anything other than 8 rows of 8 known cell codes.
func DecodeBoard(rows Board) (*chess.Board, error) {
	if len(rows) != chess.BoardSize {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidBoard,
			Input:    "board",
			Expected: "8 rows",
			Got:      fmt.Sprintf("%d", len(rows)),
		}
	}

	board := chess.NewBoard()
	for row, cells := range rows {
		if len(cells) != chess.BoardSize {
			return nil, &errors.ParseError{
				Err:      errors.ErrInvalidBoard,
				Input:    "board",
				Row:      row + 1,
				Expected: "8 cells",
				Got:      fmt.Sprintf("%d", len(cells)),
			}
		}
		for col, cell := range cells {
			if len(cell) != 1 {
				return nil, &errors.ParseError{
					Err:      errors.ErrInvalidPiece,
					Input:    "board",
					Row:      row + 1,
					Column:   col + 1,
					Expected: "one character",
					Got:      fmt.Sprintf("%q", cell),
				}
			}
			piece, ok := engine.LetterToColouredPiece(cell[0])
			if !ok {
				return nil, &errors.ParseError{
					Err:    errors.ErrInvalidPiece,
					Input:  "board",
					Row:    row + 1,
					Column: col + 1,
					Got:    fmt.Sprintf("%q", cell),
				}
			}
			board.Squares[row][col] = piece
		}
	}
	return board, nil
}

// EncodeSquare converts a square to a coordinate.
func EncodeSquare(s chess.Square) Coord {
	return Coord{s.Row, s.Col}
}

// Square converts a coordinate to a square. Out-of-range values are kept;
// the engine treats them as off the board.
func (c Coord) Square() chess.Square {
	return chess.Sq(c[0], c[1])
}

// Valid reports whether the coordinate names a board square.
func (c Coord) Valid() bool {
	return c.Square().Valid()
}

// EncodeSquares converts a move list. The result is never nil so that
// an empty list encodes as [] rather than null.
func EncodeSquares(squares []chess.Square) []Coord {
	coords := make([]Coord, len(squares))
	for i, s := range squares {
		coords[i] = EncodeSquare(s)
	}
	return coords
}

// From returns the origin square of the move.
func (m Move) From() chess.Square {
	return chess.Sq(m[0], m[1])
}

// To returns the destination square of the move.
func (m Move) To() chess.Square {
	return chess.Sq(m[2], m[3])
}

// EncodeTurn returns the wire name of a colour.
func EncodeTurn(colour chess.Colour) string {
	if colour == chess.White {
		return TurnWhite
	}
	return TurnBlack
}

// ParseTurn parses "white" or "black".
func ParseTurn(s string) (chess.Colour, error) {
	switch s {
	case TurnWhite:
		return chess.White, nil
	case TurnBlack:
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("turn %q: %w", s, errors.ErrInvalidColour)
	}
}

// State is the full game state sent to clients.
type State struct {
	Board Board  `json:"board"`
	Turn  string `json:"turn"`
	Check bool   `json:"check"`
}

// NewState builds the wire state of a board with the given side to move.
func NewState(board *chess.Board, turn chess.Colour) State {
	return State{
		Board: EncodeBoard(board),
		Turn:  EncodeTurn(turn),
		Check: engine.IsInCheck(board, turn),
	}
}
