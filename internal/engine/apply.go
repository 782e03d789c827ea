package engine

import (
	"github.com/lgbarn/bureaucrat-chess/internal/chess"
)

// ApplyMove validates the move from -> to for turn and returns the resulting
// board. The input board is never modified. An illegal move is not an error:
// ApplyMove returns the original board and false.
// Turn order, history and game end are left to the caller.
func ApplyMove(board *chess.Board, from, to chess.Square, turn chess.Colour) (*chess.Board, bool) {
	if !containsSquare(LegalMoves(board, from, turn), to) {
		return board, false
	}

	newBoard := board.Copy()
	newBoard.Relocate(from, to)
	return newBoard, true
}
