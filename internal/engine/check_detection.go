package engine

import "github.com/lgbarn/bureaucrat-chess/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king reports false.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := findKing(board, colour)
	if !ok {
		return false // No king found
	}
	return isSquareAttacked(board, king, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Squares[row][col] == king {
				return chess.Sq(row, col), true
			}
		}
	}
	return chess.Square{}, false
}

// isSquareAttacked returns true if any piece of byColour has target among its
// pseudo-legal destinations. A Bureaucrat standing on a Bureaucrat start
// square is not consulted.
func isSquareAttacked(board *chess.Board, target chess.Square, byColour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece == chess.Empty || chess.ExtractColour(piece) != byColour {
				continue
			}

			from := chess.Sq(row, col)
			if chess.ExtractPiece(piece) == chess.Bureaucrat && chess.IsBureaucratStart(from) {
				continue
			}

			if containsSquare(PseudoLegalMoves(board, from), target) {
				return true
			}
		}
	}
	return false
}

// containsSquare reports whether squares contains s.
func containsSquare(squares []chess.Square, s chess.Square) bool {
	for _, sq := range squares {
		if sq == s {
			return true
		}
	}
	return false
}
