package engine

import "github.com/lgbarn/bureaucrat-chess/internal/chess"

// LegalMoves returns the destinations the piece on from may move to when it is
// turn's move. The result is empty if from is off the board, empty, or holds a
// piece of the other colour. Destinations are in generator order.
func LegalMoves(board *chess.Board, from chess.Square, turn chess.Colour) []chess.Square {
	piece := board.Get(from)
	if piece == chess.Empty || chess.ExtractColour(piece) != turn {
		return nil
	}

	// A Bureaucrat on its start square may only move onto empty squares.
	noCapture := chess.ExtractPiece(piece) == chess.Bureaucrat && chess.IsBureaucratStart(from)

	var legal []chess.Square
	for _, to := range PseudoLegalMoves(board, from) {
		if noCapture && board.Get(to) != chess.Empty {
			continue
		}
		if tryMove(board, from, to, turn) {
			legal = append(legal, to)
		}
	}
	return legal
}

// tryMove makes a move on a copy of the board and reports whether the mover's
// king is safe afterwards.
func tryMove(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	testBoard := *board
	testBoard.Relocate(from, to)
	return !IsInCheck(&testBoard, colour)
}

// PieceMoves lists the legal destinations of one piece.
type PieceMoves struct {
	From  chess.Square
	Piece chess.Piece
	To    []chess.Square
}

// MovesForColour returns the legal moves of every piece of the given colour,
// scanning the board in row-major order. Pieces without legal moves are
// omitted unless includeEmpty is set.
func MovesForColour(board *chess.Board, colour chess.Colour, includeEmpty bool) []PieceMoves {
	var all []PieceMoves
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece == chess.Empty || chess.ExtractColour(piece) != colour {
				continue
			}
			from := chess.Sq(row, col)
			moves := LegalMoves(board, from, colour)
			if len(moves) == 0 && !includeEmpty {
				continue
			}
			all = append(all, PieceMoves{From: from, Piece: piece, To: moves})
		}
	}
	return all
}
