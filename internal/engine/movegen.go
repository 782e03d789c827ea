// Package engine implements the rules of Bureaucrat chess: pseudo-legal move
// generation, check detection, legal move filtering and move application.
// Every function is pure with respect to its board argument.
package engine

import "github.com/lgbarn/bureaucrat-chess/internal/chess"

var (
	straightDirs = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightJumps  = [][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)

// PseudoLegalMoves returns every destination the piece on from could move to,
// ignoring whether the move leaves its own king in check.
// An empty or off-board origin has no moves.
func PseudoLegalMoves(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.Get(from)
	if piece == chess.Empty {
		return nil
	}

	switch chess.ExtractPiece(piece) {
	case chess.Rook:
		return slidingMoves(board, from, straightDirs)
	case chess.Bishop:
		return slidingMoves(board, from, diagonalDirs)
	case chess.Queen:
		return append(slidingMoves(board, from, straightDirs), slidingMoves(board, from, diagonalDirs)...)
	case chess.Knight:
		return knightMoves(board, from)
	case chess.King:
		return kingMoves(board, from)
	case chess.Pawn:
		return pawnMoves(board, from)
	case chess.Bureaucrat:
		return bureaucratMoves(board)
	}

	return nil
}

// slidingMoves walks each ray until it leaves the board or meets a piece.
// A blocking enemy is included as a capture; a blocking friend is not.
func slidingMoves(board *chess.Board, from chess.Square, dirs [][2]int) []chess.Square {
	var moves []chess.Square
	piece := board.Get(from)

	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			target := board.Get(to)
			if target == chess.Empty {
				moves = append(moves, to)
			} else {
				if chess.IsEnemy(piece, target) {
					moves = append(moves, to)
				}
				break // Blocked
			}
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// stepMoves returns the in-bounds offsets that land on an empty or enemy square.
func stepMoves(board *chess.Board, from chess.Square, offsets [][2]int) []chess.Square {
	var moves []chess.Square
	piece := board.Get(from)

	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if !to.Valid() {
			continue
		}
		if target := board.Get(to); target == chess.Empty || chess.IsEnemy(piece, target) {
			moves = append(moves, to)
		}
	}
	return moves
}

func knightMoves(board *chess.Board, from chess.Square) []chess.Square {
	return stepMoves(board, from, knightJumps)
}

// kingMoves covers the eight neighbours. There is no castling.
func kingMoves(board *chess.Board, from chess.Square) []chess.Square {
	offsets := make([][2]int, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			offsets = append(offsets, [2]int{dr, dc})
		}
	}
	return stepMoves(board, from, offsets)
}

// pawnMoves generates pushes and diagonal captures. There is no en passant
// and no promotion.
func pawnMoves(board *chess.Board, from chess.Square) []chess.Square {
	var moves []chess.Square
	pawn := board.Get(from)
	colour := chess.ExtractColour(pawn)
	dir := PawnDirection(colour)

	one := from.Offset(dir, 0)
	if board.IsEmpty(one) {
		moves = append(moves, one)
		two := from.Offset(2*dir, 0)
		if from.Row == PawnStartRow(colour) && board.IsEmpty(two) {
			moves = append(moves, two)
		}
	}

	for _, dc := range []int{-1, 1} {
		to := from.Offset(dir, dc)
		if to.Valid() && chess.IsEnemy(pawn, board.Get(to)) {
			moves = append(moves, to)
		}
	}
	return moves
}

// bureaucratMoves returns every empty square on the board, in row-major order.
// The Bureaucrat ignores distance and blocking and never targets an occupied square.
func bureaucratMoves(board *chess.Board) []chess.Square {
	return board.EmptySquares()
}

// PawnDirection returns the row step of a pawn: -1 for White, +1 for Black.
func PawnDirection(colour chess.Colour) int {
	if colour == chess.White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row a pawn of the given colour starts on.
func PawnStartRow(colour chess.Colour) int {
	if colour == chess.White {
		return 6
	}
	return 1
}
