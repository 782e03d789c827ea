package hashing

import "github.com/lgbarn/bureaucrat-chess/internal/chess"

// numCodes covers every coloured piece code (kind<<3 | colour).
const numCodes = (chess.Bureaucrat << chess.PieceShift) | 2

var (
	pieceKeys   [chess.BoardSize * chess.BoardSize][numCodes]uint64
	blackToMove uint64
)

func init() {
	// Fixed seed: hashes must be stable across runs.
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for sq := range pieceKeys {
		for code := range pieceKeys[sq] {
			pieceKeys[sq][code] = next()
		}
	}
	blackToMove = next()
}

// GenerateZobristHash returns the Zobrist hash of a position.
func GenerateZobristHash(board *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece == chess.Empty {
				continue
			}
			hash ^= pieceKeys[row*chess.BoardSize+col][piece]
		}
	}
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// WeakHash is a cheap secondary hash of the piece placement (FNV-1a).
func WeakHash(board *chess.Board) uint64 {
	hash := uint64(14695981039346656037)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			hash ^= uint64(board.Squares[row][col])
			hash *= 1099511628211
		}
	}
	return hash
}
