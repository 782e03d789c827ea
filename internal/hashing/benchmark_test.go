package hashing

import (
	"testing"

	"github.com/lgbarn/bureaucrat-chess/internal/chess"
	"github.com/lgbarn/bureaucrat-chess/internal/engine"
)

var benchFENPositions = map[string]string{
	"Initial": engine.InitialFEN,
	"Midgame": "r1bqkb1r/pppp1ppp/2n2n2/2C1p3/4P3/5N2/PPPc1PPP/RNBQKB1R w",
	"Endgame": "8/5k2/8/2c5/8/8/5K2/4R3 w",
}

func BenchmarkGenerateZobristHash(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			board := mustBoard(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				GenerateZobristHash(board, chess.White)
			}
		})
	}
}

func BenchmarkWeakHash(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			board := mustBoard(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				WeakHash(board)
			}
		})
	}
}

func BenchmarkDuplicateDetector_CheckAndAdd(b *testing.B) {
	b.Run("Unique", func(b *testing.B) {
		boards := make([]*chess.Board, 32)
		for i := range boards {
			boards[i] = engine.NewInitialBoard()
			boards[i].Relocate(chess.Sq(6, 4), chess.Sq(2+i/8, i%8))
		}
		dd := NewDuplicateDetector(0)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dd.CheckAndAdd(boards[i%len(boards)], chess.White)
		}
	})

	b.Run("Duplicate", func(b *testing.B) {
		board := engine.NewInitialBoard()
		dd := NewDuplicateDetector(0)
		dd.CheckAndAdd(board, chess.White)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dd.CheckAndAdd(board, chess.White)
		}
	})
}
