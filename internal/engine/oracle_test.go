package engine

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/bureaucrat-chess/internal/chess"
)

// dragontoothmg numbers squares from a1 = 0 to h8 = 63; row 0 here is rank 8.
func toBitIndex(s chess.Square) uint8 {
	return uint8((chess.BoardSize-1-s.Row)*chess.BoardSize + s.Col)
}

func fromBitIndex(idx uint8) chess.Square {
	return chess.Sq(chess.BoardSize-1-int(idx)/chess.BoardSize, int(idx)%chess.BoardSize)
}

// occupancy returns the bitboards of all pieces and of one colour's pieces.
func occupancy(board *chess.Board, colour chess.Colour) (all, own uint64) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece == chess.Empty {
				continue
			}
			bit := uint64(1) << toBitIndex(chess.Sq(row, col))
			all |= bit
			if chess.ExtractColour(piece) == colour {
				own |= bit
			}
		}
	}
	return all, own
}

func squaresToBitboard(squares []chess.Square) uint64 {
	var bb uint64
	for _, s := range squares {
		bb |= uint64(1) << toBitIndex(s)
	}
	return bb
}

// TestSlidingMoves_MatchDragontooth compares ray generation for every rook,
// bishop and queen against dragontoothmg's attack tables. Bureaucrats are
// ordinary blockers for sliding pieces.
func TestSlidingMoves_MatchDragontooth(t *testing.T) {
	for _, fen := range propertyFENs {
		board := mustBoard(t, fen)

		for row := 0; row < chess.BoardSize; row++ {
			for col := 0; col < chess.BoardSize; col++ {
				from := chess.Sq(row, col)
				piece := board.Get(from)
				kind := chess.ExtractPiece(piece)
				if piece == chess.Empty || (kind != chess.Rook && kind != chess.Bishop && kind != chess.Queen) {
					continue
				}

				all, own := occupancy(board, chess.ExtractColour(piece))
				idx := toBitIndex(from)
				var want uint64
				if kind == chess.Rook || kind == chess.Queen {
					want |= dragontoothmg.CalculateRookMoveBitboard(idx, all)
				}
				if kind == chess.Bishop || kind == chess.Queen {
					want |= dragontoothmg.CalculateBishopMoveBitboard(idx, all)
				}
				want &^= own

				if got := squaresToBitboard(PseudoLegalMoves(board, from)); got != want {
					t.Errorf("%q: %v on %v: got %064b, want %064b", fen, kind, from, got, want)
				}
			}
		}
	}
}

// movePair is a move in dragontoothmg square numbering.
type movePair struct {
	From, To uint8
}

// sortedPairs sorts and de-duplicates moves; promotions appear once per piece.
func sortedPairs(pairs []movePair) []movePair {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].From != pairs[j].From {
			return pairs[i].From < pairs[j].From
		}
		return pairs[i].To < pairs[j].To
	})
	out := make([]movePair, 0, len(pairs))
	for i, p := range pairs {
		if i > 0 && p == pairs[i-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// TestLegalMoves_MatchDragontooth checks the legality filter against a
// standard-chess move generator on positions with no Bureaucrats, no castling
// rights, no en passant target and no pawn about to promote.
func TestLegalMoves_MatchDragontooth(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b",
		"4k3/8/8/8/4R3/8/8/K7 b",
		"4r2k/8/8/8/8/8/4R3/4K3 w",
		"8/5k2/8/8/8/8/5K2/4R3 w",
		"8/8/3k4/8/2pP4/8/8/4K3 b",
		"4k3/8/8/1b6/8/8/3P4/4K3 w",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			pos := mustPosition(t, fen)

			var got []movePair
			for _, pm := range MovesForColour(pos.Board, pos.ToMove, false) {
				for _, to := range pm.To {
					got = append(got, movePair{From: toBitIndex(pm.From), To: toBitIndex(to)})
				}
			}

			dt := dragontoothmg.ParseFen(fen + " - - 0 1")
			var want []movePair
			for _, m := range dt.GenerateLegalMoves() {
				want = append(want, movePair{From: m.From(), To: m.To()})
			}

			if diff := cmp.Diff(sortedPairs(want), sortedPairs(got)); diff != "" {
				t.Errorf("legal moves mismatch (-dragontooth +engine):\n%s", diff)
			}
		})
	}
}

func TestBitIndexRoundTrip(t *testing.T) {
	for idx := uint8(0); idx < 64; idx++ {
		if got := toBitIndex(fromBitIndex(idx)); got != idx {
			t.Errorf("toBitIndex(fromBitIndex(%d)) = %d", idx, got)
		}
	}
	if got := toBitIndex(chess.Sq(7, 0)); got != 0 {
		t.Errorf("toBitIndex(a1) = %d, want 0", got)
	}
	if got := toBitIndex(chess.Sq(0, 7)); got != 63 {
		t.Errorf("toBitIndex(h8) = %d, want 63", got)
	}
}
