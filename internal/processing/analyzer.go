// Package processing provides position analysis, validation and move replay
// for batch input.
package processing

import (
	"fmt"
	"strings"

	"github.com/lgbarn/bureaucrat-chess/internal/chess"
	"github.com/lgbarn/bureaucrat-chess/internal/engine"
	"github.com/lgbarn/bureaucrat-chess/internal/errors"
)

// Move is a move between two squares, written "e2e4" in input lines.
type Move struct {
	From chess.Square
	To   chess.Square
}

// String returns the move in "e2e4" form.
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses a move such as "e2e4".
func ParseMove(text string) (Move, error) {
	if len(text) != 4 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidSquare)
	}
	from, ok := chess.ParseSquare(text[:2])
	if !ok {
		return Move{}, fmt.Errorf("move %q: origin: %w", text, errors.ErrInvalidSquare)
	}
	to, ok := chess.ParseSquare(text[2:])
	if !ok {
		return Move{}, fmt.Errorf("move %q: destination: %w", text, errors.ErrInvalidSquare)
	}
	return Move{From: from, To: to}, nil
}

// ParseLine parses "<placement> [w|b] [move ...]".
func ParseLine(line string) (engine.Position, []Move, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return engine.Position{}, nil, fmt.Errorf("empty line: %w", errors.ErrInvalidFEN)
	}

	fen := fields[0]
	rest := fields[1:]
	if len(rest) > 0 && (rest[0] == "w" || rest[0] == "b") {
		fen += " " + rest[0]
		rest = rest[1:]
	}

	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return engine.Position{}, nil, err
	}

	moves := make([]Move, 0, len(rest))
	for _, text := range rest {
		m, err := ParseMove(text)
		if err != nil {
			return engine.Position{}, nil, err
		}
		moves = append(moves, m)
	}
	return pos, moves, nil
}

// ValidationResult holds the result of replaying a move list.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
}

// ReplayMoves plays moves from pos, alternating sides after each legal move.
// It stops at the first illegal move and returns the position reached so far.
func ReplayMoves(pos engine.Position, moves []Move) (engine.Position, *ValidationResult) {
	result := &ValidationResult{Valid: true}
	board, turn := pos.Board, pos.ToMove

	for i, m := range moves {
		next, ok := engine.ApplyMove(board, m.From, m.To, turn)
		if !ok {
			result.Valid = false
			result.ErrorPly = i + 1
			result.ErrorMsg = fmt.Sprintf("illegal move at ply %d: %s", i+1, m)
			break
		}
		board, turn = next, turn.Opposite()
	}

	return engine.Position{Board: board, ToMove: turn}, result
}

// PositionAnalysis describes one position.
type PositionAnalysis struct {
	Board     *chess.Board
	FEN       string
	ToMove    chess.Colour
	InCheck   bool
	Pieces    []engine.PieceMoves
	MoveCount int
	Warnings  []string
	Replay    *ValidationResult // nil when the input had no moves
}

// AnalyzePosition lists the legal moves of every piece of the side to move.
// Pieces with no legal moves are included only when includeEmpty is set.
func AnalyzePosition(pos engine.Position, includeEmpty bool) *PositionAnalysis {
	analysis := &PositionAnalysis{
		Board:    pos.Board,
		FEN:      engine.PositionToFEN(pos),
		ToMove:   pos.ToMove,
		InCheck:  engine.IsInCheck(pos.Board, pos.ToMove),
		Pieces:   engine.MovesForColour(pos.Board, pos.ToMove, includeEmpty),
		Warnings: ValidatePosition(pos.Board),
	}
	for _, pm := range analysis.Pieces {
		analysis.MoveCount += len(pm.To)
	}
	return analysis
}

// AnalyzeLine parses a line, replays any moves and analyses the resulting position.
func AnalyzeLine(line string, includeEmpty bool) (*PositionAnalysis, error) {
	pos, moves, err := ParseLine(line)
	if err != nil {
		return nil, err
	}
	if len(moves) == 0 {
		return AnalyzePosition(pos, includeEmpty), nil
	}

	final, replay := ReplayMoves(pos, moves)
	analysis := AnalyzePosition(final, includeEmpty)
	analysis.Replay = replay
	return analysis, nil
}

// ValidatePosition reports oddities that the rules tolerate but a real game
// would not reach: missing or extra kings, and pawns on a back rank.
func ValidatePosition(board *chess.Board) []string {
	var warnings []string

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		switch kings := board.Count(chess.MakeColouredPiece(colour, chess.King)); {
		case kings == 0:
			warnings = append(warnings, fmt.Sprintf("%s has no king", colour))
		case kings > 1:
			warnings = append(warnings, fmt.Sprintf("%s has %d kings", colour, kings))
		}
		if n := board.Count(chess.MakeColouredPiece(colour, chess.Bureaucrat)); n > 1 {
			warnings = append(warnings, fmt.Sprintf("%s has %d Bureaucrats", colour, n))
		}
	}

	for _, row := range []int{0, chess.BoardSize - 1} {
		for col := 0; col < chess.BoardSize; col++ {
			if chess.ExtractPiece(board.Squares[row][col]) == chess.Pawn {
				warnings = append(warnings, fmt.Sprintf("pawn on back rank at %s", chess.Sq(row, col)))
			}
		}
	}

	return warnings
}
