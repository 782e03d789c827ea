package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/bureaucrat-chess/internal/chess"
	"github.com/lgbarn/bureaucrat-chess/internal/errors"
)

// InitialFEN is the starting position: each side's e-pawn is replaced by a Bureaucrat.
// Rows are listed from row 0 (Black's back rank) to row 7.
const InitialFEN = "rnbqkbnr/ppppcppp/8/8/8/8/PPPPCPPP/RNBQKBNR w"

// Piece letters shared by position strings and the wire form.
var pieceChars = map[chess.Piece]byte{
	chess.Pawn:       'P',
	chess.Knight:     'N',
	chess.Bishop:     'B',
	chess.Rook:       'R',
	chess.Queen:      'Q',
	chess.King:       'K',
	chess.Bureaucrat: 'C',
}

// EmptyCell is the wire code of an empty square.
const EmptyCell = '.'

// Position is a board plus the side to move.
type Position struct {
	Board  *chess.Board
	ToMove chess.Colour
}

// ConvertFENCharToPiece converts a piece letter of either case to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	case 'C', 'c':
		return chess.Bureaucrat
	default:
		return chess.Empty
	}
}

// LetterToColouredPiece converts a cell code to a coloured piece.
// Uppercase is White, lowercase Black, '.' is Empty.
func LetterToColouredPiece(c byte) (chess.Piece, bool) {
	if c == EmptyCell {
		return chess.Empty, true
	}
	piece := ConvertFENCharToPiece(c)
	if piece == chess.Empty {
		return chess.Empty, false
	}
	colour := chess.White
	if unicode.IsLower(rune(c)) {
		colour = chess.Black
	}
	return chess.MakeColouredPiece(colour, piece), true
}

// ColouredPieceToLetter returns the cell code of a coloured piece.
func ColouredPieceToLetter(colouredPiece chess.Piece) byte {
	if colouredPiece == chess.Empty {
		return EmptyCell
	}
	letter, ok := pieceChars[chess.ExtractPiece(colouredPiece)]
	if !ok {
		return '?'
	}
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a position string, ignoring the side to move.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return pos.Board, nil
}

// NewPositionFromFEN parses "<placement> [w|b]". The side to move defaults to White.
func NewPositionFromFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return Position{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return Position{}, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return Position{}, err
	}

	return Position{Board: board, ToMove: toMove}, nil
}

// parsePiecePositions parses the piece placement field.
func parsePiecePositions(board *chess.Board, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    "placement",
			Expected: "8 rows",
			Got:      fmt.Sprintf("%d", len(rows)),
		}
	}

	for row, text := range rows {
		col := 0
		for i := 0; i < len(text) && col <= chess.BoardSize; i++ {
			c := text[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			piece, ok := LetterToColouredPiece(c)
			if !ok || piece == chess.Empty {
				return &errors.ParseError{
					Err:    errors.ErrInvalidFEN,
					Input:  "placement",
					Row:    row + 1,
					Column: i + 1,
					Got:    fmt.Sprintf("%q", c),
				}
			}
			board.Set(chess.Sq(row, col), piece)
			col++
		}
		if col != chess.BoardSize {
			return &errors.ParseError{
				Err:      errors.ErrInvalidFEN,
				Input:    "placement",
				Row:      row + 1,
				Expected: "8 columns",
				Got:      fmt.Sprintf("%d", col),
			}
		}
	}
	return nil
}

// parseSideToMove parses the optional side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// BoardToFEN converts a board to its placement string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// PositionToFEN converts a position to "<placement> <w|b>".
func PositionToFEN(pos Position) string {
	var sb strings.Builder
	writePiecePositions(&sb, pos.Board)
	sb.WriteByte(' ')
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// NewInitialBoard creates a board with the starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}
