package output

import (
	"github.com/lgbarn/bureaucrat-chess/internal/wire"
)

// JSONAnalysis represents one analysed line in JSON format.
type JSONAnalysis struct {
	Source   string           `json:"source"`
	Line     int              `json:"line"`
	FEN      string           `json:"fen,omitempty"`
	Turn     string           `json:"turn,omitempty"`
	Check    bool             `json:"check"`
	Moves    int              `json:"moves"`
	Pieces   []JSONPieceMoves `json:"pieces,omitempty"`
	Warnings []string         `json:"warnings,omitempty"`
	Replay   *JSONReplay      `json:"replay,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// JSONPieceMoves lists the legal destinations of one piece.
type JSONPieceMoves struct {
	From   string       `json:"from"`
	Coord  wire.Coord   `json:"coord"`
	Piece  string       `json:"piece"`
	To     []string     `json:"to"`
	Coords []wire.Coord `json:"coords"`
}

// JSONReplay reports how far an input move list could be played.
type JSONReplay struct {
	Valid    bool   `json:"valid"`
	ErrorPly int    `json:"errorPly,omitempty"`
	Error    string `json:"error,omitempty"`
}

// JSONOutput holds multiple analyses for array output.
type JSONOutput struct {
	Positions []*JSONAnalysis `json:"positions"`
}

// AnalysisToJSON converts an entry to JSON format.
func AnalysisToJSON(entry Entry) *JSONAnalysis {
	ja := &JSONAnalysis{
		Source: entry.Source,
		Line:   entry.LineNo,
	}
	if entry.Err != nil {
		ja.Error = entry.Err.Error()
		return ja
	}

	a := entry.Analysis
	ja.FEN = a.FEN
	ja.Turn = wire.EncodeTurn(a.ToMove)
	ja.Check = a.InCheck
	ja.Moves = a.MoveCount
	ja.Warnings = a.Warnings

	for _, pm := range a.Pieces {
		ja.Pieces = append(ja.Pieces, JSONPieceMoves{
			From:   pm.From.String(),
			Coord:  wire.EncodeSquare(pm.From),
			Piece:  pieceTypeName(pm.Piece),
			To:     squareNames(pm.To),
			Coords: wire.EncodeSquares(pm.To),
		})
	}

	if a.Replay != nil {
		ja.Replay = &JSONReplay{
			Valid:    a.Replay.Valid,
			ErrorPly: a.Replay.ErrorPly,
			Error:    a.Replay.ErrorMsg,
		}
	}
	return ja
}
