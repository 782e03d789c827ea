// Package output formats position analyses as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/bureaucrat-chess/internal/chess"
	"github.com/lgbarn/bureaucrat-chess/internal/engine"
	"github.com/lgbarn/bureaucrat-chess/internal/processing"
)

// Entry is one analysed input line.
type Entry struct {
	Source   string
	LineNo   int
	Analysis *processing.PositionAnalysis
	Err      error
}

// Location returns "source:line".
func (e Entry) Location() string {
	return fmt.Sprintf("%s:%d", e.Source, e.LineNo)
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	indent        string
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
// Continuation lines start with indent.
func NewOutputWriter(w io.Writer, maxLineLength int, indent string) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
		indent:        indent,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputAnalysisText writes one entry in text form:
//
//	stdin:1: <placement> w
//	  White to move, 50 moves
//	  b1 N: a3 c3
func OutputAnalysisText(entry Entry, w io.Writer, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength, "      ")

	if entry.Err != nil {
		fmt.Fprintf(w, "%s: error: %v\n", entry.Location(), entry.Err)
		return
	}

	a := entry.Analysis
	fmt.Fprintf(w, "%s: %s\n", entry.Location(), a.FEN)

	status := fmt.Sprintf("  %s to move, %d moves", a.ToMove, a.MoveCount)
	if a.InCheck {
		status += ", in check"
	}
	fmt.Fprintln(w, status)

	if a.Replay != nil && !a.Replay.Valid {
		fmt.Fprintf(w, "  replay stopped: %s\n", a.Replay.ErrorMsg)
	}
	for _, warning := range a.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warning)
	}

	for _, pm := range a.Pieces {
		ow.WriteNoSpace(fmt.Sprintf("  %s %c:", pm.From, engine.ColouredPieceToLetter(pm.Piece)))
		if len(pm.To) == 0 {
			ow.Write("-")
		}
		for _, to := range pm.To {
			ow.Write(to.String())
		}
		ow.NewLine()
	}
}

// squareNames converts squares to algebraic names.
func squareNames(squares []chess.Square) []string {
	names := make([]string, len(squares))
	for i, s := range squares {
		names[i] = s.String()
	}
	return names
}

// pieceTypeName returns the piece type as a lowercase word.
func pieceTypeName(p chess.Piece) string {
	return strings.ToLower(chess.ExtractPiece(p).String())
}
