package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// AnalysisWriter is the interface for writing analyses to output.
type AnalysisWriter interface {
	// WriteEntry writes a single analysed line.
	WriteEntry(entry Entry) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes analyses in text form.
type TextWriter struct {
	w             io.Writer
	maxLineLength int
	written       int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, maxLineLength uint) *TextWriter {
	return &TextWriter{
		w:             w,
		maxLineLength: int(maxLineLength),
	}
}

// WriteEntry writes one entry, separated from the previous by a blank line.
func (tw *TextWriter) WriteEntry(entry Entry) error {
	if tw.written > 0 {
		if _, err := fmt.Fprintln(tw.w); err != nil {
			return err
		}
	}
	OutputAnalysisText(entry, tw.w, tw.maxLineLength)
	tw.written++
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes analyses in JSON format.
// It buffers entries and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	indent  string
	entries []*JSONAnalysis
	single  bool // If true, write each entry immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches entries into one document.
func NewJSONWriter(w io.Writer, indent string) *JSONWriter {
	return &JSONWriter{
		w:      w,
		indent: indent,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each entry immediately.
func NewJSONWriterSingle(w io.Writer, indent string) *JSONWriter {
	return &JSONWriter{
		w:      w,
		indent: indent,
		single: true,
	}
}

func (jw *JSONWriter) encoder() *json.Encoder {
	enc := json.NewEncoder(jw.w)
	if jw.indent != "" {
		enc.SetIndent("", jw.indent)
	}
	return enc
}

// WriteEntry buffers an entry for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteEntry(entry Entry) error {
	ja := AnalysisToJSON(entry)
	if jw.single {
		return jw.encoder().Encode(ja)
	}
	jw.entries = append(jw.entries, ja)
	return nil
}

// Flush writes all buffered entries as a JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.entries) == 0 {
		return nil
	}

	err := jw.encoder().Encode(&JSONOutput{Positions: jw.entries})

	// Clear buffer after writing
	jw.entries = jw.entries[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
