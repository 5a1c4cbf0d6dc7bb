package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Texter is implemented by values with a one-line text form.
type Texter interface {
	Text() string
}

// TextWriter writes one item per line. Strings are written as is, Texter
// and fmt.Stringer values by their text form, anything else with fmt.Sprint.
// Embedded newlines are replaced by spaces so line counts match item counts.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// Write writes a single item as a line.
func (w *TextWriter) Write(data any) error {
	var line string
	switch v := data.(type) {
	case string:
		line = v
	case Texter:
		line = v.Text()
	case fmt.Stringer:
		line = v.String()
	default:
		line = fmt.Sprint(v)
	}
	line = strings.ReplaceAll(line, "\n", " ")

	if _, err := w.w.WriteString(line); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// WriteAll writes multiple items, one per line.
func (w *TextWriter) WriteAll(data []any) error {
	for _, item := range data {
		if err := w.Write(item); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the buffer.
func (w *TextWriter) Flush() error {
	return w.w.Flush()
}

// Close flushes the writer.
func (w *TextWriter) Close() error {
	return w.Flush()
}
