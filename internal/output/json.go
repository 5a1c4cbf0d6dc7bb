package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// JSONWriter buffers items and writes them as one JSON array.
type JSONWriter struct {
	w      *bufio.Writer
	pretty bool
	indent string
	items  []any
	done   bool
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer, pretty bool, indent string) *JSONWriter {
	return &JSONWriter{
		w:      bufio.NewWriter(w),
		pretty: pretty,
		indent: indent,
		items:  []any{},
	}
}

// Write buffers a single item for JSON array output.
func (w *JSONWriter) Write(data any) error {
	w.items = append(w.items, data)
	return nil
}

// WriteAll writes all items at once.
func (w *JSONWriter) WriteAll(data []any) error {
	w.items = append(w.items, data...)
	return nil
}

// Flush writes the buffered items as a JSON array. An empty writer
// produces "[]".
func (w *JSONWriter) Flush() error {
	var output []byte
	var err error
	if w.pretty {
		output, err = json.MarshalIndent(w.items, "", w.indent)
	} else {
		output, err = json.Marshal(w.items)
	}
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}

	if _, err := w.w.Write(output); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}

	w.items = w.items[:0]
	w.done = true
	return w.w.Flush()
}

// Close writes any items not yet flushed.
func (w *JSONWriter) Close() error {
	if w.done && len(w.items) == 0 {
		return nil
	}
	return w.Flush()
}

// JSONLWriter writes newline-delimited JSON (JSONL).
type JSONLWriter struct {
	w *bufio.Writer
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{
		w: bufio.NewWriter(w),
	}
}

// Write writes a single item as a JSON line.
func (w *JSONLWriter) Write(data any) error {
	output, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding json line: %w", err)
	}

	if _, err := w.w.Write(output); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// WriteAll writes multiple items as JSON lines.
func (w *JSONLWriter) WriteAll(data []any) error {
	for _, item := range data {
		if err := w.Write(item); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the buffer.
func (w *JSONLWriter) Flush() error {
	return w.w.Flush()
}

// Close flushes the writer.
func (w *JSONLWriter) Close() error {
	return w.Flush()
}
