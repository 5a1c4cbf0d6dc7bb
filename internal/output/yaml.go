package output

import (
	"bufio"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLWriter buffers items and writes them as one YAML sequence.
type YAMLWriter struct {
	w     *bufio.Writer
	items []any
	done  bool
}

// NewYAMLWriter creates a YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{
		w:     bufio.NewWriter(w),
		items: []any{},
	}
}

// Write buffers a single item.
func (w *YAMLWriter) Write(data any) error {
	w.items = append(w.items, data)
	return nil
}

// WriteAll buffers multiple items.
func (w *YAMLWriter) WriteAll(data []any) error {
	w.items = append(w.items, data...)
	return nil
}

// Flush writes the buffered items as a YAML sequence.
func (w *YAMLWriter) Flush() error {
	encoder := yaml.NewEncoder(w.w)
	encoder.SetIndent(2)

	if err := encoder.Encode(w.items); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return err
	}

	w.items = w.items[:0]
	w.done = true
	return w.w.Flush()
}

// Close writes any items not yet flushed.
func (w *YAMLWriter) Close() error {
	if w.done && len(w.items) == 0 {
		return nil
	}
	return w.Flush()
}
