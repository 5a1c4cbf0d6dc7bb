// Package input reads document collections for the CLI.
package input

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Format represents input format types.
type Format string

const (
	FormatLines Format = "lines"
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// DefaultMaxSize bounds the input read into memory.
const DefaultMaxSize int64 = 64 << 20

// ErrTooLarge is returned when the input exceeds the size limit.
var ErrTooLarge = errors.New("input too large")

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{FormatLines, FormatJSON, FormatJSONL, FormatYAML}
}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported input format: %s", name)
}

// Options configures a Reader.
type Options struct {
	// Format of the input. Defaults to FormatLines.
	Format Format

	// MaxSize is the largest accepted input in bytes. Defaults to
	// DefaultMaxSize.
	MaxSize int64

	// Field selects the document from object elements. An object without
	// the field yields a missing document (nil).
	Field string
}

// Reader decodes document collections. Elements are returned as decoded,
// so non-text values (null, numbers, objects) reach the pipeline, which
// reports them per document.
type Reader struct {
	opts Options
}

// NewReader creates a reader.
func NewReader(opts Options) (*Reader, error) {
	if opts.Format == "" {
		opts.Format = FormatLines
	}
	if _, err := ParseFormat(string(opts.Format)); err != nil {
		return nil, err
	}
	if opts.MaxSize <= 0 {
		opts.MaxSize = DefaultMaxSize
	}
	return &Reader{opts: opts}, nil
}

// Read decodes all documents from r.
func (rd *Reader) Read(r io.Reader) ([]any, error) {
	data, err := io.ReadAll(io.LimitReader(r, rd.opts.MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if int64(len(data)) > rd.opts.MaxSize {
		return nil, fmt.Errorf("%w: limit is %s", ErrTooLarge, humanize.Bytes(uint64(rd.opts.MaxSize)))
	}

	var docs []any
	switch rd.opts.Format {
	case FormatLines:
		docs, err = readLines(data)
	case FormatJSON:
		docs, err = readJSON(data)
	case FormatJSONL:
		docs, err = readJSONL(data)
	case FormatYAML:
		docs, err = readYAML(data)
	}
	if err != nil {
		return nil, err
	}

	if rd.opts.Field != "" {
		for i, doc := range docs {
			docs[i] = selectField(doc, rd.opts.Field)
		}
	}
	return docs, nil
}

// readLines returns one document per line. A trailing newline does not add
// an empty document; blank lines inside the input do.
func readLines(data []byte) ([]any, error) {
	docs := []any{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		docs = append(docs, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}
	return docs, nil
}

func readJSON(data []byte) ([]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []any{}, nil
	}
	var docs []any
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decoding json array: %w", err)
	}
	if docs == nil {
		docs = []any{}
	}
	return docs, nil
}

func readJSONL(data []byte) ([]any, error) {
	docs := []any{}
	for i, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var v any
		if err := json.Unmarshal(line, &v); err != nil {
			return nil, fmt.Errorf("decoding json line %d: %w", i+1, err)
		}
		docs = append(docs, v)
	}
	return docs, nil
}

func readYAML(data []byte) ([]any, error) {
	var docs []any
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decoding yaml sequence: %w", err)
	}
	if docs == nil {
		docs = []any{}
	}
	return docs, nil
}

// selectField returns the named field of an object element. Non-object
// elements are returned unchanged.
func selectField(doc any, field string) any {
	switch m := doc.(type) {
	case map[string]any:
		return m[field]
	default:
		return doc
	}
}
