package input

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func read(t *testing.T, opts Options, data string) []any {
	t.Helper()
	rd, err := NewReader(opts)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	docs, err := rd.Read(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	return docs
}

func TestRead(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		data string
		want []any
	}{
		{"lines", Options{}, "good film\n\nbad plot\n", []any{"good film", "", "bad plot"}},
		{"lines crlf", Options{Format: FormatLines}, "a\r\nb", []any{"a", "b"}},
		{"lines empty", Options{}, "", []any{}},
		{"json", Options{Format: FormatJSON}, `["good", null, 3]`, []any{"good", nil, 3.0}},
		{"json empty", Options{Format: FormatJSON}, "  ", []any{}},
		{"jsonl", Options{Format: FormatJSONL}, "\"a\"\n\nnull\n\"b\"\n", []any{"a", nil, "b"}},
		{"yaml", Options{Format: FormatYAML}, "- good film\n- ~\n- 7\n", []any{"good film", nil, 7}},
		{"json field", Options{Format: FormatJSON, Field: "review"}, `[{"review":"fine"},{"score":1},"raw"]`, []any{"fine", nil, "raw"}},
		{"yaml field", Options{Format: FormatYAML, Field: "review"}, "- review: fine\n", []any{"fine"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := read(t, tt.opts, tt.data)
			if len(got) != len(tt.want) {
				t.Fatalf("Read() = %#v, want %#v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Read()[%d] = %#v, want %#v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRead_YAMLNaN(t *testing.T) {
	got := read(t, Options{Format: FormatYAML}, "- .nan\n")
	f, ok := got[0].(float64)
	if !ok || !math.IsNaN(f) {
		t.Errorf("Read() = %#v, want NaN", got)
	}
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		data string
		want string
	}{
		{"json object", Options{Format: FormatJSON}, `{"a":1}`, "decoding json array"},
		{"jsonl bad line", Options{Format: FormatJSONL}, "\"ok\"\n{bad", "json line 2"},
		{"yaml mapping", Options{Format: FormatYAML}, "a: 1\n", "decoding yaml sequence"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rd, err := NewReader(tt.opts)
			if err != nil {
				t.Fatalf("NewReader() error = %v", err)
			}
			_, err = rd.Read(strings.NewReader(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestRead_MaxSize(t *testing.T) {
	rd, err := NewReader(Options{MaxSize: 4})
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	if _, err := rd.Read(strings.NewReader("abcd")); err != nil {
		t.Errorf("input at the limit should be accepted, got %v", err)
	}

	_, err = rd.Read(strings.NewReader("abcde"))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if !strings.Contains(err.Error(), "4 B") {
		t.Errorf("expected the limit in the error, got %v", err)
	}
}

func TestNewReader_UnsupportedFormat(t *testing.T) {
	_, err := NewReader(Options{Format: "csv"})
	if err == nil || !strings.Contains(err.Error(), "unsupported input format") {
		t.Errorf("expected unsupported format error, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %q, %v", f, got, err)
		}
	}
}
