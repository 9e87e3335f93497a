package lines

import (
	"errors"
	"strings"
	"testing"
)

func TestNextStripsTerminators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"lf", "a\nb\nc\n", []string{"a", "b", "c"}},
		// A line ending in "\r" keeps the byte: lines are opaque bytes, not
		// text, and only the "\n" terminator is ever a delimiter.
		{"crlf", "a\r\nb\r\n", []string{"a\r", "b\r"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.input), 0)
			var got []string
			for {
				line, ok, err := r.Next()
				if err != nil {
					t.Fatalf("Next: %v", err)
				}
				if !ok {
					break
				}
				got = append(got, string(line))
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNextDistinguishesBlankLineFromEOF(t *testing.T) {
	r := NewReader(strings.NewReader("\n"), 0)
	line, ok, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !ok {
		t.Fatal("Next reported EOF on a single blank line, want ok=true")
	}
	if len(line) != 0 {
		t.Errorf("line = %q, want empty", line)
	}

	_, ok, err = r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if ok {
		t.Error("Next reported ok=true past end of input")
	}
}

func TestNextOnEmptyInputReportsEOFImmediately(t *testing.T) {
	r := NewReader(strings.NewReader(""), 0)
	_, ok, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if ok {
		t.Error("Next reported ok=true on empty input, want false")
	}
}

func TestNextEnforcesMaxLen(t *testing.T) {
	r := NewReader(strings.NewReader("toolong\n"), 3)
	_, _, err := r.Next()
	if !errors.Is(err, ErrTooLong) {
		t.Errorf("Next: err = %v, want ErrTooLong", err)
	}
}
