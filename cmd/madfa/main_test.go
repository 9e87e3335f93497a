package main

import (
	"errors"
	"testing"

	"github.com/ciuradfa/madfa"
)

func TestParseLayout(t *testing.T) {
	tests := []struct {
		in      string
		want    madfa.Layout
		wantErr bool
	}{
		{"", madfa.List, false},
		{"list", madfa.List, false},
		{"tree", madfa.Tree, false},
		{"bogus", 0, true},
	}
	for _, tt := range tests {
		got, err := parseLayout(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLayout(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseLayout(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{madfa.ErrUnsorted, 2},
		{madfa.ErrTooLong, 3},
		{madfa.ErrTooLarge, 4},
		{madfa.ErrCorrupt, 5},
		{madfa.ErrIO, 6},
		{errors.New("something else"), 1},
	}
	for _, tt := range tests {
		if got := exitCodeFor(tt.err); got != tt.want {
			t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestRunLegacyPositionalOnlyHandlesThreeArgFlagForms(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		handled bool
	}{
		{"build cobra style", []string{"build", "out.bin", "words.txt"}, false},
		{"too few args", []string{"-m", "out.bin"}, false},
		{"too many args", []string{"-m", "out.bin", "words.txt", "extra"}, false},
		{"unknown flag", []string{"-x", "out.bin", "words.txt"}, false},
		{"legacy build on missing files", []string{"-m", "/nonexistent/out.bin", "/nonexistent/words.txt"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, handled := runLegacyPositional(tt.args)
			if handled != tt.handled {
				t.Errorf("runLegacyPositional(%v) handled = %v, want %v", tt.args, handled, tt.handled)
			}
		})
	}
}
