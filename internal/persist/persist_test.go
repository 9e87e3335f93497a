package persist

import (
	"bytes"
	"errors"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	words := []uint32{1, 100, 200, 300, 400}
	var buf bytes.Buffer
	if err := Save(&buf, words); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(&buf, 1<<22)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != len(words) {
		t.Fatalf("Load returned %d words, want %d", len(got), len(words))
	}
	for i, w := range words {
		if got[i] != w {
			t.Errorf("word %d = %d, want %d", i, got[i], w)
		}
	}
}

func TestLoadRejectsTooFewWords(t *testing.T) {
	var buf bytes.Buffer
	if err := Save(&buf, []uint32{1}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_, err := Load(&buf, 1<<22)
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("Load: err = %v, want ErrCorrupt", err)
	}
}

func TestLoadRejectsOutOfRangeStart(t *testing.T) {
	var buf bytes.Buffer
	// start address (5) is outside a 2-word arena.
	if err := Save(&buf, []uint32{5, 0}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_, err := Load(&buf, 1<<22)
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("Load: err = %v, want ErrCorrupt", err)
	}
}

func TestLoadRejectsTruncatedWord(t *testing.T) {
	var buf bytes.Buffer
	if err := Save(&buf, []uint32{1, 2, 3}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	truncated := buf.Bytes()[:len(buf.Bytes())-2]
	_, err := Load(bytes.NewReader(truncated), 1<<22)
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("Load: err = %v, want ErrCorrupt", err)
	}
}
