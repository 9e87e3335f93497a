//go:build !unix

package persist

import (
	"fmt"
	"os"
)

// MappedFile is the non-unix fallback: it reads the whole file into memory
// instead of mapping it, keeping the same API shape as the unix build.
type MappedFile struct {
	words []uint32
}

// OpenMapped reads path fully and validates it the same way Load does.
func OpenMapped(path string, maxDest uint32) (*MappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("persist: open: %w", err)
	}
	defer f.Close()

	words, err := Load(f, maxDest)
	if err != nil {
		return nil, err
	}
	return &MappedFile{words: words}, nil
}

// Words returns the decoded word slice.
func (m *MappedFile) Words() []uint32 { return m.words }

// Close is a no-op on this platform; there is no mapping to release.
func (m *MappedFile) Close() error { return nil }
