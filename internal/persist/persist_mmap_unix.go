//go:build unix

package persist

import (
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MappedFile holds an automaton decoded from a memory-mapped file. The file
// is mmapped read-only and its words are decoded from the mapping directly
// (no separate buffered read syscall), but the decoded []uint32 lives on
// the Go heap: Contains/Strings run against that copy, not the mapping
// itself. The mapping is kept open only so Close can unmap it.
type MappedFile struct {
	data  []byte
	words []uint32
}

// OpenMapped mmaps path read-only, decodes its words from the mapping, and
// validates the result the same way Load does. The caller must call Close
// when done.
func OpenMapped(path string, maxDest uint32) (*MappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("persist: open: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("persist: stat: %w", err)
	}
	size := st.Size()
	if size < 8 || size%4 != 0 {
		return nil, fmt.Errorf("%w: file size %d is under two words or not a whole number of words", ErrCorrupt, size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("persist: mmap: %w", err)
	}

	words := make([]uint32, size/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4 : i*4+4])
	}

	start := words[0] & (maxDest - 1)
	if start >= uint32(len(words)) {
		_ = unix.Munmap(data)
		return nil, fmt.Errorf("%w: start address %d outside %d-word arena", ErrCorrupt, start, len(words))
	}

	return &MappedFile{data: data, words: words}, nil
}

// Words returns the decoded word slice. Unlike the mapping itself, this
// slice remains valid after Close since it is a heap copy, not a view into
// the mapped memory.
func (m *MappedFile) Words() []uint32 { return m.words }

// Close unmaps the underlying file.
func (m *MappedFile) Close() error {
	if m.data == nil {
		return nil
	}
	err := unix.Munmap(m.data)
	m.data = nil
	return err
}
