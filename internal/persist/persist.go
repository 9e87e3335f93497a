// Package persist implements saving and loading the arena as a flat array
// of little-endian 32-bit words (C6), including the plain (non-mmap) I/O
// path shared by every platform. Platform-specific memory-mapped loaders
// live in persist_mmap_unix.go / persist_mmap_fallback.go.
package persist

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ciuradfa/madfa/internal/conv"
)

// ErrCorrupt is returned by Load when the file is too short to contain a
// pseudo-state and at least one state, or when the parsed start address
// falls outside the loaded word array.
var ErrCorrupt = errors.New("persist: automaton file is corrupt")

// Save writes words (word 0 first, the pseudo-state) to w as little-endian
// uint32s.
func Save(w io.Writer, words []uint32) error {
	bw := bufio.NewWriterSize(w, 64*1024)
	var buf [4]byte
	for _, word := range words {
		binary.LittleEndian.PutUint32(buf[:], word)
		if _, err := bw.Write(buf[:]); err != nil {
			return fmt.Errorf("persist: write: %w", err)
		}
	}
	return bw.Flush()
}

// Load reads every little-endian uint32 word from r. It validates that
// there are at least two words and that slot 0, when interpreted as a
// pseudo-state dest address, points within the loaded array — the caller
// supplies maxDest (the layout's dest bit width) since persist itself has
// no notion of layout.
func Load(r io.Reader, maxDest uint32) (words []uint32, err error) {
	br := bufio.NewReaderSize(r, 64*1024)
	var buf [4]byte
	for {
		if _, err := io.ReadFull(br, buf[:]); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: truncated word", ErrCorrupt)
			}
			return nil, fmt.Errorf("persist: read: %w", err)
		}
		words = append(words, binary.LittleEndian.Uint32(buf[:]))
	}

	if len(words) < 2 {
		return nil, fmt.Errorf("%w: fewer than two words", ErrCorrupt)
	}
	start := words[0] & (maxDest - 1)
	if start >= conv.IntToUint32(len(words)) {
		return nil, fmt.Errorf("%w: start address %d outside %d-word arena", ErrCorrupt, start, len(words))
	}
	return words, nil
}
