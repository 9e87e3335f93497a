// Package arena implements the dense, append-only transition store that
// backs a minimal acyclic DFA. Addresses are indices into the store;
// address 0 is reserved for the pseudo-state that carries the start-state
// address on disk.
package arena

import (
	"errors"
	"fmt"

	"github.com/ciuradfa/madfa/internal/conv"
	"github.com/ciuradfa/madfa/internal/transition"
)

// ErrTooLarge is returned by Append when appending would push an address
// past the layout's dest-field width.
var ErrTooLarge = errors.New("arena: automaton grew too large for its layout")

// Arena is a growable, append-only array of packed transition words.
// Index 0 is the pseudo-state; real states start at index 1. Arena is not
// safe for concurrent writers; once construction is done, concurrent
// readers are safe (see Words).
type Arena struct {
	layout transition.Layout
	words  []uint32
}

// New creates an arena for the given layout with initialCap words of
// headroom (including the reserved pseudo-state slot 0). initialCap is a
// hint only; the arena grows as needed up to the layout's address limit.
func New(layout transition.Layout, initialCap int) *Arena {
	if initialCap < 1 {
		initialCap = 1
	}
	words := make([]uint32, 1, initialCap)
	return &Arena{layout: layout, words: words}
}

// Layout reports which transition encoding this arena holds.
func (a *Arena) Layout() transition.Layout { return a.layout }

// Len returns the number of words currently stored, including slot 0.
func (a *Arena) Len() int { return len(a.words) }

// Append reserves len(words) consecutive slots starting at the next free
// index, copies words into them, and returns the starting index. Fails
// with ErrTooLarge if the next free index plus len(words) would exceed the
// layout's dest address space.
func (a *Arena) Append(words []uint32) (uint32, error) {
	addr := len(a.words)
	limit := a.layout.MaxDest()
	if uint64(addr)+uint64(len(words)) > uint64(limit) {
		return 0, fmt.Errorf("%w: address space is %d words", ErrTooLarge, limit)
	}
	a.words = append(a.words, words...)
	return conv.IntToUint32(addr), nil
}

// Read returns the raw word at arena index addr+i.
func (a *Arena) Read(addr uint32, i int) uint32 {
	return a.words[int(addr)+i]
}

// InstallStart writes the pseudo-state (start address plus the
// empty-string-accepted flag, see transition.PseudoWord) into slot 0. The
// same packed word is what gets written to and read from disk, so no
// further rewriting is needed after a load.
func (a *Arena) InstallStart(start uint32, emptyAccepted bool) {
	a.words[0] = transition.PseudoWord(a.layout, emptyAccepted, start)
}

// Start returns the arena address of the start state.
func (a *Arena) Start() uint32 {
	_, start := transition.ParsePseudoWord(a.layout, a.words[0])
	return start
}

// EmptyAccepted reports whether the empty string is a member of the
// automaton's language — the one case the transition encoding cannot
// express on an ordinary arc, since the start state has no incoming
// transition to hang a term bit from.
func (a *Arena) EmptyAccepted() bool {
	accepted, _ := transition.ParsePseudoWord(a.layout, a.words[0])
	return accepted
}

// Words returns the arena's backing slice. Callers must not mutate it;
// it is exposed read-only for persistence and for query/enumeration.
func (a *Arena) Words() []uint32 { return a.words }

// FromWords builds an Arena directly from a pre-populated word slice whose
// slot 0 already holds the pseudo-state word — the shape internal/persist
// returns on load, with slot 0 exactly as it was saved.
func FromWords(layout transition.Layout, words []uint32) *Arena {
	return &Arena{layout: layout, words: words}
}
