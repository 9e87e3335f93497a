// Package build implements the online construction algorithm (C4): given
// a sorted stream of byte strings, it maintains the "larval" right-spine
// of the trie being compacted and freezes completed suffix states through
// the register into the arena as soon as the input diverges from them.
// Because the input is sorted, every state is fully frozen (and hence
// canonical) by the time anything downstream would need to compare
// against it — sharing happens greedily bottom-up, equivalent to
// Hopcroft minimization for this class of automaton.
package build

import (
	"errors"
	"fmt"

	"github.com/ciuradfa/madfa/internal/arena"
	"github.com/ciuradfa/madfa/internal/lines"
	"github.com/ciuradfa/madfa/internal/register"
	"github.com/ciuradfa/madfa/internal/transition"
	"github.com/ciuradfa/madfa/internal/treeshape"
)

// ErrUnsorted is returned by Add when the lexicon input violates ascending
// byte order. An exact repeat of the previous line is accepted.
var ErrUnsorted = errors.New("build: lexicon input is not sorted")

// ErrTooLong is returned by Add when a line exceeds the configured maximum
// string length. It is the same sentinel internal/lines.Reader.Next
// returns, so callers that accept entries from either a reader or an
// in-memory slice (BuildFromReader and BuildFromLines) see one consistent
// error regardless of path.
var ErrTooLong = lines.ErrTooLong

// Builder holds the larval right-spine of the automaton under
// construction: a growing list of transitions at each depth, plus which
// depths are accept depths for the previous line.
type Builder struct {
	layout    transition.Layout
	arena     *arena.Arena
	reg       *register.Register
	maxStrLen int

	prev       []byte
	larval     [][]uint32
	isTerminal []bool
	depth      int
	started    bool
}

// New creates a builder that freezes states into a and interns them
// through reg, using layout's transition encoding. maxStrLen bounds the
// length of any line passed to Add (0 disables the check, relying on an
// upstream line reader instead).
func New(layout transition.Layout, a *arena.Arena, reg *register.Register, maxStrLen int) *Builder {
	return &Builder{
		layout:    layout,
		arena:     a,
		reg:       reg,
		maxStrLen: maxStrLen,
	}
}

// ensureDepth grows larval/isTerminal so index d is valid.
func (b *Builder) ensureDepth(d int) {
	for len(b.larval) <= d {
		b.larval = append(b.larval, nil)
		b.isTerminal = append(b.isTerminal, false)
	}
}

// commonPrefixLen returns the length of the longest common prefix of a and b.
func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// Add processes one sorted input line, freezing every larval state whose
// suffix the new line diverges from and extending the larval buffer with
// the new line's own suffix.
func (b *Builder) Add(line []byte) error {
	if b.maxStrLen > 0 && len(line) > b.maxStrLen {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrTooLong, len(line), b.maxStrLen)
	}

	p := commonPrefixLen(b.prev, line)
	switch {
	case p < len(line) && p < len(b.prev):
		if line[p] < b.prev[p] {
			return fmt.Errorf("%w", ErrUnsorted)
		}
	case p == len(line) && p < len(b.prev):
		// line is a proper prefix of prev, genuinely out of order. An
		// exact repeat (p == len(prev) too) falls through and collapses:
		// the freeze/extend loops below are no-ops at depth == p.
		if b.started {
			return fmt.Errorf("%w", ErrUnsorted)
		}
	}
	b.started = true

	b.ensureDepth(b.depth)
	for d := b.depth; d > p; d-- {
		c, err := b.freeze(b.larval[d])
		if err != nil {
			return err
		}
		attr := b.prev[d-1]
		term := b.isTerminal[d]
		b.ensureDepth(d - 1)
		b.larval[d-1] = append(b.larval[d-1], b.newWord(attr, term, c))
		b.larval[d] = nil
	}

	b.ensureDepth(len(line))
	for d := p + 1; d <= len(line); d++ {
		b.larval[d] = nil
		b.isTerminal[d] = false
	}
	b.isTerminal[len(line)] = true
	b.prev = append(b.prev[:0], line...)
	b.depth = len(line)
	return nil
}

// Finish freezes every remaining larval depth down to the start state and
// returns its arena address, plus whether the empty string itself is in
// the lexicon. The empty string can never be marked accepted through an
// ordinary transition's term bit (the start state has no incoming arc),
// so the caller must fold emptyAccepted into the pseudo-state separately
// (see arena.Arena.InstallStart). The builder must not be reused
// afterward.
func (b *Builder) Finish() (start uint32, emptyAccepted bool, err error) {
	b.ensureDepth(b.depth)
	for d := b.depth; d > 0; d-- {
		c, ferr := b.freeze(b.larval[d])
		if ferr != nil {
			return 0, false, ferr
		}
		term := b.isTerminal[d]
		attr := b.prev[d-1]
		b.ensureDepth(d - 1)
		b.larval[d-1] = append(b.larval[d-1], b.newWord(attr, term, c))
		b.larval[d] = nil
	}
	start, err = b.freeze(b.larval[0])
	return start, b.isTerminal[0], err
}

// newWord constructs a raw transition word in the builder's layout, with
// sentinel bits (last/llast/rlast) left false — they are only meaningful
// once the sibling state containing this word is itself frozen (list) or
// tree-shaped (tree).
func (b *Builder) newWord(attr byte, term bool, dest uint32) uint32 {
	if b.layout == transition.Tree {
		return uint32(transition.NewTreeWord(attr, term, false, false, dest))
	}
	return uint32(transition.NewListWord(attr, term, false, dest))
}

// freeze hands a larval state's transitions to the register, returning its
// (possibly pre-existing) arena address. A zero-transition state-of-zero
// transitions gets replaced by the canonical single zero word, so every
// accept stays reachable through a labeled arc whose term bit carries
// acceptance.
func (b *Builder) freeze(words []uint32) (uint32, error) {
	if len(words) == 0 {
		if b.layout == transition.Tree {
			words = []uint32{uint32(transition.ZeroTree)}
		} else {
			words = []uint32{uint32(transition.ZeroList)}
		}
	} else if b.layout == transition.Tree {
		treeWords := make([]transition.TreeWord, len(words))
		for i, w := range words {
			treeWords[i] = transition.TreeWord(w)
		}
		shaped := treeshape.Shape(treeWords)
		out := make([]uint32, len(shaped))
		for i, w := range shaped {
			out[i] = uint32(w)
		}
		words = out
	} else {
		last := transition.ListWord(words[len(words)-1])
		words[len(words)-1] = uint32(last.WithLast(true))
	}
	return b.reg.Intern(b.arena, words)
}
