// Package madfa builds, persists, and queries minimal acyclic
// deterministic finite-state automata over sorted lexicons of byte
// strings.
//
// Construction is online: the automaton is built from a single sorted
// pass over its input, interning right-spine suffix states through a
// hash-based register as the input diverges from them so the result is
// minimal by the time the pass finishes — no separate minimization phase.
//
// Example:
//
//	a, err := madfa.BuildFromLines([][]byte{
//		[]byte("banana"),
//		[]byte("orange"),
//	}, madfa.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(a.Contains([]byte("banana"))) // true
package madfa

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ciuradfa/madfa/internal/arena"
	"github.com/ciuradfa/madfa/internal/build"
	"github.com/ciuradfa/madfa/internal/lines"
	"github.com/ciuradfa/madfa/internal/persist"
	"github.com/ciuradfa/madfa/internal/reach"
	"github.com/ciuradfa/madfa/internal/register"
)

// Automaton is a built or loaded minimal acyclic DFA. The zero value is
// not usable; obtain one from BuildFromLines, BuildFromReader, or Load.
//
// An Automaton is safe for concurrent read-only use (Contains, Strings,
// NewIterator) from multiple goroutines once construction has finished.
type Automaton struct {
	arena *arena.Arena
}

// Layout reports which transition encoding the automaton uses.
func (a *Automaton) Layout() Layout { return a.arena.Layout() }

// NumWords returns the number of 32-bit transition words in the
// automaton's arena, including the reserved pseudo-state slot.
func (a *Automaton) NumWords() int { return a.arena.Len() }

// NumTerminalTransitions returns the number of distinct transitions in the
// arena whose term bit is set — the automaton's actual count of accepting
// arcs. This can be smaller than the number of strings in the language,
// since two or more entries can share a terminal arc through suffix
// sharing (e.g. "cars" and "cats" sharing the arc that accepts "s").
func (a *Automaton) NumTerminalTransitions() int {
	if a.arena.Len() <= 1 {
		return 0
	}
	return reach.CountTerminalArcs(a.arena, a.arena.Start())
}

// BuildFromLines constructs an automaton from an in-memory, already
// sorted slice of lexicon entries. It returns ErrUnsorted if the input is
// not in ascending byte order (exact duplicates are accepted and
// collapsed), ErrTooLong if an entry exceeds
// Config.MaxStrLen, or ErrTooLarge if the automaton would exceed its
// layout's addressable state count.
func BuildFromLines(sortedEntries [][]byte, cfg Config) (*Automaton, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := arena.New(cfg.Layout, cfg.InitialArenaWords)
	reg := register.New(cfg.HashTableHint)
	b := build.New(cfg.Layout, a, reg, cfg.MaxStrLen)

	for i, entry := range sortedEntries {
		if err := b.Add(entry); err != nil {
			return nil, &BuildError{Line: i + 1, Err: err}
		}
	}
	start, emptyAccepted, err := b.Finish()
	if err != nil {
		return nil, &BuildError{Line: len(sortedEntries), Err: err}
	}
	a.InstallStart(start, emptyAccepted)
	return &Automaton{arena: a}, nil
}

// BuildFromReader constructs an automaton from newline-terminated lexicon
// entries read from r, which must be sorted in ascending byte order
// (exact duplicates are accepted and collapsed). A trailing entry with no final newline is accepted; a single
// blank line is accepted as the empty string.
func BuildFromReader(r io.Reader, cfg Config) (*Automaton, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := arena.New(cfg.Layout, cfg.InitialArenaWords)
	reg := register.New(cfg.HashTableHint)
	b := build.New(cfg.Layout, a, reg, cfg.MaxStrLen)
	lr := lines.NewReader(r, cfg.MaxStrLen)

	for lineNo := 1; ; lineNo++ {
		line, ok, err := lr.Next()
		if err != nil {
			return nil, &BuildError{Line: lineNo, Err: err}
		}
		if !ok {
			break
		}
		if err := b.Add(line); err != nil {
			return nil, &BuildError{Line: lineNo, Err: err}
		}
	}
	start, emptyAccepted, err := b.Finish()
	if err != nil {
		return nil, &BuildError{Err: err}
	}
	a.InstallStart(start, emptyAccepted)
	return &Automaton{arena: a}, nil
}

// BuildFromFile opens path and delegates to BuildFromReader.
func BuildFromFile(path string, cfg Config) (*Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &BuildError{Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}
	defer f.Close()
	return BuildFromReader(bufio.NewReaderSize(f, 64*1024), cfg)
}

// Save writes the automaton to w in its on-disk word format: a leading
// pseudo-state word (start address plus the empty-string-accepted flag)
// followed by every state's packed transition words, all little-endian.
func (a *Automaton) Save(w io.Writer) error {
	return persist.Save(w, a.arena.Words())
}

// SaveFile creates (or truncates) path and writes the automaton to it.
func (a *Automaton) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()
	if err := a.Save(f); err != nil {
		return err
	}
	return f.Close()
}

// Load reads an automaton previously written by Save/SaveFile from r,
// using layout to interpret the transition words. Returns ErrCorrupt if
// the file fails structural validation.
func Load(r io.Reader, layout Layout) (*Automaton, error) {
	words, err := persist.Load(r, layout.MaxDest())
	if err != nil {
		return nil, err
	}
	return &Automaton{arena: arena.FromWords(layout, words)}, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string, layout Layout) (*Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}
	defer f.Close()
	a, err := Load(bufio.NewReaderSize(f, 64*1024), layout)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return a, nil
}

// LoadMapped opens path with OpenMapped semantics: on unix platforms the
// automaton's words are decoded directly from an mmap of the file instead
// of through a separate buffered read syscall, avoiding one copy of the
// file into an intermediate I/O buffer. The decoded words still live in a
// regular heap slice once loaded — Contains/Strings query that copy, not
// the mapping itself — so this does not avoid paying for the automaton's
// full working set, only the extra read-syscall round trip. On non-unix
// platforms this degrades to the same behavior as LoadFile.
func LoadMapped(path string, layout Layout) (*Automaton, io.Closer, error) {
	m, err := persist.OpenMapped(path, layout.MaxDest())
	if err != nil {
		return nil, nil, &LoadError{Path: path, Err: err}
	}
	return &Automaton{arena: arena.FromWords(layout, m.Words())}, m, nil
}
