// Package register implements the state-hash index (C3) that gives a
// minimal automaton its minimality: every candidate state is looked up
// here before it is ever written to the arena, so no two arena addresses
// ever hold byte-for-byte identical state contents.
package register

import (
	"github.com/ciuradfa/madfa/internal/arena"
)

// hashMultiplier and hashShift reproduce the original hash_state formula
// bit-for-bit: h = (sum(words) * 324027) >> 13. Go's uint32 arithmetic
// wraps the same way the C implementation's unsigned overflow did, so the
// formula needs no adjustment.
const (
	hashMultiplier = 324027
	hashShift      = 13
)

type candidate struct {
	addr   uint32
	length int
}

// Register maps a state's content fingerprint to its arena address and
// rejects duplicate states. A state exists in the automaton iff it
// appears here.
type Register struct {
	buckets   map[uint32][]candidate
	tableSize uint32
}

// New creates an empty register. tableSize bounds the number of distinct
// hash buckets (a hint for memory locality, not a hard cap — Go's map
// already chains collisions, so tableSize only affects how hash values are
// folded into bucket keys).
func New(tableSize int) *Register {
	if tableSize < 1 {
		tableSize = 1
	}
	return &Register{
		buckets:   make(map[uint32][]candidate),
		tableSize: uint32(tableSize),
	}
}

// hash computes the bucket key for a candidate state's raw words.
func (r *Register) hash(words []uint32) uint32 {
	var sum uint32
	for _, w := range words {
		sum += w
	}
	return ((sum * hashMultiplier) >> hashShift) % r.tableSize
}

// Intern returns the existing address of a state with identical raw words
// if one is already in a, or appends words to a and records the new
// address. words must already be in the layout's canonical sibling order
// (insertion order for the list layout, tree-shaped order for the tree
// layout) — Intern never reorders its input.
func (r *Register) Intern(a *arena.Arena, words []uint32) (uint32, error) {
	h := r.hash(words)
	for _, c := range r.buckets[h] {
		if c.length != len(words) {
			continue
		}
		match := true
		for i := 0; i < c.length; i++ {
			if a.Read(c.addr, i) != words[i] {
				match = false
				break
			}
		}
		if match {
			return c.addr, nil
		}
	}

	addr, err := a.Append(words)
	if err != nil {
		return 0, err
	}
	r.buckets[h] = append(r.buckets[h], candidate{addr: addr, length: len(words)})
	return addr, nil
}
