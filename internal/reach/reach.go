// Package reach walks the set of arena addresses reachable from an
// automaton's start state. It backs the minimality property check
// (distinct reachable states must have distinct transition content) and
// the terminal-arc count behind Automaton.NumTerminalTransitions.
//
// Visited addresses are tracked with internal/sparse's SparseSet, the same
// structure the original engine uses for NFA state tracking, generalized
// here from "NFA state IDs" to "arena word addresses": insertion and
// membership are O(1) with no map overhead, which matters because a
// reachability walk touches every state of the automaton.
package reach

import (
	"github.com/ciuradfa/madfa/internal/arena"
	"github.com/ciuradfa/madfa/internal/conv"
	"github.com/ciuradfa/madfa/internal/sparse"
)

// Walk visits every state address reachable from start, depth-first with
// the most recently discovered address visited next, calling visit once
// per distinct address. The walk follows List
// or Tree sibling-chain semantics according to layout.
func Walk(a *arena.Arena, start uint32, visit func(addr uint32)) {
	seen := sparse.NewSparseSet(conv.IntToUint32(a.Len()))
	stack := []uint32{start}
	seen.Insert(start)
	for len(stack) > 0 {
		addr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(addr)
		for _, dest := range destinations(a, addr) {
			if dest != 0 && !seen.Contains(dest) {
				seen.Insert(dest)
				stack = append(stack, dest)
			}
		}
	}
}

// Count returns the number of distinct states reachable from start,
// including start itself.
func Count(a *arena.Arena, start uint32) int {
	n := 0
	Walk(a, start, func(uint32) { n++ })
	return n
}

// CountTerminalArcs returns the number of distinct transitions reachable
// from start whose term bit is set — the arena's actual count of accepting
// arcs, as opposed to the number of strings in the language (which
// undercounts whenever two or more lexicon entries share a terminal arc
// through suffix sharing).
func CountTerminalArcs(a *arena.Arena, start uint32) int {
	n := 0
	Walk(a, start, func(addr uint32) {
		switch a.Layout().String() {
		case "tree":
			n += countTerminalArcsTree(a, addr, 0)
		default:
			for i := 0; ; i++ {
				w := listWord(a.Read(addr, i))
				if w.dest() != 0 && w.term() {
					n++
				}
				if w.last() {
					break
				}
			}
		}
	})
	return n
}

func countTerminalArcsTree(a *arena.Arena, addr uint32, i int) int {
	w := treeWord(a.Read(addr, i))
	n := 0
	if !w.llast() {
		n += countTerminalArcsTree(a, addr, 2*i+1)
	}
	if w.dest() != 0 && w.term() {
		n++
	}
	if !w.rlast() {
		n += countTerminalArcsTree(a, addr, 2*i+2)
	}
	return n
}

// destinations returns every non-zero transition target out of the state
// at addr, in whatever order the layout's sibling chain stores them.
func destinations(a *arena.Arena, addr uint32) []uint32 {
	var dests []uint32
	switch a.Layout().String() {
	case "tree":
		walkTree(a, addr, 0, &dests)
	default:
		for i := 0; ; i++ {
			w := listWord(a.Read(addr, i))
			dests = append(dests, w.dest())
			if w.last() {
				break
			}
		}
	}
	return dests
}

// listWord and treeWord mirror transition.ListWord/TreeWord's accessors
// without importing the package, since reach only needs dest/last/llast/rlast/term
// and avoiding the import keeps this package decodable from raw words
// alone (useful for corrupt-file diagnostics that predate a parsed Arena).
type listWord uint32

func (w listWord) dest() uint32 { return (uint32(w) & (uint32(1<<22-1) << 1)) >> 1 }
func (w listWord) last() bool   { return uint32(w)&1 != 0 }
func (w listWord) term() bool   { return uint32(w)&(1<<31) != 0 }

type treeWord uint32

func (w treeWord) dest() uint32 { return (uint32(w) & (uint32(1<<21-1) << 2)) >> 2 }
func (w treeWord) llast() bool  { return uint32(w)&2 != 0 }
func (w treeWord) rlast() bool  { return uint32(w)&1 != 0 }
func (w treeWord) term() bool   { return uint32(w)&(1<<31) != 0 }

func walkTree(a *arena.Arena, addr uint32, i int, dests *[]uint32) {
	w := treeWord(a.Read(addr, i))
	*dests = append(*dests, w.dest())
	if !w.llast() {
		walkTree(a, addr, 2*i+1, dests)
	}
	if !w.rlast() {
		walkTree(a, addr, 2*i+2, dests)
	}
}
