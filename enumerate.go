package madfa

import (
	"iter"

	"github.com/ciuradfa/madfa/internal/transition"
)

// Strings returns an iterator over every string in the automaton's
// language, in ascending lexicographic byte order.
//
//	for s := range a.Strings() {
//		fmt.Println(string(s))
//	}
//
// Each yielded slice is only valid for the duration of one iteration step;
// callers that need to retain it must copy it.
func (a *Automaton) Strings() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		if a.arena.EmptyAccepted() && !yield(nil) {
			return
		}
		var prefix []byte
		a.enumerate(a.arena.Start(), prefix, yield)
	}
}

// enumerate walks every transition reachable from addr in ascending attr
// order, depth-first, calling yield once per accepted string with prefix
// extended by each arc's label. It returns false once yield has asked to
// stop, so callers can short-circuit the recursion.
func (a *Automaton) enumerate(addr uint32, prefix []byte, yield func([]byte) bool) bool {
	if a.arena.Layout() == transition.Tree {
		return a.enumerateTree(addr, 0, prefix, yield)
	}
	return a.enumerateList(addr, prefix, yield)
}

func (a *Automaton) enumerateList(addr uint32, prefix []byte, yield func([]byte) bool) bool {
	words := a.arena.Words()
	i := 0
	for {
		w := transition.ListWord(words[int(addr)+i])
		if w.Dest() == 0 {
			// The no-transitions sentinel (see internal/transition.ZeroList):
			// this state has no out-edges, so there is nothing to yield or
			// recurse into here.
			if w.Last() {
				return true
			}
			i++
			continue
		}
		next := append(prefix, w.Attr())
		if w.Term() && !yield(next) {
			return false
		}
		if !a.enumerate(w.Dest(), next, yield) {
			return false
		}
		if w.Last() {
			return true
		}
		i++
	}
}

// enumerateTree walks the implicit complete binary search tree rooted at
// (addr, i) in-order, which visits attr values in ascending order — the
// same order the list layout produces naturally from sorted input.
func (a *Automaton) enumerateTree(addr uint32, i int, prefix []byte, yield func([]byte) bool) bool {
	w := transition.TreeWord(a.arena.Read(addr, i))

	if !w.LLast() {
		if !a.enumerateTree(addr, 2*i+1, prefix, yield) {
			return false
		}
	}

	if w.Dest() == 0 {
		// The no-transitions sentinel (see internal/transition.ZeroTree):
		// this state has no out-edges, so there is nothing to yield or
		// recurse into for this node itself.
		if !w.RLast() {
			if !a.enumerateTree(addr, 2*i+2, prefix, yield) {
				return false
			}
		}
		return true
	}

	next := append(prefix, w.Attr())
	if w.Term() && !yield(next) {
		return false
	}
	if !a.enumerate(w.Dest(), next, yield) {
		return false
	}

	if !w.RLast() {
		if !a.enumerateTree(addr, 2*i+2, prefix, yield) {
			return false
		}
	}
	return true
}
