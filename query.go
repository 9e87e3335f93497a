package madfa

import (
	"github.com/ciuradfa/madfa/internal/scan"
	"github.com/ciuradfa/madfa/internal/transition"
)

// Contains reports whether s is a member of the automaton's language.
// It runs in O(|s|) time for the tree layout's logarithmic-per-state
// search, or O(|s| * branching) for the list layout's linear scan.
func (a *Automaton) Contains(s []byte) bool {
	if len(s) == 0 {
		return a.arena.EmptyAccepted()
	}

	addr := a.arena.Start()
	for i, c := range s {
		dest, term, ok := a.step(addr, c)
		if !ok {
			return false
		}
		if i == len(s)-1 {
			return term
		}
		addr = dest
	}
	return false
}

// step looks up the transition out of the state at addr labeled with c,
// returning its destination address and term flag, or ok=false if no such
// transition exists.
func (a *Automaton) step(addr uint32, c byte) (dest uint32, term, ok bool) {
	if a.arena.Layout() == transition.Tree {
		return a.stepTree(addr, c)
	}
	return a.stepList(addr, c)
}

func (a *Automaton) stepList(addr uint32, c byte) (dest uint32, term, ok bool) {
	words := a.arena.Words()
	n := 1
	for !transition.ListWord(words[int(addr)+n-1]).Last() {
		n++
	}
	run := words[addr : int(addr)+n]
	idx := scan.FindAttr(run, c)
	if idx < 0 {
		return 0, false, false
	}
	w := transition.ListWord(run[idx])
	if w.Dest() == 0 {
		// Address 0 is the reserved pseudo-state slot, never a real
		// state's address, so this is the canonical no-transitions
		// sentinel (see internal/transition.ZeroList), not a genuine
		// arc on attr 0.
		return 0, false, false
	}
	return w.Dest(), w.Term(), true
}

func (a *Automaton) stepTree(addr uint32, c byte) (dest uint32, term, ok bool) {
	i := 0
	for {
		w := transition.TreeWord(a.arena.Read(addr, i))
		switch {
		case c == w.Attr():
			if w.Dest() == 0 {
				// See the matching comment in stepList: dest 0 is the
				// no-transitions sentinel, not a genuine arc on attr 0.
				return 0, false, false
			}
			return w.Dest(), w.Term(), true
		case c < w.Attr():
			if w.LLast() {
				return 0, false, false
			}
			i = 2*i + 1
		default:
			if w.RLast() {
				return 0, false, false
			}
			i = 2*i + 2
		}
	}
}
