// Package transition defines the two packed 32-bit transition-word
// encodings used by a minimal acyclic DFA: a list-layout word (terminated
// by a last-flag) and a tree-layout word (implicit complete binary search
// tree over attr, terminated by llast/rlast flags).
//
// Both layouts pack attr:8 and term:1 identically; they disagree on the
// width of dest and on the flag bits, so they are modeled as distinct
// uint32 newtypes rather than a single struct with optional fields. Field
// extraction and assembly use explicit shifts and masks — bit-field order
// and padding are not portable across toolchains, so the layout must be
// materialized by hand.
package transition

// ListWord is a packed transition for the list-layout state encoding.
//
//	bit 31:    term
//	bits 30-23: attr (8 bits)
//	bits 22-1:  dest (22 bits)
//	bit 0:      last
type ListWord uint32

// TreeWord is a packed transition for the tree-layout state encoding.
//
//	bit 31:    term
//	bits 30-23: attr (8 bits)
//	bits 22-2:  dest (21 bits)
//	bit 1:      llast
//	bit 0:      rlast
type TreeWord uint32

const (
	termShift = 31
	termMask  = uint32(1) << termShift

	attrShift = 23
	attrBits  = 8
	attrMask  = uint32(1<<attrBits-1) << attrShift

	// List layout: 22-bit dest, 1-bit last.
	listDestShift = 1
	listDestBits  = 22
	listDestMask  = uint32(1<<listDestBits-1) << listDestShift
	listLastMask  = uint32(1)

	// MaxListDest is the largest arena address representable by ListWord's
	// dest field (exclusive upper bound on arena size for the list layout).
	MaxListDest = uint32(1) << listDestBits

	// Tree layout: 21-bit dest, 1-bit llast, 1-bit rlast.
	treeDestShift = 2
	treeDestBits  = 21
	treeDestMask  = uint32(1<<treeDestBits-1) << treeDestShift
	treeLLastMask = uint32(1) << 1
	treeRLastMask = uint32(1)

	// MaxTreeDest is the largest arena address representable by TreeWord's
	// dest field (exclusive upper bound on arena size for the tree layout).
	MaxTreeDest = uint32(1) << treeDestBits
)

// Layout identifies which of the two transition-word encodings an
// automaton uses. The two layouts are not interchangeable on disk; a
// loaded or built automaton carries exactly one layout for its whole
// lifetime.
type Layout int

const (
	// List selects the linear, last-flag-terminated sibling encoding.
	List Layout = iota
	// Tree selects the complete-binary-search-tree sibling encoding.
	Tree
)

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case List:
		return "list"
	case Tree:
		return "tree"
	default:
		return "unknown"
	}
}

// MaxDest returns the exclusive upper bound on arena addresses
// representable by this layout's dest field.
func (l Layout) MaxDest() uint32 {
	if l == Tree {
		return MaxTreeDest
	}
	return MaxListDest
}

// ZeroList is the canonical "zero transition" for the list layout: a state
// with no out-transitions is represented by one such word, so every accept
// remains reachable through a labeled arc whose term bit carries
// acceptance.
const ZeroList = ListWord(listLastMask)

// ZeroTree is the canonical "zero transition" for the tree layout.
const ZeroTree = TreeWord(treeLLastMask | treeRLastMask)

// NewListWord assembles a list-layout transition word. dest must be < MaxListDest.
func NewListWord(attr byte, term, last bool, dest uint32) ListWord {
	w := uint32(attr) << attrShift
	w |= (dest << listDestShift) & listDestMask
	if term {
		w |= termMask
	}
	if last {
		w |= listLastMask
	}
	return ListWord(w)
}

// Attr returns the input symbol this transition is labeled with.
func (w ListWord) Attr() byte { return byte((uint32(w) & attrMask) >> attrShift) }

// Term reports whether the string ending at this transition is accepted.
func (w ListWord) Term() bool { return uint32(w)&termMask != 0 }

// Last reports whether this is the final transition of its sibling run.
func (w ListWord) Last() bool { return uint32(w)&listLastMask != 0 }

// Dest returns the arena address of the target state (0 means no target).
func (w ListWord) Dest() uint32 { return (uint32(w) & listDestMask) >> listDestShift }

// Raw returns the bit-exact uint32 value, the key used by the register's
// hash and equality checks.
func (w ListWord) Raw() uint32 { return uint32(w) }

// NewTreeWord assembles a tree-layout transition word. dest must be < MaxTreeDest.
func NewTreeWord(attr byte, term, llast, rlast bool, dest uint32) TreeWord {
	w := uint32(attr) << attrShift
	w |= (dest << treeDestShift) & treeDestMask
	if term {
		w |= termMask
	}
	if llast {
		w |= treeLLastMask
	}
	if rlast {
		w |= treeRLastMask
	}
	return TreeWord(w)
}

// Attr returns the input symbol this transition is labeled with.
func (w TreeWord) Attr() byte { return byte((uint32(w) & attrMask) >> attrShift) }

// Term reports whether the string ending at this transition is accepted.
func (w TreeWord) Term() bool { return uint32(w)&termMask != 0 }

// LLast reports whether the implicit-heap left child is absent.
func (w TreeWord) LLast() bool { return uint32(w)&treeLLastMask != 0 }

// RLast reports whether the implicit-heap right child is absent.
func (w TreeWord) RLast() bool { return uint32(w)&treeRLastMask != 0 }

// Dest returns the arena address of the target state (0 means no target).
func (w TreeWord) Dest() uint32 { return (uint32(w) & treeDestMask) >> treeDestShift }

// Raw returns the bit-exact uint32 value, the key used by the register's
// hash and equality checks.
func (w TreeWord) Raw() uint32 { return uint32(w) }

// WithDest returns a copy of w with its dest field replaced, preserving
// every other field.
func (w ListWord) WithDest(dest uint32) ListWord {
	return ListWord((uint32(w) &^ listDestMask) | ((dest << listDestShift) & listDestMask))
}

// WithLast returns a copy of w with its last flag set to last, preserving
// every other field. The builder applies this to the final transition of
// a sibling run only when that state itself is frozen.
func (w ListWord) WithLast(last bool) ListWord {
	if last {
		return ListWord(uint32(w) | listLastMask)
	}
	return ListWord(uint32(w) &^ listLastMask)
}

// WithDest returns a copy of w with its dest field replaced, preserving
// every other field.
func (w TreeWord) WithDest(dest uint32) TreeWord {
	return TreeWord((uint32(w) &^ treeDestMask) | ((dest << treeDestShift) & treeDestMask))
}

// PseudoWord assembles slot 0's raw value: the pseudo-state trampoline.
//
// The online construction algorithm never has an incoming transition to
// hang a term bit from for depth 0 (the start state has no transition
// pointing at it — it *is* the root), so there is no way to encode
// "the empty string is accepted" on any ordinary transition. Slot 0
// already reserves the word's dest-bits for the start address and never
// uses the term bit for anything else, so PseudoWord reuses the layout's
// own term bit for this one purpose: bit 31 means the empty string is in
// the lexicon, and the dest bits carry the start address exactly as
// spec'd. When the empty string is absent this degrades to the literal
// "raw value equals the start address" described for the on-disk format.
func PseudoWord(layout Layout, emptyAccepted bool, start uint32) uint32 {
	w := start & (layout.MaxDest() - 1)
	if emptyAccepted {
		w |= termMask
	}
	return w
}

// ParsePseudoWord extracts the empty-string-accepted flag and start
// address from a loaded or freshly built slot 0.
func ParsePseudoWord(layout Layout, raw uint32) (emptyAccepted bool, start uint32) {
	return raw&termMask != 0, raw & (layout.MaxDest() - 1)
}
