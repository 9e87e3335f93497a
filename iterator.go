package madfa

import "iter"

// Iterator is a suspendable, pull-based view over Strings: each call to
// Next resumes the underlying traversal exactly where the previous call
// left off, for callers that want to interleave enumeration with other
// work instead of handing control to a for-range loop.
//
// An Iterator must be closed with Close once the caller is done with it,
// whether or not it was drained to exhaustion.
type Iterator struct {
	next func() ([]byte, bool)
	stop func()
}

// NewIterator creates a suspended iterator over a's language in ascending
// lexicographic order.
func NewIterator(a *Automaton) *Iterator {
	next, stop := iter.Pull(a.Strings())
	return &Iterator{next: next, stop: stop}
}

// Next returns the next string in order, or ok=false once the language is
// exhausted. The returned slice is only valid until the next call to Next
// or Close.
func (it *Iterator) Next() (s []byte, ok bool) {
	return it.next()
}

// Close releases the underlying traversal's resources. Safe to call more
// than once.
func (it *Iterator) Close() {
	it.stop()
}
