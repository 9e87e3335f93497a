// Package scan implements a batched linear search over list-layout
// transition words (C12): given a state's sibling run, find the word
// whose attr byte equals a queried symbol.
//
// The approach is the SWAR (SIMD Within A Register) technique the teacher
// uses for ASCII detection: pack several 32-bit transition words into a
// 64-bit lane, broadcast-compare the attr byte of all of them at once, and
// fall back to one-at-a-time only for the final partial pair. A wide
// sibling run (a state with many out-transitions, common near the root of
// a large lexicon) is exactly the case this pays for; narrow runs take the
// scalar path directly.
package scan

import "golang.org/x/sys/cpu"

// wideEnabled reports whether the batched path is worth taking on this
// CPU. SSE2 availability is a proxy for "the machine has a reasonably fast
// 64-bit ALU and unaligned loads" — the same signal the teacher's simd
// package uses to pick a chunked implementation over a byte-by-byte one.
var wideEnabled = cpu.X86.HasSSE2

// attrShift/attrMask mirror internal/transition's ListWord layout without
// importing it, the way internal/reach does, keeping this package usable
// against any 32-bit word whose top byte below the sign bit is an attr.
const (
	attrShift = 23
	attrByte  = uint32(0xFF) << attrShift
)

// FindAttr returns the index of the first word in words whose attr byte
// equals target, or -1 if none matches. words must be in the layout's
// on-disk order; FindAttr does not rely on any particular ordering and
// performs a linear scan either way, even though the builder emits a list
// state's siblings in ascending attr order.
func FindAttr(words []uint32, target byte) int {
	if !wideEnabled || len(words) < 4 {
		return findAttrScalar(words, target)
	}

	needle := uint32(target) << attrShift
	needle64 := uint64(needle) | uint64(needle)<<32
	mask64 := uint64(attrByte) | uint64(attrByte)<<32

	i := 0
	for ; i+2 <= len(words); i += 2 {
		pair := uint64(words[i]) | uint64(words[i+1])<<32
		diff := (pair ^ needle64) & mask64
		if diff&0xFFFFFFFF == 0 {
			return i
		}
		if diff>>32 == 0 {
			return i + 1
		}
	}
	if i < len(words) && words[i]&attrByte == needle {
		return i
	}
	return -1
}

func findAttrScalar(words []uint32, target byte) int {
	needle := uint32(target) << attrShift
	for i, w := range words {
		if w&attrByte == needle {
			return i
		}
	}
	return -1
}
