// Package treeshape implements the tree-shaping pass (C5): rewriting a
// sorted list of tree-layout transitions into a complete-binary-tree array
// layout (root at index 0, left child of i at 2i+1, right child at 2i+2)
// before the state is registered. The output is deterministic for a given
// sorted input, which the register's equality check depends on.
package treeshape

import "github.com/ciuradfa/madfa/internal/transition"

// Shape rewrites sorted (already ordered by Attr ascending) into
// complete-binary-tree heap order, setting LLast/RLast on the words that
// have no left/right child in the implicit tree.
func Shape(sorted []transition.TreeWord) []transition.TreeWord {
	out := make([]transition.TreeWord, len(sorted))
	if len(sorted) == 0 {
		return out
	}
	shape(sorted, out, 0, len(sorted)-1, 0, -1)
	return out
}

// shape places the median of src[left:right+1] at dst[pos], then recurses
// into the left and right sub-ranges at dst[2pos+1] and dst[2pos+2]. full
// is the size of the largest complete (2^h-1) subtree achievable in the
// current range; -1 on the first call, meaning "compute it."
func shape(src, dst []transition.TreeWord, left, right, pos, full int) {
	size := right - left + 1
	if full == -1 {
		full = 0
		for 2*full+1 < size {
			full = 2*full + 1
		}
	}

	sel := left + full/2 // index of the root of this subtree within src
	rest := size - full   // elements in the tree's last (partial) row
	if rest > (full+1)/2 {
		sel += (full + 1) / 2
	} else {
		sel += rest
	}

	w := src[sel]
	llast := left > sel-1
	rlast := sel+1 > right
	dst[pos] = transition.NewTreeWord(w.Attr(), w.Term(), llast, rlast, w.Dest())

	if !llast {
		shape(src, dst, left, sel-1, 2*pos+1, full/2)
	}
	if !rlast {
		shape(src, dst, sel+1, right, 2*pos+2, full/2)
	}
}
