package treeshape

import (
	"testing"

	"github.com/ciuradfa/madfa/internal/transition"
)

func mkword(attr byte) transition.TreeWord {
	return transition.NewTreeWord(attr, false, false, false, 0)
}

// inorder walks the shaped array's implicit heap layout and returns attrs
// in tree order, which should reproduce the ascending input order.
func inorder(t *testing.T, shaped []transition.TreeWord, i int, out *[]byte) {
	if i >= len(shaped) {
		return
	}
	w := shaped[i]
	if !w.LLast() {
		inorder(t, shaped, 2*i+1, out)
	}
	*out = append(*out, w.Attr())
	if !w.RLast() {
		inorder(t, shaped, 2*i+2, out)
	}
}

func TestShapePreservesInorderSequence(t *testing.T) {
	tests := [][]byte{
		{'a'},
		{'a', 'b'},
		{'a', 'b', 'c'},
		{'a', 'b', 'c', 'd'},
		{'a', 'b', 'c', 'd', 'e'},
		{'a', 'b', 'c', 'd', 'e', 'f', 'g'},
		[]byte("abcdefghijklmnopqrstuvwxyz"),
	}
	for _, attrs := range tests {
		sorted := make([]transition.TreeWord, len(attrs))
		for i, c := range attrs {
			sorted[i] = mkword(c)
		}
		shaped := Shape(sorted)
		if len(shaped) != len(sorted) {
			t.Fatalf("Shape(%q): len = %d, want %d", attrs, len(shaped), len(sorted))
		}

		var got []byte
		if len(shaped) > 0 {
			inorder(t, shaped, 0, &got)
		}
		if string(got) != string(attrs) {
			t.Errorf("Shape(%q) in-order = %q, want %q", attrs, got, attrs)
		}
	}
}

func TestShapeEmpty(t *testing.T) {
	shaped := Shape(nil)
	if len(shaped) != 0 {
		t.Errorf("Shape(nil) len = %d, want 0", len(shaped))
	}
}

func TestShapeSingleLeafHasBothFlags(t *testing.T) {
	shaped := Shape([]transition.TreeWord{mkword('x')})
	if !shaped[0].LLast() || !shaped[0].RLast() {
		t.Errorf("single-element shape: llast=%v rlast=%v, want true/true", shaped[0].LLast(), shaped[0].RLast())
	}
}
