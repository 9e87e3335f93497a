package transition

import "testing"

func TestListWordRoundTrip(t *testing.T) {
	tests := []struct {
		name             string
		attr             byte
		term, last       bool
		dest             uint32
	}{
		{"minimal", 0, false, false, 0},
		{"terminal leaf", 'z', true, true, 0},
		{"mid-run", 'm', false, false, 12345},
		{"max dest", 'a', true, false, MaxListDest - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewListWord(tt.attr, tt.term, tt.last, tt.dest)
			if got := w.Attr(); got != tt.attr {
				t.Errorf("Attr() = %d, want %d", got, tt.attr)
			}
			if got := w.Term(); got != tt.term {
				t.Errorf("Term() = %v, want %v", got, tt.term)
			}
			if got := w.Last(); got != tt.last {
				t.Errorf("Last() = %v, want %v", got, tt.last)
			}
			if got := w.Dest(); got != tt.dest {
				t.Errorf("Dest() = %d, want %d", got, tt.dest)
			}
		})
	}
}

func TestListWordWithDestAndWithLast(t *testing.T) {
	w := NewListWord('x', true, false, 7)
	w2 := w.WithDest(99)
	if w2.Dest() != 99 {
		t.Errorf("WithDest: Dest() = %d, want 99", w2.Dest())
	}
	if w2.Attr() != 'x' || w2.Term() != true {
		t.Error("WithDest must preserve attr and term")
	}

	w3 := w.WithLast(true)
	if !w3.Last() {
		t.Error("WithLast(true) did not set last")
	}
	w4 := w3.WithLast(false)
	if w4.Last() {
		t.Error("WithLast(false) did not clear last")
	}
}

func TestTreeWordRoundTrip(t *testing.T) {
	tests := []struct {
		name                    string
		attr                    byte
		term, llast, rlast      bool
		dest                    uint32
	}{
		{"leaf both absent", 'q', true, true, true, 0},
		{"left only", 'a', false, false, true, 5},
		{"right only", 'z', false, true, false, 5},
		{"both children", 'm', false, false, false, 500},
		{"max dest", 'b', true, true, true, MaxTreeDest - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewTreeWord(tt.attr, tt.term, tt.llast, tt.rlast, tt.dest)
			if got := w.Attr(); got != tt.attr {
				t.Errorf("Attr() = %d, want %d", got, tt.attr)
			}
			if got := w.Term(); got != tt.term {
				t.Errorf("Term() = %v, want %v", got, tt.term)
			}
			if got := w.LLast(); got != tt.llast {
				t.Errorf("LLast() = %v, want %v", got, tt.llast)
			}
			if got := w.RLast(); got != tt.rlast {
				t.Errorf("RLast() = %v, want %v", got, tt.rlast)
			}
			if got := w.Dest(); got != tt.dest {
				t.Errorf("Dest() = %d, want %d", got, tt.dest)
			}
		})
	}
}

func TestZeroSentinels(t *testing.T) {
	zl := ZeroList
	if zl.Dest() != 0 || !zl.Last() {
		t.Errorf("ZeroList = %+v, want dest 0, last true", zl)
	}
	zt := ZeroTree
	if zt.Dest() != 0 || !zt.LLast() || !zt.RLast() {
		t.Errorf("ZeroTree = %+v, want dest 0, llast/rlast true", zt)
	}
}

func TestLayoutMaxDest(t *testing.T) {
	if List.MaxDest() != MaxListDest {
		t.Errorf("List.MaxDest() = %d, want %d", List.MaxDest(), MaxListDest)
	}
	if Tree.MaxDest() != MaxTreeDest {
		t.Errorf("Tree.MaxDest() = %d, want %d", Tree.MaxDest(), MaxTreeDest)
	}
}

func TestLayoutString(t *testing.T) {
	if List.String() != "list" {
		t.Errorf("List.String() = %q, want list", List.String())
	}
	if Tree.String() != "tree" {
		t.Errorf("Tree.String() = %q, want tree", Tree.String())
	}
}

func TestPseudoWordRoundTrip(t *testing.T) {
	tests := []struct {
		name          string
		layout        Layout
		emptyAccepted bool
		start         uint32
	}{
		{"list, empty not accepted", List, false, 42},
		{"list, empty accepted", List, true, 42},
		{"tree, empty accepted, start 0", Tree, true, 0},
		{"tree, empty not accepted", Tree, false, 777},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := PseudoWord(tt.layout, tt.emptyAccepted, tt.start)
			gotAccepted, gotStart := ParsePseudoWord(tt.layout, raw)
			if gotAccepted != tt.emptyAccepted {
				t.Errorf("emptyAccepted = %v, want %v", gotAccepted, tt.emptyAccepted)
			}
			if gotStart != tt.start {
				t.Errorf("start = %d, want %d", gotStart, tt.start)
			}
		})
	}
}
