package arena

import (
	"errors"
	"testing"

	"github.com/ciuradfa/madfa/internal/transition"
)

func TestNewReservesSlotZero(t *testing.T) {
	a := New(transition.List, 0)
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

func TestAppendReturnsSequentialAddresses(t *testing.T) {
	a := New(transition.List, 4)
	addr1, err := a.Append([]uint32{1, 2})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if addr1 != 1 {
		t.Errorf("first Append address = %d, want 1", addr1)
	}
	addr2, err := a.Append([]uint32{3})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if addr2 != 3 {
		t.Errorf("second Append address = %d, want 3", addr2)
	}
	if a.Read(addr1, 1) != 2 {
		t.Errorf("Read(addr1, 1) = %d, want 2", a.Read(addr1, 1))
	}
}

func TestAppendTooLarge(t *testing.T) {
	a := New(transition.Tree, 1)
	big := make([]uint32, transition.MaxTreeDest)
	_, err := a.Append(big)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("Append() error = %v, want ErrTooLarge", err)
	}
}

func TestInstallStartAndEmptyAccepted(t *testing.T) {
	tests := []struct {
		name          string
		emptyAccepted bool
		start         uint32
	}{
		{"empty not accepted", false, 5},
		{"empty accepted", true, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(transition.List, 1)
			a.InstallStart(tt.start, tt.emptyAccepted)
			if a.Start() != tt.start {
				t.Errorf("Start() = %d, want %d", a.Start(), tt.start)
			}
			if a.EmptyAccepted() != tt.emptyAccepted {
				t.Errorf("EmptyAccepted() = %v, want %v", a.EmptyAccepted(), tt.emptyAccepted)
			}
		})
	}
}

func TestFromWords(t *testing.T) {
	words := []uint32{0, 10, 20, 30}
	a := FromWords(transition.List, words)
	if a.Len() != 4 {
		t.Errorf("Len() = %d, want 4", a.Len())
	}
	if a.Read(1, 2) != 30 {
		t.Errorf("Read(1, 2) = %d, want 30", a.Read(1, 2))
	}
}
