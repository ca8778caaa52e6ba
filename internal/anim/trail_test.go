package anim

import (
	"math"
	"testing"
)

func TestTrailDecayIsMultiplicative(t *testing.T) {
	tr := NewTrail()
	tr.Resize(8, 4)
	tr.Deposit(3, 2, 1.0)
	tr.Decay()
	if got := tr.At(3, 2); math.Abs(got-TrailDecay) > 1e-12 {
		t.Fatalf("brightness after one decay = %v, want %v", got, TrailDecay)
	}
}

func TestTrailDepositTakesMax(t *testing.T) {
	tr := NewTrail()
	tr.Resize(4, 4)
	tr.Deposit(1, 1, 0.8)
	tr.Deposit(1, 1, 0.3)
	if got := tr.At(1, 1); got != 0.8 {
		t.Fatalf("deposit overwrote a brighter cell: %v", got)
	}
	tr.Deposit(1, 1, 0.95)
	if got := tr.At(1, 1); got != 0.95 {
		t.Fatalf("deposit failed to raise brightness: %v", got)
	}
}

func TestTrailOutOfBoundsIsDropped(t *testing.T) {
	tr := NewTrail()
	tr.Resize(4, 4)
	tr.Deposit(-1, 0, 1)
	tr.Deposit(0, -1, 1)
	tr.Deposit(4, 0, 1)
	tr.Deposit(0, 4, 1)
	if tr.At(-1, 0) != 0 || tr.At(4, 0) != 0 {
		t.Fatal("out-of-bounds reads should be zero")
	}
	for y := range 4 {
		for x := range 4 {
			if tr.At(x, y) != 0 {
				t.Fatalf("cell (%d,%d) dirtied by out-of-bounds deposit", x, y)
			}
		}
	}
}

func TestTrailResizeClears(t *testing.T) {
	tr := NewTrail()
	tr.Resize(4, 4)
	tr.Deposit(2, 2, 1)
	tr.Resize(8, 3)
	if tr.Width() != 8 || tr.Height() != 3 {
		t.Fatalf("dimensions after resize: %dx%d", tr.Width(), tr.Height())
	}
	if tr.At(2, 2) != 0 {
		t.Fatal("resize should clear existing glow")
	}

	tr.Deposit(1, 1, 0.5)
	tr.Resize(8, 3)
	if tr.At(1, 1) != 0.5 {
		t.Fatal("same-size resize should keep the buffer")
	}
}
