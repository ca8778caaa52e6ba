package dsp

import "testing"

func TestPeakSnapsUpImmediately(t *testing.T) {
	p := NewPeakTracker()
	out := p.Update([]float64{0.3, 0.8})
	if out[0] != 0.3 || out[1] != 0.8 {
		t.Fatalf("peaks = %v, want input on first frame", out)
	}

	out = p.Update([]float64{0.9, 0.1})
	if out[0] != 0.9 {
		t.Fatalf("peak 0 = %v, expected snap to 0.9", out[0])
	}
	if out[1] >= 0.8 {
		t.Fatalf("peak 1 = %v, expected decay below 0.8", out[1])
	}
}

func TestPeakDecayAccelerates(t *testing.T) {
	p := NewPeakTracker()
	p.Update([]float64{1.0})

	prev := 1.0
	var steps []float64
	for range 5 {
		cur := p.Update([]float64{0})[0]
		steps = append(steps, prev-cur)
		prev = cur
	}
	for i := 1; i < len(steps); i++ {
		if steps[i] <= steps[i-1] {
			t.Fatalf("decay step %d (%v) not larger than step %d (%v)", i, steps[i], i-1, steps[i-1])
		}
	}
}

func TestPeakFloorsAtZero(t *testing.T) {
	p := NewPeakTracker()
	p.Update([]float64{0.05})
	for range 100 {
		p.Update([]float64{0})
	}
	if got := p.Peaks()[0]; got != 0 {
		t.Fatalf("peak = %v after long decay, want 0", got)
	}
}

func TestPeakResetsOnLengthChange(t *testing.T) {
	p := NewPeakTracker()
	p.Update([]float64{1, 1, 1})

	out := p.Update([]float64{0.5, 0.5})
	if len(out) != 2 {
		t.Fatalf("peak length %d after resize, want 2", len(out))
	}
	if out[0] != 0.5 || out[1] != 0.5 {
		t.Fatalf("peaks = %v after resize, want fresh snap to input", out)
	}
}
