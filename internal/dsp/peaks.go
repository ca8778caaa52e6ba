package dsp

const peakDecayStep = 0.01

// PeakTracker holds per-bin peak values that snap up instantly and fall with
// accelerating decay once no longer re-triggered, the classic meter behavior.
type PeakTracker struct {
	peaks []float64
	decay []float64
}

// NewPeakTracker creates an empty tracker; state sizes itself on first use.
func NewPeakTracker() *PeakTracker {
	return &PeakTracker{}
}

// Update advances the peak state with the current frame's bin values and
// returns the held peaks. Bin-count changes reset the tracker.
func (p *PeakTracker) Update(values []float64) []float64 {
	if len(p.peaks) != len(values) {
		p.peaks = make([]float64, len(values))
		p.decay = make([]float64, len(values))
	}
	for i, v := range values {
		if v > p.peaks[i] {
			p.peaks[i] = v
			p.decay[i] = 0
			continue
		}
		p.decay[i] += peakDecayStep
		p.peaks[i] -= p.decay[i]
		if p.peaks[i] < 0 {
			p.peaks[i] = 0
		}
	}
	return p.peaks
}

// Peaks returns the currently held peaks without advancing decay.
func (p *PeakTracker) Peaks() []float64 {
	return p.peaks
}
