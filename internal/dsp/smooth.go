package dsp

const (
	// DefaultSmoothing suits bar-style displays.
	DefaultSmoothing = 0.6
	// HeavySmoothing suits the raw waveform trace, which jitters badly
	// without it.
	HeavySmoothing = 0.85
)

// Smoother is an exponential moving average over successive frames of a
// vector signal. Each logical channel (bars, waveform) gets its own instance.
type Smoother struct {
	factor float64
	prev   []float64
}

// NewSmoother creates a Smoother with factor a in (0,1): higher values weigh
// history more heavily.
func NewSmoother(factor float64) *Smoother {
	return &Smoother{factor: factor}
}

// Apply returns factor·prev + (1-factor)·values. When no previous frame
// exists, or its length differs from the incoming one, state is reseeded with
// the incoming frame and returned unsmoothed.
func (s *Smoother) Apply(values []float64) []float64 {
	if len(s.prev) != len(values) {
		s.prev = make([]float64, len(values))
		copy(s.prev, values)
		return values
	}
	for i, v := range values {
		s.prev[i] = s.factor*s.prev[i] + (1-s.factor)*v
	}
	return s.prev
}

// Reset drops the previous frame so the next Apply reseeds.
func (s *Smoother) Reset() {
	s.prev = nil
}
