package dsp

const (
	eqMeanAlpha = 0.005
	eqEpsilon   = 1e-6

	// EQStrengthOff disables adaptive EQ entirely.
	EQStrengthOff = 0.0
	// EQStrengthMedium gently counteracts persistent spectral imbalance.
	EQStrengthMedium = 0.4
	// EQStrengthStrong flattens the long-run spectrum aggressively.
	EQStrengthStrong = 0.65
)

// EQ blends raw band values with a long-residency running mean so
// persistently loud regions of the spectrum don't dominate the display.
type EQ struct {
	strength float64
	mean     []float64
	out      []float64
}

// NewEQ creates an adaptive EQ with the given blend strength.
func NewEQ(strength float64) *EQ {
	return &EQ{strength: strength}
}

// Strength returns the current blend strength.
func (e *EQ) Strength() float64 { return e.strength }

// SetStrength changes the blend strength. Any change clears the running mean
// so recalibration starts from the next frame instead of blending stale
// history.
func (e *EQ) SetStrength(strength float64) {
	if strength == e.strength {
		return
	}
	e.strength = strength
	e.mean = nil
}

// Apply updates the running mean and returns the blended band values.
// At strength 0 it is a pure pass-through: the input slice is returned
// untouched and no state is updated.
func (e *EQ) Apply(raw []float64) []float64 {
	if e.strength == 0 || len(raw) == 0 {
		return raw
	}

	if len(e.mean) != len(raw) {
		e.mean = make([]float64, len(raw))
		copy(e.mean, raw)
	} else {
		for i, v := range raw {
			e.mean[i] = (1-eqMeanAlpha)*e.mean[i] + eqMeanAlpha*v
		}
	}

	if len(e.out) != len(raw) {
		e.out = make([]float64, len(raw))
	}
	maxAdj := 0.0
	for i, v := range raw {
		adj := v / (e.mean[i] + eqEpsilon)
		e.out[i] = adj
		if adj > maxAdj {
			maxAdj = adj
		}
	}
	if maxAdj > 0 {
		for i := range e.out {
			e.out[i] /= maxAdj
		}
	}
	for i, v := range raw {
		e.out[i] = (1-e.strength)*v + e.strength*e.out[i]
	}
	return e.out
}
