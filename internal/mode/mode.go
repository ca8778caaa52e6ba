// Package mode implements the selectable visualizations. Each mode is a type
// holding its own frame-to-frame state (smoothers, springs, trails) and
// drawing into a render.Grid; the ui package owns the mode table and the
// shared analysis chain.
package mode

import (
	"github.com/olivier-w/auviz/internal/dsp"
	"github.com/olivier-w/auviz/internal/render"
)

// Frame is the per-tick input handed to a mode's Draw.
type Frame struct {
	Samples    []float64
	SampleRate int
	Tick       int
	Scheme     render.Scheme
	Glyphs     render.GlyphSet
	ASCII      bool
	Analyzer   *Analyzer
}

func (f Frame) bins(n int) []float64 {
	return f.Analyzer.Bins(f.Samples, n, f.SampleRate)
}

// Mode is one visualization. Draw renders a full frame into g, which arrives
// cleared and already sized to the display area. Reset drops any sized state;
// the ui calls it on mode switches and terminal resizes.
type Mode interface {
	Name() string
	Draw(g *render.Grid, f Frame)
	Reset()
}

// Table returns fresh instances of every mode in display order. The slice is
// the single source of mode ordering; persisted legacy indices resolve
// against it.
func Table() []Mode {
	return []Mode{
		NewBars(),
		NewSpectrum(),
		NewWaveform(),
		NewMirror(),
		NewCircular(),
		NewLevels(),
		NewRadial(),
	}
}

// Names lists the mode names in table order.
func Names() []string {
	table := Table()
	names := make([]string, len(table))
	for i, m := range table {
		names[i] = m.Name()
	}
	return names
}

// Analyzer is the shared samples-to-bands chain: spectral binning followed by
// adaptive EQ. One instance serves all modes so EQ history survives mode
// switches with matching band counts.
type Analyzer struct {
	binner *dsp.Binner
	eq     *dsp.EQ
}

// NewAnalyzer creates an analyzer with the default FFT size and the given EQ
// strength.
func NewAnalyzer(eqStrength float64) *Analyzer {
	return &Analyzer{
		binner: dsp.NewBinner(dsp.DefaultFFTSize),
		eq:     dsp.NewEQ(eqStrength),
	}
}

// SetEQStrength changes the adaptive EQ strength, clearing its running mean
// on change.
func (a *Analyzer) SetEQStrength(s float64) { a.eq.SetStrength(s) }

// EQStrength returns the current adaptive EQ strength.
func (a *Analyzer) EQStrength() float64 { return a.eq.Strength() }

// Bins computes n EQ-adjusted band intensities from samples. The spectral
// tilt is skipped when the EQ is active, since the EQ flattens the long-run
// spectrum on its own.
func (a *Analyzer) Bins(samples []float64, n, sampleRate int) []float64 {
	flatten := a.eq.Strength() > 0
	return a.eq.Apply(a.binner.Bins(samples, n, sampleRate, flatten))
}
