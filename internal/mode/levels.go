package mode

import (
	"github.com/olivier-w/auviz/internal/dsp"
	"github.com/olivier-w/auviz/internal/render"
)

const levelsPerRow = 4

// Levels fills the display with a lattice of horizontal VU-style meters,
// four per row with a blank line between rows, one frequency band per meter.
type Levels struct {
	smoother *dsp.Smoother
}

func NewLevels() *Levels {
	return &Levels{smoother: dsp.NewSmoother(dsp.DefaultSmoothing)}
}

func (l *Levels) Name() string { return "levels" }

func (l *Levels) Reset() { l.smoother.Reset() }

func (l *Levels) Draw(g *render.Grid, f Frame) {
	cellW := g.Width() / levelsPerRow
	if cellW < 3 {
		cellW = g.Width()
	}
	perRow := g.Width() / cellW
	rows := (g.Height() + 1) / 2
	n := perRow * rows
	if n < 1 {
		n = 1
	}
	levels := l.smoother.Apply(f.bins(n))

	meterW := cellW - 1 // one column of breathing room between meters
	den := float64(len(levels) - 1)
	if den < 1 {
		den = 1
	}
	for i, level := range levels {
		row := (i / perRow) * 2
		col := (i % perRow) * cellW
		filled := int(clamp01(level) * float64(meterW))
		color := render.MapColor(level, float64(i)/den, f.Scheme)
		for x := 0; x < meterW; x++ {
			if x < filled {
				g.Set(row, col+x, f.Glyphs.Meter, color)
			} else {
				g.Set(row, col+x, f.Glyphs.MeterEmpty, render.ColorDim)
			}
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
