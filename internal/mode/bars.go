package mode

import (
	"github.com/olivier-w/auviz/internal/dsp"
	"github.com/olivier-w/auviz/internal/render"
)

// Bars is the classic spectrum bar display: one vertical bar per frequency
// band, two columns apart so bars read as distinct.
type Bars struct {
	smoother *dsp.Smoother
}

func NewBars() *Bars {
	return &Bars{smoother: dsp.NewSmoother(dsp.DefaultSmoothing)}
}

func (b *Bars) Name() string { return "bars" }

func (b *Bars) Reset() { b.smoother.Reset() }

func (b *Bars) Draw(g *render.Grid, f Frame) {
	n := g.Width() / 2
	if n < 1 {
		n = 1
	}
	levels := b.smoother.Apply(f.bins(n))
	den := float64(len(levels) - 1)
	if den < 1 {
		den = 1
	}
	for i, level := range levels {
		pos := float64(i) / den
		color := render.MapColor(level, pos, f.Scheme)
		g.VBar(i*2, level, f.Glyphs, color)
	}
}
