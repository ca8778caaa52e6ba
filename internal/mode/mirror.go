package mode

import (
	"github.com/olivier-w/auviz/internal/dsp"
	"github.com/olivier-w/auviz/internal/render"
)

// Mirror draws the spectrum folded about the horizontal midline: each band's
// bar grows symmetrically up and down from the center, low bands in the
// middle and highs at the edges for a butterfly silhouette.
type Mirror struct {
	smoother *dsp.Smoother
}

func NewMirror() *Mirror {
	return &Mirror{smoother: dsp.NewSmoother(dsp.DefaultSmoothing)}
}

func (m *Mirror) Name() string { return "mirror" }

func (m *Mirror) Reset() { m.smoother.Reset() }

func (m *Mirror) Draw(g *render.Grid, f Frame) {
	half := g.Width() / 2
	if half < 1 {
		half = 1
	}
	levels := m.smoother.Apply(f.bins(half))

	mid := g.Height() / 2
	halfSpan := float64(g.Height()) / 2
	den := float64(len(levels) - 1)
	if den < 1 {
		den = 1
	}
	for i, level := range levels {
		pos := float64(i) / den
		color := render.MapColor(level, pos, f.Scheme)
		extent := level * halfSpan

		// Band 0 sits at the center columns, the last band at the edges.
		left := half - 1 - i
		right := g.Width() - half + i
		for _, col := range []int{left, right} {
			full := int(extent)
			for d := 0; d < full; d++ {
				g.Set(mid-d, col, f.Glyphs.Solid, color)
				g.Set(mid+d, col, f.Glyphs.Solid, color)
			}
			if frac := extent - float64(full); frac > 0 {
				tip := render.Tier(f.Glyphs.Bar, frac)
				g.Set(mid-full, col, tip, color)
				g.Set(mid+full, col, tip, color)
			}
		}
	}
}
