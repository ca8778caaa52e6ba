package mode

import (
	"github.com/olivier-w/auviz/internal/dsp"
	"github.com/olivier-w/auviz/internal/render"
)

// Spectrum is the bar display plus peak-hold markers that snap to each band's
// maximum and fall with accelerating decay.
type Spectrum struct {
	smoother *dsp.Smoother
	peaks    *dsp.PeakTracker
}

func NewSpectrum() *Spectrum {
	return &Spectrum{
		smoother: dsp.NewSmoother(dsp.DefaultSmoothing),
		peaks:    dsp.NewPeakTracker(),
	}
}

func (s *Spectrum) Name() string { return "spectrum" }

func (s *Spectrum) Reset() {
	s.smoother.Reset()
	s.peaks = dsp.NewPeakTracker()
}

func (s *Spectrum) Draw(g *render.Grid, f Frame) {
	n := g.Width() / 2
	if n < 1 {
		n = 1
	}
	levels := s.smoother.Apply(f.bins(n))
	peaks := s.peaks.Update(levels)

	marker := '▬'
	if f.ASCII {
		marker = '-'
	}

	den := float64(len(levels) - 1)
	if den < 1 {
		den = 1
	}
	for i, level := range levels {
		pos := float64(i) / den
		color := render.MapColor(level, pos, f.Scheme)
		g.VBar(i*2, level, f.Glyphs, color)

		// Peak markers only once they've separated from the bar tip.
		peak := peaks[i]
		if peak <= level+0.02 {
			continue
		}
		row := g.Height() - 1 - int(peak*float64(g.Height()))
		if row < 0 {
			row = 0
		}
		g.Set(row, i*2, marker, render.ColorWhite)
	}
}
