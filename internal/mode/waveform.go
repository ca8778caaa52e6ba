package mode

import (
	"github.com/charmbracelet/harmonica"

	"github.com/olivier-w/auviz/internal/dsp"
	"github.com/olivier-w/auviz/internal/render"
)

// Waveform is an oscilloscope trace of the raw chunk. The display amplitude
// per column runs through a heavy EMA and a critically-damped spring, which
// keeps the line readable where the raw signal would just shiver.
type Waveform struct {
	smoother *dsp.Smoother
	spring   harmonica.Spring
	pos      []float64
	vel      []float64
}

func NewWaveform() *Waveform {
	return &Waveform{
		smoother: dsp.NewSmoother(dsp.HeavySmoothing),
		spring:   harmonica.NewSpring(harmonica.FPS(30), 8.0, 0.9),
	}
}

func (w *Waveform) Name() string { return "waveform" }

func (w *Waveform) Reset() {
	w.smoother.Reset()
	w.pos = nil
	w.vel = nil
}

func (w *Waveform) Draw(g *render.Grid, f Frame) {
	width := g.Width()
	if len(w.pos) != width {
		w.pos = make([]float64, width)
		w.vel = make([]float64, width)
	}

	targets := columnAmplitudes(f.Samples, width)
	targets = w.smoother.Apply(targets)

	mid := g.Height() / 2
	for col := 0; col < width; col++ {
		g.Overlay(mid, col, f.Glyphs.Dot, render.ColorDim)
	}

	halfSpan := float64(g.Height()) / 2
	den := float64(width - 1)
	if den < 1 {
		den = 1
	}
	for col, target := range targets {
		p, v := w.spring.Update(w.pos[col], w.vel[col], target)
		w.pos[col] = p
		w.vel[col] = v

		row := mid - int(p*halfSpan)
		level := p
		if level < 0 {
			level = -level
		}
		color := render.MapColor(level, float64(col)/den, f.Scheme)
		g.Set(row, col, f.Glyphs.Wave, color)
	}
}

// columnAmplitudes reduces the chunk to one signed amplitude per display
// column, the extreme sample of each column's slice of the chunk so short
// transients stay visible.
func columnAmplitudes(samples []float64, width int) []float64 {
	out := make([]float64, width)
	if len(samples) == 0 || width < 1 {
		return out
	}
	per := len(samples) / width
	if per < 1 {
		per = 1
	}
	for col := range out {
		start := col * per
		if start >= len(samples) {
			break
		}
		end := start + per
		if end > len(samples) {
			end = len(samples)
		}
		ext := 0.0
		mag := 0.0
		for _, s := range samples[start:end] {
			m := s
			if m < 0 {
				m = -m
			}
			if m > mag {
				mag = m
				ext = s
			}
		}
		if ext > 1 {
			ext = 1
		} else if ext < -1 {
			ext = -1
		}
		out[col] = ext
	}
	return out
}
