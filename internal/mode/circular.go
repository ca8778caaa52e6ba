package mode

import (
	"math"

	"github.com/olivier-w/auviz/internal/dsp"
	"github.com/olivier-w/auviz/internal/render"
)

const circularPoints = 120

// Circular draws a closed ring whose radius is modulated by the raw
// waveform, one point per step around the circle. Heavy smoothing keeps the
// ring from shivering between frames.
type Circular struct {
	smoother *dsp.Smoother
}

func NewCircular() *Circular {
	return &Circular{smoother: dsp.NewSmoother(dsp.HeavySmoothing)}
}

func (c *Circular) Name() string { return "circular" }

func (c *Circular) Reset() { c.smoother.Reset() }

func (c *Circular) Draw(g *render.Grid, f Frame) {
	wave := c.smoother.Apply(ringWave(f.Samples, circularPoints))

	// Normalize a copy; the smoother owns the returned slice.
	norm := make([]float64, len(wave))
	maxAbs := 0.0
	for _, v := range wave {
		if m := math.Abs(v); m > maxAbs {
			maxAbs = m
		}
	}
	for i, v := range wave {
		if maxAbs > 0 {
			norm[i] = v / maxAbs
		}
	}

	cx := float64(g.Width()) / 2
	cy := float64(g.Height()) / 2
	base := math.Min(float64(g.Height())/2-2, float64(g.Width())/4)
	if base < 1 {
		base = 1
	}

	glyph := '●'
	if f.ASCII {
		glyph = 'o'
	}

	den := float64(len(norm) - 1)
	if den < 1 {
		den = 1
	}
	for i, v := range norm {
		angle := float64(i) / float64(len(norm)) * 2 * math.Pi
		offset := v * base * 0.4
		radius := base + offset

		x := int(cx + radius*math.Cos(angle))
		// Terminal cells are taller than wide; halve the vertical extent.
		y := int(cy + radius*math.Sin(angle)*0.5)

		intensity := math.Abs(offset) / base
		color := render.MapColor(intensity, float64(i)/den, f.Scheme)
		g.Set(y, x, glyph, color)
	}
}

// ringWave stride-samples the chunk down to n points, zero-padding short
// input, so the ring always has a full set of modulation values.
func ringWave(samples []float64, n int) []float64 {
	out := make([]float64, n)
	if len(samples) == 0 {
		return out
	}
	if len(samples) <= n {
		copy(out, samples)
		return out
	}
	step := len(samples) / n
	for i := range out {
		out[i] = samples[i*step]
	}
	return out
}
