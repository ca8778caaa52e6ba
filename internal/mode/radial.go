package mode

import (
	"math"

	"github.com/olivier-w/auviz/internal/anim"
	"github.com/olivier-w/auviz/internal/render"
)

const (
	radialBands = 24
	// Terminal cells are roughly twice as tall as wide, so vertical extents
	// are squished to keep the burst circular.
	radialSquish = 0.55
)

// Radial is the generative mode: frequency bands drive spokes radiating from
// the grid center into a fading trail buffer, while a particle field throws
// sparks outward on transients. The trail renders underneath, particles on
// top.
type Radial struct {
	trail *anim.Trail
	field *anim.Field
}

func NewRadial() *Radial {
	return &Radial{
		trail: anim.NewTrail(),
		field: anim.NewField(1),
	}
}

func (r *Radial) Name() string { return "radial" }

func (r *Radial) Reset() {
	r.trail = anim.NewTrail()
	r.field.Reset()
}

func (r *Radial) Draw(g *render.Grid, f Frame) {
	w, h := g.Width(), g.Height()
	r.trail.Resize(w, h)
	r.trail.Decay()

	bins := f.bins(radialBands)
	r.field.Update(bins, w, h)

	r.depositSpokes(bins, w, h)
	for _, p := range r.field.Particles() {
		r.trail.Deposit(int(p.X), int(p.Y), anim.Intensity(p)*0.7)
	}

	r.renderTrail(g, f)
	r.renderParticles(g, f)
}

// depositSpokes writes one decaying ray per band into the trail, angle fixed
// per band and length driven by the band's level.
func (r *Radial) depositSpokes(bins []float64, w, h int) {
	cx := float64(w) / 2
	cy := float64(h) / 2
	maxR := math.Min(cx, cy/radialSquish)
	for i, level := range bins {
		if level <= 0.02 {
			continue
		}
		ang := 2 * math.Pi * float64(i) / float64(len(bins))
		length := level * maxR
		for d := 1.0; d <= length; d++ {
			x := cx + math.Cos(ang)*d
			y := cy + math.Sin(ang)*d*radialSquish
			// Brightness falls off toward the spoke tip.
			b := level * (1 - 0.5*d/maxR)
			r.trail.Deposit(int(x), int(y), b)
		}
	}
}

func (r *Radial) renderTrail(g *render.Grid, f Frame) {
	den := float64(g.Width() - 1)
	if den < 1 {
		den = 1
	}
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			b := r.trail.At(col, row)
			if b < 0.05 {
				continue
			}
			glyph := render.Tier(f.Glyphs.Trail, b)
			g.Set(row, col, glyph, render.MapColor(b, float64(col)/den, f.Scheme))
		}
	}
}

func (r *Radial) renderParticles(g *render.Grid, f Frame) {
	den := float64(g.Width() - 1)
	if den < 1 {
		den = 1
	}
	for _, p := range r.field.Particles() {
		v := anim.Intensity(p)
		glyph := render.Tier(f.Glyphs.Spark, v)
		color := render.MapColor(v, clamp01(p.X/den), f.Scheme)
		if p.Burst > 0.6 {
			color = render.ColorWhite
		}
		g.Set(int(p.Y), int(p.X), glyph, color)
	}
}
