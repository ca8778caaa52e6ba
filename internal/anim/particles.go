package anim

import (
	"math"
	"math/rand"
)

const (
	// MaxParticles bounds the live particle list; oldest are dropped first.
	MaxParticles = 240

	maxSpawnPerFrame = 10
	quietThreshold   = 0.015
	quietSpawnPeriod = 22
	dragPerFrame     = 0.985
	edgeMargin       = 2.0
	minLifetime      = 12
	maxLifetime      = 90

	macroAlpha     = 0.08
	fastAlpha      = 0.4
	macroHeadroom  = 1.3
	verticalSquish = 0.55
)

// Particle is a simulated moving point spawned from the grid center.
// Burst is an intensity multiplier in [0,1] tied to the audio transient that
// spawned it; zero for particles spawned by baseline energy.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Age    int
	MaxAge int
	Burst  float64
}

// Field runs the particle simulation for generative modes. It owns all
// mutable particle state; callers feed it one frame of band values at a time.
type Field struct {
	particles []Particle
	macro     float64
	fast      float64
	quiet     int
	width     int
	height    int
	rng       *rand.Rand
}

// NewField creates a particle field with a deterministic seed so renders are
// reproducible under test.
func NewField(seed int64) *Field {
	return &Field{rng: rand.New(rand.NewSource(seed))}
}

// Particles returns the live particle list. Callers must not retain it across
// frames.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Energy returns the slow (macro) envelope of the broadband energy.
func (f *Field) Energy() float64 {
	return f.macro
}

// Reset drops all particles and envelope state.
func (f *Field) Reset() {
	f.particles = f.particles[:0]
	f.macro = 0
	f.fast = 0
	f.quiet = 0
}

// Update advances the simulation one frame: ages and integrates existing
// particles, drops the dead, and spawns new ones from the frame's band
// energy. Dimension changes take effect immediately; particles stranded
// outside the new bounds die on their next step.
func (f *Field) Update(bins []float64, width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	f.width = width
	f.height = height

	energy := bandEnergy(bins)
	shimmer := shimmerEnergy(bins)

	f.macro = f.macro*(1-macroAlpha) + energy*macroAlpha
	f.fast = f.fast*(1-fastAlpha) + energy*fastAlpha
	transient := f.fast - f.macro*macroHeadroom
	if transient < 0 {
		transient = 0
	}

	f.step()
	f.spawn(energy, shimmer, transient)

	if len(f.particles) > MaxParticles {
		f.particles = f.particles[len(f.particles)-MaxParticles:]
	}
}

func (f *Field) step() {
	alive := f.particles[:0]
	for _, p := range f.particles {
		p.VX *= dragPerFrame
		p.VY *= dragPerFrame
		p.X += p.VX
		p.Y += p.VY
		p.Age++
		if p.Age >= p.MaxAge {
			continue
		}
		if p.X < -edgeMargin || p.X >= float64(f.width)+edgeMargin ||
			p.Y < -edgeMargin || p.Y >= float64(f.height)+edgeMargin {
			continue
		}
		alive = append(alive, p)
	}
	f.particles = alive
}

func (f *Field) spawn(energy, shimmer, transient float64) {
	count := int(f.macro*18) + int(transient*40)
	if count > maxSpawnPerFrame {
		count = maxSpawnPerFrame
	}

	if energy < quietThreshold {
		f.quiet++
		// A fully static scene reads as broken, so let a lone particle
		// drift out every so often even in silence.
		if f.quiet%quietSpawnPeriod == 0 {
			count = 1
		} else {
			count = 0
		}
	} else {
		f.quiet = 0
	}

	cx := float64(f.width) / 2
	cy := float64(f.height) / 2
	for range count {
		ang := f.rng.Float64() * 2 * math.Pi
		speed := (0.35 + f.rng.Float64()*0.9) * (0.4 + f.macro*1.4 + shimmer*0.8 + transient*1.6)
		p := Particle{
			X:      cx,
			Y:      cy,
			VX:     math.Cos(ang) * speed,
			VY:     math.Sin(ang) * speed * verticalSquish,
			MaxAge: lifetimeFor(speed, f.width, f.height),
			Burst:  clamp01(transient * 3),
		}
		f.particles = append(f.particles, p)
	}
}

// lifetimeFor sizes a particle's lifetime so it roughly reaches the grid edge
// at its spawn speed before expiring.
func lifetimeFor(speed float64, width, height int) int {
	edge := math.Min(float64(width)/2, float64(height)/(2*verticalSquish))
	if speed < 0.05 {
		speed = 0.05
	}
	life := int(edge / speed)
	if life < minLifetime {
		life = minLifetime
	}
	if life > maxLifetime {
		life = maxLifetime
	}
	return life
}

// Intensity blends a particle's remaining life, an age-and-position twinkle
// term, and its burst factor into a render brightness in [0,1].
func Intensity(p Particle) float64 {
	life := 1 - float64(p.Age)/float64(p.MaxAge)
	if life < 0 {
		life = 0
	}
	twinkle := 0.6 + 0.4*math.Sin(float64(p.Age)*0.6+p.X*0.2)
	v := life * twinkle
	v += p.Burst * (1 - v) * 0.5
	return clamp01(v)
}

// bandEnergy reduces the bins to a broadband scalar with a Gaussian bump
// around the lower-mid band, where musically salient content lives.
func bandEnergy(bins []float64) float64 {
	if len(bins) == 0 {
		return 0
	}
	den := float64(len(bins) - 1)
	if den < 1 {
		den = 1
	}
	sum := 0.0
	wsum := 0.0
	for i, v := range bins {
		pos := float64(i) / den
		d := pos - 0.3
		w := math.Exp(-d * d / (2 * 0.18 * 0.18))
		sum += v * w
		wsum += w
	}
	return sum / wsum
}

// shimmerEnergy is the mean of the top quarter of bins, driving particle
// speed on bright high-frequency content.
func shimmerEnergy(bins []float64) float64 {
	if len(bins) == 0 {
		return 0
	}
	start := len(bins) * 3 / 4
	sum := 0.0
	for _, v := range bins[start:] {
		sum += v
	}
	return sum / float64(len(bins)-start)
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
