package dsp

import (
	"math"
	"sort"
)

const (
	// DefaultFFTSize is the analysis window length in samples.
	DefaultFFTSize = 4096
	// DefaultSampleRate is assumed when a chunk carries no rate.
	DefaultSampleRate = 44100

	freqLow      = 20.0
	freqHighCap  = 20000.0
	floorWeight  = 0.15
	baselineFrac = 0.01
	barGamma     = 0.7
)

// Binner reduces a raw audio buffer to N logarithmically spaced band
// intensities in [0,1]. It owns reusable FFT scratch buffers so per-frame
// work allocates only the output slice.
type Binner struct {
	fftSize int
	re      []float64
	im      []float64
	window  []float64
}

// NewBinner creates a Binner with the given FFT window size. Sizes that are
// not a power of two (or ≤ 0) fall back to DefaultFFTSize.
func NewBinner(fftSize int) *Binner {
	if fftSize <= 0 || fftSize&(fftSize-1) != 0 {
		fftSize = DefaultFFTSize
	}
	b := &Binner{
		fftSize: fftSize,
		re:      make([]float64, fftSize),
		im:      make([]float64, fftSize),
		window:  make([]float64, fftSize),
	}
	for i := range b.window {
		b.window[i] = 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/float64(fftSize-1)))
	}
	return b
}

// Bins computes numBars band intensities from samples. Samples shorter than
// the FFT size are zero-padded, longer ones truncated. A silent buffer yields
// all zeros; numBars ≤ 0 yields an empty slice.
func (b *Binner) Bins(samples []float64, numBars, sampleRate int, flatten bool) []float64 {
	if numBars <= 0 {
		return nil
	}
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	for i := range b.fftSize {
		if i < len(samples) {
			b.re[i] = samples[i] * b.window[i]
		} else {
			b.re[i] = 0
		}
		b.im[i] = 0
	}

	fft(b.re, b.im)

	// Power spectrum over the positive-frequency half, DC included.
	lines := b.fftSize/2 + 1
	power := make([]float64, lines)
	for i := range lines {
		power[i] = b.re[i]*b.re[i] + b.im[i]*b.im[i]
	}
	binHz := float64(sampleRate) / float64(b.fftSize)

	nyquist := float64(sampleRate) / 2.0
	fLow := freqLow
	fHigh := math.Min(freqHighCap, nyquist*0.999)
	if fHigh <= fLow {
		fHigh = nyquist * 0.999
	}

	centers, edges := logBandEdges(numBars, fLow, fHigh)

	vals := make([]float64, numBars)
	for i := range numBars {
		lo, hi := edges[i], edges[i+1]
		sum := 0.0
		count := 0
		for k := range lines {
			f := float64(k) * binHz
			if f >= lo && f < hi {
				sum += power[k]
				count++
			}
		}
		if count > 0 {
			vals[i] = math.Sqrt(sum / float64(count))
		} else {
			// Band narrower than one spectral line: interpolate the power
			// at the band center between its two nearest lines.
			vals[i] = math.Sqrt(interpPower(power, centers[i], binHz))
		}
	}

	anyEnergy := false
	for _, v := range vals {
		if v > 0 {
			anyEnergy = true
			break
		}
	}
	if anyEnergy {
		floor := percentile(vals, 20)
		for i, v := range vals {
			v -= floor * floorWeight
			if v < 0 {
				v = 0
			}
			vals[i] = v
		}
		if !flatten {
			applyTilt(vals)
		}
		mean := 0.0
		for _, v := range vals {
			mean += v
		}
		mean /= float64(numBars)
		if baseline := mean * baselineFrac; baseline > 0 {
			for i := range vals {
				vals[i] += baseline
			}
		}
	}

	maxVal := 0.0
	for _, v := range vals {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal > 0 {
		for i := range vals {
			vals[i] /= maxVal
		}
	}
	for i, v := range vals {
		if v > 0 {
			vals[i] = math.Pow(v, barGamma)
		}
	}
	return vals
}

// logBandEdges returns numBars logarithmically spaced band centers between
// fLow and fHigh, plus numBars+1 edges at the geometric midpoints of adjacent
// centers. The first and last edge are extrapolated, then clamped into range.
func logBandEdges(numBars int, fLow, fHigh float64) (centers, edges []float64) {
	centers = make([]float64, numBars)
	if numBars == 1 {
		centers[0] = fLow
	} else {
		ratio := math.Log(fHigh / fLow)
		for i := range numBars {
			centers[i] = fLow * math.Exp(ratio*float64(i)/float64(numBars-1))
		}
		// exp(log(fHigh/fLow)) overshoots fHigh by a few ulps; pin the
		// endpoint so every center stays inside [fLow, fHigh].
		centers[numBars-1] = fHigh
	}

	edges = make([]float64, numBars+1)
	for i := 1; i < numBars; i++ {
		edges[i] = math.Sqrt(centers[i-1] * centers[i])
	}
	if numBars > 1 && edges[1] > 0 {
		edges[0] = centers[0] * (centers[0] / edges[1])
	} else {
		edges[0] = fLow
	}
	if numBars > 1 && edges[numBars-1] > 0 {
		edges[numBars] = centers[numBars-1] * (centers[numBars-1] / edges[numBars-1])
	} else {
		edges[numBars] = fHigh
	}
	for i := range edges {
		if edges[i] < fLow {
			edges[i] = fLow
		}
		if edges[i] > fHigh {
			edges[i] = fHigh
		}
	}
	return centers, edges
}

func interpPower(power []float64, freq, binHz float64) float64 {
	idx := freq / binHz
	lo := int(idx)
	if lo < 0 {
		return power[0]
	}
	if lo >= len(power)-1 {
		return power[len(power)-1]
	}
	t := idx - float64(lo)
	return power[lo]*(1-t) + power[lo+1]*t
}

// percentile returns the p-th percentile of vals using linear interpolation
// between closest ranks.
func percentile(vals []float64, p float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(rank)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	t := rank - float64(lo)
	return sorted[lo]*(1-t) + sorted[lo+1]*t
}

// applyTilt boosts higher bands to counter the natural high-frequency
// roll-off of musical content, topping out around +5 dB.
func applyTilt(vals []float64) {
	n := len(vals)
	den := float64(n - 1)
	if den < 1 {
		den = 1
	}
	for i := range vals {
		idx := float64(i) / den
		vals[i] *= 1.0 + 0.78*math.Pow(idx, 1.15)
	}
}
