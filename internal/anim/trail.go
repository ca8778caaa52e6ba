package anim

// TrailDecay is the multiplicative per-frame fade of the trail buffer.
const TrailDecay = 0.85

// Trail is a 2D grid of decaying brightness values used for fading afterglow
// effects. New contributions combine via element-wise max with the existing
// value, never overwrite, so overlapping draws don't flicker.
type Trail struct {
	width  int
	height int
	cells  []float64
}

// NewTrail creates an empty trail buffer; it sizes itself on first Resize.
func NewTrail() *Trail {
	return &Trail{}
}

// Resize reallocates the buffer when the display dimensions change, clearing
// any existing glow.
func (t *Trail) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == t.width && height == t.height {
		return
	}
	t.width = width
	t.height = height
	t.cells = make([]float64, width*height)
}

func (t *Trail) Width() int  { return t.width }
func (t *Trail) Height() int { return t.height }

// Decay fades the whole buffer one frame.
func (t *Trail) Decay() {
	for i := range t.cells {
		t.cells[i] *= TrailDecay
	}
}

// Deposit raises the brightness at (x, y) to at least b. Out-of-bounds
// deposits are dropped.
func (t *Trail) Deposit(x, y int, b float64) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	if b > t.cells[y*t.width+x] {
		t.cells[y*t.width+x] = b
	}
}

// At returns the brightness at (x, y), zero when out of bounds.
func (t *Trail) At(x, y int) float64 {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return 0
	}
	return t.cells[y*t.width+x]
}
