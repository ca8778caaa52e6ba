package audio

import "sync"

// sampleRing is a thread-safe circular buffer of mono samples. The playback
// tap writes into it at audio rate; the render side snapshots the most recent
// window once per frame.
type sampleRing struct {
	buf []float64
	w   int
	n   int
	mu  sync.Mutex
}

func newSampleRing(size int) *sampleRing {
	return &sampleRing{buf: make([]float64, size)}
}

// Write appends samples, overwriting the oldest when full.
func (r *sampleRing) Write(samples []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range samples {
		r.buf[r.w] = s
		r.w = (r.w + 1) % len(r.buf)
	}
	r.n += len(samples)
	if r.n > len(r.buf) {
		r.n = len(r.buf)
	}
}

// Tail returns up to n most recent samples, oldest first.
func (r *sampleRing) Tail(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n > r.n {
		n = r.n
	}
	if n == 0 {
		return nil
	}
	out := make([]float64, n)
	start := (r.w - n + len(r.buf)) % len(r.buf)
	for i := range n {
		out[i] = r.buf[(start+i)%len(r.buf)]
	}
	return out
}
