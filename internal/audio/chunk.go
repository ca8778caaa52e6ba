package audio

import "sync"

// DefaultChunkSize is the number of samples delivered per capture cycle.
const DefaultChunkSize = 1024

// Chunk is one capture cycle's worth of mono samples in [-1,1]. The core
// treats it as read-only and never retains it past the frame that popped it.
type Chunk struct {
	Samples    []float64
	SampleRate int
}

// Queue is a bounded chunk queue with a drop-oldest overflow policy: a slow
// consumer loses stale audio instead of stalling the producer.
type Queue struct {
	mu    sync.Mutex
	items []Chunk
	cap   int
}

// NewQueue creates a queue holding at most capacity chunks.
func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{cap: capacity}
}

// Push appends a chunk, evicting the oldest when full.
func (q *Queue) Push(c Chunk) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) >= q.cap {
		copy(q.items, q.items[1:])
		q.items = q.items[:len(q.items)-1]
	}
	q.items = append(q.items, c)
}

// Pop removes and returns the oldest queued chunk without blocking. The
// second result is false when no audio is available, which callers treat as
// "render an idle frame", never as an error.
func (q *Queue) Pop() (Chunk, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return Chunk{}, false
	}
	c := q.items[0]
	copy(q.items, q.items[1:])
	q.items = q.items[:len(q.items)-1]
	return c, true
}

// Len reports the number of queued chunks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
