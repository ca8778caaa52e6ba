package audio

import "context"

// Source delivers audio chunks from some capture backend. Next never blocks;
// a false result means no fresh audio this frame, which the renderer draws as
// an idle frame.
type Source interface {
	// Start launches the capture goroutine. It returns once capture is
	// running; the context cancels it.
	Start(ctx context.Context) error
	// Next returns the next available chunk, if any.
	Next() (Chunk, bool)
	// Name identifies the backing device or file for the UI header.
	Name() string
	// Close releases capture resources. Safe to call more than once.
	Close() error
}

// Silent is a Source that never produces audio. It stands in when no capture
// backend is available so the UI still runs.
type Silent struct{}

func (Silent) Start(context.Context) error { return nil }
func (Silent) Next() (Chunk, bool)         { return Chunk{}, false }
func (Silent) Name() string                { return "silent" }
func (Silent) Close() error                { return nil }
