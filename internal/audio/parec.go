package audio

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// DefaultCaptureRate is the sample rate requested from parec.
const DefaultCaptureRate = 44100

// Parec captures system audio on Linux by running parec against the
// PulseAudio/PipeWire monitor source of the default output. Chunks land in a
// small drop-oldest queue so the renderer always sees near-live audio.
type Parec struct {
	sampleRate int
	chunkSize  int
	queue      *Queue
	monitor    string

	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewParec creates an unstarted parec source.
func NewParec(sampleRate, chunkSize int) *Parec {
	if sampleRate <= 0 {
		sampleRate = DefaultCaptureRate
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Parec{
		sampleRate: sampleRate,
		chunkSize:  chunkSize,
		queue:      NewQueue(5),
	}
}

// Start discovers the monitor source and launches the capture goroutine. A
// failure to launch parec is not fatal: the source stays up and simply never
// produces chunks, so the display idles instead of the program dying.
func (p *Parec) Start(ctx context.Context) error {
	p.monitor = findMonitorSource(ctx)
	if p.monitor == "" {
		log.Warn("no monitor source found, capturing from default source")
	} else {
		log.WithField("source", p.monitor).Info("capturing system audio")
	}

	args := []string{}
	if p.monitor != "" {
		args = append(args, "--device", p.monitor)
	}
	args = append(args,
		"--rate", fmt.Sprint(p.sampleRate),
		"--channels", "1",
		"--format", "s16le",
		"--latency-msec", "50",
	)

	cmd := exec.CommandContext(ctx, "parec", args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("parec stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		log.WithError(err).Warn("parec unavailable, no audio will be captured")
		return nil
	}

	p.mu.Lock()
	p.cmd = cmd
	p.mu.Unlock()

	go p.readLoop(ctx, stdout)
	go func() {
		// Reap the process so a dead parec doesn't linger as a zombie.
		_ = cmd.Wait()
	}()
	return nil
}

func (p *Parec) readLoop(ctx context.Context, r io.Reader) {
	raw := make([]byte, p.chunkSize*2) // s16le, one channel
	for ctx.Err() == nil {
		n, err := io.ReadFull(r, raw)
		if n == 0 {
			if err != nil {
				log.WithError(err).Debug("parec stream ended")
				return
			}
			continue
		}
		samples := make([]float64, n/2)
		for i := range samples {
			samples[i] = float64(int16(binary.LittleEndian.Uint16(raw[i*2:]))) / 32768.0
		}
		p.queue.Push(Chunk{Samples: samples, SampleRate: p.sampleRate})
		if err != nil {
			log.WithError(err).Debug("parec stream ended")
			return
		}
	}
}

// Next pops the oldest pending chunk without blocking.
func (p *Parec) Next() (Chunk, bool) {
	return p.queue.Pop()
}

// Name returns the monitor source parec is reading from.
func (p *Parec) Name() string {
	if p.monitor == "" {
		return "default"
	}
	return p.monitor
}

// Close terminates the parec process.
func (p *Parec) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cmd != nil && p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
		p.cmd = nil
	}
	return nil
}

// findMonitorSource asks pactl for the first ".monitor" source, which mirrors
// whatever the default output is playing.
func findMonitorSource(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "pactl", "list", "sources", "short").Output()
	if err != nil {
		log.WithError(err).Debug("pactl source listing failed")
		return ""
	}
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if !strings.Contains(strings.ToLower(line), "monitor") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 {
			return fields[1]
		}
	}
	return ""
}
