package audio

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bogem/id3v2/v2"
	"github.com/ebitengine/oto/v3"
)

const (
	// ringSeconds sizes the visualization tap.
	ringSeconds = 1
	// tapWindow is how many of the freshest samples Next hands out, one
	// spectral analysis window's worth.
	tapWindow = 4096
)

var (
	otoCtx     *oto.Context
	otoCtxOpts oto.NewContextOptions
	otoOnce    sync.Once
	otoInitErr error
)

func initOto(sampleRate, channels int) (*oto.Context, error) {
	otoOnce.Do(func() {
		otoCtxOpts = oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		otoCtx, ready, otoInitErr = oto.NewContext(&otoCtxOpts)
		if otoInitErr == nil {
			<-ready
		}
	})
	return otoCtx, otoInitErr
}

// File plays a local audio file through the system output while tapping the
// decoded PCM for visualization. Playback pacing comes from the audio device,
// so the tap always holds what is audible right now.
type File struct {
	path   string
	title  string
	file   *os.File
	dec    decoder
	ring   *sampleRing
	player *oto.Player

	mu     sync.Mutex
	closed bool
}

// NewFile opens and probes the file without starting playback.
func NewFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	dec, err := newDecoder(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &File{
		path:  path,
		title: readTitle(path),
		file:  f,
		dec:   dec,
		ring:  newSampleRing(dec.SampleRate() * ringSeconds),
	}, nil
}

// Start begins playback. The context cancels it.
func (s *File) Start(ctx context.Context) error {
	c, err := initOto(s.dec.SampleRate(), s.dec.ChannelCount())
	if err != nil {
		return fmt.Errorf("audio output: %w", err)
	}
	tap := &tapReader{dec: s.dec, channels: s.dec.ChannelCount(), ring: s.ring}
	s.player = c.NewPlayer(tap)
	s.player.Play()

	go func() {
		<-ctx.Done()
		s.Close()
	}()
	return nil
}

// Next snapshots the freshest analysis window of decoded audio. It returns
// false before any PCM has flowed, rendering an idle frame.
func (s *File) Next() (Chunk, bool) {
	samples := s.ring.Tail(tapWindow)
	if len(samples) == 0 {
		return Chunk{}, false
	}
	return Chunk{Samples: samples, SampleRate: s.dec.SampleRate()}, true
}

// Name returns the track title for the header line.
func (s *File) Name() string {
	return s.title
}

// Close stops playback and releases the file.
func (s *File) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.player != nil {
		_ = s.player.Close()
	}
	return s.file.Close()
}

// tapReader feeds the audio device while mirroring a mono mix of every read
// into the sample ring.
type tapReader struct {
	dec      decoder
	channels int
	ring     *sampleRing
}

func (t *tapReader) Read(p []byte) (int, error) {
	n, err := t.dec.Read(p)
	if n > 0 {
		frameBytes := t.channels * 2
		frames := n / frameBytes
		if frames > 0 {
			mono := make([]float64, frames)
			for i := range frames {
				sum := 0.0
				for ch := range t.channels {
					v := int16(binary.LittleEndian.Uint16(p[i*frameBytes+ch*2:]))
					sum += float64(v) / 32768.0
				}
				mono[i] = sum / float64(t.channels)
			}
			t.ring.Write(mono)
		}
	}
	return n, err
}

// readTitle pulls the ID3 title where present, falling back to the filename.
func readTitle(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		if tag, err := id3v2.Open(path, id3v2.Options{Parse: true}); err == nil {
			title := strings.TrimSpace(tag.Title())
			tag.Close()
			if title != "" {
				return title
			}
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
