package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// memDecoder serves canned s16le PCM for tap tests.
type memDecoder struct {
	data     []byte
	pos      int
	rate     int
	channels int
}

func (d *memDecoder) Read(p []byte) (int, error) {
	if d.pos >= len(d.data) {
		return 0, io.EOF
	}
	n := copy(p, d.data[d.pos:])
	d.pos += n
	return n, nil
}

func (d *memDecoder) SampleRate() int   { return d.rate }
func (d *memDecoder) ChannelCount() int { return d.channels }

func TestTapReaderMixesToMono(t *testing.T) {
	// Two stereo frames: (L=16384, R=0) and (L=-8192, R=-8192).
	data := make([]byte, 8)
	samples := []int16{16384, 0, -8192, -8192}
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}

	ring := newSampleRing(16)
	tap := &tapReader{
		dec:      &memDecoder{data: data, rate: 44100, channels: 2},
		channels: 2,
		ring:     ring,
	}

	buf := make([]byte, 8)
	if _, err := tap.Read(buf); err != nil {
		t.Fatalf("tap read: %v", err)
	}

	got := ring.Tail(2)
	if len(got) != 2 {
		t.Fatalf("ring holds %d samples, want 2", len(got))
	}
	if math.Abs(got[0]-0.25) > 1e-3 {
		t.Fatalf("frame 0 mono mix = %v, want 0.25", got[0])
	}
	if math.Abs(got[1]-(-0.25)) > 1e-3 {
		t.Fatalf("frame 1 mono mix = %v, want -0.25", got[1])
	}
}

func TestTapReaderPassesDataThrough(t *testing.T) {
	data := []byte{1, 0, 2, 0, 3, 0, 4, 0}
	tap := &tapReader{
		dec:      &memDecoder{data: data, rate: 44100, channels: 2},
		channels: 2,
		ring:     newSampleRing(16),
	}

	buf := make([]byte, 8)
	n, _ := tap.Read(buf)
	if n != 8 {
		t.Fatalf("read %d bytes, want 8", n)
	}
	for i := range data {
		if buf[i] != data[i] {
			t.Fatalf("byte %d = %d, want %d (playback stream must be untouched)", i, buf[i], data[i])
		}
	}
}
