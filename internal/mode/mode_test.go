package mode

import (
	"math"
	"testing"

	"github.com/olivier-w/auviz/internal/render"
)

func testFrame(samples []float64) Frame {
	return Frame{
		Samples:    samples,
		SampleRate: 44100,
		Scheme:     render.SchemeMulticolor,
		Glyphs:     render.Glyphs(false),
		Analyzer:   NewAnalyzer(0),
	}
}

func sine(freq float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.8 * math.Sin(2*math.Pi*freq*float64(i)/44100)
	}
	return out
}

func countGlyphs(g *render.Grid) int {
	n := 0
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if c, _ := g.At(row, col); c.Glyph != 0 {
				n++
			}
		}
	}
	return n
}

func TestTableNamesAreUniqueAndOrdered(t *testing.T) {
	names := Names()
	want := []string{"bars", "spectrum", "waveform", "mirror", "circular", "levels", "radial"}
	if len(names) != len(want) {
		t.Fatalf("got %d modes, want %d", len(names), len(want))
	}
	for i, n := range names {
		if n != want[i] {
			t.Errorf("mode %d: got %q, want %q", i, n, want[i])
		}
	}
}

func TestAllModesDrawOnTinyGrid(t *testing.T) {
	f := testFrame(sine(440, 4096))
	for _, m := range Table() {
		g := render.NewGrid(1, 1)
		m.Draw(g, f) // must not panic
		g.Resize(3, 2)
		m.Reset()
		m.Draw(g, f)
	}
}

func TestBarsSilentInputDrawsNothing(t *testing.T) {
	b := NewBars()
	g := render.NewGrid(40, 12)
	b.Draw(g, testFrame(make([]float64, 4096)))
	if n := countGlyphs(g); n != 0 {
		t.Fatalf("silent frame drew %d cells", n)
	}
}

func TestBarsToneDrawsBars(t *testing.T) {
	b := NewBars()
	g := render.NewGrid(40, 12)
	b.Draw(g, testFrame(sine(440, 4096)))
	if countGlyphs(g) == 0 {
		t.Fatal("tone drew nothing")
	}
	// Bars occupy even columns only.
	for row := 0; row < g.Height(); row++ {
		for col := 1; col < g.Width(); col += 2 {
			if c, _ := g.At(row, col); c.Glyph != 0 {
				t.Fatalf("odd column %d painted", col)
			}
		}
	}
}

func TestSpectrumPeakMarkerOutlivesBar(t *testing.T) {
	s := NewSpectrum()
	g := render.NewGrid(40, 16)
	loud := testFrame(sine(440, 4096))
	silent := testFrame(make([]float64, 4096))

	s.Draw(g, loud)
	for range 12 {
		g.Clear()
		s.Draw(g, silent)
	}

	found := false
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if c, _ := g.At(row, col); c.Glyph == '▬' {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("no peak marker held after the bar decayed")
	}
}

func TestSpectrumFullScalePeakMarkerStaysOnGrid(t *testing.T) {
	s := NewSpectrum()
	g := render.NewGrid(40, 16)

	// A band driven past full scale must keep its marker on the top row
	// instead of computing a row above the grid.
	hot := make([]float64, g.Width()/2)
	for i := range hot {
		hot[i] = 1.2
	}
	s.peaks.Update(hot)
	s.Draw(g, testFrame(make([]float64, 4096)))

	found := false
	for col := 0; col < g.Width(); col += 2 {
		if c, _ := g.At(0, col); c.Glyph == '▬' {
			found = true
		}
	}
	if !found {
		t.Fatal("full-scale peak marker missing from the top row")
	}
}

func TestWaveformSilenceShowsCenterLine(t *testing.T) {
	w := NewWaveform()
	g := render.NewGrid(30, 11)
	w.Draw(g, testFrame(make([]float64, 1024)))
	mid := g.Height() / 2
	for col := 0; col < g.Width(); col++ {
		c, _ := g.At(mid, col)
		if c.Glyph == 0 {
			t.Fatalf("center row blank at column %d", col)
		}
	}
}

func TestMirrorIsVerticallySymmetric(t *testing.T) {
	m := NewMirror()
	g := render.NewGrid(40, 17)
	f := testFrame(sine(440, 4096))
	m.Draw(g, f)
	if countGlyphs(g) == 0 {
		t.Fatal("mirror drew nothing")
	}
	mid := g.Height() / 2
	for d := 1; d < mid; d++ {
		for col := 0; col < g.Width(); col++ {
			up, _ := g.At(mid-d, col)
			down, _ := g.At(mid+d, col)
			if (up.Glyph == 0) != (down.Glyph == 0) {
				t.Fatalf("asymmetry at col %d offset %d", col, d)
			}
		}
	}
}

func TestCircularDrawsRing(t *testing.T) {
	c := NewCircular()
	g := render.NewGrid(60, 20)
	c.Draw(g, testFrame(sine(440, 4096)))
	n := countGlyphs(g)
	if n == 0 {
		t.Fatal("circular drew nothing")
	}
	// The ring must surround the center, not collapse onto it.
	if cell, _ := g.At(10, 30); cell.Glyph != 0 {
		t.Fatal("center cell painted")
	}
	left, right := false, false
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if cell, _ := g.At(row, col); cell.Glyph != 0 {
				if col < 30 {
					left = true
				}
				if col > 30 {
					right = true
				}
			}
		}
	}
	if !left || !right {
		t.Fatal("ring does not span both sides of the center")
	}
}

func TestLevelsDrawsMeterLattice(t *testing.T) {
	l := NewLevels()
	g := render.NewGrid(40, 8)
	l.Draw(g, testFrame(make([]float64, 4096)))
	// Even on silence the empty meter shells render.
	c, _ := g.At(0, 0)
	if c.Glyph != '░' {
		t.Fatalf("expected empty meter cell, got %q", c.Glyph)
	}
	// Separator rows stay blank.
	for col := 0; col < g.Width(); col++ {
		if c, _ := g.At(1, col); c.Glyph != 0 {
			t.Fatalf("separator row painted at col %d", col)
		}
	}
}

func TestRadialToneLightsTrail(t *testing.T) {
	r := NewRadial()
	g := render.NewGrid(40, 20)
	f := testFrame(sine(440, 4096))
	for range 5 {
		g.Clear()
		r.Draw(g, f)
	}
	if countGlyphs(g) == 0 {
		t.Fatal("radial drew nothing after five loud frames")
	}
	r.Reset()
	g.Clear()
	r.Draw(g, testFrame(make([]float64, 4096)))
	if n := countGlyphs(g); n > 3 {
		t.Fatalf("fresh silent frame drew %d cells", n)
	}
}

func TestBackgroundNeverOverwritesForeground(t *testing.T) {
	g := render.NewGrid(30, 10)
	g.Set(1, 2, 'X', render.ColorRed)
	glyphs := render.Glyphs(false)
	for b := BackgroundNone; b < backgroundCount; b++ {
		DrawBackground(g, b, glyphs, render.SchemeMulticolor, 9)
	}
	c, _ := g.At(1, 2)
	if c.Glyph != 'X' {
		t.Fatalf("background overwrote foreground: %q", c.Glyph)
	}
}

func TestBackgroundCycle(t *testing.T) {
	if BackgroundNone.Next() != BackgroundDots ||
		BackgroundDots.Next() != BackgroundGrid ||
		BackgroundGrid.Next() != BackgroundGradient ||
		BackgroundGradient.Next() != BackgroundStars ||
		BackgroundStars.Next() != BackgroundNone {
		t.Fatal("cycle order wrong")
	}
}

func TestBackgroundGridLattice(t *testing.T) {
	g := render.NewGrid(40, 12)
	glyphs := render.Glyphs(false)
	DrawBackground(g, BackgroundGrid, glyphs, render.SchemeMulticolor, 0)
	checks := []struct {
		row, col int
		want     bool
	}{
		{0, 5, true},  // lattice row
		{4, 3, true},  // lattice row
		{2, 8, true},  // lattice column
		{3, 5, false}, // interior stays blank
	}
	for _, c := range checks {
		cell, _ := g.At(c.row, c.col)
		got := cell.Glyph == glyphs.Dot
		if got != c.want {
			t.Errorf("cell (%d,%d): dot=%v, want %v", c.row, c.col, got, c.want)
		}
	}
}

func TestBackgroundGradientDeepensTowardBottom(t *testing.T) {
	g := render.NewGrid(20, 10)
	glyphs := render.Glyphs(false)
	DrawBackground(g, BackgroundGradient, glyphs, render.SchemeBlue, 0)
	top, _ := g.At(0, 5)
	if top.Glyph != ' ' {
		t.Fatalf("top row should stay blank, got %q", top.Glyph)
	}
	bottom, _ := g.At(9, 5)
	if bottom.Glyph != glyphs.Shade[len(glyphs.Shade)-1] {
		t.Fatalf("bottom row should be the densest shade, got %q", bottom.Glyph)
	}
	mid, _ := g.At(5, 5)
	if mid.Glyph == ' ' || mid.Glyph == bottom.Glyph {
		t.Fatalf("middle row should shade between the extremes, got %q", mid.Glyph)
	}
}
