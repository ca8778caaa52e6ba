package mode

import "github.com/olivier-w/auviz/internal/render"

// Background selects an optional backdrop drawn behind the active mode.
type Background int

const (
	BackgroundNone Background = iota
	BackgroundDots
	BackgroundGrid
	BackgroundGradient
	BackgroundStars
	backgroundCount
)

func (b Background) String() string {
	switch b {
	case BackgroundDots:
		return "dots"
	case BackgroundGrid:
		return "grid"
	case BackgroundGradient:
		return "gradient"
	case BackgroundStars:
		return "stars"
	default:
		return "none"
	}
}

// Next cycles none → dots → grid → gradient → stars → none.
func (b Background) Next() Background {
	return (b + 1) % backgroundCount
}

// DrawBackground fills blank cells with the selected backdrop. It runs after
// the mode's Draw and only uses Overlay, so foreground content always wins.
func DrawBackground(g *render.Grid, b Background, glyphs render.GlyphSet, scheme render.Scheme, tick int) {
	switch b {
	case BackgroundDots:
		for row := 1; row < g.Height(); row += 4 {
			for col := 2; col < g.Width(); col += 6 {
				g.Overlay(row, col, glyphs.Dot, render.ColorDim)
			}
		}
	case BackgroundGrid:
		// Dim lattice lines: every fourth row and every eighth column.
		for row := 0; row < g.Height(); row++ {
			for col := 0; col < g.Width(); col++ {
				if row%4 != 0 && col%8 != 0 {
					continue
				}
				g.Overlay(row, col, glyphs.Dot, render.ColorDim)
			}
		}
	case BackgroundGradient:
		// Shade density grows toward the bottom; hue follows the scheme
		// across both axes so the wash reads as a lit surface.
		den := float64(g.Height() - 1)
		if den < 1 {
			den = 1
		}
		wden := float64(g.Width() - 1)
		if wden < 1 {
			wden = 1
		}
		for row := 0; row < g.Height(); row++ {
			t := float64(row) / den
			glyph := render.Tier(glyphs.Shade, t)
			if glyph == ' ' {
				continue
			}
			for col := 0; col < g.Width(); col++ {
				c := render.MapColor(t*0.8+0.2, float64(col)/wden, scheme)
				g.Overlay(row, col, glyph, c)
			}
		}
	case BackgroundStars:
		// A fixed pseudo-random scatter; each star winks out on its own
		// phase of a slow cycle so the field appears to twinkle.
		for row := 0; row < g.Height(); row++ {
			for col := 0; col < g.Width(); col++ {
				h := uint32(row)*2654435761 ^ uint32(col)*40503
				h = h*2246822519 + 374761393
				if h%53 != 0 {
					continue
				}
				phase := (tick/8 + int(h>>8)) % 4
				if phase == 0 {
					continue
				}
				glyph := glyphs.Spark[0]
				if h%7 == 0 {
					glyph = glyphs.Spark[1]
				}
				g.Overlay(row, col, glyph, render.ColorDim)
			}
		}
	}
}
