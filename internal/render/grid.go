package render

import "strings"

// Cell is one character position in the grid.
type Cell struct {
	Glyph rune
	Color Color
}

// Grid is a bounded 2D character grid modes draw into. Writes outside its
// bounds are silently dropped so draw code never has to range-check.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a cleared grid. Non-positive dimensions are clamped to 1.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Resize reallocates the grid when dimensions change and reports whether it
// did. The grid is cleared either way.
func (g *Grid) Resize(width, height int) bool {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	changed := width != g.width || height != g.height
	if changed {
		g.width = width
		g.height = height
		g.cells = make([]Cell, width*height)
	}
	g.Clear()
	return changed
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Set writes a glyph into the grid. Out-of-bounds writes are dropped.
func (g *Grid) Set(row, col int, glyph rune, color Color) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return
	}
	g.cells[row*g.width+col] = Cell{Glyph: glyph, Color: color}
}

// Overlay writes only into cells that are still blank, so background
// decorations never obscure foreground content.
func (g *Grid) Overlay(row, col int, glyph rune, color Color) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return
	}
	if g.cells[row*g.width+col].Glyph != 0 {
		return
	}
	g.cells[row*g.width+col] = Cell{Glyph: glyph, Color: color}
}

// At returns the cell at (row, col) and whether the position is in bounds.
func (g *Grid) At(row, col int) (Cell, bool) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return Cell{}, false
	}
	return g.cells[row*g.width+col], true
}

// Clear blanks the whole grid.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

// ClearRect blanks a rectangular region, clipped to the grid.
func (g *Grid) ClearRect(row, col, height, width int) {
	for r := row; r < row+height; r++ {
		if r < 0 || r >= g.height {
			continue
		}
		for c := col; c < col+width; c++ {
			if c < 0 || c >= g.width {
				continue
			}
			g.cells[r*g.width+c] = Cell{}
		}
	}
}

// VBar fills a column from the bottom with a vertical bar of the given
// normalized level. Cells fully inside the bar use the solid glyph; the tip
// cell picks a partial tier so bars read as anti-aliased.
func (g *Grid) VBar(col int, level float64, set GlyphSet, color Color) {
	level = clamp01(level)
	filled := level * float64(g.height)
	for row := range g.height {
		fromBottom := float64(g.height - 1 - row)
		switch {
		case filled > fromBottom+1:
			g.Set(row, col, set.Solid, color)
		case filled > fromBottom:
			frac := filled - fromBottom
			g.Set(row, col, Tier(set.Bar, frac), color)
		}
	}
}

// String renders the grid as ANSI-colored lines. Blank cells emit a plain
// space without touching the color state, keeping output compact.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.width*g.height + g.height)
	color := newANSIState()
	for row := range g.height {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range g.width {
			cell := g.cells[row*g.width+col]
			if cell.Glyph == 0 || cell.Glyph == ' ' {
				sb.WriteByte(' ')
				continue
			}
			if int(cell.Color) < len(palette) {
				color.set(&sb, palette[cell.Color])
			}
			sb.WriteRune(cell.Glyph)
		}
		color.reset(&sb)
	}
	return sb.String()
}
