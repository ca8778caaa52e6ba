package render

// GlyphSet groups the characters a mode draws with. The ascii variant exists
// for terminals and fonts that render block or star characters poorly.
type GlyphSet struct {
	// Bar tiers from empty to solid; vertical bars pick the tier matching the
	// fractional fill of the tip cell.
	Bar []rune
	// Spark tiers from faint to bright, used by particles.
	Spark []rune
	// Trail tiers from faint to bright, used by the trail buffer.
	Trail []rune
	// Solid is the full bar body glyph.
	Solid rune
	// Meter is the filled cell of a horizontal level meter.
	Meter rune
	// MeterEmpty is the unfilled remainder of a level meter.
	MeterEmpty rune
	// Dot is a dim single point (center lines, backgrounds).
	Dot rune
	// Wave is the oscilloscope trace glyph.
	Wave rune
	// Shade tiers from blank to solid, used by the gradient backdrop.
	Shade []rune
}

var unicodeGlyphs = GlyphSet{
	Bar:        []rune(" ▁▂▃▄▅▆▇█"),
	Spark:      []rune{'·', '•', '✧', '✦'},
	Trail:      []rune{'·', '•', '✳', '✶'},
	Solid:      '█',
	Meter:      '█',
	MeterEmpty: '░',
	Dot:        '·',
	Wave:       '│',
	Shade:      []rune(" ░▒▓█"),
}

var asciiGlyphs = GlyphSet{
	Bar:        []rune(" ..:-=+*#|"),
	Spark:      []rune{'.', '.', '+', '*'},
	Trail:      []rune{'.', '.', '+', '*'},
	Solid:      '|',
	Meter:      '#',
	MeterEmpty: '-',
	Dot:        '.',
	Wave:       '|',
	Shade:      []rune(" .:+#"),
}

// Glyphs returns the glyph set for the given rendering style.
func Glyphs(ascii bool) GlyphSet {
	if ascii {
		return asciiGlyphs
	}
	return unicodeGlyphs
}

// Tier picks one of a small ordered glyph ramp by intensity in [0,1].
func Tier(ramp []rune, intensity float64) rune {
	intensity = clamp01(intensity)
	idx := int(intensity * float64(len(ramp)-1))
	if idx >= len(ramp) {
		idx = len(ramp) - 1
	}
	return ramp[idx]
}
