package render

// Color is a discrete color identifier chosen by the ColorMapper. Zero means
// the terminal default.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlue
	ColorCyan
	ColorGreen
	ColorYellow
	ColorRed
	ColorMagenta
	ColorWhite
	ColorDim
)

// palette maps color identifiers to RGB for ANSI emission.
var palette = [...]colorRGB{
	ColorDefault: {R: 200, G: 200, B: 200},
	ColorBlue:    {R: 66, G: 120, B: 245},
	ColorCyan:    {R: 46, G: 196, B: 222},
	ColorGreen:   {R: 60, G: 224, B: 116},
	ColorYellow:  {R: 240, G: 198, B: 72},
	ColorRed:     {R: 242, G: 96, B: 86},
	ColorMagenta: {R: 205, G: 98, B: 220},
	ColorWhite:   {R: 235, G: 235, B: 235},
	ColorDim:     {R: 100, G: 105, B: 118},
}

// Scheme selects one of the fixed color mappings.
type Scheme int

const (
	SchemeMulticolor Scheme = iota
	SchemeBlue
	SchemeGreen
	SchemeRed
	SchemeRainbow
	SchemeFire
	SchemePrism
	SchemeHeat
	SchemeOcean
	schemeCount
)

var schemeNames = [...]string{
	SchemeMulticolor: "multicolor",
	SchemeBlue:       "blue",
	SchemeGreen:      "green",
	SchemeRed:        "red",
	SchemeRainbow:    "rainbow",
	SchemeFire:       "fire",
	SchemePrism:      "prism",
	SchemeHeat:       "heat",
	SchemeOcean:      "ocean",
}

func (s Scheme) String() string {
	if s < 0 || int(s) >= len(schemeNames) {
		return "multicolor"
	}
	return schemeNames[s]
}

// Next cycles to the following scheme.
func (s Scheme) Next() Scheme {
	return (s + 1) % schemeCount
}

// SchemeByName resolves a persisted scheme name, defaulting to multicolor.
func SchemeByName(name string) Scheme {
	for i, n := range schemeNames {
		if n == name {
			return Scheme(i)
		}
	}
	return SchemeMulticolor
}

// SchemeNames lists all selectable schemes in order.
func SchemeNames() []string {
	out := make([]string, len(schemeNames))
	copy(out, schemeNames[:])
	return out
}

// MapColor is a pure function from a normalized level, a horizontal position
// and a scheme to a discrete color. Some schemes key off level (fire, heat),
// some off position (rainbow, prism, ocean), and multicolor blends both.
func MapColor(level, position float64, scheme Scheme) Color {
	level = clamp01(level)
	position = clamp01(position)

	switch scheme {
	case SchemePrism:
		switch {
		case position < 0.16:
			return ColorRed
		case position < 0.32:
			return ColorYellow
		case position < 0.48:
			return ColorGreen
		case position < 0.64:
			return ColorCyan
		case position < 0.80:
			return ColorBlue
		default:
			return ColorMagenta
		}
	case SchemeRainbow:
		switch {
		case position < 0.2:
			return ColorRed
		case position < 0.4:
			return ColorYellow
		case position < 0.6:
			return ColorGreen
		case position < 0.8:
			return ColorCyan
		default:
			return ColorBlue
		}
	case SchemeMulticolor:
		blend := level*0.5 + position*0.5
		switch {
		case blend < 0.33:
			return ColorGreen
		case blend < 0.66:
			return ColorYellow
		default:
			return ColorRed
		}
	case SchemeBlue:
		switch {
		case level < 0.3:
			return ColorBlue
		case level < 0.7:
			return ColorCyan
		default:
			return ColorWhite
		}
	case SchemeGreen:
		if level < 0.5 {
			return ColorGreen
		}
		return ColorYellow
	case SchemeRed:
		if level < 0.5 {
			return ColorYellow
		}
		return ColorRed
	case SchemeFire:
		switch {
		case level < 0.3:
			return ColorRed
		case level < 0.6:
			return ColorYellow
		default:
			return ColorWhite
		}
	case SchemeHeat:
		switch {
		case level < 0.25:
			return ColorBlue
		case level < 0.5:
			return ColorGreen
		case level < 0.75:
			return ColorYellow
		default:
			return ColorRed
		}
	case SchemeOcean:
		switch {
		case position < 0.33:
			return ColorCyan
		case position < 0.66:
			return ColorBlue
		default:
			return ColorWhite
		}
	default:
		return ColorGreen
	}
}
