// Package config persists the visualizer's user-facing settings between
// runs: active mode, color scheme, adaptive EQ mode, and the ascii glyph
// flag. Older releases stored numeric indices; those files still load.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EQMode selects the adaptive EQ blend strength.
type EQMode int

const (
	EQOff EQMode = iota
	EQMedium
	EQStrong
)

var eqNames = [...]string{"off", "medium", "strong"}

func (m EQMode) String() string {
	if m < EQOff || m > EQStrong {
		return "medium"
	}
	return eqNames[m]
}

// Next cycles off → medium → strong → off.
func (m EQMode) Next() EQMode {
	return (m + 1) % 3
}

// Strength maps the mode onto the adaptive EQ blend strength.
func (m EQMode) Strength() float64 {
	switch m {
	case EQMedium:
		return 0.4
	case EQStrong:
		return 0.65
	default:
		return 0
	}
}

func eqModeByName(name string) (EQMode, bool) {
	for i, n := range eqNames {
		if n == name {
			return EQMode(i), true
		}
	}
	return EQMedium, false
}

// Config is the persisted settings record.
type Config struct {
	Mode   string `json:"mode"`
	Scheme string `json:"scheme"`
	EQ     string `json:"eq"`
	ASCII  bool   `json:"ascii"`

	// Legacy fields written by earlier releases; consulted only when the
	// named fields above are absent.
	LegacyMode   *int `json:"current_mode,omitempty"`
	LegacyScheme *int `json:"current_color_scheme,omitempty"`
	LegacyEQ     *int `json:"adaptive_eq_mode,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{Mode: "bars", Scheme: "multicolor", EQ: EQMedium.String()}
}

// DefaultPath returns ~/.auviz/config.json, or a relative fallback when the
// home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(home, ".auviz", "config.json")
}

// Load reads the config at path. Missing or malformed files yield defaults;
// configuration is never a fatal concern.
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// Save writes the config, creating the parent directory as needed.
func (c Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	c.LegacyMode = nil
	c.LegacyScheme = nil
	c.LegacyEQ = nil
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ResolveMode maps the stored mode onto the current mode list. Unknown names
// fall back to a legacy numeric index when present: index 1 referenced a
// since-removed mode and maps to 0, higher indices shift down by one, and
// everything clamps into range.
func (c Config) ResolveMode(modes []string) string {
	if len(modes) == 0 {
		return ""
	}
	for _, m := range modes {
		if m == c.Mode {
			return c.Mode
		}
	}
	if c.LegacyMode != nil {
		idx := *c.LegacyMode
		if idx == 1 {
			idx = 0
		} else if idx > 1 {
			idx--
		}
		if idx < 0 {
			idx = 0
		}
		if idx >= len(modes) {
			idx = len(modes) - 1
		}
		return modes[idx]
	}
	return modes[0]
}

// ResolveScheme maps the stored scheme name, or a legacy index, onto the
// scheme list.
func (c Config) ResolveScheme(schemes []string) string {
	if len(schemes) == 0 {
		return ""
	}
	for _, s := range schemes {
		if s == c.Scheme {
			return c.Scheme
		}
	}
	if c.LegacyScheme != nil {
		idx := *c.LegacyScheme
		if idx >= 0 && idx < len(schemes) {
			return schemes[idx]
		}
	}
	return schemes[0]
}

// ResolveEQ returns the EQ mode, honoring the legacy numeric field.
func (c Config) ResolveEQ() EQMode {
	if m, ok := eqModeByName(c.EQ); ok {
		return m
	}
	if c.LegacyEQ != nil && *c.LegacyEQ >= 0 && *c.LegacyEQ <= 2 {
		return EQMode(*c.LegacyEQ)
	}
	return EQMedium
}
