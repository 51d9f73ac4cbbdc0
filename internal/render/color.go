package render

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/tvguide/internal/grid"
)

//go:embed palettes/*.toml
var embeddedPalettes embed.FS

const (
	// ShadeHex fills the header row and the time-label columns.
	ShadeHex = "#D3D3D3"
	// PlainHex fills program cells when color is off and cells without a program.
	PlainHex = "#FFFFFF"

	defaultPalette = "classic"
)

// ErrEmptyPalette is returned for palettes without colors.
var ErrEmptyPalette = errors.New("palette has no colors")

// Palette is a named list of program cell colors.
type Palette struct {
	Name   string   `toml:"name"`
	Colors []string `toml:"colors"`
}

// LoadPalette loads a palette by name from embedded files.
// Falls back to classic if the palette is not found.
func LoadPalette(name string) (*Palette, error) {
	if name == "" {
		name = defaultPalette
	}
	name = strings.ToLower(name)

	data, err := embeddedPalettes.ReadFile("palettes/" + name + ".toml")
	if err != nil {
		if name != defaultPalette {
			return LoadPalette(defaultPalette)
		}
		return nil, fmt.Errorf("loading palette %q: %w", name, err)
	}

	var p Palette
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing palette %q: %w", name, err)
	}
	if len(p.Colors) == 0 {
		return nil, fmt.Errorf("palette %q: %w", name, ErrEmptyPalette)
	}
	return &p, nil
}

// AvailablePalettes returns the embedded palette names.
func AvailablePalettes() []string {
	return []string{"classic", "pastel", "mono"}
}

// ColorEnabled reports whether colored output should be used: the caller
// asked for it and NO_COLOR is not set.
func ColorEnabled(requested bool) bool {
	return requested && !termenv.EnvNoColor()
}

// ColorPolicy maps a placement style to its fill color.
//
// Header and time-label cells are always shaded. Program cells take
// palette[col % (n-2)] for palettes of more than two colors, which keeps the
// last two entries out of the weekday rotation. Everything else is plain.
type ColorPolicy struct {
	colors  []colorful.Color
	shade   colorful.Color
	plain   colorful.Color
	enabled bool
}

// NewColorPolicy parses the palette. With enabled false every program cell is plain.
func NewColorPolicy(p *Palette, enabled bool) (*ColorPolicy, error) {
	if p == nil || len(p.Colors) == 0 {
		return nil, ErrEmptyPalette
	}
	cp := &ColorPolicy{enabled: enabled}
	for _, hex := range p.Colors {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette %q color %q: %w", p.Name, hex, err)
		}
		cp.colors = append(cp.colors, c)
	}
	cp.shade, _ = colorful.Hex(ShadeHex)
	cp.plain, _ = colorful.Hex(PlainHex)
	return cp, nil
}

// Enabled reports whether program cells are colored.
func (c *ColorPolicy) Enabled() bool {
	return c.enabled
}

func (c *ColorPolicy) color(s grid.Style) colorful.Color {
	switch {
	case s.Shaded:
		return c.shade
	case s.Kind != grid.KindProgram || !c.enabled:
		return c.plain
	}
	n := len(c.colors)
	if n > 2 {
		n -= 2
	}
	return c.colors[s.Column%n]
}

// Hex returns the fill color as "#rrggbb".
func (c *ColorPolicy) Hex(s grid.Style) string {
	return c.color(s).Hex()
}

// RGB returns the fill color as 8-bit channels.
func (c *ColorPolicy) RGB(s grid.Style) (r, g, b uint8) {
	return c.color(s).RGB255()
}
