// Package palette provides the ordered color palettes used for
// depth-to-color mapping.
//
// A configured palette holds up to MaxColors entries, each of which can be
// enabled or disabled independently. The effective palette is the ordered
// subset of enabled entries; nesting depths map onto it modulo its length.
package palette

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxColors is the maximum number of configurable palette entries.
const MaxColors = 9

// Color represents an RGB color value.
type Color struct {
	R, G, B uint8
}

// ParseHex parses a hex color string.
// Supports formats: "#RGB", "#RRGGBB", "RGB", "RRGGBB".
func ParseHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b uint64
	var err error

	switch len(hex) {
	case 3:
		// Short form: RGB -> RRGGBB
		r, err = strconv.ParseUint(string(hex[0])+string(hex[0]), 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		g, err = strconv.ParseUint(string(hex[1])+string(hex[1]), 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		b, err = strconv.ParseUint(string(hex[2])+string(hex[2]), 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}

	case 6:
		// Full form: RRGGBB
		r, err = strconv.ParseUint(hex[0:2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		g, err = strconv.ParseUint(hex[2:4], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		b, err = strconv.ParseUint(hex[4:6], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}

	default:
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// Hex returns the "#RRGGBB" representation of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String returns a string representation of the color.
func (c Color) String() string {
	return c.Hex()
}

// Entry is a single configurable palette slot.
type Entry struct {
	Color   Color
	Enabled bool
}

// Palette is an ordered list of colors used for depth-to-color mapping.
// It is immutable after construction and safe for concurrent reads.
type Palette struct {
	colors []Color
}

// New builds an effective palette from configured entries, keeping only
// enabled entries in their original relative order.
func New(entries []Entry) *Palette {
	colors := make([]Color, 0, len(entries))
	for _, e := range entries {
		if e.Enabled {
			colors = append(colors, e.Color)
		}
	}
	return &Palette{colors: colors}
}

// FromColors builds a palette from an explicit color list, all enabled.
func FromColors(colors []Color) *Palette {
	out := make([]Color, len(colors))
	copy(out, colors)
	return &Palette{colors: out}
}

// FromHexes builds a palette from hex color strings, all enabled.
func FromHexes(hexes []string) (*Palette, error) {
	colors := make([]Color, 0, len(hexes))
	for i, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		colors = append(colors, c)
	}
	return &Palette{colors: colors}, nil
}

// Len returns the number of effective colors.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.colors)
}

// IsEmpty reports whether the palette has no effective colors.
func (p *Palette) IsEmpty() bool {
	return p.Len() == 0
}

// At returns the color at position i. It panics if i is out of range;
// callers index with values already reduced modulo Len.
func (p *Palette) At(i int) Color {
	return p.colors[i]
}

// ColorFor returns the color for a color index produced by the highlight
// generator. The index is expected to be in [0, Len); larger indexes wrap
// modulo Len and negative ones clamp to the first slot.
func (p *Palette) ColorFor(index int) Color {
	n := p.Len()
	if n == 0 {
		return Color{}
	}
	if index < 0 {
		index = 0
	}
	return p.colors[index%n]
}

// Colors returns a copy of the effective color list.
func (p *Palette) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// defaultHexes are the built-in rainbow colors, outermost depth first.
var defaultHexes = [MaxColors]string{
	"#D16969", // red
	"#CE9178", // orange
	"#D7BA7D", // gold
	"#DCDCAA", // yellow
	"#6A9955", // green
	"#4EC9B0", // teal
	"#569CD6", // blue
	"#9CDCFE", // light blue
	"#C586C0", // purple
}

// DefaultEntries returns the built-in palette configuration with every
// entry enabled.
func DefaultEntries() []Entry {
	entries := make([]Entry, MaxColors)
	for i, h := range defaultHexes {
		c, err := ParseHex(h)
		if err != nil {
			// Built-in codes are compile-time constants; a parse failure
			// here is a programming error.
			panic(fmt.Sprintf("palette: bad built-in color %q: %v", h, err))
		}
		entries[i] = Entry{Color: c, Enabled: true}
	}
	return entries
}

// Default returns the effective palette built from DefaultEntries.
func Default() *Palette {
	return New(DefaultEntries())
}
