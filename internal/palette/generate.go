package palette

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Generation saturation/value chosen to sit comfortably on dark
// backgrounds without washing out on light ones.
const (
	genSaturation = 0.55
	genValue      = 0.85
)

// Generate returns a palette of n colors evenly spaced around the hue
// wheel at fixed saturation and value. Useful when the built-in colors
// clash with a terminal theme.
func Generate(n int) (*Palette, error) {
	if n < 1 || n > MaxColors {
		return nil, fmt.Errorf("palette size %d out of range [1, %d]", n, MaxColors)
	}

	colors := make([]Color, n)
	for i := range colors {
		hue := 360.0 * float64(i) / float64(n)
		colors[i] = fromColorful(colorful.Hsv(hue, genSaturation, genValue))
	}
	return FromColors(colors), nil
}

// GenerateSoft returns a palette of n perceptually distinct pastel
// colors. Unlike Generate, the colors are not ordered around the hue
// wheel; they are optimized for mutual distance in Lab space.
func GenerateSoft(n int) (*Palette, error) {
	if n < 1 || n > MaxColors {
		return nil, fmt.Errorf("palette size %d out of range [1, %d]", n, MaxColors)
	}

	cs, err := colorful.SoftPalette(n)
	if err != nil {
		return nil, fmt.Errorf("generate soft palette: %w", err)
	}

	colors := make([]Color, len(cs))
	for i, c := range cs {
		colors[i] = fromColorful(c)
	}
	return FromColors(colors), nil
}

// Distinct returns the minimum pairwise distance between the palette
// colors in Lab space. Distances below roughly 0.1 read as
// near-duplicates in a terminal. Palettes with fewer than two colors
// return 0.
func Distinct(p *Palette) float64 {
	if p.Len() < 2 {
		return 0
	}

	minDist := math.MaxFloat64
	for i := 0; i < p.Len(); i++ {
		for j := i + 1; j < p.Len(); j++ {
			d := toColorful(p.At(i)).DistanceLab(toColorful(p.At(j)))
			if d < minDist {
				minDist = d
			}
		}
	}
	return minDist
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
