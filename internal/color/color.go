// Package color provides the color value, parser and contrast helpers used by
// the theme editor.
package color

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrOutOfRange is returned when a channel is outside [0,1].
var ErrOutOfRange = errors.New("color channel out of range")

// Color is an opaque RGB color with each channel normalized to [0,1].
// The zero value is black.
type Color struct {
	r, g, b float64
}

// New builds a color from normalized channels. Channels outside [0,1] and NaN
// are rejected rather than clamped.
func New(r, g, b float64) (Color, error) {
	for _, ch := range []float64{r, g, b} {
		if math.IsNaN(ch) || ch < 0 || ch > 1 {
			return Color{}, fmt.Errorf("%w: (%g, %g, %g)", ErrOutOfRange, r, g, b)
		}
	}
	return Color{r: r, g: g, b: b}, nil
}

// RGB255 builds a color from 8-bit channels.
func RGB255(r, g, b uint8) Color {
	return Color{
		r: float64(r) / 255,
		g: float64(g) / 255,
		b: float64(b) / 255,
	}
}

// FromHex expands a packed 0xRRGGBB integer. Bits above the low 24 are ignored.
func FromHex(value uint32) Color {
	return RGB255(uint8(value>>16), uint8(value>>8), uint8(value))
}

// FromColorful converts a go-colorful color, clamping it into gamut first.
func FromColorful(c colorful.Color) Color {
	c = c.Clamped()
	return Color{r: c.R, g: c.G, b: c.B}
}

// R returns the red channel in [0,1].
func (c Color) R() float64 { return c.r }

// G returns the green channel in [0,1].
func (c Color) G() float64 { return c.g }

// B returns the blue channel in [0,1].
func (c Color) B() float64 { return c.b }

// RGB255 returns the channels scaled to 0-255 and rounded to the nearest integer.
func (c Color) RGB255() (uint8, uint8, uint8) {
	return scale(c.r), scale(c.g), scale(c.b)
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// String formats the color as "rgb(R, G, B)".
func (c Color) String() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// Colorful returns the go-colorful representation for color math.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.r, G: c.g, B: c.b}
}

func scale(ch float64) uint8 {
	return uint8(math.Round(ch * 255))
}
