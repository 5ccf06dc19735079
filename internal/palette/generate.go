package palette

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/opencode-ai/swatch/internal/color"
)

// Seed is the small set of colors a base theme is defined by.
type Seed struct {
	Background color.Color
	Text       color.Color
	Primary    color.Color
	Success    color.Color
	Danger     color.Color
}

// Generate expands a seed into a full extended palette.
//
// Background variants mix toward the text color, secondary is derived from the
// background, and the accent usages (primary, success, danger) get a weak
// variant mixed toward the background and a strong variant shifted in
// lightness away from the middle.
func Generate(seed Seed) Extended {
	bg := seed.Background.Colorful()
	text := seed.Text.Colorful()

	secondary := mix(bg, text, 0.2)

	slots := map[Usage][variantCount]colorful.Color{
		Background: {bg, mix(bg, text, 0.15), mix(bg, text, 0.40)},
		Secondary:  {secondary, mix(secondary, text, 0.1), mix(secondary, text, 0.3)},
		Primary:    accent(seed.Primary.Colorful(), bg),
		Success:    accent(seed.Success.Colorful(), bg),
		Danger:     accent(seed.Danger.Colorful(), bg),
	}

	return FromPairs(func(role Role) Pair {
		return NewPair(color.FromColorful(slots[role.Usage][role.Variant]))
	})
}

func accent(base, bg colorful.Color) [variantCount]colorful.Color {
	return [variantCount]colorful.Color{base, mix(base, bg, 0.4), deviate(base, 0.1)}
}

// mix interpolates linearly in sRGB.
func mix(a, b colorful.Color, factor float64) colorful.Color {
	return a.BlendRgb(b, factor)
}

func isDark(c colorful.Color) bool {
	_, _, l := c.Hsl()
	return l < 0.6
}

func deviate(c colorful.Color, amount float64) colorful.Color {
	h, s, l := c.Hsl()
	if isDark(c) {
		l += amount
	} else {
		l -= amount
	}
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	return colorful.Hsl(h, s, l)
}
