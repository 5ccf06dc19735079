package color

// Fixed foregrounds returned by ContrastFor.
var (
	NearBlack = RGB255(10, 10, 10)
	NearWhite = RGB255(235, 235, 235)
)

// BrightnessThreshold is the inclusive lower bound for a "light" background.
const BrightnessThreshold = 128.0

// Brightness returns the weighted luma of c on a 0-255 scale, computed on the
// rounded 8-bit channels.
func Brightness(c Color) float64 {
	r, g, b := c.RGB255()
	return float64(299*int(r)+587*int(g)+114*int(b)) / 1000
}

// ContrastFor picks a legible foreground for the given background.
func ContrastFor(background Color) Color {
	if Brightness(background) >= BrightnessThreshold {
		return NearBlack
	}
	return NearWhite
}
