package firefly

import (
	"fmt"
	"image/color"
)

// Color holds channel intensities in [0, 255). Channels are truncated toward
// zero when presented.
type Color struct {
	R, G, B float64
}

func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA returns the opaque presentation color.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 255}
}

// String returns the CSS form, e.g. "rgb(12, 200, 7)".
func (c Color) String() string {
	p := c.RGBA()
	return fmt.Sprintf("rgb(%d, %d, %d)", p.R, p.G, p.B)
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
