// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSLA is a CSS-style hue/saturation/lightness color with straight alpha.
// H is in degrees and may lie outside [0, 360); S, L and A are in [0, 1].
type HSLA struct {
	H, S, L, A float64
}

// HSL returns an opaque HSLA color. Saturation and lightness are given in percent,
// the same way a canvas color string spells them.
func HSL(h, sPercent, lPercent float64) HSLA {
	return HSLA{H: h, S: sPercent / 100, L: lPercent / 100, A: 1}
}

// HSLAColor is HSL with an explicit alpha.
func HSLAColor(h, sPercent, lPercent, alpha float64) HSLA {
	c := HSL(h, sPercent, lPercent)
	c.A = alpha
	return c
}

// RGBA implements color.Color. The result is alpha-premultiplied.
func (c HSLA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts to a non-premultiplied 8-bit color.
func (c HSLA) NRGBA() color.NRGBA {
	rgb := colorful.Hsl(WrapHue(c.H), clamp01(c.S), clamp01(c.L)).Clamped()
	r, g, b := rgb.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(c.A) * 255))}
}

// String renders the color the way a canvas context would accept it.
func (c HSLA) String() string {
	if c.A >= 1 {
		return fmt.Sprintf("hsl(%g, %g%%, %g%%)", c.H, c.S*100, c.L*100)
	}
	return fmt.Sprintf("hsla(%g, %g%%, %g%%, %g)", c.H, c.S*100, c.L*100, c.A)
}

// WrapHue maps any hue in degrees into [0, 360).
func WrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// Straight returns the non-premultiplied components of c scaled to [0, 1].
func Straight(c color.Color) (r, g, b, a float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float64(n.R) / 255, float64(n.G) / 255, float64(n.B) / 255, float64(n.A) / 255
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
