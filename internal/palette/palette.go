// Package palette derives particle colours and blends them for surfaces
// that cannot stroke native gradients.
package palette

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Hue returns the harmonic hue for particle index out of count,
// normalised to [0, 360).
func Hue(index, count int) float64 {
	h := (float64(count) / float64(index+1)) * 360 / math.Pi
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// HSL converts hue (degrees), saturation and lightness to an opaque RGBA.
func HSL(h, s, l float64) color.RGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ForIndex is the full-saturation, half-lightness colour of particle index.
func ForIndex(index, count int) (float64, color.RGBA) {
	h := Hue(index, count)
	return h, HSL(h, 1, 0.5)
}

// Lerp blends a towards b by t in RGB space. t is clamped to [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	ca, _ := colorful.MakeColor(opaque(a))
	cb, _ := colorful.MakeColor(opaque(b))
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.RGBA{R: r, G: g, B: bl, A: uint8(math.Round(alpha))}
}

// Fade scales the colour channels by alpha, blending towards black.
func Fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * alpha)),
		G: uint8(math.Round(float64(c.G) * alpha)),
		B: uint8(math.Round(float64(c.B) * alpha)),
		A: c.A,
	}
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	cc, _ := colorful.MakeColor(opaque(c))
	return cc.Hex()
}

// opaque forces full alpha; MakeColor refuses colours with zero alpha.
func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}
