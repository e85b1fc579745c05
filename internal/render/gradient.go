package render

import (
	"image/color"
	"math"

	"github.com/san-kum/plexus/internal/palette"
)

const (
	segmentLength = 8.0
	maxSegments   = 16
)

// Segment is one solid-colour piece of a gradient line.
type Segment struct {
	X0, Y0, X1, Y1 float64
	Color          color.RGBA
}

// Split cuts a gradient line into solid segments for surfaces that can only
// stroke one colour at a time. Each segment takes the gradient colour at its
// midpoint and alpha in its A channel.
func Split(x0, y0, x1, y1 float64, from, to color.RGBA, alpha float64) []Segment {
	n := int(math.Ceil(math.Hypot(x1-x0, y1-y0) / segmentLength))
	n = max(1, min(n, maxSegments))
	a := uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 255))

	segs := make([]Segment, n)
	for i := range segs {
		t0, t1 := float64(i)/float64(n), float64(i+1)/float64(n)
		c := palette.Lerp(from, to, (t0+t1)/2)
		c.A = a
		segs[i] = Segment{
			X0: x0 + (x1-x0)*t0, Y0: y0 + (y1-y0)*t0,
			X1: x0 + (x1-x0)*t1, Y1: y0 + (y1-y0)*t1,
			Color: c,
		}
	}
	return segs
}
