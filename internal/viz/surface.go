package viz

import (
	"image/color"
	"math"

	"github.com/san-kum/plexus/internal/palette"
)

// minAlpha drops lines too faint to read on a braille grid.
const minAlpha = 0.08

// BrailleSurface paints scene calls onto a Canvas. Scale is the number of
// world units per braille dot.
type BrailleSurface struct {
	Canvas *Canvas
	Scale  float64
}

func NewBrailleSurface(c *Canvas, scale float64) *BrailleSurface {
	if scale <= 0 {
		scale = 1
	}
	return &BrailleSurface{Canvas: c, Scale: scale}
}

// WorldSize is the scene size the canvas covers.
func (s *BrailleSurface) WorldSize() (float64, float64) {
	return float64(s.Canvas.DotWidth()) * s.Scale, float64(s.Canvas.DotHeight()) * s.Scale
}

// ToWorld maps a terminal cell to the world point at its centre.
func (s *BrailleSurface) ToWorld(col, row int) (float64, float64) {
	return (float64(col)*2 + 1) * s.Scale, (float64(row)*4 + 2) * s.Scale
}

func (s *BrailleSurface) Clear(width, height float64) {
	s.Canvas.Clear()
}

func (s *BrailleSurface) FillCircle(x, y, radius float64, fill color.RGBA) {
	r := int(math.Round(radius / s.Scale))
	s.Canvas.FillCircle(s.dot(x), s.dot(y), r, fill)
}

func (s *BrailleSurface) StrokeLine(x0, y0, x1, y1 float64, from, to color.RGBA, width, alpha float64) {
	if alpha < minAlpha {
		return
	}
	s.Canvas.DrawLine(s.dot(x0), s.dot(y0), s.dot(x1), s.dot(y1), func(t float64) color.RGBA {
		return palette.Fade(palette.Lerp(from, to, t), alpha)
	})
}

func (s *BrailleSurface) dot(v float64) int {
	return int(math.Floor(v / s.Scale))
}
