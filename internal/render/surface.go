package render

import "image/color"

// Surface is the drawing sink a scene paints onto. Implementations map
// the calls to a terminal canvas, a window, or a file.
type Surface interface {
	// Clear wipes the region [0, width) x [0, height).
	Clear(width, height float64)
	// FillCircle paints a solid disc.
	FillCircle(x, y, radius float64, fill color.RGBA)
	// StrokeLine strokes a segment with a linear gradient running from
	// `from` at (x0, y0) to `to` at (x1, y1), drawn at the given global alpha.
	StrokeLine(x0, y0, x1, y1 float64, from, to color.RGBA, width, alpha float64)
}
