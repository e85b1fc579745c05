package render

import "image/color"

// Circle is a recorded FillCircle call.
type Circle struct {
	X, Y, Radius float64
	Fill         color.RGBA
}

// Line is a recorded StrokeLine call.
type Line struct {
	X0, Y0, X1, Y1 float64
	From, To       color.RGBA
	Width, Alpha   float64
}

// Recorder is a Surface that keeps the calls of the current frame.
// Clear starts a new frame.
type Recorder struct {
	Width, Height float64
	Circles       []Circle
	Lines         []Line
	Frames        int
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Clear(width, height float64) {
	r.Width, r.Height = width, height
	r.Circles = r.Circles[:0]
	r.Lines = r.Lines[:0]
	r.Frames++
}

func (r *Recorder) FillCircle(x, y, radius float64, fill color.RGBA) {
	r.Circles = append(r.Circles, Circle{X: x, Y: y, Radius: radius, Fill: fill})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64, from, to color.RGBA, width, alpha float64) {
	r.Lines = append(r.Lines, Line{
		X0: x0, Y0: y0, X1: x1, Y1: y1,
		From: from, To: to,
		Width: width, Alpha: alpha,
	})
}
