// Package sdlview hosts the scene in an SDL window through an HTML5-style
// canvas, the closest match to a browser drawing surface.
package sdlview

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/sdlcanvas"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/san-kum/plexus/internal/scene"
)

// Surface maps scene calls one-to-one onto canvas calls.
type Surface struct {
	cv *canvas.Canvas
}

func NewSurface(cv *canvas.Canvas) *Surface {
	return &Surface{cv: cv}
}

func (s *Surface) Clear(width, height float64) {
	s.cv.ClearRect(0, 0, width, height)
}

func (s *Surface) FillCircle(x, y, radius float64, fill color.RGBA) {
	s.cv.SetFillStyle(fill)
	s.cv.BeginPath()
	s.cv.Arc(x, y, radius, 0, math.Pi*2, false)
	s.cv.Fill()
	s.cv.ClosePath()
}

func (s *Surface) StrokeLine(x0, y0, x1, y1 float64, from, to color.RGBA, width, alpha float64) {
	s.cv.Save()
	grad := s.cv.CreateLinearGradient(x0, y0, x1, y1)
	grad.AddColorStop(0, from)
	grad.AddColorStop(1, to)
	s.cv.SetStrokeStyle(grad)
	s.cv.SetLineWidth(width)
	s.cv.SetGlobalAlpha(alpha)
	s.cv.BeginPath()
	s.cv.MoveTo(x0, y0)
	s.cv.LineTo(x1, y1)
	s.cv.Stroke()
	s.cv.Restore()
}

type Options struct {
	Width, Height int
}

// Run opens the window and blocks until it is closed. Frames are paced by
// the window's main loop, one per display refresh.
func Run(sceneOpts scene.Options, o Options) error {
	wnd, cv, err := sdlcanvas.CreateWindow(o.Width, o.Height, "plexus")
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer wnd.Destroy()

	sc := scene.New(float64(cv.Width()), float64(cv.Height()), sceneOpts)
	surf := NewSurface(cv)

	wnd.MouseMove = func(x, y int) {
		sc.PointerMove(float64(x), float64(y))
	}
	wnd.SizeChange = func(w, h int) {
		sc.Resize(float64(w), float64(h))
		log.Printf("resize: %dx%d", w, h)
	}
	wnd.Event = func(e sdl.Event) {
		if we, ok := e.(*sdl.WindowEvent); ok && we.Event == sdl.WINDOWEVENT_LEAVE {
			sc.PointerLeave()
		}
	}

	wnd.MainLoop(func() {
		sc.Frame(surf)
	})
	return nil
}
