package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/plexus/internal/render"
)

// Surface draws scene calls with raylib inside BeginDrawing/EndDrawing.
type Surface struct {
	Background rl.Color
}

func (s *Surface) Clear(width, height float64) {
	rl.ClearBackground(s.Background)
}

func (s *Surface) FillCircle(x, y, radius float64, fill color.RGBA) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(radius), toColor(fill))
}

func (s *Surface) StrokeLine(x0, y0, x1, y1 float64, from, to color.RGBA, width, alpha float64) {
	// raylib has no gradient stroke.
	for _, seg := range render.Split(x0, y0, x1, y1, from, to, alpha) {
		rl.DrawLineEx(
			rl.NewVector2(float32(seg.X0), float32(seg.Y0)),
			rl.NewVector2(float32(seg.X1), float32(seg.Y1)),
			float32(width),
			toColor(seg.Color),
		)
	}
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
