package render

import (
	"image/color"
	"testing"
)

func TestRecorderClearStartsFrame(t *testing.T) {
	r := NewRecorder()
	var s Surface = r

	s.Clear(640, 480)
	s.FillCircle(10, 20, 5, color.RGBA{255, 0, 0, 255})
	s.StrokeLine(0, 0, 10, 10, color.RGBA{A: 255}, color.RGBA{A: 255}, 1.5, 0.5)

	if len(r.Circles) != 1 || len(r.Lines) != 1 {
		t.Fatalf("expected 1 circle and 1 line, got %d and %d", len(r.Circles), len(r.Lines))
	}
	if r.Width != 640 || r.Height != 480 {
		t.Errorf("expected 640x480, got %.0fx%.0f", r.Width, r.Height)
	}

	s.Clear(800, 600)
	if len(r.Circles) != 0 || len(r.Lines) != 0 {
		t.Error("clear should drop previous frame")
	}
	if r.Frames != 2 {
		t.Errorf("expected 2 frames, got %d", r.Frames)
	}
}

func TestRecorderKeepsArguments(t *testing.T) {
	r := NewRecorder()
	from := color.RGBA{1, 2, 3, 255}
	to := color.RGBA{4, 5, 6, 255}
	r.StrokeLine(1, 2, 3, 4, from, to, 2, 0.25)

	got := r.Lines[0]
	want := Line{X0: 1, Y0: 2, X1: 3, Y1: 4, From: from, To: to, Width: 2, Alpha: 0.25}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
