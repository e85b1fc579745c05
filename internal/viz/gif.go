package viz

import (
	"fmt"
	"image"
	"image/color"
	plan9 "image/color/palette"
	"image/gif"
	"io"
	"os"
)

const (
	dotPixels = 4
	// gifDelay is in hundredths of a second.
	gifDelay = 3
)

// GIFRecorder collects canvas frames for an animated GIF.
type GIFRecorder struct {
	Background color.RGBA
	frames     []*image.Paletted
}

func NewGIFRecorder(bg color.RGBA) *GIFRecorder {
	return &GIFRecorder{Background: bg}
}

func (g *GIFRecorder) Len() int { return len(g.frames) }

// Capture rasterises every lit dot of the canvas as a square in its cell's
// colour.
func (g *GIFRecorder) Capture(c *Canvas) {
	w, h := c.DotWidth()*dotPixels, c.DotHeight()*dotPixels
	// GIF palettes hold at most 256 entries; the background takes one.
	pal := make(color.Palette, 0, 256)
	pal = append(pal, g.Background)
	pal = append(pal, plan9.Plan9[:255]...)
	img := image.NewPaletted(image.Rect(0, 0, w, h), pal)

	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			if c.Grid[row][col] == blank {
				continue
			}
			idx := uint8(pal.Index(c.Colors[row][col]))
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					x, y := col*2+dx, row*4+dy
					if !c.On(x, y) {
						continue
					}
					for py := 0; py < dotPixels; py++ {
						for px := 0; px < dotPixels; px++ {
							img.SetColorIndex(x*dotPixels+px, y*dotPixels+py, idx)
						}
					}
				}
			}
		}
	}
	g.frames = append(g.frames, img)
}

// Encode writes the captured frames as a looping GIF.
func (g *GIFRecorder) Encode(w io.Writer) error {
	if len(g.frames) == 0 {
		return fmt.Errorf("gif: no frames captured")
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, gifDelay)
	}
	return gif.EncodeAll(w, &anim)
}

// Save writes the recording to path and drops the captured frames.
func (g *GIFRecorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := g.Encode(f); err != nil {
		return err
	}
	g.frames = nil
	return nil
}
