package export

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/san-kum/plexus/internal/palette"
	"github.com/san-kum/plexus/internal/render"
)

// FrameToSVG writes the frame held by rec as an SVG document. Lines keep
// their gradient, width and opacity; circles are filled in particle colour.
func FrameToSVG(w io.Writer, rec *render.Recorder, bg color.RGBA) error {
	bw := bufio.NewWriter(w)
	width, height := int(math.Ceil(rec.Width)), int(math.Ceil(rec.Height))

	canvas := svg.New(bw)
	canvas.Start(width, height)
	canvas.Title("plexus")
	canvas.Rect(0, 0, width, height, canvas.RGB(int(bg.R), int(bg.G), int(bg.B)))

	canvas.Def()
	for i, l := range rec.Lines {
		// svgo's LinearGradient only takes bounding-box percentages, which
		// collapse on horizontal and vertical lines.
		fmt.Fprintf(canvas.Writer,
			`<linearGradient id="g%d" gradientUnits="userSpaceOnUse" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f">`+
				`<stop offset="0" stop-color="%s"/><stop offset="1" stop-color="%s"/></linearGradient>`+"\n",
			i, l.X0, l.Y0, l.X1, l.Y1, palette.Hex(l.From), palette.Hex(l.To))
	}
	canvas.DefEnd()

	// svgo's shape helpers take ints; lines and circles keep the same
	// precision as their gradients.
	canvas.Gid("connections")
	for i, l := range rec.Lines {
		fmt.Fprintf(canvas.Writer,
			`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" style="stroke:url(#g%d);stroke-width:%.3f;stroke-opacity:%.3f" />`+"\n",
			l.X0, l.Y0, l.X1, l.Y1, i, l.Width, l.Alpha)
	}
	canvas.Gend()

	canvas.Gid("particles")
	for _, c := range rec.Circles {
		fmt.Fprintf(canvas.Writer, `<circle cx="%.2f" cy="%.2f" r="%.2f" style="fill:%s" />`+"\n",
			c.X, c.Y, c.Radius, palette.Hex(c.Fill))
	}
	canvas.Gend()
	canvas.End()

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
