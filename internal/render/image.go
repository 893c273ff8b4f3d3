package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/hailam/chessboard/internal/board"
)

// Image rasterizes the board. Squares and discs come from the SVG drawing;
// letters and coordinates are drawn on top with a bitmap font.
func Image(b board.Board, o Options) (*image.RGBA, error) {
	if o.SquareSize <= 0 {
		return nil, fmt.Errorf("render: square size must be positive, got %d", o.SquareSize)
	}

	var buf bytes.Buffer
	writeSVG(&buf, b, o, false)

	icon, err := oksvg.ReadIconStream(&buf, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("render: parse svg: %w", err)
	}

	size := Size(o)
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	face := basicfont.Face7x13
	b.CombinedOccupancy().ForEach(func(sq board.Square) {
		p := b.PieceAt(sq)
		_, ink := pieceColors(o.Theme, p.Color())
		x, y := o.squareOrigin(sq)
		drawCentered(rgba, face, ink, letter(p), x+o.SquareSize/2, y+o.SquareSize/2)
	})

	if o.Coordinates {
		for _, l := range labels(o) {
			drawCentered(rgba, face, o.Theme.TextColor, l.text, l.x, l.y)
		}
	}

	return rgba, nil
}

// PNG writes the rasterized board as a PNG image.
func PNG(w io.Writer, b board.Board, o Options) error {
	img, err := Image(b, o)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// drawCentered draws s with its center at (cx, cy).
func drawCentered(dst *image.RGBA, face font.Face, c color.RGBA, s string, cx, cy int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	width := d.MeasureString(s).Ceil()
	m := face.Metrics()
	height := (m.Ascent + m.Descent).Ceil()

	d.Dot = fixed.P(cx-width/2, cy-height/2+m.Ascent.Ceil())
	d.DrawString(s)
}
