package render

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/hailam/chessboard/internal/board"
)

// SVG writes the board as an SVG document.
// Pieces are discs in the piece color carrying the piece letter.
func SVG(w io.Writer, b board.Board, o Options) error {
	var buf bytes.Buffer
	writeSVG(&buf, b, o, true)
	_, err := buf.WriteTo(w)
	return err
}

// writeSVG draws the board with svgo. Text is left out when withText is
// false; the rasterizer cannot draw it and labels are added afterwards.
func writeSVG(w io.Writer, b board.Board, o Options, withText bool) {
	size := Size(o)
	canvas := svg.New(w)
	canvas.Startview(size, size, 0, 0, size, size)
	canvas.Rect(0, 0, size, size, "fill:"+hex(o.Theme.Background))

	canvas.Gid("squares")
	for i := 0; i < 64; i++ {
		sq, _ := board.NewSquare(i)
		x, y := o.squareOrigin(sq)
		fill := o.Theme.DarkSquare
		if isLight(sq) {
			fill = o.Theme.LightSquare
		}
		canvas.Rect(x, y, o.SquareSize, o.SquareSize, "fill:"+hex(fill))
	}
	canvas.Gend()

	if !o.Highlight.IsEmpty() {
		canvas.Gid("highlight")
		hl := o.Highlight
		for sq, ok := hl.PopLSB(); ok; sq, ok = hl.PopLSB() {
			x, y := o.squareOrigin(sq)
			canvas.Rect(x, y, o.SquareSize, o.SquareSize, "fill:"+hex(o.Theme.Highlight))
		}
		canvas.Gend()
	}

	canvas.Gid("pieces")
	r := o.SquareSize * 2 / 5
	b.CombinedOccupancy().ForEach(func(sq board.Square) {
		p := b.PieceAt(sq)
		fill, ink := pieceColors(o.Theme, p.Color())
		x, y := o.squareOrigin(sq)
		cx, cy := x+o.SquareSize/2, y+o.SquareSize/2

		canvas.Circle(cx, cy, r, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:2", hex(fill), hex(ink)))
		if withText {
			canvas.Text(cx, cy+o.SquareSize/6, letter(p),
				fmt.Sprintf("fill:%s;font-family:sans-serif;font-weight:bold;font-size:%dpx;text-anchor:middle",
					hex(ink), o.SquareSize/2))
		}
	})
	canvas.Gend()

	if withText && o.Coordinates {
		canvas.Gid("coordinates")
		style := fmt.Sprintf("fill:%s;font-family:sans-serif;font-size:12px;text-anchor:middle", hex(o.Theme.TextColor))
		for _, l := range labels(o) {
			canvas.Text(l.x, l.y+4, l.text, style)
		}
		canvas.Gend()
	}

	canvas.End()
}

// pieceColors returns the disc fill and the ink for letters and outline.
func pieceColors(t Theme, c board.Color) (fill, ink color.RGBA) {
	if c == board.White {
		return t.WhitePiece, t.BlackPiece
	}
	return t.BlackPiece, t.WhitePiece
}

// letter returns the uppercase letter of the piece type.
func letter(p board.Piece) string {
	return strings.ToUpper(string(p.Type().Char()))
}

// label is a coordinate label centered on (x, y).
type label struct {
	x, y int
	text string
}

// labels returns the file letters under the board and the rank numbers to
// its left.
func labels(o Options) []label {
	m := o.margin()
	out := make([]label, 0, 16)
	for i := 0; i < 8; i++ {
		fileSq, _ := board.SquareFromCoords(i, 0)
		x, _ := o.squareOrigin(fileSq)
		out = append(out, label{x + o.SquareSize/2, Size(o) - m/2, string(rune('a' + i))})

		rankSq, _ := board.SquareFromCoords(0, i)
		_, y := o.squareOrigin(rankSq)
		out = append(out, label{m / 2, y + o.SquareSize/2, string(rune('1' + i))})
	}
	return out
}
