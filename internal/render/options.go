// Package render draws boards as SVG documents and raster images.
package render

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hailam/chessboard/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare color.RGBA
	DarkSquare  color.RGBA
	Highlight   color.RGBA
	WhitePiece  color.RGBA
	BlackPiece  color.RGBA
	Background  color.RGBA
	TextColor   color.RGBA
}

// Themes holds the built-in color schemes by name.
var Themes = map[string]Theme{
	"brown": {
		LightSquare: color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:  color.RGBA{181, 136, 99, 255},  // Brown
		Highlight:   color.RGBA{247, 247, 105, 255}, // Yellow
		WhitePiece:  color.RGBA{250, 250, 250, 255},
		BlackPiece:  color.RGBA{30, 30, 30, 255},
		Background:  color.RGBA{40, 44, 52, 255}, // Dark gray
		TextColor:   color.RGBA{220, 220, 220, 255},
	},
	"green": {
		LightSquare: color.RGBA{238, 238, 210, 255},
		DarkSquare:  color.RGBA{118, 150, 86, 255},
		Highlight:   color.RGBA{186, 202, 68, 255},
		WhitePiece:  color.RGBA{250, 250, 250, 255},
		BlackPiece:  color.RGBA{30, 30, 30, 255},
		Background:  color.RGBA{48, 46, 43, 255},
		TextColor:   color.RGBA{220, 220, 220, 255},
	},
	"gray": {
		LightSquare: color.RGBA{200, 200, 200, 255},
		DarkSquare:  color.RGBA{120, 120, 120, 255},
		Highlight:   color.RGBA{130, 151, 105, 255},
		WhitePiece:  color.RGBA{255, 255, 255, 255},
		BlackPiece:  color.RGBA{0, 0, 0, 255},
		Background:  color.RGBA{255, 255, 255, 255},
		TextColor:   color.RGBA{0, 0, 0, 255},
	},
}

// DefaultTheme is the theme used when none is named.
const DefaultTheme = "brown"

// ThemeNames returns the built-in theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupTheme returns the named theme.
func LookupTheme(name string) (Theme, error) {
	t, ok := Themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (have %v)", name, ThemeNames())
	}
	return t, nil
}

// Options controls how a board is drawn.
type Options struct {
	SquareSize  int            // Pixels per square
	Flipped     bool           // Draw from Black's side
	Coordinates bool           // Draw file and rank labels in a margin
	Theme       Theme
	Highlight   board.Bitboard // Squares drawn in Theme.Highlight
}

// DefaultOptions returns 60px squares, White at the bottom, with coordinates.
func DefaultOptions() Options {
	return Options{
		SquareSize:  60,
		Coordinates: true,
		Theme:       Themes[DefaultTheme],
	}
}

// margin returns the width of the coordinate border.
func (o Options) margin() int {
	if !o.Coordinates {
		return 0
	}
	return 20
}

// Size returns the width and height of the drawing in pixels.
func Size(o Options) int {
	return 8*o.SquareSize + 2*o.margin()
}

// squareOrigin returns the top-left pixel of sq.
func (o Options) squareOrigin(sq board.Square) (x, y int) {
	col, row := sq.File(), 7-sq.Rank()
	if o.Flipped {
		col, row = 7-col, 7-row
	}
	return o.margin() + col*o.SquareSize, o.margin() + row*o.SquareSize
}

// SquareAt returns the square under pixel (x, y).
// ok is false outside the 8x8 grid.
func SquareAt(o Options, x, y int) (board.Square, bool) {
	x -= o.margin()
	y -= o.margin()
	if x < 0 || y < 0 || o.SquareSize <= 0 {
		return board.NoSquare, false
	}
	col, row := x/o.SquareSize, y/o.SquareSize
	if o.Flipped {
		col, row = 7-col, 7-row
	}
	return board.SquareFromCoords(col, 7-row)
}

// isLight reports whether sq is a light square (h1 is light).
func isLight(sq board.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
