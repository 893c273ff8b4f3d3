// Package viewer shows a board in a window using Ebitengine.
package viewer

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/render"
)

// Viewer implements ebiten.Game for a single board.
type Viewer struct {
	board board.Board
	opts  render.Options

	image    *ebiten.Image // cached rendering, nil when stale
	selected board.Square
}

// New creates a viewer for b.
func New(b board.Board, opts render.Options) *Viewer {
	return &Viewer{
		board:    b,
		opts:     opts,
		selected: board.NoSquare,
	}
}

// Flip turns the board around.
func (v *Viewer) Flip() {
	v.opts.Flipped = !v.opts.Flipped
	v.invalidate()
}

// Select highlights sq, or clears the highlight when sq is already selected.
func (v *Viewer) Select(sq board.Square) {
	if sq == v.selected {
		v.selected = board.NoSquare
	} else {
		v.selected = sq
	}
	v.invalidate()
}

// Options returns the current render options, including the selection.
func (v *Viewer) Options() render.Options {
	o := v.opts
	o.Highlight = o.Highlight.Union(board.SquareBB(v.selected))
	return o
}

func (v *Viewer) invalidate() {
	if v.image != nil {
		v.image.Deallocate()
		v.image = nil
	}
}

// Update handles input.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		v.Flip()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if sq, ok := render.SquareAt(v.opts, x, y); ok {
			log.Printf("[VIEW] %s: %s", sq, describe(v.board.PieceAt(sq)))
			v.Select(sq)
		}
	}
	return nil
}

// Draw draws the cached board image, rendering it first if needed.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.image == nil {
		rgba, err := render.Image(v.board, v.Options())
		if err != nil {
			log.Printf("Warning: Failed to render board: %v", err)
			return
		}
		v.image = ebiten.NewImageFromImage(rgba)
	}
	screen.DrawImage(v.image, nil)
}

// Layout returns the fixed board size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := render.Size(v.opts)
	return size, size
}

func describe(p board.Piece) string {
	if p == board.NoPiece {
		return "empty"
	}
	return p.Color().String() + " " + p.Type().String()
}
