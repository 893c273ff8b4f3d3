// Package termview shows a board in the terminal using tcell.
package termview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/hailam/chessboard/internal/board"
)

// Each square is cellWidth columns wide and one row high. The board starts
// at column originX so rank numbers fit on its left.
const (
	cellWidth = 3
	originX   = 2
	originY   = 1
)

var (
	lightStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(240, 217, 181))
	darkStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(181, 136, 99))
	labelStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	whiteInk   = tcell.NewRGBColor(255, 255, 255)
	blackInk   = tcell.NewRGBColor(0, 0, 0)
)

// cell returns the screen column and row of the center of sq.
func cell(sq board.Square, flipped bool) (x, y int) {
	col, row := sq.File(), 7-sq.Rank()
	if flipped {
		col, row = 7-col, 7-row
	}
	return originX + col*cellWidth + cellWidth/2, originY + row
}

// Draw paints the board, its coordinates and a help line, then shows the
// screen.
func Draw(s tcell.Screen, b board.Board, flipped bool) {
	s.Clear()

	for i := 0; i < 64; i++ {
		sq, _ := board.NewSquare(i)
		style := darkStyle
		if (sq.File()+sq.Rank())%2 == 1 {
			style = lightStyle
		}

		p := b.PieceAt(sq)
		ch := ' '
		if p != board.NoPiece {
			ch = rune(p.Char())
			if p.Color() == board.White {
				style = style.Foreground(whiteInk).Bold(true)
			} else {
				style = style.Foreground(blackInk).Bold(true)
			}
		}

		x, y := cell(sq, flipped)
		s.SetContent(x-1, y, ' ', nil, style)
		s.SetContent(x, y, ch, nil, style)
		s.SetContent(x+1, y, ' ', nil, style)
	}

	for i := 0; i < 8; i++ {
		fileSq, _ := board.SquareFromCoords(i, 0)
		x, _ := cell(fileSq, flipped)
		s.SetContent(x, originY+8, rune('a'+i), nil, labelStyle)

		rankSq, _ := board.SquareFromCoords(0, i)
		_, y := cell(rankSq, flipped)
		s.SetContent(0, y, rune('1'+i), nil, labelStyle)
	}

	drawText(s, 0, originY+10, "f: flip  q: quit", labelStyle)
	s.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// Run draws the board and handles keys until the user quits.
// The screen must already be initialized; Run does not finalize it.
func Run(s tcell.Screen, b board.Board, flipped bool) error {
	Draw(s, b, flipped)
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil // screen finalized
		case *tcell.EventResize:
			s.Sync()
			Draw(s, b, flipped)
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return nil
			case ev.Rune() == 'f':
				flipped = !flipped
				Draw(s, b, flipped)
			}
		}
	}
}
