package viewer

import (
	"testing"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/render"
)

func TestSelectToggles(t *testing.T) {
	v := New(board.NewBoard(), render.DefaultOptions())

	if !v.Options().Highlight.IsEmpty() {
		t.Fatal("new viewer has a highlight")
	}

	v.Select(board.E2)
	if got := v.Options().Highlight; got != board.SquareBB(board.E2) {
		t.Errorf("highlight after selecting e2 = %#x", got.Uint64())
	}

	v.Select(board.D7)
	if got := v.Options().Highlight; got != board.SquareBB(board.D7) {
		t.Errorf("highlight after selecting d7 = %#x", got.Uint64())
	}

	v.Select(board.D7)
	if !v.Options().Highlight.IsEmpty() {
		t.Error("selecting d7 twice should clear the highlight")
	}
}

func TestOptionsKeepsHighlight(t *testing.T) {
	opts := render.DefaultOptions()
	opts.Highlight = board.SquareBB(board.A1).Union(board.SquareBB(board.H8))
	v := New(board.NewBoard(), opts)
	v.Select(board.E4)

	want := opts.Highlight.Union(board.SquareBB(board.E4))
	if got := v.Options().Highlight; got != want {
		t.Errorf("highlight = %#x, want %#x", got.Uint64(), want.Uint64())
	}

	v.Select(board.E4)
	if got := v.Options().Highlight; got != opts.Highlight {
		t.Errorf("highlight after deselect = %#x, want %#x", got.Uint64(), opts.Highlight.Uint64())
	}
}

func TestFlip(t *testing.T) {
	v := New(board.NewBoard(), render.DefaultOptions())
	v.Flip()
	if !v.Options().Flipped {
		t.Error("Flip did not flip")
	}
	v.Flip()
	if v.Options().Flipped {
		t.Error("second Flip did not restore orientation")
	}
}

func TestDescribe(t *testing.T) {
	b := board.NewBoard()
	tests := []struct {
		sq   board.Square
		want string
	}{
		{board.E1, "White King"},
		{board.D8, "Black Queen"},
		{board.B1, "White Knight"},
		{board.E4, "empty"},
	}
	for _, tc := range tests {
		if got := describe(b.PieceAt(tc.sq)); got != tc.want {
			t.Errorf("describe(%v) = %q, want %q", tc.sq, got, tc.want)
		}
	}
}
