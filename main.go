// ChessBoard - a bitboard board viewer built with Ebitengine
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/render"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hailam/chessboard/internal/viewer"
)

var layoutName = flag.String("layout", "", "stored layout to show (default: last used)")

func main() {
	flag.Parse()

	prefs, layout := loadSettings(*layoutName)

	b := layout.Board()
	if err := b.Validate(); err != nil {
		log.Printf("Warning: layout %q is inconsistent:\n%v", layout.Name, err)
	}

	opts := render.DefaultOptions()
	opts.Flipped = prefs.Flipped
	opts.Coordinates = prefs.Coordinates
	if prefs.SquareSize > 0 {
		opts.SquareSize = prefs.SquareSize
	}
	if theme, err := render.LookupTheme(prefs.Theme); err == nil {
		opts.Theme = theme
	}

	size := render.Size(opts)
	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowTitle("ChessBoard - " + layout.Name)

	if err := ebiten.RunGame(viewer.New(b, opts)); err != nil {
		log.Fatal(err)
	}
}

// loadSettings reads preferences and the layout to show from storage,
// falling back to defaults when storage is unavailable.
func loadSettings(name string) (*storage.Preferences, board.Layout) {
	store, err := storage.NewStorage()
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
		return storage.DefaultPreferences(), board.StandardLayout
	}
	defer store.Close()

	prefs, err := store.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
	}
	if name == "" {
		name = prefs.Layout
	}

	var layout board.Layout
	if strings.Contains(name, "/") {
		layout, err = board.ParseLayout(name, name)
	} else {
		layout, err = store.LoadLayout(name)
	}
	if err != nil {
		log.Printf("Warning: %v, showing the standard layout", err)
		return prefs, board.StandardLayout
	}
	return prefs, layout
}
