package main

import (
	"bytes"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/render"
	"github.com/hailam/chessboard/internal/storage"
)

func TestSelectBitboard(t *testing.T) {
	b := board.NewBoard()
	tests := []struct {
		sel  string
		want board.Bitboard
	}{
		{"white:knight", b.White.Knights},
		{"w:n", b.White.Knights},
		{"Black:King", b.Black.King},
		{"b:p", b.Black.Pawns},
	}
	for _, tc := range tests {
		got, err := selectBitboard(b, tc.sel)
		if err != nil {
			t.Errorf("selectBitboard(%q): %v", tc.sel, err)
			continue
		}
		if got != tc.want {
			t.Errorf("selectBitboard(%q) = %#x, want %#x", tc.sel, got.Uint64(), tc.want.Uint64())
		}
	}

	for _, bad := range []string{"white", "red:knight", "white:dragon", ""} {
		if _, err := selectBitboard(b, bad); err == nil {
			t.Errorf("selectBitboard(%q) should fail", bad)
		}
	}
}

func openStore(t *testing.T) *storage.Storage {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestResolveLayout(t *testing.T) {
	store := openStore(t)

	kings, _ := board.ParseLayout("kings", "4k3/8/8/8/8/8/8/4K3")
	if err := store.SaveLayout(kings); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		flag, preferred string
		want            string
	}{
		{"", "", board.StartPlacement},
		{"", "standard", board.StartPlacement},
		{"", "kings", kings.Placement()},
		{"kings", "standard", kings.Placement()},
		{"8/8/8/8/8/8/8/8", "kings", "8/8/8/8/8/8/8/8"},
	}
	for _, tc := range tests {
		l, err := resolveLayout(store, tc.flag, tc.preferred)
		if err != nil {
			t.Errorf("resolveLayout(%q, %q): %v", tc.flag, tc.preferred, err)
			continue
		}
		if got := l.Placement(); got != tc.want {
			t.Errorf("resolveLayout(%q, %q) = %s, want %s", tc.flag, tc.preferred, got, tc.want)
		}
	}

	if _, err := resolveLayout(nil, "kings", ""); err == nil {
		t.Error("expected an error without storage")
	}
	if _, err := resolveLayout(store, "missing", ""); err == nil {
		t.Error("expected an error for a missing layout")
	}

	// A stored preference naming a deleted layout falls back to standard.
	l, err := resolveLayout(store, "", "deleted")
	if err != nil {
		t.Fatalf("resolveLayout with stale preference: %v", err)
	}
	if l.Name != board.StandardLayout.Name {
		t.Errorf("stale preference resolved to %q", l.Name)
	}
}

func TestSavePreferencesPlacement(t *testing.T) {
	store := openStore(t)
	const placement = "4k3/8/8/8/8/8/8/4K3"

	layout, err := resolveLayout(store, placement, "")
	if err != nil {
		t.Fatal(err)
	}
	prefs := storage.DefaultPreferences()
	opts, err := renderOptions(prefs)
	if err != nil {
		t.Fatal(err)
	}
	if err := savePreferences(store, prefs, layout, opts); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.LoadPreferences()
	if err != nil {
		t.Fatal(err)
	}
	again, err := resolveLayout(store, "", loaded.Layout)
	if err != nil {
		t.Fatalf("resolveLayout after saving a placement: %v", err)
	}
	if got := again.Placement(); got != placement {
		t.Errorf("resolved placement = %s, want %s", got, placement)
	}
}

func TestWrite(t *testing.T) {
	b := board.NewBoard()
	opts := render.DefaultOptions()

	tests := []struct {
		format string
		want   string
	}{
		{"text", b.String()},
		{"pretty", b.CombinedOccupancy().Pretty()},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		if err := write(&buf, tc.format, b, opts); err != nil {
			t.Errorf("write(%q): %v", tc.format, err)
			continue
		}
		if buf.String() != tc.want {
			t.Errorf("write(%q) =\n%s\nwant\n%s", tc.format, buf.String(), tc.want)
		}
	}

	var buf bytes.Buffer
	if err := write(&buf, "svg", b, opts); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("svg output has no <svg> element")
	}

	if err := write(&buf, "jpeg", b, opts); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestValidate(t *testing.T) {
	var buf bytes.Buffer
	if err := validate(&buf, board.StandardLayout); err != nil {
		t.Fatal(err)
	}
	if want := "layout \"standard\": ok, 32 pieces\n"; buf.String() != want {
		t.Errorf("validate output = %q, want %q", buf.String(), want)
	}

	broken := board.StandardLayout
	broken.Name = "broken"
	broken.Pieces[board.White][board.Knight].Set(board.E2)

	buf.Reset()
	if err := validate(&buf, broken); err == nil {
		t.Error("expected an error for an overlapping layout")
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
	if !board.StandardLayout.Board().White.Knights.Has(board.G1) || board.StandardLayout.Board().White.Knights.Has(board.E2) {
		t.Error("StandardLayout was modified")
	}
}

func TestRenderOptions(t *testing.T) {
	prefs := storage.DefaultPreferences()
	prefs.SquareSize = 32
	prefs.Theme = "green"

	opts, err := renderOptions(prefs)
	if err != nil {
		t.Fatal(err)
	}
	if opts.SquareSize != 32 || opts.Flipped {
		t.Errorf("unexpected options %+v", opts)
	}

	prefs.Theme = "plaid"
	if _, err := renderOptions(prefs); err == nil {
		t.Error("expected an error for an unknown theme")
	}
}

func TestRenderOptionsFlip(t *testing.T) {
	prefs := storage.DefaultPreferences()
	prefs.Flipped = true

	opts, err := renderOptions(prefs)
	if err != nil {
		t.Fatal(err)
	}
	if !opts.Flipped {
		t.Error("stored flip preference ignored")
	}

	if err := flag.Set("flip", "false"); err != nil {
		t.Fatal(err)
	}
	opts, err = renderOptions(prefs)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Flipped {
		t.Error("-flip=false did not override the stored preference")
	}
}
