package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/render"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hailam/chessboard/internal/termview"
)

var (
	layoutFlag   = flag.String("layout", "", `layout name, "standard", or a FEN piece placement (default: stored preference)`)
	formatFlag   = flag.String("format", "text", "output format: text, pretty, svg, png or tui")
	outFlag      = flag.String("o", "", "write output to file instead of stdout")
	flipFlag     = flag.Bool("flip", false, "draw the board from Black's side")
	themeFlag    = flag.String("theme", "", "color theme for svg and png: "+strings.Join(render.ThemeNames(), ", "))
	sizeFlag     = flag.Int("size", 0, "square size in pixels for svg and png")
	bitboardFlag = flag.String("bitboard", "", "print one bitboard instead of the board, as color:piece (e.g. white:knight)")
	validateFlag = flag.Bool("validate", false, "check the layout for squares claimed twice and exit")
	saveFlag     = flag.String("save-layout", "", "store the layout under this name")
	savePrefs    = flag.Bool("save-prefs", false, "store -theme, -size, -flip and -layout as defaults")
	listFlag     = flag.Bool("list", false, "list stored layouts and exit")
	profileFlag  = flag.String("profile", "", "write a CPU profile to this directory")
	dbFlag       = flag.String("db", "", "database directory (default: platform data dir)")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("chessboard: ")

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Start CPU profiling if requested (via flag or environment variable)
	profileDir := *profileFlag
	if profileDir == "" {
		profileDir = os.Getenv("CPUPROFILE")
	}
	if profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir), profile.Quiet).Stop()
	}

	store, err := openStorage()
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
	} else {
		defer store.Close()
	}

	prefs := storage.DefaultPreferences()
	if store != nil {
		if prefs, err = store.LoadPreferences(); err != nil {
			log.Printf("Warning: Failed to load preferences: %v", err)
		}
	}

	if *listFlag {
		return listLayouts(store)
	}

	layout, err := resolveLayout(store, *layoutFlag, prefs.Layout)
	if err != nil {
		return err
	}
	b := layout.Board()

	if *saveFlag != "" {
		if store == nil {
			return errors.New("cannot save layout: storage unavailable")
		}
		layout.Name = *saveFlag
		if err := store.SaveLayout(layout); err != nil {
			return err
		}
		log.Printf("saved layout %q", layout.Name)
	}

	opts, err := renderOptions(prefs)
	if err != nil {
		return err
	}

	if *savePrefs {
		if store == nil {
			return errors.New("cannot save preferences: storage unavailable")
		}
		if err := savePreferences(store, prefs, layout, opts); err != nil {
			return err
		}
	}

	if *formatFlag == "tui" && !*validateFlag {
		return runTUI(b, opts.Flipped)
	}

	w, closeOut, err := output(*outFlag)
	if err != nil {
		return err
	}
	defer closeOut()

	if *validateFlag {
		return validate(w, layout)
	}

	if *bitboardFlag != "" {
		bb, err := selectBitboard(b, *bitboardFlag)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, bb.Pretty())
		return err
	}

	return write(w, *formatFlag, b, opts)
}

// write renders b to w in the given output format.
func write(w io.Writer, format string, b board.Board, opts render.Options) error {
	switch format {
	case "text":
		return b.Print(w)
	case "pretty":
		_, err := io.WriteString(w, b.CombinedOccupancy().Pretty())
		return err
	case "svg":
		return render.SVG(w, b, opts)
	case "png":
		return render.PNG(w, b, opts)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// validate reports whether the layout claims any square twice.
func validate(w io.Writer, layout board.Layout) error {
	b := layout.Board()
	if err := b.Validate(); err != nil {
		return fmt.Errorf("layout %q is inconsistent:\n%w", layout.Name, err)
	}
	_, err := fmt.Fprintf(w, "layout %q: ok, %d pieces\n", layout.Name, b.CombinedOccupancy().PopCount())
	return err
}

// savePreferences stores the effective display settings and layout as
// defaults for later runs. A layout given as a placement is stored as
// that placement so resolveLayout can parse it back.
func savePreferences(store *storage.Storage, prefs *storage.Preferences, layout board.Layout, opts render.Options) error {
	prefs.Theme = themeName(prefs)
	prefs.SquareSize = opts.SquareSize
	prefs.Flipped = opts.Flipped
	prefs.Layout = layout.Name
	return store.SavePreferences(prefs)
}

func openStorage() (*storage.Storage, error) {
	if *dbFlag != "" {
		return storage.Open(*dbFlag)
	}
	return storage.NewStorage()
}

// resolveLayout picks the layout named by the flag, falling back to the
// stored preference. Anything containing '/' is parsed as a placement and
// the layout is named after it.
func resolveLayout(store *storage.Storage, flagValue, preferred string) (board.Layout, error) {
	name := flagValue
	if name == "" {
		name = preferred
	}
	if strings.Contains(name, "/") {
		return board.ParseLayout(name, name)
	}
	if name == "" || name == board.StandardLayout.Name {
		return board.StandardLayout, nil
	}
	if store == nil {
		return board.Layout{}, fmt.Errorf("cannot load layout %q: storage unavailable", name)
	}
	l, err := store.LoadLayout(name)
	if flagValue == "" && errors.Is(err, storage.ErrLayoutNotFound) {
		log.Printf("Warning: %v, using the standard layout", err)
		return board.StandardLayout, nil
	}
	return l, err
}

func listLayouts(store *storage.Storage) error {
	if store == nil {
		return errors.New("cannot list layouts: storage unavailable")
	}
	names, err := store.ListLayouts()
	if err != nil {
		return err
	}
	fmt.Println(board.StandardLayout.Name)
	for _, name := range names {
		if name != board.StandardLayout.Name {
			fmt.Println(name)
		}
	}
	return nil
}

func themeName(prefs *storage.Preferences) string {
	if *themeFlag != "" {
		return *themeFlag
	}
	return prefs.Theme
}

// renderOptions layers the command-line flags over stored preferences.
func renderOptions(prefs *storage.Preferences) (render.Options, error) {
	opts := render.DefaultOptions()
	opts.Coordinates = prefs.Coordinates
	opts.Flipped = prefs.Flipped
	if isFlagSet("flip") {
		opts.Flipped = *flipFlag
	}

	if prefs.SquareSize > 0 {
		opts.SquareSize = prefs.SquareSize
	}
	if *sizeFlag > 0 {
		opts.SquareSize = *sizeFlag
	}

	theme, err := render.LookupTheme(themeName(prefs))
	if err != nil {
		return opts, err
	}
	opts.Theme = theme
	return opts, nil
}

// isFlagSet reports whether the named flag was given on the command line.
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// selectBitboard parses "color:piece" and returns that bitboard.
func selectBitboard(b board.Board, sel string) (board.Bitboard, error) {
	colorName, pieceName, ok := strings.Cut(sel, ":")
	if !ok {
		return board.Bitboard{}, fmt.Errorf("invalid -bitboard %q: want color:piece", sel)
	}
	c, err := board.ParseColor(colorName)
	if err != nil {
		return board.Bitboard{}, err
	}
	pt, err := board.ParsePieceType(pieceName)
	if err != nil {
		return board.Bitboard{}, err
	}
	return b.PieceBitboard(c, pt), nil
}

func output(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Printf("Warning: Failed to close %s: %v", path, err)
		}
	}, nil
}

func runTUI(b board.Board, flipped bool) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	return termview.Run(s, b, flipped)
}
