package samegame

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-samegame/internal/config"
	"github.com/vovakirdan/tui-samegame/internal/games/samegame/board"
)

// Options control how new games are dealt and drawn.
// The CLI sets them once before the platform starts; games read a copy on
// every Reset.
type Options struct {
	Width   int
	Height  int
	Colors  int
	CellW   int
	CellH   int
	Palette Palette

	// Layout, when set, is dealt instead of a random board.
	Layout     *board.Grid
	LayoutName string

	Logger *log.Logger
}

// DefaultOptions returns options built from config.Default().
func DefaultOptions() Options {
	opts, err := OptionsFromConfig(config.Default())
	if err != nil {
		// config.Default() is always valid
		panic(err)
	}
	return opts
}

// OptionsFromConfig converts a validated config into game options.
func OptionsFromConfig(cfg config.SameGameConfig) (Options, error) {
	colors, err := cfg.Display.Colors()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Width:   cfg.Board.Width,
		Height:  cfg.Board.Height,
		Colors:  cfg.Board.Colors,
		CellW:   cfg.Display.CellWidth,
		CellH:   cfg.Display.CellHeight,
		Palette: Palette(colors),
		Logger:  discardLogger(),
	}, nil
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Prefix: "samegame"})
}

var (
	optsMu      sync.RWMutex
	currentOpts = DefaultOptions()
)

// SetOptions replaces the options used by games created afterwards and by
// the next Reset of existing ones.
func SetOptions(opts Options) {
	if opts.Logger == nil {
		opts.Logger = discardLogger()
	}
	optsMu.Lock()
	defer optsMu.Unlock()
	currentOpts = opts
}

// CurrentOptions returns a copy of the active options.
func CurrentOptions() Options {
	optsMu.RLock()
	defer optsMu.RUnlock()
	return currentOpts
}
