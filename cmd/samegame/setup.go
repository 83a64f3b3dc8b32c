package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-samegame/internal/config"
	"github.com/vovakirdan/tui-samegame/internal/games/samegame"
	"github.com/vovakirdan/tui-samegame/internal/games/samegame/layout"
)

// loadConfig loads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.SameGameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Board.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Board.Height = flagHeight
	}
	if flags.Changed("colors") {
		cfg.Board.Colors = flagColors
	}
	if flags.Changed("fps") {
		cfg.Runtime.TickRate = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// newLogger creates a logger at --log-level. Output goes to --log-file when
// set, otherwise to fallback. The returned close func is never nil.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// applyOptions installs game options built from cfg, with an optional layout.
func applyOptions(cfg config.SameGameConfig, layoutPath string, logger *log.Logger) (samegame.Options, error) {
	opts, err := samegame.OptionsFromConfig(cfg)
	if err != nil {
		return opts, err
	}
	opts.Logger = logger

	if layoutPath != "" {
		l, err := layout.Load(layoutPath)
		if err != nil {
			return opts, err
		}
		if len(l.Grid.Colors()) > len(opts.Palette) {
			logger.Warn("layout uses more colors than the palette, colors will repeat",
				"layout", l.Name, "colors", len(l.Grid.Colors()), "palette", len(opts.Palette))
		}
		opts.Layout = &l.Grid
		opts.LayoutName = l.Name
	}

	samegame.SetOptions(opts)
	return opts, nil
}
