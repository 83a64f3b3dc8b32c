package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-samegame/internal/core"
	"github.com/vovakirdan/tui-samegame/internal/platform/tui"
	"github.com/vovakirdan/tui-samegame/internal/registry"
)

var flagLayout string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal. Without a game name, a menu lists the
available boards; quitting a game returns to the menu.

Controls:
  Arrows/HJKL/WASD - Move cursor
  Space/Enter      - Pop the group under the cursor
  Mouse click      - Pop the clicked group
  R                - New board
  P                - Pause
  Q/Esc/Ctrl+C     - Quit

The terminal UI owns the screen, so logs are only written with --log-file.

Examples:
  samegame play
  samegame play samegame_mini
  samegame play --colors 5 --seed 7
  samegame play --layout ./towers.yaml --log-file samegame.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Start from a fixed board in a layout YAML file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown game %q (run 'samegame list' to see available games)", gameID)
		}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, "samegame")
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // log file is append-only

	if _, err := applyOptions(cfg, flagLayout, logger); err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Runtime.TickRate,
		Seed:     flagSeed,
	}

	if gameID == "" {
		if err := tui.RunSession(rcfg, logger); err != nil {
			return fmt.Errorf("running session: %w", err)
		}
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if err := tui.Run(game, rcfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
