// samegame is the tile-clearing puzzle SameGame for the terminal.
//
// Usage:
//
//	samegame play [game]   - Play in this terminal
//	samegame board         - Print a board and apply clicks without a UI
//	samegame list          - List available game variants
//	samegame serve         - Start SSH server for remote play
//	samegame config        - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.samegame/configs, ./configs)
//	--width, --height   - Board size
//	--colors <n>        - Number of tile colors
//	--seed <value>      - RNG seed for reproducible boards
//	--fps <rate>        - UI tick rate
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-samegame/internal/games/samegame"
)

var (
	// Global flags
	flagConfig   string
	flagWidth    int
	flagHeight   int
	flagColors   int
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "samegame",
	Short: "SameGame - clear the board by popping groups of tiles",
	Long: `SameGame is a tile-clearing puzzle. Click a group of two or more
orthogonally connected tiles of the same color to remove it. Tiles above
fall down and empty columns close up to the left. Clear every tile to win.

Available commands:
  play     - Play in this terminal
  board    - Print a board and apply clicks without a UI
  list     - Show available game variants
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  samegame play
  samegame play samegame_mini
  samegame play --width 20 --height 12 --colors 4
  samegame play --layout ./layouts/towers.yaml
  samegame board --seed 42 --move 0,9 --move 3,9
  samegame serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.IntVar(&flagWidth, "width", 0, "Board width in tiles (overrides config)")
	pf.IntVar(&flagHeight, "height", 0, "Board height in tiles (overrides config)")
	pf.IntVar(&flagColors, "colors", 0, "Number of tile colors (overrides config)")
	pf.IntVar(&flagFPS, "fps", 0, "UI tick rate (overrides config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
