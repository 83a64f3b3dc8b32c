package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-samegame/internal/games/samegame"
	"github.com/vovakirdan/tui-samegame/internal/games/samegame/board"
	"github.com/vovakirdan/tui-samegame/internal/games/samegame/layout"
)

var (
	flagMoves       []string
	flagBoardLayout string
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print a board and apply clicks without a UI",
	Long: `Deal a board (random or from a layout file), print it, then apply each
--move click in order and print the board after every click.

Boards print one row per line, top row first: '.' is empty and
'A', 'B', ... are tile colors. Coordinates are x,y with 0,0 at the top-left.

Examples:
  samegame board --seed 42
  samegame board --seed 42 --width 6 --height 4 --move 0,3 --move 2,3
  samegame board --layout ./towers.yaml --move 1,2`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func init() {
	boardCmd.Flags().StringArrayVar(&flagMoves, "move", nil, "Click x,y (repeatable)")
	boardCmd.Flags().StringVar(&flagBoardLayout, "layout", "", "Start from a layout YAML file instead of a random board")
}

func runBoard(cmd *cobra.Command, _ []string) error {
	moves := make([]board.Coord, 0, len(flagMoves))
	for _, m := range flagMoves {
		c, err := parseMove(m)
		if err != nil {
			return err
		}
		moves = append(moves, c)
	}

	out := cmd.OutOrStdout()
	var grid board.Grid

	if flagBoardLayout != "" {
		l, err := layout.Load(flagBoardLayout)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "layout: %s\n", l.Name)
		grid = l.Grid
	} else {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		grid, err = board.RandomFill(cfg.Board.Width, cfg.Board.Height, cfg.Board.Colors, rand.New(rand.NewSource(seed)))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "seed: %d\n", seed)
	}

	return playBoard(out, grid, moves)
}

// parseMove parses "x,y".
func parseMove(s string) (board.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return board.Coord{}, fmt.Errorf("invalid move %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return board.Coord{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return board.Coord{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	return board.C(x, y), nil
}

// playBoard prints g, applies moves in order and prints the result of each.
func playBoard(w io.Writer, g board.Grid, moves []board.Coord) error {
	session := samegame.NewSession(g)
	fmt.Fprintf(w, "%dx%d, %d tiles\n%s\n", g.Width(), g.Height(), g.FilledCount(), board.Format(g))

	for i, m := range moves {
		res, err := session.Play(m.X, m.Y)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		if res.Popped == 0 {
			fmt.Fprintf(w, "\nmove %d: %s no-op\n", i+1, m)
			continue
		}
		fmt.Fprintf(w, "\nmove %d: %s popped %d\n%s\n", i+1, m, res.Popped, board.Format(res.Grid))
	}

	final := session.Grid()
	fmt.Fprintf(w, "\ntiles: %d, won: %t, moves left: %t\n",
		final.FilledCount(), board.IsWon(final), board.HasMoves(final))
	return nil
}
