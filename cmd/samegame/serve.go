package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-samegame/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeGame   string
	flagServeLayout string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server where every connection plays its own game.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.samegame/host_key

Examples:
  samegame serve                           # Listen on :23234, each session picks a board
  samegame serve --ssh :2222               # Listen on port 2222
  samegame serve --game samegame_mini      # Serve the small board
  samegame serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeGame, "game", "", "Game variant to serve (empty shows a menu)")
	serveCmd.Flags().StringVar(&flagServeLayout, "layout", "", "Serve a fixed board from a layout YAML file")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr, "samegame-ssh")
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // log file is append-only

	if _, err := applyOptions(cfg, flagServeLayout, logger); err != nil {
		return err
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		GameID:      flagServeGame,
		TickRate:    cfg.Runtime.TickRate,
		Seed:        flagSeed,
	}, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	served := flagServeGame
	if served == "" {
		served = "menu"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on %s (Ctrl+C to stop)\n", served, server.Addr())
	return server.ListenAndServe()
}
