package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pewpew/internal/games/pewpew"
	"github.com/vovakirdan/pewpew/internal/platform/tui"
	"github.com/vovakirdan/pewpew/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal.

Controls:
  W/A/S/D or arrows - Thrust
  Mouse click       - Aim and shoot
  P                 - Pause
  Esc               - End the run
  Q/Ctrl+C          - Quit

Terminals only report key presses, so a key counts as released once it
stops repeating for input.release_after_ms (700ms by default). Raise it
if thrust stutters while a key is held; that means the terminal's
auto-repeat delay is longer.

Examples:
  pewpew play
  pewpew play --fps 30
  pewpew play --axis-mode held --log-file pewpew.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := pewpew.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'pewpew list' to see available games", gameID)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The alt screen owns stdout, so logs go to a file or nowhere.
	logger, closeLog, err := newLogger(io.Discard, "pewpew")
	if err != nil {
		return err
	}
	defer closeLog()
	checkWrap(cfg, logger)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(gameID, cfg)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	printInstructions(os.Stdout)

	err = tui.Run(game, tui.Options{
		Config: cfg,
		Store:  store,
		Logger: logger,
		Player: currentUser(),
		Width:  width,
		Height: height,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
