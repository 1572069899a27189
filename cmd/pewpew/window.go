package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pewpew/internal/games/pewpew"
	"github.com/vovakirdan/pewpew/internal/platform/window"
	"github.com/vovakirdan/pewpew/internal/registry"
)

func init() {
	// raylib must stay on the main OS thread.
	runtime.LockOSThread()
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play.

The window size, title and assets come from the config's window section.
The player image and font are read from window.resource_dir; when they are
missing the game draws plain shapes with the default font.

Controls:
  W/A/S/D      - Thrust
  Mouse button - Aim and shoot
  P            - Pause
  Esc          - Quit

Examples:
  pewpew window
  pewpew window --config ./pewpew.yaml`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr, "pewpew")
	if err != nil {
		return err
	}
	defer closeLog()
	checkWrap(cfg, logger)

	game, err := registry.Create(pewpew.ID, cfg)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	printInstructions(os.Stdout)

	return window.Run(game, window.Options{
		Config: cfg,
		Store:  store,
		Logger: logger,
		Player: currentUser(),
	})
}
