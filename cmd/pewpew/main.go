// pewpew is "PewPew die Zombies!", a top-down survival game you can play in
// a terminal, over SSH, or in a desktop window.
//
// Usage:
//
//	pewpew play            - Play in the terminal
//	pewpew window          - Play in a desktop window
//	pewpew serve           - Start SSH server for remote play
//	pewpew runs [game]     - Browse or export recorded runs
//	pewpew list            - List available games
//	pewpew config          - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default from config: 60)
//	--config <path>       - Load a custom config YAML
//	--db <path>           - Set database path (default: ~/.pewpew/runs.db)
//	--axis-mode <mode>    - edge or held
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pewpew/internal/config"
	"github.com/vovakirdan/pewpew/internal/core"
	"github.com/vovakirdan/pewpew/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/pewpew/internal/games/pewpew"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagDBPath   string
	flagAxisMode string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pewpew",
	Short: "PewPew die Zombies! - a top-down survival game",
	Long: `PewPew die Zombies! puts you in a wrap-around arena. Thrust with WASD,
aim and shoot with the mouse.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  runs     - Browse or export recorded runs
  list     - Show all available games
  config   - Print the default configuration

Examples:
  pewpew play
  pewpew play --axis-mode held
  pewpew window --config ./pewpew.yaml
  pewpew serve --ssh :2222
  pewpew runs --csv runs.csv`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pewpew/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagAxisMode, "axis-mode", "", "Axis model: edge (default) or held")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Timing.TickRate = flagFPS
	}
	if flags.Changed("axis-mode") {
		cfg.Input.AxisMode = flagAxisMode
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger returns a logger writing to --log-file, or to fallback when no
// file was given. The returned closer must be called on exit.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closer, nil
}

// openStore opens the runs database, or returns nil with a warning.
// The game works without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

// checkWrap warns when the world is too small for single-step wrapping.
func checkWrap(cfg config.Config, logger *log.Logger) {
	if !cfg.WrapIsSafe() {
		logger.Warn("max speed covers more than one screen per tick, wrapping may leave actors off-screen",
			"max_speed", cfg.Physics.MaxSpeed,
			"tick_rate", cfg.Timing.TickRate,
			"width", cfg.Window.Width,
			"height", cfg.Window.Height,
		)
	}
}

func printInstructions(w io.Writer) {
	fmt.Fprintln(w, "Welcome to Zombie Survival!")
	fmt.Fprintln(w, "How to play:")
	fmt.Fprintln(w, "WASD to move and mouse to aim and shoot.")
}

func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
