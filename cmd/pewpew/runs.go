package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pewpew/internal/games/pewpew"
	"github.com/vovakirdan/pewpew/internal/platform/tui"
	"github.com/vovakirdan/pewpew/internal/registry"
	"github.com/vovakirdan/pewpew/internal/storage"
)

var (
	flagCSV     string
	flagLongest bool
	flagLimit   int
)

var runsCmd = &cobra.Command{
	Use:   "runs [game]",
	Short: "Browse or export recorded runs",
	Long: `Show recorded runs in an interactive table, or export them as CSV.

Examples:
  pewpew runs
  pewpew runs pewpew
  pewpew runs --csv runs.csv
  pewpew runs --csv - --longest --limit 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagCSV, "csv", "", "Export runs as CSV to this path ('-' for stdout)")
	runsCmd.Flags().BoolVar(&flagLongest, "longest", false, "Export the longest runs instead of the most recent")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 100, "Maximum number of runs to export")
}

func runRuns(_ *cobra.Command, args []string) error {
	gameID := pewpew.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagCSV != "" {
		return exportRuns(store, gameID)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return tui.RunRunsBoard(store, gameID, width, height)
}

func exportRuns(store *storage.Store, gameID string) error {
	var runs []storage.Run
	var err error
	if flagLongest {
		runs, err = store.LongestRuns(gameID, flagLimit)
	} else {
		runs, err = store.RecentRuns(gameID, flagLimit)
	}
	if err != nil {
		return err
	}

	if flagCSV == "-" {
		return storage.WriteRunsCSV(os.Stdout, runs)
	}

	f, err := os.Create(flagCSV)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", flagCSV, err)
	}
	if err := storage.WriteRunsCSV(f, runs); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %d runs to %s\n", len(runs), flagCSV)
	return nil
}
