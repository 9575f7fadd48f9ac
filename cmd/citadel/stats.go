package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/citadelgame/citadel/internal/platform/tui"
	"github.com/citadelgame/citadel/internal/storage"
)

var flagClearVisits bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View player stats and the visit journal",
	Long: `Show the persisted player stats together with the visit journal:
recent interior actions and per-establishment totals. Tab switches
between the two tables.

Examples:
  citadel stats
  citadel stats --clear-visits`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagClearVisits, "clear-visits", false, "Delete the visit journal and exit")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening player database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearVisits {
		if err := store.ClearVisits(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing visits: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Visit journal cleared.")
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunStats(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
