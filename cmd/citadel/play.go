package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/citadelgame/citadel/internal/assets"
	"github.com/citadelgame/citadel/internal/bootstrap"
	"github.com/citadelgame/citadel/internal/config"
	"github.com/citadelgame/citadel/internal/core"
	"github.com/citadelgame/citadel/internal/game"
	"github.com/citadelgame/citadel/internal/platform/tui"
	"github.com/citadelgame/citadel/internal/player"
	"github.com/citadelgame/citadel/internal/storage"
	"github.com/citadelgame/citadel/internal/world"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Walk the town",
	Long: `Start a town session. On first run this seeds the map and
establishment data and generates the texture and backdrop images; later
runs reuse whatever already exists.

Controls:
  W/Up       - Step forward
  S/Down     - Step backward
  A/Left     - Turn left
  D/Right    - Turn right
  M          - Toggle map overlay
  I          - Toggle inventory
  T          - Toggle day/night
  1-4        - Choose a menu action (inside)
  Esc        - Leave an establishment
  Q/Ctrl+C   - Quit

Examples:
  citadel play
  citadel play --seed 42
  citadel play --config ./my-game.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	paths := bootstrap.DefaultPaths(flagDataRoot)

	// The launch closure runs only after the terminal check, data
	// seeding and asset generation all succeeded. Opening storage also
	// happens here: a non-interactive invocation must not touch
	// ~/.citadel at all.
	launch := func() error {
		grid, err := world.LoadGrid(paths.MapPath())
		if err != nil {
			return err
		}
		dir, err := world.LoadDirectory(paths.EstablishmentsPath())
		if err != nil {
			return err
		}
		gameCfg, err := config.LoadGame(flagConfig)
		if err != nil {
			return err
		}

		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open player database: %v\n", err)
			// Continue without storage - the walk still works
			store = nil
		}
		defer func() {
			if store != nil {
				store.Close()
			}
		}()

		stats := player.DefaultStats()
		if store != nil {
			if st, loadErr := store.LoadStats(); loadErr == nil {
				stats = st
			}
		}

		g := game.New(gameCfg, grid, dir, assets.LoadSet(paths.ImageDir), paths.InteriorDir, stats)
		return tui.Run(g, store, cfg)
	}

	_, err := bootstrap.New(paths, flagSeed, launch).Run()
	if errors.Is(err, bootstrap.ErrNoTerminal) {
		fmt.Fprintln(os.Stderr, "Error: citadel needs an interactive terminal to run.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
