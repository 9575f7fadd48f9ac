// citadel is a first-person town walk played in the terminal.
//
// Usage:
//
//	citadel play             - Walk the town
//	citadel assets           - Regenerate textures and interior backdrops
//	citadel stats            - Show player stats and the visit journal
//	citadel serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible asset generation
//	--db <path>     - Set database path (default: ~/.citadel/citadel.db)
//	--data <path>   - Set data root for map and assets (default: .)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import interior handlers to register them
	_ "github.com/citadelgame/citadel/internal/interior"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagDataRoot string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "citadel",
	Short: "Citadel - a first-person town walk in your terminal",
	Long: `Citadel drops you into a small walled town rendered with raycast
pseudo-3D, right in your terminal. Step through the streets, enter the
tavern, spend your gold and keep your stats between sessions.

Available commands:
  play     - Walk the town
  assets   - Regenerate textures and interior backdrops
  stats    - View player stats and the visit journal
  serve    - Start SSH server for remote play

Examples:
  citadel play
  citadel play --seed 42
  citadel assets --force
  citadel stats
  citadel serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.citadel/citadel.db", "Path to player database")
	rootCmd.PersistentFlags().StringVar(&flagDataRoot, "data", ".", "Data root for map, establishments and assets")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
