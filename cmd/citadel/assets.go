package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/citadelgame/citadel/internal/assets"
	"github.com/citadelgame/citadel/internal/bootstrap"
)

var flagForce bool

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Generate texture and backdrop images",
	Long: `Generate the wall textures and interior backdrops used by the
renderer. Without --force only missing sets are generated, using the
same sentinel files the launcher checks (floor texture and tavern
backdrop). With --force both sets are rebuilt from scratch.

Examples:
  citadel assets
  citadel assets --force
  citadel assets --force --seed 42`,
	Args: cobra.NoArgs,
	Run:  runAssets,
}

func init() {
	assetsCmd.Flags().BoolVar(&flagForce, "force", false, "Regenerate even when assets already exist")
}

func runAssets(_ *cobra.Command, _ []string) {
	paths := bootstrap.DefaultPaths(flagDataRoot)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if flagForce || !fileExists(filepath.Join(paths.ImageDir, assets.TexFloor+".png")) {
		if err := assets.GenerateTextures(paths.ImageDir, rng); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating textures: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Generated %d textures in %s\n", len(assets.TextureNames), paths.ImageDir)
	} else {
		fmt.Println("Textures already exist, skipping (use --force to rebuild)")
	}

	if flagForce || !fileExists(filepath.Join(paths.InteriorDir, "tavern.png")) {
		if err := assets.GenerateInteriors(paths.InteriorDir, rng); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating interiors: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Generated %d interior backdrops in %s\n", len(assets.InteriorTypes()), paths.InteriorDir)
	} else {
		fmt.Println("Interior backdrops already exist, skipping (use --force to rebuild)")
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
