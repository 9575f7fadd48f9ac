// Package bootstrap prepares the environment before the game starts:
// it verifies the terminal, seeds missing data files, regenerates missing
// image assets, and finally hands off to the game. Steps run strictly in
// order and each one blocks until it finishes.
package bootstrap

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"github.com/citadelgame/citadel/internal/assets"
	"github.com/citadelgame/citadel/internal/world"
)

// ErrNoTerminal is returned when stdout is not an interactive terminal.
// The caller prints the message and exits with code 1; no later step has
// run at that point.
var ErrNoTerminal = errors.New("bootstrap: an interactive terminal is required")

// Paths locates everything the launcher checks or writes.
type Paths struct {
	DataDir     string // map.txt, establishments.yaml
	ImageDir    string // wall and sky textures
	InteriorDir string // establishment backdrops
}

// DefaultPaths returns the conventional layout relative to root.
func DefaultPaths(root string) Paths {
	return Paths{
		DataDir:     filepath.Join(root, "data"),
		ImageDir:    filepath.Join(root, "assets", "images"),
		InteriorDir: filepath.Join(root, "assets", "interiors"),
	}
}

// MapPath returns the town map file location.
func (p Paths) MapPath() string {
	return filepath.Join(p.DataDir, "map.txt")
}

// EstablishmentsPath returns the establishment directory file location.
func (p Paths) EstablishmentsPath() string {
	return filepath.Join(p.DataDir, "establishments.yaml")
}

// Report records which steps actually did work, for logging and tests.
type Report struct {
	SeededMap            bool
	SeededEstablishments bool
	GeneratedTextures    bool
	GeneratedInteriors   bool
}

// Launcher runs the bootstrap sequence. The function fields default to
// the real implementations; tests swap them for fakes.
type Launcher struct {
	Paths Paths
	Seed  int64 // 0 means time-based

	IsTerminal        func() bool
	GenerateTextures  func(dir string, rng *rand.Rand) error
	GenerateInteriors func(dir string, rng *rand.Rand) error
	Launch            func() error
}

// New creates a launcher with the real terminal check and asset
// generators wired in. launch is invoked exactly once, last, on every
// non-error path.
func New(paths Paths, seed int64, launch func() error) *Launcher {
	return &Launcher{
		Paths: paths,
		Seed:  seed,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
		GenerateTextures:  assets.GenerateTextures,
		GenerateInteriors: assets.GenerateInteriors,
		Launch:            launch,
	}
}

// Run executes the sequence: terminal check, data seeding, conditional
// asset generation, hand-off. The first failing step stops everything
// after it; the launch error (usually nil) is the game's outcome.
func (l *Launcher) Run() (Report, error) {
	var report Report

	if !l.IsTerminal() {
		return report, ErrNoTerminal
	}

	seed := l.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Seed missing data files from the embedded defaults; existing
	// files are never touched.
	var err error
	report.SeededMap, err = seedFile(l.Paths.MapPath(), world.DefaultMap())
	if err != nil {
		return report, err
	}
	report.SeededEstablishments, err = seedFile(l.Paths.EstablishmentsPath(), world.DefaultEstablishments())
	if err != nil {
		return report, err
	}

	// The floor texture stands in for the whole texture set: if it is
	// there, generation already ran.
	if !fileExists(filepath.Join(l.Paths.ImageDir, assets.TexFloor+".png")) {
		if err := l.GenerateTextures(l.Paths.ImageDir, rng); err != nil {
			return report, err
		}
		report.GeneratedTextures = true
	}

	// Same sentinel rule for interiors, keyed on the tavern backdrop.
	if !fileExists(filepath.Join(l.Paths.InteriorDir, "tavern.png")) {
		if err := l.GenerateInteriors(l.Paths.InteriorDir, rng); err != nil {
			return report, err
		}
		report.GeneratedInteriors = true
	}

	return report, l.Launch()
}

// seedFile writes data to path unless the file already exists.
// Returns whether a write happened.
func seedFile(path string, data []byte) (bool, error) {
	if fileExists(path) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("bootstrap: cannot create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("bootstrap: cannot write %s: %w", path, err)
	}
	return true, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
