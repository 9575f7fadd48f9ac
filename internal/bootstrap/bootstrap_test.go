package bootstrap

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

// fakeLauncher wires a Launcher with counting fakes so tests can observe
// which steps ran and in what order.
type fakeLauncher struct {
	*Launcher
	textureCalls  int
	interiorCalls int
	launchCalls   int
	order         []string
}

func newFakeLauncher(t *testing.T, tty bool) *fakeLauncher {
	t.Helper()
	f := &fakeLauncher{}
	f.Launcher = &Launcher{
		Paths:      DefaultPaths(t.TempDir()),
		Seed:       1,
		IsTerminal: func() bool { return tty },
		GenerateTextures: func(dir string, rng *rand.Rand) error {
			f.textureCalls++
			f.order = append(f.order, "textures")
			return os.MkdirAll(dir, 0o755)
		},
		GenerateInteriors: func(dir string, rng *rand.Rand) error {
			f.interiorCalls++
			f.order = append(f.order, "interiors")
			return os.MkdirAll(dir, 0o755)
		},
		Launch: func() error {
			f.launchCalls++
			f.order = append(f.order, "launch")
			return nil
		},
	}
	return f
}

func TestNoTerminalStopsEverything(t *testing.T) {
	f := newFakeLauncher(t, false)

	_, err := f.Run()
	if !errors.Is(err, ErrNoTerminal) {
		t.Fatalf("err = %v, want ErrNoTerminal", err)
	}

	if f.textureCalls != 0 || f.interiorCalls != 0 || f.launchCalls != 0 {
		t.Error("no step may run without a terminal")
	}
	if _, statErr := os.Stat(f.Paths.MapPath()); statErr == nil {
		t.Error("data must not be seeded without a terminal")
	}
}

func TestFullColdStart(t *testing.T) {
	f := newFakeLauncher(t, true)

	report, err := f.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !report.SeededMap || !report.SeededEstablishments {
		t.Errorf("cold start should seed data files, report = %+v", report)
	}
	if !report.GeneratedTextures || !report.GeneratedInteriors {
		t.Errorf("cold start should generate all assets, report = %+v", report)
	}
	if f.launchCalls != 1 {
		t.Errorf("launch calls = %d, want exactly 1", f.launchCalls)
	}

	// Launch is always last.
	if f.order[len(f.order)-1] != "launch" {
		t.Errorf("order = %v, launch must come last", f.order)
	}
}

func TestExistingDataIsNotOverwritten(t *testing.T) {
	f := newFakeLauncher(t, true)

	mapPath := f.Paths.MapPath()
	if err := os.MkdirAll(filepath.Dir(mapPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(mapPath, []byte("###\n#@#\n###\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	report, err := f.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.SeededMap {
		t.Error("existing map must not be reseeded")
	}

	data, err := os.ReadFile(mapPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "###\n#@#\n###\n" {
		t.Error("existing map was overwritten")
	}
}

func TestTexturesSkippedWhenFloorExists(t *testing.T) {
	f := newFakeLauncher(t, true)

	if err := os.MkdirAll(f.Paths.ImageDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(f.Paths.ImageDir, "floor.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	report, err := f.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.GeneratedTextures || f.textureCalls != 0 {
		t.Error("texture generation must be skipped when floor.png exists")
	}
	// Interiors are still generated independently.
	if f.interiorCalls != 1 {
		t.Errorf("interior calls = %d, want 1", f.interiorCalls)
	}
}

func TestInteriorsSkippedWhenTavernExists(t *testing.T) {
	f := newFakeLauncher(t, true)

	if err := os.MkdirAll(f.Paths.InteriorDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(f.Paths.InteriorDir, "tavern.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	report, err := f.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.GeneratedInteriors || f.interiorCalls != 0 {
		t.Error("interior generation must be skipped when tavern.png exists")
	}
	if f.launchCalls != 1 {
		t.Errorf("launch calls = %d, want 1", f.launchCalls)
	}
}

func TestGenerationFailureStopsLaunch(t *testing.T) {
	f := newFakeLauncher(t, true)
	genErr := errors.New("disk full")
	f.GenerateTextures = func(string, *rand.Rand) error { return genErr }

	_, err := f.Run()
	if !errors.Is(err, genErr) {
		t.Fatalf("err = %v, want generator error", err)
	}
	if f.launchCalls != 0 {
		t.Error("game must not launch after a failed step")
	}
}

func TestLaunchErrorPropagates(t *testing.T) {
	f := newFakeLauncher(t, true)
	gameErr := errors.New("game crashed")
	f.Launch = func() error { return gameErr }

	_, err := f.Run()
	if !errors.Is(err, gameErr) {
		t.Fatalf("err = %v, want game error", err)
	}
}

func TestSecondRunIsAllSkips(t *testing.T) {
	f := newFakeLauncher(t, true)

	// First run generates everything; drop sentinel files the way the
	// real generators would.
	if _, err := f.Run(); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	for _, p := range []string{
		filepath.Join(f.Paths.ImageDir, "floor.png"),
		filepath.Join(f.Paths.InteriorDir, "tavern.png"),
	} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	report, err := f.Run()
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if report.SeededMap || report.SeededEstablishments || report.GeneratedTextures || report.GeneratedInteriors {
		t.Errorf("warm start should skip every step, report = %+v", report)
	}
	if f.launchCalls != 2 {
		t.Errorf("launch calls = %d, want one per run", f.launchCalls)
	}
}
