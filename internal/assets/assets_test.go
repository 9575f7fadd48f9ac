package assets

import (
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateTexturesWritesAllFiles(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateTextures(dir, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("GenerateTextures: %v", err)
	}

	for _, name := range TextureNames {
		path := filepath.Join(dir, name+".png")
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("missing texture %s: %v", name, err)
			continue
		}
		if !hasPNGSignature(data) {
			t.Errorf("%s is not a valid PNG", name)
		}
	}
}

func TestGenerateTexturesDeterministic(t *testing.T) {
	dir1, dir2 := t.TempDir(), t.TempDir()
	if err := GenerateTextures(dir1, rand.New(rand.NewSource(42))); err != nil {
		t.Fatalf("GenerateTextures: %v", err)
	}
	if err := GenerateTextures(dir2, rand.New(rand.NewSource(42))); err != nil {
		t.Fatalf("GenerateTextures: %v", err)
	}

	a, err := os.ReadFile(filepath.Join(dir1, "wall_stone.png"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dir2, "wall_stone.png"))
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("same seed should produce identical textures")
	}
}

func TestGenerateInteriors(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateInteriors(dir, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("GenerateInteriors: %v", err)
	}

	for _, name := range InteriorTypes() {
		if _, err := os.Stat(filepath.Join(dir, name+".png")); err != nil {
			t.Errorf("missing interior %s: %v", name, err)
		}
	}
}

func TestGenerateInteriorsDeterministic(t *testing.T) {
	dir1, dir2 := t.TempDir(), t.TempDir()
	if err := GenerateInteriors(dir1, rand.New(rand.NewSource(42))); err != nil {
		t.Fatalf("GenerateInteriors: %v", err)
	}
	if err := GenerateInteriors(dir2, rand.New(rand.NewSource(42))); err != nil {
		t.Fatalf("GenerateInteriors: %v", err)
	}

	for _, name := range InteriorTypes() {
		a, err := os.ReadFile(filepath.Join(dir1, name+".png"))
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(filepath.Join(dir2, name+".png"))
		if err != nil {
			t.Fatal(err)
		}
		if string(a) != string(b) {
			t.Errorf("same seed should produce identical %s backdrop", name)
		}
	}
}

func TestLoadTextureRoundTrip(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateTextures(dir, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("GenerateTextures: %v", err)
	}

	tex := LoadTexture(dir, TexSkyNight, rgb(255, 0, 0))

	// The night sky is dark; luminance should be low everywhere.
	for _, v := range []float64{0, 0.5, 0.99} {
		if lum := tex.Luminance(0.5, v); lum > 90 {
			t.Errorf("night sky luminance at v=%.2f = %d, want dark", v, lum)
		}
	}
}

func TestLoadTextureFallback(t *testing.T) {
	tex := LoadTexture(t.TempDir(), "missing", color.RGBA{R: 10, G: 20, B: 30, A: 255})

	c := tex.At(0.3, 0.7)
	if c.R != 10 || c.G != 20 || c.B != 30 {
		t.Errorf("fallback pixel = %+v, want flat 10/20/30", c)
	}
}

func TestTextureCoordinateWrap(t *testing.T) {
	tex := flatTexture(rgb(50, 50, 50))

	// Out-of-range coordinates must not panic and must wrap.
	for _, uv := range [][2]float64{{-0.25, 0}, {1.75, 2.5}, {0.999999, 0.999999}} {
		c := tex.At(uv[0], uv[1])
		if c.R != 50 {
			t.Errorf("At(%v) = %+v", uv, c)
		}
	}
}

func TestLoadInteriorGrid(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateInteriors(dir, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("GenerateInteriors: %v", err)
	}

	grid, err := LoadInteriorGrid(filepath.Join(dir, "tavern.png"), 40, 12)
	if err != nil {
		t.Fatalf("LoadInteriorGrid: %v", err)
	}
	if len(grid) != 12 || len(grid[0]) != 40 {
		t.Fatalf("grid size = %dx%d, want 40x12", len(grid[0]), len(grid))
	}

	// Tavern gradient gets darker toward the bottom.
	top := int(grid[0][20].R) + int(grid[0][20].G) + int(grid[0][20].B)
	bottom := int(grid[11][20].R) + int(grid[11][20].G) + int(grid[11][20].B)
	if top <= bottom {
		t.Errorf("gradient direction wrong: top %d, bottom %d", top, bottom)
	}
}

func TestLoadInteriorGridMissing(t *testing.T) {
	if _, err := LoadInteriorGrid(filepath.Join(t.TempDir(), "nope.png"), 10, 10); err == nil {
		t.Error("missing interior should error")
	}
}

func TestRejectNonPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fake.png")
	if err := os.WriteFile(path, []byte("definitely not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := decodePNGFile(path); err == nil {
		t.Error("non-PNG data should be rejected before decoding")
	}
}
