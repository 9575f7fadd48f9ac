package assets

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Interior backdrop dimensions in pixels.
const (
	InteriorW = 640
	InteriorH = 360
)

// interiorScene pairs an establishment type with its gradient palette.
type interiorScene struct {
	top, bottom color.RGBA
}

// interiorScenes lists every backdrop the generator produces.
var interiorScenes = map[string]interiorScene{
	"tavern":  {rgb(90, 50, 40), rgb(40, 20, 15)},
	"shop":    {rgb(120, 120, 130), rgb(60, 60, 70)},
	"bank":    {rgb(50, 80, 50), rgb(20, 40, 20)},
	"guild":   {rgb(100, 70, 40), rgb(40, 30, 20)},
	"healer":  {rgb(180, 180, 200), rgb(100, 100, 130)},
	"dungeon": {rgb(30, 30, 40), rgb(10, 10, 15)},
}

// InteriorTypes returns the establishment types with generated
// backdrops, sorted.
func InteriorTypes() []string {
	out := make([]string, 0, len(interiorScenes))
	for name := range interiorScenes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// GenerateInteriors writes every interior backdrop into dir, creating it
// if needed. The rng drives the painterly noise layer; scenes are
// painted in sorted order so the same seed yields the same bytes.
func GenerateInteriors(dir string, rng *rand.Rand) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("assets: cannot create %s: %w", dir, err)
	}

	for _, name := range InteriorTypes() {
		img := paintInterior(name, interiorScenes[name], rng)
		path := filepath.Join(dir, name+".png")
		if err := writePNG(path, img); err != nil {
			return err
		}
	}
	return nil
}

// paintInterior builds one backdrop: gradient, speckle noise, and the
// scene title centered on the canvas.
func paintInterior(name string, scene interiorScene, rng *rand.Rand) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, InteriorW, InteriorH))
	gradient(img, scene.top, scene.bottom)

	// Painterly noise: nudge random pixels a few shades up or down.
	for i := 0; i < 1000; i++ {
		x, y := rng.Intn(InteriorW), rng.Intn(InteriorH)
		shade := rng.Intn(21) - 10
		c := img.RGBAAt(x, y)
		img.SetRGBA(x, y, color.RGBA{
			R: shiftChannel(c.R, shade),
			G: shiftChannel(c.G, shade),
			B: shiftChannel(c.B, shade),
			A: 255,
		})
	}

	drawTitle(img, titleCase(name))
	return img
}

func shiftChannel(v uint8, delta int) uint8 {
	n := int(v) + delta
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// drawTitle renders the scene name centered on the image.
func drawTitle(img *image.RGBA, title string) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, title).Ceil()

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I((InteriorW - width) / 2),
			Y: fixed.I(InteriorH / 2),
		},
	}
	d.DrawString(title)
}
