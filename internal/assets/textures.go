// Package assets generates and loads the game's image assets: 64x64 wall
// and sky textures plus painterly interior backdrops, written as PNG
// files so they survive between runs and can be replaced by hand-made
// art.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"math/rand"
	"os"
	"path/filepath"
)

// TileSize is the square texture edge in pixels, matching the sampling
// resolution of the wall renderer.
const TileSize = 64

// Texture file names, without extension.
const (
	TexFloor     = "floor"
	TexWallStone = "wall_stone"
	TexWallWood  = "wall_wood"
	TexWallShop  = "wall_shop"
	TexDoor      = "door"
	TexSkyDay    = "sky_day"
	TexSkyNight  = "sky_night"
)

// TextureNames lists every texture the generator produces.
var TextureNames = []string{
	TexFloor, TexWallStone, TexWallWood, TexWallShop,
	TexDoor, TexSkyDay, TexSkyNight,
}

// GenerateTextures writes the full texture set into dir, creating it if
// needed. The rng drives speckle and grain placement; a fixed seed gives
// byte-identical output.
func GenerateTextures(dir string, rng *rand.Rand) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("assets: cannot create %s: %w", dir, err)
	}

	textures := map[string]*image.RGBA{
		TexFloor:     genFloor(),
		TexWallStone: genWallStone(rng),
		TexWallWood:  genWallWood(rng),
		TexWallShop:  genWallShop(),
		TexDoor:      genDoor(),
		TexSkyDay:    genSky(rgb(100, 150, 220), rgb(180, 210, 255)),
		TexSkyNight:  genSky(rgb(10, 10, 30), rgb(40, 40, 60)),
	}

	for name, img := range textures {
		path := filepath.Join(dir, name+".png")
		if err := writePNG(path, img); err != nil {
			return err
		}
	}
	return nil
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func newTile() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
}

// gradient fills the image with a vertical blend from top to bottom.
func gradient(img *image.RGBA, top, bottom color.RGBA) {
	b := img.Bounds()
	h := b.Dy()
	for y := 0; y < h; y++ {
		ratio := float64(y) / float64(h)
		c := color.RGBA{
			R: lerp(top.R, bottom.R, ratio),
			G: lerp(top.G, bottom.G, ratio),
			B: lerp(top.B, bottom.B, ratio),
			A: 255,
		}
		for x := 0; x < b.Dx(); x++ {
			img.SetRGBA(b.Min.X+x, b.Min.Y+y, c)
		}
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t)
}

// genFloor produces the gray sine-pattern cobble floor.
func genFloor() *image.RGBA {
	img := newTile()
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			c := 100 + int(20*math.Sin(float64(x)/4)+10*math.Cos(float64(y)/4))
			v := uint8(c)
			img.SetRGBA(x, y, rgb(v, v, v))
		}
	}
	return img
}

// genWallStone produces a gradient wall with random dark speckles.
func genWallStone(rng *rand.Rand) *image.RGBA {
	img := newTile()
	gradient(img, rgb(90, 90, 100), rgb(60, 60, 70))
	for i := 0; i < 100; i++ {
		x, y := rng.Intn(TileSize), rng.Intn(TileSize)
		img.SetRGBA(x, y, rgb(50, 50, 50))
	}
	return img
}

// genWallWood produces a gradient wall with vertical grain lines.
func genWallWood(rng *rand.Rand) *image.RGBA {
	img := newTile()
	gradient(img, rgb(120, 90, 60), rgb(90, 60, 40))
	for i := 0; i < 10; i++ {
		x := rng.Intn(TileSize)
		for y := 0; y < TileSize; y++ {
			img.SetRGBA(x, y, rgb(80, 60, 40))
		}
	}
	return img
}

// genWallShop produces a pale wall with an inset display frame.
func genWallShop() *image.RGBA {
	img := newTile()
	gradient(img, rgb(160, 160, 180), rgb(120, 120, 140))
	frame := rgb(200, 200, 210)
	for x := 8; x < 56; x++ {
		img.SetRGBA(x, 8, frame)
		img.SetRGBA(x, 55, frame)
	}
	for y := 8; y < 56; y++ {
		img.SetRGBA(8, y, frame)
		img.SetRGBA(55, y, frame)
	}
	return img
}

// genDoor produces a dark door with a raised center panel.
func genDoor() *image.RGBA {
	img := newTile()
	gradient(img, rgb(70, 50, 30), rgb(40, 30, 20))
	panel := rgb(90, 70, 50)
	for y := 16; y < 48; y++ {
		for x := 24; x < 40; x++ {
			img.SetRGBA(x, y, panel)
		}
	}
	return img
}

func genSky(top, bottom color.RGBA) *image.RGBA {
	img := newTile()
	gradient(img, top, bottom)
	return img
}

// writePNG encodes an image to a PNG file.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("assets: cannot create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("assets: cannot encode %s: %w", path, err)
	}
	return nil
}
