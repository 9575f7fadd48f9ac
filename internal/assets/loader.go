package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// Texture is a decoded tile resampled to TileSize, with pixels accessible
// by normalized coordinates for the wall renderer.
type Texture struct {
	pixels *image.RGBA
}

// pngSignature is the fixed 8-byte header every PNG file starts with.
var pngSignature = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

func hasPNGSignature(data []byte) bool {
	return len(data) >= 8 && bytes.Equal(data[:8], pngSignature)
}

// LoadTexture reads dir/name.png and resamples it to TileSize. A missing
// or unreadable file yields a flat-color texture instead of an error, so
// the renderer always has something to sample.
func LoadTexture(dir, name string, fallback color.RGBA) *Texture {
	img, err := decodePNGFile(filepath.Join(dir, name+".png"))
	if err != nil {
		return flatTexture(fallback)
	}
	return &Texture{pixels: resample(img, TileSize, TileSize)}
}

func flatTexture(c color.RGBA) *Texture {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return &Texture{pixels: img}
}

// At returns the texture pixel at normalized coordinates; u and v are
// wrapped into [0, 1).
func (t *Texture) At(u, v float64) color.RGBA {
	x := int(wrap(u) * TileSize)
	y := int(wrap(v) * TileSize)
	if x >= TileSize {
		x = TileSize - 1
	}
	if y >= TileSize {
		y = TileSize - 1
	}
	return t.pixels.RGBAAt(x, y)
}

// Luminance returns the perceived brightness (0-255) at normalized
// coordinates. The wall renderer turns this into shading runes.
func (t *Texture) Luminance(u, v float64) uint8 {
	c := t.At(u, v)
	// Rec. 601 luma weights.
	return uint8((299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000)
}

func wrap(f float64) float64 {
	f -= float64(int(f))
	if f < 0 {
		f += 1
	}
	return f
}

// Set bundles every texture the renderer needs. Fallback colors mirror
// the generated palette so a missing file degrades gracefully.
type Set struct {
	Floor     *Texture
	WallStone *Texture
	WallWood  *Texture
	WallShop  *Texture
	Door      *Texture
	SkyDay    *Texture
	SkyNight  *Texture
}

// LoadSet loads the full texture set from dir.
func LoadSet(dir string) *Set {
	return &Set{
		Floor:     LoadTexture(dir, TexFloor, rgb(180, 180, 190)),
		WallStone: LoadTexture(dir, TexWallStone, rgb(200, 200, 200)),
		WallWood:  LoadTexture(dir, TexWallWood, rgb(170, 140, 100)),
		WallShop:  LoadTexture(dir, TexWallShop, rgb(190, 185, 180)),
		Door:      LoadTexture(dir, TexDoor, rgb(130, 90, 60)),
		SkyDay:    LoadTexture(dir, TexSkyDay, rgb(135, 206, 235)),
		SkyNight:  LoadTexture(dir, TexSkyNight, rgb(20, 30, 60)),
	}
}

// LoadInteriorGrid decodes an interior backdrop and resamples it down to
// a w x h pixel grid, one pixel per terminal cell.
func LoadInteriorGrid(path string, w, h int) ([][]color.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("assets: invalid grid size %dx%d", w, h)
	}

	img, err := decodePNGFile(path)
	if err != nil {
		return nil, err
	}

	scaled := resample(img, w, h)
	grid := make([][]color.RGBA, h)
	for y := 0; y < h; y++ {
		row := make([]color.RGBA, w)
		for x := 0; x < w; x++ {
			row[x] = scaled.RGBAAt(x, y)
		}
		grid[y] = row
	}
	return grid, nil
}

// decodePNGFile reads and decodes a PNG, rejecting non-PNG data before
// handing it to the decoder.
func decodePNGFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read %s: %w", path, err)
	}
	if !hasPNGSignature(data) {
		return nil, fmt.Errorf("assets: %s is not a PNG file", path)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return img, nil
}

// resample scales an image to the given size with bilinear filtering.
func resample(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
