package game

import (
	"math"

	"github.com/citadelgame/citadel/internal/world"
)

// rayHit describes the wall a single ray column landed on.
type rayHit struct {
	depth float64    // perpendicular distance, fisheye corrected
	tile  world.Tile // the tile that stopped the ray
	frac  float64    // horizontal texture coordinate in [0,1)
	hit   bool
}

// castRays marches one ray per screen column from (px,py) facing pa.
// fov is in radians. Rays step in small increments until they enter a
// solid tile or exceed maxDepth.
func castRays(g *world.Grid, px, py, pa, fov float64, cols int, maxDepth, rayStep float64) []rayHit {
	hits := make([]rayHit, cols)
	if cols == 0 {
		return hits
	}
	start := pa - fov/2
	delta := fov / float64(cols)

	for col := 0; col < cols; col++ {
		ang := start + delta*float64(col)
		sin, cos := math.Sin(ang), math.Cos(ang)

		for depth := rayStep; depth < maxDepth; depth += rayStep {
			tx := px + depth*cos
			ty := py + depth*sin
			tile := g.At(int(tx), int(ty))
			if !tile.Solid() {
				continue
			}
			// Correct the fisheye distortion: project the ray length
			// onto the view direction.
			corrected := depth * math.Cos(pa-ang)
			if corrected < 1e-4 {
				corrected = 1e-4
			}
			hits[col] = rayHit{
				depth: corrected,
				tile:  tile,
				frac:  wallFrac(tx, ty),
				hit:   true,
			}
			break
		}
	}
	return hits
}

// wallFrac picks the texture coordinate from the axis the ray travelled
// furthest along inside the cell, which tracks the face it entered
// through closely enough for a character grid.
func wallFrac(tx, ty float64) float64 {
	fx := tx - math.Floor(tx)
	fy := ty - math.Floor(ty)
	dx := math.Abs(fx - 0.5)
	dy := math.Abs(fy - 0.5)
	if dx > dy {
		return fy
	}
	return fx
}

// projectHeight converts a corrected depth into a wall slice height in
// screen rows.
func projectHeight(depth float64, screenH int) int {
	h := int(1.2 * float64(screenH) / depth)
	if h > screenH {
		h = screenH
	}
	if h < 1 {
		h = 1
	}
	return h
}
