// Package world provides the town map grid and the establishment
// directory loaded from data files.
package world

import (
	"fmt"
	"os"
	"strings"
)

// Tile is a single map cell, stored as its map character.
type Tile byte

// Well-known tiles. Establishment fronts are letters resolved through
// the Directory; everything that is not floor stops both rays and steps.
const (
	TileFloor Tile = '.'
	TileWall  Tile = '#'
	TileStart Tile = '@' // cleared to floor during parsing
)

// Solid reports whether a ray stops at this tile.
func (t Tile) Solid() bool {
	return t != TileFloor
}

// Wood reports whether the tile renders with the wooden wall texture.
func (t Tile) Wood() bool {
	switch t {
	case 'W', 'w', 'T', 't':
		return true
	}
	return false
}

// Door reports whether the tile renders with the door texture.
func (t Tile) Door() bool {
	return t == 'D' || t == 'd'
}

// Key returns the lowercase letter used to look the tile up in the
// establishment directory, or 0 for non-letter tiles.
func (t Tile) Key() byte {
	c := byte(t)
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	if c >= 'a' && c <= 'z' {
		return c
	}
	return 0
}

// Grid is the parsed town map. Coordinates are (x, y) with the origin at
// the top-left; out-of-bounds cells behave as stone walls.
type Grid struct {
	cells  [][]Tile
	width  int
	height int
	startX int
	startY int
}

// ParseGrid parses map data: one row per line, trailing newlines
// stripped, ragged short rows padded with walls. A single '@' marks the
// player start and is cleared to floor; without one the start falls back
// to the map center.
func ParseGrid(data []byte) (*Grid, error) {
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 0 || (len(lines) == 1 && lines[0] == "") {
		return nil, fmt.Errorf("world: map is empty")
	}

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("world: map is empty")
	}

	g := &Grid{
		width:  width,
		height: len(lines),
		startX: -1,
		startY: -1,
	}

	g.cells = make([][]Tile, g.height)
	for y, line := range lines {
		row := make([]Tile, width)
		for x := range row {
			if x < len(line) {
				row[x] = Tile(line[x])
			} else {
				row[x] = TileWall
			}
		}
		g.cells[y] = row
	}

	// Find and clear the start marker.
	for y := 0; y < g.height && g.startX < 0; y++ {
		for x := 0; x < width; x++ {
			if g.cells[y][x] == TileStart {
				g.startX, g.startY = x, y
				g.cells[y][x] = TileFloor
				break
			}
		}
	}
	if g.startX < 0 {
		g.startX = width / 2
		g.startY = g.height / 2
	}

	return g, nil
}

// LoadGrid reads and parses a map file.
func LoadGrid(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("world: cannot read map %s: %w", path, err)
	}
	g, err := ParseGrid(data)
	if err != nil {
		return nil, fmt.Errorf("world: %s: %w", path, err)
	}
	return g, nil
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in tiles.
func (g *Grid) Height() int {
	return g.height
}

// Start returns the player start tile.
func (g *Grid) Start() (int, int) {
	return g.startX, g.startY
}

// At returns the tile at (x, y). Out-of-bounds is stone wall.
func (g *Grid) At(x, y int) Tile {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return TileWall
	}
	return g.cells[y][x]
}

// Walkable reports whether the player can stand on (x, y).
func (g *Grid) Walkable(x, y int) bool {
	return g.At(x, y) == TileFloor
}
