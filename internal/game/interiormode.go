package game

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/citadelgame/citadel/internal/assets"
	"github.com/citadelgame/citadel/internal/core"
)

// interiorCache holds backdrop grids quantized to terminal colors, one
// per establishment type and screen size. Loading and resampling a PNG
// every frame would dominate the tick budget.
type interiorCache struct {
	dir   string
	grids map[string][][]core.Color

	// load is swappable so tests can run without image files.
	load func(path string, w, h int) ([][]color.RGBA, error)
}

func newInteriorCache(dir string) *interiorCache {
	return &interiorCache{
		dir:   dir,
		grids: make(map[string][][]core.Color),
		load:  assets.LoadInteriorGrid,
	}
}

// grid returns the backdrop for typ at the given size, or nil when the
// image is missing or unreadable.
func (c *interiorCache) grid(typ string, w, h int) [][]core.Color {
	key := fmt.Sprintf("%s:%dx%d", typ, w, h)
	if g, ok := c.grids[key]; ok {
		return g
	}
	px, err := c.load(filepath.Join(c.dir, typ+".png"), w, h)
	if err != nil {
		c.grids[key] = nil
		return nil
	}
	g := make([][]core.Color, len(px))
	for y, row := range px {
		g[y] = make([]core.Color, len(row))
		for x, p := range row {
			g[y][x] = core.FromRGB(p.R, p.G, p.B)
		}
	}
	c.grids[key] = g
	return g
}

func (g *Game) renderInterior(s *core.Screen) {
	w, h := s.Width(), s.Height()

	if grid := g.interiors.grid(g.est.Type, w, h); grid != nil {
		for y := 0; y < h && y < len(grid); y++ {
			for x := 0; x < w && x < len(grid[y]); x++ {
				s.SetCell(x, y, '▒', grid[y][x])
			}
		}
	} else {
		s.DrawRect(core.NewRect(0, 0, w, h), '▒', core.ColorDarkGray)
	}

	g.renderMenu(s)
	g.renderHUD(s)
}

// renderMenu draws the establishment name and numbered actions in a
// centered box over the backdrop.
func (g *Game) renderMenu(s *core.Screen) {
	title := g.est.DisplayName()
	lines := make([]string, 0, len(g.est.Menu))
	for i, item := range g.est.Menu {
		lines = append(lines, fmt.Sprintf("%d) %s", i+1, item))
	}
	hint := "ESC to leave"

	width := len(title)
	for _, l := range lines {
		width = core.Max(width, len(l))
	}
	width = core.Max(width, len(hint)) + 6

	height := len(lines) + 5
	box := core.NewRect((s.Width()-width)/2, (s.Height()-height)/2, width, height)
	s.DrawRect(box, ' ', core.ColorWhite)
	s.DrawBox(box, core.ColorGold)
	s.DrawTextColor(box.X+(width-len(title))/2, box.Y+1, title, core.ColorGold)
	for i, l := range lines {
		s.DrawTextColor(box.X+3, box.Y+3+i, l, core.ColorWhite)
	}
	s.DrawTextColor(box.X+(width-len(hint))/2, box.Bottom()-2, hint, core.ColorGray)
}
