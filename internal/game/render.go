package game

import (
	"math"

	"github.com/citadelgame/citadel/internal/assets"
	"github.com/citadelgame/citadel/internal/core"
	"github.com/citadelgame/citadel/internal/world"
)

// shadeRamp orders block runes from densest to lightest. The renderer
// picks one by texture luminance and distance so far walls read dimmer
// even on terminals that clamp colors.
var shadeRamp = []rune{'█', '▓', '▒', '░'}

// labelRange is how close a building front must be before its name is
// drawn over the wall.
const labelRange = 6.0

func (g *Game) renderTown(s *core.Screen) {
	w, h := s.Width(), s.Height()
	if w == 0 || h == 0 {
		return
	}

	g.renderBackdrop(s)

	fov := g.cfg.View.FOVDegrees * math.Pi / 180
	hits := castRays(g.grid,
		float64(g.x)+0.5, float64(g.y)+0.5,
		g.heading.Angle(), fov,
		w, g.cfg.View.MaxDepth, g.cfg.View.RayStep)

	for col, hit := range hits {
		if !hit.hit {
			continue
		}
		height := projectHeight(hit.depth, h)
		top := (h - height) / 2
		tex := g.textureFor(hit.tile)
		fade := g.fade(hit.depth)
		for row := 0; row < height; row++ {
			v := float64(row) / float64(height)
			c := tex.At(hit.frac, v)
			r := shadeRune(float64(tex.Luminance(hit.frac, v)) * fade)
			s.SetCell(col, top+row, r, core.FromRGB(dim(c.R, fade), dim(c.G, fade), dim(c.B, fade)))
		}
	}

	g.renderLabels(s, hits)
	g.renderHUD(s)
	if g.showMap {
		g.renderMap(s)
	}
	if g.showInventory {
		g.renderInventory(s)
	}
}

// renderBackdrop fills the frame with sky above the horizon and floor
// below it before wall slices are drawn over it.
func (g *Game) renderBackdrop(s *core.Screen) {
	w, h := s.Width(), s.Height()
	horizon := h / 2
	sky := g.tex.SkyDay
	if !g.day {
		sky = g.tex.SkyNight
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if y < horizon {
				c := sky.At(float64(x)/float64(w), float64(y)/float64(core.Max(horizon, 1)))
				s.SetCell(x, y, '░', core.FromRGB(c.R, c.G, c.B))
			} else {
				// Rows closer to the bottom are nearer, so shade them
				// brighter.
				near := float64(y-horizon) / float64(core.Max(h-horizon, 1))
				fade := 0.4 + 0.6*near
				c := g.tex.Floor.At(float64(x)/8, float64(y)/4)
				s.SetCell(x, y, '·', core.FromRGB(dim(c.R, fade), dim(c.G, fade), dim(c.B, fade)))
			}
		}
	}
}

func (g *Game) textureFor(t world.Tile) *assets.Texture {
	switch {
	case t.Door():
		return g.tex.Door
	case t.Wood():
		return g.tex.WallWood
	case t.Key() != 0:
		return g.tex.WallShop
	default:
		return g.tex.WallStone
	}
}

// fade returns a brightness multiplier for a wall at the given depth,
// dropping further at night.
func (g *Game) fade(depth float64) float64 {
	f := 1.0 - 0.7*core.ClampF(depth/g.cfg.View.MaxDepth, 0, 1)
	if !g.day {
		f *= 0.6
	}
	return f
}

func shadeRune(lum float64) rune {
	switch {
	case lum > 180:
		return shadeRamp[0]
	case lum > 120:
		return shadeRamp[1]
	case lum > 60:
		return shadeRamp[2]
	default:
		return shadeRamp[3]
	}
}

func dim(v uint8, f float64) uint8 {
	return uint8(core.ClampF(float64(v)*f, 0, 255))
}

// renderLabels draws establishment names over nearby building fronts.
// Contiguous columns hitting the same lettered tile form one run; the
// label goes above the run's wall slice, centered.
func (g *Game) renderLabels(s *core.Screen, hits []rayHit) {
	h := s.Height()
	runStart := -1
	var runTile world.Tile
	var runDepth float64

	flush := func(end int) {
		if runStart < 0 {
			return
		}
		defer func() { runStart = -1 }()
		if runDepth > labelRange {
			return
		}
		est, ok := g.dir.ByTile(runTile)
		if !ok {
			return
		}
		label := est.DisplayName()
		mid := (runStart + end) / 2
		row := core.Clamp((h-projectHeight(runDepth, h))/2-1, 0, h-1)
		s.DrawTextColor(mid-len(label)/2, row, label, core.ColorGold)
	}

	for col, hit := range hits {
		key := byte(0)
		if hit.hit {
			key = hit.tile.Key()
		}
		if key == 0 {
			flush(col - 1)
			continue
		}
		if runStart >= 0 && hit.tile == runTile {
			if hit.depth < runDepth {
				runDepth = hit.depth
			}
			continue
		}
		flush(col - 1)
		runStart = col
		runTile = hit.tile
		runDepth = hit.depth
	}
	flush(len(hits) - 1)
}
