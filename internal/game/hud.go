package game

import (
	"fmt"

	"github.com/citadelgame/citadel/internal/core"
	"github.com/citadelgame/citadel/internal/world"
)

// inventoryItems is the player's fixed starting kit. There is no item
// economy yet, so the inventory is display only.
var inventoryItems = []string{
	"Rusty Sword",
	"Leather Tunic",
	"3 Gold Coins",
	"Apple",
}

// renderHUD draws the stats line along the bottom row and the compass
// in the top-right corner.
func (g *Game) renderHUD(s *core.Screen) {
	h := s.Height()
	line := fmt.Sprintf(" HP %d  STA %d  CHA %d  GOLD %d ",
		g.stats.Health, g.stats.Stamina, g.stats.Charisma, g.stats.Gold)
	s.DrawTextColor(0, h-1, line, core.ColorWhite)

	g.renderCompass(s)
}

// renderCompass shows the four cardinal letters with the current facing
// highlighted.
func (g *Game) renderCompass(s *core.Screen) {
	letters := []Heading{North, East, South, West}
	x := s.Width() - 2*len(letters) - 1
	for i, hd := range letters {
		c := core.ColorGray
		if hd == g.heading {
			c = core.ColorGold
		}
		s.DrawTextColor(x+2*i, 0, hd.String(), c)
	}
}

// renderMap overlays a top-down view of the town in the top-left
// corner. The player appears as a heading arrow.
func (g *Game) renderMap(s *core.Screen) {
	mw := core.Min(g.grid.Width(), s.Width()-4)
	mh := core.Min(g.grid.Height(), s.Height()-4)
	box := core.NewRect(1, 1, mw+2, mh+2)
	s.DrawRect(box, ' ', core.ColorWhite)
	s.DrawBox(box, core.ColorWhite)

	for y := 0; y < mh; y++ {
		for x := 0; x < mw; x++ {
			t := g.grid.At(x, y)
			r, c := mapGlyph(t)
			s.SetCell(2+x, 2+y, r, c)
		}
	}
	if g.x < mw && g.y < mh {
		s.SetCell(2+g.x, 2+g.y, g.heading.Arrow(), core.ColorGold)
	}
}

func mapGlyph(t world.Tile) (rune, core.Color) {
	switch {
	case t == world.TileFloor:
		return '.', core.ColorGray
	case t.Door():
		return '+', core.ColorBrown
	case t.Key() != 0:
		return rune(t), core.ColorGold
	case t.Wood():
		return '#', core.ColorBrown
	default:
		return '#', core.ColorWhite
	}
}

// renderInventory draws a centered box listing the player's items.
func (g *Game) renderInventory(s *core.Screen) {
	w := 24
	h := len(inventoryItems) + 4
	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.DrawRect(box, ' ', core.ColorWhite)
	s.DrawBox(box, core.ColorWhite)
	s.DrawTextColor(box.X+2, box.Y+1, "Inventory", core.ColorGold)
	for i, item := range inventoryItems {
		s.DrawTextColor(box.X+2, box.Y+2+i, "- "+item, core.ColorWhite)
	}
}

// renderToasts stacks active messages above the stats line, newest at
// the bottom.
func (g *Game) renderToasts(s *core.Screen) {
	msgs := g.toasts.active(g.tick)
	base := s.Height() - 2
	for i := len(msgs) - 1; i >= 0; i-- {
		row := base - (len(msgs) - 1 - i)
		if row < 0 {
			break
		}
		s.DrawTextCenteredColor(row, " "+msgs[i]+" ", core.ColorGold)
	}
}
