// Package game implements the town simulation: stepped first-person
// movement, establishment interiors, player stats and toasts. It depends
// only on core, world, player, interior, assets and config, never on the
// platform layer.
package game

import (
	"github.com/citadelgame/citadel/internal/assets"
	"github.com/citadelgame/citadel/internal/config"
	"github.com/citadelgame/citadel/internal/core"
	"github.com/citadelgame/citadel/internal/interior"
	"github.com/citadelgame/citadel/internal/player"
	"github.com/citadelgame/citadel/internal/world"
)

// Visit records one completed interior action for persistence. The
// platform drains these each tick via TakeVisits.
type Visit struct {
	Establishment string
	Action        string
	GoldDelta     int
}

// Game is the complete simulation state. All mutation happens inside
// Step; Render only reads.
type Game struct {
	cfg config.GameConfig
	rt  core.RuntimeConfig

	grid *world.Grid
	dir  *world.Directory
	tex  *assets.Set

	tick uint64

	x, y    int
	heading Heading

	cooldown      int // ticks until the next step is accepted
	stepCooldown  int
	day           bool
	showMap       bool
	showInventory bool

	inInterior bool
	est        world.Establishment
	interiors  *interiorCache

	stats  player.Stats
	toasts *toastQueue
	visits []Visit
	dirty  bool
	done   bool
}

// New creates a game over the given world and assets. interiorDir is
// where backdrop images live; stats is the persisted player state.
func New(cfg config.GameConfig, grid *world.Grid, dir *world.Directory, tex *assets.Set, interiorDir string, stats player.Stats) *Game {
	return &Game{
		cfg:       cfg,
		grid:      grid,
		dir:       dir,
		tex:       tex,
		interiors: newInteriorCache(interiorDir),
		stats:     stats,
	}
}

// Reset prepares the game for a fresh session. Player stats survive a
// reset; position, facing and overlays do not.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.stepCooldown = g.cfg.StepCooldownTicks(rt.TickRate)
	g.toasts = newToastQueue(g.cfg.ToastTicks(rt.TickRate))

	g.tick = 0
	g.x, g.y = g.grid.Start()
	g.heading = North
	g.cooldown = 0
	g.day = true
	g.showMap = false
	g.showInventory = false
	g.inInterior = false
	g.visits = nil
	g.dirty = false
	g.done = false
}

// Step advances the simulation by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.dirty = false
	if g.cooldown > 0 {
		g.cooldown--
	}

	if input.Has(core.ActionQuit) {
		g.done = true
		return g.result()
	}

	if g.inInterior {
		g.stepInterior(input)
	} else {
		g.stepTown(input)
	}
	return g.result()
}

func (g *Game) stepTown(input core.InputFrame) {
	// On the street ESC ends the session; inside it only leaves the
	// establishment.
	if input.Has(core.ActionBack) {
		g.done = true
		return
	}
	if input.Has(core.ActionMap) {
		g.showMap = !g.showMap
	}
	if input.Has(core.ActionInventory) {
		g.showInventory = !g.showInventory
	}
	if input.Has(core.ActionDayNight) {
		g.day = !g.day
	}

	// Turns are always instant; only steps are throttled.
	if input.Has(core.ActionTurnLeft) {
		g.heading = g.heading.Left()
	}
	if input.Has(core.ActionTurnRight) {
		g.heading = g.heading.Right()
	}

	switch {
	case input.Has(core.ActionForward):
		g.tryStep(1)
	case input.Has(core.ActionBackward):
		g.tryStep(-1)
	}
}

// tryStep attempts one tile of movement along the current heading.
// Walking into an establishment tile enters it instead of bumping.
func (g *Game) tryStep(sign int) {
	if g.cooldown > 0 {
		return
	}
	dx, dy := g.heading.Delta()
	nx, ny := g.x+dx*sign, g.y+dy*sign

	if g.grid.Walkable(nx, ny) {
		g.x, g.y = nx, ny
		g.cooldown = g.stepCooldown
		return
	}
	// Only a forward bump opens a door.
	if sign < 0 {
		return
	}
	tile := g.grid.At(nx, ny)
	if est, ok := g.dir.ByTile(tile); ok {
		g.enter(est)
		g.cooldown = g.stepCooldown
	}
}

func (g *Game) enter(est world.Establishment) {
	g.inInterior = true
	g.est = est
	g.toasts.add("Entering "+est.DisplayName(), g.tick)
}

func (g *Game) leave() {
	g.inInterior = false
}

func (g *Game) stepInterior(input core.InputFrame) {
	if input.Has(core.ActionBack) {
		g.leave()
		return
	}
	for _, a := range []core.Action{core.ActionMenu1, core.ActionMenu2, core.ActionMenu3, core.ActionMenu4} {
		if !input.Has(a) {
			continue
		}
		idx := a.MenuIndex()
		if idx < 0 || idx >= len(g.est.Menu) {
			continue
		}
		g.choose(idx)
		return
	}
}

func (g *Game) choose(idx int) {
	before := g.stats
	out := interior.Lookup(g.est.Type).Act(idx, g.est.Menu, g.stats)
	if out.Toast != "" {
		g.toasts.add(out.Toast, g.tick)
	}
	if !out.Applied {
		return
	}
	g.stats = out.Stats
	g.dirty = true
	g.visits = append(g.visits, Visit{
		Establishment: g.est.Type,
		Action:        g.est.Menu[idx],
		GoldDelta:     g.stats.Gold - before.Gold,
	})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: core.GameState{
		Done:       g.done,
		InInterior: g.inInterior,
		DirtyStats: g.dirty,
	}}
}

// State reports the current game status without advancing the tick.
func (g *Game) State() core.GameState {
	return core.GameState{Done: g.done, InInterior: g.inInterior, DirtyStats: g.dirty}
}

// Stats returns the current player stats.
func (g *Game) Stats() player.Stats {
	return g.stats
}

// TakeVisits returns the visits recorded since the last call and clears
// the buffer.
func (g *Game) TakeVisits() []Visit {
	v := g.visits
	g.visits = nil
	return v
}

// Render draws the current frame onto screen.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()
	if g.inInterior {
		g.renderInterior(screen)
	} else {
		g.renderTown(screen)
	}
	g.renderToasts(screen)
}
