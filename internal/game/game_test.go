package game

import (
	"image/color"
	"reflect"
	"strings"
	"testing"

	"github.com/citadelgame/citadel/internal/assets"
	"github.com/citadelgame/citadel/internal/config"
	"github.com/citadelgame/citadel/internal/core"
	"github.com/citadelgame/citadel/internal/player"
	"github.com/citadelgame/citadel/internal/world"
)

const testMap = `#######
#.....#
#..@..#
#..t..#
#######`

const testEstablishments = `establishments:
  t:
    type: tavern
    name: "The Sleeping Gryphon"
    menu: ["Drink ale", "Eat a meal", "Sing a song", "Buy a round"]
`

func newTestGame(t *testing.T) *Game {
	t.Helper()
	grid, err := world.ParseGrid([]byte(testMap))
	if err != nil {
		t.Fatalf("parse grid: %v", err)
	}
	dir, err := world.ParseDirectory([]byte(testEstablishments))
	if err != nil {
		t.Fatalf("parse directory: %v", err)
	}
	tex := assets.LoadSet(t.TempDir())
	g := New(config.DefaultGameConfig(), grid, dir, tex, t.TempDir(), player.DefaultStats())
	g.Reset(core.DefaultConfig())
	return g
}

func press(g *Game, a core.Action) core.StepResult {
	frame := core.NewInputFrame()
	frame.Set(a)
	return g.Step(frame)
}

func idle(g *Game, n int) {
	frame := core.NewInputFrame()
	for i := 0; i < n; i++ {
		g.Step(frame)
	}
}

// waitCooldown runs enough empty ticks for the next step to be
// accepted.
func waitCooldown(g *Game) {
	idle(g, g.stepCooldown)
}

func TestResetPlacesPlayerAtStart(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()
	if snap.X != 3 || snap.Y != 2 {
		t.Fatalf("start = (%d,%d), want (3,2)", snap.X, snap.Y)
	}
	if snap.Heading != North {
		t.Fatalf("heading = %v, want North", snap.Heading)
	}
	if !snap.Day {
		t.Fatal("expected day mode after reset")
	}
}

func TestForwardMovesOneTile(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionForward)
	if snap := g.Snapshot(); snap.Y != 1 {
		t.Fatalf("y = %d after forward, want 1", snap.Y)
	}
}

func TestCooldownThrottlesSteps(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionForward)
	press(g, core.ActionForward)
	if snap := g.Snapshot(); snap.Y != 1 {
		t.Fatalf("second step during cooldown moved player to y=%d", snap.Y)
	}
}

func TestWallBlocksMovement(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionTurnLeft) // face west
	press(g, core.ActionForward)  // to (2,2)
	waitCooldown(g)
	press(g, core.ActionForward) // to (1,2)
	waitCooldown(g)
	press(g, core.ActionForward) // into the west wall
	// Column 1 is the westmost floor; the wall at column 0 must hold.
	if snap := g.Snapshot(); snap.X != 1 {
		t.Fatalf("x = %d, want 1 (stopped at wall)", snap.X)
	}
}

func TestBackwardStep(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionForward) // to (3,1)
	waitCooldown(g)
	press(g, core.ActionBackward)
	if snap := g.Snapshot(); snap.Y != 2 {
		t.Fatalf("y = %d after backward, want 2", snap.Y)
	}
}

func TestTurnsAreInstant(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionTurnRight)
	press(g, core.ActionTurnRight)
	if snap := g.Snapshot(); snap.Heading != South {
		t.Fatalf("heading = %v after two right turns, want South", snap.Heading)
	}
	press(g, core.ActionTurnLeft)
	if snap := g.Snapshot(); snap.Heading != East {
		t.Fatalf("heading = %v, want East", snap.Heading)
	}
}

func TestDayNightToggle(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionDayNight)
	if g.Snapshot().Day {
		t.Fatal("expected night after toggle")
	}
	press(g, core.ActionDayNight)
	if !g.Snapshot().Day {
		t.Fatal("expected day after second toggle")
	}
}

func TestOverlayToggles(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionMap)
	press(g, core.ActionInventory)
	snap := g.Snapshot()
	if !snap.ShowMap || !snap.ShowInventory {
		t.Fatalf("overlays = (%v,%v), want both on", snap.ShowMap, snap.ShowInventory)
	}
}

// enterTavern walks the player into the tavern tile below the start.
func enterTavern(t *testing.T, g *Game) {
	t.Helper()
	press(g, core.ActionTurnRight)
	press(g, core.ActionTurnRight) // face south
	res := press(g, core.ActionForward)
	if !res.State.InInterior {
		t.Fatal("walking into the tavern front did not enter it")
	}
}

func TestEnterEstablishment(t *testing.T) {
	g := newTestGame(t)
	enterTavern(t, g)
	snap := g.Snapshot()
	if snap.Establishment != "tavern" {
		t.Fatalf("establishment = %q, want tavern", snap.Establishment)
	}
	if len(snap.Toasts) == 0 || snap.Toasts[0] != "Entering The Sleeping Gryphon" {
		t.Fatalf("toasts = %v, want entering message", snap.Toasts)
	}
	// Position does not change when entering.
	if snap.X != 3 || snap.Y != 2 {
		t.Fatalf("player moved to (%d,%d) while entering", snap.X, snap.Y)
	}
}

func TestInteriorActionAppliesEffect(t *testing.T) {
	g := newTestGame(t)
	enterTavern(t, g)
	res := press(g, core.ActionMenu1) // Drink ale
	if !res.State.DirtyStats {
		t.Fatal("expected DirtyStats after a paid action")
	}
	stats := g.Stats()
	if stats.Stamina != 105 || stats.Gold != 49 {
		t.Fatalf("stats after drink = %+v", stats)
	}

	visits := g.TakeVisits()
	if len(visits) != 1 {
		t.Fatalf("visits = %d, want 1", len(visits))
	}
	v := visits[0]
	if v.Establishment != "tavern" || v.Action != "Drink ale" || v.GoldDelta != -1 {
		t.Fatalf("visit = %+v", v)
	}
	if len(g.TakeVisits()) != 0 {
		t.Fatal("TakeVisits did not drain the buffer")
	}
}

func TestBrokeRefusalRecordsNoVisit(t *testing.T) {
	g := newTestGame(t)
	g.stats.Gold = 0
	enterTavern(t, g)
	res := press(g, core.ActionMenu1)
	if res.State.DirtyStats {
		t.Fatal("refusal must not dirty stats")
	}
	if len(g.TakeVisits()) != 0 {
		t.Fatal("refusal must not record a visit")
	}
}

func TestEscLeavesInterior(t *testing.T) {
	g := newTestGame(t)
	enterTavern(t, g)
	res := press(g, core.ActionBack)
	if res.State.InInterior {
		t.Fatal("still inside after ESC")
	}
}

func TestQuitEndsGame(t *testing.T) {
	g := newTestGame(t)
	res := press(g, core.ActionQuit)
	if !res.State.Done {
		t.Fatal("quit did not end the game")
	}
}

func TestEscOnStreetEndsGame(t *testing.T) {
	g := newTestGame(t)
	res := press(g, core.ActionBack)
	if !res.State.Done {
		t.Fatal("street ESC did not end the game")
	}
}

func TestEscInsideOnlyLeavesInterior(t *testing.T) {
	g := newTestGame(t)
	enterTavern(t, g)
	res := press(g, core.ActionBack)
	if res.State.Done {
		t.Fatal("interior ESC must not end the game")
	}
	if res.State.InInterior {
		t.Fatal("interior ESC did not leave the establishment")
	}
}

func TestToastExpires(t *testing.T) {
	g := newTestGame(t)
	enterTavern(t, g)
	if len(g.Snapshot().Toasts) == 0 {
		t.Fatal("no toast after entering")
	}
	idle(g, g.toasts.ttlTicks()+1)
	if toasts := g.Snapshot().Toasts; len(toasts) != 0 {
		t.Fatalf("toasts = %v after ttl, want none", toasts)
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := []core.Action{
		core.ActionForward, core.ActionNone, core.ActionNone,
		core.ActionTurnRight, core.ActionTurnRight,
		core.ActionForward, core.ActionNone, core.ActionNone,
		core.ActionNone, core.ActionNone, core.ActionNone, core.ActionNone,
		core.ActionForward, core.ActionMenu3,
		core.ActionBack, core.ActionDayNight,
	}

	run := func() (Snapshot, string) {
		g := newTestGame(t)
		for _, a := range script {
			frame := core.NewInputFrame()
			if a != core.ActionNone {
				frame.Set(a)
			}
			g.Step(frame)
		}
		screen := core.NewScreen(60, 20)
		g.Render(screen)
		return g.Snapshot(), screen.String()
	}

	s1, f1 := run()
	s2, f2 := run()
	if !reflect.DeepEqual(s1, s2) {
		t.Fatalf("replay diverged:\n%+v\n%+v", s1, s2)
	}
	if f1 != f2 {
		t.Fatal("rendered frames diverged between identical replays")
	}
}

func TestRenderTownFrame(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.Row(23), "GOLD 50") {
		t.Fatalf("stats line missing: %q", screen.Row(23))
	}
	// Facing north into open floor there must still be a back wall.
	frame := screen.String()
	if !strings.ContainsAny(frame, "█▓▒░") {
		t.Fatal("no wall shading in rendered frame")
	}
}

func TestRenderInteriorUsesBackdrop(t *testing.T) {
	g := newTestGame(t)
	g.interiors.load = func(path string, w, h int) ([][]color.RGBA, error) {
		px := make([][]color.RGBA, h)
		for y := range px {
			px[y] = make([]color.RGBA, w)
			for x := range px[y] {
				px[y][x] = color.RGBA{R: 90, G: 50, B: 40, A: 255}
			}
		}
		return px, nil
	}
	enterTavern(t, g)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	frame := screen.String()
	if !strings.Contains(frame, "The Sleeping Gryphon") {
		t.Fatal("menu title missing from interior frame")
	}
	if !strings.Contains(frame, "1) Drink ale") {
		t.Fatal("menu entries missing from interior frame")
	}
	if !strings.Contains(frame, "ESC to leave") {
		t.Fatal("leave hint missing from interior frame")
	}
}

func TestMapOverlayShowsPlayerArrow(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionMap)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if screen.Get(2+3, 2+2) != '^' {
		t.Fatalf("player arrow = %q, want '^'", screen.Get(5, 4))
	}
}
