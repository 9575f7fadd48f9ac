package game

import "github.com/citadelgame/citadel/internal/player"

// Snapshot is a read-only view of the simulation state, primarily for
// tests and debugging.
type Snapshot struct {
	Tick          uint64
	X, Y          int
	Heading       Heading
	Day           bool
	ShowMap       bool
	ShowInventory bool
	InInterior    bool
	Establishment string
	Stats         player.Stats
	Toasts        []string
	Done          bool
}

// Snapshot captures the current state without advancing the tick.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          g.tick,
		X:             g.x,
		Y:             g.y,
		Heading:       g.heading,
		Day:           g.day,
		ShowMap:       g.showMap,
		ShowInventory: g.showInventory,
		InInterior:    g.inInterior,
		Stats:         g.stats,
		Done:          g.done,
	}
	if g.inInterior {
		snap.Establishment = g.est.Type
	}
	if g.toasts != nil {
		snap.Toasts = g.toasts.active(g.tick)
	}
	return snap
}
