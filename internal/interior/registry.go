// Package interior implements establishment interiors: what happens when
// the player picks a numbered menu action. Handlers register themselves
// by establishment type, allowing the game to dispatch without hardcoded
// dependencies.
package interior

import (
	"fmt"
	"sync"

	"github.com/citadelgame/citadel/internal/player"
)

// Outcome is the result of one interior action.
type Outcome struct {
	Stats   player.Stats // Stats after the action
	Toast   string       // Message shown to the player
	Applied bool         // Whether stats actually changed
}

// Handler resolves a menu choice into a stat outcome.
// The menu slice is the establishment's sanitized menu; index is the
// zero-based choice. Implementations must not mutate external state.
type Handler interface {
	// Type returns the establishment type this handler serves.
	Type() string

	// Act applies the chosen action to the given stats.
	Act(index int, menu []string, s player.Stats) Outcome
}

var (
	handlers = make(map[string]Handler)
	mu       sync.RWMutex
)

// Register adds a handler to the registry. Typically called from an
// init() function. Panics if the type is already registered.
func Register(h Handler) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := handlers[h.Type()]; exists {
		panic(fmt.Sprintf("interior: handler %q already registered", h.Type()))
	}
	handlers[h.Type()] = h
}

// Lookup returns the handler for an establishment type. Types without a
// dedicated handler get the generic one, so every establishment responds
// to its menu.
func Lookup(typ string) Handler {
	mu.RLock()
	defer mu.RUnlock()

	if h, ok := handlers[typ]; ok {
		return h
	}
	return genericHandler{}
}

// Exists reports whether a dedicated handler is registered for the type.
func Exists(typ string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := handlers[typ]
	return ok
}
