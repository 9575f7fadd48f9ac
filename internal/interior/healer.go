package interior

import (
	"github.com/citadelgame/citadel/internal/player"
)

// healerHandler implements the healer's house: resting restores stamina,
// tonics restore health. Both cost gold.
type healerHandler struct{}

func init() {
	Register(healerHandler{})
}

func (healerHandler) Type() string {
	return "healer"
}

func (healerHandler) Act(index int, menu []string, s player.Stats) Outcome {
	if index < 0 || index >= len(menu) {
		return Outcome{Stats: s}
	}

	switch index {
	case 0: // rest
		return paid(s, player.Effect{Stamina: +10, Gold: -2},
			"You rest and your strength returns.", "Not enough gold to rest here.")
	case 1: // tonic
		return paid(s, player.Effect{Health: +10, Gold: -3},
			"The tonic burns going down, but you feel better.", "Not enough gold for a tonic.")
	}
	return genericHandler{}.Act(index, menu, s)
}
