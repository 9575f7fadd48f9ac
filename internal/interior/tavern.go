package interior

import (
	"github.com/citadelgame/citadel/internal/player"
)

// tavernHandler implements the tavern actions: drink, eat, sing, and
// buying a round. Paid actions refuse when the player cannot cover the
// gold cost.
type tavernHandler struct{}

func init() {
	Register(tavernHandler{})
}

func (tavernHandler) Type() string {
	return "tavern"
}

func (tavernHandler) Act(index int, menu []string, s player.Stats) Outcome {
	if index < 0 || index >= len(menu) {
		return Outcome{Stats: s}
	}

	switch index {
	case 0: // drink
		return paid(s, player.Effect{Stamina: +5, Gold: -1},
			"You drink and feel refreshed.", "Not enough gold to drink.")
	case 1: // eat
		return paid(s, player.Effect{Health: +5, Gold: -2},
			"You eat a satisfying meal.", "Not enough gold to eat.")
	case 2: // sing
		return Outcome{
			Stats:   s.Apply(player.Effect{Charisma: +1}),
			Toast:   "Your song raises your spirits.",
			Applied: true,
		}
	case 3: // buy a round
		return paid(s, player.Effect{Charisma: +2, Gold: -5},
			"You buy a round. Cheers!", "Not enough gold for a round.")
	}
	return genericHandler{}.Act(index, menu, s)
}

// paid applies an effect with a gold cost, refusing with the given toast
// when the player cannot afford it.
func paid(s player.Stats, e player.Effect, ok, broke string) Outcome {
	if !s.CanAfford(e) {
		return Outcome{Stats: s, Toast: broke}
	}
	return Outcome{Stats: s.Apply(e), Toast: ok, Applied: true}
}
