package interior

import (
	"fmt"

	"github.com/citadelgame/citadel/internal/player"
)

// genericHandler serves establishment types without dedicated behavior.
// Choices are acknowledged but change nothing.
type genericHandler struct{}

func (genericHandler) Type() string {
	return "generic"
}

func (genericHandler) Act(index int, menu []string, s player.Stats) Outcome {
	if index < 0 || index >= len(menu) {
		return Outcome{Stats: s}
	}
	return Outcome{
		Stats: s,
		Toast: fmt.Sprintf("You chose: %s", menu[index]),
	}
}
