package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default configuration, used when no
// config file is found and the embedded YAML somehow fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		View: ViewConfig{
			FOVDegrees: 90,
			MaxDepth:   40,
			RayStep:    0.05,
		},
		Movement: MovementConfig{
			StepCooldownMillis: 200,
		},
		Toasts: ToastConfig{
			DurationMillis: 2000,
		},
	}
}
