// Package config provides YAML-based game configuration loading.
package config

// GameConfig contains all tunables for the town simulation and renderer.
type GameConfig struct {
	View     ViewConfig     `yaml:"view"`
	Movement MovementConfig `yaml:"movement"`
	Toasts   ToastConfig    `yaml:"toasts"`
}

// ViewConfig defines the first-person renderer parameters.
type ViewConfig struct {
	FOVDegrees float64 `yaml:"fov_degrees"` // Horizontal field of view
	MaxDepth   float64 `yaml:"max_depth"`   // Ray cutoff distance in tiles
	RayStep    float64 `yaml:"ray_step"`    // March increment in tiles
}

// MovementConfig defines stepped movement behavior.
type MovementConfig struct {
	StepCooldownMillis int `yaml:"step_cooldown_millis"` // Delay between held-key steps
}

// ToastConfig defines on-screen message behavior.
type ToastConfig struct {
	DurationMillis int `yaml:"duration_millis"` // How long a toast stays visible
}
