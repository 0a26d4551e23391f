// Package config provides YAML-based runner configuration loading, difficulty
// presets and the score-driven difficulty ramp.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded configuration cannot drive a run.
var ErrInvalidConfig = errors.New("config: invalid runner config")

// RunnerConfig contains all tuning for the runner. Distances are world units
// (the logical 360x640 space), times are seconds.
type RunnerConfig struct {
	World      RunnerWorld      `yaml:"world"`
	Physics    RunnerPhysics    `yaml:"physics"`
	Player     RunnerPlayer     `yaml:"player"`
	Obstacles  RunnerObstacles  `yaml:"obstacles"`
	Spawn      RunnerSpawn      `yaml:"spawn"`
	Speed      RunnerSpeed      `yaml:"speed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Render     RunnerRender     `yaml:"render"`
	Input      RunnerInput      `yaml:"input"`
}

// RunnerWorld defines the logical world.
type RunnerWorld struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // Top of the ground band
}

// RunnerPhysics defines the vertical integrator.
type RunnerPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // units/s^2, positive is down
	JumpVelocity float64 `yaml:"jump_velocity"` // units/s, negative is up
	MaxDelta     float64 `yaml:"max_delta"`     // upper clamp for a frame delta
}

// RunnerPlayer defines the player box.
type RunnerPlayer struct {
	X            float64 `yaml:"x"` // Horizontal center
	Size         float64 `yaml:"size"`
	HitboxInsetX float64 `yaml:"hitbox_inset_x"`
}

// RunnerObstacles defines obstacle dimensions and lifetime.
type RunnerObstacles struct {
	MinWidth    float64 `yaml:"min_width"`
	MaxWidth    float64 `yaml:"max_width"`
	MinHeight   float64 `yaml:"min_height"`
	MaxHeight   float64 `yaml:"max_height"`
	SpawnOffset float64 `yaml:"spawn_offset"` // Distance past the right edge
	CullMargin  float64 `yaml:"cull_margin"`  // Distance past the left edge before removal
}

// RunnerSpawn defines the spawn countdown.
type RunnerSpawn struct {
	InitialDelay float64 `yaml:"initial_delay"`
	BaseInterval float64 `yaml:"base_interval"`
	Jitter       float64 `yaml:"jitter"`
}

// RunnerSpeed defines world scroll speed.
type RunnerSpeed struct {
	Base      float64 `yaml:"base"`
	Increment float64 `yaml:"increment"` // Added on every spawn
	Max       float64 `yaml:"max"`
}

// RunnerRender holds cosmetic parameters. None of them affect gameplay.
type RunnerRender struct {
	StarCount       int     `yaml:"star_count"`
	StarDrift       float64 `yaml:"star_drift"`        // units/s
	TiltPerVelocity float64 `yaml:"tilt_per_velocity"` // radians per unit/s
	MaxTilt         float64 `yaml:"max_tilt"`          // radians
}

// RunnerInput holds input handling parameters.
type RunnerInput struct {
	RepeatWindowMS int `yaml:"repeat_window_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score" or "none"
	MaxAt int    `yaml:"max_at"` // Score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	MaxFactor       float64 `yaml:"max_factor"`       // Difficulty factor ceiling (>= 1)
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Start speed bonus at level 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. The empty string means
// "keep the config default".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// RestY returns the player's resting top edge.
func (c RunnerConfig) RestY() float64 {
	return c.World.GroundY - c.Player.Size
}

// Validate reports the first value that would break the simulation.
func (c RunnerConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalidConfig)
	case c.World.GroundY <= 0 || c.World.GroundY > c.World.Height:
		return fmt.Errorf("%w: ground_y must be within (0, height]", ErrInvalidConfig)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalidConfig)
	case c.Physics.JumpVelocity >= 0:
		return fmt.Errorf("%w: jump_velocity must be negative (upward)", ErrInvalidConfig)
	case c.Physics.MaxDelta <= 0:
		return fmt.Errorf("%w: max_delta must be positive", ErrInvalidConfig)
	case c.Player.Size <= 0 || c.Player.Size > c.World.GroundY:
		return fmt.Errorf("%w: player size must fit above the ground", ErrInvalidConfig)
	case c.Player.HitboxInsetX < 0 || 2*c.Player.HitboxInsetX >= c.Player.Size:
		return fmt.Errorf("%w: hitbox_inset_x must leave a positive hitbox", ErrInvalidConfig)
	case c.Obstacles.MinWidth <= 0 || c.Obstacles.MinWidth > c.Obstacles.MaxWidth:
		return fmt.Errorf("%w: obstacle width range is empty", ErrInvalidConfig)
	case c.Obstacles.MinHeight <= 0 || c.Obstacles.MinHeight > c.Obstacles.MaxHeight:
		return fmt.Errorf("%w: obstacle height range is empty", ErrInvalidConfig)
	case c.Spawn.BaseInterval <= 0 || c.Spawn.Jitter < 0:
		return fmt.Errorf("%w: spawn interval must be positive", ErrInvalidConfig)
	case c.Speed.Base <= 0 || c.Speed.Max < c.Speed.Base || c.Speed.Increment < 0:
		return fmt.Errorf("%w: speed must satisfy 0 < base <= max", ErrInvalidConfig)
	case c.Difficulty.Scaling.MaxFactor < 1:
		return fmt.Errorf("%w: max_factor must be >= 1", ErrInvalidConfig)
	}
	return nil
}
