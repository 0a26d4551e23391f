package config

import "math"

// DifficultyManager derives the difficulty factor from the current score.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for a score.
func (d *DifficultyManager) Level(score int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	progress := clampF(float64(score)/maxAt, 0.0, 1.0)
	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Factor returns the difficulty factor, 1.0 at level 0 and MaxFactor at
// level 1. The spawn interval is divided by it, so it is never below 1.
func (d *DifficultyManager) Factor(score int) float64 {
	maxFactor := math.Max(d.cfg.Scaling.MaxFactor, 1.0)
	return 1.0 + d.Level(score)*(maxFactor-1.0)
}

// StartSpeed returns the world speed a run begins with. Presets that start
// above level 0 also start a little faster.
func (d *DifficultyManager) StartSpeed(base float64) float64 {
	return base * (1.0 + d.initialLevel*d.cfg.Scaling.SpeedMultiplier)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
