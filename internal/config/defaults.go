package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded runner configuration. It matches
// defaults/runner.yaml and backs it up if the embedded file fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: RunnerWorld{
			Width:   360,
			Height:  640,
			GroundY: 560,
		},
		Physics: RunnerPhysics{
			Gravity:      2400,
			JumpVelocity: -820,
			MaxDelta:     0.035,
		},
		Player: RunnerPlayer{
			X:            74,
			Size:         56,
			HitboxInsetX: 3,
		},
		Obstacles: RunnerObstacles{
			MinWidth:    28,
			MaxWidth:    48,
			MinHeight:   36,
			MaxHeight:   86,
			SpawnOffset: 12,
			CullMargin:  40,
		},
		Spawn: RunnerSpawn{
			InitialDelay: 1.1,
			BaseInterval: 1.45,
			Jitter:       0.45,
		},
		Speed: RunnerSpeed{
			Base:      230,
			Increment: 6,
			Max:       430,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				MaxFactor:       1.8,
				SpeedMultiplier: 0.25,
			},
		},
		Render: RunnerRender{
			StarCount:       36,
			StarDrift:       18,
			TiltPerVelocity: 0.0006,
			MaxTilt:         0.35,
		},
		Input: RunnerInput{
			RepeatWindowMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
