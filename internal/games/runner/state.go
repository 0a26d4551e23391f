// Package runner implements the tap-to-jump endless runner: the simulation
// state, its step functions and the Loop that drives them from frame ticks.
// Nothing here depends on a display; frontends read Snapshots and draw.
package runner

import (
	"github.com/vovakirdan/tap-runner/internal/config"
)

// Status is the lifecycle phase of a run.
type Status string

const (
	StatusReady   Status = "ready"
	StatusRunning Status = "running"
	StatusOver    Status = "over"
)

// Player is the jumping box. X is the fixed horizontal center, Y the top
// edge; y grows downward.
type Player struct {
	X        float64
	Y        float64
	VY       float64
	Grounded bool
}

// Obstacle is a ground-anchored box moving left at world speed.
type Obstacle struct {
	X      float64 // Left edge
	Width  float64
	Height float64
	Passed bool
}

// State is the complete simulation state of one session.
type State struct {
	Status     Status
	Player     Player
	Obstacles  []Obstacle
	Score      int
	Best       int
	Speed      float64
	SpawnTimer float64
	Elapsed    float64 // Seconds spent running in the current run
}

// newState returns the initial state for cfg, carrying best over.
func newState(cfg *config.RunnerConfig, difficulty *config.DifficultyManager, best int) State {
	return State{
		Status: StatusReady,
		Player: Player{
			X:        cfg.Player.X,
			Y:        cfg.RestY(),
			Grounded: true,
		},
		Obstacles:  make([]Obstacle, 0, 8),
		Best:       best,
		Speed:      min(difficulty.StartSpeed(cfg.Speed.Base), cfg.Speed.Max),
		SpawnTimer: cfg.Spawn.InitialDelay,
	}
}
