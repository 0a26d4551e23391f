package runner

import (
	"math/rand"

	"github.com/vovakirdan/tap-runner/internal/config"
)

// RandSource yields uniform values in [0, 1).
type RandSource interface {
	Float64() float64
}

// NewRandSource returns the default seeded source.
func NewRandSource(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}

// Spawner counts down the spawn timer, emits obstacles and ramps speed.
type Spawner struct {
	rng        RandSource
	cfg        *config.RunnerConfig
	difficulty *config.DifficultyManager
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng RandSource, cfg *config.RunnerConfig, diff *config.DifficultyManager) *Spawner {
	return &Spawner{rng: rng, cfg: cfg, difficulty: diff}
}

// UpdateConfig swaps the tuning used for future spawns.
func (sp *Spawner) UpdateConfig(cfg *config.RunnerConfig, diff *config.DifficultyManager) {
	sp.cfg = cfg
	sp.difficulty = diff
}

// Update advances the timer by dt and spawns at most one obstacle.
// Reports whether an obstacle was spawned.
func (sp *Spawner) Update(s *State, dt float64) bool {
	s.SpawnTimer -= dt
	if s.SpawnTimer > 0 {
		return false
	}

	obs := sp.cfg.Obstacles
	s.Obstacles = append(s.Obstacles, Obstacle{
		X:      sp.cfg.World.Width + obs.SpawnOffset,
		Width:  sp.uniform(obs.MinWidth, obs.MaxWidth),
		Height: sp.uniform(obs.MinHeight, obs.MaxHeight),
	})

	interval := sp.cfg.Spawn.BaseInterval + sp.rng.Float64()*sp.cfg.Spawn.Jitter
	s.SpawnTimer = interval / sp.difficulty.Factor(s.Score)
	s.Speed = min(s.Speed+sp.cfg.Speed.Increment, sp.cfg.Speed.Max)
	return true
}

func (sp *Spawner) uniform(lo, hi float64) float64 {
	return lo + sp.rng.Float64()*(hi-lo)
}
