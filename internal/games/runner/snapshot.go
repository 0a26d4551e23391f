package runner

import "slices"

// Snapshot is an immutable copy of the loop state handed to observers.
type Snapshot struct {
	Status     Status
	Score      int
	Best       int
	Speed      float64
	Player     Player
	Obstacles  []Obstacle
	Elapsed    float64
	Generation uint64
	Ticks      uint64
}

// Running reports whether the snapshot was taken mid-run.
func (s Snapshot) Running() bool {
	return s.Status == StatusRunning
}

func (l *Loop) snapshot() Snapshot {
	return Snapshot{
		Status:     l.state.Status,
		Score:      l.state.Score,
		Best:       l.state.Best,
		Speed:      l.state.Speed,
		Player:     l.state.Player,
		Obstacles:  slices.Clone(l.state.Obstacles),
		Elapsed:    l.state.Elapsed,
		Generation: l.generation,
		Ticks:      l.ticks,
	}
}
