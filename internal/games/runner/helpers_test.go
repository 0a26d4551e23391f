package runner

import (
	"github.com/vovakirdan/tap-runner/internal/config"
)

// scriptedRand replays fixed values, cycling when exhausted.
type scriptedRand struct {
	values []float64
	i      int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

func testConfig() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}

// newTestLoop creates a loop with deterministic obstacles.
func newTestLoop(opts Options) *Loop {
	if opts.Config.World.Width == 0 {
		opts.Config = testConfig()
	}
	if opts.Rand == nil {
		opts.Rand = &scriptedRand{values: []float64{0.5}}
	}
	return NewLoop(opts)
}
