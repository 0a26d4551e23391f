package runner

import (
	"time"

	"github.com/vovakirdan/tap-runner/internal/config"
)

// PressResult describes what a primary press did.
type PressResult int

const (
	PressIgnored   PressResult = iota // Airborne, stopped, or nothing to do
	PressStarted                      // ready -> running, with a jump
	PressJumped                       // Jump during a run
	PressRestarted                    // over -> ready -> running, with a jump
)

func (r PressResult) String() string {
	switch r {
	case PressStarted:
		return "started"
	case PressJumped:
		return "jumped"
	case PressRestarted:
		return "restarted"
	default:
		return "ignored"
	}
}

// RunResult summarizes a finished run.
type RunResult struct {
	Score    int
	Best     int
	NewBest  bool
	Duration time.Duration
}

// Options configures a Loop.
type Options struct {
	Config config.RunnerConfig
	Seed   int64
	Rand   RandSource // Overrides Seed when set
	Best   BestStore  // nil keeps the best score in memory only

	OnRunEnd func(RunResult)
	OnError  func(error) // Persistence failures; the loop keeps going
}

// Loop owns the simulation state and its frame clock. It is single-writer:
// all methods must be called from one goroutine, which bubbletea and ebiten
// both guarantee for their update paths.
type Loop struct {
	cfg        config.RunnerConfig
	pending    *config.RunnerConfig
	difficulty *config.DifficultyManager
	spawner    *Spawner
	state      State
	best       BestStore

	bestAtStart int
	savedBest   int // Last value handed to the best store
	generation  uint64
	ticks       uint64
	stopped     bool
	lastFrame   time.Duration
	haveFrame   bool

	observers  map[int]func(Snapshot)
	observerID int

	onRunEnd func(RunResult)
	onError  func(error)
}

// NewLoop creates a loop in the ready state, with Best loaded from the store.
func NewLoop(opts Options) *Loop {
	rng := opts.Rand
	if rng == nil {
		rng = NewRandSource(opts.Seed)
	}

	l := &Loop{
		cfg:       opts.Config,
		best:      opts.Best,
		observers: make(map[int]func(Snapshot)),
		onRunEnd:  opts.OnRunEnd,
		onError:   opts.OnError,
	}
	l.difficulty = config.NewDifficultyManager(l.cfg.Difficulty)
	l.spawner = NewSpawner(rng, &l.cfg, l.difficulty)

	best := 0
	if l.best != nil {
		v, err := l.best.Load()
		if err != nil {
			l.reportError(err)
		}
		best = v
	}
	l.savedBest = best
	l.state = newState(&l.cfg, l.difficulty, best)
	return l
}

// Config returns the tuning of the current run.
func (l *Loop) Config() config.RunnerConfig {
	return l.cfg
}

// Status returns the current lifecycle phase.
func (l *Loop) Status() Status {
	return l.state.Status
}

// Generation identifies the current run of frames. Frontends stamp their
// scheduled ticks with it and drop ticks whose stamp no longer matches.
func (l *Loop) Generation() uint64 {
	return l.generation
}

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool {
	return l.stopped
}

// Snapshot returns a copy of the current state.
func (l *Loop) Snapshot() Snapshot {
	return l.snapshot()
}

// Subscribe registers fn to receive a snapshot after every state change.
// The returned function removes the subscription.
func (l *Loop) Subscribe(fn func(Snapshot)) func() {
	id := l.observerID
	l.observerID++
	l.observers[id] = fn
	return func() { delete(l.observers, id) }
}

// Press routes the single primary input according to the current status.
func (l *Loop) Press() PressResult {
	if l.stopped {
		return PressIgnored
	}

	switch l.state.Status {
	case StatusReady:
		l.Start()
		l.Jump()
		return PressStarted
	case StatusRunning:
		if l.Jump() {
			return PressJumped
		}
	case StatusOver:
		l.Reset()
		l.Start()
		l.Jump()
		return PressRestarted
	}
	return PressIgnored
}

// Start begins a run from ready. Reports whether the transition happened.
func (l *Loop) Start() bool {
	if l.stopped || l.state.Status != StatusReady {
		return false
	}
	l.state.Status = StatusRunning
	l.bestAtStart = l.state.Best
	l.haveFrame = false
	l.generation++
	l.publish()
	return true
}

// Jump launches the player when running and grounded.
func (l *Loop) Jump() bool {
	if l.stopped || l.state.Status != StatusRunning || !l.state.Player.Grounded {
		return false
	}
	l.state.Player.VY = l.cfg.Physics.JumpVelocity
	l.state.Player.Grounded = false
	l.publish()
	return true
}

// Reset returns to ready with a fresh world, keeping Best. A config received
// through SetConfig during the last run takes effect here. Resetting a run in
// progress is not allowed.
func (l *Loop) Reset() bool {
	if l.stopped || l.state.Status == StatusRunning {
		return false
	}
	if l.pending != nil {
		l.applyConfig(*l.pending)
		l.pending = nil
	}
	l.state = newState(&l.cfg, l.difficulty, l.state.Best)
	l.haveFrame = false
	l.publish()
	return true
}

// SetConfig replaces the tuning. It applies immediately while ready and is
// deferred to the next Reset otherwise, so a run never changes rules midway.
func (l *Loop) SetConfig(cfg config.RunnerConfig) {
	if l.state.Status == StatusReady {
		l.pending = nil
		l.applyConfig(cfg)
		l.state = newState(&l.cfg, l.difficulty, l.state.Best)
		l.publish()
		return
	}
	l.pending = &cfg
}

func (l *Loop) applyConfig(cfg config.RunnerConfig) {
	l.cfg = cfg
	l.difficulty = config.NewDifficultyManager(l.cfg.Difficulty)
	l.spawner.UpdateConfig(&l.cfg, l.difficulty)
}

// Frame advances the simulation to the monotonic instant now. The first
// frame after a start only records the clock, leaving the starting jump
// untouched.
func (l *Loop) Frame(now time.Duration) {
	if l.stopped || l.state.Status != StatusRunning {
		return
	}
	if !l.haveFrame {
		l.lastFrame = now
		l.haveFrame = true
		return
	}
	dt := (now - l.lastFrame).Seconds()
	l.lastFrame = now
	l.Tick(dt)
}

// FrameFor runs Frame only when gen is the current generation. Reports
// whether the frame was accepted.
func (l *Loop) FrameFor(gen uint64, now time.Duration) bool {
	if gen != l.generation || l.stopped || l.state.Status != StatusRunning {
		return false
	}
	l.Frame(now)
	return true
}

// Tick advances a running simulation by dt seconds: physics, spawning,
// scoring and then collision.
func (l *Loop) Tick(dt float64) {
	if l.stopped || l.state.Status != StatusRunning {
		return
	}
	dt = SanitizeDelta(dt, l.cfg.Physics.MaxDelta)

	l.ticks++
	l.state.Elapsed += dt
	StepPhysics(&l.state.Player, dt, l.cfg.Physics, l.cfg.RestY())
	l.spawner.Update(&l.state, dt)
	if AdvanceObstacles(&l.state, dt, &l.cfg) > 0 {
		l.persistBest()
	}

	if Collides(&l.state, &l.cfg) {
		l.end()
		return
	}
	l.publish()
}

// Stop tears the loop down. Pending frames become stale and every later
// call is ignored. A best reached in an unfinished run is still saved.
func (l *Loop) Stop() {
	if l.stopped {
		return
	}
	l.persistBest()
	l.stopped = true
	l.generation++
}

func (l *Loop) end() {
	l.state.Status = StatusOver
	l.generation++

	newBest := l.state.Best > l.bestAtStart
	l.persistBest()

	if l.onRunEnd != nil {
		l.onRunEnd(RunResult{
			Score:    l.state.Score,
			Best:     l.state.Best,
			NewBest:  newBest,
			Duration: time.Duration(l.state.Elapsed * float64(time.Second)),
		})
	}
	l.publish()
}

// persistBest hands Best to the store whenever it rose since the last save.
// A failed save is reported once and not retried.
func (l *Loop) persistBest() {
	if l.best == nil || l.state.Best <= l.savedBest {
		return
	}
	l.savedBest = l.state.Best
	if err := l.best.Save(l.state.Best); err != nil {
		l.reportError(err)
	}
}

func (l *Loop) reportError(err error) {
	if l.onError != nil {
		l.onError(err)
	}
}

func (l *Loop) publish() {
	if len(l.observers) == 0 {
		return
	}
	snap := l.snapshot()
	for _, fn := range l.observers {
		fn(snap)
	}
}
