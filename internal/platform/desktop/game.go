// Package desktop is the ebiten frontend: a resizable window that draws the
// runner world at the device scale factor, with an ebitenui overlay button.
package desktop

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tap-runner/internal/config"
	"github.com/vovakirdan/tap-runner/internal/core"
	"github.com/vovakirdan/tap-runner/internal/games/runner"
	"github.com/vovakirdan/tap-runner/internal/storage"
)

// RunRecorder stores finished runs.
type RunRecorder interface {
	SaveRun(score, best int, duration time.Duration) (int64, error)
}

// Options configures a desktop Game.
type Options struct {
	Config  config.RunnerConfig
	Seed    int64
	KV      storage.KV // nil keeps the best score in memory
	BestKey string
	Runs    RunRecorder
	Watcher *config.Watcher
	Logger  *log.Logger
}

// Game implements ebiten.Game around a runner loop.
type Game struct {
	loop     *runner.Loop
	snap     runner.Snapshot
	renderer *renderer
	overlays map[runner.Status]*ebitenui.UI
	input    core.InputFrame
	touches  []ebiten.TouchID
	watcher  *config.Watcher
	logger   *log.Logger
	start    time.Time
}

// New validates the configuration and builds a game in the ready state.
// Nothing is drawn or started when it returns an error.
func New(opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("desktop: %w", err)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	kv := opts.KV
	if kv == nil {
		kv = storage.NewMemoryKV()
	}
	best := runner.NewBestScore(kv, opts.BestKey)

	g := &Game{
		input:   core.NewInputFrame(),
		watcher: opts.Watcher,
		logger:  logger,
		start:   time.Now(),
	}
	g.loop = runner.NewLoop(runner.Options{
		Config: opts.Config,
		Seed:   opts.Seed,
		Best:   best,
		OnRunEnd: func(r runner.RunResult) {
			logger.Info("run finished", "score", r.Score, "best", r.Best, "new_best", r.NewBest, "duration", r.Duration)
			if opts.Runs == nil {
				return
			}
			if _, err := opts.Runs.SaveRun(r.Score, r.Best, r.Duration); err != nil {
				logger.Warn("could not record run", "error", err)
			}
		},
		OnError: func(err error) {
			logger.Warn("best score persistence", "key", best.Key(), "error", err)
		},
	})
	g.loop.Subscribe(func(s runner.Snapshot) { g.snap = s })
	g.snap = g.loop.Snapshot()

	cfg := g.loop.Config()
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	stars := runner.NewStarField(opts.Seed, cfg.Render.StarCount, cfg.World.Width, cfg.World.GroundY, cfg.Render.StarDrift)
	g.renderer = newRenderer(stars, face)
	g.overlays = map[runner.Status]*ebitenui.UI{
		runner.StatusReady: newOverlay(face, "TAP RUNNER", "space / click to jump", overlayLabel(runner.StatusReady), g.press),
		runner.StatusOver:  newOverlay(face, "GAME OVER", "space / click to retry", overlayLabel(runner.StatusOver), g.press),
	}
	return g, nil
}

// Loop exposes the underlying game loop.
func (g *Game) Loop() *runner.Loop {
	return g.loop
}

func (g *Game) press() {
	res := g.loop.Press()
	if res == runner.PressStarted || res == runner.PressRestarted {
		g.logger.Debug("run started", "result", res, "generation", g.loop.Generation())
	}
}

// Update handles input and advances the loop to the current instant.
func (g *Game) Update() error {
	if g.loop.Stopped() {
		return ebiten.Termination
	}
	g.pollConfig()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.loop.Stop()
		return ebiten.Termination
	}

	g.input.Clear()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.input.Set(core.ActionPrimary)
	}

	status := g.loop.Status()
	if overlayOwnsPointer(status) {
		g.overlays[status].Update()
	} else {
		g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(g.touches) > 0 {
			g.input.Set(core.ActionPrimary)
		}
	}

	// A click on the overlay button may already have started a run.
	if g.input.Has(core.ActionPrimary) && g.loop.Status() == status {
		g.press()
	}

	g.loop.Frame(time.Since(g.start))
	return nil
}

// pollConfig applies reloaded configs without blocking the frame.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-g.watcher.Updates:
		if !ok {
			g.watcher = nil
			return
		}
		g.loop.SetConfig(cfg)
		g.logger.Info("config reloaded", "status", g.loop.Status())
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.logger.Warn("config reload failed", "error", err)
		}
	default:
	}
}

// Draw renders the last snapshot and, outside a run, the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	cfg := g.loop.Config()
	g.renderer.draw(screen, g.snap, &cfg, time.Since(g.start).Seconds())
	if !g.snap.Running() {
		g.overlays[g.snap.Status].Draw(screen)
	}
}

// Layout is unused: LayoutF takes precedence.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// LayoutF renders at the device scale factor so the window stays sharp.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	s := ebiten.Monitor().DeviceScaleFactor()
	return outsideWidth * s, outsideHeight * s
}

// Run opens the window and blocks until it closes.
func Run(g *Game) error {
	cfg := g.loop.Config()
	w, h := windowSize(cfg.World.Width, cfg.World.Height)

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Tap Runner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(g)
	g.loop.Stop()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}

// windowSize fits the world into most of the monitor height.
func windowSize(worldW, worldH float64) (int, int) {
	_, mh := ebiten.Monitor().Size()
	return fitWindow(worldW, worldH, float64(mh))
}
