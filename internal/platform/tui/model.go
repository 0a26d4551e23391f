package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tap-runner/internal/config"
	"github.com/vovakirdan/tap-runner/internal/core"
	"github.com/vovakirdan/tap-runner/internal/games/runner"
	"github.com/vovakirdan/tap-runner/internal/storage"
)

// noteDuration is how long a HUD note stays visible.
const noteDuration = 2 * time.Second

// RunRecorder stores finished runs.
type RunRecorder interface {
	SaveRun(score, best int, duration time.Duration) (int64, error)
}

// Options configures a runner Model.
type Options struct {
	Config  config.RunnerConfig
	Runtime core.RuntimeConfig
	KV      storage.KV      // Best score store; nil keeps it in memory
	BestKey string          // Defaults to runner.DefaultBestKey
	Runs    RunRecorder     // Optional run history
	Watcher *config.Watcher // Optional hot reload
	Logger  *log.Logger
	// ScreenshotDir receives ctrl+s dumps. Defaults to ~/.tap-runner/screenshots.
	ScreenshotDir string
}

// view holds what the loop publishes. It lives behind a pointer so the
// subscription survives Bubble Tea copying the model.
type view struct {
	snap    runner.Snapshot
	lastRun *runner.RunResult
	note    string
	noteAt  time.Time
}

// Model is the Bubble Tea model for the runner.
type Model struct {
	loop      *runner.Loop
	view      *view
	stars     *runner.StarField
	screen    *core.Screen
	runtime   core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	showHelp  bool
	input     core.InputFrame
	debouncer *runner.Debouncer
	watcher   *config.Watcher
	logger    *log.Logger
	shotDir   string
	start     time.Time
	clock     float64 // Cosmetic seconds since start
	quitting  bool
}

// NewModel creates a model around a fresh loop in the ready state.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
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

	v := &view{}
	loop := runner.NewLoop(runner.Options{
		Config: opts.Config,
		Seed:   rt.Seed,
		Best:   best,
		OnRunEnd: func(r runner.RunResult) {
			v.lastRun = &r
			logger.Info("run finished", "score", r.Score, "best", r.Best, "new_best", r.NewBest, "duration", r.Duration)
			if opts.Runs != nil {
				if _, err := opts.Runs.SaveRun(r.Score, r.Best, r.Duration); err != nil {
					logger.Warn("could not record run", "error", err)
				}
			}
		},
		OnError: func(err error) {
			logger.Warn("best score persistence", "key", best.Key(), "error", err)
		},
	})
	loop.Subscribe(func(s runner.Snapshot) { v.snap = s })
	v.snap = loop.Snapshot()

	cfg := loop.Config()
	h := help.New()
	h.ShowAll = false

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			shotDir = filepath.Join(home, ".tap-runner", "screenshots")
		}
	}

	m := Model{
		loop:      loop,
		view:      v,
		stars:     runner.NewStarField(rt.Seed, cfg.Render.StarCount, cfg.World.Width, cfg.World.GroundY, cfg.Render.StarDrift),
		runtime:   rt,
		keys:      DefaultKeyMap(),
		help:      h,
		input:     core.NewInputFrame(),
		debouncer: runner.NewDebouncer(time.Duration(cfg.Input.RepeatWindowMS) * time.Millisecond),
		watcher:   opts.Watcher,
		logger:    logger,
		shotDir:   shotDir,
		start:     time.Now(),
	}
	m.screen = core.NewScreen(m.playfieldSize(rt.ScreenW, rt.ScreenH))
	return m
}

// Loop exposes the underlying game loop.
func (m Model) Loop() *runner.Loop {
	return m.loop
}

// Snapshot returns the last published state.
func (m Model) Snapshot() runner.Snapshot {
	return m.view.snap
}

// Init starts the frame chain and the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		frameCmd(m.loop.Generation(), m.runtime.TickRate),
		watchConfig(m.watcher),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg, OverlayLabel(m.loop.Status()) != ""), true)

	case tea.MouseMsg:
		return m.handleAction(MapMouse(msg), false)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(m.playfieldSize(msg.Width, msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(msg)

	case ConfigMsg:
		m.loop.SetConfig(config.RunnerConfig(msg))
		m.logger.Info("config reloaded", "status", m.loop.Status())
		m.setNote("config reloaded")
		return m, watchConfig(m.watcher)

	case ConfigErrMsg:
		m.logger.Warn("config reload failed", "error", msg.Err)
		return m, watchConfig(m.watcher)
	}

	return m, nil
}

// handleAction applies one input action. Keyboard presses go through the
// debouncer because terminals report auto-repeat as fresh presses.
func (m Model) handleAction(action core.Action, fromKey bool) (tea.Model, tea.Cmd) {
	if action == core.ActionNone {
		return m, nil
	}
	m.input.Set(action)
	defer m.input.Clear()

	switch {
	case m.input.Has(core.ActionQuit):
		m.quitting = true
		m.loop.Stop()
		return m, tea.Quit

	case m.input.Has(core.ActionScreenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.setNote("saved " + filepath.Base(path))
		}

	case m.input.Has(core.ActionHelp):
		m.showHelp = !m.showHelp
		m.screen.Resize(m.playfieldSize(m.runtime.ScreenW, m.runtime.ScreenH))

	case m.input.Has(core.ActionPrimary):
		if fromKey && !m.debouncer.Accept(time.Now()) {
			return m, nil
		}
		if !fromKey {
			m.debouncer.Release()
		}
		if res := m.loop.Press(); res != runner.PressIgnored && res != runner.PressJumped {
			m.view.lastRun = nil
			m.logger.Debug("run started", "result", res, "generation", m.loop.Generation())
		}
	}
	return m, nil
}

// handleFrame advances the loop when the frame belongs to the current
// generation and always schedules the next one, stamped afresh.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if m.loop.Stopped() {
		return m, nil
	}
	m.loop.FrameFor(msg.Gen, msg.At.Sub(m.start))
	m.clock = msg.At.Sub(m.start).Seconds()
	return m, frameCmd(m.loop.Generation(), m.runtime.TickRate)
}

func (m Model) setNote(note string) {
	m.view.note = note
	m.view.noteAt = time.Now()
}

// playfieldSize returns the screen size left after the HUD and help lines.
func (m Model) playfieldSize(w, h int) (int, int) {
	rows := h - 1 // HUD
	if m.showHelp {
		rows--
	}
	return max(w, 0), max(rows, 0)
}

// render draws the playfield and overlay into the screen buffer.
func (m Model) render() {
	cfg := m.loop.Config()
	runner.RenderScreen(m.screen, m.view.snap, &cfg, m.stars, m.clock)
	drawOverlay(m.screen, m.view.snap, m.view.lastRun)
}

// saveScreenshot writes the current playfield as plain text.
func (m Model) saveScreenshot() (string, error) {
	if m.shotDir == "" {
		return "", fmt.Errorf("tui: no screenshot directory")
	}
	m.render()
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("runner_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	note := ""
	if m.view.note != "" && time.Since(m.view.noteAt) < noteDuration {
		note = m.view.note
	}

	m.render()
	out := renderHUD(m.view.snap, m.runtime.ScreenW, note) + "\n" + RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + hudMutedStyle.Render(m.help.View(m.keys))
	}
	return out
}

// Run starts the Bubble Tea program with a model built from opts.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
