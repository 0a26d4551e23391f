package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tap-runner/internal/config"
	"github.com/vovakirdan/tap-runner/internal/core"
	"github.com/vovakirdan/tap-runner/internal/games/runner"
	"github.com/vovakirdan/tap-runner/internal/storage"
)

type recordedRun struct {
	score, best int
}

type fakeRecorder struct {
	runs []recordedRun
}

func (f *fakeRecorder) SaveRun(score, best int, _ time.Duration) (int64, error) {
	f.runs = append(f.runs, recordedRun{score, best})
	return int64(len(f.runs)), nil
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Config.World.Width == 0 {
		opts.Config = config.DefaultRunnerConfig()
	}
	if opts.Runtime.ScreenW == 0 {
		opts.Runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = t.TempDir()
	}
	return NewModel(opts)
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestPressInReadyStartsRun(t *testing.T) {
	m := newTestModel(t, Options{})
	if m.Snapshot().Status != runner.StatusReady {
		t.Fatalf("initial status = %v, expected ready", m.Snapshot().Status)
	}

	m, _ = update(m, spaceKey)
	snap := m.Snapshot()
	if snap.Status != runner.StatusRunning {
		t.Fatalf("status after space = %v, expected running", snap.Status)
	}
	if snap.Player.Grounded {
		t.Error("the starting press should also jump")
	}
}

func TestMouseClickStartsRun(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.Snapshot().Status != runner.StatusReady {
		t.Fatal("mouse release should not count as a press")
	}

	m, _ = update(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Snapshot().Status != runner.StatusRunning {
		t.Errorf("status after click = %v, expected running", m.Snapshot().Status)
	}
}

func TestEnterOnlyWorksOnOverlay(t *testing.T) {
	m := newTestModel(t, Options{})
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m, _ = update(m, enter)
	if m.Snapshot().Status != runner.StatusRunning {
		t.Fatal("enter should activate the Start Run button")
	}

	// Land, then enter mid-run must not jump.
	for i := 0; i < 100 && !m.Snapshot().Player.Grounded; i++ {
		m.Loop().Tick(1.0 / 60)
	}
	m, _ = update(m, enter)
	if !m.Snapshot().Player.Grounded {
		t.Error("enter mid-run should not act as a jump")
	}
}

func TestKeyRepeatIsDebounced(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(m, spaceKey)

	// Land, then an auto-repeat of the held space must not jump again.
	for i := 0; i < 100 && !m.Snapshot().Player.Grounded; i++ {
		m.Loop().Tick(1.0 / 60)
	}
	m, _ = update(m, spaceKey)
	if !m.Snapshot().Player.Grounded {
		t.Error("repeated space within the window should be ignored")
	}
}

func TestStaleFrameIsIgnored(t *testing.T) {
	m := newTestModel(t, Options{})
	staleGen := m.Loop().Generation()

	m, _ = update(m, spaceKey)
	before := m.Snapshot()

	m, cmd := update(m, FrameMsg{Gen: staleGen, At: time.Now()})
	if after := m.Snapshot(); after.Ticks != before.Ticks {
		t.Errorf("stale frame advanced the loop: %d -> %d ticks", before.Ticks, after.Ticks)
	}
	if cmd == nil {
		t.Error("the frame chain should continue after a stale frame")
	}

	// The first current frame starts the clock, the next one steps.
	at := time.Now()
	m, _ = update(m, FrameMsg{Gen: m.Loop().Generation(), At: at})
	m, _ = update(m, FrameMsg{Gen: m.Loop().Generation(), At: at.Add(16 * time.Millisecond)})
	if after := m.Snapshot(); after.Ticks != before.Ticks+1 {
		t.Errorf("current frame not applied: %d -> %d ticks", before.Ticks, after.Ticks)
	}
}

func TestStartingJumpSurvivesFrames(t *testing.T) {
	m := newTestModel(t, Options{})
	restY := m.Loop().Config().RestY()
	click := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	airborneAfterFrames := func(label string) {
		t.Helper()
		at := time.Now()
		for i := range 3 {
			m, _ = update(m, FrameMsg{Gen: m.Loop().Generation(), At: at.Add(time.Duration(i) * 16 * time.Millisecond)})
		}
		if p := m.Snapshot().Player; p.Grounded || p.Y >= restY {
			t.Errorf("%s: jump lost after frames, player %+v", label, p)
		}
	}

	m, _ = update(m, spaceKey)
	airborneAfterFrames("start")

	for i := 0; i < 5000 && m.Loop().Status() == runner.StatusRunning; i++ {
		m.Loop().Tick(1.0 / 60)
	}
	if m.Snapshot().Status != runner.StatusOver {
		t.Fatalf("status = %v, expected over", m.Snapshot().Status)
	}

	m, _ = update(m, click)
	if m.Snapshot().Status != runner.StatusRunning {
		t.Fatalf("status after restart = %v, expected running", m.Snapshot().Status)
	}
	airborneAfterFrames("restart")
}

func TestRunEndIsRecorded(t *testing.T) {
	rec := &fakeRecorder{}
	kv := storage.NewMemoryKV()
	m := newTestModel(t, Options{KV: kv, Runs: rec})

	m, _ = update(m, spaceKey)
	// Never jump again: the first obstacle ends the run.
	for i := 0; i < 5000 && m.Loop().Status() == runner.StatusRunning; i++ {
		m.Loop().Tick(1.0 / 60)
	}

	if m.Snapshot().Status != runner.StatusOver {
		t.Fatalf("status = %v, expected over", m.Snapshot().Status)
	}
	if len(rec.runs) != 1 {
		t.Fatalf("recorded %d runs, expected 1", len(rec.runs))
	}
	if !strings.Contains(m.View(), "Play Again") {
		t.Error("over view should offer Play Again")
	}
}

func TestQuitStopsLoop(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(m, spaceKey)

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.Loop().Stopped() {
		t.Error("quit should stop the loop")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestResizeKeepsSimulation(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(m, spaceKey)
	before := m.Snapshot()

	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if after := m.Snapshot(); after.Player != before.Player || after.Status != before.Status {
		t.Error("resizing changed the simulation")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("playfield = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestConfigReloadDeferredDuringRun(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(m, spaceKey)

	cfg := config.DefaultRunnerConfig()
	cfg.Physics.Gravity = 999
	m, _ = update(m, ConfigMsg(cfg))
	if m.Loop().Config().Physics.Gravity == 999 {
		t.Fatal("config must not change mid-run")
	}

	for i := 0; i < 5000 && m.Loop().Status() == runner.StatusRunning; i++ {
		m.Loop().Tick(1.0 / 60)
	}
	// A click, since a second space this soon would read as auto-repeat.
	m, _ = update(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Loop().Config().Physics.Gravity != 999 {
		t.Error("reloaded config should apply to the next run")
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, Options{ScreenshotDir: dir})

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("screenshot written to %q, expected under %q", path, dir)
	}
}

func TestOverlayLabel(t *testing.T) {
	tests := []struct {
		status runner.Status
		want   string
	}{
		{runner.StatusReady, "Start Run"},
		{runner.StatusRunning, ""},
		{runner.StatusOver, "Play Again"},
	}
	for _, tt := range tests {
		if got := OverlayLabel(tt.status); got != tt.want {
			t.Errorf("OverlayLabel(%v) = %q, expected %q", tt.status, got, tt.want)
		}
	}
}

func TestViewShowsHUDAndOverlay(t *testing.T) {
	m := newTestModel(t, Options{})
	out := m.View()

	for _, want := range []string{"Score 0", "Best 0", "Start Run"} {
		if !strings.Contains(out, want) {
			t.Errorf("ready view missing %q", want)
		}
	}

	m, _ = update(m, spaceKey)
	if strings.Contains(m.View(), "Start Run") {
		t.Error("running view should not show the overlay")
	}
}

func TestBestScoreLoadedFromKV(t *testing.T) {
	kv := storage.NewMemoryKV()
	kv.Set(runner.UserBestKey("ana"), "17")

	m := newTestModel(t, Options{KV: kv, BestKey: runner.UserBestKey("ana")})
	if m.Snapshot().Best != 17 {
		t.Errorf("best = %d, expected 17", m.Snapshot().Best)
	}
	if !strings.Contains(m.View(), "Best 17") {
		t.Error("HUD should show the loaded best")
	}
}
