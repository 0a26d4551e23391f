// Package tui runs the runner in a terminal through Bubble Tea, locally or
// over SSH. The terminal stands in for a browser canvas: tea.Tick is the
// frame scheduler and the cell grid is the drawing surface.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tap-runner/internal/config"
)

// FrameMsg asks the model to advance the loop. Gen is the loop generation
// the frame was scheduled for; frames from an older generation are dropped.
type FrameMsg struct {
	Gen uint64
	At  time.Time
}

// frameCmd schedules the next frame at the given rate.
func frameCmd(gen uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, At: t}
	})
}

// ConfigMsg carries a hot-reloaded config.
type ConfigMsg config.RunnerConfig

// ConfigErrMsg reports a config file that failed to reload.
type ConfigErrMsg struct{ Err error }

// watchConfig waits for the next event from the watcher.
func watchConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Updates:
			if !ok {
				return nil
			}
			return ConfigMsg(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return ConfigErrMsg{Err: err}
		}
	}
}
