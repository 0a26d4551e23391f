package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tap-runner/internal/config"
	"github.com/vovakirdan/tap-runner/internal/storage"
)

// newLogger builds the command logger at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens ~/.tap-runner/runner.log for appending. The alternate
// screen owns stdout while a run is on.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".tap-runner")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "runner.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadConfig loads the runner config and applies the difficulty preset.
func loadConfig(path, difficulty string) (config.RunnerConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}
	cfg, err := config.LoadRunner(path)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}
	config.ApplyRunnerPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.RunnerConfig{}, "", err
	}
	return cfg, preset, nil
}

// openStore opens the database. When that fails the game still runs, with
// the best score kept in memory.
func openStore(logger *log.Logger) (*storage.Store, storage.KV) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("database unavailable, best score will not persist", "path", flagDBPath, "error", err)
		return nil, storage.NewMemoryKV()
	}
	return store, store
}

// startWatcher watches the config file LoadRunner resolved, if any.
func startWatcher(path string, preset config.DifficultyPreset, logger *log.Logger) *config.Watcher {
	resolved := config.ResolvePath(path)
	if resolved == "" {
		logger.Warn("--watch ignored: running on the embedded default config")
		return nil
	}
	w, err := config.NewWatcher(resolved, preset)
	if err != nil {
		logger.Warn("cannot watch config", "path", resolved, "error", err)
		return nil
	}
	logger.Info("watching config", "path", w.Path())
	return w
}
