package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce collapses the burst of events editors produce on save.
const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a runner config file whenever it changes on disk.
// Parsed configs arrive on Updates; read or parse failures arrive on Errors
// and the previous config stays in effect.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	preset  DifficultyPreset
	Updates chan RunnerConfig
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// NewWatcher watches path. The preset is re-applied to every reload so a
// --difficulty flag survives edits to the file.
func NewWatcher(path string, preset DifficultyPreset) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("config: nothing to watch")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	// Watch the directory: editors often replace the file instead of writing it.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		preset:  preset,
		Updates: make(chan RunnerConfig, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	watcher.wg.Add(1)
	go watcher.run()
	return watcher, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and closes both channels.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.wg.Wait()
		close(w.Updates)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	// Reload on the trailing edge so the file is read after the last write.
	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(reloadDebounce)
		case <-pending:
			pending = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.sendErr(fmt.Errorf("config: reload %s: %w", w.path, err))
		return
	}
	cfg, err := ParseRunner(data)
	if err != nil {
		w.sendErr(fmt.Errorf("config: reload %s: %w", w.path, err))
		return
	}
	ApplyRunnerPreset(&cfg, w.preset)

	// Keep only the newest config if the consumer is behind.
	select {
	case <-w.Updates:
	default:
	}
	select {
	case w.Updates <- cfg:
	case <-w.closeCh:
	}
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
