package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/mandelbrot/internal/cliconfig"
	"github.com/bft-labs/mandelbrot/pkg/log"
)

// DefaultDebounce is how long the watcher waits after the last change to
// the config file before re-rendering.
const DefaultDebounce = 200 * time.Millisecond

// LoadFunc builds the effective configuration from scratch.
type LoadFunc func() (cliconfig.Config, error)

// RenderFunc renders one configuration.
type RenderFunc func(cliconfig.Config) error

// Watcher re-renders whenever the TOML config file changes.
//
// Renders run one at a time on the goroutine that called Run. A config that
// fails to load or render is logged and the watcher keeps waiting for the
// next change.
type Watcher struct {
	path     string
	debounce time.Duration
	load     LoadFunc
	render   RenderFunc
	logger   log.Logger

	mu    sync.Mutex
	timer *time.Timer
	fire  chan struct{}
}

// NewWatcher creates a watcher for the config file at path.
func NewWatcher(path string, load LoadFunc, render RenderFunc, logger log.Logger) *Watcher {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		load:     load,
		render:   render,
		logger:   logger,
		fire:     make(chan struct{}, 1),
	}
}

// SetDebounce changes the quiet period before a re-render.
func (w *Watcher) SetDebounce(d time.Duration) {
	if d > 0 {
		w.debounce = d
	}
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch its directory.
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info("watching config", log.String("path", w.path))

	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", log.Err(err))

		case <-w.fire:
			w.rerender()
		}
	}
}

// schedule restarts the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.fire <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

func (w *Watcher) rerender() {
	cfg, err := w.load()
	if err != nil {
		w.logger.Error("reload config", log.Err(err))
		return
	}
	w.logger.Info("config changed, rendering", log.String("output", cfg.Output))
	if err := w.render(cfg); err != nil {
		w.logger.Error("render failed", log.Err(err))
	}
}
