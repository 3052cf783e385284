package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the project config when vadmin.json or the dashboard
// layout file changes on disk. Rapid editor save bursts are debounced into
// one reload.
type Watcher struct {
	fw       *fsnotify.Watcher
	path     string
	extra    []string
	debounce time.Duration
	logger   *slog.Logger
	onReload func(*Config)

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// Watch starts watching the config file the given Config was loaded from.
// onReload is called with the freshly parsed config after each change; a
// change that no longer parses is logged and skipped, the previous config
// stays in effect.
func Watch(cfg *Config, logger *slog.Logger, onReload func(*Config)) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fw:       fw,
		path:     cfg.Path(),
		debounce: 200 * time.Millisecond,
		logger:   logger,
		onReload: onReload,
	}
	if lp := cfg.LayoutPath(); lp != "" {
		w.extra = append(w.extra, lp)
	}

	// Watch directories, not files: editors replace files on save, which
	// drops a file-level watch.
	dirs := map[string]bool{filepath.Dir(w.path): true}
	for _, p := range w.extra {
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
	}

	go w.loop()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !w.relevant(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(name string) bool {
	if filepath.Clean(name) == filepath.Clean(w.path) {
		return true
	}
	for _, p := range w.extra {
		if filepath.Clean(name) == filepath.Clean(p) {
			return true
		}
	}
	return false
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	cfg, err := LoadFile(w.path)
	if err != nil {
		w.logger.Warn("config reload skipped", "path", w.path, "error", err)
		return
	}
	w.logger.Info("config reloaded", "path", w.path)
	w.onReload(cfg)
}

// WatchContext is Watch bound to a context lifetime.
func WatchContext(ctx context.Context, cfg *Config, logger *slog.Logger, onReload func(*Config)) (*Watcher, error) {
	w, err := Watch(cfg, logger, onReload)
	if err != nil {
		return nil, err
	}
	go func() {
		<-ctx.Done()
		w.Close()
	}()
	return w, nil
}
