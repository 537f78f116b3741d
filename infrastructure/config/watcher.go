package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher reloads the configuration when its YAML file changes. Reloading
// is only enabled in development and when the configuration came from a file.
type Watcher struct {
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)

	load     func() (*Config, error)
	debounce time.Duration
	logger   *zap.Logger

	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
	stopOnce sync.Once
}

// WatcherOption configures a Watcher
type WatcherOption func(*Watcher)

// WithDebounce sets how long the watcher waits for writes to settle
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// NewWatcher creates a watcher for initial.File
func NewWatcher(initial *Config, logger *zap.Logger, opts ...WatcherOption) (*Watcher, error) {
	w := &Watcher{
		config:   initial,
		load:     LoadConfig,
		debounce: defaultDebounce,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if !initial.IsDevelopment() || initial.File == "" {
		logger.Info("Configuration hot reloading disabled",
			zap.String("environment", initial.Environment),
		)
		return w, nil
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Editors often replace the file, so watch its directory.
	if err := fsWatcher.Add(filepath.Dir(initial.File)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch config file: %w", err)
	}
	w.watcher = fsWatcher

	go w.watchLoop(filepath.Clean(initial.File))

	logger.Info("Configuration hot reloading enabled", zap.String("file", initial.File))
	return w, nil
}

func (w *Watcher) watchLoop(path string) {
	defer w.watcher.Close()

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}

			w.logger.Debug("Configuration file changed",
				zap.String("file", event.Name),
				zap.String("operation", event.Op.String()),
			)
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, w.Reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", zap.Error(err))

		case <-w.stopCh:
			return
		}
	}
}

// Reload re-reads the configuration and notifies callbacks when it changed.
// An invalid file keeps the current configuration.
func (w *Watcher) Reload() {
	next, err := w.load()
	if err != nil {
		w.logger.Error("Invalid configuration after reload", zap.Error(err))
		return
	}

	w.mu.Lock()
	previous := w.config
	if *previous == *next {
		w.mu.Unlock()
		return
	}
	w.config = next
	callbacks := make([]func(*Config), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	w.logger.Info("Configuration reloaded",
		zap.String("log_level", next.LogLevel),
		zap.Bool("log_level_changed", previous.LogLevel != next.LogLevel),
	)

	for _, callback := range callbacks {
		w.notify(callback, next)
	}
}

func (w *Watcher) notify(callback func(*Config), cfg *Config) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("Configuration callback panicked", zap.Any("panic", r))
		}
	}()
	callback(cfg)
}

// OnChange registers a callback run after every effective reload
func (w *Watcher) OnChange(callback func(*Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Config returns the current configuration
func (w *Watcher) Config() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.config
}

// Enabled reports whether the file is being watched
func (w *Watcher) Enabled() bool {
	return w.watcher != nil
}

// Stop ends watching. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
}
