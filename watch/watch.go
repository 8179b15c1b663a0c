// Package watch re-runs a callback whenever a file changes.
//
// Editors often save by writing a temporary file and renaming it over the
// original, so the parent directory is watched rather than the file itself.
// When fsnotify is unavailable the file's modification time is polled.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval is the polling period used without fsnotify.
const DefaultPollInterval = 250 * time.Millisecond

// Func receives the file contents after every change. A returned error is
// logged and watching continues.
type Func func(data []byte) error

// Watcher watches one file.
type Watcher struct {
	path     string
	interval time.Duration
	logger   *slog.Logger
	polling  bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithPollInterval sets the polling period.
func WithPollInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithPolling forces the polling fallback.
func WithPolling() Option {
	return func(w *Watcher) {
		w.polling = true
	}
}

// WithLogger sets the logger for callback and watcher errors.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New creates a watcher for path.
func New(path string, opts ...Option) *Watcher {
	w := &Watcher{
		path:     path,
		interval: DefaultPollInterval,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// File runs fn on path now and after every change until ctx is done.
func File(ctx context.Context, path string, fn Func, opts ...Option) error {
	return New(path, opts...).Run(ctx, fn)
}

// Run calls fn with the current contents, then again after every write,
// create or rename that lands on the file. It returns nil when ctx is
// cancelled. A file that cannot be read initially is an error.
func (w *Watcher) Run(ctx context.Context, fn Func) error {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return fmt.Errorf("read watched file: %w", err)
	}
	w.call(fn, data)

	if w.polling {
		return w.poll(ctx, fn)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Debug("fsnotify unavailable, polling", slog.Any("error", err))
		return w.poll(ctx, fn)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		w.logger.Debug("watch directory failed, polling", slog.Any("error", err))
		return w.poll(ctx, fn)
	}

	return w.notify(ctx, fn, watcher)
}

func (w *Watcher) notify(ctx context.Context, fn Func, watcher *fsnotify.Watcher) error {
	base := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			data, err := os.ReadFile(w.path)
			if err != nil {
				// Mid-rename; the Create event follows.
				continue
			}
			w.call(fn, data)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", slog.String("path", w.path), slog.Any("error", err))
		}
	}
}

func (w *Watcher) poll(ctx context.Context, fn Func) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	last := w.modTime()
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:
			mod := w.modTime()
			if mod.IsZero() || mod.Equal(last) {
				continue
			}
			last = mod
			data, err := os.ReadFile(w.path)
			if err != nil {
				continue
			}
			w.call(fn, data)
		}
	}
}

func (w *Watcher) modTime() time.Time {
	info, err := os.Stat(w.path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

func (w *Watcher) call(fn Func, data []byte) {
	if err := fn(data); err != nil && !errors.Is(err, context.Canceled) {
		w.logger.Warn("watched file handler failed", slog.String("path", w.path), slog.Any("error", err))
	}
}
