// Package watcher regenerates on source changes by watching a package directory.
package watcher

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/automap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceWatcher = (*Watcher)(nil)

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 100 * time.Millisecond

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// Watcher implements ports.SourceWatcher with fsnotify. A Go package lives in
// one directory so only that directory is watched.
type Watcher struct {
	logger ports.Logger
	window time.Duration
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithWindow sets the debounce window.
func WithWindow(d time.Duration) Option {
	return func(w *Watcher) {
		w.window = d
	}
}

// New creates a Watcher.
func New(logger ports.Logger, opts ...Option) *Watcher {
	w := &Watcher{
		logger: logger,
		window: DefaultDebounceWindow,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch implements ports.SourceWatcher. It returns nil once ctx is done.
// Paths still inside the debounce window at that point are passed to
// onChange before returning.
func (w *Watcher) Watch(ctx context.Context, dir string, skip func(string) bool, onChange func([]string)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	defer fsw.Close() //nolint:errcheck // Best effort close in defer

	if err := fsw.Add(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch directory"), "dir", dir)
	}

	batches := make(chan []string)
	done := make(chan struct{})
	defer close(done)

	debouncer := NewDebouncer(w.window, func(paths []string) {
		select {
		case batches <- paths:
		case <-done:
		}
	})
	defer debouncer.Stop()

	w.logger.Info("watching " + dir)

	for {
		select {
		case <-ctx.Done():
			if paths := debouncer.Flush(); len(paths) > 0 {
				onChange(paths)
			}
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if relevant(event) && (skip == nil || !skip(event.Name)) {
				debouncer.Add(event.Name)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher: " + err.Error())
		case paths := <-batches:
			onChange(paths)
		}
	}
}

// relevant reports whether event touches a non-test Go file.
func relevant(event fsnotify.Event) bool {
	if event.Op&relevantOps == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	return strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go")
}
