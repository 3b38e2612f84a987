package maskconfig

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher keeps a Set loaded from a directory and reloads it when documents
// in the directory change. A failed reload keeps the previous set.
type Watcher struct {
	dir     string
	opts    []Option
	o       options
	current atomic.Pointer[Set]
}

// NewWatcher creates a Watcher for dir. Nothing is loaded until Run.
func NewWatcher(dir string, opts ...Option) *Watcher {
	return &Watcher{
		dir:  dir,
		opts: opts,
		o:    newOptions(opts),
	}
}

// Current returns the last set loaded, or nil before Run loads one.
func (w *Watcher) Current() *Set {
	return w.current.Load()
}

// Run loads the directory, then reloads it after changes until ctx is
// cancelled. It returns nil on cancellation and an error when the initial
// load or the file watch cannot be set up.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.reload(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("maskconfig: create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("maskconfig: watch %s: %w", w.dir, err)
	}
	w.o.logger.Info("maskconfig: watching masks", "dir", w.dir)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isMaskFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.o.logger.Debug("maskconfig: change detected", "file", filepath.Base(event.Name), "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.o.debounce)
			} else {
				timer.Reset(w.o.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.reload(); err != nil {
				w.o.logger.Warn("maskconfig: reload failed", "dir", w.dir, "error", err)
				if w.o.onError != nil {
					w.o.onError(err)
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.o.logger.Warn("maskconfig: watcher error", "error", err)
			if w.o.onError != nil {
				w.o.onError(err)
			}
		}
	}
}

func (w *Watcher) reload() error {
	set, err := LoadFS(os.DirFS(w.dir), w.opts...)
	if err != nil {
		return err
	}
	w.current.Store(set)
	w.o.logger.Info("maskconfig: masks loaded", "dir", w.dir, "masks", set.Len())
	if w.o.onChange != nil {
		w.o.onChange(set)
	}
	return nil
}
