// Package watch reruns a callback when any of a set of files changes.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"howtogen/internal/errors"
	"howtogen/internal/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const DefaultDebounce = 300 * time.Millisecond

// Watcher observes the parent directories of the watched files, so files
// replaced by editors through a rename keep being tracked.
type Watcher struct {
	files    map[string]struct{}
	watcher  *fsnotify.Watcher
	debounce time.Duration
	log      *zap.SugaredLogger
}

type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

func New(paths []string, options ...Option) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating fsnotify watcher")
	}

	w := &Watcher{
		files:    make(map[string]struct{}, len(paths)),
		watcher:  watcher,
		debounce: DefaultDebounce,
		log:      logger.Named("watch"),
	}
	for _, option := range options {
		option(w)
	}

	directories := make(map[string]struct{})
	for _, path := range paths {
		absolute, err := filepath.Abs(path)
		if err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "resolving %s", path)
		}
		w.files[absolute] = struct{}{}
		directories[filepath.Dir(absolute)] = struct{}{}
	}
	for directory := range directories {
		if err := watcher.Add(directory); err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "watching %s", directory)
		}
	}

	return w, nil
}

// Run blocks until ctx is cancelled, calling onChange once per burst of changes.
// Callback errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, onChange func() error) error {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debugw("Change detected", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := onChange(); err != nil {
				w.log.Errorw("Regeneration failed", "error", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("Watcher error", "error", err)
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	absolute, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, watched := w.files[absolute]
	return watched
}
