package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/okullo/notes/pkg/core"
)

// debounceWindow coalesces editor write bursts into a single event.
const debounceWindow = 50 * time.Millisecond

type watchWorker struct {
	repo      *Repository
	watcher   *fsnotify.Watcher
	events    chan core.Event
	debouncer *debouncer
}

// Watch implements core.Watchable. It emits a debounced event per note
// change until ctx is cancelled; the returned channel closes when the
// watcher stops.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := r.recursiveAdd(watcher); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch vault: %w", err)
	}

	w := &watchWorker{
		repo:      r,
		watcher:   watcher,
		events:    make(chan core.Event),
		debouncer: newDebouncer(debounceWindow),
	}
	r.setWatcherActive(true)

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		r.logger.Error("watcher stopped", "error", err)
	}))

	return w.events, nil
}

// recursiveAdd registers the vault and every visible subdirectory with the
// watcher. fsnotify does not watch recursively on its own.
func (r *Repository) recursiveAdd(watcher *fsnotify.Watcher) error {
	return filepath.WalkDir(r.Path, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != r.Path && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func (w *watchWorker) run(ctx context.Context) error {
	defer w.repo.setWatcherActive(false)
	defer w.watcher.Close()
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			w.debouncer.stopAndWait(time.Second)
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				w.debouncer.stopAndWait(time.Second)
				return fmt.Errorf("watcher events channel closed")
			}
			w.handle(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.debouncer.stopAndWait(time.Second)
				return fmt.Errorf("watcher errors channel closed")
			}
			w.repo.logger.Error("fsnotify error", "error", err)
		}
	}
}

func (w *watchWorker) handle(ctx context.Context, event fsnotify.Event) {
	w.repo.logger.Debug("filesystem event", "op", event.Op.String(), "path", event.Name)

	// New directories must be added to the watch set before notes appear
	// inside them.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !isHidden(filepath.Base(event.Name)) {
				_ = w.watcher.Add(event.Name)
			}
			return
		}
	}

	if w.repo.shouldIgnore(event.Name) {
		return
	}
	eventType, ok := mapEventType(event.Op)
	if !ok {
		return
	}
	name, err := w.repo.noteName(event.Name)
	if err != nil {
		return
	}

	w.emit(ctx, core.Event{Type: eventType, Name: name, At: time.Now()})
}

// emit hands the event to the debouncer. The delivery callback runs on a
// timer goroutine; it may race with shutdown closing the events channel,
// hence the recover.
func (w *watchWorker) emit(ctx context.Context, event core.Event) {
	w.debouncer.add(event, func(e core.Event) {
		defer func() {
			_ = recover()
		}()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

// shouldIgnore filters out paths that are not vault notes: hidden files and
// directories, non-markdown files, and our own atomic write temp files.
func (r *Repository) shouldIgnore(path string) bool {
	rel, err := filepath.Rel(r.Path, path)
	if err != nil {
		return true
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	for _, part := range parts {
		if isHidden(part) {
			return true
		}
	}
	base := parts[len(parts)-1]
	if strings.HasPrefix(base, TempFilePrefix) {
		return true
	}
	return !strings.HasSuffix(base, ".md")
}

func mapEventType(op fsnotify.Op) (core.EventType, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return core.EventCreate, true
	case op.Has(fsnotify.Write):
		return core.EventModify, true
	case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
		return core.EventDelete, true
	}
	return "", false
}
