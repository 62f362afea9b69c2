package fs

import (
	"sync"
	"time"

	"github.com/okullo/notes/pkg/core"
)

// debouncer coalesces bursts of events per note name. Editors typically
// produce several filesystem events per save; only the last one inside the
// window is delivered.
type debouncer struct {
	window time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window: window,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules emit to run after the debounce window, replacing any timer
// still pending for the same note.
func (d *debouncer) add(event core.Event, emit func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if pending, ok := d.timers[event.Name]; ok {
		if pending.Stop() {
			d.wg.Done()
		}
	}

	d.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(d.window, func() {
		defer d.wg.Done()
		d.mu.Lock()
		// A newer event may have replaced this timer already.
		if d.timers[event.Name] == t {
			delete(d.timers, event.Name)
		}
		stopped := d.stopped
		d.mu.Unlock()
		if !stopped {
			emit(event)
		}
	})
	d.timers[event.Name] = t
}

// stopAndWait rejects further events and waits up to timeout for in-flight
// timers to finish.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	for name, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, name)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}
