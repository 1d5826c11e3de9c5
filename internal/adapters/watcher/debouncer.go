// Package watcher implements file system watching for manifest freshness.
package watcher

import (
	"sync"
	"time"
	"unique"

	"go.trai.ch/tsdk/internal/core/ports"
)

// Debouncer coalesces rapid file system events into change batches.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(batch ports.ChangeBatch)
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(batch ports.ChangeBatch)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add adds a changed path to the pending batch and restarts the window.
// Duplicate paths are deduplicated via interned handles.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(path)] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()

	if len(d.pending) == 0 {
		d.timer = nil
		d.mu.Unlock()
		return
	}

	batch := d.drainLocked()
	d.timer = nil
	d.mu.Unlock()

	if len(batch) > 0 && d.callback != nil {
		go d.callback(batch)
	}
}

// Flush immediately delivers all pending paths. It blocks until the callback
// completes, which makes it suitable for graceful shutdown.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired, let it complete rather than delivering twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}

	batch := d.drainLocked()
	d.mu.Unlock()

	if len(batch) > 0 && d.callback != nil {
		d.callback(batch)
	}
}

func (d *Debouncer) drainLocked() ports.ChangeBatch {
	batch := make(ports.ChangeBatch, 0, len(d.pending))
	for handle := range d.pending {
		batch = append(batch, handle.Value())
	}
	d.pending = make(map[unique.Handle[string]]struct{})
	return batch
}
