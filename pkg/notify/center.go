package notify

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// idCounter is the source of record IDs for the whole process.
// IDs are monotonically increasing and never reused.
var idCounter uint64

// nextID returns the next record ID.
func nextID() string {
	return fmt.Sprintf("n%d", atomic.AddUint64(&idCounter, 1))
}

// Center is the authoritative queue of active notifications.
//
// All methods are safe for concurrent use. Mutations are serialized by an
// internal mutex; listener callbacks and expiry callbacks run outside the
// lock, so interleavings behave like operations on a single event loop.
type Center struct {
	mu      sync.Mutex
	records []Record
	timers  map[string]Timer
	closed  bool

	clock           Clock
	defaultDuration time.Duration
	logger          *slog.Logger
	metrics         *metrics

	listenerMu sync.RWMutex
	listeners  map[uint64]func([]Record)
	listenerID uint64
}

// NewCenter creates a notification Center.
//
//	center := notify.NewCenter(
//	    notify.WithDefaultDuration(8*time.Second),
//	    notify.WithRegistry(prometheus.DefaultRegisterer),
//	)
func NewCenter(opts ...CenterOption) *Center {
	config := defaultCenterConfig()
	for _, opt := range opts {
		opt(&config)
	}

	c := &Center{
		timers:          make(map[string]Timer),
		clock:           config.clock,
		defaultDuration: config.defaultDuration,
		logger:          config.logger,
		listeners:       make(map[uint64]func([]Record)),
	}
	if config.registry != nil {
		c.metrics = newMetrics(config.registry, config.namespace)
	}
	return c
}

// Add appends a new record to the queue and returns its id.
//
// The record defaults to KindDefault, the Center's default duration, and
// Closeable true; options override. If the resolved duration is positive, a
// one-shot timer removes the record when it fires.
func (c *Center) Add(title string, opts ...Option) string {
	rec := Record{
		ID:        nextID(),
		Title:     title,
		Kind:      KindDefault,
		Duration:  c.defaultDuration,
		Closeable: true,
	}
	for _, opt := range opts {
		opt(&rec)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return rec.ID
	}
	rec.CreatedAt = c.clock.Now()
	c.records = append(c.records, rec)
	if rec.Duration > 0 {
		id := rec.ID
		c.timers[id] = c.clock.AfterFunc(rec.Duration, func() {
			c.expire(id)
		})
	}
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.metrics.recordAdded(rec.Kind, len(snapshot))
	c.log("notify: add", "id", rec.ID, "kind", rec.Kind.String(), "duration", rec.Duration)
	c.publish(snapshot)
	return rec.ID
}

// Kind shortcuts, mirroring the usual toast vocabulary.

// Success adds a success record.
func (c *Center) Success(title string, opts ...Option) string {
	return c.Add(title, append([]Option{WithKind(KindSuccess)}, opts...)...)
}

// Error adds an error record.
func (c *Center) Error(title string, opts ...Option) string {
	return c.Add(title, append([]Option{WithKind(KindError)}, opts...)...)
}

// Warning adds a warning record.
func (c *Center) Warning(title string, opts ...Option) string {
	return c.Add(title, append([]Option{WithKind(KindWarning)}, opts...)...)
}

// Info adds an info record.
func (c *Center) Info(title string, opts ...Option) string {
	return c.Add(title, append([]Option{WithKind(KindInfo)}, opts...)...)
}

// Remove deletes the record with the given id. Unknown ids are a silent
// no-op. A pending expiry timer for the record is cancelled.
func (c *Center) Remove(id string) {
	c.remove(id, removalDismissed)
}

// expire is the timer callback path for automatic removal.
func (c *Center) expire(id string) {
	c.remove(id, removalExpired)
}

type removalCause int

const (
	removalDismissed removalCause = iota
	removalExpired
)

func (c *Center) remove(id string, cause removalCause) {
	c.mu.Lock()
	idx := c.indexLocked(id)
	if idx < 0 {
		// Unknown id: either never existed or already removed. A timer
		// firing after a manual Remove lands here.
		c.mu.Unlock()
		return
	}
	rec := c.records[idx]
	c.records = append(c.records[:idx], c.records[idx+1:]...)
	c.stopTimerLocked(id)
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.metrics.recordRemoved(cause, len(snapshot))
	c.log("notify: remove", "id", id, "kind", rec.Kind.String(), "expired", cause == removalExpired)
	c.publish(snapshot)
}

// Update shallow-merges the given options into the record with matching id:
// fields the options set overwrite, everything else keeps its prior value.
// Unknown ids are a silent no-op; Update never re-inserts a removed record
// and never reschedules the expiry timer.
func (c *Center) Update(id string, opts ...Option) {
	c.mu.Lock()
	idx := c.indexLocked(id)
	if idx < 0 {
		c.mu.Unlock()
		return
	}
	rec := c.records[idx]
	for _, opt := range opts {
		opt(&rec)
	}
	rec.ID = id // the id is not updatable
	c.records[idx] = rec
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.log("notify: update", "id", id)
	c.publish(snapshot)
}

// Clear removes every record unconditionally and cancels all pending
// expiry timers.
func (c *Center) Clear() {
	c.mu.Lock()
	if len(c.records) == 0 {
		c.mu.Unlock()
		return
	}
	cleared := len(c.records)
	c.records = nil
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.mu.Unlock()

	c.metrics.recordCleared(cleared)
	c.log("notify: clear", "count", cleared)
	c.publish(nil)
}

// List returns a snapshot of the active records in insertion order.
func (c *Center) List() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Len returns the number of active records.
func (c *Center) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Get returns the record with the given id and whether it is present.
func (c *Center) Get(id string) (Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx := c.indexLocked(id); idx >= 0 {
		return c.records[idx], true
	}
	return Record{}, false
}

// Subscribe registers a listener invoked with a snapshot of the list after
// every change. The returned function unsubscribes the listener.
//
// Listeners run synchronously on the mutating goroutine, outside the
// Center's lock. A listener may call back into the Center.
func (c *Center) Subscribe(fn func(records []Record)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	c.listenerMu.Lock()
	c.listenerID++
	id := c.listenerID
	c.listeners[id] = fn
	c.listenerMu.Unlock()

	return func() {
		c.listenerMu.Lock()
		delete(c.listeners, id)
		c.listenerMu.Unlock()
	}
}

// Close clears the queue and stops accepting new records. Idempotent.
func (c *Center) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()
	c.Clear()
}

// indexLocked returns the position of id in the list, or -1.
func (c *Center) indexLocked(id string) int {
	for i := range c.records {
		if c.records[i].ID == id {
			return i
		}
	}
	return -1
}

// stopTimerLocked cancels and forgets the expiry timer for id, if any.
func (c *Center) stopTimerLocked(id string) {
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
}

// snapshotLocked copies the current list.
func (c *Center) snapshotLocked() []Record {
	if len(c.records) == 0 {
		return nil
	}
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// publish notifies all listeners with a copy-before-notify snapshot.
func (c *Center) publish(snapshot []Record) {
	c.listenerMu.RLock()
	fns := make([]func([]Record), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.listenerMu.RUnlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

// log emits a debug record when a logger is configured.
func (c *Center) log(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
