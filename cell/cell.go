package cell

import (
	"fmt"
	"log"
)

// Listenable is the bare observable contract UI glue expects: register a
// callback, get back its removal closure. The returned remove func is
// idempotent and safe to call during a notification pass.
type Listenable interface {
	AddListener(fn func()) (remove func())
}

// ValueListenable is a Listenable that also carries a current value.
type ValueListenable[T any] interface {
	Listenable
	Value() T
}

type config struct {
	lazy    bool
	sched   Scheduler
	onError func(error)
}

type Option func(*config)

// Lazy defers the upstream subscription of a derived cell until its first
// listener is added. Until then the cell's value stays frozen at its
// construction-time value.
func Lazy() Option {
	return func(c *config) { c.lazy = true }
}

// WithScheduler sets the scheduler used by Debounce and Async.
func WithScheduler(s Scheduler) Option {
	return func(c *config) { c.sched = s }
}

// WithOnError routes listener panics to fn instead of the default log sink.
func WithOnError(fn func(error)) Option {
	return func(c *config) { c.onError = fn }
}

func newConfig(opts []Option) config {
	cfg := config{sched: Wall}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type listenerEntry struct {
	id uint64
	fn func()
}

// registry is the listener bookkeeping shared by Cell, Notifier and Node.
// Listeners run in registration order. A notification pass iterates a
// snapshot: listeners added during the pass run from the next pass on, and a
// listener removed mid-pass is skipped if it has not run yet.
type registry struct {
	listeners []listenerEntry
	nextID    uint64
	disposed  bool
	onError   func(error)
}

func (r *registry) AddListener(fn func()) (remove func()) {
	if r.disposed {
		panic("cellwire: AddListener on disposed cell")
	}
	id := r.nextID
	r.nextID++
	r.listeners = append(r.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, e := range r.listeners {
			if e.id == id {
				r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
				return
			}
		}
	}
}

func (r *registry) live(id uint64) bool {
	for _, e := range r.listeners {
		if e.id == id {
			return true
		}
	}
	return false
}

func (r *registry) notify() {
	if r.disposed {
		panic("cellwire: notify on disposed cell")
	}
	snapshot := make([]listenerEntry, len(r.listeners))
	copy(snapshot, r.listeners)
	for _, e := range snapshot {
		if !r.live(e.id) {
			continue
		}
		r.invoke(e.fn)
	}
}

// invoke isolates listener panics so one misbehaving observer cannot break
// the observed subject or starve the listeners after it.
func (r *registry) invoke(fn func()) {
	defer func() {
		if v := recover(); v != nil {
			err, ok := v.(error)
			if !ok {
				err = fmt.Errorf("%v", v)
			}
			if r.onError != nil {
				r.onError(err)
				return
			}
			log.Printf("cellwire: listener panic: %v", err)
		}
	}()
	fn()
}

func (r *registry) dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.listeners = nil
}

// Cell is a mutable observable value. Set always overwrites and always
// notifies; deduplicating equal values is the job of Select or of the
// collection types, not of the base cell.
type Cell[T any] struct {
	registry
	value T
}

func New[T any](initial T, opts ...Option) *Cell[T] {
	cfg := newConfig(opts)
	return &Cell[T]{
		registry: registry{onError: cfg.onError},
		value:    initial,
	}
}

func (c *Cell[T]) Value() T {
	return c.value
}

func (c *Cell[T]) Set(v T) {
	if c.disposed {
		panic("cellwire: Set on disposed cell")
	}
	c.value = v
	c.notify()
}

// Dispose releases the listener registry. Further Set or AddListener calls
// panic; calling Dispose again is a no-op.
func (c *Cell[T]) Dispose() {
	c.dispose()
}

// Notifier broadcasts change events without carrying a value.
type Notifier struct {
	registry
}

func NewNotifier(opts ...Option) *Notifier {
	cfg := newConfig(opts)
	return &Notifier{registry: registry{onError: cfg.onError}}
}

func (n *Notifier) Notify() {
	n.notify()
}

func (n *Notifier) Dispose() {
	n.dispose()
}
