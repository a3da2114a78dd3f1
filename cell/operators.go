package cell

import "time"

// Map derives a cell whose value is transform applied to the upstream value.
// Every upstream notification recomputes and notifies, equal or not.
func Map[T, R any](src ValueListenable[T], transform func(T) R, opts ...Option) *Node[R] {
	n := newNode(transform(src.Value()), newConfig(opts))
	n.attach = func() {
		n.detach = append(n.detach, src.AddListener(func() {
			n.set(transform(src.Value()))
		}))
	}
	n.maybeInit()
	return n
}

// Select derives a cell from a sub-field of the upstream value, notifying
// only when the selected value actually changed. Comparison is plain ==;
// a consumer needing custom equality should Select a comparable key instead.
func Select[T any, R comparable](src ValueListenable[T], selector func(T) R, opts ...Option) *Node[R] {
	n := newNode(selector(src.Value()), newConfig(opts))
	n.attach = func() {
		n.detach = append(n.detach, src.AddListener(func() {
			if candidate := selector(src.Value()); candidate != n.value {
				n.set(candidate)
			}
		}))
	}
	n.maybeInit()
	return n
}

// Where derives a cell that only takes on upstream values satisfying pred.
// Caveat: the upstream's value at construction time becomes the initial value
// even when pred rejects it; use WhereOr to supply a fallback instead.
func Where[T any](src ValueListenable[T], pred func(T) bool, opts ...Option) *Node[T] {
	return where(src, pred, src.Value(), opts)
}

// WhereOr is Where with an explicit initial value for the case where the
// upstream's construction-time value fails pred.
func WhereOr[T any](src ValueListenable[T], pred func(T) bool, fallback T, opts ...Option) *Node[T] {
	initial := src.Value()
	if !pred(initial) {
		initial = fallback
	}
	return where(src, pred, initial, opts)
}

func where[T any](src ValueListenable[T], pred func(T) bool, initial T, opts []Option) *Node[T] {
	n := newNode(initial, newConfig(opts))
	n.attach = func() {
		n.detach = append(n.detach, src.AddListener(func() {
			if v := src.Value(); pred(v) {
				n.set(v)
			}
		}))
	}
	n.maybeInit()
	return n
}

// Debounce derives a cell that follows the upstream only after it has been
// quiet for d. Each upstream notification cancels the pending timer and
// starts a new one; when it fires, the node takes the upstream value current
// at fire time.
func Debounce[T any](src ValueListenable[T], d time.Duration, opts ...Option) *Node[T] {
	n := newNode(src.Value(), newConfig(opts))
	n.attach = func() {
		n.detach = append(n.detach, src.AddListener(func() {
			if n.timer != nil {
				n.timer.Stop()
			}
			n.timer = n.sched.AfterFunc(d, func() {
				n.timer = nil
				n.set(src.Value())
			})
		}))
	}
	n.maybeInit()
	return n
}

// Async derives a cell that defers its update to the next scheduler tick,
// breaking re-entrant mutation-during-notification cycles. Notifications
// arriving while a tick is pending coalesce into one update carrying the
// latest upstream value.
func Async[T any](src ValueListenable[T], opts ...Option) *Node[T] {
	n := newNode(src.Value(), newConfig(opts))
	n.attach = func() {
		n.detach = append(n.detach, src.AddListener(func() {
			if n.timer != nil {
				return
			}
			n.timer = n.sched.NextTick(func() {
				n.timer = nil
				n.set(src.Value())
			})
		}))
	}
	n.maybeInit()
	return n
}

// Merge derives a cell that takes on the value of whichever participating
// source notified last, with no combination function. The initial value is
// src's. With the default eager subscription the value tracks source changes
// even before any listener is added; with Lazy it stays stale until then.
func Merge[T any](src ValueListenable[T], others []ValueListenable[T], opts ...Option) *Node[T] {
	n := newNode(src.Value(), newConfig(opts))
	sources := append([]ValueListenable[T]{src}, others...)
	n.attach = func() {
		for _, s := range sources {
			s := s
			n.detach = append(n.detach, s.AddListener(func() {
				n.set(s.Value())
			}))
		}
	}
	n.maybeInit()
	return n
}
