package cell

// Node is a cell derived from one or more upstream cells. Its initial value
// is computed by its constructor from the upstream values; afterwards the
// variant's recompute rule keeps it current.
//
// A node subscribes to its upstreams exactly once: eagerly at construction,
// or on the first AddListener when built with Lazy. Removing the last
// listener does NOT tear the subscription down; a hot node with zero
// listeners keeps recomputing so that a later listener resumes with a correct
// value and downstream siblings keep working. Only Dispose detaches.
type Node[T any] struct {
	registry
	value       T
	lazy        bool
	initialized bool
	sched       Scheduler
	attach      func()
	detach      []func()
	timer       Timer
}

func newNode[T any](initial T, cfg config) *Node[T] {
	return &Node[T]{
		registry: registry{onError: cfg.onError},
		value:    initial,
		lazy:     cfg.lazy,
		sched:    cfg.sched,
	}
}

func (n *Node[T]) Value() T {
	return n.value
}

func (n *Node[T]) AddListener(fn func()) (remove func()) {
	n.ensureInit()
	return n.registry.AddListener(fn)
}

// set is the variant handlers' write path: overwrite and notify.
func (n *Node[T]) set(v T) {
	n.value = v
	n.notify()
}

func (n *Node[T]) ensureInit() {
	if n.initialized || n.disposed {
		return
	}
	n.initialized = true
	n.attach()
}

// maybeInit is called by every constructor after attach is wired.
func (n *Node[T]) maybeInit() {
	if !n.lazy {
		n.ensureInit()
	}
}

// Dispose removes the node's handler from every upstream it subscribed to and
// cancels any pending timer. Disposing a never-initialized lazy node, or
// disposing twice, is a no-op.
func (n *Node[T]) Dispose() {
	if n.disposed {
		return
	}
	for _, remove := range n.detach {
		remove()
	}
	n.detach = nil
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.dispose()
}
