// Package cell provides observable value cells, chainable operators over
// them, and cancellable subscriptions.
//
// A Cell holds a value and an ordered listener registry; Set overwrites the
// value and notifies every listener synchronously on the calling goroutine.
// Operator constructors (Map, Select, Where, Debounce, Async, Merge,
// CombineLatest2..6) build derived cells that recompute from one or more
// upstreams. Derived cells subscribe to their upstreams either eagerly at
// construction (the default) or on first listener add (Lazy), and stay
// subscribed until Dispose regardless of how many listeners they currently
// have.
package cell
