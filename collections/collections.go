// Package collections provides observable list, map and set containers.
//
// Every mutating method updates the backing store, decides whether the
// operation actually changed anything, and then notifies listeners according
// to the container's NotifyMode. Transactions suppress notification until
// EndTransaction, which fires at most once for the whole batch.
package collections

import "github.com/cellwire/cellwire/cell"

// NotifyMode governs whether a mutation notifies listeners.
//
// NotifyAlways is the default: every mutating call notifies, changed or not,
// so element types without meaningful equality never produce confusing silent
// no-ops. NotifyNormal notifies only on real change. NotifyManual never
// notifies automatically; the caller invokes NotifyListeners itself.
type NotifyMode uint8

const (
	NotifyAlways NotifyMode = iota
	NotifyNormal
	NotifyManual
)

type config struct {
	mode    NotifyMode
	onError func(error)
}

type Option func(*config)

func WithMode(m NotifyMode) Option {
	return func(c *config) { c.mode = m }
}

// WithOnError routes listener panics to fn instead of the default log sink.
func WithOnError(fn func(error)) Option {
	return func(c *config) { c.onError = fn }
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// base carries the notification machinery shared by the three containers.
type base struct {
	notifier  *cell.Notifier
	mode      NotifyMode
	inTx      bool
	txChanged bool
	disposed  bool
}

func newBase(cfg config) base {
	var cellOpts []cell.Option
	if cfg.onError != nil {
		cellOpts = append(cellOpts, cell.WithOnError(cfg.onError))
	}
	return base{
		notifier: cell.NewNotifier(cellOpts...),
		mode:     cfg.mode,
	}
}

func (b *base) AddListener(fn func()) (remove func()) {
	return b.notifier.AddListener(fn)
}

// NotifyListeners triggers a notification pass directly. It is the delivery
// mechanism for NotifyManual mode but works in any mode.
func (b *base) NotifyListeners() {
	b.notifier.Notify()
}

// Dispose releases the listeners; any later mutation panics.
func (b *base) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.notifier.Dispose()
}

func (b *base) Mode() NotifyMode {
	return b.mode
}

// StartTransaction opens a batch: notifications are suppressed until
// EndTransaction. Nesting transactions is a programming error.
func (b *base) StartTransaction() {
	b.checkAlive()
	if b.inTx {
		panic("cellwire/collections: nested StartTransaction")
	}
	b.inTx = true
	b.txChanged = false
}

// EndTransaction closes the batch and performs a single notification
// evaluated against whether anything changed since StartTransaction.
func (b *base) EndTransaction() {
	b.checkAlive()
	if !b.inTx {
		panic("cellwire/collections: EndTransaction without StartTransaction")
	}
	b.inTx = false
	changed := b.txChanged
	b.txChanged = false
	b.notifyChanged(changed)
}

func (b *base) checkAlive() {
	if b.disposed {
		panic("cellwire/collections: mutation on disposed collection")
	}
}

func (b *base) notifyChanged(changed bool) {
	if b.inTx {
		if changed {
			b.txChanged = true
		}
		return
	}
	switch b.mode {
	case NotifyAlways:
		b.notifier.Notify()
	case NotifyNormal:
		if changed {
			b.notifier.Notify()
		}
	case NotifyManual:
	}
}
