package cell

// Subscription is a cancellable token for a listener registered through
// Listen. Cancel is idempotent and may be called from inside the handler
// during its own invocation.
type Subscription struct {
	remove   func()
	canceled bool
}

func (s *Subscription) Cancel() {
	if s.canceled {
		return
	}
	s.canceled = true
	s.remove()
}

func (s *Subscription) Canceled() bool {
	return s.canceled
}

// Listen registers handler on src and returns its subscription. The handler
// receives the cell's current value and its own subscription, so it can
// cancel itself ("run once", "run N times") without external bookkeeping.
func Listen[T any](src ValueListenable[T], handler func(value T, sub *Subscription)) *Subscription {
	sub := &Subscription{}
	sub.remove = src.AddListener(func() {
		handler(src.Value(), sub)
	})
	return sub
}

// Listen registers handler on the notifier; the handler receives only its own
// subscription since there is no value to carry.
func (n *Notifier) Listen(handler func(sub *Subscription)) *Subscription {
	sub := &Subscription{}
	sub.remove = n.AddListener(func() {
		handler(sub)
	})
	return sub
}
