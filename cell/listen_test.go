package cell_test

import (
	"testing"

	"github.com/cellwire/cellwire/cell"
	"github.com/stretchr/testify/assert"
)

func TestListenReceivesCurrentValue(t *testing.T) {
	c := cell.New(0)
	var seen []int
	cell.Listen(c, func(v int, _ *cell.Subscription) {
		seen = append(seen, v)
	})

	c.Set(1)
	c.Set(2)
	assert.Equal(t, []int{1, 2}, seen)
}

// the handler's own handle enables run-exactly-once without bookkeeping
func TestListenSelfCancelRunsOnce(t *testing.T) {
	c := cell.New(0)
	callCount := 0
	cell.Listen(c, func(v int, sub *cell.Subscription) {
		callCount++
		sub.Cancel()
	})

	c.Set(1)
	c.Set(2)
	c.Set(3)
	assert.Equal(t, 1, callCount)
}

func TestListenCancelTwiceIsNoop(t *testing.T) {
	c := cell.New(0)
	callCount := 0
	sub := cell.Listen(c, func(int, *cell.Subscription) { callCount++ })

	sub.Cancel()
	assert.NotPanics(t, sub.Cancel)
	assert.True(t, sub.Canceled())

	c.Set(1)
	assert.Equal(t, 0, callCount)
}

// cancelling another subscription mid-pass keeps its handler from running in
// the same pass
func TestListenCancelOtherSubscriptionMidPass(t *testing.T) {
	c := cell.New(0)
	var calls []string
	var second *cell.Subscription
	cell.Listen(c, func(int, *cell.Subscription) {
		calls = append(calls, "first")
		second.Cancel()
	})
	second = cell.Listen(c, func(int, *cell.Subscription) {
		calls = append(calls, "second")
	})

	c.Set(1)
	assert.Equal(t, []string{"first"}, calls)
}

// listening on a value-less notifier hands the handler just its handle
func TestNotifierListen(t *testing.T) {
	n := cell.NewNotifier()
	callCount := 0
	n.Listen(func(sub *cell.Subscription) {
		callCount++
		if callCount == 2 {
			sub.Cancel()
		}
	})

	n.Notify()
	n.Notify()
	n.Notify()
	assert.Equal(t, 2, callCount)
}

// listening on a derived node initializes a lazy chain
func TestListenInitializesLazyNode(t *testing.T) {
	c := cell.New(1)
	doubled := cell.Map(c, func(v int) int { return v * 2 }, cell.Lazy())

	var seen []int
	cell.Listen(doubled, func(v int, _ *cell.Subscription) { seen = append(seen, v) })

	c.Set(3)
	assert.Equal(t, []int{6}, seen)
	assert.Equal(t, 6, doubled.Value())
}
