package cell_test

import (
	"strconv"
	"testing"

	"github.com/cellwire/cellwire/cell"
	"github.com/stretchr/testify/assert"
)

func isEven(v int) bool { return v%2 == 0 }

// an eager chain tracks upstream mutations even with no listener anywhere
func TestMapEagerWithoutListeners(t *testing.T) {
	c := cell.New(5)
	doubled := cell.Map(c, func(v int) int { return v * 2 })
	assert.Equal(t, 10, doubled.Value())

	c.Set(7)
	assert.Equal(t, 14, doubled.Value())
}

// a lazy node's value is frozen until its first listener arrives, and the
// mutations it missed are never retroactively reflected
func TestMapLazyFrozenUntilFirstListener(t *testing.T) {
	c := cell.New(5)
	doubled := cell.Map(c, func(v int) int { return v * 2 }, cell.Lazy())
	assert.Equal(t, 10, doubled.Value())

	c.Set(7)
	assert.Equal(t, 10, doubled.Value())

	doubled.AddListener(func() {})
	assert.Equal(t, 10, doubled.Value())

	c.Set(9)
	assert.Equal(t, 18, doubled.Value())
}

// map recomputes and notifies on every upstream write, equal results included
func TestMapNotifiesOnEqualResults(t *testing.T) {
	c := cell.New(1)
	sign := cell.Map(c, func(v int) bool { return v >= 0 })
	callCount := 0
	sign.AddListener(func() { callCount++ })

	c.Set(2)
	c.Set(3)
	assert.Equal(t, 2, callCount)
	assert.True(t, sign.Value())
}

// select collapses notifications to real changes of the selected field
func TestSelectNotifiesOnlyOnChange(t *testing.T) {
	type user struct {
		id   int
		name string
	}
	c := cell.New(user{id: 1, name: "alice"})
	id := cell.Select(c, func(u user) int { return u.id })
	callCount := 0
	id.AddListener(func() { callCount++ })

	c.Set(user{id: 1, name: "bob"})
	assert.Equal(t, 0, callCount)

	c.Set(user{id: 2, name: "bob"})
	assert.Equal(t, 1, callCount)
	assert.Equal(t, 2, id.Value())
}

// values failing the predicate leave the node's value and silence intact
func TestWhereWithFallback(t *testing.T) {
	c := cell.New(5)
	evens := cell.WhereOr(c, isEven, 0)
	callCount := 0
	evens.AddListener(func() { callCount++ })
	assert.Equal(t, 0, evens.Value())

	c.Set(6)
	assert.Equal(t, 6, evens.Value())
	assert.Equal(t, 1, callCount)

	c.Set(3)
	assert.Equal(t, 6, evens.Value())
	assert.Equal(t, 1, callCount)
}

// without a fallback the construction-time value bypasses the predicate
func TestWhereInitialValueBypassesPredicate(t *testing.T) {
	c := cell.New(5)
	evens := cell.Where(c, isEven)
	assert.Equal(t, 5, evens.Value())

	c.Set(4)
	assert.Equal(t, 4, evens.Value())
	c.Set(7)
	assert.Equal(t, 4, evens.Value())
}

func TestCombineLatest2(t *testing.T) {
	a := cell.New(1)
	b := cell.New(2)
	sum := cell.CombineLatest2(a, b, func(x, y int) int { return x + y })
	assert.Equal(t, 3, sum.Value())

	a.Set(10)
	assert.Equal(t, 12, sum.Value())
	b.Set(20)
	assert.Equal(t, 30, sum.Value())
}

// the combiner reads all upstreams' current values, not a cached tuple
func TestCombineLatest3MixedTypes(t *testing.T) {
	a := cell.New("x")
	b := cell.New(2)
	c := cell.New(true)
	combined := cell.CombineLatest3(a, b, c, func(s string, n int, f bool) string {
		return s + strconv.Itoa(n) + strconv.FormatBool(f)
	})
	assert.Equal(t, "x2true", combined.Value())

	b.Set(9)
	c.Set(false)
	assert.Equal(t, "x9false", combined.Value())
}

// merge passes through whichever source changed last
func TestMergeFollowsLastChangedSource(t *testing.T) {
	a := cell.New(1)
	b := cell.New(2)
	c := cell.New(3)
	merged := cell.Merge[int](a, []cell.ValueListenable[int]{b, c})
	assert.Equal(t, 1, merged.Value())

	b.Set(20)
	assert.Equal(t, 20, merged.Value())
	c.Set(30)
	assert.Equal(t, 30, merged.Value())
	a.Set(10)
	assert.Equal(t, 10, merged.Value())
}

// a lazy merge leaves its value stale until the first listener add
func TestMergeLazyStaleUntilListener(t *testing.T) {
	a := cell.New(1)
	b := cell.New(2)
	merged := cell.Merge[int](a, []cell.ValueListenable[int]{b}, cell.Lazy())

	b.Set(20)
	assert.Equal(t, 1, merged.Value())

	merged.AddListener(func() {})
	b.Set(30)
	assert.Equal(t, 30, merged.Value())
}

// removing the last listener must not tear down the upstream subscription:
// the node stays hot and a re-added listener resumes correctly
func TestNodeStaysHotAfterLastListenerRemoved(t *testing.T) {
	c := cell.New(1)
	doubled := cell.Map(c, func(v int) int { return v * 2 })

	firstCalls := 0
	remove := doubled.AddListener(func() { firstCalls++ })
	c.Set(2)
	assert.Equal(t, 1, firstCalls)

	remove()
	c.Set(3)
	assert.Equal(t, 6, doubled.Value())
	assert.Equal(t, 1, firstCalls)

	secondCalls := 0
	doubled.AddListener(func() { secondCalls++ })
	c.Set(4)
	assert.Equal(t, 8, doubled.Value())
	assert.Equal(t, 1, secondCalls)
}

// downstream siblings keep working while an intermediate node has no listeners
func TestChainPropagatesThroughListenerlessNodes(t *testing.T) {
	c := cell.New(1)
	doubled := cell.Map(c, func(v int) int { return v * 2 })
	labeled := cell.Map(doubled, strconv.Itoa)

	c.Set(21)
	assert.Equal(t, "42", labeled.Value())
}

// dispose detaches from upstream; the upstream keeps working
func TestDisposeDetachesFromUpstream(t *testing.T) {
	c := cell.New(1)
	doubled := cell.Map(c, func(v int) int { return v * 2 })

	doubled.Dispose()
	assert.NotPanics(t, func() { c.Set(5) })
	assert.Equal(t, 2, doubled.Value())
	assert.NotPanics(t, func() { doubled.Dispose() })
}

// disposing a lazy node that never saw a listener must not crash on the
// absent subscription
func TestDisposeNeverInitializedLazyNode(t *testing.T) {
	c := cell.New(1)
	doubled := cell.Map(c, func(v int) int { return v * 2 }, cell.Lazy())
	assert.NotPanics(t, func() { doubled.Dispose() })
	assert.Panics(t, func() { doubled.AddListener(func() {}) })
}

// eager chains match a from-scratch recompute after any upstream mutation
func TestDeepChainEqualsRecomputeFromScratch(t *testing.T) {
	c := cell.New(3)
	plusOne := cell.Map(c, func(v int) int { return v + 1 })
	tripled := cell.Map(plusOne, func(v int) int { return v * 3 })
	parity := cell.Select(tripled, isEven)

	for _, v := range []int{10, 11, -4, 0} {
		c.Set(v)
		assert.Equal(t, (v+1)*3, tripled.Value())
		assert.Equal(t, isEven((v+1)*3), parity.Value())
	}
}
