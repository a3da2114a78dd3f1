package collections_test

import (
	"sort"
	"testing"

	"github.com/cellwire/cellwire/collections"
	"github.com/stretchr/testify/assert"
)

func sorted(vs []int) []int {
	sort.Ints(vs)
	return vs
}

// add and remove count as changed only when membership actually changed
func TestSetMembershipChangedSemantics(t *testing.T) {
	s := collections.NewSet([]int{1, 2}, collections.WithMode(collections.NotifyNormal))
	notifies := countNotifies(s)

	assert.False(t, s.Add(1))
	assert.Equal(t, 0, *notifies)

	assert.True(t, s.Add(3))
	assert.Equal(t, 1, *notifies)

	assert.False(t, s.Remove(99))
	assert.Equal(t, 1, *notifies)

	assert.True(t, s.Remove(3))
	assert.Equal(t, 2, *notifies)
}

// bulk AddAll always counts as changed, duplicates and empty input included
func TestSetBulkAddAlwaysCountsAsChanged(t *testing.T) {
	s := collections.NewSet([]int{1}, collections.WithMode(collections.NotifyNormal))
	notifies := countNotifies(s)

	s.AddAll(1)
	assert.Equal(t, 1, *notifies)
	s.AddAll()
	assert.Equal(t, 2, *notifies)
}

func TestSetRemoveWhereRetainWhere(t *testing.T) {
	s := collections.NewSet([]int{1, 2, 3, 4}, collections.WithMode(collections.NotifyNormal))
	notifies := countNotifies(s)

	removed := s.RemoveWhere(func(v int) bool { return v > 3 })
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, *notifies)

	removed = s.RetainWhere(func(v int) bool { return v%2 == 1 })
	assert.Equal(t, 1, removed)
	assert.Equal(t, []int{1, 3}, sorted(s.ToSlice()))

	removed = s.RemoveWhere(func(v int) bool { return v > 100 })
	assert.Equal(t, 0, removed)
	assert.Equal(t, 2, *notifies)
}

// set algebra is pure: no mutation, no notification
func TestSetAlgebraIsReadOnly(t *testing.T) {
	a := collections.NewSet([]int{1, 2, 3})
	b := collections.NewSet([]int{2, 3, 4})
	aNotifies := countNotifies(a)
	bNotifies := countNotifies(b)

	union := a.Union(b)
	intersect := a.Intersect(b)
	diff := a.Difference(b)

	assert.Equal(t, []int{1, 2, 3, 4}, sorted(union.ToSlice()))
	assert.Equal(t, []int{2, 3}, sorted(intersect.ToSlice()))
	assert.Equal(t, []int{1}, sorted(diff.ToSlice()))

	assert.Equal(t, 0, *aNotifies)
	assert.Equal(t, 0, *bNotifies)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 3, b.Len())
}

func TestSetClearChangedSemantics(t *testing.T) {
	s := collections.NewSet([]int{1}, collections.WithMode(collections.NotifyNormal))
	notifies := countNotifies(s)

	s.Clear()
	assert.Equal(t, 1, *notifies)
	s.Clear()
	assert.Equal(t, 1, *notifies)
}

func TestSetTransactionCoalesces(t *testing.T) {
	s := collections.NewSet[int](nil)
	notifies := countNotifies(s)

	s.StartTransaction()
	s.AddAll(1, 2, 3)
	s.Remove(2)
	s.EndTransaction()

	assert.Equal(t, 1, *notifies)
	assert.Equal(t, []int{1, 3}, sorted(s.ToSlice()))
}

// the view window tracks the live store
func TestSetViewReflectsLiveStore(t *testing.T) {
	s := collections.NewSet([]int{1})
	view := s.Value()

	s.Add(2)
	assert.Equal(t, 2, view.Len())
	assert.True(t, view.Contains(2))

	snapshot := view.ToSlice()
	snapshot[0] = 99
	assert.True(t, s.Contains(1))
}

func TestSetDisposedMutationFailsLoudly(t *testing.T) {
	s := collections.NewSet([]int{1})
	s.Dispose()
	assert.Panics(t, func() { s.Add(2) })
}
