package collections

import (
	"math/rand"
	"sort"
)

// List is an observable sequence. Single-element operations report a change
// only when they really altered the sequence; bulk writes (AddAll, InsertAll,
// SetAll, SetRange, Sort, Shuffle) count as changed unconditionally, even for
// empty input, so a bulk result that happens to match existing state never
// turns into a silent no-op.
type List[T comparable] struct {
	base
	eq    func(a, b T) bool
	items []T
}

func NewList[T comparable](initial []T, opts ...Option) *List[T] {
	return NewListEq(initial, func(a, b T) bool { return a == b }, opts...)
}

// NewListEq is NewList with a custom element equality used wherever a
// mutation compares old and new values at a slot.
func NewListEq[T comparable](initial []T, eq func(a, b T) bool, opts ...Option) *List[T] {
	l := &List[T]{
		base:  newBase(newConfig(opts)),
		eq:    eq,
		items: append([]T(nil), initial...),
	}
	return l
}

// Value returns a read-only view over the live backing store.
func (l *List[T]) Value() ListView[T] {
	return ListView[T]{l: l}
}

func (l *List[T]) Len() int {
	return len(l.items)
}

func (l *List[T]) Get(i int) T {
	return l.items[i]
}

func (l *List[T]) Set(i int, v T) {
	l.checkAlive()
	old := l.items[i]
	l.items[i] = v
	l.notifyChanged(!l.eq(old, v))
}

func (l *List[T]) Add(v T) {
	l.checkAlive()
	l.items = append(l.items, v)
	l.notifyChanged(true)
}

func (l *List[T]) AddAll(vs ...T) {
	l.checkAlive()
	l.items = append(l.items, vs...)
	l.notifyChanged(true)
}

func (l *List[T]) Insert(i int, v T) {
	l.checkAlive()
	l.items = append(l.items, v)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = v
	l.notifyChanged(true)
}

func (l *List[T]) InsertAll(i int, vs ...T) {
	l.checkAlive()
	l.items = append(l.items[:i], append(append([]T(nil), vs...), l.items[i:]...)...)
	l.notifyChanged(true)
}

func (l *List[T]) RemoveAt(i int) T {
	l.checkAlive()
	v := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.notifyChanged(true)
	return v
}

// Remove deletes the first element equal to v and reports whether it found
// one. Removing an absent value is a silent no-change, not an error.
func (l *List[T]) Remove(v T) bool {
	l.checkAlive()
	for i, item := range l.items {
		if l.eq(item, v) {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.notifyChanged(true)
			return true
		}
	}
	l.notifyChanged(false)
	return false
}

// RemoveWhere deletes every element satisfying pred, returning the count.
func (l *List[T]) RemoveWhere(pred func(T) bool) int {
	l.checkAlive()
	kept := l.items[:0]
	removed := 0
	for _, item := range l.items {
		if pred(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	l.items = kept
	l.notifyChanged(removed > 0)
	return removed
}

// RetainWhere deletes every element NOT satisfying pred, returning the count
// removed.
func (l *List[T]) RetainWhere(pred func(T) bool) int {
	return l.RemoveWhere(func(v T) bool { return !pred(v) })
}

// SetAll overwrites elements starting at index i with vs.
func (l *List[T]) SetAll(i int, vs ...T) {
	l.checkAlive()
	copy(l.items[i:], vs)
	l.notifyChanged(true)
}

// SetRange overwrites [start, end) with the leading elements of src.
func (l *List[T]) SetRange(start, end int, src []T) {
	l.checkAlive()
	copy(l.items[start:end], src)
	l.notifyChanged(true)
}

func (l *List[T]) Clear() {
	l.checkAlive()
	changed := len(l.items) > 0
	l.items = l.items[:0]
	l.notifyChanged(changed)
}

func (l *List[T]) Sort(less func(a, b T) bool) {
	l.checkAlive()
	sort.SliceStable(l.items, func(i, j int) bool {
		return less(l.items[i], l.items[j])
	})
	l.notifyChanged(true)
}

// Shuffle permutes the list using r, or the shared global source when r is
// nil.
func (l *List[T]) Shuffle(r *rand.Rand) {
	l.checkAlive()
	swap := func(i, j int) {
		l.items[i], l.items[j] = l.items[j], l.items[i]
	}
	if r != nil {
		r.Shuffle(len(l.items), swap)
	} else {
		rand.Shuffle(len(l.items), swap)
	}
	l.notifyChanged(true)
}

func (l *List[T]) Swap(i, j int) {
	l.checkAlive()
	changed := i != j && !l.eq(l.items[i], l.items[j])
	l.items[i], l.items[j] = l.items[j], l.items[i]
	l.notifyChanged(changed)
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *List[T]) IndexOf(v T) int {
	for i, item := range l.items {
		if l.eq(item, v) {
			return i
		}
	}
	return -1
}

// ListView is a read-only window onto a List's live backing store: it
// reflects later mutations made through the List, and offers no mutators.
type ListView[T comparable] struct {
	l *List[T]
}

func (v ListView[T]) Len() int {
	return v.l.Len()
}

func (v ListView[T]) Get(i int) T {
	return v.l.Get(i)
}

func (v ListView[T]) IndexOf(x T) int {
	return v.l.IndexOf(x)
}

// ToSlice copies the current contents; mutating the copy cannot touch the
// backing store.
func (v ListView[T]) ToSlice() []T {
	return append([]T(nil), v.l.items...)
}
