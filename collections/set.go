package collections

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Set is an observable unique-element container backed by a hash set. Add and
// Remove report a change only when membership actually changed; AddAll is a
// bulk write and always counts as changed. Union, Intersect and Difference
// are pure reads: they never mutate and never notify.
//
// The backing set is the thread-unsafe variant: a Set has a single logical
// owner, like every other container here.
type Set[T comparable] struct {
	base
	items mapset.Set[T]
}

func NewSet[T comparable](initial []T, opts ...Option) *Set[T] {
	return &Set[T]{
		base:  newBase(newConfig(opts)),
		items: mapset.NewThreadUnsafeSet(initial...),
	}
}

// Value returns a read-only view over the live backing store.
func (s *Set[T]) Value() SetView[T] {
	return SetView[T]{s: s}
}

func (s *Set[T]) Len() int {
	return s.items.Cardinality()
}

func (s *Set[T]) Contains(v T) bool {
	return s.items.Contains(v)
}

// Add inserts v and reports whether it was newly added.
func (s *Set[T]) Add(v T) bool {
	s.checkAlive()
	added := s.items.Add(v)
	s.notifyChanged(added)
	return added
}

func (s *Set[T]) AddAll(vs ...T) {
	s.checkAlive()
	for _, v := range vs {
		s.items.Add(v)
	}
	s.notifyChanged(true)
}

// Remove deletes v and reports whether it was present. Removing an absent
// element is a silent no-change.
func (s *Set[T]) Remove(v T) bool {
	s.checkAlive()
	had := s.items.Contains(v)
	if had {
		s.items.Remove(v)
	}
	s.notifyChanged(had)
	return had
}

// RemoveWhere deletes every element satisfying pred, returning the count.
func (s *Set[T]) RemoveWhere(pred func(T) bool) int {
	s.checkAlive()
	var doomed []T
	s.items.Each(func(v T) bool {
		if pred(v) {
			doomed = append(doomed, v)
		}
		return false
	})
	for _, v := range doomed {
		s.items.Remove(v)
	}
	s.notifyChanged(len(doomed) > 0)
	return len(doomed)
}

// RetainWhere deletes every element NOT satisfying pred, returning the count
// removed.
func (s *Set[T]) RetainWhere(pred func(T) bool) int {
	return s.RemoveWhere(func(v T) bool { return !pred(v) })
}

func (s *Set[T]) Clear() {
	s.checkAlive()
	changed := s.items.Cardinality() > 0
	s.items.Clear()
	s.notifyChanged(changed)
}

func (s *Set[T]) ToSlice() []T {
	return s.items.ToSlice()
}

// Union returns a new plain set holding this set's elements plus other's.
func (s *Set[T]) Union(other *Set[T]) mapset.Set[T] {
	return s.items.Union(other.items)
}

// Intersect returns a new plain set holding the elements present in both.
func (s *Set[T]) Intersect(other *Set[T]) mapset.Set[T] {
	return s.items.Intersect(other.items)
}

// Difference returns a new plain set holding this set's elements absent from
// other.
func (s *Set[T]) Difference(other *Set[T]) mapset.Set[T] {
	return s.items.Difference(other.items)
}

// SetView is a read-only window onto a Set's live backing store.
type SetView[T comparable] struct {
	s *Set[T]
}

func (v SetView[T]) Len() int {
	return v.s.Len()
}

func (v SetView[T]) Contains(x T) bool {
	return v.s.Contains(x)
}

// ToSlice copies the current contents; mutating the copy cannot touch the
// backing store.
func (v SetView[T]) ToSlice() []T {
	return v.s.ToSlice()
}

// Each calls fn for every element until fn returns true.
func (v SetView[T]) Each(fn func(T) bool) {
	v.s.items.Each(fn)
}
