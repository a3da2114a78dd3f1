package collections

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is the panic value (wrapped) for Update on an absent key
// without a fallback.
var ErrKeyNotFound = errors.New("cellwire/collections: key not found")

// Map is an observable key-value container. Setting a key reports a change
// when the key was absent or its value actually changed; bulk AddAll always
// counts as changed; lookups and removals of absent keys degrade gracefully.
type Map[K comparable, V comparable] struct {
	base
	eq    func(a, b V) bool
	items map[K]V
}

func NewMap[K comparable, V comparable](initial map[K]V, opts ...Option) *Map[K, V] {
	return NewMapEq(initial, func(a, b V) bool { return a == b }, opts...)
}

// NewMapEq is NewMap with a custom value equality used wherever a mutation
// compares old and new values at a key.
func NewMapEq[K comparable, V comparable](initial map[K]V, eq func(a, b V) bool, opts ...Option) *Map[K, V] {
	items := make(map[K]V, len(initial))
	for k, v := range initial {
		items[k] = v
	}
	return &Map[K, V]{
		base:  newBase(newConfig(opts)),
		eq:    eq,
		items: items,
	}
}

// Value returns a read-only view over the live backing store.
func (m *Map[K, V]) Value() MapView[K, V] {
	return MapView[K, V]{m: m}
}

func (m *Map[K, V]) Len() int {
	return len(m.items)
}

func (m *Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.items[k]
	return v, ok
}

func (m *Map[K, V]) ContainsKey(k K) bool {
	_, ok := m.items[k]
	return ok
}

func (m *Map[K, V]) Set(k K, v V) {
	m.checkAlive()
	old, had := m.items[k]
	m.items[k] = v
	m.notifyChanged(!had || !m.eq(old, v))
}

// PutIfAbsent stores create() under k only when k is absent, and returns the
// value now present.
func (m *Map[K, V]) PutIfAbsent(k K, create func() V) V {
	m.checkAlive()
	if v, ok := m.items[k]; ok {
		m.notifyChanged(false)
		return v
	}
	v := create()
	m.items[k] = v
	m.notifyChanged(true)
	return v
}

// Update replaces the value under k with update(old). An absent key is a
// programming error and panics with ErrKeyNotFound; use UpdateOr when the key
// may legitimately be missing.
func (m *Map[K, V]) Update(k K, update func(V) V) V {
	m.checkAlive()
	old, ok := m.items[k]
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrKeyNotFound, k))
	}
	v := update(old)
	m.items[k] = v
	m.notifyChanged(!m.eq(old, v))
	return v
}

// UpdateOr is Update with an ifAbsent fallback producing the value to store
// when k is missing.
func (m *Map[K, V]) UpdateOr(k K, update func(V) V, ifAbsent func() V) V {
	m.checkAlive()
	old, ok := m.items[k]
	if !ok {
		v := ifAbsent()
		m.items[k] = v
		m.notifyChanged(true)
		return v
	}
	v := update(old)
	m.items[k] = v
	m.notifyChanged(!m.eq(old, v))
	return v
}

// AddAll merges entries in. Bulk writes always count as changed.
func (m *Map[K, V]) AddAll(entries map[K]V) {
	m.checkAlive()
	for k, v := range entries {
		m.items[k] = v
	}
	m.notifyChanged(true)
}

// Remove deletes k and returns the removed value, if any. Removing an absent
// key is a silent no-change.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	m.checkAlive()
	v, ok := m.items[k]
	if ok {
		delete(m.items, k)
	}
	m.notifyChanged(ok)
	return v, ok
}

// RemoveWhere deletes every entry satisfying pred, returning the count.
func (m *Map[K, V]) RemoveWhere(pred func(K, V) bool) int {
	m.checkAlive()
	removed := 0
	for k, v := range m.items {
		if pred(k, v) {
			delete(m.items, k)
			removed++
		}
	}
	m.notifyChanged(removed > 0)
	return removed
}

func (m *Map[K, V]) Clear() {
	m.checkAlive()
	changed := len(m.items) > 0
	clear(m.items)
	m.notifyChanged(changed)
}

// Keys returns the current keys in unspecified order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the current values in unspecified order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, len(m.items))
	for _, v := range m.items {
		values = append(values, v)
	}
	return values
}

// MapView is a read-only window onto a Map's live backing store.
type MapView[K comparable, V comparable] struct {
	m *Map[K, V]
}

func (v MapView[K, V]) Len() int {
	return v.m.Len()
}

func (v MapView[K, V]) Get(k K) (V, bool) {
	return v.m.Get(k)
}

func (v MapView[K, V]) ContainsKey(k K) bool {
	return v.m.ContainsKey(k)
}

func (v MapView[K, V]) Keys() []K {
	return v.m.Keys()
}

// ToMap copies the current contents; mutating the copy cannot touch the
// backing store.
func (v MapView[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(v.m.items))
	for k, val := range v.m.items {
		out[k] = val
	}
	return out
}
