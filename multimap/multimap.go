// Package multimap provides maps from keys to multiple values, backed by the
// order-preserving indexmap.Map. Two flavors are offered: VecMultimap keeps
// every inserted value, duplicates included, in insertion order;
// SetMultimap keeps at most one copy of each (key, value) pair.
//
// Both track the total pair count separately from the key count: for a
// multimap holding a→0, a→1, b→2, Len is 3 and KeysLen is 2. A key never
// maps to an empty group; removing a key's last value removes the key.
package multimap

import (
	"iter"

	"github.com/homier/smallmap/indexmap"
)

// VecMultimap maps keys to slices of values. Duplicate values under one key
// are kept.
type VecMultimap[K comparable, V comparable] struct {
	inner *indexmap.Map[K, []V]
	size  int
}

// NewVec returns an empty VecMultimap.
func NewVec[K comparable, V comparable]() *VecMultimap[K, V] {
	return &VecMultimap[K, V]{inner: indexmap.New[K, []V]()}
}

// Len returns the total number of (key, value) pairs.
func (m *VecMultimap[K, V]) Len() int {
	return m.size
}

// KeysLen returns the number of distinct keys.
func (m *VecMultimap[K, V]) KeysLen() int {
	return m.inner.Len()
}

// IsEmpty reports whether the multimap has no pairs.
func (m *VecMultimap[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Insert adds value under key, after any values already there.
func (m *VecMultimap[K, V]) Insert(key K, value V) {
	if group := m.inner.GetMut(key); group != nil {
		*group = append(*group, value)
	} else {
		m.inner.Insert(key, []V{value})
	}

	m.size++
}

// Remove removes the first occurrence of value under key. The key itself is
// removed when its last value goes.
func (m *VecMultimap[K, V]) Remove(key K, value V) bool {
	group := m.inner.GetMut(key)
	if group == nil {
		return false
	}

	for i, v := range *group {
		if v == value {
			*group = append((*group)[:i], (*group)[i+1:]...)
			m.size--

			if len(*group) == 0 {
				m.inner.SwapRemove(key)
			}

			return true
		}
	}

	return false
}

// RemoveKey removes key and returns all values it mapped to.
func (m *VecMultimap[K, V]) RemoveKey(key K) ([]V, bool) {
	group, ok := m.inner.SwapRemove(key)
	if !ok {
		return nil, false
	}

	m.size -= len(group)
	return group, true
}

// ContainsKey reports whether key has at least one value.
func (m *VecMultimap[K, V]) ContainsKey(key K) bool {
	return m.inner.ContainsKey(key)
}

// Contains reports whether the (key, value) pair is present.
func (m *VecMultimap[K, V]) Contains(key K, value V) bool {
	group, ok := m.inner.Get(key)
	if !ok {
		return false
	}

	for _, v := range group {
		if v == value {
			return true
		}
	}

	return false
}

// Get returns the values stored under key. The returned slice is a live view
// and must not be modified by the caller.
func (m *VecMultimap[K, V]) Get(key K) ([]V, bool) {
	return m.inner.Get(key)
}

// All returns an iterator over every (key, value) pair, grouped by key in
// key insertion order.
func (m *VecMultimap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, group := range m.inner.All() {
			for _, v := range group {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// SetMultimap maps keys to sets of values. Inserting a duplicate
// (key, value) pair is a no-op.
type SetMultimap[K comparable, V comparable] struct {
	inner *indexmap.Map[K, *indexmap.Map[V, struct{}]]
	size  int
}

// NewSet returns an empty SetMultimap.
func NewSet[K comparable, V comparable]() *SetMultimap[K, V] {
	return &SetMultimap[K, V]{inner: indexmap.New[K, *indexmap.Map[V, struct{}]]()}
}

// Len returns the total number of (key, value) pairs.
func (m *SetMultimap[K, V]) Len() int {
	return m.size
}

// KeysLen returns the number of distinct keys.
func (m *SetMultimap[K, V]) KeysLen() int {
	return m.inner.Len()
}

// IsEmpty reports whether the multimap has no pairs.
func (m *SetMultimap[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Insert adds value under key. Returns true when the pair is newly added.
func (m *SetMultimap[K, V]) Insert(key K, value V) bool {
	group, ok := m.inner.Get(key)
	if !ok {
		group = indexmap.New[V, struct{}]()
		m.inner.Insert(key, group)
	}

	if _, existed := group.Insert(value, struct{}{}); existed {
		return false
	}

	m.size++
	return true
}

// Remove removes the (key, value) pair. The key itself is removed when its
// last value goes.
func (m *SetMultimap[K, V]) Remove(key K, value V) bool {
	group, ok := m.inner.Get(key)
	if !ok {
		return false
	}

	if _, removed := group.SwapRemove(value); !removed {
		return false
	}

	m.size--
	if group.IsEmpty() {
		m.inner.SwapRemove(key)
	}

	return true
}

// RemoveKey removes key and returns all values it mapped to, in their
// insertion order.
func (m *SetMultimap[K, V]) RemoveKey(key K) ([]V, bool) {
	group, ok := m.inner.SwapRemove(key)
	if !ok {
		return nil, false
	}

	values := make([]V, 0, group.Len())
	for v := range group.Keys() {
		values = append(values, v)
	}

	m.size -= len(values)
	return values, true
}

// ContainsKey reports whether key has at least one value.
func (m *SetMultimap[K, V]) ContainsKey(key K) bool {
	return m.inner.ContainsKey(key)
}

// Contains reports whether the (key, value) pair is present.
func (m *SetMultimap[K, V]) Contains(key K, value V) bool {
	group, ok := m.inner.Get(key)
	if !ok {
		return false
	}

	return group.ContainsKey(value)
}

// Get returns the values stored under key, in their insertion order.
func (m *SetMultimap[K, V]) Get(key K) ([]V, bool) {
	group, ok := m.inner.Get(key)
	if !ok {
		return nil, false
	}

	values := make([]V, 0, group.Len())
	for v := range group.Keys() {
		values = append(values, v)
	}

	return values, true
}

// All returns an iterator over every (key, value) pair, grouped by key in
// key insertion order.
func (m *SetMultimap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, group := range m.inner.All() {
			for v := range group.Keys() {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Equal reports whether both multimaps hold the same (key, value) pairs,
// ignoring value order within each key's group.
func (m *SetMultimap[K, V]) Equal(other *SetMultimap[K, V]) bool {
	if m.size != other.size {
		return false
	}

	for k, v := range m.All() {
		if !other.Contains(k, v) {
			return false
		}
	}

	return true
}
