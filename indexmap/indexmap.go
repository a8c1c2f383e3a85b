// Package indexmap provides an order-preserving hash map.
//
// Map stores its entries in a dense slice in insertion order and resolves
// keys through a swiss-table index from key to entry position. Lookups are
// O(1) average, positional access is O(1), and iteration follows insertion
// order. Removal uses swap semantics: the last entry moves into the vacated
// position, so removal is O(1) but breaks strict order for that one entry.
package indexmap

import (
	"hash/maphash"
	"iter"
)

// Entry is a single key-value pair stored by a Map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an insertion-ordered hash map. The zero value is not usable; create
// instances with New or WithCapacity.
type Map[K comparable, V any] struct {
	entries []Entry[K, V]
	index   table[K]
}

// New returns an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return WithCapacity[K, V](0)
}

// WithCapacity returns an empty Map with room for the given number of entries
// before the index has to grow.
func WithCapacity[K comparable, V any](capacity int) *Map[K, V] {
	m := &Map[K, V]{}
	if capacity > 0 {
		m.entries = make([]Entry[K, V], 0, capacity)
	}

	// The index holds one slot per entry and rebuilds at 7/8 load, so size it
	// with headroom over the requested entry capacity.
	m.index.init(capacity+capacity/7+1, makeHashFunc[K](maphash.MakeSeed()))

	return m
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i, ok := m.index.lookup(key); ok {
		return m.entries[i].Value, true
	}

	var zero V
	return zero, false
}

// GetMut returns a pointer to the value stored for key, or nil if the key is
// absent. The pointer stays valid until the next insert or remove.
func (m *Map[K, V]) GetMut(key K) *V {
	if i, ok := m.index.lookup(key); ok {
		return &m.entries[i].Value
	}

	return nil
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.index.lookup(key)
	return ok
}

// IndexOf returns the position of key in insertion order.
func (m *Map[K, V]) IndexOf(key K) (int, bool) {
	return m.index.lookup(key)
}

// GetIndex returns the entry at the given position.
func (m *Map[K, V]) GetIndex(i int) (K, V, bool) {
	if i < 0 || i >= len(m.entries) {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}

	e := m.entries[i]
	return e.Key, e.Value, true
}

// GetIndexMut returns the key at the given position together with a pointer to
// its value. The pointer stays valid until the next insert or remove.
func (m *Map[K, V]) GetIndexMut(i int) (K, *V, bool) {
	if i < 0 || i >= len(m.entries) {
		var zeroK K
		return zeroK, nil, false
	}

	return m.entries[i].Key, &m.entries[i].Value, true
}

// Insert stores value under key. If the key already exists its value is
// replaced in place, keeping the original position, and the previous value is
// returned.
func (m *Map[K, V]) Insert(key K, value V) (V, bool) {
	_, prev, existed := m.InsertFull(key, value)
	return prev, existed
}

// InsertFull is Insert plus the position the pair ended up at.
func (m *Map[K, V]) InsertFull(key K, value V) (int, V, bool) {
	if i, ok := m.index.lookup(key); ok {
		prev := m.entries[i].Value
		m.entries[i].Value = value

		return i, prev, true
	}

	i := len(m.entries)
	m.entries = append(m.entries, Entry[K, V]{Key: key, Value: value})

	if m.index.insert(key, i) {
		m.rebuildIndex(int(m.index.capacity) * 2)
	}

	var zero V
	return i, zero, false
}

// rebuildIndex re-creates the index at the given capacity and reinserts every
// entry, dropping all tombstones along the way.
func (m *Map[K, V]) rebuildIndex(capacity int) {
	for {
		m.index.init(capacity, m.index.hashFunc)

		ok := true
		for i := range m.entries {
			if m.index.insert(m.entries[i].Key, i) {
				ok = false
				break
			}
		}

		if ok {
			return
		}

		capacity *= 2
	}
}

// SwapRemove removes key and returns its value. The last entry is moved into
// the vacated position.
func (m *Map[K, V]) SwapRemove(key K) (V, bool) {
	_, _, v, ok := m.SwapRemoveFull(key)
	return v, ok
}

// SwapRemoveFull removes key and returns the position it occupied together
// with the removed pair. The last entry is moved into the vacated position,
// so every other entry keeps its index.
func (m *Map[K, V]) SwapRemoveFull(key K) (int, K, V, bool) {
	i, ok := m.index.delete(key)
	if !ok {
		var zeroK K
		var zeroV V
		return 0, zeroK, zeroV, false
	}

	removed := m.entries[i]
	last := len(m.entries) - 1
	if i != last {
		m.entries[i] = m.entries[last]
		m.index.update(m.entries[i].Key, i)
	}

	var zero Entry[K, V]
	m.entries[last] = zero
	m.entries = m.entries[:last]

	return i, removed.Key, removed.Value, true
}

// Clear removes all entries but keeps the allocated capacity.
func (m *Map[K, V]) Clear() {
	clear(m.entries)
	m.entries = m.entries[:0]
	m.index.init(int(m.index.capacity), m.index.hashFunc)
}

// All returns an iterator over all entries in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Key, m.entries[i].Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over all keys in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Key) {
				return
			}
		}
	}
}

// Values returns an iterator over all values in insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Value) {
				return
			}
		}
	}
}
