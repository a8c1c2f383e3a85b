// Package vecmap provides a dense map keyed by small non-negative integers.
//
// Values live in a plain slice indexed by key; presence is tracked in a
// bitset so that absent slots cost one bit each. Iteration follows ascending
// key order, not insertion order. The map grows automatically to fit the
// largest key ever inserted, so it is best suited for compact key spaces
// such as enums and dense identifiers.
package vecmap

import (
	"fmt"
	"iter"
	"math/bits"

	"golang.org/x/exp/constraints"
)

const wordBits = 64

// Map is a vector-backed map. The zero value is ready to use.
type Map[K constraints.Integer, V any] struct {
	data    []V
	present []uint64
	size    int
}

// New returns an empty Map.
func New[K constraints.Integer, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// WithCapacity returns an empty Map with slots preallocated for keys 0..n-1.
func WithCapacity[K constraints.Integer, V any](n int) *Map[K, V] {
	return &Map[K, V]{
		data:    make([]V, n),
		present: make([]uint64, (n+wordBits-1)/wordBits),
	}
}

// Len returns the number of stored pairs.
func (m *Map[K, V]) Len() int {
	return m.size
}

// IsEmpty reports whether the map has no pairs.
func (m *Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

// index validates a key for the mutating operations, which cannot represent
// a negative slot. The read-only accessors treat negative keys as plain
// misses instead.
func index[K constraints.Integer](key K) int {
	if key < 0 {
		panic(fmt.Sprintf("vecmap: negative key %d", int64(key)))
	}

	return int(key)
}

func (m *Map[K, V]) has(i int) bool {
	return i >= 0 && i < len(m.data) && m.present[i/wordBits]&(1<<(i%wordBits)) != 0
}

// ContainsKey reports whether key is present. Negative keys are never
// present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.has(int(key))
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	i := int(key)
	if !m.has(i) {
		var zero V
		return zero, false
	}

	return m.data[i], true
}

// GetMut returns a pointer to the value stored for key, or nil if the key is
// absent. The pointer stays valid until the map next grows.
func (m *Map[K, V]) GetMut(key K) *V {
	i := int(key)
	if !m.has(i) {
		return nil
	}

	return &m.data[i]
}

// grow extends the slots so that index i is addressable.
func (m *Map[K, V]) grow(i int) {
	if i < len(m.data) {
		return
	}

	data := make([]V, i+1)
	copy(data, m.data)
	m.data = data

	words := (i + wordBits) / wordBits
	if words > len(m.present) {
		present := make([]uint64, words)
		copy(present, m.present)
		m.present = present
	}
}

// Insert stores value under key, growing the map when the key lies past the
// current slots. Returns the previous value, if any.
func (m *Map[K, V]) Insert(key K, value V) (V, bool) {
	i := index(key)
	m.grow(i)

	var prev V
	existed := m.has(i)
	if existed {
		prev = m.data[i]
	} else {
		m.present[i/wordBits] |= 1 << (i % wordBits)
		m.size++
	}

	m.data[i] = value
	return prev, existed
}

// Remove removes key and returns its value, if any. The slot is zeroed so the
// map does not pin the removed value.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	i := index(key)
	if !m.has(i) {
		var zero V
		return zero, false
	}

	prev := m.data[i]

	var zero V
	m.data[i] = zero
	m.present[i/wordBits] &^= 1 << (i % wordBits)
	m.size--

	return prev, true
}

// GetOrInsertWith returns a pointer to the value stored for key, inserting
// the result of f first when the key is absent.
func (m *Map[K, V]) GetOrInsertWith(key K, f func() V) *V {
	i := index(key)
	if !m.has(i) {
		m.Insert(key, f())
	}

	return &m.data[i]
}

// Clear removes all pairs but keeps the allocated slots.
func (m *Map[K, V]) Clear() {
	clear(m.data)
	clear(m.present)
	m.size = 0
}

// All returns an iterator over all pairs in ascending key order. The bitset
// is walked word by word, visiting only occupied slots.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for w, word := range m.present {
			for word != 0 {
				i := w*wordBits + bits.TrailingZeros64(word)
				if !yield(K(i), m.data[i]) {
					return
				}

				word &= word - 1
			}
		}
	}
}

// Keys returns an iterator over all keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over all values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
