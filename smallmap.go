// Package smallmap provides map and set containers that store a small number
// of entries inline and transparently move to the heap when they outgrow the
// inline capacity.
//
// A SmallMap created with inline capacity C keeps its pairs in a fixed-size
// slice for as long as it holds at most C of them. Lookups in that state are
// linear scans, which for small C beats hashing. The first insert that would
// push the length past C moves every pair, in order, into an
// order-preserving hash map (indexmap.Map); a removal that brings the length
// back to C or below moves them back inline. Both migrations are O(n) and
// happen synchronously inside the triggering call, so a map whose size
// oscillates around C pays that cost on every crossing.
//
// Insertion order is preserved in both representations. Removal uses swap
// semantics (the last pair moves into the vacated position), which is the
// only operation that disturbs order.
package smallmap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/homier/smallmap/indexmap"
)

// Pair is a single key-value pair.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// SmallMap is a hybrid inline/heap map. The zero value is not usable; create
// instances with New, Of, OfInline or FromMap.
type SmallMap[K comparable, V any] struct {
	capacity int

	// Exactly one of inline and heap is active: heap == nil means the pairs
	// live in the inline slice.
	inline []Pair[K, V]
	heap   *indexmap.Map[K, V]
}

// New returns an empty SmallMap that stores up to capacity pairs inline.
// Panics if capacity is not positive; a zero inline capacity defeats the
// point of the hybrid, use indexmap.Map directly instead.
func New[K comparable, V any](capacity int) *SmallMap[K, V] {
	if capacity <= 0 {
		panic("smallmap: inline capacity must be positive, use indexmap.Map instead")
	}

	return &SmallMap[K, V]{
		capacity: capacity,
		inline:   make([]Pair[K, V], 0, capacity),
	}
}

// Len returns the number of pairs.
func (m *SmallMap[K, V]) Len() int {
	if m.heap != nil {
		return m.heap.Len()
	}

	return len(m.inline)
}

// IsEmpty reports whether the map has no pairs.
func (m *SmallMap[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// InlineCapacity returns the number of pairs the map can hold without moving
// to the heap.
func (m *SmallMap[K, V]) InlineCapacity() int {
	return m.capacity
}

// IsInline reports whether the pairs are currently stored inline.
func (m *SmallMap[K, V]) IsInline() bool {
	return m.heap == nil
}

// Get returns the value stored for key.
//
// Computational complexity: O(n) inline, O(1) average on the heap.
func (m *SmallMap[K, V]) Get(key K) (V, bool) {
	if m.heap != nil {
		return m.heap.Get(key)
	}

	for i := range m.inline {
		if m.inline[i].Key == key {
			return m.inline[i].Value, true
		}
	}

	var zero V
	return zero, false
}

// GetMut returns a pointer to the value stored for key, or nil if the key is
// absent. The pointer stays valid until the next mutation of the map.
func (m *SmallMap[K, V]) GetMut(key K) *V {
	if m.heap != nil {
		return m.heap.GetMut(key)
	}

	for i := range m.inline {
		if m.inline[i].Key == key {
			return &m.inline[i].Value
		}
	}

	return nil
}

// MustGet is Get for keys that are known to be present. Panics on a miss.
func (m *SmallMap[K, V]) MustGet(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic(fmt.Sprintf("smallmap: missing key %v", key))
	}

	return v
}

// GetIndex returns the pair at the given position in insertion order.
//
// Computational complexity: O(1) in both representations.
func (m *SmallMap[K, V]) GetIndex(i int) (K, V, bool) {
	if m.heap != nil {
		return m.heap.GetIndex(i)
	}

	if i < 0 || i >= len(m.inline) {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}

	p := m.inline[i]
	return p.Key, p.Value, true
}

// GetIndexMut returns the key at the given position together with a pointer
// to its value. The pointer stays valid until the next mutation of the map.
func (m *SmallMap[K, V]) GetIndexMut(i int) (K, *V, bool) {
	if m.heap != nil {
		return m.heap.GetIndexMut(i)
	}

	if i < 0 || i >= len(m.inline) {
		var zeroK K
		return zeroK, nil, false
	}

	return m.inline[i].Key, &m.inline[i].Value, true
}

// At is GetIndex for positions that are known to be valid. Panics when the
// position is out of range, mirroring slice indexing.
func (m *SmallMap[K, V]) At(i int) (K, V) {
	k, v, ok := m.GetIndex(i)
	if !ok {
		panic(fmt.Sprintf("smallmap: index %d out of range [0:%d]", i, m.Len()))
	}

	return k, v
}

// GetIndexOf returns the position of key in insertion order.
//
// Computational complexity: O(n) inline, O(1) average on the heap.
func (m *SmallMap[K, V]) GetIndexOf(key K) (int, bool) {
	if m.heap != nil {
		return m.heap.IndexOf(key)
	}

	for i := range m.inline {
		if m.inline[i].Key == key {
			return i, true
		}
	}

	return 0, false
}

// ContainsKey reports whether key is present.
func (m *SmallMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.GetIndexOf(key)
	return ok
}

// Insert stores value under key and returns the previous value, if any.
//
// If the key already exists its value is replaced in place, keeping the
// original position. Otherwise the pair is appended; if that would push the
// length past the inline capacity, all pairs move to the heap first.
func (m *SmallMap[K, V]) Insert(key K, value V) (V, bool) {
	_, prev, existed := m.InsertFull(key, value)
	return prev, existed
}

// InsertFull is Insert plus the position the pair ended up at.
func (m *SmallMap[K, V]) InsertFull(key K, value V) (int, V, bool) {
	if m.heap != nil {
		return m.heap.InsertFull(key, value)
	}

	for i := range m.inline {
		if m.inline[i].Key == key {
			prev := m.inline[i].Value
			m.inline[i].Value = value

			return i, prev, true
		}
	}

	if len(m.inline)+1 > m.capacity {
		m.promote()
		return m.heap.InsertFull(key, value)
	}

	m.inline = append(m.inline, Pair[K, V]{Key: key, Value: value})

	var zero V
	return len(m.inline) - 1, zero, false
}

// Remove removes key and returns its value. The last pair is moved into the
// vacated position; if the removal brings the length back to the inline
// capacity, all pairs move back inline.
func (m *SmallMap[K, V]) Remove(key K) (V, bool) {
	_, _, v, ok := m.SwapRemoveFull(key)
	return v, ok
}

// SwapRemoveFull removes key and returns the position it occupied together
// with the removed pair. Swap semantics, see Remove.
func (m *SmallMap[K, V]) SwapRemoveFull(key K) (int, K, V, bool) {
	if m.heap != nil {
		i, k, v, ok := m.heap.SwapRemoveFull(key)
		if ok && m.heap.Len() <= m.capacity {
			m.demote()
		}

		return i, k, v, ok
	}

	for i := range m.inline {
		if m.inline[i].Key == key {
			removed := m.inline[i]
			last := len(m.inline) - 1
			m.inline[i] = m.inline[last]

			var zero Pair[K, V]
			m.inline[last] = zero
			m.inline = m.inline[:last]

			return i, removed.Key, removed.Value, true
		}
	}

	var zeroK K
	var zeroV V
	return 0, zeroK, zeroV, false
}

// promote drains the inline slice, in order, into a fresh heap map.
func (m *SmallMap[K, V]) promote() {
	heap := indexmap.WithCapacity[K, V](m.capacity + 1)
	for _, p := range m.inline {
		heap.Insert(p.Key, p.Value)
	}

	m.inline = nil
	m.heap = heap
}

// demote drains the heap map, in iteration order, into a fresh inline slice.
func (m *SmallMap[K, V]) demote() {
	inline := make([]Pair[K, V], 0, m.capacity)
	for k, v := range m.heap.All() {
		inline = append(inline, Pair[K, V]{Key: k, Value: v})
	}

	m.heap = nil
	m.inline = inline
}

// Extend inserts every pair produced by seq, in order. Later duplicate keys
// overwrite earlier values.
func (m *SmallMap[K, V]) Extend(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Insert(k, v)
	}
}

// BinarySearchFunc searches a map whose pairs the caller keeps sorted with
// respect to cmp. cmp must return a negative number when the pair sorts
// before the target, zero when it matches and a positive number otherwise.
// Returns the position of a matching pair and true, or the position where the
// target would be inserted and false.
func (m *SmallMap[K, V]) BinarySearchFunc(cmp func(K, V) int) (int, bool) {
	lo, hi := 0, m.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		k, v, _ := m.GetIndex(mid)
		if cmp(k, v) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	if lo < m.Len() {
		if k, v, _ := m.GetIndex(lo); cmp(k, v) == 0 {
			return lo, true
		}
	}

	return lo, false
}

// EqualFunc reports whether both maps hold the same pair sequence, comparing
// values with eq. The comparison is order-dependent: two maps with identical
// content but different insertion (or swap-removal) history compare unequal.
func (m *SmallMap[K, V]) EqualFunc(other *SmallMap[K, V], eq func(V, V) bool) bool {
	if m.Len() != other.Len() {
		return false
	}

	for i := 0; i < m.Len(); i++ {
		k1, v1, _ := m.GetIndex(i)
		k2, v2, _ := other.GetIndex(i)
		if k1 != k2 || !eq(v1, v2) {
			return false
		}
	}

	return true
}

// String renders the map as "{k1: v1, k2: v2}" in iteration order.
func (m *SmallMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := 0; i < m.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}

		k, v, _ := m.GetIndex(i)
		fmt.Fprintf(&sb, "%v: %v", k, v)
	}
	sb.WriteByte('}')

	return sb.String()
}
