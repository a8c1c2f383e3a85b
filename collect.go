package smallmap

import (
	"fmt"
	"iter"

	"github.com/homier/smallmap/indexmap"
)

// P is shorthand for constructing a Pair literal, for use with Of and
// OfInline.
func P[K comparable, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Of builds a SmallMap with the given inline capacity from a pair list.
// Pairs are inserted in written order and later duplicate keys overwrite
// earlier ones without inflating the length. When the pair count exceeds the
// capacity the heap map is built directly and classified through FromMap, so
// a list that deduplicates down to the capacity still ends up inline.
func Of[K comparable, V any](capacity int, pairs ...Pair[K, V]) *SmallMap[K, V] {
	if len(pairs) <= capacity {
		m := New[K, V](capacity)
		for _, p := range pairs {
			m.Insert(p.Key, p.Value)
		}

		return m
	}

	heap := indexmap.WithCapacity[K, V](len(pairs))
	for _, p := range pairs {
		heap.Insert(p.Key, p.Value)
	}

	return FromMap(capacity, heap)
}

// OfInline builds a SmallMap whose inline capacity equals the pair count.
// Unlike Of it rejects duplicate keys with a panic: a duplicate would silently
// break the one-to-one key/index correspondence the caller asked for.
func OfInline[K comparable, V any](pairs ...Pair[K, V]) *SmallMap[K, V] {
	m := New[K, V](len(pairs))
	for _, p := range pairs {
		if _, existed := m.Insert(p.Key, p.Value); existed {
			panic(fmt.Sprintf("smallmap: OfInline called with duplicate key %v", p.Key))
		}
	}

	return m
}

// SetOf builds a SmallSet with the given inline capacity from a value list,
// with the same duplicate and capacity handling as Of.
func SetOf[T comparable](capacity int, values ...T) *SmallSet[T] {
	pairs := make([]Pair[T, struct{}], 0, len(values))
	for _, v := range values {
		pairs = append(pairs, Pair[T, struct{}]{Key: v})
	}

	return &SmallSet[T]{m: *Of(capacity, pairs...)}
}

// SetOfInline builds a SmallSet whose inline capacity equals the value
// count, panicking on duplicates like OfInline.
func SetOfInline[T comparable](values ...T) *SmallSet[T] {
	pairs := make([]Pair[T, struct{}], 0, len(values))
	for _, v := range values {
		pairs = append(pairs, Pair[T, struct{}]{Key: v})
	}

	return &SmallSet[T]{m: *OfInline(pairs...)}
}

// FromMap wraps an existing indexmap.Map into a SmallMap with the given
// inline capacity. When the map holds at most capacity pairs they are drained
// inline in iteration order; otherwise the map is adopted as the heap
// representation. Either way FromMap takes ownership of heap, which must not
// be used directly afterwards.
func FromMap[K comparable, V any](capacity int, heap *indexmap.Map[K, V]) *SmallMap[K, V] {
	m := New[K, V](capacity)
	if heap.Len() <= capacity {
		for k, v := range heap.All() {
			m.inline = append(m.inline, Pair[K, V]{Key: k, Value: v})
		}

		return m
	}

	m.inline = nil
	m.heap = heap

	return m
}

// Collect builds a SmallMap with the given inline capacity from a pair
// sequence, with Of's duplicate-overwrite semantics.
func Collect[K comparable, V any](capacity int, seq iter.Seq2[K, V]) *SmallMap[K, V] {
	m := New[K, V](capacity)
	for k, v := range seq {
		m.Insert(k, v)
	}

	return m
}
