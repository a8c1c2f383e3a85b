package smallmap

import "hash/maphash"

// Equal reports whether both maps hold the same pair sequence. Like
// EqualFunc, the comparison is order-dependent and therefore sensitive to
// swap-removal history. Free function rather than a method so that V can be
// constrained to comparable.
func Equal[K, V comparable](a, b *SmallMap[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

// Hash folds the map's pair sequence into a single hash under the given
// seed. The hash is order-dependent: maps with identical content but
// different iteration order hash differently, consistent with Equal.
func Hash[K, V comparable](seed maphash.Seed, m *SmallMap[K, V]) uint64 {
	var h uint64
	for k, v := range m.All() {
		h = h*0x9E3779B97F4A7C15 + maphash.Comparable(seed, Pair[K, V]{Key: k, Value: v})
	}

	return h
}

// EqualSets reports whether both sets hold the same element sequence,
// order-dependently.
func EqualSets[T comparable](a, b *SmallSet[T]) bool {
	return Equal(&a.m, &b.m)
}

// HashSet folds the set's element sequence into a single hash under the
// given seed, order-dependently.
func HashSet[T comparable](seed maphash.Seed, s *SmallSet[T]) uint64 {
	return Hash(seed, &s.m)
}
