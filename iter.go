package smallmap

import "iter"

// Iter is a double-ended cursor over the pairs of a SmallMap in iteration
// order. It resolves positions through the map on every step, so it works
// identically over both representations and never migrates storage.
//
// The cursor reads live data: mutating the map while iterating gives
// unspecified results, exactly as for ranging over a plain Go map.
type Iter[K comparable, V any] struct {
	m           *SmallMap[K, V]
	front, back int
}

// Iter returns a cursor positioned before the first pair.
func (m *SmallMap[K, V]) Iter() *Iter[K, V] {
	return &Iter[K, V]{m: m, back: m.Len()}
}

// Len returns the number of pairs the cursor has not yet produced.
func (it *Iter[K, V]) Len() int {
	return it.back - it.front
}

// Next produces the next pair from the front.
func (it *Iter[K, V]) Next() (K, V, bool) {
	if it.front >= it.back {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}

	k, v, _ := it.m.GetIndex(it.front)
	it.front++

	return k, v, true
}

// NextBack produces the next pair from the back.
func (it *Iter[K, V]) NextBack() (K, V, bool) {
	if it.front >= it.back {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}

	it.back--
	k, v, _ := it.m.GetIndex(it.back)

	return k, v, true
}

// All returns an iterator over all pairs in iteration order, for use with
// range.
func (m *SmallMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < m.Len(); i++ {
			k, v, _ := m.GetIndex(i)
			if !yield(k, v) {
				return
			}
		}
	}
}

// AllMut returns an iterator over all keys paired with pointers to their
// values, allowing in-place updates. Inserting or removing during the
// iteration invalidates the pointers.
func (m *SmallMap[K, V]) AllMut() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for i := 0; i < m.Len(); i++ {
			k, v, _ := m.GetIndexMut(i)
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys returns an iterator over all keys in iteration order.
func (m *SmallMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := 0; i < m.Len(); i++ {
			k, _, _ := m.GetIndex(i)
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over all values in iteration order.
func (m *SmallMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < m.Len(); i++ {
			_, v, _ := m.GetIndex(i)
			if !yield(v) {
				return
			}
		}
	}
}

// Pairs collects the map's content into a slice in iteration order.
func (m *SmallMap[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, m.Len())
	for k, v := range m.All() {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}

	return pairs
}
