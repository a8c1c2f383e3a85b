package smallmap

import (
	"fmt"
	"iter"
	"strings"
)

// SmallSet is a set-like container with the same hybrid inline/heap storage
// as SmallMap. It is a thin composition over a SmallMap with unit values:
// every element is a key, insertion order is preserved, and the inline/heap
// migration rules are inherited unchanged.
type SmallSet[T comparable] struct {
	m SmallMap[T, struct{}]
}

// NewSet returns an empty SmallSet that stores up to capacity elements
// inline. Panics if capacity is not positive.
func NewSet[T comparable](capacity int) *SmallSet[T] {
	return &SmallSet[T]{m: *New[T, struct{}](capacity)}
}

// Len returns the number of elements.
func (s *SmallSet[T]) Len() int {
	return s.m.Len()
}

// IsEmpty reports whether the set has no elements.
func (s *SmallSet[T]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// InlineCapacity returns the number of elements the set can hold without
// moving to the heap.
func (s *SmallSet[T]) InlineCapacity() int {
	return s.m.InlineCapacity()
}

// IsInline reports whether the elements are currently stored inline.
func (s *SmallSet[T]) IsInline() bool {
	return s.m.IsInline()
}

// Insert adds value to the set. Returns true when the value is newly added;
// an equivalent element already in the set keeps its position and false is
// returned.
func (s *SmallSet[T]) Insert(value T) bool {
	_, existed := s.m.Insert(value, struct{}{})
	return !existed
}

// InsertFull is Insert plus the position the value ended up at.
func (s *SmallSet[T]) InsertFull(value T) (int, bool) {
	i, _, existed := s.m.InsertFull(value, struct{}{})
	return i, !existed
}

// Remove removes value from the set. The last element is moved into the
// vacated position.
func (s *SmallSet[T]) Remove(value T) bool {
	_, ok := s.m.Remove(value)
	return ok
}

// Contains reports whether value is in the set.
func (s *SmallSet[T]) Contains(value T) bool {
	return s.m.ContainsKey(value)
}

// GetIndex returns the element at the given position in insertion order.
func (s *SmallSet[T]) GetIndex(i int) (T, bool) {
	k, _, ok := s.m.GetIndex(i)
	return k, ok
}

// GetIndexOf returns the position of value in insertion order.
func (s *SmallSet[T]) GetIndexOf(value T) (int, bool) {
	return s.m.GetIndexOf(value)
}

// Extend inserts every value produced by seq, in order.
func (s *SmallSet[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		s.Insert(v)
	}
}

// All returns an iterator over all elements in iteration order, for use with
// range.
func (s *SmallSet[T]) All() iter.Seq[T] {
	return s.m.Keys()
}

// Slice collects the set's elements into a slice in iteration order.
func (s *SmallSet[T]) Slice() []T {
	out := make([]T, 0, s.Len())
	for v := range s.All() {
		out = append(out, v)
	}

	return out
}

// String renders the set as "{a, b, c}" in iteration order.
func (s *SmallSet[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}

		v, _ := s.GetIndex(i)
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte('}')

	return sb.String()
}
