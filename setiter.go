package smallmap

import "iter"

// SetIter is a double-ended cursor over the elements of a SmallSet in
// iteration order.
type SetIter[T comparable] struct {
	s           *SmallSet[T]
	front, back int
}

// Iter returns a cursor positioned before the first element.
func (s *SmallSet[T]) Iter() *SetIter[T] {
	return &SetIter[T]{s: s, back: s.Len()}
}

// Len returns the number of elements the cursor has not yet produced.
func (it *SetIter[T]) Len() int {
	return it.back - it.front
}

// Next produces the next element from the front.
func (it *SetIter[T]) Next() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}

	v, _ := it.s.GetIndex(it.front)
	it.front++

	return v, true
}

// NextBack produces the next element from the back.
func (it *SetIter[T]) NextBack() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}

	it.back--
	v, _ := it.s.GetIndex(it.back)

	return v, true
}

// Difference iterates over the elements of one set that are absent from
// another, in the first set's order. It is a lazy filter: elements are tested
// against the other set as the cursor advances.
type Difference[T comparable] struct {
	iter  SetIter[T]
	other *SmallSet[T]
}

// Difference returns an iterator over the elements of s that are not in
// other, in s's order.
func (s *SmallSet[T]) Difference(other *SmallSet[T]) *Difference[T] {
	return &Difference[T]{iter: *s.Iter(), other: other}
}

// Next produces the next element from the front.
func (d *Difference[T]) Next() (T, bool) {
	for {
		v, ok := d.iter.Next()
		if !ok {
			var zero T
			return zero, false
		}

		if !d.other.Contains(v) {
			return v, true
		}
	}
}

// NextBack produces the next element from the back.
func (d *Difference[T]) NextBack() (T, bool) {
	for {
		v, ok := d.iter.NextBack()
		if !ok {
			var zero T
			return zero, false
		}

		if !d.other.Contains(v) {
			return v, true
		}
	}
}

// Seq returns a range-over-func view. Each call starts from the iterator's
// current position on a private cursor, so Seq does not consume the iterator.
func (d *Difference[T]) Seq() iter.Seq[T] {
	it := *d
	return func(yield func(T) bool) {
		cursor := it
		for {
			v, ok := cursor.Next()
			if !ok {
				return
			}

			if !yield(v) {
				return
			}
		}
	}
}

// Slice drains a copy of the iterator into a slice.
func (d *Difference[T]) Slice() []T {
	return collect[T](d.Seq())
}

// Intersection iterates over the elements of one set that are present in
// another, in the first set's order. Lazy, like Difference.
type Intersection[T comparable] struct {
	iter  SetIter[T]
	other *SmallSet[T]
}

// Intersection returns an iterator over the elements of s that are also in
// other, in s's order.
func (s *SmallSet[T]) Intersection(other *SmallSet[T]) *Intersection[T] {
	return &Intersection[T]{iter: *s.Iter(), other: other}
}

// Next produces the next element from the front.
func (i *Intersection[T]) Next() (T, bool) {
	for {
		v, ok := i.iter.Next()
		if !ok {
			var zero T
			return zero, false
		}

		if i.other.Contains(v) {
			return v, true
		}
	}
}

// NextBack produces the next element from the back.
func (i *Intersection[T]) NextBack() (T, bool) {
	for {
		v, ok := i.iter.NextBack()
		if !ok {
			var zero T
			return zero, false
		}

		if i.other.Contains(v) {
			return v, true
		}
	}
}

// Seq returns a non-consuming range-over-func view, see Difference.Seq.
func (i *Intersection[T]) Seq() iter.Seq[T] {
	it := *i
	return func(yield func(T) bool) {
		cursor := it
		for {
			v, ok := cursor.Next()
			if !ok {
				return
			}

			if !yield(v) {
				return
			}
		}
	}
}

// Slice drains a copy of the iterator into a slice.
func (i *Intersection[T]) Slice() []T {
	return collect[T](i.Seq())
}

// Union iterates over all elements of two sets: first the elements of the
// first set in its order, then the elements unique to the second set in its
// order.
type Union[T comparable] struct {
	first  SetIter[T]
	second Difference[T]
}

// Union returns an iterator over all elements of s and other, s's elements
// first.
func (s *SmallSet[T]) Union(other *SmallSet[T]) *Union[T] {
	return &Union[T]{first: *s.Iter(), second: *other.Difference(s)}
}

// Next produces the next element from the front.
func (u *Union[T]) Next() (T, bool) {
	if v, ok := u.first.Next(); ok {
		return v, true
	}

	return u.second.Next()
}

// NextBack produces the next element from the back.
func (u *Union[T]) NextBack() (T, bool) {
	if v, ok := u.second.NextBack(); ok {
		return v, true
	}

	return u.first.NextBack()
}

// Seq returns a non-consuming range-over-func view, see Difference.Seq.
func (u *Union[T]) Seq() iter.Seq[T] {
	it := *u
	return func(yield func(T) bool) {
		cursor := it
		for {
			v, ok := cursor.Next()
			if !ok {
				return
			}

			if !yield(v) {
				return
			}
		}
	}
}

// Slice drains a copy of the iterator into a slice.
func (u *Union[T]) Slice() []T {
	return collect[T](u.Seq())
}

// SymmetricDifference iterates over the elements that are in exactly one of
// two sets: first the elements unique to the first set, then the elements
// unique to the second, each in their own set's order.
type SymmetricDifference[T comparable] struct {
	first  Difference[T]
	second Difference[T]
}

// SymmetricDifference returns an iterator over the elements in s or other
// but not both.
func (s *SmallSet[T]) SymmetricDifference(other *SmallSet[T]) *SymmetricDifference[T] {
	return &SymmetricDifference[T]{
		first:  *s.Difference(other),
		second: *other.Difference(s),
	}
}

// Next produces the next element from the front.
func (sd *SymmetricDifference[T]) Next() (T, bool) {
	if v, ok := sd.first.Next(); ok {
		return v, true
	}

	return sd.second.Next()
}

// NextBack produces the next element from the back.
func (sd *SymmetricDifference[T]) NextBack() (T, bool) {
	if v, ok := sd.second.NextBack(); ok {
		return v, true
	}

	return sd.first.NextBack()
}

// Seq returns a non-consuming range-over-func view, see Difference.Seq.
func (sd *SymmetricDifference[T]) Seq() iter.Seq[T] {
	it := *sd
	return func(yield func(T) bool) {
		cursor := it
		for {
			v, ok := cursor.Next()
			if !ok {
				return
			}

			if !yield(v) {
				return
			}
		}
	}
}

// Slice drains a copy of the iterator into a slice.
func (sd *SymmetricDifference[T]) Slice() []T {
	return collect[T](sd.Seq())
}

func collect[T comparable](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}

	return out
}
