package smallmap

// Entry is a short-lived handle to an occupied or vacant slot, obtained from
// SmallMap.Entry. Constructing it never mutates the map; only the OrInsert
// family does.
//
// An Entry caches the position it resolved at creation time, so it must not
// be used across any other mutation of the same map.
type Entry[K comparable, V any] struct {
	m     *SmallMap[K, V]
	key   K
	index int // -1 when vacant
}

// Entry resolves key to a handle that is either occupied or vacant.
func (m *SmallMap[K, V]) Entry(key K) Entry[K, V] {
	index := -1
	if i, ok := m.GetIndexOf(key); ok {
		index = i
	}

	return Entry[K, V]{m: m, key: key, index: index}
}

// Key returns the key this entry was resolved for.
func (e Entry[K, V]) Key() K {
	return e.key
}

// IsOccupied reports whether the key was present when the entry was created.
func (e Entry[K, V]) IsOccupied() bool {
	return e.index >= 0
}

// AndModify applies f to the value in place when the entry is occupied and is
// a no-op otherwise. Returns the entry for chaining.
func (e Entry[K, V]) AndModify(f func(*V)) Entry[K, V] {
	if e.index >= 0 {
		_, v, _ := e.m.GetIndexMut(e.index)
		f(v)
	}

	return e
}

// OrInsert stores value when the entry is vacant. Returns a pointer to the
// value now held under the key, which stays valid until the next mutation of
// the map.
func (e Entry[K, V]) OrInsert(value V) *V {
	if e.index >= 0 {
		_, v, _ := e.m.GetIndexMut(e.index)
		return v
	}

	i, _, _ := e.m.InsertFull(e.key, value)

	// The insert may have promoted the map, moving the pair's physical
	// location; resolve the pointer through the new representation.
	_, v, _ := e.m.GetIndexMut(i)
	return v
}

// OrInsertWith is OrInsert with a lazily computed value; f runs only when the
// entry is vacant.
func (e Entry[K, V]) OrInsertWith(f func() V) *V {
	if e.index >= 0 {
		_, v, _ := e.m.GetIndexMut(e.index)
		return v
	}

	return e.OrInsert(f())
}

// OrDefault stores the zero value when the entry is vacant.
func (e Entry[K, V]) OrDefault() *V {
	var zero V
	return e.OrInsert(zero)
}
