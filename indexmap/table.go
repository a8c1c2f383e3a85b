package indexmap

import (
	"math/bits"
	"unsafe"
)

const (
	groupSize = 8

	slotEmpty   = 0x80
	slotDeleted = 0xFE

	minCapacity = 2 * groupSize
)

type group[K comparable] struct {
	// 8 bytes of metadata (h2 or control states)
	// This fits perfectly in a single uint64 load
	ctrls [groupSize]uint8

	// 8 keys stored immediately after the metadata
	slots [groupSize]K

	// Entry positions, one per key. The table never stores values; it only
	// resolves a key to its position in the dense entry slice.
	positions [groupSize]int
}

var emptyCtrls = [groupSize]uint8{
	slotEmpty,
	slotEmpty,
	slotEmpty,
	slotEmpty,

	slotEmpty,
	slotEmpty,
	slotEmpty,
	slotEmpty,
}

// table is a swiss-table index from key to entry position. Unlike a full map
// it is rebuilt from the entry slice whenever the load factor trips, so a
// failed insert is reported as "needs grow" rather than as an error.
type table[K comparable] struct {
	groups []group[K]

	capacity          uintptr
	numGroupsMask     uintptr
	capacityEffective uintptr
	size              uintptr

	hashFunc hashFunc[K]
}

func (t *table[K]) init(capacity int, fn hashFunc[K]) {
	if capacity < minCapacity {
		capacity = minCapacity
	}

	normalizedCapacity := uintptr(nextPowerOf2(uint32(capacity)))
	// Number of groups required
	numGroups := normalizedCapacity / groupSize
	numGroupsMask := uintptr(numGroups - 1)

	t.groups = make([]group[K], numGroups)
	t.capacity = normalizedCapacity
	t.numGroupsMask = numGroupsMask
	t.capacityEffective = normalizedCapacity * 7 / 8
	t.size = 0
	t.hashFunc = fn

	// Initialize all control bytes to Empty
	for i := range t.groups {
		copy(t.groups[i].ctrls[:], emptyCtrls[:])
	}
}

// lookup resolves a key to its entry position.
func (t *table[K]) lookup(key K) (int, bool) {
	h1, h2 := hashSplit(t.hashFunc(key))
	mask := t.numGroupsMask
	start := (h1 / groupSize) & mask

	for p, offset := uintptr(0), start; p <= mask; p++ {
		g := &t.groups[offset]
		ctrl := *(*uint64)(unsafe.Pointer(&g.ctrls))

		// SIMD-like match
		matches := matchH2(ctrl, h2)
		for matches != 0 {
			idx := matches.first()
			if g.slots[idx] == key {
				return g.positions[idx], true
			}

			matches = matches.removeFirst()
		}

		// Termination
		if matchEmpty(ctrl) != 0 {
			return 0, false
		}

		// Quadratic probe math
		offset = (start + (p+1)*(p+2)/2) & mask
	}

	return 0, false
}

// insert records key -> pos. The key must not be present; callers look it up
// first. Returns true when the table needs to grow before the key can be
// placed.
func (t *table[K]) insert(key K, pos int) bool {
	// At 87.5% of the capacity the probe chains degrade; rebuild instead.
	if t.size >= t.capacityEffective {
		return true
	}

	var (
		h1, h2 = hashSplit(t.hashFunc(key))
		mask   = t.numGroupsMask
		start  = (h1 / groupSize) & mask

		targetGroup *group[K]
		targetSlot  uintptr
		foundSlot   bool
	)

	for p, offset := uintptr(0), start; p <= mask; p++ {
		g := &t.groups[offset]
		ctrl := *(*uint64)(unsafe.Pointer(&g.ctrls))

		// 1. Cache first available slot
		if !foundSlot {
			matchMask := matchEmptyOrDeleted(ctrl)
			if matchMask != 0 {
				targetGroup = g
				targetSlot = matchMask.first()
				foundSlot = true
			}
		}

		// 2. Termination condition
		if matchEmpty(ctrl) != 0 {
			if foundSlot {
				targetGroup.ctrls[targetSlot] = h2
				targetGroup.slots[targetSlot] = key
				targetGroup.positions[targetSlot] = pos
				t.size++

				return false
			}

			return true
		}

		offset = (start + (p+1)*(p+2)/2) & mask
	}

	return true
}

// update rewrites the stored position of an existing key. Used after a
// swap-remove moves the last entry into the vacated slot.
func (t *table[K]) update(key K, pos int) bool {
	h1, h2 := hashSplit(t.hashFunc(key))
	mask := t.numGroupsMask
	start := (h1 / groupSize) & mask

	for p, offset := uintptr(0), start; p <= mask; p++ {
		g := &t.groups[offset]
		ctrl := *(*uint64)(unsafe.Pointer(&g.ctrls))

		matches := matchH2(ctrl, h2)
		for matches != 0 {
			idx := matches.first()
			if g.slots[idx] == key {
				g.positions[idx] = pos
				return true
			}

			matches = matches.removeFirst()
		}

		if matchEmpty(ctrl) != 0 {
			return false
		}

		offset = (start + (p+1)*(p+2)/2) & mask
	}

	return false
}

// delete removes a key and returns the position it mapped to.
func (t *table[K]) delete(key K) (int, bool) {
	h1, h2 := hashSplit(t.hashFunc(key))
	mask := t.numGroupsMask
	start := (h1 / groupSize) & mask

	for p, offset := uintptr(0), start; p <= mask; p++ {
		g := &t.groups[offset]
		ctrl := *(*uint64)(unsafe.Pointer(&g.ctrls))

		matchMask := matchH2(ctrl, h2)
		for matchMask != 0 {
			idx := matchMask.first()
			if g.slots[idx] == key {
				// Mark as Deleted (0xFE) to preserve the probe chain
				g.ctrls[idx] = slotDeleted
				t.size--

				return g.positions[idx], true
			}

			matchMask = matchMask.removeFirst()
		}

		if matchEmpty(ctrl) != 0 {
			return 0, false
		}

		offset = (start + (p+1)*(p+2)/2) & mask
	}

	return 0, false
}

// Returns the next power of 2 for the given value `v`.
func nextPowerOf2(v uint32) uint32 {
	return uint32(1) << min(bits.Len32(v-1), 31)
}
