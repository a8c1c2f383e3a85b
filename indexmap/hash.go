package indexmap

import "hash/maphash"

type hashFunc[K comparable] func(K) uint64

func makeHashFunc[K comparable](seed maphash.Seed) hashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// hashSplit divides a 64-bit hash into the 57-bit probe position (h1) and the
// 7-bit control byte fingerprint (h2).
func hashSplit(hash uint64) (uintptr, uint8) {
	h1 := uintptr(hash >> 7)
	h2 := uint8(hash & 0x7F)

	return h1, h2
}
