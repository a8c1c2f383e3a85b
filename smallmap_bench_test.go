package smallmap

import (
	"strconv"
	"testing"
)

var benchSizes = []int{4, 8, 64, 1024}

func BenchmarkMapGet_Hit(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		for _, size := range benchSizes {
			b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
				m := make(map[int]int, size)
				for i := range size {
					m[i] = i
				}

				b.ResetTimer()
				for i := 0; b.Loop(); i++ {
					_ = m[i%size]
				}
			})
		}
	})

	b.Run("variant=smallMap", func(b *testing.B) {
		for _, size := range benchSizes {
			b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
				m := New[int, int](8)
				for i := range size {
					m.Insert(i, i)
				}

				b.ResetTimer()
				for i := 0; b.Loop(); i++ {
					_, _ = m.Get(i % size)
				}
			})
		}
	})
}

func BenchmarkMapGet_Miss(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		for _, size := range benchSizes {
			b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
				m := make(map[int]int, size)
				for i := range size {
					m[i] = i
				}

				b.ResetTimer()
				for i := 0; b.Loop(); i++ {
					_ = m[size+i%size]
				}
			})
		}
	})

	b.Run("variant=smallMap", func(b *testing.B) {
		for _, size := range benchSizes {
			b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
				m := New[int, int](8)
				for i := range size {
					m.Insert(i, i)
				}

				b.ResetTimer()
				for i := 0; b.Loop(); i++ {
					_, _ = m.Get(size + i%size)
				}
			})
		}
	})
}

func BenchmarkMapInsert(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		for _, size := range benchSizes {
			b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
				for b.Loop() {
					m := make(map[int]int)
					for i := range size {
						m[i] = i
					}
				}
			})
		}
	})

	b.Run("variant=smallMap", func(b *testing.B) {
		for _, size := range benchSizes {
			b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
				for b.Loop() {
					m := New[int, int](8)
					for i := range size {
						m.Insert(i, i)
					}
				}
			})
		}
	})
}
