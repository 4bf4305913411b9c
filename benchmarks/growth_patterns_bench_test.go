package dynarr_test

import (
	"fmt"
	"testing"

	"github.com/mechsim/dynarr"
)

// BenchmarkAppendGrowth tests append-driven growth from an empty container
// This is the most common usage pattern: build a sequence element by element
func BenchmarkAppendGrowth(b *testing.B) {
	sizes := []int{16, 256, 4096, 65536}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Array_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				var a dynarr.Array[int64, int]
				for j := 0; j < size; j++ {
					a.Push(int64(j))
				}
			}
		})

		b.Run(fmt.Sprintf("Builtin_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				var s []int64
				for j := 0; j < size; j++ {
					s = append(s, int64(j))
				}
			}
		})
	}
}

// BenchmarkAppendReserved tests appending into preallocated capacity
// With the reallocation cost removed this isolates the per-element push cost
func BenchmarkAppendReserved(b *testing.B) {
	const size = 4096

	b.Run("Array", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			a := dynarr.New[int64, int]()
			a.Reserve(size)
			for j := 0; j < size; j++ {
				a.Push(int64(j))
			}
		}
	})

	b.Run("Array_RawPush", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			a := dynarr.New[int64, int]()
			a.Reserve(size)
			for j := 0; j < size; j++ {
				*a.RawPush() = int64(j)
			}
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			s := make([]int64, 0, size)
			for j := 0; j < size; j++ {
				s = append(s, int64(j))
			}
		}
	})
}

// BenchmarkNarrowIndexOverhead compares the compact index types against int
// The counters are narrower but every bound check converts through uint64
func BenchmarkNarrowIndexOverhead(b *testing.B) {
	const size = 200

	b.Run("Index_int", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			var a dynarr.Array[float64, int]
			for j := 0; j < size; j++ {
				a.Push(float64(j))
			}
		}
	})

	b.Run("Index_uint8", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			var a dynarr.Array[float64, uint8]
			for j := 0; j < size; j++ {
				a.Push(float64(j))
			}
		}
	})

	b.Run("Index_int16", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			var a dynarr.Array[float64, int16]
			for j := 0; j < size; j++ {
				a.Push(float64(j))
			}
		}
	})
}

// BenchmarkAssignPatterns tests whole-container assignment strategies
// Bulk assignment reuses or right-sizes the allocation in a single step
func BenchmarkAssignPatterns(b *testing.B) {
	src := make([]int64, 1024)
	for i := range src {
		src[i] = int64(i)
	}

	b.Run("Array_AssignSlice", func(b *testing.B) {
		var a dynarr.Array[int64, int]
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			a.AssignSlice(src)
		}
	})

	b.Run("Array_Fill", func(b *testing.B) {
		var a dynarr.Array[int64, int]
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			a.Assign(1024, 7)
		}
	})

	b.Run("Builtin_CopyFresh", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			s := make([]int64, len(src))
			copy(s, src)
			_ = s
		}
	})
}
