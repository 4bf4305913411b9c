package dynarr

import "unsafe"

// Spare returns the number of raw slots available before the next growth,
// i.e. Cap() - Len().
func (a *Array[T, X]) Spare() X {
	return a.alloc - a.used
}

// ElemSize returns the in-memory size of one element slot in bytes.
func (a *Array[T, X]) ElemSize() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// HeapBytes returns the total size of the storage block in bytes, raw slots
// included. Zero for an empty container that has never grown.
func (a *Array[T, X]) HeapBytes() uintptr {
	return uintptr(a.capU()) * a.ElemSize()
}

// Utilization returns the ratio of live slots to allocated slots (0.0 to
// 1.0). Returns 0.0 when nothing is allocated.
func (a *Array[T, X]) Utilization() float64 {
	if a.alloc == 0 {
		return 0
	}
	return float64(a.lenU()) / float64(a.capU())
}

// Metrics returns a snapshot of the container's storage statistics.
func (a *Array[T, X]) Metrics() ArrayMetrics {
	return ArrayMetrics{
		Len:         int(a.lenU()),
		Cap:         int(a.capU()),
		Spare:       int(a.capU() - a.lenU()),
		ElemSize:    a.ElemSize(),
		HeapBytes:   a.HeapBytes(),
		Utilization: a.Utilization(),
	}
}

// ArrayMetrics contains statistical information about an Array's storage.
type ArrayMetrics struct {
	Len         int     // live elements
	Cap         int     // allocated slots
	Spare       int     // raw slots remaining before the next growth
	ElemSize    uintptr // bytes per slot
	HeapBytes   uintptr // total bytes backing the container
	Utilization float64 // ratio of live to allocated slots (0.0-1.0)
}
