package dynarr

import (
	"reflect"
	"unsafe"
)

// Raw storage primitives. These are the only functions that construct or
// destruct element slots; everything above them works in terms of these and
// never touches slot contents directly. None of them read or write the
// container's counters.
//
// Storage is a single contiguous block obtained from make([]T, n) and
// retained through its base pointer, so the garbage collector scans every
// slot with T's type information. A slot is "live" only by the bookkeeping
// of the container that owns it; slots outside the live range are raw and
// must be constructed before use.

// poisonByte fills raw slots in debug builds. Reads of unconstructed memory
// then produce recognizable garbage instead of plausible zeroes.
const poisonByte = 0xFF

// allocSlots allocates n raw slots and returns the base pointer, or nil when
// n == 0. No construction happens here beyond the zeroing make performs.
func allocSlots[T any](n uint64) *T {
	if n == 0 {
		return nil
	}
	s := make([]T, n)
	if debugChecks {
		poisonSlots(s)
	}
	return &s[0]
}

// slotsOf returns a typed view of n slots starting at base. A nil base with
// n == 0 yields a nil view. Views are transient; any reallocation invalidates
// them.
func slotsOf[T any](base *T, n uint64) []T {
	if base == nil {
		return nil
	}
	return unsafe.Slice(base, n)
}

// defaultConstruct constructs the zero value into every slot of a raw range.
func defaultConstruct[T any](dst []T) {
	var zero T
	for i := range dst {
		dst[i] = zero
	}
}

// fillConstruct constructs a copy of v into every slot of a raw range.
func fillConstruct[T any](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// copyConstruct constructs dst[i] from src[i]. The ranges must not overlap;
// len(src) slots are written.
func copyConstruct[T any](dst, src []T) {
	for i := range src {
		dst[i] = src[i]
	}
}

// destruct retires one live slot, resetting it to the zero value so the
// collector can reclaim anything it referenced. In debug builds the slot is
// additionally poisoned when the element type holds no pointers.
func destruct[T any](p *T) {
	var zero T
	*p = zero
	if debugChecks {
		poisonSlots(unsafe.Slice(p, 1))
	}
}

// destructRange retires every live slot in s.
func destructRange[T any](s []T) {
	var zero T
	for i := range s {
		s[i] = zero
	}
	if debugChecks {
		poisonSlots(s)
	}
}

// relocate moves each element of src into the corresponding raw slot of dst,
// destructing the source as it goes. Copy and destruct are interleaved per
// element rather than run as two passes; the memory is already warm on the
// first touch. The ranges must not overlap.
func relocate[T any](dst, src []T) {
	for i := range src {
		dst[i] = src[i]
		destruct(&src[i])
	}
}

// moveDown shifts the live slots s[first:end] down by n positions within the
// same storage, filling a raw gap that starts at first-n. Processed
// front-to-back; the vacated tail slots are left raw.
func moveDown[T any](s []T, first, end, n uint64) {
	for i := first; i < end; i++ {
		s[i-n] = s[i]
		destruct(&s[i])
	}
}

// moveUp shifts the live slots s[first:end] up by n positions within the
// same storage, opening a raw gap at [first, first+n). Processed
// back-to-front so no live slot is overwritten before it has been moved.
func moveUp[T any](s []T, first, end, n uint64) {
	for i := end; i > first; i-- {
		s[i-1+n] = s[i-1]
		destruct(&s[i-1])
	}
}

// poisonSlots overwrites the memory of s with the poison pattern. Element
// types the collector scans are skipped; garbage must never be written where
// the GC expects a pointer. Debug builds only.
//
// The element type is resolved with reflect.TypeFor, not reflect.TypeOf of a
// zero value: TypeOf(nil interface) returns nil, while TypeFor yields the
// interface type itself, which is correctly reported as GC-scanned.
func poisonSlots[T any](s []T) {
	if len(s) == 0 {
		return
	}
	if typeHasPointers(reflect.TypeFor[T]()) {
		return
	}
	var zero T
	size := uintptr(len(s)) * unsafe.Sizeof(zero)
	b := unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), size)
	for i := range b {
		b[i] = poisonByte
	}
}

func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
