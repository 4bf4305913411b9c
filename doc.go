// Package dynarr implements a growable contiguous-sequence container with a
// guaranteed three-field memory layout, for code that passes containers
// across independently compiled module boundaries.
//
// # Overview
//
// Array[T, X] is a replacement for a plain Go slice in numerical and
// simulation code that needs:
//
//   - A stable binary representation: storage pointer, used count, allocated
//     count, in that order, with no hidden state
//   - Zero-allocation empty containers (the zero value is ready to use)
//   - A configurable index type X that bounds the container and shrinks the
//     counter footprint (an Array[T, uint8] spends one byte per counter)
//   - Unchecked element access in normal builds, with bounds checks and
//     memory poisoning available behind a build tag
//   - Raw extensions (RawPush) for constructing elements in place
//
// # Basic Usage
//
//	var a dynarr.Array[float64, int] // zero value, no allocation
//	a.Push(1.5)
//	a.Push(2.5)
//	fmt.Println(a.Len(), a.Get(0)) // 2 1.5
//
//	b := dynarr.Of(1, 2, 3) // int-indexed, from values
//	fmt.Println(b)          // {1 2 3}
//
// # Index types
//
// The second type parameter selects the index type and with it the maximum
// element count: 127 for int8, 255 for uint8, 32767 for int16 and uint16,
// and so on; see TraitsOf. Any operation that would grow the container past
// that bound panics with a *CapacityError carrying the requested count, the
// bound, and the index type's name. User-defined index types work too:
//
//	type BodyIndex int32
//	var bodies dynarr.Array[Body, BodyIndex]
//
// # Growth
//
// Capacity at least doubles whenever the container must grow (capped at the
// index type's bound, with a small minimum floor), so n sequential Push
// calls reallocate O(log n) times and each Push is amortized constant time.
// Erase preserves element order; EraseFast trades order for constant time.
//
// # Debug builds
//
// Build with -tags dynarrdebug to bounds-check Get and Set and to fill raw
// slots with a 0xFF poison pattern so reads of unconstructed memory surface
// quickly. Both are compiled out entirely in normal builds.
//
// # Thread Safety
//
// An Array is not safe for concurrent use. Callers that share one across
// goroutines must serialize access externally or keep one instance per
// goroutine.
package dynarr
