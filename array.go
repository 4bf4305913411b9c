package dynarr

import (
	"fmt"
	"iter"
	"strings"
	"unsafe"
)

// Array is a growable contiguous sequence of T indexed by X. It is a
// replacement for a plain slice in code where instances cross compiled
// module boundaries: the representation is exactly three fields in a fixed
// order (storage pointer, used count, allocated count) with no hidden state,
// so independently built binaries of the same architecture observe an
// identical layout.
//
// Both counts are stored in the index type itself. With X = uint8 the whole
// container is a pointer plus two bytes; with the default X = int it is a
// pointer plus two words.
//
// The zero value is an empty container and allocates nothing. Slots in
// [0, Len()) are live; slots in [Len(), Cap()) are raw and unconstructed.
// An Array is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves.
type Array[T any, X Index] struct {
	data  *T // base of the storage block, nil iff alloc == 0
	used  X  // number of live elements, 0 <= used <= alloc
	alloc X  // number of allocated slots, alloc <= MaxLen
}

// New returns an empty Array. No heap space is allocated; the zero value of
// the type is equivalent.
func New[T any, X Index]() *Array[T, X] {
	return &Array[T, X]{}
}

// NewLen returns an Array holding n zero-valued elements, allocating exactly
// n slots. n == 0 allocates nothing.
func NewLen[T any, X Index](n X) *Array[T, X] {
	const op = "NewLen"
	nn := checkCount[X](op, n)
	a := &Array[T, X]{}
	a.setStorage(allocSlots[T](nn), nn)
	defaultConstruct(a.slots())
	a.used = X(nn)
	return a
}

// NewFilled returns an Array holding n copies of v, allocating exactly n
// slots.
func NewFilled[T any, X Index](n X, v T) *Array[T, X] {
	const op = "NewFilled"
	nn := checkCount[X](op, n)
	a := &Array[T, X]{}
	a.setStorage(allocSlots[T](nn), nn)
	fillConstruct(a.slots(), v)
	a.used = X(nn)
	return a
}

// FromSlice returns an Array holding a copy of every element of s,
// allocating exactly len(s) slots. The slice is not retained.
func FromSlice[T any, X Index](s []T) *Array[T, X] {
	checkSize[X]("FromSlice", uint64(len(s)))
	a := &Array[T, X]{}
	a.setStorage(allocSlots[T](uint64(len(s))), uint64(len(s)))
	copyConstruct(a.slots(), s)
	a.used = X(len(s))
	return a
}

// Of returns an int-indexed Array holding the given values; the common case
// when no compact index type is needed.
func Of[T any](xs ...T) *Array[T, int] {
	return FromSlice[T, int](xs)
}

// ConvertArray copies src into a new Array with element type T and index
// type X, converting each element with conv. The target must be able to hold
// src's length.
func ConvertArray[T any, X Index, T2 any, X2 Index](src *Array[T2, X2], conv func(T2) T) *Array[T, X] {
	n := src.lenU()
	checkSize[X]("ConvertArray", n)
	a := &Array[T, X]{}
	a.setStorage(allocSlots[T](n), n)
	dst := a.slots()
	for i, v := range src.live() {
		dst[i] = conv(v)
	}
	a.used = X(n)
	return a
}

// Clone returns a deep copy of a. The copy's capacity is exactly a.Len();
// spare capacity is deliberately not preserved.
func (a *Array[T, X]) Clone() *Array[T, X] {
	c := &Array[T, X]{}
	n := a.lenU()
	c.setStorage(allocSlots[T](n), n)
	copyConstruct(c.slots(), a.live())
	c.used = X(n)
	return c
}

// Len returns the number of live elements.
func (a *Array[T, X]) Len() X { return a.used }

// Cap returns the number of allocated slots, live or raw. Always >= Len().
func (a *Array[T, X]) Cap() X { return a.alloc }

// Empty reports whether the Array holds no elements.
func (a *Array[T, X]) Empty() bool { return a.used == 0 }

// MaxLen returns the largest element count the index type permits.
func (a *Array[T, X]) MaxLen() X { return X(maxSize[X]()) }

// IndexName returns the diagnostic name of the index type.
func (a *Array[T, X]) IndexName() string { return indexName[X]() }

// Get returns the element at index i. The bounds check is present only in
// debug builds; in normal builds the access is unchecked.
func (a *Array[T, X]) Get(i X) T {
	if debugChecks {
		a.checkIndex("Get", i)
	}
	return *a.ptrAt(uint64(i))
}

// Set stores v at index i. Bounds-checked only in debug builds, like Get.
func (a *Array[T, X]) Set(i X, v T) {
	if debugChecks {
		a.checkIndex("Set", i)
	}
	*a.ptrAt(uint64(i)) = v
}

// At returns the element at index i, bounds-checked in every build mode.
func (a *Array[T, X]) At(i X) T {
	a.checkIndex("At", i)
	return *a.ptrAt(uint64(i))
}

// Ptr returns the address of the element at index i, bounds-checked in every
// build mode. The pointer is invalidated by any operation that reallocates.
func (a *Array[T, X]) Ptr(i X) *T {
	a.checkIndex("Ptr", i)
	return a.ptrAt(uint64(i))
}

// Front returns the address of the first element. The Array must not be
// empty.
func (a *Array[T, X]) Front() *T {
	if a.used == 0 {
		failPrecondition("Front", "container is empty")
	}
	return a.data
}

// Back returns the address of the last element. The Array must not be empty.
func (a *Array[T, X]) Back() *T {
	if a.used == 0 {
		failPrecondition("Back", "container is empty")
	}
	return a.ptrAt(a.lenU() - 1)
}

// Clear destructs every live element. The length becomes zero; the capacity
// is unchanged.
func (a *Array[T, X]) Clear() {
	destructRange(a.live())
	a.used = 0
}

// Release destructs every live element and frees the storage, returning the
// Array to its zero state.
func (a *Array[T, X]) Release() {
	destructRange(a.live())
	a.data = nil
	a.used = 0
	a.alloc = 0
}

// Swap exchanges the contents of a and other in constant time by swapping
// the three fields. No element is constructed, copied, or destructed.
func (a *Array[T, X]) Swap(other *Array[T, X]) {
	a.data, other.data = other.data, a.data
	a.used, other.used = other.used, a.used
	a.alloc, other.alloc = other.alloc, a.alloc
}

// Reserve ensures capacity for at least n elements. If the current capacity
// already suffices nothing happens; otherwise exactly n slots are allocated
// and every live element is relocated into them, so element addresses change
// but values do not. Reserve never reduces capacity.
func (a *Array[T, X]) Reserve(n X) {
	const op = "Reserve"
	nn := checkCount[X](op, n)
	if a.capU() >= nn {
		return
	}
	newData := allocSlots[T](nn)
	relocate(slotsOf(newData, nn)[:a.lenU()], a.live())
	a.setStorage(newData, nn)
}

// Resize changes the length to n, destructing trailing elements when
// shrinking and default-constructing new ones when growing. Shrinking never
// changes the capacity; growing reserves exactly n slots if needed.
func (a *Array[T, X]) Resize(n X) {
	const op = "Resize"
	nn := checkCount[X](op, n)
	switch {
	case nn == a.lenU():
	case nn == 0:
		a.Clear()
	case nn < a.lenU():
		a.eraseTail(nn)
	default:
		a.Reserve(n)
		defaultConstruct(a.slots()[a.lenU():nn])
		a.used = X(nn)
	}
}

// ResizeFilled is Resize with new trailing elements constructed as copies of
// v instead of zero values.
func (a *Array[T, X]) ResizeFilled(n X, v T) {
	const op = "ResizeFilled"
	nn := checkCount[X](op, n)
	switch {
	case nn == a.lenU():
	case nn == 0:
		a.Clear()
	case nn < a.lenU():
		a.eraseTail(nn)
	default:
		a.Reserve(n)
		fillConstruct(a.slots()[a.lenU():nn], v)
		a.used = X(nn)
	}
}

// Values returns an iterator over the live elements in index order.
func (a *Array[T, X]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.live() {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over (index, element) pairs in index order.
func (a *Array[T, X]) All() iter.Seq2[X, T] {
	return func(yield func(X, T) bool) {
		for i, v := range a.live() {
			if !yield(X(i), v) {
				return
			}
		}
	}
}

// ToSlice returns the live elements copied into a fresh slice. The result
// shares no storage with the Array.
func (a *Array[T, X]) ToSlice() []T {
	if a.used == 0 {
		return nil
	}
	out := make([]T, a.lenU())
	copy(out, a.live())
	return out
}

// Equal reports whether a and other hold equal elements in the same order,
// compared with eq.
func (a *Array[T, X]) Equal(other *Array[T, X], eq func(a, b T) bool) bool {
	if a.used != other.used {
		return false
	}
	bs := other.live()
	for i, v := range a.live() {
		if !eq(v, bs[i]) {
			return false
		}
	}
	return true
}

// String renders the elements as '{' e1 ' ' e2 ... '}' with each element
// formatted by %v. An empty Array renders as "{}". No newline is emitted.
func (a *Array[T, X]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range a.live() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte('}')
	return sb.String()
}

// lenU and capU widen the counters for internal arithmetic; the invariants
// keep both non-negative so the conversions cannot wrap.
func (a *Array[T, X]) lenU() uint64 { return uint64(a.used) }
func (a *Array[T, X]) capU() uint64 { return uint64(a.alloc) }

// slots returns the full storage view, raw slots included.
func (a *Array[T, X]) slots() []T { return slotsOf(a.data, a.capU()) }

// live returns the view of constructed slots only.
func (a *Array[T, X]) live() []T {
	if a.data == nil {
		return nil
	}
	return slotsOf(a.data, a.lenU())
}

// ptrAt returns the address of slot i with no bounds check.
func (a *Array[T, X]) ptrAt(i uint64) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(a.data), uintptr(i)*unsafe.Sizeof(*a.data)))
}

func (a *Array[T, X]) setStorage(base *T, n uint64) {
	a.data = base
	a.alloc = X(n)
}

// checkIndex verifies 0 <= i < Len() before any element access that promises
// a bounds check.
func (a *Array[T, X]) checkIndex(op string, i X) {
	if i < X(0) || uint64(i) >= a.lenU() {
		failPrecondition(op, "index %v out of range [0, %v)", i, a.used)
	}
}

// checkPos verifies 0 <= i <= Len(); insertion points may be one past the
// last element.
func (a *Array[T, X]) checkPos(op string, i X) uint64 {
	if i < X(0) || uint64(i) > a.lenU() {
		failPrecondition(op, "position %v out of range [0, %v]", i, a.used)
	}
	return uint64(i)
}

// checkCount validates a requested element count against the index type's
// bound and rejects negative values from signed index types.
func checkCount[X Index](op string, n X) uint64 {
	if n < X(0) {
		failPrecondition(op, "negative count %v", n)
	}
	checkSize[X](op, uint64(n))
	return uint64(n)
}
