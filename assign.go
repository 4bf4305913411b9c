package dynarr

import "iter"

// Assignment always destructs the current contents first and then constructs
// copies of the source elements; it never assigns over live elements. Sources
// that report their length up front get a single-allocation bulk path;
// everything else is appended one element at a time.

// Source is anything that can yield a sequence of elements.
type Source[T any] interface {
	Values() iter.Seq[T]
}

// SizedSource is a Source whose element count is known in constant time.
// Assignment and insertion from a SizedSource allocate once instead of
// growing incrementally.
type SizedSource[T any] interface {
	Source[T]
	Len() int
}

// SliceOf adapts a slice into a SizedSource. The slice is not copied; the
// adapter is only a view.
func SliceOf[T any](s []T) SizedSource[T] {
	return sliceSource[T]{s}
}

type sliceSource[T any] struct{ s []T }

func (v sliceSource[T]) Len() int { return len(v.s) }

func (v sliceSource[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range v.s {
			if !yield(e) {
				return
			}
		}
	}
}

// Source adapts the Array itself into a SizedSource so it can feed
// AssignFrom and InsertFrom on other containers, including ones with a
// different index type.
func (a *Array[T, X]) Source() SizedSource[T] {
	return arraySource[T, X]{a}
}

type arraySource[T any, X Index] struct{ a *Array[T, X] }

func (v arraySource[T, X]) Len() int            { return int(v.a.lenU()) }
func (v arraySource[T, X]) Values() iter.Seq[T] { return v.a.Values() }

// FromSource builds a new Array from any Source, taking the bulk path when
// the source is sized.
func FromSource[T any, X Index](src Source[T]) *Array[T, X] {
	a := New[T, X]()
	a.AssignFrom(src)
	return a
}

// Assign replaces the contents with n copies of v. The existing elements are
// destructed first; storage is reallocated to exactly n slots when the
// current capacity is too small for n or judged excessive for it.
func (a *Array[T, X]) Assign(n X, v T) {
	const op = "Assign"
	nn := checkCount[X](op, n)
	a.assignBulk(op, nn, func(dst []T) {
		fillConstruct(dst, v)
	})
}

// AssignSlice replaces the contents with a copy of every element of s using
// a single allocation at most. s must not alias this Array's storage.
func (a *Array[T, X]) AssignSlice(s []T) {
	a.assignBulk("AssignSlice", uint64(len(s)), func(dst []T) {
		copyConstruct(dst, s)
	})
}

// AssignSeq replaces the contents with the elements produced by seq. The
// length is unknown up front, so elements are appended one at a time and the
// storage may be reallocated a logarithmic number of times.
func (a *Array[T, X]) AssignSeq(seq iter.Seq[T]) {
	a.Clear()
	for v := range seq {
		a.Push(v)
	}
}

// AssignFrom replaces the contents with the elements of src. If src reports
// a constant-time length the bulk path runs: one destruct pass, at most one
// allocation, one construct pass. Otherwise elements are pushed as they
// arrive.
//
// src must not read from this Array's own storage: the old contents are
// destructed before the source is consumed. The one permitted alias is the
// Array's own Source, which is detected and makes the call a no-op, like
// CopyFrom from itself.
func (a *Array[T, X]) AssignFrom(src Source[T]) {
	const op = "AssignFrom"
	if self, ok := src.(arraySource[T, X]); ok && self.a == a {
		return
	}
	sized, ok := src.(SizedSource[T])
	if !ok {
		a.AssignSeq(src.Values())
		return
	}
	n := sized.Len()
	if n < 0 {
		failPrecondition(op, "source reported negative length %d", n)
	}
	a.assignBulk(op, uint64(n), func(dst []T) {
		fillFromSeq(dst, src.Values())
	})
}

// CopyFrom makes this Array a copy of src, reusing the existing storage when
// the shrink policy allows. Assigning an Array to itself is a no-op.
func (a *Array[T, X]) CopyFrom(src *Array[T, X]) {
	if a == src {
		return
	}
	a.assignBulk("CopyFrom", src.lenU(), func(dst []T) {
		copyConstruct(dst, src.live())
	})
}

// InsertFrom inserts the elements of src before position i and returns the
// address of the first inserted element (nil when src was empty and i was
// the end). A sized source gets one gap of the full width; an unsized source
// is inserted one element at a time, shifting followers each time.
//
// src must not read from this Array's own storage; opening the gap moves
// live elements before the source is consumed. Insert a Clone's Source (or
// a ToSlice copy) to splice a container into itself.
func (a *Array[T, X]) InsertFrom(i X, src Source[T]) *T {
	const op = "InsertFrom"
	pos := a.checkPos(op, i)
	sized, ok := src.(SizedSource[T])
	if !ok {
		inserted := uint64(0)
		for v := range src.Values() {
			a.Insert(X(pos+inserted), v)
			inserted++
		}
		if inserted == 0 {
			return a.posPtr(pos)
		}
		return a.ptrAt(pos)
	}
	n := sized.Len()
	if n < 0 {
		failPrecondition(op, "source reported negative length %d", n)
	}
	nn := uint64(n)
	if nn == 0 {
		return a.posPtr(pos)
	}
	a.insertGapAt(pos, nn, op)
	fillFromSeq(a.slots()[pos:pos+nn], src.Values())
	a.used = X(a.lenU() + nn)
	return a.ptrAt(pos)
}

// assignBulk is the shared bulk-assignment path: destruct everything, apply
// the shrink policy, then let construct fill exactly n raw slots.
func (a *Array[T, X]) assignBulk(op string, n uint64, construct func(dst []T)) {
	checkSize[X](op, n)
	destructRange(a.live())
	a.used = 0
	if shouldShrinkFor(a.capU(), n, maxSize[X]()) {
		a.setStorage(allocSlots[T](n), n)
	}
	construct(a.slots()[:n])
	a.used = X(n)
}

// fillFromSeq copy-constructs up to len(dst) elements of seq into dst. A
// sized source yielding fewer elements than it reported leaves the remainder
// zero-valued rather than raw.
func fillFromSeq[T any](dst []T, seq iter.Seq[T]) {
	i := 0
	for v := range seq {
		if i == len(dst) {
			break
		}
		dst[i] = v
		i++
	}
	if i < len(dst) {
		defaultConstruct(dst[i:])
	}
}
