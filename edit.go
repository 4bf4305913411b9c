package dynarr

// Insertion and erasure. Every operation here leaves the container invariants
// intact on success and panics before touching storage on a precondition
// failure. Growth goes through growCapacity so appends stay amortized
// constant time.

// Push appends a copy of v, growing the storage if it is full, and returns
// the address of the new element.
func (a *Array[T, X]) Push(v T) *T {
	if a.alloc == a.used {
		a.growAtEnd(1, "Push")
	}
	p := a.ptrAt(a.lenU())
	*p = v
	a.used++
	return p
}

// PushDefault appends a zero-valued element and returns its address. This
// skips the copy a Push of a freshly built value would make.
func (a *Array[T, X]) PushDefault() *T {
	if a.alloc == a.used {
		a.growAtEnd(1, "PushDefault")
	}
	p := a.ptrAt(a.lenU())
	var zero T
	*p = zero
	a.used++
	return p
}

// RawPush grows the length by one and returns the address of the new slot
// without constructing anything into it; the contents are unspecified (a
// poison pattern in debug builds). The caller must fully initialize the slot
// before any other use of the container. This is the in-place construction
// extension for elements that are expensive to build and copy.
func (a *Array[T, X]) RawPush() *T {
	if a.alloc == a.used {
		a.growAtEnd(1, "RawPush")
	}
	p := a.ptrAt(a.lenU())
	a.used++
	return p
}

// Pop removes the last element and returns its value. The Array must not be
// empty. Capacity is unchanged.
func (a *Array[T, X]) Pop() T {
	if a.used == 0 {
		failPrecondition("Pop", "container is empty")
	}
	p := a.ptrAt(a.lenU() - 1)
	v := *p
	destruct(p)
	a.used--
	return v
}

// Insert inserts a copy of v before position i (i may equal Len() to
// append) and returns the address of the inserted element, which differs
// from the address of slot i on entry only if reallocation occurred.
func (a *Array[T, X]) Insert(i X, v T) *T {
	const op = "Insert"
	pos := a.checkPos(op, i)
	a.insertGapAt(pos, 1, op)
	p := a.ptrAt(pos)
	*p = v
	a.used++
	return p
}

// InsertN inserts n copies of v before position i and returns the address of
// the first inserted element. Nothing happens when n == 0.
func (a *Array[T, X]) InsertN(i X, n X, v T) *T {
	const op = "InsertN"
	pos := a.checkPos(op, i)
	if n < X(0) {
		failPrecondition(op, "negative count %v", n)
	}
	nn := uint64(n)
	if nn == 0 {
		return a.posPtr(pos)
	}
	a.insertGapAt(pos, nn, op)
	fillConstruct(a.slots()[pos:pos+nn], v)
	a.used = X(a.lenU() + nn)
	return a.ptrAt(pos)
}

// InsertSlice inserts a copy of every element of s before position i and
// returns the address of the first inserted element. s must not alias this
// Array's storage.
func (a *Array[T, X]) InsertSlice(i X, s []T) *T {
	const op = "InsertSlice"
	pos := a.checkPos(op, i)
	nn := uint64(len(s))
	if nn == 0 {
		return a.posPtr(pos)
	}
	a.insertGapAt(pos, nn, op)
	copyConstruct(a.slots()[pos:pos+nn], s)
	a.used = X(a.lenU() + nn)
	return a.ptrAt(pos)
}

// Erase removes the element at index i, shifting every later element down
// one slot. Relative order is preserved; capacity is unchanged. Returns the
// address of the element that now occupies index i, or nil if i is past the
// new end. i cannot be Len(); erasing past the end is a precondition
// violation.
func (a *Array[T, X]) Erase(i X) *T {
	a.checkIndex("Erase", i)
	pos := uint64(i)
	s := a.slots()
	destruct(&s[pos])
	moveDown(s, pos+1, a.lenU(), 1)
	a.used--
	return a.posPtr(pos)
}

// EraseRange removes the elements in [first, last), shifting every later
// element down to close the gap. Relative order is preserved; capacity is
// unchanged; an empty range is a no-op. Returns the address of the element
// that now occupies index first, or nil if none does.
func (a *Array[T, X]) EraseRange(first, last X) *T {
	const op = "EraseRange"
	if first < X(0) || first > last || uint64(last) > a.lenU() {
		failPrecondition(op, "range [%v, %v) invalid for length %v", first, last, a.used)
	}
	lo, hi := uint64(first), uint64(last)
	if n := hi - lo; n > 0 {
		s := a.slots()
		destructRange(s[lo:hi])
		moveDown(s, hi, a.lenU(), n)
		a.used = X(a.lenU() - n)
	}
	return a.posPtr(lo)
}

// EraseFast removes the element at index i in constant time by moving the
// current last element into the vacated slot. Element order is not
// preserved; capacity is unchanged. Returns the address of the element that
// now occupies index i, or nil if i was the last slot.
func (a *Array[T, X]) EraseFast(i X) *T {
	a.checkIndex("EraseFast", i)
	pos := uint64(i)
	s := a.slots()
	destruct(&s[pos])
	if last := a.lenU() - 1; pos != last {
		s[pos] = s[last]
		destruct(&s[last])
	}
	a.used--
	return a.posPtr(pos)
}

// eraseTail destructs the live elements at and after index n; used by Resize
// when shrinking. Order-preserving by construction since nothing follows.
func (a *Array[T, X]) eraseTail(n uint64) {
	destructRange(a.slots()[n:a.lenU()])
	a.used = X(n)
}

// insertGapAt opens a raw gap of n slots starting at pos. When the current
// capacity can hold Len()+n the elements at and after pos are shifted up in
// place, back to front. Otherwise new storage is allocated per the growth
// policy and the prefix and suffix are relocated around the gap in the same
// pass, so growing and gap creation never touch an element twice. The used
// count is not changed here; the caller constructs the gap and then adds n.
func (a *Array[T, X]) insertGapAt(pos, n uint64, op string) {
	if a.capU() >= a.lenU()+n {
		moveUp(a.slots(), pos, a.lenU(), n)
		return
	}
	checkGrowth[X](op, a.capU(), n)
	newCap := growCapacity(a.capU(), n, maxSize[X]())
	newData := allocSlots[T](newCap)
	newSlots := slotsOf(newData, newCap)
	relocate(newSlots[:pos], a.live()[:pos])
	relocate(newSlots[pos+n:pos+n+(a.lenU()-pos)], a.live()[pos:])
	a.setStorage(newData, newCap)
}

// growAtEnd reallocates for n more trailing slots per the growth policy and
// relocates every live element. Like insertGapAt with the gap at the end,
// minus the suffix pass.
func (a *Array[T, X]) growAtEnd(n uint64, op string) {
	checkGrowth[X](op, a.capU(), n)
	newCap := growCapacity(a.capU(), n, maxSize[X]())
	newData := allocSlots[T](newCap)
	relocate(slotsOf(newData, newCap)[:a.lenU()], a.live())
	a.setStorage(newData, newCap)
}

// posPtr returns the address of slot pos when it holds a live element, nil
// otherwise. Used for return values that may refer to one past the end.
func (a *Array[T, X]) posPtr(pos uint64) *T {
	if pos < a.lenU() {
		return a.ptrAt(pos)
	}
	return nil
}
