package dynarr

import "fmt"

// CapacityError reports a request to size or grow an Array beyond the
// maximum element count permitted by its index type. It is raised via panic
// and is checked in every build mode: growth is rare enough that the check
// is free in practice.
type CapacityError struct {
	Op        string // operation that made the request, e.g. "Push"
	Requested uint64 // total element count that was requested
	Max       uint64 // maximum permitted by the index type
	Index     string // diagnostic name of the index type
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("dynarr: %s: requested %d elements but index type %s allows at most %d",
		e.Op, e.Requested, e.Index, e.Max)
}

// checkSize panics with a CapacityError if a total size of n elements
// exceeds the index type's bound.
func checkSize[X Index](op string, n uint64) {
	if n > maxSize[X]() {
		panic(&CapacityError{Op: op, Requested: n, Max: maxSize[X](), Index: indexName[X]()})
	}
}

// checkGrowth panics with a CapacityError if growing a container of the
// given capacity by n elements would exceed the index type's bound.
func checkGrowth[X Index](op string, capacity, n uint64) {
	if n > maxSize[X]()-capacity { // capacity <= maxSize always holds
		panic(&CapacityError{Op: op, Requested: capacity + n, Max: maxSize[X](), Index: indexName[X]()})
	}
}

// failPrecondition reports an invalid argument or an operation on a
// container in the wrong state. Nothing has been mutated when it fires.
func failPrecondition(op, format string, args ...any) {
	panic("dynarr: " + op + ": " + fmt.Sprintf(format, args...))
}
