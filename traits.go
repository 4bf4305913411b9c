package dynarr

import (
	"fmt"
	"unsafe"
)

// Index is the set of integer types usable as an Array index. The tilde
// forms admit user-defined index types (type BodyIndex int32) so that an
// array can only be indexed by indices of a particular type.
type Index interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Traits describes the bounds of an index type: the largest element count an
// Array using it may hold, the bit widths of its size and difference
// representations, and a diagnostic name for error messages.
//
// MaxSize is deliberately smaller than the type's natural maximum so that
// the difference between any two valid indices is representable in a signed
// type of DiffBits width. An unsigned 8-bit index keeps its full 255-element
// range because differences still fit a 16-bit signed type; every wider
// unsigned type gives up its top bit instead.
type Traits struct {
	MaxSize  uint64 // largest permitted element count
	Bits     int    // width of the index/size type
	DiffBits int    // width of the signed difference type
	Signed   bool
	Name     string // diagnostic name, e.g. "uint8" or "mypkg.BodyIndex"
}

// TraitsOf returns the trait descriptor for index type X.
func TraitsOf[X Index]() Traits {
	bits, signed := indexShape[X]()
	return Traits{
		MaxSize:  maxSizeFor(bits, signed),
		Bits:     bits,
		DiffBits: diffBitsFor(bits, signed),
		Signed:   signed,
		Name:     indexName[X](),
	}
}

// indexShape reports the width and signedness of X without reflection.
// Signedness is detected by decrementing a zero: signed types go negative,
// unsigned types wrap to their maximum.
func indexShape[X Index]() (bits int, signed bool) {
	var x X
	bits = int(unsafe.Sizeof(x)) * 8
	x--
	signed = x < 0
	return bits, signed
}

// maxSize is the hot-path form of TraitsOf: just the element-count bound,
// no name formatting.
func maxSize[X Index]() uint64 {
	bits, signed := indexShape[X]()
	return maxSizeFor(bits, signed)
}

func maxSizeFor(bits int, signed bool) uint64 {
	if !signed && bits == 8 {
		// Differences in -255..255 still fit a 16-bit signed type,
		// so the full count range is usable.
		return 255
	}
	return 1<<(bits-1) - 1
}

func diffBitsFor(bits int, signed bool) int {
	if !signed && bits == 8 {
		return 16
	}
	return bits
}

// indexName formats the diagnostic name of X. Only called when building
// error text or a Traits value, never on an access path.
func indexName[X Index]() string {
	var x X
	return fmt.Sprintf("%T", x)
}
