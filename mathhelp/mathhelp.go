// Package mathhelp holds the small width helpers shared by the bit transform packages.
package mathhelp

import "unsafe"

// Word is the set of fixed-width unsigned operands the bit transforms are defined for.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the number of bits in T.
func Width[T Word]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// HalfWidth returns the number of bits each component of a 2-way code of width T can hold.
func HalfWidth[T Word]() uint {
	return Width[T]() / 2
}

// ThirdWidths returns the number of bits the x, y and z components of a 3-way code of width T can hold.
// x owns bits 0, 3, 6, ..., y owns 1, 4, 7, ... and z owns 2, 5, 8, ...
func ThirdWidths[T Word]() [3]uint {
	w := Width[T]()
	return [3]uint{(w + 2) / 3, (w + 1) / 3, w / 3}
}

// LowMask returns a T with the lowest n bits set.
func LowMask[T Word](n uint) T {
	if n >= Width[T]() {
		return ^T(0)
	}
	return T(1)<<n - 1
}

func Pow2(n uint) uint {
	return 1 << n
}

func Bool2int(b bool) int {
	if b {
		return 1
	}
	return 0
}
