// Package popcount counts the set bits (Hamming weight) of fixed-width unsigned operands.
//
// Every width has three interchangeable strategies that agree on every input:
//   - Count: SWAR reduction to per-byte counts followed by a shift-and-add fold
//   - CountMul: the same reduction, folded with a single multiply by 0x0101... (8 bits needs no fold)
//   - CountIter: clears the lowest set bit until none remain; cost grows with the number of set bits
package popcount

import (
	"unsafe"

	"github.com/pdok/bitlib/mathhelp"
)

func Count8(x uint8) int {
	x -= (x >> 1) & 0x55
	x = (x & 0x33) + ((x >> 2) & 0x33)
	x = (x + (x >> 4)) & 0x0f
	return int(x)
}

func Count16(x uint16) int {
	x -= (x >> 1) & 0x5555
	x = (x & 0x3333) + ((x >> 2) & 0x3333)
	x = (x + (x >> 4)) & 0x0f0f
	x += x >> 8
	return int(x & 0x1f)
}

func Count32(x uint32) int {
	x -= (x >> 1) & 0x55555555
	x = (x & 0x33333333) + ((x >> 2) & 0x33333333)
	x = (x + (x >> 4)) & 0x0f0f0f0f
	x += x >> 8
	x += x >> 16
	return int(x & 0x3f)
}

func Count64(x uint64) int {
	x -= (x >> 1) & 0x5555555555555555
	x = (x & 0x3333333333333333) + ((x >> 2) & 0x3333333333333333)
	x = (x + (x >> 4)) & 0x0f0f0f0f0f0f0f0f
	x += x >> 8
	x += x >> 16
	x += x >> 32
	return int(x & 0x7f)
}

// CountMul8 is Count8: a single byte lane already holds the total, so there is nothing to fold.
func CountMul8(x uint8) int {
	return Count8(x)
}

func CountMul16(x uint16) int {
	x -= (x >> 1) & 0x5555
	x = (x & 0x3333) + ((x >> 2) & 0x3333)
	x = (x + (x >> 4)) & 0x0f0f
	return int((x * 0x0101) >> 8)
}

func CountMul32(x uint32) int {
	x -= (x >> 1) & 0x55555555
	x = (x & 0x33333333) + ((x >> 2) & 0x33333333)
	x = (x + (x >> 4)) & 0x0f0f0f0f
	return int((x * 0x01010101) >> 24)
}

func CountMul64(x uint64) int {
	x -= (x >> 1) & 0x5555555555555555
	x = (x & 0x3333333333333333) + ((x >> 2) & 0x3333333333333333)
	x = (x + (x >> 4)) & 0x0f0f0f0f0f0f0f0f
	return int((x * 0x0101010101010101) >> 56)
}

func CountIter8(x uint8) int {
	c := 0
	for ; x > 0; c++ {
		x &= x - 1
	}
	return c
}

func CountIter16(x uint16) int {
	c := 0
	for ; x > 0; c++ {
		x &= x - 1
	}
	return c
}

func CountIter32(x uint32) int {
	c := 0
	for ; x > 0; c++ {
		x &= x - 1
	}
	return c
}

func CountIter64(x uint64) int {
	c := 0
	for ; x > 0; c++ {
		x &= x - 1
	}
	return c
}

// Count counts the set bits of x with the SWAR reduction for its width.
func Count[T mathhelp.Word](x T) int {
	switch unsafe.Sizeof(x) {
	case 1:
		return Count8(uint8(x))
	case 2:
		return Count16(uint16(x))
	case 4:
		return Count32(uint32(x))
	default:
		return Count64(uint64(x))
	}
}

// CountMul counts the set bits of x with the multiply fold for its width.
func CountMul[T mathhelp.Word](x T) int {
	switch unsafe.Sizeof(x) {
	case 1:
		return CountMul8(uint8(x))
	case 2:
		return CountMul16(uint16(x))
	case 4:
		return CountMul32(uint32(x))
	default:
		return CountMul64(uint64(x))
	}
}

// CountIter counts the set bits of x by clearing the lowest set bit until x is zero.
func CountIter[T mathhelp.Word](x T) int {
	c := 0
	for ; x > 0; c++ {
		x &= x - 1
	}
	return c
}
