package interleave

import "github.com/pdok/bitlib/mathhelp"

// Component bit sets of the widest codes. Narrower codes use the low bits of the same patterns.
var (
	evenBits  uint64 = 0x5555555555555555
	thirdBits uint64 = 0x9249249249249249
)

// FitsHalf reports whether x only uses the bits a 2-way component of width T can hold.
func FitsHalf[T mathhelp.Word](x T) bool {
	return x&^mathhelp.LowMask[T](mathhelp.HalfWidth[T]()) == 0
}

// IsScattered reports whether x only has even bits set, i.e. is a valid Gather input.
func IsScattered[T mathhelp.Word](x T) bool {
	return x&^T(evenBits) == 0
}

// FitsThird reports whether x only uses the bits the given 3-way component (0 = x, 1 = y, 2 = z)
// of width T can hold. Any other component index reports false.
func FitsThird[T mathhelp.Word](x T, component int) bool {
	if component < 0 || component > 2 {
		return false
	}
	return x&^mathhelp.LowMask[T](mathhelp.ThirdWidths[T]()[component]) == 0
}

// IsScattered3 reports whether x only has bits 0, 3, 6, ... set, i.e. is a valid Gather3 input.
func IsScattered3[T mathhelp.Word](x T) bool {
	return x&^T(thirdBits) == 0
}
