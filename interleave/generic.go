package interleave

import (
	"unsafe"

	"github.com/pdok/bitlib/mathhelp"
)

// The generic functions below pick the per-width function from the size of T, so the literal
// masks only live in the per-width functions.

func Scatter[T mathhelp.Word](x T) T {
	switch unsafe.Sizeof(x) {
	case 1:
		return T(Scatter8(uint8(x)))
	case 2:
		return T(Scatter16(uint16(x)))
	case 4:
		return T(Scatter32(uint32(x)))
	default:
		return T(Scatter64(uint64(x)))
	}
}

func Gather[T mathhelp.Word](x T) T {
	switch unsafe.Sizeof(x) {
	case 1:
		return T(Gather8(uint8(x)))
	case 2:
		return T(Gather16(uint16(x)))
	case 4:
		return T(Gather32(uint32(x)))
	default:
		return T(Gather64(uint64(x)))
	}
}

func Merge[T mathhelp.Word](x, y T) T {
	switch unsafe.Sizeof(x) {
	case 1:
		return T(Merge8(uint8(x), uint8(y)))
	case 2:
		return T(Merge16(uint16(x), uint16(y)))
	case 4:
		return T(Merge32(uint32(x), uint32(y)))
	default:
		return T(Merge64(uint64(x), uint64(y)))
	}
}

func MergeNWE[T mathhelp.Word](x, y T) T {
	switch unsafe.Sizeof(x) {
	case 1:
		return T(MergeNWE8(uint8(x), uint8(y)))
	case 2:
		return T(MergeNWE16(uint16(x), uint16(y)))
	case 4:
		return T(MergeNWE32(uint32(x), uint32(y)))
	default:
		return T(MergeNWE64(uint64(x), uint64(y)))
	}
}

func Separate[T mathhelp.Word](n T) (x, y T) {
	switch unsafe.Sizeof(n) {
	case 1:
		a, b := Separate8(uint8(n))
		return T(a), T(b)
	case 2:
		a, b := Separate16(uint16(n))
		return T(a), T(b)
	case 4:
		a, b := Separate32(uint32(n))
		return T(a), T(b)
	default:
		a, b := Separate64(uint64(n))
		return T(a), T(b)
	}
}

func SeparateNWE[T mathhelp.Word](n T) (x, y T) {
	switch unsafe.Sizeof(n) {
	case 1:
		a, b := SeparateNWE8(uint8(n))
		return T(a), T(b)
	case 2:
		a, b := SeparateNWE16(uint16(n))
		return T(a), T(b)
	case 4:
		a, b := SeparateNWE32(uint32(n))
		return T(a), T(b)
	default:
		a, b := SeparateNWE64(uint64(n))
		return T(a), T(b)
	}
}

func Scatter3[T mathhelp.Word](x T) T {
	switch unsafe.Sizeof(x) {
	case 1:
		return T(Scatter8x3(uint8(x)))
	case 2:
		return T(Scatter16x3(uint16(x)))
	case 4:
		return T(Scatter32x3(uint32(x)))
	default:
		return T(Scatter64x3(uint64(x)))
	}
}

func Gather3[T mathhelp.Word](x T) T {
	switch unsafe.Sizeof(x) {
	case 1:
		return T(Gather8x3(uint8(x)))
	case 2:
		return T(Gather16x3(uint16(x)))
	case 4:
		return T(Gather32x3(uint32(x)))
	default:
		return T(Gather64x3(uint64(x)))
	}
}

func Merge3[T mathhelp.Word](x, y, z T) T {
	switch unsafe.Sizeof(x) {
	case 1:
		return T(Merge8x3(uint8(x), uint8(y), uint8(z)))
	case 2:
		return T(Merge16x3(uint16(x), uint16(y), uint16(z)))
	case 4:
		return T(Merge32x3(uint32(x), uint32(y), uint32(z)))
	default:
		return T(Merge64x3(uint64(x), uint64(y), uint64(z)))
	}
}

func Separate3[T mathhelp.Word](n T) (x, y, z T) {
	switch unsafe.Sizeof(n) {
	case 1:
		a, b, c := Separate8x3(uint8(n))
		return T(a), T(b), T(c)
	case 2:
		a, b, c := Separate16x3(uint16(n))
		return T(a), T(b), T(c)
	case 4:
		a, b, c := Separate32x3(uint32(n))
		return T(a), T(b), T(c)
	default:
		a, b, c := Separate64x3(uint64(n))
		return T(a), T(b), T(c)
	}
}
