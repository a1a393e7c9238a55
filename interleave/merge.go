package interleave

// Merge8 interleaves the low 4 bits of x (even bits) and y (odd bits).
func Merge8(x, y uint8) uint8 {
	m := uint16(x) | uint16(y)<<8
	m = Scatter16(m)
	return uint8(m | m>>7)
}

// MergeNWE8 is Merge8 without a 16 bit intermediate.
func MergeNWE8(x, y uint8) uint8 {
	x = Scatter8(x)
	y = Scatter8(y)
	return x | y<<1
}

// Merge16 interleaves the low 8 bits of x (even bits) and y (odd bits).
func Merge16(x, y uint16) uint16 {
	m := uint32(x) | uint32(y)<<16
	m = Scatter32(m)
	return uint16(m | m>>15)
}

// MergeNWE16 is Merge16 without a 32 bit intermediate.
func MergeNWE16(x, y uint16) uint16 {
	x = Scatter16(x)
	y = Scatter16(y)
	return x | y<<1
}

// Merge32 interleaves the low 16 bits of x (even bits) and y (odd bits).
func Merge32(x, y uint32) uint32 {
	m := uint64(x) | uint64(y)<<32
	m = Scatter64(m)
	return uint32(m | m>>31)
}

// MergeNWE32 is Merge32 without a 64 bit intermediate.
func MergeNWE32(x, y uint32) uint32 {
	x = Scatter32(x)
	y = Scatter32(y)
	return x | y<<1
}

// Merge64 interleaves the low 32 bits of x (even bits) and y (odd bits).
func Merge64(x, y uint64) uint64 {
	x = Scatter64(x)
	y = Scatter64(y)
	return x | y<<1
}

// MergeNWE64 is Merge64, which never widens.
func MergeNWE64(x, y uint64) uint64 {
	return Merge64(x, y)
}

// Separate8 splits a code made by Merge8 into its even (x) and odd (y) bits.
func Separate8(n uint8) (x, y uint8) {
	m := (uint16(n) | uint16(n)<<7) & 0x5555
	m = Gather16(m)
	return uint8(m & 0x0f), uint8(m >> 4)
}

// SeparateNWE8 is Separate8 without a 16 bit intermediate.
func SeparateNWE8(n uint8) (x, y uint8) {
	return Gather8(n & 0x55), Gather8((n & 0xaa) >> 1)
}

// Separate16 splits a code made by Merge16 into its even (x) and odd (y) bits.
func Separate16(n uint16) (x, y uint16) {
	m := (uint32(n) | uint32(n)<<15) & 0x55555555
	m = Gather32(m)
	return uint16(m & 0x00ff), uint16(m >> 8)
}

// SeparateNWE16 is Separate16 without a 32 bit intermediate.
func SeparateNWE16(n uint16) (x, y uint16) {
	return Gather16(n & 0x5555), Gather16((n & 0xaaaa) >> 1)
}

// Separate32 splits a code made by Merge32 into its even (x) and odd (y) bits.
func Separate32(n uint32) (x, y uint32) {
	m := (uint64(n) | uint64(n)<<31) & 0x5555555555555555
	m = Gather64(m)
	return uint32(m & 0x0000ffff), uint32(m >> 16)
}

// SeparateNWE32 is Separate32 without a 64 bit intermediate.
func SeparateNWE32(n uint32) (x, y uint32) {
	return Gather32(n & 0x55555555), Gather32((n & 0xaaaaaaaa) >> 1)
}

// Separate64 splits a code made by Merge64 into its even (x) and odd (y) bits.
func Separate64(n uint64) (x, y uint64) {
	return Gather64(n & 0x5555555555555555), Gather64((n & 0xaaaaaaaaaaaaaaaa) >> 1)
}

// SeparateNWE64 is Separate64, which never widens.
func SeparateNWE64(n uint64) (x, y uint64) {
	return Separate64(n)
}
