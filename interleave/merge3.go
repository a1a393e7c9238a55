package interleave

// Merge8x3 interleaves x (3 bits), y (3 bits) and z (2 bits) at stride 3.
func Merge8x3(x, y, z uint8) uint8 {
	x = Scatter8x3(x)
	y = Scatter8x3(y)
	z = Scatter8x3(z)
	return x | y<<1 | z<<2
}

// Merge16x3 interleaves x (6 bits), y (5 bits) and z (5 bits) at stride 3.
func Merge16x3(x, y, z uint16) uint16 {
	x = Scatter16x3(x)
	y = Scatter16x3(y)
	z = Scatter16x3(z)
	return x | y<<1 | z<<2
}

// Merge32x3 interleaves x (11 bits), y (11 bits) and z (10 bits) at stride 3.
func Merge32x3(x, y, z uint32) uint32 {
	x = Scatter32x3(x)
	y = Scatter32x3(y)
	z = Scatter32x3(z)
	return x | y<<1 | z<<2
}

// Merge64x3 interleaves x (22 bits), y (21 bits) and z (21 bits) at stride 3.
func Merge64x3(x, y, z uint64) uint64 {
	x = Scatter64x3(x)
	y = Scatter64x3(y)
	z = Scatter64x3(z)
	return x | y<<1 | z<<2
}

// Separate8x3 splits a code made by Merge8x3.
func Separate8x3(n uint8) (x, y, z uint8) {
	x = Gather8x3(n & 0x49)
	y = Gather8x3((n >> 1) & 0x49)
	z = Gather8x3((n >> 2) & 0x49)
	return x, y, z
}

// Separate16x3 splits a code made by Merge16x3.
func Separate16x3(n uint16) (x, y, z uint16) {
	x = Gather16x3(n & 0x9249)
	y = Gather16x3((n >> 1) & 0x9249)
	z = Gather16x3((n >> 2) & 0x9249)
	return x, y, z
}

// Separate32x3 splits a code made by Merge32x3.
func Separate32x3(n uint32) (x, y, z uint32) {
	x = Gather32x3(n & 0x49249249)
	y = Gather32x3((n >> 1) & 0x49249249)
	z = Gather32x3((n >> 2) & 0x49249249)
	return x, y, z
}

// Separate64x3 splits a code made by Merge64x3.
func Separate64x3(n uint64) (x, y, z uint64) {
	x = Gather64x3(n & 0x9249249249249249)
	y = Gather64x3((n >> 1) & 0x9249249249249249)
	z = Gather64x3((n >> 2) & 0x9249249249249249)
	return x, y, z
}
