package interleave

// Scatter8 moves bits 0..3 of x to bits 0, 2, 4, 6.
func Scatter8(x uint8) uint8 {
	x = (x | (x << 2)) & 0x33
	x = (x | (x << 1)) & 0x55
	return x
}

// Scatter16 moves bits 0..7 of x to the even bits.
func Scatter16(x uint16) uint16 {
	x = (x | (x << 4)) & 0x0f0f
	x = (x | (x << 2)) & 0x3333
	x = (x | (x << 1)) & 0x5555
	return x
}

// Scatter32 moves bits 0..15 of x to the even bits.
func Scatter32(x uint32) uint32 {
	x = (x | (x << 8)) & 0x00ff00ff
	x = (x | (x << 4)) & 0x0f0f0f0f
	x = (x | (x << 2)) & 0x33333333
	x = (x | (x << 1)) & 0x55555555
	return x
}

// Scatter64 moves bits 0..31 of x to the even bits.
func Scatter64(x uint64) uint64 {
	x = (x | (x << 16)) & 0x0000ffff0000ffff
	x = (x | (x << 8)) & 0x00ff00ff00ff00ff
	x = (x | (x << 4)) & 0x0f0f0f0f0f0f0f0f
	x = (x | (x << 2)) & 0x3333333333333333
	x = (x | (x << 1)) & 0x5555555555555555
	return x
}

// Gather8 collects bits 0, 2, 4, 6 of x into bits 0..3. It inverts Scatter8.
func Gather8(x uint8) uint8 {
	x = (x | (x >> 1)) & 0x33
	x = (x | (x >> 2)) & 0x0f
	return x
}

// Gather16 collects the even bits of x into bits 0..7.
func Gather16(x uint16) uint16 {
	x = (x | (x >> 1)) & 0x3333
	x = (x | (x >> 2)) & 0x0f0f
	x = (x | (x >> 4)) & 0x00ff
	return x
}

// Gather32 collects the even bits of x into bits 0..15.
func Gather32(x uint32) uint32 {
	x = (x | (x >> 1)) & 0x33333333
	x = (x | (x >> 2)) & 0x0f0f0f0f
	x = (x | (x >> 4)) & 0x00ff00ff
	x = (x | (x >> 8)) & 0x0000ffff
	return x
}

// Gather64 collects the even bits of x into bits 0..31.
func Gather64(x uint64) uint64 {
	x = (x | (x >> 1)) & 0x3333333333333333
	x = (x | (x >> 2)) & 0x0f0f0f0f0f0f0f0f
	x = (x | (x >> 4)) & 0x00ff00ff00ff00ff
	x = (x | (x >> 8)) & 0x0000ffff0000ffff
	x = (x | (x >> 16)) & 0x00000000ffffffff
	return x
}
