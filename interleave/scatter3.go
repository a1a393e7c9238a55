package interleave

// The 3-way masks group the bits in runs whose length does not halve cleanly at every step
// (3 does not divide a power of two), so each width has its own table.

// Scatter8x3 moves bits 0..2 of x to bits 0, 3, 6.
func Scatter8x3(x uint8) uint8 {
	x = (x | (x << 4)) & 0xc7
	x = (x | (x << 2)) & 0x49
	return x
}

// Scatter16x3 moves bits 0..5 of x to every third bit starting at bit 0.
func Scatter16x3(x uint16) uint16 {
	x = (x | (x << 8)) & 0xf03f
	x = (x | (x << 4)) & 0x71c7
	x = (x | (x << 2)) & 0x9249
	return x
}

// Scatter32x3 moves bits 0..10 of x to every third bit starting at bit 0.
func Scatter32x3(x uint32) uint32 {
	x = (x | (x << 16)) & 0xff000fff
	x = (x | (x << 8)) & 0x3f03f03f
	x = (x | (x << 4)) & 0xc71c71c7
	x = (x | (x << 2)) & 0x49249249
	return x
}

// Scatter64x3 moves bits 0..21 of x to every third bit starting at bit 0.
func Scatter64x3(x uint64) uint64 {
	x = (x | (x << 32)) & 0xffff000000ffffff
	x = (x | (x << 16)) & 0x0fff000fff000fff
	x = (x | (x << 8)) & 0xf03f03f03f03f03f
	x = (x | (x << 4)) & 0x71c71c71c71c71c7
	x = (x | (x << 2)) & 0x9249249249249249
	return x
}

// Gather8x3 collects bits 0, 3, 6 of x into bits 0..2. It inverts Scatter8x3.
func Gather8x3(x uint8) uint8 {
	x = (x | (x >> 2)) & 0xc7
	x = (x | (x >> 4)) & 0x3f
	return x
}

// Gather16x3 collects every third bit of x starting at bit 0 into bits 0..5.
func Gather16x3(x uint16) uint16 {
	x = (x | (x >> 2)) & 0x71c7
	x = (x | (x >> 4)) & 0xf03f
	x = (x | (x >> 8)) & 0x0fff
	return x
}

// Gather32x3 collects every third bit of x starting at bit 0 into bits 0..10.
func Gather32x3(x uint32) uint32 {
	x = (x | (x >> 2)) & 0xc71c71c7
	x = (x | (x >> 4)) & 0x3f03f03f
	x = (x | (x >> 8)) & 0xff000fff
	x = (x | (x >> 16)) & 0x00ffffff
	return x
}

// Gather64x3 collects every third bit of x starting at bit 0 into bits 0..21.
func Gather64x3(x uint64) uint64 {
	x = (x | (x >> 2)) & 0x71c71c71c71c71c7
	x = (x | (x >> 4)) & 0xf03f03f03f03f03f
	x = (x | (x >> 8)) & 0x0fff000fff000fff
	x = (x | (x >> 16)) & 0xffff000000ffffff
	x = (x | (x >> 32)) & 0x0000ffffffffffff
	return x
}
