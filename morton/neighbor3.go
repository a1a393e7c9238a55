package morton

// Axis bits of a 3D code: x 0x...49249249, y 0x...92492492, z 0x...24924924 (truncated to the width).

// XMinus8x3 returns the code of the (x-1, y, z) neighbor.
func XMinus8x3(m uint8) uint8 {
	return ((m&0x49)-1)&0x49 | m&0xb6
}

func XMinus16x3(m uint16) uint16 {
	return ((m&0x9249)-1)&0x9249 | m&0x6db6
}

func XMinus32x3(m uint32) uint32 {
	return ((m&0x49249249)-1)&0x49249249 | m&0xb6db6db6
}

func XMinus64x3(m uint64) uint64 {
	return ((m&0x9249249249249249)-1)&0x9249249249249249 | m&0x6db6db6db6db6db6
}

// XPlus8x3 returns the code of the (x+1, y, z) neighbor.
func XPlus8x3(m uint8) uint8 {
	return ((m|0xb6)+1)&0x49 | m&0xb6
}

func XPlus16x3(m uint16) uint16 {
	return ((m|0x6db6)+1)&0x9249 | m&0x6db6
}

func XPlus32x3(m uint32) uint32 {
	return ((m|0xb6db6db6)+1)&0x49249249 | m&0xb6db6db6
}

func XPlus64x3(m uint64) uint64 {
	return ((m|0x6db6db6db6db6db6)+1)&0x9249249249249249 | m&0x6db6db6db6db6db6
}

// YMinus8x3 returns the code of the (x, y-1, z) neighbor.
func YMinus8x3(m uint8) uint8 {
	return ((m&0x92)-1)&0x92 | m&0x6d
}

func YMinus16x3(m uint16) uint16 {
	return ((m&0x2492)-1)&0x2492 | m&0xdb6d
}

func YMinus32x3(m uint32) uint32 {
	return ((m&0x92492492)-1)&0x92492492 | m&0x6db6db6d
}

func YMinus64x3(m uint64) uint64 {
	return ((m&0x2492492492492492)-1)&0x2492492492492492 | m&0xdb6db6db6db6db6d
}

// YPlus8x3 returns the code of the (x, y+1, z) neighbor.
func YPlus8x3(m uint8) uint8 {
	return ((m|0x6d)+1)&0x92 | m&0x6d
}

func YPlus16x3(m uint16) uint16 {
	return ((m|0xdb6d)+1)&0x2492 | m&0xdb6d
}

func YPlus32x3(m uint32) uint32 {
	return ((m|0x6db6db6d)+1)&0x92492492 | m&0x6db6db6d
}

func YPlus64x3(m uint64) uint64 {
	return ((m|0xdb6db6db6db6db6d)+1)&0x2492492492492492 | m&0xdb6db6db6db6db6d
}

// ZMinus8x3 returns the code of the (x, y, z-1) neighbor.
func ZMinus8x3(m uint8) uint8 {
	return ((m&0x24)-1)&0x24 | m&0xdb
}

func ZMinus16x3(m uint16) uint16 {
	return ((m&0x4924)-1)&0x4924 | m&0xb6db
}

func ZMinus32x3(m uint32) uint32 {
	return ((m&0x24924924)-1)&0x24924924 | m&0xdb6db6db
}

func ZMinus64x3(m uint64) uint64 {
	return ((m&0x4924924924924924)-1)&0x4924924924924924 | m&0xb6db6db6db6db6db
}

// ZPlus8x3 returns the code of the (x, y, z+1) neighbor.
func ZPlus8x3(m uint8) uint8 {
	return ((m|0xdb)+1)&0x24 | m&0xdb
}

func ZPlus16x3(m uint16) uint16 {
	return ((m|0xb6db)+1)&0x4924 | m&0xb6db
}

func ZPlus32x3(m uint32) uint32 {
	return ((m|0xdb6db6db)+1)&0x24924924 | m&0xdb6db6db
}

func ZPlus64x3(m uint64) uint64 {
	return ((m|0xb6db6db6db6db6db)+1)&0x4924924924924924 | m&0xb6db6db6db6db6db
}
