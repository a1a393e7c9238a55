package morton

// Stepping an axis works on the axis bits alone. To decrement, the foreign bits are cleared so the
// borrow runs through them and is masked away; to increment, they are set so the carry runs
// through them. The foreign bits of m are then put back unchanged.

// XMinus8 returns the code of the (x-1, y) neighbor.
func XMinus8(m uint8) uint8 {
	return ((m&0x55)-1)&0x55 | m&0xaa
}

func XMinus16(m uint16) uint16 {
	return ((m&0x5555)-1)&0x5555 | m&0xaaaa
}

func XMinus32(m uint32) uint32 {
	return ((m&0x55555555)-1)&0x55555555 | m&0xaaaaaaaa
}

func XMinus64(m uint64) uint64 {
	return ((m&0x5555555555555555)-1)&0x5555555555555555 | m&0xaaaaaaaaaaaaaaaa
}

// XPlus8 returns the code of the (x+1, y) neighbor.
func XPlus8(m uint8) uint8 {
	return ((m|0xaa)+1)&0x55 | m&0xaa
}

func XPlus16(m uint16) uint16 {
	return ((m|0xaaaa)+1)&0x5555 | m&0xaaaa
}

func XPlus32(m uint32) uint32 {
	return ((m|0xaaaaaaaa)+1)&0x55555555 | m&0xaaaaaaaa
}

func XPlus64(m uint64) uint64 {
	return ((m|0xaaaaaaaaaaaaaaaa)+1)&0x5555555555555555 | m&0xaaaaaaaaaaaaaaaa
}

// YMinus8 returns the code of the (x, y-1) neighbor.
func YMinus8(m uint8) uint8 {
	return ((m&0xaa)-1)&0xaa | m&0x55
}

func YMinus16(m uint16) uint16 {
	return ((m&0xaaaa)-1)&0xaaaa | m&0x5555
}

func YMinus32(m uint32) uint32 {
	return ((m&0xaaaaaaaa)-1)&0xaaaaaaaa | m&0x55555555
}

func YMinus64(m uint64) uint64 {
	return ((m&0xaaaaaaaaaaaaaaaa)-1)&0xaaaaaaaaaaaaaaaa | m&0x5555555555555555
}

// YPlus8 returns the code of the (x, y+1) neighbor.
func YPlus8(m uint8) uint8 {
	return ((m|0x55)+1)&0xaa | m&0x55
}

func YPlus16(m uint16) uint16 {
	return ((m|0x5555)+1)&0xaaaa | m&0x5555
}

func YPlus32(m uint32) uint32 {
	return ((m|0x55555555)+1)&0xaaaaaaaa | m&0x55555555
}

func YPlus64(m uint64) uint64 {
	return ((m|0x5555555555555555)+1)&0xaaaaaaaaaaaaaaaa | m&0x5555555555555555
}
