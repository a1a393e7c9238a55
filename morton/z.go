package morton

import (
	"fmt"

	"github.com/pdok/bitlib/interleave"
)

// Z is a 2D Morton code of two coordinates of at most 32 bits.
type Z = uint64

// Z3 is a 3D Morton code of coordinates of at most 22 (x) and 21 (y, z) bits.
type Z3 = uint64

// ToZ interleaves x and y into a Z. ok is false when a coordinate does not fit in 32 bits,
// in which case z is not meaningful.
func ToZ(x, y uint64) (z Z, ok bool) {
	ok = interleave.FitsHalf(x) && interleave.FitsHalf(y)
	return Encode64(x, y), ok
}

func MustToZ(x, y uint64) Z {
	z, ok := ToZ(x, y)
	if !ok {
		panic(fmt.Errorf(`cannot make Z out of %v and %v`, x, y))
	}
	return z
}

func FromZ(z Z) (x, y uint64) {
	return Decode64(z)
}

// ToZ3 interleaves x, y and z into a Z3. ok is false when a coordinate does not fit its component.
func ToZ3(x, y, z uint64) (m Z3, ok bool) {
	ok = interleave.FitsThird(x, 0) && interleave.FitsThird(y, 1) && interleave.FitsThird(z, 2)
	return Encode64x3(x, y, z), ok
}

func MustToZ3(x, y, z uint64) Z3 {
	m, ok := ToZ3(x, y, z)
	if !ok {
		panic(fmt.Errorf(`cannot make Z3 out of %v, %v and %v`, x, y, z))
	}
	return m
}

func FromZ3(m Z3) (x, y, z uint64) {
	return Decode64x3(m)
}

// Quadtree and octree navigation. One tree level is one bit per axis, so a level up drops the
// lowest 2 (or 3) bits of the code and a level down appends them.
//
// Quadrants:
//
//	|-------|
//	| 2 | 3 |
//	|-------|
//	| 0 | 1 |
//	|-------|

// Parent returns the code of the quadrant one level up that contains z.
func Parent(z Z) Z {
	return z >> 2
}

// Children returns the codes of the four quadrants one level down, in quadrant order.
func Children(z Z) [4]Z {
	c := z << 2
	return [4]Z{c, c | 0b01, c | 0b10, c | 0b11}
}

// Quadrant returns which child of its parent z is. Bit 0 is set for right, bit 1 for top.
func Quadrant(z Z) int {
	return int(z & 0b11)
}

// Parent3 returns the code of the octant one level up that contains m.
func Parent3(m Z3) Z3 {
	return m >> 3
}

// Children3 returns the codes of the eight octants one level down. Bit 0 of the index is x, bit 1 y, bit 2 z.
func Children3(m Z3) [8]Z3 {
	c := m << 3
	var children [8]Z3
	for i := range children {
		children[i] = c | Z3(i)
	}
	return children
}

// Octant returns which child of its parent m is.
func Octant(m Z3) int {
	return int(m & 0b111)
}
