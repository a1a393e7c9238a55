package morton

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdok/bitlib/interleave"
)

func Test_ToZ(t *testing.T) {
	tests := []struct {
		x     uint64
		y     uint64
		z     Z
		notOK bool
	}{
		{x: 0b0, y: 0b0, z: 0b0},
		{x: 0b1, y: 0b1, z: 0b11},
		{x: 0b11, y: 0b0, z: 0b0101},
		{x: 0b0, y: 0b11, z: 0b1010},
		{x: 0b1111111111111111, y: 0b0, z: 0b01010101010101010101010101010101},
		{x: 0b11111111111111111111111111111111, y: 0b0, z: 0b0101010101010101010101010101010101010101010101010101010101010101},
		{x: 0b100000000000000000000000000000000, notOK: true},
		{y: 0b100000000000000000000000000000000, notOK: true},
	}
	for _, tt := range tests {
		name := fmt.Sprintf(`ToZ(%b, %b)`, tt.x, tt.y)
		t.Run(name, func(t *testing.T) {
			got, ok := ToZ(tt.x, tt.y)
			if tt.notOK {
				require.False(t, ok)
				require.Panics(t, func() { MustToZ(tt.x, tt.y) })
			} else {
				require.True(t, ok)
				require.Equalf(t, tt.z, got, `%032b and %032b should interleave into: %064b, got: %064b`, tt.x, tt.y, tt.z, got)
			}
		})
	}
}

func Test_FromZ(t *testing.T) {
	tests := []struct {
		z Z
		x uint64
		y uint64
	}{
		{z: 0b0, x: 0b0, y: 0b0},
		{z: 0b11, x: 0b1, y: 0b1},
		{z: 0b0101, x: 0b11, y: 0b0},
		{z: 0b01010101010101010101010101010101, x: 0b1111111111111111, y: 0b0},
		{z: 0b0101010101010101010101010101010101010101010101010101010101010101, x: 0b11111111111111111111111111111111, y: 0b0},
		{z: 0b1010101010101010101010101010101010101010101010101010101010101010, x: 0b0, y: 0b11111111111111111111111111111111},
	}
	for _, tt := range tests {
		name := fmt.Sprintf(`FromZ(%b)`, tt.z)
		t.Run(name, func(t *testing.T) {
			gotX, gotY := FromZ(tt.z)
			require.Equalf(t, [2]uint64{tt.x, tt.y}, [2]uint64{gotX, gotY}, `%064b should deinterleave into: [%032b,%032b], got: [%032b,%032b]`, tt.z, tt.x, tt.y, gotX, gotY)
		})
	}
}

func Test_ToZ3(t *testing.T) {
	m, ok := ToZ3(0x3fffff, 0, 0)
	require.True(t, ok)
	assert.Equal(t, Z3(0x9249249249249249), m)
	_, ok = ToZ3(0, 0x200000, 0)
	assert.False(t, ok)
	assert.Panics(t, func() { MustToZ3(0, 0, 0x200000) })
	x, y, z := FromZ3(MustToZ3(0x3abcde, 0x1f0f0f, 0x0a5a5a))
	assert.Equal(t, [3]uint64{0x3abcde, 0x1f0f0f, 0x0a5a5a}, [3]uint64{x, y, z})
}

func TestAliases(t *testing.T) {
	assert.Equal(t, uint8(0x99), Encode8(0x05, 0x0a))
	assert.Equal(t, uint8(0x99), EncodeNWE8(0x05, 0x0a))
	assert.Equal(t, uint8(0xc7), Encode8x3(0x05, 0x05, 0x01))
	x, y := Decode8(0x99)
	assert.Equal(t, [2]uint8{0x05, 0x0a}, [2]uint8{x, y})
	a, b, c := Decode8x3(0xc7)
	assert.Equal(t, [3]uint8{0x05, 0x05, 0x01}, [3]uint8{a, b, c})

	r := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		n := r.Uint64()
		assert.Equal(t, interleave.Merge16(uint16(n)&0xff, uint16(n>>8)&0xff), Encode16(uint16(n)&0xff, uint16(n>>8)&0xff))
		assert.Equal(t, interleave.MergeNWE16(uint16(n)&0xff, uint16(n>>8)&0xff), EncodeNWE16(uint16(n)&0xff, uint16(n>>8)&0xff))
		assert.Equal(t, interleave.Merge32(uint32(n)&0xffff, uint32(n>>16)&0xffff), Encode32(uint32(n)&0xffff, uint32(n>>16)&0xffff))
		assert.Equal(t, interleave.Merge64(n&0xffffffff, n>>32), Encode64(n&0xffffffff, n>>32))
		assert.Equal(t, interleave.Merge64x3(n&0x3fffff, (n>>22)&0x1fffff, (n>>43)&0x1fffff), Encode64x3(n&0x3fffff, (n>>22)&0x1fffff, (n>>43)&0x1fffff))
		assert.Equal(t, interleave.Merge32x3(uint32(n)&0x7ff, uint32(n>>11)&0x7ff, uint32(n>>22)&0x3ff), Encode32x3(uint32(n)&0x7ff, uint32(n>>11)&0x7ff, uint32(n>>22)&0x3ff))

		gx, gy := Decode32(uint32(n))
		wx, wy := DecodeNWE32(uint32(n))
		assert.Equal(t, [2]uint32{wx, wy}, [2]uint32{gx, gy})
		gx64, gy64 := Decode64(n)
		wx64, wy64 := DecodeNWE64(n)
		assert.Equal(t, [2]uint64{wx64, wy64}, [2]uint64{gx64, gy64})
	}
	assert.Equal(t, uint32(0x898ea5b2), Encode(uint32(0x1234), uint32(0xabcd)))
	gx, gy := Decode(uint32(0x898ea5b2))
	assert.Equal(t, [2]uint32{0x1234, 0xabcd}, [2]uint32{gx, gy})
	assert.Equal(t, uint16(0x4924), Encode3(uint16(0), uint16(0), uint16(0x1f)))
	a16, b16, c16 := Decode3(uint16(0x2492))
	assert.Equal(t, [3]uint16{0, 0x1f, 0}, [3]uint16{a16, b16, c16})
}

func TestNeighborLiterals(t *testing.T) {
	tests := []struct {
		name string
		got  uint64
		want uint64
	}{
		{name: "x+1 of (5,10)", got: uint64(XPlus8(0x99)), want: 0x9c},
		{name: "x-1 of (5,10)", got: uint64(XMinus8(0x99)), want: 0x98},
		{name: "y+1 of (5,10)", got: uint64(YPlus8(0x99)), want: 0x9b},
		{name: "y-1 of (5,10)", got: uint64(YMinus8(0x99)), want: 0x93},
		{name: "x-1 wraps at 0", got: uint64(XMinus8(0x00)), want: 0x55},
		{name: "y-1 wraps at 0", got: uint64(YMinus16(0x0000)), want: 0xaaaa},
		{name: "x+1 wraps at max", got: XPlus64(0x5555555555555555), want: 0},
		{name: "y+1 wraps at max keeps x", got: uint64(YPlus32(0xffffffff)), want: 0x55555555},
		{name: "3d x-1 wraps at 0", got: uint64(XMinus8x3(0)), want: 0x49},
		{name: "3d y-1 wraps at 0", got: uint64(YMinus16x3(0)), want: 0x2492},
		{name: "3d z-1 wraps at 0", got: ZMinus64x3(0), want: 0x4924924924924924},
		{name: "3d z+1", got: uint64(ZPlus8x3(0)), want: 0x04},
		{name: "3d z+1 carries", got: uint64(ZPlus8x3(0x04)), want: 0x20},
		{name: "3d z+1 wraps at max", got: uint64(ZPlus8x3(0xff)), want: 0xdb},
		{name: "3d x+1 wraps at max", got: uint64(XPlus32x3(0x49249249)), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equalf(t, tt.want, tt.got, `want %#x, got %#x`, tt.want, tt.got)
		})
	}
}

func step(v, d, mask uint64) uint64 {
	return (v + d) & mask
}

const minus = ^uint64(0)

func TestNeighbors8And16(t *testing.T) {
	for i := 0; i <= 0xff; i++ {
		m := uint8(i)
		x, y := Decode8(m)
		checkDecoded8(t, XMinus8(m), uint8(step(uint64(x), minus, 0xf)), y)
		checkDecoded8(t, XPlus8(m), uint8(step(uint64(x), 1, 0xf)), y)
		checkDecoded8(t, YMinus8(m), x, uint8(step(uint64(y), minus, 0xf)))
		checkDecoded8(t, YPlus8(m), x, uint8(step(uint64(y), 1, 0xf)))

		a, b, c := Decode8x3(m)
		checkDecoded8x3(t, XMinus8x3(m), uint8(step(uint64(a), minus, 0x7)), b, c)
		checkDecoded8x3(t, XPlus8x3(m), uint8(step(uint64(a), 1, 0x7)), b, c)
		checkDecoded8x3(t, YMinus8x3(m), a, uint8(step(uint64(b), minus, 0x7)), c)
		checkDecoded8x3(t, YPlus8x3(m), a, uint8(step(uint64(b), 1, 0x7)), c)
		checkDecoded8x3(t, ZMinus8x3(m), a, b, uint8(step(uint64(c), minus, 0x3)))
		checkDecoded8x3(t, ZPlus8x3(m), a, b, uint8(step(uint64(c), 1, 0x3)))
	}
	for i := 0; i <= 0xffff; i++ {
		m := uint16(i)
		x, y := Decode16(m)
		requireDecoded(t, XMinus16(m), Decode16, (x-1)&0xff, y)
		requireDecoded(t, XPlus16(m), Decode16, (x+1)&0xff, y)
		requireDecoded(t, YMinus16(m), Decode16, x, (y-1)&0xff)
		requireDecoded(t, YPlus16(m), Decode16, x, (y+1)&0xff)

		a, b, c := Decode16x3(m)
		requireDecoded3(t, XMinus16x3(m), Decode16x3, (a-1)&0x3f, b, c)
		requireDecoded3(t, XPlus16x3(m), Decode16x3, (a+1)&0x3f, b, c)
		requireDecoded3(t, YMinus16x3(m), Decode16x3, a, (b-1)&0x1f, c)
		requireDecoded3(t, YPlus16x3(m), Decode16x3, a, (b+1)&0x1f, c)
		requireDecoded3(t, ZMinus16x3(m), Decode16x3, a, b, (c-1)&0x1f)
		requireDecoded3(t, ZPlus16x3(m), Decode16x3, a, b, (c+1)&0x1f)
	}
}

func TestNeighborsSampled(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for i := 0; i < 50000; i++ {
		m32 := r.Uint32()
		x32, y32 := Decode32(m32)
		requireDecoded(t, XMinus32(m32), Decode32, (x32-1)&0xffff, y32)
		requireDecoded(t, XPlus32(m32), Decode32, (x32+1)&0xffff, y32)
		requireDecoded(t, YMinus32(m32), Decode32, x32, (y32-1)&0xffff)
		requireDecoded(t, YPlus32(m32), Decode32, x32, (y32+1)&0xffff)

		a32, b32, c32 := Decode32x3(m32)
		requireDecoded3(t, XMinus32x3(m32), Decode32x3, (a32-1)&0x7ff, b32, c32)
		requireDecoded3(t, XPlus32x3(m32), Decode32x3, (a32+1)&0x7ff, b32, c32)
		requireDecoded3(t, YMinus32x3(m32), Decode32x3, a32, (b32-1)&0x7ff, c32)
		requireDecoded3(t, YPlus32x3(m32), Decode32x3, a32, (b32+1)&0x7ff, c32)
		requireDecoded3(t, ZMinus32x3(m32), Decode32x3, a32, b32, (c32-1)&0x3ff)
		requireDecoded3(t, ZPlus32x3(m32), Decode32x3, a32, b32, (c32+1)&0x3ff)

		m64 := r.Uint64()
		x64, y64 := Decode64(m64)
		requireDecoded(t, XMinus64(m64), Decode64, (x64-1)&0xffffffff, y64)
		requireDecoded(t, XPlus64(m64), Decode64, (x64+1)&0xffffffff, y64)
		requireDecoded(t, YMinus64(m64), Decode64, x64, (y64-1)&0xffffffff)
		requireDecoded(t, YPlus64(m64), Decode64, x64, (y64+1)&0xffffffff)

		a64, b64, c64 := Decode64x3(m64)
		requireDecoded3(t, XMinus64x3(m64), Decode64x3, (a64-1)&0x3fffff, b64, c64)
		requireDecoded3(t, XPlus64x3(m64), Decode64x3, (a64+1)&0x3fffff, b64, c64)
		requireDecoded3(t, YMinus64x3(m64), Decode64x3, a64, (b64-1)&0x1fffff, c64)
		requireDecoded3(t, YPlus64x3(m64), Decode64x3, a64, (b64+1)&0x1fffff, c64)
		requireDecoded3(t, ZMinus64x3(m64), Decode64x3, a64, b64, (c64-1)&0x1fffff)
		requireDecoded3(t, ZPlus64x3(m64), Decode64x3, a64, b64, (c64+1)&0x1fffff)
	}
}

func checkDecoded8(t *testing.T, m, wantX, wantY uint8) {
	t.Helper()
	requireDecoded(t, m, Decode8, wantX, wantY)
}

func checkDecoded8x3(t *testing.T, m, wantX, wantY, wantZ uint8) {
	t.Helper()
	requireDecoded3(t, m, Decode8x3, wantX, wantY, wantZ)
}

func requireDecoded[T uint8 | uint16 | uint32 | uint64](t *testing.T, m T, decode func(T) (T, T), wantX, wantY T) {
	t.Helper()
	x, y := decode(m)
	require.Equalf(t, [2]T{wantX, wantY}, [2]T{x, y}, "decoding %#x", m)
}

func requireDecoded3[T uint8 | uint16 | uint32 | uint64](t *testing.T, m T, decode func(T) (T, T, T), wantX, wantY, wantZ T) {
	t.Helper()
	x, y, z := decode(m)
	require.Equalf(t, [3]T{wantX, wantY, wantZ}, [3]T{x, y, z}, "decoding %#x", m)
}

func TestTreeNavigation(t *testing.T) {
	z := MustToZ(5, 10)
	for q, child := range Children(z) {
		assert.Equal(t, z, Parent(child))
		assert.Equal(t, q, Quadrant(child))
		x, y := FromZ(child)
		assert.Equal(t, [2]uint64{5*2 + uint64(q&0b01), 10*2 + uint64(q>>1)}, [2]uint64{x, y})
	}

	m := MustToZ3(3, 4, 5)
	for o, child := range Children3(m) {
		assert.Equal(t, m, Parent3(child))
		assert.Equal(t, o, Octant(child))
		x, y, z := FromZ3(child)
		assert.Equal(t, [3]uint64{3*2 + uint64(o&1), 4*2 + uint64(o>>1&1), 5*2 + uint64(o>>2)}, [3]uint64{x, y, z})
	}
}

var sink uint64

func BenchmarkXPlus64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = XPlus64(sink)
	}
}

func BenchmarkXPlus64Roundtrip(b *testing.B) {
	for i := 0; i < b.N; i++ {
		x, y := Decode64(sink)
		sink = Encode64((x+1)&0xffffffff, y)
	}
}
