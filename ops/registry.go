package ops

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/pdok/bitlib/interleave"
	"github.com/pdok/bitlib/mapslicehelp"
	"github.com/pdok/bitlib/mathhelp"
	"github.com/pdok/bitlib/morton"
	"github.com/pdok/bitlib/popcount"
)

// evalFunc computes the values of an operation on operands that fit its width.
type evalFunc func(args []uint64) []uint64

// byWidth holds one evalFunc per operand width.
type byWidth map[uint]evalFunc

type operation struct {
	arity        int
	usage        string
	precondition precondition
	variants     map[string]byWidth
}

// Variants lists the variants of the operation, default first.
func (o *operation) Variants() []string {
	variants := make([]string, 0, len(o.variants))
	for _, v := range []string{VariantDefault, VariantMul, VariantIter, VariantNWE} {
		if _, ok := o.variants[v]; ok {
			variants = append(variants, v)
		}
	}
	return variants
}

var registry = newRegistry()

//nolint:funlen
func newRegistry() *orderedmap.OrderedMap[string, *operation] {
	r := orderedmap.New[string, *operation]()

	r.Set("popcount", &operation{arity: 1, usage: "number of set bits", variants: map[string]byWidth{
		VariantDefault: counts(popcount.Count8, popcount.Count16, popcount.Count32, popcount.Count64),
		VariantMul:     counts(popcount.CountMul8, popcount.CountMul16, popcount.CountMul32, popcount.CountMul64),
		VariantIter:    counts(popcount.CountIter8, popcount.CountIter16, popcount.CountIter32, popcount.CountIter64),
	}})

	r.Set("scatter", &operation{arity: 1, usage: "spread bit i to bit 2i", precondition: halves, variants: map[string]byWidth{
		VariantDefault: unaries(interleave.Scatter8, interleave.Scatter16, interleave.Scatter32, interleave.Scatter64),
	}})
	r.Set("gather", &operation{arity: 1, usage: "collect bit 2i into bit i", precondition: scattered, variants: map[string]byWidth{
		VariantDefault: unaries(interleave.Gather8, interleave.Gather16, interleave.Gather32, interleave.Gather64),
	}})
	r.Set("merge", &operation{arity: 2, usage: "interleave x (even bits) and y (odd bits)", precondition: halves, variants: map[string]byWidth{
		VariantDefault: binaries(interleave.Merge8, interleave.Merge16, interleave.Merge32, interleave.Merge64),
		VariantNWE:     binaries(interleave.MergeNWE8, interleave.MergeNWE16, interleave.MergeNWE32, interleave.MergeNWE64),
	}})
	r.Set("separate", &operation{arity: 1, usage: "split into even bits (x) and odd bits (y)", variants: map[string]byWidth{
		VariantDefault: splits(interleave.Separate8, interleave.Separate16, interleave.Separate32, interleave.Separate64),
		VariantNWE:     splits(interleave.SeparateNWE8, interleave.SeparateNWE16, interleave.SeparateNWE32, interleave.SeparateNWE64),
	}})

	r.Set("scatter3", &operation{arity: 1, usage: "spread bit i to bit 3i", precondition: thirds, variants: map[string]byWidth{
		VariantDefault: unaries(interleave.Scatter8x3, interleave.Scatter16x3, interleave.Scatter32x3, interleave.Scatter64x3),
	}})
	r.Set("gather3", &operation{arity: 1, usage: "collect bit 3i into bit i", precondition: scattered3, variants: map[string]byWidth{
		VariantDefault: unaries(interleave.Gather8x3, interleave.Gather16x3, interleave.Gather32x3, interleave.Gather64x3),
	}})
	r.Set("merge3", &operation{arity: 3, usage: "interleave x, y and z into bits 3i, 3i+1 and 3i+2", precondition: thirds, variants: map[string]byWidth{
		VariantDefault: ternaries(interleave.Merge8x3, interleave.Merge16x3, interleave.Merge32x3, interleave.Merge64x3),
	}})
	r.Set("separate3", &operation{arity: 1, usage: "split bits 3i, 3i+1 and 3i+2 into x, y and z", variants: map[string]byWidth{
		VariantDefault: splits3(interleave.Separate8x3, interleave.Separate16x3, interleave.Separate32x3, interleave.Separate64x3),
	}})

	r.Set("morton", &operation{arity: 2, usage: "2D Morton code of (x, y)", precondition: halves, variants: map[string]byWidth{
		VariantDefault: binaries(morton.Encode8, morton.Encode16, morton.Encode32, morton.Encode64),
		VariantNWE:     binaries(morton.EncodeNWE8, morton.EncodeNWE16, morton.EncodeNWE32, morton.EncodeNWE64),
	}})
	r.Set("invmorton", &operation{arity: 1, usage: "(x, y) of a 2D Morton code", variants: map[string]byWidth{
		VariantDefault: splits(morton.Decode8, morton.Decode16, morton.Decode32, morton.Decode64),
		VariantNWE:     splits(morton.DecodeNWE8, morton.DecodeNWE16, morton.DecodeNWE32, morton.DecodeNWE64),
	}})
	r.Set("morton3", &operation{arity: 3, usage: "3D Morton code of (x, y, z)", precondition: thirds, variants: map[string]byWidth{
		VariantDefault: ternaries(morton.Encode8x3, morton.Encode16x3, morton.Encode32x3, morton.Encode64x3),
	}})
	r.Set("invmorton3", &operation{arity: 1, usage: "(x, y, z) of a 3D Morton code", variants: map[string]byWidth{
		VariantDefault: splits3(morton.Decode8x3, morton.Decode16x3, morton.Decode32x3, morton.Decode64x3),
	}})

	neighbors := []struct {
		name, usage string
		f8          func(uint8) uint8
		f16         func(uint16) uint16
		f32         func(uint32) uint32
		f64         func(uint64) uint64
	}{
		{"xm", "2D code of the (x-1, y) neighbor", morton.XMinus8, morton.XMinus16, morton.XMinus32, morton.XMinus64},
		{"xp", "2D code of the (x+1, y) neighbor", morton.XPlus8, morton.XPlus16, morton.XPlus32, morton.XPlus64},
		{"ym", "2D code of the (x, y-1) neighbor", morton.YMinus8, morton.YMinus16, morton.YMinus32, morton.YMinus64},
		{"yp", "2D code of the (x, y+1) neighbor", morton.YPlus8, morton.YPlus16, morton.YPlus32, morton.YPlus64},
		{"xm3", "3D code of the (x-1, y, z) neighbor", morton.XMinus8x3, morton.XMinus16x3, morton.XMinus32x3, morton.XMinus64x3},
		{"xp3", "3D code of the (x+1, y, z) neighbor", morton.XPlus8x3, morton.XPlus16x3, morton.XPlus32x3, morton.XPlus64x3},
		{"ym3", "3D code of the (x, y-1, z) neighbor", morton.YMinus8x3, morton.YMinus16x3, morton.YMinus32x3, morton.YMinus64x3},
		{"yp3", "3D code of the (x, y+1, z) neighbor", morton.YPlus8x3, morton.YPlus16x3, morton.YPlus32x3, morton.YPlus64x3},
		{"zm3", "3D code of the (x, y, z-1) neighbor", morton.ZMinus8x3, morton.ZMinus16x3, morton.ZMinus32x3, morton.ZMinus64x3},
		{"zp3", "3D code of the (x, y, z+1) neighbor", morton.ZPlus8x3, morton.ZPlus16x3, morton.ZPlus32x3, morton.ZPlus64x3},
	}
	for _, n := range neighbors {
		r.Set(n.name, &operation{arity: 1, usage: n.usage, variants: map[string]byWidth{
			VariantDefault: unaries(n.f8, n.f16, n.f32, n.f64),
		}})
	}

	return r
}

// Names lists the operations in registration order.
func Names() []string {
	return mapslicehelp.OrderedMapKeys(registry)
}

// Describe returns the arity, usage line and variants of an operation.
func Describe(name string) (arity int, usage string, variants []string, ok bool) {
	op, ok := registry.Get(name)
	if !ok {
		return 0, "", nil, false
	}
	return op.arity, op.usage, op.Variants(), true
}

func unary[T mathhelp.Word](f func(T) T) evalFunc {
	return func(args []uint64) []uint64 {
		return []uint64{uint64(f(T(args[0])))}
	}
}

func unaries(f8 func(uint8) uint8, f16 func(uint16) uint16, f32 func(uint32) uint32, f64 func(uint64) uint64) byWidth {
	return byWidth{8: unary(f8), 16: unary(f16), 32: unary(f32), 64: unary(f64)}
}

func count[T mathhelp.Word](f func(T) int) evalFunc {
	return func(args []uint64) []uint64 {
		return []uint64{uint64(f(T(args[0])))}
	}
}

func counts(f8 func(uint8) int, f16 func(uint16) int, f32 func(uint32) int, f64 func(uint64) int) byWidth {
	return byWidth{8: count(f8), 16: count(f16), 32: count(f32), 64: count(f64)}
}

func binary[T mathhelp.Word](f func(T, T) T) evalFunc {
	return func(args []uint64) []uint64 {
		return []uint64{uint64(f(T(args[0]), T(args[1])))}
	}
}

func binaries(f8 func(uint8, uint8) uint8, f16 func(uint16, uint16) uint16, f32 func(uint32, uint32) uint32, f64 func(uint64, uint64) uint64) byWidth {
	return byWidth{8: binary(f8), 16: binary(f16), 32: binary(f32), 64: binary(f64)}
}

func ternary[T mathhelp.Word](f func(T, T, T) T) evalFunc {
	return func(args []uint64) []uint64 {
		return []uint64{uint64(f(T(args[0]), T(args[1]), T(args[2])))}
	}
}

func ternaries(f8 func(uint8, uint8, uint8) uint8, f16 func(uint16, uint16, uint16) uint16, f32 func(uint32, uint32, uint32) uint32, f64 func(uint64, uint64, uint64) uint64) byWidth {
	return byWidth{8: ternary(f8), 16: ternary(f16), 32: ternary(f32), 64: ternary(f64)}
}

func split[T mathhelp.Word](f func(T) (T, T)) evalFunc {
	return func(args []uint64) []uint64 {
		x, y := f(T(args[0]))
		return []uint64{uint64(x), uint64(y)}
	}
}

func splits(f8 func(uint8) (uint8, uint8), f16 func(uint16) (uint16, uint16), f32 func(uint32) (uint32, uint32), f64 func(uint64) (uint64, uint64)) byWidth {
	return byWidth{8: split(f8), 16: split(f16), 32: split(f32), 64: split(f64)}
}

func split3[T mathhelp.Word](f func(T) (T, T, T)) evalFunc {
	return func(args []uint64) []uint64 {
		x, y, z := f(T(args[0]))
		return []uint64{uint64(x), uint64(y), uint64(z)}
	}
}

func splits3(f8 func(uint8) (uint8, uint8, uint8), f16 func(uint16) (uint16, uint16, uint16), f32 func(uint32) (uint32, uint32, uint32), f64 func(uint64) (uint64, uint64, uint64)) byWidth {
	return byWidth{8: split3(f8), 16: split3(f16), 32: split3(f32), 64: split3(f64)}
}
