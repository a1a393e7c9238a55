// Package morton builds, inverts and walks Morton codes (Z-order curve indices) in 2D and 3D.
//
// Encoding and decoding are the interleave merge and separate operations under their spatial
// names: x takes the even bits of a 2D code, y the odd bits. In 3D x, y and z take bits
// 0, 1 and 2 of every group of three.
//
// The neighbor functions step one coordinate of a code by one without decoding it. Coordinates
// wrap around: the x-1 neighbor of x = 0 has the largest x the code width can hold.
package morton

import (
	"github.com/pdok/bitlib/interleave"
	"github.com/pdok/bitlib/mathhelp"
)

func Encode8(x, y uint8) uint8 { return interleave.Merge8(x, y) }
func EncodeNWE8(x, y uint8) uint8 { return interleave.MergeNWE8(x, y) }
func Encode16(x, y uint16) uint16 { return interleave.Merge16(x, y) }
func EncodeNWE16(x, y uint16) uint16 { return interleave.MergeNWE16(x, y) }
func Encode32(x, y uint32) uint32 { return interleave.Merge32(x, y) }
func EncodeNWE32(x, y uint32) uint32 { return interleave.MergeNWE32(x, y) }
func Encode64(x, y uint64) uint64 { return interleave.Merge64(x, y) }
func EncodeNWE64(x, y uint64) uint64 { return interleave.MergeNWE64(x, y) }
func Decode8(m uint8) (x, y uint8) { return interleave.Separate8(m) }
func DecodeNWE8(m uint8) (x, y uint8) { return interleave.SeparateNWE8(m) }
func Decode16(m uint16) (x, y uint16) { return interleave.Separate16(m) }
func DecodeNWE16(m uint16) (x, y uint16) { return interleave.SeparateNWE16(m) }
func Decode32(m uint32) (x, y uint32) { return interleave.Separate32(m) }
func DecodeNWE32(m uint32) (x, y uint32) { return interleave.SeparateNWE32(m) }
func Decode64(m uint64) (x, y uint64) { return interleave.Separate64(m) }
func DecodeNWE64(m uint64) (x, y uint64) { return interleave.SeparateNWE64(m) }

func Encode8x3(x, y, z uint8) uint8 { return interleave.Merge8x3(x, y, z) }
func Encode16x3(x, y, z uint16) uint16 { return interleave.Merge16x3(x, y, z) }
func Encode32x3(x, y, z uint32) uint32 { return interleave.Merge32x3(x, y, z) }
func Encode64x3(x, y, z uint64) uint64 { return interleave.Merge64x3(x, y, z) }
func Decode8x3(m uint8) (x, y, z uint8) { return interleave.Separate8x3(m) }
func Decode16x3(m uint16) (x, y, z uint16) { return interleave.Separate16x3(m) }
func Decode32x3(m uint32) (x, y, z uint32) { return interleave.Separate32x3(m) }
func Decode64x3(m uint64) (x, y, z uint64) { return interleave.Separate64x3(m) }

// Encode is the 2D Morton code of (x, y) for any code width.
func Encode[T mathhelp.Word](x, y T) T { return interleave.Merge(x, y) }

// Decode inverts Encode.
func Decode[T mathhelp.Word](m T) (x, y T) { return interleave.Separate(m) }

// Encode3 is the 3D Morton code of (x, y, z) for any code width.
func Encode3[T mathhelp.Word](x, y, z T) T { return interleave.Merge3(x, y, z) }

// Decode3 inverts Encode3.
func Decode3[T mathhelp.Word](m T) (x, y, z T) { return interleave.Separate3(m) }
