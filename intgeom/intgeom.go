// Package intgeom holds int64 fixed-precision counterparts of the go-spatial/geom types that the
// Morton grid works with. Grid arithmetic on int64 ordinates divides extents into cells without
// floating point drift.
//
// Ordinates keep Precision decimal digits, which leaves 9 digits for whole units of the SRS.
package intgeom

import (
	"math"
)

const (
	Precision = 10
	Half      = 5000000000
	One       = 10000000000
)

// M is short for measure: an ordinate or distance stored as an int64 scaled by 10^Precision.
type M = int64

// ToGeomOrd turns an ordinate represented as an integer back into a floating point
func ToGeomOrd(o M) float64 {
	if o == 0 {
		return 0.0
	}
	return float64(o) / math.Pow(10, Precision)
}

// FromGeomOrd turns a floating point ordinate into a representation by an integer
func FromGeomOrd(o float64) M {
	return M(math.Round(o * math.Pow(10, Precision)))
}
