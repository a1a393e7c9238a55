package intgeom

import (
	"github.com/go-spatial/geom"
)

// Point describes a simple 2D point
type Point [2]M

func (p Point) ToGeomPoint() geom.Point {
	return geom.Point{
		ToGeomOrd(p[0]),
		ToGeomOrd(p[1]),
	}
}

func FromGeomPoint(p geom.Point) Point {
	return Point{
		FromGeomOrd(p[0]),
		FromGeomOrd(p[1]),
	}
}

// X is the x coordinate of a point in the projection
func (p Point) X() M { return p[0] }

// Y is the y coordinate of a point in the projection
func (p Point) Y() M { return p[1] }
