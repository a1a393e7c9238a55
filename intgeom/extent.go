package intgeom

import (
	"github.com/go-spatial/geom"
)

// Extent represents the minx, miny, maxx and maxy.
// Grid cells treat the max edges as exclusive.
type Extent [4]M

func (e Extent) ToGeomExtent() geom.Extent {
	return geom.Extent{
		ToGeomOrd(e[0]),
		ToGeomOrd(e[1]),
		ToGeomOrd(e[2]),
		ToGeomOrd(e[3]),
	}
}

// ToGeomPolygon returns the extent as a closed counterclockwise ring starting at (minx, miny).
func (e Extent) ToGeomPolygon() geom.Polygon {
	minX, minY, maxX, maxY := ToGeomOrd(e[0]), ToGeomOrd(e[1]), ToGeomOrd(e[2]), ToGeomOrd(e[3])
	return geom.Polygon{{
		{minX, minY},
		{maxX, minY},
		{maxX, maxY},
		{minX, maxY},
	}}
}

func FromGeomExtent(e geom.Extent) Extent {
	return Extent{
		FromGeomOrd(e[0]),
		FromGeomOrd(e[1]),
		FromGeomOrd(e[2]),
		FromGeomOrd(e[3]),
	}
}

// MaxX is the larger of the x values.
func (e Extent) MaxX() M {
	return e[2]
}

// MinX  is the smaller of the x values.
func (e Extent) MinX() M {
	return e[0]
}

// MaxY is the larger of the y values.
func (e Extent) MaxY() M {
	return e[3]
}

// MinY is the smaller of the y values.
func (e Extent) MinY() M {
	return e[1]
}

// XSpan is the distance of the Extent in X
func (e Extent) XSpan() M {
	return e[2] - e[0]
}

// YSpan is the distance of the Extent in Y
func (e Extent) YSpan() M {
	return e[3] - e[1]
}

// ContainsPoint checks whether a point lies in the extent, excluding the right and top edges.
func (e Extent) ContainsPoint(p Point) bool {
	return e.MinX() <= p[0] && p[0] < e.MaxX() &&
		e.MinY() <= p[1] && p[1] < e.MaxY()
}
