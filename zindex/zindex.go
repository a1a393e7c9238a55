// Package zindex is a sparse multi-level grid of points keyed by Morton codes.
//
// Level l divides a square extent into 2^l by 2^l cells. A cell is identified by the Morton code
// of its column and row on its level, so the cell one level up is morton.Parent(z) and the four
// cells one level down are morton.Children(z). Only cells that contain at least one inserted point
// are stored.
//
// Cells:
//
//	|-------|
//	| 2 | 3 |
//	|-------|
//	| 0 | 1 |
//	|-------|
package zindex

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/go-spatial/geom"
	"github.com/go-spatial/geom/encoding/wkt"
	"golang.org/x/exp/maps"

	"github.com/pdok/bitlib/intgeom"
	"github.com/pdok/bitlib/mathhelp"
	"github.com/pdok/bitlib/morton"
)

// MaxLevel is the deepest level a 64 bit Morton code can address.
const MaxLevel = 32

const (
	xBits morton.Z = 0x5555555555555555
	yBits morton.Z = 0xaaaaaaaaaaaaaaaa
)

var (
	ErrOutsideGrid = errors.New("outside the grid")
	ErrLevel       = errors.New("invalid level")
)

type Level = uint

type Cell struct {
	Z        morton.Z
	Extent   intgeom.Extent // maxX and maxY are exclusive
	Centroid intgeom.Point
}

type Grid struct {
	extent       intgeom.Extent
	deepestLevel Level
	// Number of cells (in one direction) on the deepest level (= 2 ^ deepestLevel)
	deepestSize uint64
	deepestRes  intgeom.M
	cells       map[Level]map[morton.Z]Cell
}

// New creates an empty grid over a square extent, divided down to deepestLevel.
func New(extent geom.Extent, deepestLevel Level) (*Grid, error) {
	if deepestLevel > MaxLevel {
		return nil, fmt.Errorf("%w: deepest level %d exceeds %d", ErrLevel, deepestLevel, MaxLevel)
	}
	intExtent := intgeom.FromGeomExtent(extent)
	if intExtent.XSpan() <= 0 || intExtent.XSpan() != intExtent.YSpan() {
		return nil, fmt.Errorf("grid extent should be square and not empty: %v", extent)
	}
	deepestSize := uint64(mathhelp.Pow2(deepestLevel))
	deepestRes := intExtent.XSpan() / intgeom.M(deepestSize)
	if deepestRes == 0 {
		return nil, fmt.Errorf("%w: cells on level %d would be smaller than the precision", ErrLevel, deepestLevel)
	}
	return &Grid{
		extent:       intExtent,
		deepestLevel: deepestLevel,
		deepestSize:  deepestSize,
		deepestRes:   deepestRes,
		cells:        make(map[Level]map[morton.Z]Cell, deepestLevel+1),
	}, nil
}

func (g *Grid) DeepestLevel() Level {
	return g.deepestLevel
}

// Size returns the number of cells in one direction on a level.
func (g *Grid) Size(l Level) uint64 {
	return uint64(mathhelp.Pow2(l))
}

// InsertPolygon inserts all points from a Polygon
func (g *Grid) InsertPolygon(polygon geom.Polygon) error {
	for _, ring := range polygon.LinearRings() {
		for _, vertex := range ring {
			if err := g.InsertPoint(vertex); err != nil {
				return err
			}
		}
	}
	return nil
}

// InsertPoint inserts a Point by its absolute coord
func (g *Grid) InsertPoint(point geom.Point) error {
	intPoint := intgeom.FromGeomPoint(point)
	if !g.extent.ContainsPoint(intPoint) {
		return fmt.Errorf("%w: point %v", ErrOutsideGrid, point)
	}
	deepestX := uint64((intPoint.X() - g.extent.MinX()) / g.deepestRes)
	deepestY := uint64((intPoint.Y() - g.extent.MinY()) / g.deepestRes)
	// the integer resolution is rounded down, so the last row and column absorb the remainder
	deepestX = min(deepestX, g.deepestSize-1)
	deepestY = min(deepestY, g.deepestSize-1)
	return g.InsertCoord(deepestX, deepestY)
}

// InsertCoord inserts a Point by its x/y coord on the deepest level
func (g *Grid) InsertCoord(deepestX, deepestY uint64) error {
	if deepestX >= g.deepestSize || deepestY >= g.deepestSize {
		return fmt.Errorf("%w: coord (%v, %v) not in (0, %v; 0, %v)", ErrOutsideGrid, deepestX, deepestY, g.deepestSize, g.deepestSize)
	}
	z := morton.MustToZ(deepestX, deepestY)
	for l := g.deepestLevel; ; l-- {
		if g.cells[l] == nil {
			g.cells[l] = make(map[morton.Z]Cell)
		}
		if _, exists := g.cells[l][z]; exists {
			// all ancestors were added together with this cell
			break
		}
		g.cells[l][z] = g.newCell(l, z)
		if l == 0 {
			break
		}
		z = morton.Parent(z)
	}
	return nil
}

func (g *Grid) newCell(l Level, z morton.Z) Cell {
	x, y := morton.FromZ(z)
	span := intgeom.M(mathhelp.Pow2(g.deepestLevel-l)) * g.deepestRes
	minX := g.extent.MinX() + intgeom.M(x)*span
	minY := g.extent.MinY() + intgeom.M(y)*span
	return Cell{
		Z:        z,
		Extent:   intgeom.Extent{minX, minY, minX + span, minY + span},
		Centroid: intgeom.Point{minX + span/2, minY + span/2},
	}
}

// Contains reports whether the cell z on level l holds at least one point.
func (g *Grid) Contains(l Level, z morton.Z) bool {
	_, exists := g.cells[l][z]
	return exists
}

// Cell returns the occupied cell z on level l.
func (g *Grid) Cell(l Level, z morton.Z) (Cell, bool) {
	cell, exists := g.cells[l][z]
	return cell, exists
}

// Locate returns the code of the cell on level l that contains point, occupied or not.
func (g *Grid) Locate(l Level, point geom.Point) (morton.Z, error) {
	if l > g.deepestLevel {
		return 0, fmt.Errorf("%w: %d is deeper than %d", ErrLevel, l, g.deepestLevel)
	}
	intPoint := intgeom.FromGeomPoint(point)
	if !g.extent.ContainsPoint(intPoint) {
		return 0, fmt.Errorf("%w: point %v", ErrOutsideGrid, point)
	}
	span := intgeom.M(mathhelp.Pow2(g.deepestLevel-l)) * g.deepestRes
	maxCoord := g.Size(l) - 1
	x := min(uint64((intPoint.X()-g.extent.MinX())/span), maxCoord)
	y := min(uint64((intPoint.Y()-g.extent.MinY())/span), maxCoord)
	return morton.MustToZ(x, y), nil
}

// Neighbors returns the codes of the cells next to z on level l, in the order x-1, x+1, y-1, y+1.
// Cells beyond the edge of the grid are left out.
func (g *Grid) Neighbors(l Level, z morton.Z) []morton.Z {
	neighbors := make([]morton.Z, 0, 4)
	if z&xBits != 0 {
		neighbors = append(neighbors, morton.XMinus64(z))
	}
	if n := morton.XPlus64(z); inLevel(l, n, xBits) {
		neighbors = append(neighbors, n)
	}
	if z&yBits != 0 {
		neighbors = append(neighbors, morton.YMinus64(z))
	}
	if n := morton.YPlus64(z); inLevel(l, n, yBits) {
		neighbors = append(neighbors, n)
	}
	return neighbors
}

// inLevel reports whether n, an incremented code, did not step past the edge of level l.
// Below MaxLevel the step shows up as bits above the level; on MaxLevel it wraps the axis to 0.
func inLevel(l Level, n morton.Z, axis morton.Z) bool {
	if l >= MaxLevel {
		return n&axis != 0
	}
	return n>>(2*l) == 0
}

// OccupiedNeighbors returns the neighboring cells of z on level l that hold points.
func (g *Grid) OccupiedNeighbors(l Level, z morton.Z) []Cell {
	var cells []Cell
	for _, n := range g.Neighbors(l, z) {
		if cell, exists := g.cells[l][n]; exists {
			cells = append(cells, cell)
		}
	}
	return cells
}

// Children returns the occupied cells on level l+1 inside cell z on level l, in cell order.
func (g *Grid) Children(l Level, z morton.Z) []Cell {
	if l >= g.deepestLevel {
		return nil
	}
	var cells []Cell
	for _, c := range morton.Children(z) {
		if cell, exists := g.cells[l+1][c]; exists {
			cells = append(cells, cell)
		}
	}
	return cells
}

// Codes returns the codes of the occupied cells on level l in ascending (Z-order) order.
func (g *Grid) Codes(l Level) []morton.Z {
	codes := maps.Keys(g.cells[l])
	slices.Sort(codes)
	return codes
}

// ToWkt creates a WKT representation of the grid. For debugging/visualising.
func (g *Grid) ToWkt(writer io.Writer) error {
	levels := maps.Keys(g.cells)
	slices.Sort(levels)
	for _, level := range levels {
		for _, z := range g.Codes(level) {
			cell := g.cells[level][z]
			if err := wkt.Encode(writer, cell.Extent.ToGeomPolygon()); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(writer, "\n"); err != nil {
				return err
			}
			if level == g.deepestLevel {
				if err := wkt.Encode(writer, cell.Centroid.ToGeomPoint()); err != nil {
					return err
				}
				if _, err := fmt.Fprintf(writer, "\n"); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
