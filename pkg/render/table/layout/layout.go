package layout

import (
	"math"

	"github.com/matzehuels/ptable/pkg/element"
)

// TextInset is the fraction of the cell size by which the text anchor moves
// toward the origin for rounded shapes.
const TextInset = 0.10

// Point is a position in data units.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Rect is an axis-aligned rectangle in data units.
type Rect struct {
	Min, Max Point
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Union returns the smallest rectangle containing r and o. An empty r is
// treated as absent.
func (r Rect) Union(o Rect) Rect {
	if r == (Rect{}) {
		return o
	}
	return Rect{
		Min: Point{math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)},
		Max: Point{math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Positions returns the lower-left cell corner for every element, keyed by
// atomic number.
func Positions(elements []element.Element, cellW, cellH float64) map[int]Point {
	pos := make(map[int]Point, len(elements))
	for _, e := range elements {
		pos[e.Z] = Point{X: float64(e.Group) * cellW, Y: float64(-e.Row) * cellH}
	}
	return pos
}

// TextOffset returns the symbol anchor relative to a cell's origin: the cell
// centre, shifted inward by [TextInset] of the cell size for rounded shapes.
func TextOffset(cellW, cellH float64, rounded bool) Point {
	f := 0.5
	if rounded {
		f -= TextInset
	}
	return Point{X: f * cellW, Y: f * cellH}
}

// Bounds returns the extent of all cells whose origins are in positions.
func Bounds(positions map[int]Point, cellW, cellH float64) Rect {
	var r Rect
	for _, p := range positions {
		r = r.Union(Rect{Min: p, Max: Point{p.X + cellW, p.Y + cellH}})
	}
	return r
}
