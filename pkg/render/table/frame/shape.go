package frame

import (
	"math"

	"github.com/matzehuels/ptable/pkg/render/table/layout"
)

// ellipseSegments is the number of line segments approximating an ellipse.
const ellipseSegments = 72

// Op is a path operation.
type Op int

const (
	MoveTo Op = iota
	LineTo
	ArcTo
	Close
)

func (o Op) String() string {
	switch o {
	case MoveTo:
		return "move"
	case LineTo:
		return "line"
	case ArcTo:
		return "arc"
	case Close:
		return "close"
	}
	return "unknown"
}

// PathOp is one step of a shape outline. For ArcTo, Point is the arc centre
// and Start and Sweep are angles in radians, counter-clockwise.
type PathOp struct {
	Op     Op
	Point  layout.Point
	Radius float64
	Start  float64
	Sweep  float64
}

// Shape is a closed outline in data units.
type Shape struct {
	Kind   Kind
	Path   []PathOp
	Box    layout.Rect  // Outer footprint
	Center layout.Point // Visual centre
}

func rect(origin layout.Point, w, h float64) layout.Rect {
	return layout.Rect{Min: origin, Max: layout.Point{X: origin.X + w, Y: origin.Y + h}}
}

func buildRectangle(r Resolved, o layout.Point) Shape {
	w, h := r.Params[0], r.Params[1]
	return Shape{
		Kind: r.Kind,
		Path: []PathOp{
			{Op: MoveTo, Point: o},
			{Op: LineTo, Point: layout.Point{X: o.X + w, Y: o.Y}},
			{Op: LineTo, Point: layout.Point{X: o.X + w, Y: o.Y + h}},
			{Op: LineTo, Point: layout.Point{X: o.X, Y: o.Y + h}},
			{Op: Close},
		},
		Box:    rect(o, w, h),
		Center: layout.Point{X: o.X + w/2, Y: o.Y + h/2},
	}
}

// buildRounded anchors the shrunk box at origin; the corner arcs extend pad
// beyond it on every side.
func buildRounded(r Resolved, o layout.Point) Shape {
	w, h, p := r.Params[0], r.Params[1], r.Pad
	x0, y0, x1, y1 := o.X, o.Y, o.X+w, o.Y+h
	return Shape{
		Kind: r.Kind,
		Path: []PathOp{
			{Op: MoveTo, Point: layout.Point{X: x0, Y: y0 - p}},
			{Op: LineTo, Point: layout.Point{X: x1, Y: y0 - p}},
			{Op: ArcTo, Point: layout.Point{X: x1, Y: y0}, Radius: p, Start: -math.Pi / 2, Sweep: math.Pi / 2},
			{Op: LineTo, Point: layout.Point{X: x1 + p, Y: y1}},
			{Op: ArcTo, Point: layout.Point{X: x1, Y: y1}, Radius: p, Start: 0, Sweep: math.Pi / 2},
			{Op: LineTo, Point: layout.Point{X: x0, Y: y1 + p}},
			{Op: ArcTo, Point: layout.Point{X: x0, Y: y1}, Radius: p, Start: math.Pi / 2, Sweep: math.Pi / 2},
			{Op: LineTo, Point: layout.Point{X: x0 - p, Y: y0}},
			{Op: ArcTo, Point: layout.Point{X: x0, Y: y0}, Radius: p, Start: math.Pi, Sweep: math.Pi / 2},
			{Op: Close},
		},
		Box: layout.Rect{
			Min: layout.Point{X: x0 - p, Y: y0 - p},
			Max: layout.Point{X: x1 + p, Y: y1 + p},
		},
		Center: layout.Point{X: (x0 + x1) / 2, Y: (y0 + y1) / 2},
	}
}

func buildCircle(r Resolved, o layout.Point) Shape {
	w, h := r.Params[0], r.Params[1]
	rad := math.Min(w, h) / 2
	c := layout.Point{X: o.X + w/2, Y: o.Y + h/2}
	return Shape{
		Kind: r.Kind,
		Path: []PathOp{
			{Op: MoveTo, Point: layout.Point{X: c.X + rad, Y: c.Y}},
			{Op: ArcTo, Point: c, Radius: rad, Start: 0, Sweep: 2 * math.Pi},
			{Op: Close},
		},
		Box: layout.Rect{
			Min: layout.Point{X: c.X - rad, Y: c.Y - rad},
			Max: layout.Point{X: c.X + rad, Y: c.Y + rad},
		},
		Center: c,
	}
}

func buildEllipse(r Resolved, o layout.Point) Shape {
	s := polygon(r, o, ellipseSegments, 0)
	s.Box = rect(o, r.Params[0], r.Params[1])
	return s
}

func polygonBuilder(n int, phase float64) builder {
	return func(r Resolved, o layout.Point) Shape { return polygon(r, o, n, phase) }
}

// polygon inscribes n vertices on the ellipse filling the cell box, starting
// at angle phase.
func polygon(r Resolved, o layout.Point, n int, phase float64) Shape {
	w, h := r.Params[0], r.Params[1]
	c := layout.Point{X: o.X + w/2, Y: o.Y + h/2}
	path := make([]PathOp, 0, n+1)
	var box layout.Rect
	for i := range n {
		a := phase + 2*math.Pi*float64(i)/float64(n)
		p := layout.Point{X: c.X + w/2*math.Cos(a), Y: c.Y + h/2*math.Sin(a)}
		op := LineTo
		if i == 0 {
			op = MoveTo
			box = layout.Rect{Min: p, Max: p}
		}
		path = append(path, PathOp{Op: op, Point: p})
		box = box.Union(layout.Rect{Min: p, Max: p})
	}
	path = append(path, PathOp{Op: Close})
	return Shape{Kind: r.Kind, Path: path, Box: box, Center: c}
}
