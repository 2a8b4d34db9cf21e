// Package frame resolves declarative cell frame shapes into drawable
// outlines.
//
// A [Spec] names a shape kind, a base cell size and shape-specific keyword
// parameters. [Resolve] checks the kind against the closed set of shapes the
// drawing backend supports and computes the effective geometry:
//
//   - rectangle, ellipse, circle, hexagon, octagon and diamond use the base
//     size unchanged;
//   - rounded-rectangle reads the corner pad from its "boxstyle" parameter
//     (for example "round,pad=0.1", default 0.3) and shrinks the drawn box by
//     2*pad on each axis, so the outer footprint including the rounded
//     corners matches the base size.
//
// The [Resolved.Build] constructor returns a backend-neutral [Shape]: a
// closed path of move, line and arc operations in data units.
//
//	r, err := frame.Resolve(frame.Spec{Shape: "rounded-rectangle"})
//	s := r.Build(layout.Point{X: 8, Y: -4})
package frame
