// Package render groups the periodic table renderer and its parts.
//
// # Overview
//
// Rendering is split into small packages that depend on each other in one
// direction only:
//
//   - [table/layout]: Cell positions and bounding boxes
//   - [table/frame]: Frame shapes (rectangle, rounded rectangle, circle, ...)
//   - [table/styles]: Border and fill colours, labels, gradients, legend
//   - [table]: Composes the above into a Scene
//   - [table/sink]: Draws a Scene with gonum vg and encodes it
//   - [table/preview]: Shows a Scene in the terminal
//
// A Scene is plain data. Sinks and the preview only read it, so one scene can
// be exported to several formats and previewed without rendering it again.
//
//	r, _ := table.New(cfg)
//	scene, _ := r.Render(table.RenderOptions{})
//	svg, _ := sink.RenderSVG(scene)
//	png, _ := sink.RenderPNG(scene, sink.WithDPI(300))
//
// [table]: github.com/matzehuels/ptable/pkg/render/table
// [table/layout]: github.com/matzehuels/ptable/pkg/render/table/layout
// [table/frame]: github.com/matzehuels/ptable/pkg/render/table/frame
// [table/styles]: github.com/matzehuels/ptable/pkg/render/table/styles
// [table/sink]: github.com/matzehuels/ptable/pkg/render/table/sink
// [table/preview]: github.com/matzehuels/ptable/pkg/render/table/preview
package render
