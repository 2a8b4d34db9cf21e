// Package table renders periodic table heat maps.
//
// # Overview
//
// A [Config] describes the table in four optional blocks:
//
//   - Frame: cell shape and size ([frame.Spec])
//   - Colors: border and fill rules ([styles.Spec])
//   - Labels: named element groups coloured on one channel ([styles.LabelGroup])
//   - Data: per-element property overrides ([element.Overrides])
//
// [New] validates the configuration and [Renderer.Render] composes the
// layout, frame and colour stages into a [Scene]: one frame per element
// batched in a single [Collection], one symbol text per element, and an
// optional legend, title and colour bars.
//
//	r, err := table.New(table.Config{
//	    Frame:  frame.Spec{Shape: "rounded-rectangle", KW: map[string]any{"boxstyle": "round,pad=0.1"}},
//	    Colors: styles.Spec{Background: styles.Gradient{Property: "electronegativity", Colorbar: true}},
//	})
//	scene, err := r.Render(table.RenderOptions{Title: "Electronegativity"})
//
// A Scene is a plain value. Drawing and encoding it is left to the [sink]
// package; the interactive terminal view lives in [preview].
//
// # Subpackages
//
//   - [layout]: grid positions and text anchors
//   - [frame]: shape factory
//   - [styles]: colour and legend resolution
//   - [sink]: SVG, PNG, JPEG, TIFF, PDF, EPS and JSON output
//   - [preview]: interactive terminal display
//
// [layout]: github.com/matzehuels/ptable/pkg/render/table/layout
// [frame]: github.com/matzehuels/ptable/pkg/render/table/frame
// [styles]: github.com/matzehuels/ptable/pkg/render/table/styles
// [sink]: github.com/matzehuels/ptable/pkg/render/table/sink
// [preview]: github.com/matzehuels/ptable/pkg/render/table/preview
package table
