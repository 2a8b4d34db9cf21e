// Package sink draws and encodes periodic table scenes.
//
// # Overview
//
// A "sink" transforms a [table.Scene] into a final output format. Vector and
// raster formats are drawn through the gonum vg canvas interface, so every
// format shares one drawing routine ([Draw]):
//
//   - SVG ([RenderSVG]) via vgsvg
//   - PNG, JPEG, TIFF ([RenderPNG], [RenderJPEG], [RenderTIFF]) via vgimg
//   - PDF ([RenderPDF]) via vgpdf
//   - EPS ([RenderEPS]) via vgeps
//   - JSON ([RenderJSON]): the scene geometry for external tools
//
// The table is fitted into the figure keeping equal axes, without drawing
// axes. Symbols are set in Liberation Serif, which is metric-compatible with
// Times New Roman; [WithFont] selects the Sans or Mono variants.
//
//	svg, err := sink.RenderSVG(scene)
//	png, err := sink.RenderPNG(scene, sink.WithDPI(300), sink.WithTransparent())
//
// # Files
//
// [Export] picks the format from the file extension:
//
//	err := sink.Export("table.pdf", scene, false)
//
// Unless transparent output is requested, a white background is painted
// first. JPEG has no alpha channel and is always opaque.
//
// [table.Scene]: github.com/matzehuels/ptable/pkg/render/table.Scene
package sink
