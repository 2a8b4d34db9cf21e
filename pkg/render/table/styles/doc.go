// Package styles resolves per-cell border and fill colours and the legend
// for a periodic table.
//
// # Channels
//
// A table has two colour channels, [Frame] (cell borders) and [Background]
// (cell fills). Each is one of three variants:
//
//   - [Flat]: one colour for all 103 cells
//   - [Explicit]: one colour per element, indexed by Z-1
//   - [Gradient]: a numeric element property mapped through a colormap
//
// # Labels
//
// A [LabelGroup] colours a named set of elements on one channel and adds a
// legend entry. Groups without an explicit colour take the next colour of the
// resolver palette, counted per channel. A gradient channel cannot carry
// labels.
//
//	res, legend, err := styles.Resolve(styles.Spec{
//	    Background: styles.Flat{Color: "white"},
//	}, []styles.LabelGroup{
//	    {Channel: styles.Background, Name: "Alkali", Elements: refs("Na", "K")},
//	}, element.Default())
//
// # Colours
//
// Colour strings are CSS/X11 names, "#rgb", "#rrggbb", "#rrggbbaa", "C0".."C9"
// and "tab:blue" style palette names, or "none" for no paint.
package styles
