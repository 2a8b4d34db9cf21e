package table

import (
	"github.com/matzehuels/ptable/pkg/render/table/frame"
	"github.com/matzehuels/ptable/pkg/render/table/layout"
	"github.com/matzehuels/ptable/pkg/render/table/styles"
)

// Scene is the drawable result of one render call.
type Scene struct {
	Figure    [2]float64 // Width and height in inches
	Bounds    layout.Rect
	Frame     FrameInfo
	Cells     []Cell // Ordered by atomic number
	Frames    Collection
	Texts     []Text
	Legend    *Legend
	Title     *Title
	Colorbars []styles.GradientInfo
}

// FrameInfo records the resolved frame geometry shared by all cells.
type FrameInfo struct {
	Kind      frame.Kind `json:"kind"`
	Base      [2]float64 `json:"base"`
	Params    [2]float64 `json:"params"`
	Pad       float64    `json:"pad,omitempty"`
	LineWidth float64    `json:"line_width"`
}

// Cell is the per-element summary of a scene.
type Cell struct {
	Z      int
	Symbol string
	Group  int
	Row    int
	Origin layout.Point
	Edge   string
	Face   string
}

// Collection batches all frame outlines with their paint. Edges[i] and
// Faces[i] belong to Shapes[i].
type Collection struct {
	Shapes    []frame.Shape
	Edges     []string
	Faces     []string
	LineWidth float64
}

// Len returns the number of shapes.
func (c Collection) Len() int { return len(c.Shapes) }

// Text is a symbol label centred on Pos.
type Text struct {
	Z     int
	Value string
	Pos   layout.Point
	Color string
}

// Legend is the box listing label groups.
type Legend struct {
	Entries  []styles.LegendEntry
	Loc      string
	Anchor   layout.Point // Axes fraction of the anchor point
	FontSize float64      // Points
}

// Title is the figure heading.
type Title struct {
	Text     string
	FontSize float64
}

// Cell returns the cell for atomic number z.
func (s *Scene) Cell(z int) (Cell, bool) {
	if z < 1 || z > len(s.Cells) {
		return Cell{}, false
	}
	return s.Cells[z-1], true
}

// CellAt returns the cell at a display group and row.
func (s *Scene) CellAt(group, row int) (Cell, bool) {
	for _, c := range s.Cells {
		if c.Group == group && c.Row == row {
			return c, true
		}
	}
	return Cell{}, false
}
