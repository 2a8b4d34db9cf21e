package sink

import (
	"encoding/json"

	"github.com/matzehuels/ptable/pkg/errors"
	"github.com/matzehuels/ptable/pkg/render/table"
	"github.com/matzehuels/ptable/pkg/render/table/styles"
)

type jsonOutput struct {
	Width     float64               `json:"width"`
	Height    float64               `json:"height"`
	Bounds    [4]float64            `json:"bounds"`
	Frame     table.FrameInfo       `json:"frame"`
	Cells     []jsonCell            `json:"cells"`
	Legend    *jsonLegend           `json:"legend,omitempty"`
	Title     *jsonTitle            `json:"title,omitempty"`
	Colorbars []styles.GradientInfo `json:"colorbars,omitempty"`
}

type jsonCell struct {
	Z      int        `json:"z"`
	Symbol string     `json:"symbol"`
	Group  int        `json:"group"`
	Row    int        `json:"row"`
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Box    [4]float64 `json:"box"`
	Edge   string     `json:"edge"`
	Face   string     `json:"face"`
	TextX  float64    `json:"text_x"`
	TextY  float64    `json:"text_y"`
	Text   string     `json:"text_color"`
}

type jsonLegend struct {
	Loc      string               `json:"loc"`
	Anchor   [2]float64           `json:"anchor"`
	FontSize float64              `json:"font_size"`
	Entries  []styles.LegendEntry `json:"entries"`
}

type jsonTitle struct {
	Text     string  `json:"text"`
	FontSize float64 `json:"font_size"`
}

// RenderJSON exports the scene geometry and colours. Boxes are
// [min_x, min_y, max_x, max_y] in data units.
func RenderJSON(scene *table.Scene) ([]byte, error) {
	if scene == nil {
		return nil, errors.New(errors.ErrCodeInternal, "nil scene")
	}
	out := jsonOutput{
		Width:     scene.Figure[0],
		Height:    scene.Figure[1],
		Bounds:    [4]float64{scene.Bounds.Min.X, scene.Bounds.Min.Y, scene.Bounds.Max.X, scene.Bounds.Max.Y},
		Frame:     scene.Frame,
		Cells:     make([]jsonCell, len(scene.Cells)),
		Colorbars: scene.Colorbars,
	}
	for i, c := range scene.Cells {
		box := scene.Frames.Shapes[i].Box
		txt := scene.Texts[i]
		out.Cells[i] = jsonCell{
			Z: c.Z, Symbol: c.Symbol,
			Group: c.Group, Row: c.Row,
			X: c.Origin.X, Y: c.Origin.Y,
			Box:  [4]float64{box.Min.X, box.Min.Y, box.Max.X, box.Max.Y},
			Edge: c.Edge, Face: c.Face,
			TextX: txt.Pos.X, TextY: txt.Pos.Y,
			Text: txt.Color,
		}
	}
	if lg := scene.Legend; lg != nil {
		out.Legend = &jsonLegend{
			Loc:      lg.Loc,
			Anchor:   [2]float64{lg.Anchor.X, lg.Anchor.Y},
			FontSize: lg.FontSize,
			Entries:  lg.Entries,
		}
	}
	if t := scene.Title; t != nil {
		out.Title = &jsonTitle{Text: t.Text, FontSize: t.FontSize}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode scene")
	}
	return data, nil
}
