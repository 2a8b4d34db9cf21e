package sink

import (
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/ptable/pkg/errors"
	"github.com/matzehuels/ptable/pkg/render/table"
	"github.com/matzehuels/ptable/pkg/render/table/frame"
	"github.com/matzehuels/ptable/pkg/render/table/layout"
	"github.com/matzehuels/ptable/pkg/render/table/styles"
)

// Figure geometry as fractions of the shorter figure side, or of font sizes.
const (
	marginRatio      = 0.04
	titleSpacing     = 1.5
	symbolByHeight   = 0.42
	symbolByWidth    = 0.5
	colorbarHeight   = 0.035
	colorbarWidth    = 0.6
	colorbarFontSize = 10.0
	legendPadding    = 0.4 // in ems
	legendRowHeight  = 1.4 // in ems
	legendSwatchW    = 1.6 // in ems
	legendSwatchH    = 0.8 // in ems
)

var (
	white       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	legendFace  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xcc}
	legendEdge  = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	textDefault = color.NRGBA{A: 0xff}
)

// transform maps data units onto the canvas.
type transform struct {
	scale  float64
	dx, dy float64
	data   layout.Rect
}

func (t transform) pt(p layout.Point) vg.Point {
	return vg.Point{
		X: vg.Length(t.dx + (p.X-t.data.Min.X)*t.scale),
		Y: vg.Length(t.dy + (p.Y-t.data.Min.Y)*t.scale),
	}
}

func (t transform) length(v float64) vg.Length { return vg.Length(v * t.scale) }

// Draw paints scene onto c, whose size is w by h. Unless transparent is set
// the canvas is first filled with white.
func Draw(c vg.Canvas, w, h vg.Length, scene *table.Scene, transparent bool, variant string) error {
	if scene == nil {
		return errors.New(errors.ErrCodeInternal, "nil scene")
	}
	if scene.Bounds.Empty() {
		return errors.New(errors.ErrCodeInternal, "scene has no cells")
	}
	if variant == "" {
		variant = FontSerif
	}
	if !transparent {
		c.SetColor(white)
		c.Fill(rectPath(0, 0, w, h))
	}

	margin := marginRatio * math.Min(float64(w), float64(h))
	top := float64(h) - margin
	if scene.Title != nil {
		top -= scene.Title.FontSize * titleSpacing
	}
	bottom := margin
	if n := len(scene.Colorbars); n > 0 {
		bottom += float64(n) * colorbarBlock(h)
	}
	left, right := margin, float64(w)-margin

	tr, err := fit(scene.Bounds, left, bottom, right, top)
	if err != nil {
		return err
	}

	drawFrames(c, scene, tr)
	drawSymbols(c, scene, tr, variant)
	axes := layout.Rect{Min: layoutPoint(tr.pt(scene.Bounds.Min)), Max: layoutPoint(tr.pt(scene.Bounds.Max))}
	if scene.Legend != nil {
		drawLegend(c, scene.Legend, axes, variant)
	}
	if scene.Title != nil {
		f := face(variant, vg.Length(scene.Title.FontSize))
		c.SetColor(textDefault)
		pt := centred(f, scene.Title.Text, w/2, vg.Length(float64(h)-margin-scene.Title.FontSize*titleSpacing/2))
		c.FillString(f, pt, scene.Title.Text)
	}
	for i, cb := range scene.Colorbars {
		y := margin + float64(len(scene.Colorbars)-1-i)*colorbarBlock(h)
		drawColorbar(c, cb, w, h, vg.Length(y), variant)
	}
	return nil
}

func layoutPoint(p vg.Point) layout.Point { return layout.Point{X: float64(p.X), Y: float64(p.Y)} }

// fit scales data into the box keeping equal axes and centres it.
func fit(data layout.Rect, left, bottom, right, top float64) (transform, error) {
	aw, ah := right-left, top-bottom
	if aw <= 0 || ah <= 0 {
		return transform{}, errors.New(errors.ErrCodeInvalidConfig, "figure too small for the table")
	}
	s := math.Min(aw/data.Width(), ah/data.Height())
	return transform{
		scale: s,
		dx:    left + (aw-data.Width()*s)/2,
		dy:    bottom + (ah-data.Height()*s)/2,
		data:  data,
	}, nil
}

func colorbarBlock(h vg.Length) float64 {
	return float64(h)*colorbarHeight + colorbarFontSize*3.2
}

func drawFrames(c vg.Canvas, scene *table.Scene, tr transform) {
	fr := scene.Frames
	c.SetLineWidth(vg.Points(fr.LineWidth))
	for i, s := range fr.Shapes {
		p := shapePath(s, tr)
		if col, ok := paint(fr.Faces[i]); ok {
			c.SetColor(col)
			c.Fill(p)
		}
		if col, ok := paint(fr.Edges[i]); ok && fr.LineWidth > 0 {
			c.SetColor(col)
			c.Stroke(p)
		}
	}
}

func drawSymbols(c vg.Canvas, scene *table.Scene, tr transform, variant string) {
	cellW, cellH := scene.Frame.Params[0], scene.Frame.Params[1]
	if scene.Frame.Kind == frame.RoundedRectangle {
		cellW, cellH = cellW+2*scene.Frame.Pad, cellH+2*scene.Frame.Pad
	}
	size := math.Min(symbolByHeight*float64(tr.length(cellH)), symbolByWidth*float64(tr.length(cellW)))
	f := face(variant, vg.Length(size))
	for _, t := range scene.Texts {
		col, ok := paint(t.Color)
		if !ok {
			col = textDefault
		}
		c.SetColor(col)
		at := tr.pt(t.Pos)
		c.FillString(f, centred(f, t.Value, at.X, at.Y), t.Value)
	}
}

func drawLegend(c vg.Canvas, lg *table.Legend, axes layout.Rect, variant string) {
	em := lg.FontSize
	f := face(variant, vg.Length(em))

	textW := 0.0
	for _, e := range lg.Entries {
		textW = math.Max(textW, float64(f.Width(e.Text)))
	}
	pad := legendPadding * em
	boxW := 2*pad + legendSwatchW*em + pad + textW
	boxH := 2*pad + float64(len(lg.Entries))*legendRowHeight*em

	anchor := layout.Point{
		X: axes.Min.X + lg.Anchor.X*axes.Width(),
		Y: axes.Min.Y + lg.Anchor.Y*axes.Height(),
	}
	origin := table.LegendBoxOrigin(lg.Loc)
	x0 := anchor.X - origin.X*boxW
	y0 := anchor.Y - origin.Y*boxH

	box := rectPath(vg.Length(x0), vg.Length(y0), vg.Length(boxW), vg.Length(boxH))
	c.SetColor(legendFace)
	c.Fill(box)
	c.SetColor(legendEdge)
	c.SetLineWidth(vg.Points(0.8))
	c.Stroke(box)

	c.SetLineWidth(vg.Points(1))
	for i, e := range lg.Entries {
		rowMid := y0 + boxH - pad - (float64(i)+0.5)*legendRowHeight*em
		sx := x0 + pad
		sw := rectPath(vg.Length(sx), vg.Length(rowMid-legendSwatchH*em/2), vg.Length(legendSwatchW*em), vg.Length(legendSwatchH*em))
		if col, ok := paint(e.Face); ok {
			c.SetColor(col)
			c.Fill(sw)
		}
		if col, ok := paint(e.Edge); ok {
			c.SetColor(col)
			c.Stroke(sw)
		}
		c.SetColor(textDefault)
		tx := sx + legendSwatchW*em + pad
		c.FillString(f, vg.Point{X: vg.Length(tx), Y: vg.Length(rowMid) - f.Extents().Ascent*capRatio/2}, e.Text)
	}
}

func drawColorbar(c vg.Canvas, cb styles.GradientInfo, w, h, y vg.Length, variant string) {
	f := face(variant, colorbarFontSize)
	barW := float64(w) * colorbarWidth
	barH := float64(h) * colorbarHeight
	x0 := (float64(w) - barW) / 2
	y0 := float64(y) + colorbarFontSize*2.2

	n := len(cb.Stops)
	if n > 0 {
		step := barW / float64(n)
		for i, s := range cb.Stops {
			col, ok := paint(s)
			if !ok {
				continue
			}
			c.SetColor(col)
			// Overlap neighbours slightly so no seams show in raster output.
			c.Fill(rectPath(vg.Length(x0+float64(i)*step), vg.Length(y0), vg.Length(step*1.05), vg.Length(barH)))
		}
	}
	c.SetColor(textDefault)
	c.SetLineWidth(vg.Points(0.8))
	c.Stroke(rectPath(vg.Length(x0), vg.Length(y0), vg.Length(barW), vg.Length(barH)))

	below := vg.Length(y0 - colorbarFontSize*0.6)
	lo, hi := formatTick(cb.Min), formatTick(cb.Max)
	c.FillString(f, centred(f, lo, vg.Length(x0), below), lo)
	c.FillString(f, centred(f, hi, vg.Length(x0+barW), below), hi)
	c.FillString(f, centred(f, cb.Property, w/2, below), cb.Property)
}

func formatTick(v float64) string { return strconv.FormatFloat(v, 'g', 4, 64) }

func rectPath(x, y, w, h vg.Length) vg.Path {
	var p vg.Path
	p.Move(vg.Point{X: x, Y: y})
	p.Line(vg.Point{X: x + w, Y: y})
	p.Line(vg.Point{X: x + w, Y: y + h})
	p.Line(vg.Point{X: x, Y: y + h})
	p.Close()
	return p
}

func shapePath(s frame.Shape, tr transform) vg.Path {
	var p vg.Path
	for _, op := range s.Path {
		switch op.Op {
		case frame.MoveTo:
			p.Move(tr.pt(op.Point))
		case frame.LineTo:
			p.Line(tr.pt(op.Point))
		case frame.ArcTo:
			p.Arc(tr.pt(op.Point), tr.length(op.Radius), op.Start, op.Sweep)
		case frame.Close:
			p.Close()
		}
	}
	return p
}

// paint parses a colour string, reporting false for "none" and invalid
// values.
func paint(s string) (color.Color, bool) {
	c, err := styles.ParseColor(s)
	if err != nil || c.A == 0 {
		return nil, false
	}
	return c, true
}
