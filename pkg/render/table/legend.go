package table

import (
	"slices"

	"github.com/matzehuels/ptable/pkg/errors"
	"github.com/matzehuels/ptable/pkg/render/table/layout"
)

// Legend placement defaults.
const (
	DefaultLegendLoc      = "upper center"
	DefaultLegendFontSize = 14.0
	DefaultTitleFontSize  = 28.0
)

// DefaultLegendAnchor sits the legend over the empty block above the
// transition metals.
var DefaultLegendAnchor = layout.Point{X: 0.41, Y: 1.0}

// legendLocs maps each placement to the axes-fraction point the legend box
// attaches to when no anchor is given.
var legendLocs = map[string]layout.Point{
	"upper left":   {X: 0, Y: 1},
	"upper center": {X: 0.5, Y: 1},
	"upper right":  {X: 1, Y: 1},
	"center left":  {X: 0, Y: 0.5},
	"center":       {X: 0.5, Y: 0.5},
	"center right": {X: 1, Y: 0.5},
	"lower left":   {X: 0, Y: 0},
	"lower center": {X: 0.5, Y: 0},
	"lower right":  {X: 1, Y: 0},
}

// LegendLocs returns the recognised legend placements.
func LegendLocs() []string {
	out := make([]string, 0, len(legendLocs))
	for k := range legendLocs {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// LegendOptions place the legend box. The zero value selects the defaults.
type LegendOptions struct {
	Loc      string        // One of LegendLocs; "best" means the default
	Anchor   *layout.Point // Axes fraction; nil uses the placement's own point
	FontSize float64       // Points
	Hidden   bool
}

func (o LegendOptions) resolve() (loc string, anchor layout.Point, size float64, err error) {
	loc, size = o.Loc, o.FontSize
	if size <= 0 {
		size = DefaultLegendFontSize
	}
	if loc == "" || loc == "best" {
		loc = DefaultLegendLoc
		anchor = DefaultLegendAnchor
		if o.Anchor != nil {
			anchor = *o.Anchor
		}
		return loc, anchor, size, nil
	}
	p, ok := legendLocs[loc]
	if !ok {
		return "", layout.Point{}, 0, errors.New(errors.ErrCodeInvalidConfig, "unknown legend placement %q (known: %v)", loc, LegendLocs())
	}
	if o.Anchor != nil {
		p = *o.Anchor
	}
	return loc, p, size, nil
}

// LegendBoxOrigin returns the fraction of the legend box that sits on the
// anchor point for loc: (0, 1) is the box's upper-left corner.
func LegendBoxOrigin(loc string) layout.Point {
	if p, ok := legendLocs[loc]; ok {
		return p
	}
	return legendLocs[DefaultLegendLoc]
}
