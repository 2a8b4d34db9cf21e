package frame

import (
	"fmt"
	"maps"
	"math"
	"regexp"
	"slices"
	"strconv"

	"github.com/matzehuels/ptable/pkg/errors"
	"github.com/matzehuels/ptable/pkg/render/table/layout"
)

// Kind names a frame shape.
type Kind string

// Supported shape kinds.
const (
	Rectangle        Kind = "rectangle"
	RoundedRectangle Kind = "rounded-rectangle"
	Ellipse          Kind = "ellipse"
	Circle           Kind = "circle"
	Hexagon          Kind = "hexagon"
	Octagon          Kind = "octagon"
	Diamond          Kind = "diamond"
)

// DefaultPad is the rounded-rectangle corner pad used when the boxstyle does
// not specify one.
const DefaultPad = 0.3

// DefaultLineWidth is the frame stroke width in points.
const DefaultLineWidth = 1.0

// Keyword parameters understood by the factory. Others are passed through.
const (
	KeyBoxStyle  = "boxstyle"
	KeyPad       = "pad"
	KeyLineWidth = "linewidth"
)

type builder func(r Resolved, origin layout.Point) Shape

var builders = map[Kind]builder{
	Rectangle:        buildRectangle,
	RoundedRectangle: buildRounded,
	Ellipse:          buildEllipse,
	Circle:           buildCircle,
	Hexagon:          polygonBuilder(6, 0),
	Octagon:          polygonBuilder(8, math.Pi/8),
	Diamond:          polygonBuilder(4, 0),
}

// Kinds returns the supported shape kinds in sorted order.
func Kinds() []Kind { return slices.Sorted(maps.Keys(builders)) }

// Spec declares a frame shape.
type Spec struct {
	Shape string         // Shape kind; empty means rectangle
	Size  [2]float64     // Base width and height; zero means 1x1
	KW    map[string]any // Shape-specific keyword parameters
}

// Resolved is a validated frame with its effective drawing parameters.
type Resolved struct {
	Kind      Kind
	Base      [2]float64     // Base cell size
	Params    [2]float64     // Effective drawn width and height
	KW        map[string]any // Effective keyword parameters
	Pad       float64        // Corner pad, rounded rectangles only
	LineWidth float64        // Stroke width in points
}

// Rounded reports whether the frame has padded corners.
func (r Resolved) Rounded() bool { return r.Kind == RoundedRectangle }

// Build constructs the shape for the cell whose lower-left corner is origin.
func (r Resolved) Build(origin layout.Point) Shape {
	return builders[r.Kind](r, origin)
}

var padPattern = regexp.MustCompile(`pad\s*=\s*([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)`)

// Resolve validates spec and computes its effective geometry.
func Resolve(spec Spec) (Resolved, error) {
	kind := Kind(spec.Shape)
	if kind == "" {
		kind = Rectangle
	}
	if _, ok := builders[kind]; !ok {
		return Resolved{}, errors.New(errors.ErrCodeUnsupportedShape,
			"unsupported frame shape %q (supported: %v)", spec.Shape, Kinds())
	}

	base := spec.Size
	if base == ([2]float64{}) {
		base = [2]float64{1, 1}
	}
	if base[0] <= 0 || base[1] <= 0 {
		return Resolved{}, errors.New(errors.ErrCodeInvalidConfig, "frame size %v must be positive", base)
	}

	r := Resolved{
		Kind:      kind,
		Base:      base,
		Params:    base,
		KW:        maps.Clone(spec.KW),
		LineWidth: DefaultLineWidth,
	}
	if r.KW == nil {
		r.KW = map[string]any{}
	}

	if v, ok := r.KW[KeyLineWidth]; ok {
		lw, ok := toFloat(v)
		if !ok || lw < 0 {
			return Resolved{}, errors.New(errors.ErrCodeInvalidConfig, "frame %s must be a non-negative number, got %v", KeyLineWidth, v)
		}
		r.LineWidth = lw
	}

	if kind == RoundedRectangle {
		r.Pad = parsePad(r.KW)
		r.Params = [2]float64{base[0] - 2*r.Pad, base[1] - 2*r.Pad}
		if r.Params[0] < 0 || r.Params[1] < 0 {
			return Resolved{}, errors.New(errors.ErrCodeInvalidConfig,
				"rounded-rectangle pad %v exceeds half the cell size %v", r.Pad, base)
		}
		r.KW[KeyBoxStyle] = fmt.Sprintf("round,pad=%s", strconv.FormatFloat(r.Pad, 'f', -1, 64))
		delete(r.KW, KeyPad)
	}
	return r, nil
}

// parsePad extracts the corner pad from an explicit "pad" parameter or from
// the "boxstyle" string, falling back to [DefaultPad].
func parsePad(kw map[string]any) float64 {
	if v, ok := toFloat(kw[KeyPad]); ok && v >= 0 {
		return v
	}
	style, _ := kw[KeyBoxStyle].(string)
	m := padPattern.FindStringSubmatch(style)
	if m == nil {
		return DefaultPad
	}
	pad, err := strconv.ParseFloat(m[1], 64)
	if err != nil || pad < 0 {
		return DefaultPad
	}
	return pad
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}
