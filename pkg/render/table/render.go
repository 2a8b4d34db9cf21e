package table

import (
	"github.com/matzehuels/ptable/pkg/element"
	"github.com/matzehuels/ptable/pkg/errors"
	"github.com/matzehuels/ptable/pkg/render/table/frame"
	"github.com/matzehuels/ptable/pkg/render/table/layout"
	"github.com/matzehuels/ptable/pkg/render/table/styles"
)

// DefaultFigureSize is the figure size in inches.
var DefaultFigureSize = [2]float64{10, 6}

// Config describes a periodic table. Every block is optional.
type Config struct {
	Frame  frame.Spec
	Colors styles.Spec
	Labels []styles.LabelGroup
	Data   element.Overrides
}

// RenderOptions control the figure around the table.
type RenderOptions struct {
	Title         string
	TitleFontSize float64    // Points; zero means DefaultTitleFontSize
	FigureSize    [2]float64 // Inches; zero means DefaultFigureSize
	Legend        LegendOptions
}

// Option configures a [Renderer].
type Option func(*Renderer)

// WithProvider replaces the built-in element data.
func WithProvider(p element.Provider) Option { return func(r *Renderer) { r.base = p } }

// WithPalette replaces the label colour cycle.
func WithPalette(colors []string) Option {
	return func(r *Renderer) { r.resolver.Palette = append([]string(nil), colors...) }
}

// Renderer turns a validated [Config] into scenes. It holds no state that
// changes between calls.
type Renderer struct {
	cfg      Config
	base     element.Provider
	provider element.Provider
	frame    frame.Resolved
	resolver styles.Resolver
}

// New validates cfg. Configuration errors (unsupported shape, colour length,
// gradient/label conflicts, unknown elements or properties) are reported
// here, before anything is drawn.
func New(cfg Config, opts ...Option) (*Renderer, error) {
	r := &Renderer{cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	if r.base == nil {
		r.base = element.Default()
	}

	r.provider = r.base
	if len(cfg.Data) > 0 {
		p, err := element.WithOverrides(r.base, cfg.Data)
		if err != nil {
			return nil, err
		}
		r.provider = p
	}

	fr, err := frame.Resolve(cfg.Frame)
	if err != nil {
		return nil, err
	}
	r.frame = fr

	if _, _, err := r.resolver.Resolve(cfg.Colors, cfg.Labels, r.provider); err != nil {
		return nil, err
	}
	return r, nil
}

// Provider returns the element data the renderer uses, overrides included.
func (r *Renderer) Provider() element.Provider { return r.provider }

// Frame returns the resolved frame geometry.
func (r *Renderer) Frame() frame.Resolved { return r.frame }

// Render builds a fresh scene.
func (r *Renderer) Render(opts RenderOptions) (*Scene, error) {
	fig := opts.FigureSize
	if fig == ([2]float64{}) {
		fig = DefaultFigureSize
	}
	if fig[0] <= 0 || fig[1] <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "figure size %v must be positive", fig)
	}
	loc, anchor, legendSize, err := opts.Legend.resolve()
	if err != nil {
		return nil, err
	}

	elements := r.provider.All()
	cellW, cellH := r.frame.Base[0], r.frame.Base[1]
	positions := layout.Positions(elements, cellW, cellH)
	textOff := layout.TextOffset(cellW, cellH, r.frame.Rounded())

	colors, legend, err := r.resolver.Resolve(r.cfg.Colors, r.cfg.Labels, r.provider)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Figure: fig,
		Frame: FrameInfo{
			Kind:      r.frame.Kind,
			Base:      r.frame.Base,
			Params:    r.frame.Params,
			Pad:       r.frame.Pad,
			LineWidth: r.frame.LineWidth,
		},
		Cells: make([]Cell, 0, len(elements)),
		Frames: Collection{
			Shapes:    make([]frame.Shape, 0, len(elements)),
			Edges:     make([]string, 0, len(elements)),
			Faces:     make([]string, 0, len(elements)),
			LineWidth: r.frame.LineWidth,
		},
		Texts:     make([]Text, 0, len(elements)),
		Colorbars: colorbars(colors),
	}

	for _, e := range elements {
		origin := positions[e.Z]
		edge, face := colors.Frame[e.Z-1], colors.Background[e.Z-1]
		shape := r.frame.Build(origin)

		s.Cells = append(s.Cells, Cell{
			Z: e.Z, Symbol: e.Symbol,
			Group: e.Group, Row: e.Row,
			Origin: origin,
			Edge:   edge, Face: face,
		})
		s.Frames.Shapes = append(s.Frames.Shapes, shape)
		s.Frames.Edges = append(s.Frames.Edges, edge)
		s.Frames.Faces = append(s.Frames.Faces, face)
		s.Texts = append(s.Texts, Text{
			Z:     e.Z,
			Value: e.Symbol,
			Pos:   origin.Add(textOff),
			Color: styles.ContrastText(face),
		})
		s.Bounds = s.Bounds.Union(shape.Box)
	}

	if len(legend) > 0 && !opts.Legend.Hidden {
		s.Legend = &Legend{Entries: legend, Loc: loc, Anchor: anchor, FontSize: legendSize}
	}
	if opts.Title != "" {
		size := opts.TitleFontSize
		if size <= 0 {
			size = DefaultTitleFontSize
		}
		s.Title = &Title{Text: opts.Title, FontSize: size}
	}
	return s, nil
}

func colorbars(res styles.Resolution) []styles.GradientInfo {
	var out []styles.GradientInfo
	for _, g := range res.Gradients() {
		if g.Colorbar {
			out = append(out, g)
		}
	}
	return out
}
