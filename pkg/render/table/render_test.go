package table

import (
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/ptable/pkg/element"
	"github.com/matzehuels/ptable/pkg/errors"
	"github.com/matzehuels/ptable/pkg/render/table/frame"
	"github.com/matzehuels/ptable/pkg/render/table/layout"
	"github.com/matzehuels/ptable/pkg/render/table/styles"
)

func mustNew(t *testing.T, cfg Config, opts ...Option) *Renderer {
	t.Helper()
	r, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestRenderDefaults(t *testing.T) {
	s, err := mustNew(t, Config{}).Render(RenderOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if s.Frames.Len() != element.Count || len(s.Texts) != element.Count || len(s.Cells) != element.Count {
		t.Fatalf("got %d frames, %d texts, %d cells", s.Frames.Len(), len(s.Texts), len(s.Cells))
	}
	if s.Figure != DefaultFigureSize {
		t.Errorf("Figure = %v, want %v", s.Figure, DefaultFigureSize)
	}
	if s.Legend != nil || s.Title != nil || len(s.Colorbars) != 0 {
		t.Errorf("unexpected legend %v, title %v or colour bars %v", s.Legend, s.Title, s.Colorbars)
	}
	if s.Frame.Kind != frame.Rectangle {
		t.Errorf("Frame.Kind = %q, want rectangle", s.Frame.Kind)
	}
	for i, c := range s.Cells {
		if c.Edge != "black" || c.Face != styles.None {
			t.Fatalf("cell %d paint = (%q, %q), want (black, none)", i, c.Edge, c.Face)
		}
	}
	want := layout.Rect{Min: layout.Point{X: 1, Y: -9}, Max: layout.Point{X: 19, Y: 0}}
	if s.Bounds != want {
		t.Errorf("Bounds = %v, want %v", s.Bounds, want)
	}
}

func TestRenderSymbols(t *testing.T) {
	s, err := mustNew(t, Config{}).Render(RenderOptions{})
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]bool)
	want := element.Default().Symbols()
	for i, txt := range s.Texts {
		if seen[txt.Value] {
			t.Errorf("duplicate symbol %q", txt.Value)
		}
		seen[txt.Value] = true
		if txt.Value != want[i] {
			t.Errorf("Texts[%d] = %q, want %q", i, txt.Value, want[i])
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := mustNew(t, Config{
		Frame:  frame.Spec{Shape: "rounded-rectangle"},
		Colors: styles.Spec{Frame: styles.Gradient{Property: element.PropMeltingPoint, Colorbar: true}},
		Labels: []styles.LabelGroup{
			{Channel: styles.Background, Name: "Halogens", Elements: []element.Ref{element.Sym("F"), element.Sym("Cl")}},
		},
	})
	opts := RenderOptions{Title: "Melting point"}

	a, err := r.Render(opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Render(opts)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("Render returned the same scene pointer twice")
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two renders of the same configuration differ")
	}

	// Mutating one scene must not leak into the next render.
	a.Frames.Faces[0] = "red"
	c, _ := r.Render(opts)
	if c.Frames.Faces[0] == "red" {
		t.Error("scene shares state with the renderer")
	}
}

func TestNewConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		code errors.Code
	}{
		{"unsupported shape", Config{Frame: frame.Spec{Shape: "NotAShape"}}, errors.ErrCodeUnsupportedShape},
		{"colour length", Config{Colors: styles.Spec{Background: styles.Explicit{Colors: []string{"red"}}}}, errors.ErrCodeColorLength},
		{"gradient with labels", Config{
			Colors: styles.Spec{Background: styles.Gradient{Property: element.PropAtomicMass}},
			Labels: []styles.LabelGroup{{Name: "x", Elements: []element.Ref{element.Sym("H")}}},
		}, errors.ErrCodeGradientLabelConflict},
		{"unknown label element", Config{
			Labels: []styles.LabelGroup{{Name: "x", Elements: []element.Ref{element.Sym("Qq")}}},
		}, errors.ErrCodeUnknownElement},
		{"unknown data element", Config{Data: element.Overrides{"Qq": {"x": 1.0}}}, errors.ErrCodeUnknownElement},
		{"unknown property", Config{Colors: styles.Spec{Frame: styles.Gradient{Property: "hardness"}}}, errors.ErrCodeUnknownProperty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); !errors.Is(err, tt.code) {
				t.Errorf("New() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRenderDataOverrideGradient(t *testing.T) {
	r := mustNew(t, Config{
		Colors: styles.Spec{Background: styles.Gradient{Property: "surface_energy"}},
		Data: element.Overrides{
			"Fe": {"surface_energy": 2.45},
			"Cu": {"surface_energy": 1.79},
		},
	})
	s, err := r.Render(RenderOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Cells[25].Face == styles.None || s.Cells[28].Face == styles.None {
		t.Errorf("Fe/Cu faces = %q/%q, want gradient colours", s.Cells[25].Face, s.Cells[28].Face)
	}
	if s.Cells[0].Face != styles.None {
		t.Errorf("H face = %q, want none", s.Cells[0].Face)
	}
	if len(s.Colorbars) != 0 {
		t.Error("colour bar not requested")
	}
}

func TestRenderLegendAndTitle(t *testing.T) {
	r := mustNew(t, Config{
		Labels: []styles.LabelGroup{
			{Name: "Alkali", Elements: []element.Ref{element.Sym("Na"), element.Sym("K")}},
		},
	})

	s, err := r.Render(RenderOptions{Title: "Groups"})
	if err != nil {
		t.Fatal(err)
	}
	if s.Legend == nil || len(s.Legend.Entries) != 1 || s.Legend.Entries[0].Text != "Alkali" {
		t.Fatalf("Legend = %+v", s.Legend)
	}
	if s.Legend.Loc != DefaultLegendLoc || s.Legend.Anchor != DefaultLegendAnchor || s.Legend.FontSize != DefaultLegendFontSize {
		t.Errorf("Legend placement = %q %v %v", s.Legend.Loc, s.Legend.Anchor, s.Legend.FontSize)
	}
	if s.Title == nil || s.Title.Text != "Groups" || s.Title.FontSize != DefaultTitleFontSize {
		t.Errorf("Title = %+v", s.Title)
	}

	s, _ = r.Render(RenderOptions{Legend: LegendOptions{Loc: "lower right"}})
	if s.Legend.Anchor != (layout.Point{X: 1, Y: 0}) {
		t.Errorf("lower right anchor = %v", s.Legend.Anchor)
	}
	s, _ = r.Render(RenderOptions{Legend: LegendOptions{Hidden: true}})
	if s.Legend != nil {
		t.Error("hidden legend was rendered")
	}
	if _, err := r.Render(RenderOptions{Legend: LegendOptions{Loc: "nowhere"}}); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("unknown placement error = %v", err)
	}
}

func TestRenderTextOffset(t *testing.T) {
	tests := []struct {
		shape string
		want  layout.Point
	}{
		{"rectangle", layout.Point{X: 8.5, Y: -3.5}},
		{"rounded-rectangle", layout.Point{X: 8.4, Y: -3.6}},
	}
	for _, tt := range tests {
		t.Run(tt.shape, func(t *testing.T) {
			s, err := mustNew(t, Config{Frame: frame.Spec{Shape: tt.shape}}).Render(RenderOptions{})
			if err != nil {
				t.Fatal(err)
			}
			got := s.Texts[25].Pos
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Fe text = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSceneLookup(t *testing.T) {
	s, _ := mustNew(t, Config{}).Render(RenderOptions{})
	if c, ok := s.Cell(26); !ok || c.Symbol != "Fe" {
		t.Errorf("Cell(26) = %+v, %v", c, ok)
	}
	if c, ok := s.CellAt(18, 1); !ok || c.Symbol != "He" {
		t.Errorf("CellAt(18, 1) = %+v, %v", c, ok)
	}
	if _, ok := s.CellAt(5, 1); ok {
		t.Error("CellAt(5, 1) should be empty")
	}
	if _, ok := s.Cell(0); ok {
		t.Error("Cell(0) should be absent")
	}
}

func TestWithPalette(t *testing.T) {
	r := mustNew(t, Config{
		Labels: []styles.LabelGroup{{Name: "x", Elements: []element.Ref{element.Num(1)}}},
	}, WithPalette([]string{"gold"}))
	s, _ := r.Render(RenderOptions{})
	if s.Cells[0].Face != "gold" {
		t.Errorf("H face = %q, want gold", s.Cells[0].Face)
	}
}
