package frame

import (
	"math"
	"testing"

	"github.com/matzehuels/ptable/pkg/errors"
	"github.com/matzehuels/ptable/pkg/render/table/layout"
)

func TestResolveUnsupported(t *testing.T) {
	_, err := Resolve(Spec{Shape: "NotAShape"})
	if !errors.Is(err, errors.ErrCodeUnsupportedShape) {
		t.Fatalf("Resolve(NotAShape) error = %v, want UNSUPPORTED_SHAPE", err)
	}
}

func TestResolveDefaults(t *testing.T) {
	r, err := Resolve(Spec{})
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind != Rectangle {
		t.Errorf("Kind = %q, want rectangle", r.Kind)
	}
	if r.Params != [2]float64{1, 1} || r.Base != [2]float64{1, 1} {
		t.Errorf("Params = %v, Base = %v, want 1x1", r.Params, r.Base)
	}
	if r.LineWidth != DefaultLineWidth {
		t.Errorf("LineWidth = %v, want %v", r.LineWidth, DefaultLineWidth)
	}
}

func TestResolveRoundedPad(t *testing.T) {
	tests := []struct {
		name    string
		kw      map[string]any
		wantPad float64
	}{
		{"default", nil, 0.3},
		{"boxstyle", map[string]any{"boxstyle": "round,pad=0.1"}, 0.1},
		{"spaces", map[string]any{"boxstyle": "round, pad = 0.25"}, 0.25},
		{"no pad", map[string]any{"boxstyle": "round"}, 0.3},
		{"unparsable", map[string]any{"boxstyle": "round,pad=abc"}, 0.3},
		{"explicit pad", map[string]any{"pad": 0.05}, 0.05},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Resolve(Spec{Shape: "rounded-rectangle", KW: tt.kw})
			if err != nil {
				t.Fatal(err)
			}
			if !near(r.Pad, tt.wantPad) {
				t.Errorf("Pad = %v, want %v", r.Pad, tt.wantPad)
			}
			want := 1 - 2*tt.wantPad
			if !near(r.Params[0], want) || !near(r.Params[1], want) {
				t.Errorf("Params = %v, want (%v, %v)", r.Params, want, want)
			}
			if r.Base != [2]float64{1, 1} {
				t.Errorf("Base = %v, want (1, 1)", r.Base)
			}
		})
	}
}

func TestRoundedDefaultEffectiveSize(t *testing.T) {
	r, err := Resolve(Spec{Shape: "rounded-rectangle", Size: [2]float64{1, 1}})
	if err != nil {
		t.Fatal(err)
	}
	if !near(r.Params[0], 0.4) || !near(r.Params[1], 0.4) {
		t.Errorf("effective size = %v, want (0.4, 0.4)", r.Params)
	}

	s := r.Build(layout.Point{})
	if !near(s.Box.Width(), 1) || !near(s.Box.Height(), 1) {
		t.Errorf("outer footprint = %vx%v, want 1x1", s.Box.Width(), s.Box.Height())
	}
}

func TestResolvePassThrough(t *testing.T) {
	for _, k := range []Kind{Rectangle, Ellipse, Circle, Hexagon, Octagon, Diamond} {
		t.Run(string(k), func(t *testing.T) {
			r, err := Resolve(Spec{Shape: string(k), Size: [2]float64{2, 1}, KW: map[string]any{"linewidth": 2}})
			if err != nil {
				t.Fatal(err)
			}
			if r.Params != [2]float64{2, 1} {
				t.Errorf("Params = %v, want (2, 1)", r.Params)
			}
			if r.LineWidth != 2 {
				t.Errorf("LineWidth = %v, want 2", r.LineWidth)
			}
		})
	}
}

func TestResolveInvalid(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"negative size", Spec{Size: [2]float64{-1, 1}}},
		{"pad too large", Spec{Shape: "rounded-rectangle", KW: map[string]any{"boxstyle": "round,pad=0.6"}}},
		{"bad linewidth", Spec{KW: map[string]any{"linewidth": "thick"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Resolve(tt.spec); !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestResolveDoesNotMutateSpec(t *testing.T) {
	kw := map[string]any{"pad": 0.1}
	if _, err := Resolve(Spec{Shape: "rounded-rectangle", KW: kw}); err != nil {
		t.Fatal(err)
	}
	if len(kw) != 1 || kw["pad"] != 0.1 {
		t.Errorf("spec KW mutated: %v", kw)
	}
}

func TestBuildShapes(t *testing.T) {
	origin := layout.Point{X: 8, Y: -4}
	for _, k := range Kinds() {
		t.Run(string(k), func(t *testing.T) {
			r, err := Resolve(Spec{Shape: string(k)})
			if err != nil {
				t.Fatal(err)
			}
			s := r.Build(origin)
			if s.Kind != k {
				t.Errorf("Kind = %q, want %q", s.Kind, k)
			}
			if len(s.Path) < 2 || s.Path[0].Op != MoveTo || s.Path[len(s.Path)-1].Op != Close {
				t.Errorf("path must start with move and end with close: %v", s.Path)
			}
			if s.Box.Empty() {
				t.Errorf("empty box %v", s.Box)
			}
			if k != RoundedRectangle && (s.Box.Min.X < origin.X-1e-9 || s.Box.Max.X > origin.X+1+1e-9) {
				t.Errorf("box %v exceeds the cell at %v", s.Box, origin)
			}
		})
	}
}

func TestCircleUsesShortSide(t *testing.T) {
	r, _ := Resolve(Spec{Shape: "circle", Size: [2]float64{2, 1}})
	s := r.Build(layout.Point{})
	if !near(s.Box.Width(), 1) || !near(s.Center.X, 1) || !near(s.Center.Y, 0.5) {
		t.Errorf("circle box = %v centre = %v", s.Box, s.Center)
	}
	if arc := s.Path[1]; arc.Op != ArcTo || !near(arc.Sweep, 2*math.Pi) {
		t.Errorf("circle path = %v", s.Path)
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
