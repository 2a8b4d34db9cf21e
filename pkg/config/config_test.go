package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/ptable/pkg/element"
	"github.com/matzehuels/ptable/pkg/errors"
	"github.com/matzehuels/ptable/pkg/render/table"
	"github.com/matzehuels/ptable/pkg/render/table/frame"
	"github.com/matzehuels/ptable/pkg/render/table/layout"
	"github.com/matzehuels/ptable/pkg/render/table/styles"
)

const sample = `
[frame]
shape = "rounded-rectangle"
pad = 0.1

[colors]
frame = "black"
background = { depend_on = "electronegativity", cmap = "blue-tan", cbar = true, min = 0.5 }

[labels]
Alkali = ["Li", "Na", "K"]

[labels.frame]
Halogens = { elements = ["F", 17], color = "tab:green" }
Noble = ["He", "Ne"]

[data.Fe]
melting_point = 1811.5

[render]
title = "Electronegativity"
width = 12.0
height = 7.0
dpi = 300
transparent = true

[render.legend]
loc = "lower right"
anchor = [1.0, 0.0]
`

func TestTableMatchesLiteral(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := f.Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}

	lo := 0.5
	want := table.Config{
		Frame: frame.Spec{Shape: "rounded-rectangle", KW: map[string]any{"pad": 0.1}},
		Colors: styles.Spec{
			Frame:      styles.Flat{Color: "black"},
			Background: styles.Gradient{Property: "electronegativity", Colormap: "blue-tan", Colorbar: true, Min: &lo},
		},
		Labels: []styles.LabelGroup{
			{Channel: styles.Background, Name: "Alkali", Elements: []element.Ref{element.Sym("Li"), element.Sym("Na"), element.Sym("K")}},
			{Channel: styles.Frame, Name: "Halogens", Elements: []element.Ref{element.Sym("F"), element.Num(17)}, Color: "tab:green"},
			{Channel: styles.Frame, Name: "Noble", Elements: []element.Ref{element.Sym("He"), element.Sym("Ne")}},
		},
		Data: element.Overrides{"Fe": {"melting_point": 1811.5}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Table() =\n%#v\nwant\n%#v", got, want)
	}

	// Alkali sits on the gradient channel.
	if _, err := table.New(got); !errors.Is(err, errors.ErrCodeGradientLabelConflict) {
		t.Errorf("table.New error = %v, want GRADIENT_LABEL_CONFLICT", err)
	}
}

func TestRenderOptions(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	opts, err := f.RenderOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Title != "Electronegativity" || opts.FigureSize != [2]float64{12, 7} {
		t.Errorf("opts = %+v", opts)
	}
	if opts.Legend.Loc != "lower right" || opts.Legend.Anchor == nil || *opts.Legend.Anchor != (layout.Point{X: 1}) {
		t.Errorf("legend = %+v", opts.Legend)
	}
	if f.Render.DPI != 300 || !f.Render.Transparent {
		t.Errorf("render = %+v", f.Render)
	}
}

func TestEmptyFileUsesDefaults(t *testing.T) {
	f, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := f.Table()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, table.Config{}) {
		t.Errorf("cfg = %#v", cfg)
	}
}

func TestExplicitColors(t *testing.T) {
	f, err := Parse([]byte(`[colors]
background = ["red", "blue"]
`))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := f.Table()
	if err != nil {
		t.Fatal(err)
	}
	want := styles.Explicit{Colors: []string{"red", "blue"}}
	if !reflect.DeepEqual(cfg.Colors.Background, want) {
		t.Errorf("background = %#v", cfg.Colors.Background)
	}
	if _, err := table.New(cfg); !errors.Is(err, errors.ErrCodeColorLength) {
		t.Errorf("table.New error = %v, want COLOR_LENGTH", err)
	}
}

func TestNestedTables(t *testing.T) {
	const data = `
[colors.frame]
depend_on = "melting_point"
cmap = "blackbody_r"
max = 4000

[labels.background]
"Alkali metals" = { elements = ["Li", 11], color = "#f4a582" }

[labels.frame]
Halogens = { elements = ["F", "Cl"], color = "tab:green" }
Noble = ["He"]
`
	f, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := f.Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}

	hi := 4000.0
	want := table.Config{
		Colors: styles.Spec{
			Frame: styles.Gradient{Property: "melting_point", Colormap: "blackbody_r", Max: &hi},
		},
		Labels: []styles.LabelGroup{
			{Channel: styles.Background, Name: "Alkali metals", Elements: []element.Ref{element.Sym("Li"), element.Num(11)}, Color: "#f4a582"},
			{Channel: styles.Frame, Name: "Halogens", Elements: []element.Ref{element.Sym("F"), element.Sym("Cl")}, Color: "tab:green"},
			{Channel: styles.Frame, Name: "Noble", Elements: []element.Ref{element.Sym("He")}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Table() =\n%#v\nwant\n%#v", got, want)
	}

	// Labels on the frame gradient must be refused by the renderer.
	if _, err := table.New(got); !errors.Is(err, errors.ErrCodeGradientLabelConflict) {
		t.Errorf("table.New error = %v, want GRADIENT_LABEL_CONFLICT", err)
	}
	got.Labels = got.Labels[:1]
	if _, err := table.New(got); err != nil {
		t.Errorf("table.New with background labels only: %v", err)
	}
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[frame"},
		{"unknown render key", "[render]\nzoom = 2"},
		{"unknown channel", "[colors]\nedge = \"red\""},
		{"gradient without property", "[colors]\nbackground = { cmap = \"coolwarm\" }"},
		{"gradient unknown key", "[colors]\nbackground = { depend_on = \"x\", foo = 1 }"},
		{"bad size", "[frame]\nsize = [1.0]"},
		{"label not array", "[labels]\nA = 3"},
		{"label bad key", "[labels]\nA = { elements = [\"H\"], colour = \"red\" }"},
		{"labels.frame not table", "[labels]\nframe = [\"H\"]"},
		{"bad anchor", "[render.legend]\nanchor = [1.0]"},
		{"unknown table", "[legend]\nloc = \"best\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.data))
			if err == nil {
				_, err = f.Table()
			}
			if err == nil {
				_, err = f.RenderOptions()
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.toml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Render.Title != "Electronegativity" {
		t.Errorf("title = %q", f.Render.Title)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("missing file error = %v, want IO_ERROR", err)
	}
}
