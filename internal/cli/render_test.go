package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ptable/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defers to config", "", nil},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces and empty items", " svg, ,png ", []string{"svg", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestOutputBase(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		config      string
		formats     []string
		wantBase    string
		wantFormats []string
	}{
		{"defaults", "", "", nil, "ptable", nil},
		{"config name", "", "configs/electronegativity.toml", nil, "electronegativity", nil},
		{"extension picks format", "out/table.pdf", "", nil, "out/table", []string{"pdf"}},
		{"extension with explicit formats", "out/table.png", "", []string{"svg"}, "out/table", []string{"svg"}},
		{"unknown extension kept", "out/table.v2", "", nil, "out/table.v2", nil},
		{"plain base", "out/table", "", []string{"svg"}, "out/table", []string{"svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, formats := outputBase(tt.output, tt.config, tt.formats)
			if base != tt.wantBase {
				t.Errorf("base = %q, want %q", base, tt.wantBase)
			}
			if len(formats) != len(tt.wantFormats) {
				t.Fatalf("formats = %v, want %v", formats, tt.wantFormats)
			}
			for i := range formats {
				if formats[i] != tt.wantFormats[i] {
					t.Errorf("formats = %v, want %v", formats, tt.wantFormats)
				}
			}
		})
	}
}

func TestRenderOptsPipelineOptions(t *testing.T) {
	o := renderOpts{
		output:    "out/plot.svg",
		title:     "T",
		width:     12,
		legendLoc: "lower left",
		noLegend:  true,
		dpi:       300,
	}
	got := o.pipelineOptions("table.toml")
	if got.ConfigPath != "table.toml" || got.Output != "out/plot" || got.Title != "T" {
		t.Errorf("options = %+v", got)
	}
	if len(got.Formats) != 1 || got.Formats[0] != "svg" {
		t.Errorf("formats = %v", got.Formats)
	}
	if got.Legend.Loc != "lower left" || !got.Legend.Hidden || got.DPI != 300 || got.Width != 12 {
		t.Errorf("options = %+v", got)
	}
}

func TestRunRender(t *testing.T) {
	stdout := os.Stdout
	devnull, _ := os.Open(os.DevNull)
	os.Stdout = devnull
	defer func() { os.Stdout = stdout }()

	dir := t.TempDir()
	c := New(io.Discard, log.InfoLevel)
	err := c.runRender(context.Background(), pipeline.Options{
		Formats: []string{"svg", "json"},
		Output:  filepath.Join(dir, "table"),
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"table.svg", "table.json"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
	svg, _ := os.ReadFile(filepath.Join(dir, "table.svg"))
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("table.svg is not an SVG")
	}
}
