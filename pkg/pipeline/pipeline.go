// Package pipeline provides the load → render → export pipeline for ptable.
//
// The CLI and any other entry point share this package so that configuration
// precedence, defaults and output naming behave the same everywhere.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: read the TOML config and optional data overrides
//  2. Render: build a [table.Scene] from the configuration
//  3. Encode: draw the scene in every requested format
//  4. Write: store the artifacts next to each other as <output>.<ext>
//
// Values set on [Options] win over the [render] table of the config file,
// which wins over the Default* constants.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ConfigPath: "electronegativity.toml",
//	    Formats:    []string{"svg", "png"},
//	    Output:     "out/electronegativity",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// [table.Scene]: github.com/matzehuels/ptable/pkg/render/table.Scene
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ptable/pkg/element"
	"github.com/matzehuels/ptable/pkg/errors"
	"github.com/matzehuels/ptable/pkg/render/table"
	"github.com/matzehuels/ptable/pkg/render/table/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and library callers
// =============================================================================

const (
	// DefaultFormat is the output format when none is requested.
	DefaultFormat = string(sink.SVG)

	// DefaultOutput is the output base name used by the CLI.
	DefaultOutput = "ptable"

	// DefaultDPI is the raster resolution.
	DefaultDPI = sink.DefaultDPI

	// DefaultFont is the Liberation variant used for symbols.
	DefaultFont = sink.FontSerif
)

// DefaultWidth and DefaultHeight are the figure size in inches.
var (
	DefaultWidth  = table.DefaultFigureSize[0]
	DefaultHeight = table.DefaultFigureSize[1]
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run. Zero values mean
// "not set" and fall back to the config file, then to the defaults.
type Options struct {
	// Load options
	ConfigPath string `json:"config,omitempty"` // TOML file; empty uses the built-in table
	DataPath   string `json:"data,omitempty"`   // JSON or TOML data overrides

	// Render options
	Shape         string              `json:"shape,omitempty"` // Replaces the config's frame shape
	Title         string              `json:"title,omitempty"`
	TitleFontSize float64             `json:"title_font_size,omitempty"`
	Width         float64             `json:"width,omitempty"`
	Height        float64             `json:"height,omitempty"`
	Legend        table.LegendOptions `json:"-"`

	// Export options
	Formats     []string `json:"formats,omitempty"`
	Output      string   `json:"output,omitempty"` // Base path without extension; empty keeps artifacts in memory
	Transparent bool     `json:"transparent,omitempty"`
	DPI         int      `json:"dpi,omitempty"`
	Font        string   `json:"font,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Config is the renderer configuration that was used.
	Config table.Config

	// Scene is the rendered scene.
	Scene *table.Scene

	// Provider is the element data with overrides applied.
	Provider element.Provider

	// Artifacts contains encoded outputs keyed by format.
	Artifacts map[string][]byte

	// Files lists the paths written, in format order.
	Files []string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Cells         int
	LegendEntries int
	Bytes         int
	LoadTime      time.Duration
	RenderTime    time.Duration
	ExportTime    time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is supported and returns its canonical
// name ("jpg" becomes "jpeg").
func ValidateFormat(format string) (string, error) {
	f, err := sink.ParseFormat(format)
	if err != nil {
		return "", err
	}
	return string(f), nil
}

// ValidateFormats checks every format and returns their canonical names
// without duplicates.
func ValidateFormats(formats []string) ([]string, error) {
	seen := make(map[string]bool, len(formats))
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		c, err := ValidateFormat(f)
		if err != nil {
			return nil, err
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out, nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks option values and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "figure size %gx%g must be positive", o.Width, o.Height)
	}
	if o.DPI < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "dpi %d must be positive", o.DPI)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	formats, err := ValidateFormats(o.Formats)
	if err != nil {
		return err
	}
	o.Formats = formats

	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.Font == "" {
		o.Font = DefaultFont
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// RenderOptions returns the scene options.
func (o *Options) RenderOptions() table.RenderOptions {
	return table.RenderOptions{
		Title:         o.Title,
		TitleFontSize: o.TitleFontSize,
		FigureSize:    [2]float64{o.Width, o.Height},
		Legend:        o.Legend,
	}
}

// SinkOptions returns the encoder options.
func (o *Options) SinkOptions() []sink.Option {
	opts := []sink.Option{sink.WithDPI(o.DPI), sink.WithFont(o.Font)}
	if o.Transparent {
		opts = append(opts, sink.WithTransparent())
	}
	return opts
}

// OutputPath returns the file path for format.
func (o *Options) OutputPath(format string) string {
	return o.Output + "." + format
}
