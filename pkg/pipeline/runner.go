package pipeline

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ptable/pkg/config"
	"github.com/matzehuels/ptable/pkg/element"
	"github.com/matzehuels/ptable/pkg/errors"
	ptio "github.com/matzehuels/ptable/pkg/io"
	"github.com/matzehuels/ptable/pkg/observability"
	"github.com/matzehuels/ptable/pkg/render/table"
	"github.com/matzehuels/ptable/pkg/render/table/sink"
)

// sourceBuiltin names the default configuration in hooks and logs.
const sourceBuiltin = "builtin"

// Runner executes pipeline runs.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → render → encode → write pipeline. Files
// are only written when opts.Output is set.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)

	// Stage 1: Load
	loadStart := time.Now()
	cfg, err := r.Load(ctx, &opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	result := &Result{Config: cfg}
	result.Stats.LoadTime = time.Since(loadStart)

	r.Logger.Debug("loaded configuration",
		"source", source(opts.ConfigPath),
		"labels", len(cfg.Labels),
		"overrides", len(cfg.Data),
		"duration", result.Stats.LoadTime)

	// Stage 2: Render
	renderStart := time.Now()
	scene, provider, err := r.Render(ctx, cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Scene = scene
	result.Provider = provider
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.Cells = len(scene.Cells)
	if scene.Legend != nil {
		result.Stats.LegendEntries = len(scene.Legend.Entries)
	}

	r.Logger.Info("rendered table",
		"cells", result.Stats.Cells,
		"legend", result.Stats.LegendEntries,
		"duration", result.Stats.RenderTime)

	// Stage 3: Encode
	exportStart := time.Now()
	artifacts, err := r.Encode(ctx, scene, opts)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	result.Artifacts = artifacts
	for _, data := range artifacts {
		result.Stats.Bytes += len(data)
	}

	// Stage 4: Write
	if opts.Output != "" {
		files, err := r.Write(ctx, artifacts, opts)
		if err != nil {
			return nil, fmt.Errorf("write: %w", err)
		}
		result.Files = files
	}
	result.Stats.ExportTime = time.Since(exportStart)

	r.Logger.Info("exported outputs",
		"formats", opts.Formats,
		"bytes", result.Stats.Bytes,
		"duration", result.Stats.ExportTime)

	return result, nil
}

// Load reads the configuration file and data overrides named by opts and
// fills unset options from the file's [render] table. Without a config path
// the built-in defaults are used.
func (r *Runner) Load(ctx context.Context, opts *Options) (cfg table.Config, err error) {
	src := source(opts.ConfigPath)
	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, src)
	defer func() {
		observability.Pipeline().OnLoadComplete(ctx, src, time.Since(start), err)
	}()

	if opts.ConfigPath != "" {
		f, err := config.Load(opts.ConfigPath)
		if err != nil {
			return table.Config{}, err
		}
		if cfg, err = f.Table(); err != nil {
			return table.Config{}, err
		}
		if err := mergeRender(opts, f); err != nil {
			return table.Config{}, err
		}
	}

	if opts.Shape != "" {
		cfg.Frame.Shape = opts.Shape
	}
	if opts.DataPath != "" {
		o, err := ptio.ImportOverrides(ctx, opts.DataPath)
		if err != nil {
			return table.Config{}, err
		}
		cfg.Data = mergeOverrides(cfg.Data, o)
	}
	return cfg, nil
}

// mergeRender copies values from the file's [render] table into options
// that are still unset.
func mergeRender(opts *Options, f *config.File) error {
	ro, err := f.RenderOptions()
	if err != nil {
		return err
	}
	if opts.Title == "" {
		opts.Title = ro.Title
	}
	if opts.TitleFontSize == 0 {
		opts.TitleFontSize = ro.TitleFontSize
	}
	if opts.Width == 0 {
		opts.Width = ro.FigureSize[0]
	}
	if opts.Height == 0 {
		opts.Height = ro.FigureSize[1]
	}
	if opts.Legend.Loc == "" {
		opts.Legend.Loc = ro.Legend.Loc
	}
	if opts.Legend.Anchor == nil {
		opts.Legend.Anchor = ro.Legend.Anchor
	}
	if opts.Legend.FontSize == 0 {
		opts.Legend.FontSize = ro.Legend.FontSize
	}
	opts.Legend.Hidden = opts.Legend.Hidden || ro.Legend.Hidden

	rs := f.Render
	if len(opts.Formats) == 0 {
		opts.Formats = rs.Formats
	}
	if opts.DPI == 0 {
		opts.DPI = rs.DPI
	}
	if opts.Font == "" {
		opts.Font = rs.Font
	}
	opts.Transparent = opts.Transparent || rs.Transparent
	return nil
}

// mergeOverrides layers extra on top of base, property by property.
func mergeOverrides(base, extra element.Overrides) element.Overrides {
	out := make(element.Overrides, len(base)+len(extra))
	for k, props := range base {
		out[k] = maps.Clone(props)
	}
	for k, props := range extra {
		if out[k] == nil {
			out[k] = make(map[string]any, len(props))
		}
		maps.Copy(out[k], props)
	}
	return out
}

// Render validates cfg and builds the scene.
func (r *Runner) Render(ctx context.Context, cfg table.Config, opts Options) (scene *table.Scene, p element.Provider, err error) {
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Title)
	defer func() {
		cells := 0
		if scene != nil {
			cells = len(scene.Cells)
		}
		observability.Pipeline().OnRenderComplete(ctx, cells, time.Since(start), err)
	}()

	rd, err := table.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	scene, err = rd.Render(opts.RenderOptions())
	if err != nil {
		return nil, nil, err
	}
	return scene, rd.Provider(), nil
}

// Encode draws scene in every format of opts.
func (r *Runner) Encode(ctx context.Context, scene *table.Scene, opts Options) (artifacts map[string][]byte, err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	start := time.Now()
	size := 0
	observability.Pipeline().OnExportStart(ctx, opts.Formats)
	defer func() {
		observability.Pipeline().OnExportComplete(ctx, opts.Formats, size, time.Since(start), err)
	}()

	artifacts = make(map[string][]byte, len(opts.Formats))
	sinkOpts := opts.SinkOptions()
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := sink.Render(sink.Format(format), scene, sinkOpts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", format, err)
		}
		artifacts[format] = data
		size += len(data)
		opts.Logger.Debug("encoded", "format", format, "bytes", len(data))
	}
	return artifacts, nil
}

// Write stores each artifact at opts.OutputPath(format), creating the parent
// directory if needed.
func (r *Runner) Write(ctx context.Context, artifacts map[string][]byte, opts Options) ([]string, error) {
	if dir := filepath.Dir(opts.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeIO, err, "create %s", dir)
		}
	}
	var files []string
	for _, format := range opts.Formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := opts.OutputPath(format)
		err := os.WriteFile(path, data, 0o644)
		observability.IO().OnWrite(ctx, path, len(data), err)
		if err != nil {
			return files, errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
		}
		files = append(files, path)
	}
	return files, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func source(path string) string {
	if path == "" {
		return sourceBuiltin
	}
	return path
}
