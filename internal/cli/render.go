package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ptable/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
// Zero values defer to the config file's [render] table.
type renderOpts struct {
	output      string  // output base path, or a file whose extension picks the format
	formats     string  // comma-separated output formats
	data        string  // JSON or TOML data overrides
	shape       string  // frame shape replacing the config's
	title       string  // figure title
	width       float64 // figure width in inches
	height      float64 // figure height in inches
	transparent bool    // skip the white background
	dpi         int     // raster resolution
	font        string  // Liberation variant for symbols
	legendLoc   string  // legend placement
	noLegend    bool    // hide the legend
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [config.toml]",
		Short: "Render a periodic table to image files",
		Long: `Render a periodic table described by a TOML config file. Without a config
the plain table is drawn: black rectangles and no fill.`,
		Example: `  ptable render
  ptable render electronegativity.toml -f svg,png
  ptable render labels.toml -o out/labels.pdf --title "Alkali metals"`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			var configPath string
			if len(args) == 1 {
				configPath = args[0]
			}
			return c.runRender(cmd.Context(), opts.pipelineOptions(configPath))
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file or base path (default: config name or \"ptable\")")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, jpeg, tiff, pdf, eps, json (comma-separated)")
	cmd.Flags().StringVar(&opts.data, "data", "", "element data overrides (.json or .toml)")
	cmd.Flags().StringVar(&opts.shape, "shape", "", "frame shape")
	cmd.Flags().StringVar(&opts.title, "title", "", "figure title")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "figure width in inches (default 10)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "figure height in inches (default 6)")
	cmd.Flags().BoolVar(&opts.transparent, "transparent", false, "transparent background")
	cmd.Flags().IntVar(&opts.dpi, "dpi", 0, "raster resolution (default 150)")
	cmd.Flags().StringVar(&opts.font, "font", "", "symbol font: Serif (default), Sans, Mono")
	cmd.Flags().StringVar(&opts.legendLoc, "legend", "", "legend placement (default \"upper center\")")
	cmd.Flags().BoolVar(&opts.noLegend, "no-legend", false, "hide the legend")

	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.RegisterFlagCompletionFunc("shape", completeShapes)
	_ = cmd.RegisterFlagCompletionFunc("legend", completeLegendLocs)

	return cmd
}

// pipelineOptions converts flags into pipeline options.
func (o renderOpts) pipelineOptions(configPath string) pipeline.Options {
	output, formats := outputBase(o.output, configPath, parseFormats(o.formats))
	opts := pipeline.Options{
		ConfigPath:  configPath,
		DataPath:    o.data,
		Shape:       o.shape,
		Title:       o.title,
		Width:       o.width,
		Height:      o.height,
		Formats:     formats,
		Output:      output,
		Transparent: o.transparent,
		DPI:         o.dpi,
		Font:        o.font,
	}
	opts.Legend.Loc = o.legendLoc
	opts.Legend.Hidden = o.noLegend
	return opts
}

// runRender executes the pipeline and reports the written files.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options) error {
	opts.Logger = loggerFromContext(ctx)
	prog := newProgress(opts.Logger)

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("Rendered periodic table")

	printSuccess("Rendered %d elements", result.Stats.Cells)
	if opts.ConfigPath != "" {
		printDetail("config %s", opts.ConfigPath)
	}
	for _, f := range result.Files {
		printFile(f)
	}
	printStats(result.Stats)
	printNewline()
	printNextStep("Preview in the terminal", previewCommand(opts.ConfigPath))
	return nil
}

func previewCommand(configPath string) string {
	if configPath == "" {
		return appName + " show"
	}
	return appName + " show " + configPath
}
