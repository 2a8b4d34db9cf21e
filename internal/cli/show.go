package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ptable/pkg/pipeline"
	"github.com/matzehuels/ptable/pkg/render/table/preview"
)

// showCommand creates the show command for the interactive preview.
func (c *CLI) showCommand() *cobra.Command {
	var data, shape, title string

	cmd := &cobra.Command{
		Use:   "show [config.toml]",
		Short: "Preview a periodic table in the terminal",
		Long: `Preview a periodic table in the terminal. Cells take their fill colour as
background. Move with the arrow keys or hjkl to inspect an element; q quits.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{DataPath: data, Shape: shape, Title: title}
			if len(args) == 1 {
				opts.ConfigPath = args[0]
			}
			return c.runShow(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "element data overrides (.json or .toml)")
	cmd.Flags().StringVar(&shape, "shape", "", "frame shape")
	cmd.Flags().StringVar(&title, "title", "", "title shown above the table")
	_ = cmd.RegisterFlagCompletionFunc("shape", completeShapes)

	return cmd
}

// runShow renders the scene without encoding it and opens the preview.
func (c *CLI) runShow(ctx context.Context, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger
	runner := c.newRunner()

	cfg, err := runner.Load(ctx, &opts)
	if err != nil {
		return err
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	scene, provider, err := runner.Render(ctx, cfg, opts)
	if err != nil {
		return err
	}
	logger.Debug("opening preview", "cells", len(scene.Cells))
	return preview.Show(ctx, scene, provider)
}
