package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ptable/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The CLI's logger is attached to each command's context before it runs and
// is available through loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "ptable renders periodic table heat maps",
		Long: `ptable draws the periodic table with per-element frames, fills, labels and
colour gradients, and exports it as SVG, PNG, JPEG, TIFF, PDF, EPS or JSON.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.Logger.Debug(appName, "version", buildinfo.Short(), "command", cmd.Name())
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.elementsCommand())
	root.AddCommand(c.compoundCommand())
	root.AddCommand(c.completionCommand())
	root.AddCommand(versionCommand())

	return root
}

func versionCommand() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), buildinfo.Short())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the version and commit")
	return cmd
}
