package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ptable/pkg/render/table"
	"github.com/matzehuels/ptable/pkg/render/table/frame"
	"github.com/matzehuels/ptable/pkg/render/table/sink"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for ptable.

Bash:
  $ source <(ptable completion bash)

Zsh:
  $ ptable completion zsh > "${fpath[1]}/_ptable"

Fish:
  $ ptable completion fish | source

PowerShell:
  PS> ptable completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}

	return cmd
}

// completeFormats completes comma-separated output formats.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	formats := sink.Formats()
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeLegendLocs completes legend placements.
func completeLegendLocs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return table.LegendLocs(), cobra.ShellCompDirectiveNoFileComp
}

// completeShapes completes frame shapes.
func completeShapes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	kinds := frame.Kinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeConfig completes TOML config files.
func completeConfig(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
}
