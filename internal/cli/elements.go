package cli

import (
	"context"
	"fmt"
	"io"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ptable/pkg/element"
	"github.com/matzehuels/ptable/pkg/errors"
	ptio "github.com/matzehuels/ptable/pkg/io"
)

// elementsOpts holds the flags for the elements command.
type elementsOpts struct {
	props        string // comma-separated property names
	excludeNoble bool   // drop the noble gases
	data         string // data overrides file
	output       string // CSV output path
	csv          bool   // print CSV to stdout
	interactive  bool   // browse in a TUI
}

// elementsCommand creates the elements command for listing element data.
func (c *CLI) elementsCommand() *cobra.Command {
	var opts elementsOpts

	cmd := &cobra.Command{
		Use:   "elements",
		Short: "List element properties",
		Example: `  ptable elements --props atomic_mass,electronegativity
  ptable elements --exclude-noble -o elements.csv
  ptable elements --data prices.json --props price --csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runElements(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.props, "props", "", "properties to include (comma-separated, default all)")
	cmd.Flags().BoolVar(&opts.excludeNoble, "exclude-noble", false, "exclude noble gases")
	cmd.Flags().StringVar(&opts.data, "data", "", "element data overrides (.json or .toml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write CSV to file")
	cmd.Flags().BoolVar(&opts.csv, "csv", false, "print CSV instead of a table")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse elements interactively")

	return cmd
}

func (c *CLI) runElements(ctx context.Context, w io.Writer, opts elementsOpts) error {
	logger := loggerFromContext(ctx)

	p, err := loadProvider(ctx, opts.data)
	if err != nil {
		return err
	}
	props, err := selectProps(p, parseList(opts.props))
	if err != nil {
		return err
	}
	elements := filterElements(p.All(), opts.excludeNoble)
	logger.Debug("listing elements", "count", len(elements), "props", props)

	switch {
	case opts.output != "":
		if err := ptio.ExportElementsCSV(ctx, opts.output, elements, props); err != nil {
			return err
		}
		printSuccess("Exported %d elements", len(elements))
		printInfo("%d properties", len(props))
		printFile(opts.output)
		return nil
	case opts.csv:
		return ptio.WriteElementsCSV(w, elements, props)
	case opts.interactive:
		return browseElements(ctx, elements, props)
	}
	_, err = fmt.Fprintln(w, renderElementTable(elements, props))
	return err
}

// loadProvider returns the built-in data, with overrides from path when set.
func loadProvider(ctx context.Context, path string) (element.Provider, error) {
	if path == "" {
		return element.Default(), nil
	}
	o, err := ptio.ImportOverrides(ctx, path)
	if err != nil {
		return nil, err
	}
	return element.WithOverrides(element.Default(), o)
}

// selectProps validates requested property names; none selects all.
func selectProps(p element.Provider, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return p.Properties(), nil
	}
	for _, name := range requested {
		if !element.HasProperty(p, name) {
			return nil, errors.New(errors.ErrCodeUnknownProperty, "unknown property %q (known: %v)", name, p.Properties())
		}
	}
	return requested, nil
}

func filterElements(elements []element.Element, excludeNoble bool) []element.Element {
	if !excludeNoble {
		return elements
	}
	return slices.DeleteFunc(elements, element.Element.IsNobleGas)
}

// browseElements runs the element list and prints the chosen element.
func browseElements(ctx context.Context, elements []element.Element, props []string) error {
	final, err := tea.NewProgram(NewElementListModel(elements, props), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	m, ok := final.(ElementListModel)
	if !ok || m.Selected == nil {
		return nil
	}
	e := m.Selected
	printNewline()
	fmt.Println(StyleTitle.Render(fmt.Sprintf("%s  %s", e.Symbol, e.Name)))
	printKeyValue("Z", fmt.Sprint(e.Z))
	printKeyValue("category", e.Category)
	printKeyValue("position", fmt.Sprintf("group %d, period %d", e.Group, e.Period))
	for _, p := range props {
		if v := e.FormatValue(p); v != "" {
			printKeyValue(p, v)
		}
	}
	return nil
}
