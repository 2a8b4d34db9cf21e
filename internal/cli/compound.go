package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ptable/pkg/element"
	ptio "github.com/matzehuels/ptable/pkg/io"
)

// compoundOpts holds the flags for the compound command.
type compoundOpts struct {
	fraction string // element whose fractions are reported
	data     string // data overrides file
	output   string // CSV output path
	csv      bool   // print CSV to stdout
}

// compoundCommand creates the compound command for formula properties.
func (c *CLI) compoundCommand() *cobra.Command {
	var opts compoundOpts

	cmd := &cobra.Command{
		Use:   "compound FORMULA...",
		Short: "Compute molar weights and fractions of compounds",
		Long: `Parse chemical formulas and report molar weight, atom counts and, with
--fraction, the atomic and weight fraction of one element. Formulas whose
largest element count reaches 30 are flagged.`,
		Example: `  ptable compound Fe2O3 "Mg(OH)2" CuSO4*5H2O
  ptable compound Li2O LiCoO2 --fraction Li -o lithium.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompound(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.fraction, "fraction", "", "element to report fractions for")
	cmd.Flags().StringVar(&opts.data, "data", "", "element data overrides (.json or .toml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write CSV to file")
	cmd.Flags().BoolVar(&opts.csv, "csv", false, "print CSV instead of a table")

	return cmd
}

func (c *CLI) runCompound(ctx context.Context, w io.Writer, formulas []string, opts compoundOpts) error {
	p, err := loadProvider(ctx, opts.data)
	if err != nil {
		return err
	}
	comps, err := parseFormulas(formulas)
	if err != nil {
		return err
	}
	if opts.fraction != "" {
		if _, err := p.Lookup(element.Sym(opts.fraction)); err != nil {
			return err
		}
	}
	loggerFromContext(ctx).Debug("parsed formulas", "count", len(comps))

	switch {
	case opts.output != "":
		if err := ptio.ExportCompoundsCSV(ctx, opts.output, comps, opts.fraction, p); err != nil {
			return err
		}
		printSuccess("Exported %d compounds", len(comps))
		printFile(opts.output)
		return nil
	case opts.csv:
		return ptio.WriteCompoundsCSV(w, comps, opts.fraction, p)
	}

	out, err := renderCompoundTable(comps, opts.fraction, p)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return err
	}
	for _, comp := range comps {
		if comp.MaxCount() >= ptio.LargeCount {
			printWarning("%s has %g atoms of one element", comp.Formula(), comp.MaxCount())
		}
	}
	return nil
}

func parseFormulas(formulas []string) ([]element.Composition, error) {
	comps := make([]element.Composition, 0, len(formulas))
	for _, f := range formulas {
		comp, err := element.ParseFormula(f)
		if err != nil {
			return nil, err
		}
		comps = append(comps, comp)
	}
	return comps, nil
}

// renderCompoundTable renders compositions as a bordered table.
func renderCompoundTable(comps []element.Composition, fraction string, p element.Provider) (string, error) {
	headers := []string{"Formula", "Reduced", "Weight (g/mol)", "Atoms", "Max"}
	if fraction != "" {
		headers = append(headers, "x("+fraction+")", "w("+fraction+")")
	}
	rows := make([][]string, 0, len(comps))
	for _, comp := range comps {
		weight, err := comp.Weight(p)
		if err != nil {
			return "", err
		}
		row := []string{
			comp.Formula(), comp.Reduced(),
			fmt.Sprintf("%.3f", weight),
			fmt.Sprintf("%g", comp.NumAtoms()),
			fmt.Sprintf("%g", comp.MaxCount()),
		}
		if fraction != "" {
			wf, err := comp.WeightFraction(fraction, p)
			if err != nil {
				return "", err
			}
			row = append(row, fmt.Sprintf("%.4f", comp.AtomicFraction(fraction)), fmt.Sprintf("%.4f", wf))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col >= 2:
				if comps[row].MaxCount() >= ptio.LargeCount {
					return StyleWarning
				}
				return StyleNumber
			}
			return StyleHighlight
		})
	return t.Render(), nil
}
