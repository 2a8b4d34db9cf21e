package io

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/matzehuels/ptable/pkg/element"
	"github.com/matzehuels/ptable/pkg/errors"
	"github.com/matzehuels/ptable/pkg/observability"
)

// LargeCount is the largest per-element count above which a compound is
// flagged in compound tables.
const LargeCount = 30

var elementColumns = []string{"z", "symbol", "name", "category", "group", "period"}

// WriteElementsCSV writes elements and the named properties as CSV. An empty
// props writes every property the elements define, in sorted order.
func WriteElementsCSV(w io.Writer, elements []element.Element, props []string) error {
	if len(props) == 0 {
		props = propertyNames(elements)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(append(append([]string(nil), elementColumns...), props...)); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write header")
	}
	for _, e := range elements {
		rec := []string{
			strconv.Itoa(e.Z), e.Symbol, e.Name, e.Category,
			strconv.Itoa(e.Group), strconv.Itoa(e.Period),
		}
		for _, p := range props {
			rec = append(rec, e.FormatValue(p))
		}
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write %s", e.Symbol)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "flush")
	}
	return nil
}

// ExportElementsCSV writes elements to a CSV file at path.
func ExportElementsCSV(ctx context.Context, path string, elements []element.Element, props []string) error {
	return exportFile(ctx, path, func(w io.Writer) error {
		return WriteElementsCSV(w, elements, props)
	})
}

// WriteCompoundsCSV writes one row per composition. When fractionOf names an
// element, its atomic and weight fractions are added as columns. Weights use
// p, or the built-in data when p is nil.
func WriteCompoundsCSV(w io.Writer, compounds []element.Composition, fractionOf string, p element.Provider) error {
	if p == nil {
		p = element.Default()
	}
	header := []string{"formula", "reduced", "weight", "num_atoms", "max_count", "large"}
	if fractionOf != "" {
		if _, err := p.Lookup(element.Sym(fractionOf)); err != nil {
			return err
		}
		header = append(header, "x_"+fractionOf, "w_"+fractionOf)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write header")
	}
	for _, c := range compounds {
		weight, err := c.Weight(p)
		if err != nil {
			return err
		}
		rec := []string{
			c.Formula(), c.Reduced(), formatFixed(weight),
			formatFloat(c.NumAtoms()), formatFloat(c.MaxCount()),
			strconv.FormatBool(c.MaxCount() >= LargeCount),
		}
		if fractionOf != "" {
			wf, err := c.WeightFraction(fractionOf, p)
			if err != nil {
				return err
			}
			rec = append(rec, formatFixed(c.AtomicFraction(fractionOf)), formatFixed(wf))
		}
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write %s", c.Formula())
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "flush")
	}
	return nil
}

// ExportCompoundsCSV writes compositions to a CSV file at path.
func ExportCompoundsCSV(ctx context.Context, path string, compounds []element.Composition, fractionOf string, p element.Provider) error {
	return exportFile(ctx, path, func(w io.Writer) error {
		return WriteCompoundsCSV(w, compounds, fractionOf, p)
	})
}

func exportFile(ctx context.Context, path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		observability.IO().OnWrite(ctx, path, 0, err)
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	cw := &countingWriter{w: f}
	err = write(cw)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = errors.Wrap(errors.ErrCodeIO, cerr, "close %s", path)
	}
	observability.IO().OnWrite(ctx, path, cw.n, err)
	return err
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

func propertyNames(elements []element.Element) []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range elements {
		for name := range e.Properties {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	slices.Sort(names)
	return names
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatFixed(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
