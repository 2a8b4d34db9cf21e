package element

import (
	_ "embed"
	"io"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ptable/pkg/errors"
)

//go:embed data/elements.toml
var dataset []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// identity keys carried by every dataset entry; all other keys are properties.
const (
	keyZ        = "z"
	keySymbol   = "symbol"
	keyName     = "name"
	keyCategory = "category"
)

// Default returns the table parsed from the embedded dataset. The table is
// shared and must be treated as read-only; use [WithOverrides] to derive a
// modified copy.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Parse(dataset)
	})
	if defaultErr != nil {
		panic("element: embedded dataset: " + defaultErr.Error())
	}
	return defaultTable
}

// Load reads a dataset in the embedded TOML format from r.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read element dataset")
	}
	return Parse(data)
}

// Parse decodes a TOML dataset: a top-level array "elements" of tables with
// keys z, symbol, name, category and any number of property keys.
func Parse(data []byte) (*Table, error) {
	var doc struct {
		Elements []map[string]any `toml:"elements"`
	}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode element dataset")
	}

	elements := make([]Element, 0, len(doc.Elements))
	for i, row := range doc.Elements {
		e, err := decodeEntry(row)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "element entry %d", i+1)
		}
		elements = append(elements, e)
	}
	return newTable(elements)
}

func decodeEntry(row map[string]any) (Element, error) {
	var e Element
	z, ok := row[keyZ].(int64)
	if !ok {
		return e, errors.New(errors.ErrCodeInvalidFormat, "missing integer %q", keyZ)
	}
	e.Z = int(z)
	if e.Symbol, ok = row[keySymbol].(string); !ok {
		return e, errors.New(errors.ErrCodeInvalidFormat, "missing string %q", keySymbol)
	}
	e.Name, _ = row[keyName].(string)
	e.Category, _ = row[keyCategory].(string)

	e.Properties = make(map[string]any, len(row))
	for k, v := range row {
		switch k {
		case keyZ, keySymbol, keyName, keyCategory:
			continue
		}
		nv, err := normalizeValue(v)
		if err != nil {
			return e, errors.Wrap(errors.ErrCodeInvalidFormat, err, "property %q", k)
		}
		e.Properties[k] = nv
	}
	return e, nil
}

// normalizeValue coerces decoded values to the two property kinds: float64
// for numbers, string for structured values.
func normalizeValue(v any) (any, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case string:
		return x, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported value %v (%T)", v, v)
}
