package element

import (
	"maps"
	"slices"

	"github.com/matzehuels/ptable/pkg/errors"
)

// Overrides maps an element identifier (symbol or atomic number as a string)
// to property values that replace or extend the provider's data.
type Overrides map[string]map[string]any

// WithOverrides returns a new [Table] holding p's elements with o merged in.
// Values must be numbers or strings. Identity fields cannot be overridden.
func WithOverrides(p Provider, o Overrides) (*Table, error) {
	elements := p.All()
	// Sorted keys keep error reporting deterministic.
	for _, key := range slices.Sorted(maps.Keys(o)) {
		ref, err := ParseRef(key)
		if err != nil {
			return nil, err
		}
		e, err := p.Lookup(ref)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeUnknownElement, err, "data override for %q", key)
		}
		props := elements[e.Z-1].Properties
		for name, v := range o[key] {
			switch name {
			case keyZ, keySymbol, keyName, keyCategory:
				return nil, errors.New(errors.ErrCodeInvalidConfig, "data override for %s: %q is an identity field", e.Symbol, name)
			}
			nv, err := normalizeValue(v)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "data override %s.%s", e.Symbol, name)
			}
			props[name] = nv
		}
	}
	return newTable(elements)
}
