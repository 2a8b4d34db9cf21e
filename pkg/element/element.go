package element

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/ptable/pkg/errors"
)

// Count is the number of elements in the table (H through Lr).
const Count = 103

// Built-in property names present in the embedded dataset.
const (
	PropAtomicMass            = "atomic_mass"
	PropElectronegativity     = "electronegativity"
	PropMeltingPoint          = "melting_point"
	PropBoilingPoint          = "boiling_point"
	PropElectronConfiguration = "electron_configuration"
)

// Element is an immutable record of one chemical element.
type Element struct {
	Z        int    // Atomic number, 1..Count
	Symbol   string // Chemical symbol, e.g. "Fe"
	Name     string // English name
	Category string // e.g. "transition metal", "noble gas"
	Group    int    // Display column, 1..18
	Row      int    // Display row, 1..7, 8 for lanthanides, 9 for actinides
	Period   int    // Chemical period, 1..7

	// Properties maps a property name to a float64 or string value. Absent
	// keys mean the value is undefined for this element.
	Properties map[string]any
}

// Value returns the raw property value.
func (e Element) Value(name string) (any, bool) {
	v, ok := e.Properties[name]
	return v, ok
}

// Float returns a numeric property. It reports false when the property is
// absent or holds a string.
func (e Element) Float(name string) (float64, bool) {
	v, ok := e.Properties[name].(float64)
	return v, ok
}

// IsNobleGas reports whether the element belongs to group 18.
func (e Element) IsNobleGas() bool { return e.Category == "noble gas" }

func (e Element) clone() Element {
	e.Properties = maps.Clone(e.Properties)
	if e.Properties == nil {
		e.Properties = map[string]any{}
	}
	return e
}

// Ref identifies an element either by symbol or by atomic number. Exactly one
// of the fields is expected to be set; Symbol wins when both are.
type Ref struct {
	Symbol string
	Z      int
}

// Sym returns a reference by chemical symbol.
func Sym(symbol string) Ref { return Ref{Symbol: symbol} }

// Num returns a reference by atomic number.
func Num(z int) Ref { return Ref{Z: z} }

func (r Ref) String() string {
	if r.Symbol != "" {
		return r.Symbol
	}
	return strconv.Itoa(r.Z)
}

// ParseRef converts a loosely typed identifier into a [Ref]. Strings made of
// digits and whole numbers are atomic numbers; other strings are symbols.
func ParseRef(v any) (Ref, error) {
	switch x := v.(type) {
	case Ref:
		return x, nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return Ref{}, errors.New(errors.ErrCodeUnknownElement, "empty element identifier")
		}
		if z, err := strconv.Atoi(s); err == nil {
			return Num(z), nil
		}
		return Sym(s), nil
	case int:
		return Num(x), nil
	case int64:
		return Num(int(x)), nil
	case float64:
		if x != float64(int(x)) {
			return Ref{}, errors.New(errors.ErrCodeUnknownElement, "atomic number %v is not a whole number", x)
		}
		return Num(int(x)), nil
	}
	return Ref{}, errors.New(errors.ErrCodeUnknownElement, "unsupported element identifier %v (%T)", v, v)
}

// Provider supplies element records. Implementations must be deterministic
// and total over Z = 1..Count.
type Provider interface {
	// Lookup resolves a symbol or atomic number. Unknown identifiers yield an
	// error with code UNKNOWN_ELEMENT.
	Lookup(ref Ref) (Element, error)
	// All returns every element ordered by atomic number.
	All() []Element
	// Properties returns the sorted names of all properties defined for at
	// least one element.
	Properties() []string
}

// Table is the standard [Provider] backed by an in-memory array.
type Table struct {
	elements [Count]Element
	bySymbol map[string]int
	props    []string
}

var _ Provider = (*Table)(nil)

func newTable(elements []Element) (*Table, error) {
	if len(elements) != Count {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "dataset has %d elements, want %d", len(elements), Count)
	}
	t := &Table{bySymbol: make(map[string]int, Count)}
	seen := make(map[string]struct{})
	for _, e := range elements {
		if e.Z < 1 || e.Z > Count {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "atomic number %d out of range", e.Z)
		}
		if t.elements[e.Z-1].Z != 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "duplicate atomic number %d", e.Z)
		}
		if e.Symbol == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "element %d has no symbol", e.Z)
		}
		if _, dup := t.bySymbol[e.Symbol]; dup {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "duplicate symbol %q", e.Symbol)
		}
		e = e.clone()
		e.Group, e.Row = Place(e.Z)
		e.Period = PeriodOf(e.Z)
		t.elements[e.Z-1] = e
		t.bySymbol[e.Symbol] = e.Z
		for k := range e.Properties {
			seen[k] = struct{}{}
		}
	}
	t.props = slices.Sorted(maps.Keys(seen))
	return t, nil
}

// Lookup implements [Provider].
func (t *Table) Lookup(ref Ref) (Element, error) {
	z, err := t.Z(ref)
	if err != nil {
		return Element{}, err
	}
	return t.elements[z-1].clone(), nil
}

// Z resolves a reference to its atomic number.
func (t *Table) Z(ref Ref) (int, error) {
	if ref.Symbol != "" {
		z, ok := t.bySymbol[strings.TrimSpace(ref.Symbol)]
		if !ok {
			return 0, errors.New(errors.ErrCodeUnknownElement, "unknown element symbol %q", ref.Symbol)
		}
		return z, nil
	}
	if ref.Z < 1 || ref.Z > Count {
		return 0, errors.New(errors.ErrCodeUnknownElement, "atomic number %d outside 1..%d", ref.Z, Count)
	}
	return ref.Z, nil
}

// All implements [Provider].
func (t *Table) All() []Element {
	out := make([]Element, Count)
	for i, e := range t.elements {
		out[i] = e.clone()
	}
	return out
}

// Properties implements [Provider].
func (t *Table) Properties() []string { return slices.Clone(t.props) }

// HasProperty reports whether any element defines name.
func (t *Table) HasProperty(name string) bool {
	_, ok := slices.BinarySearch(t.props, name)
	return ok
}

// Symbols returns the element symbols ordered by atomic number.
func (t *Table) Symbols() []string {
	out := make([]string, Count)
	for i, e := range t.elements {
		out[i] = e.Symbol
	}
	return out
}

// Index resolves ref against p and returns its zero-based position (Z-1) in
// a per-element sequence.
func Index(p Provider, ref Ref) (int, error) {
	e, err := p.Lookup(ref)
	if err != nil {
		return 0, err
	}
	return e.Z - 1, nil
}

// HasProperty reports whether p defines name for at least one element.
func HasProperty(p Provider, name string) bool {
	if t, ok := p.(*Table); ok {
		return t.HasProperty(name)
	}
	return slices.Contains(p.Properties(), name)
}

// Range returns the minimum and maximum of a numeric property over all
// elements that define it.
func Range(p Provider, name string) (lo, hi float64, err error) {
	found := false
	for _, e := range p.All() {
		v, ok := e.Float(name)
		if !ok {
			continue
		}
		if !found || v < lo {
			lo = v
		}
		if !found || v > hi {
			hi = v
		}
		found = true
	}
	if !found {
		return 0, 0, errors.New(errors.ErrCodeUnknownProperty, "no element defines numeric property %q", name)
	}
	return lo, hi, nil
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

// FormatValue renders a property value for display. Missing values render as
// an empty string.
func (e Element) FormatValue(name string) string { return formatValue(e.Properties[name]) }
