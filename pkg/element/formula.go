package element

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/matzehuels/ptable/pkg/errors"
)

// Composition is the element breakdown of a chemical formula. Symbols keep
// the order of their first appearance.
type Composition struct {
	formula string
	order   []string
	amounts map[string]float64
}

// ParseFormula parses formulas such as "Fe2O3", "Mg(OH)2", "CuSO4·5H2O" or
// "Li0.5CoO2". Groups may use round or square brackets and carry a
// multiplier; amounts may be decimal. Every symbol must be a known element
// of the default table.
func ParseFormula(formula string) (Composition, error) {
	s := strings.TrimSpace(formula)
	if s == "" {
		return Composition{}, errors.New(errors.ErrCodeInvalidFormula, "empty formula")
	}
	c := Composition{formula: s, amounts: map[string]float64{}}

	// Hydrate dots separate independent parts, each with an optional
	// leading coefficient.
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '·' || r == '*' }) {
		coeff, rest := leadingNumber(part)
		if coeff == 0 {
			coeff = 1
		}
		p := &formulaParser{src: rest, full: s}
		counts, err := p.sequence(0)
		if err != nil {
			return Composition{}, err
		}
		if p.pos != len(p.src) {
			return Composition{}, p.errorf("unexpected %q", p.src[p.pos])
		}
		for _, ec := range counts {
			c.add(ec.symbol, ec.n*coeff)
		}
	}
	if len(c.order) == 0 {
		return Composition{}, errors.New(errors.ErrCodeInvalidFormula, "formula %q has no elements", s)
	}
	return c, nil
}

type elementCount struct {
	symbol string
	n      float64
}

type formulaParser struct {
	src  string
	full string
	pos  int
}

func (p *formulaParser) errorf(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidFormula, "formula %q: "+format, append([]any{p.full}, args...)...)
}

// sequence parses symbols and bracketed groups until the matching closer or
// the end of input.
func (p *formulaParser) sequence(closer byte) ([]elementCount, error) {
	var out []elementCount
	for p.pos < len(p.src) {
		ch := p.src[p.pos]
		switch {
		case ch == closer:
			return out, nil
		case ch == '(' || ch == '[':
			p.pos++
			want := byte(')')
			if ch == '[' {
				want = ']'
			}
			inner, err := p.sequence(want)
			if err != nil {
				return nil, err
			}
			if p.pos >= len(p.src) || p.src[p.pos] != want {
				return nil, p.errorf("missing %q", want)
			}
			p.pos++
			mult, err := p.amount()
			if err != nil {
				return nil, err
			}
			for _, ec := range inner {
				out = append(out, elementCount{ec.symbol, ec.n * mult})
			}
		case ch >= 'A' && ch <= 'Z':
			start := p.pos
			p.pos++
			for p.pos < len(p.src) && p.src[p.pos] >= 'a' && p.src[p.pos] <= 'z' {
				p.pos++
			}
			sym := p.src[start:p.pos]
			if _, err := Default().Z(Sym(sym)); err != nil {
				return nil, err
			}
			n, err := p.amount()
			if err != nil {
				return nil, err
			}
			out = append(out, elementCount{sym, n})
		case ch == ')' || ch == ']':
			return nil, p.errorf("unbalanced %q", ch)
		default:
			return nil, p.errorf("unexpected %q", ch)
		}
	}
	if closer != 0 {
		return nil, p.errorf("missing %q", closer)
	}
	return out, nil
}

// amount parses an optional multiplier. Absent means 1; zero is rejected.
func (p *formulaParser) amount() (float64, error) {
	rest := p.src[p.pos:]
	if len(rest) == 0 || !isNumberStart(rest[0]) {
		return 1, nil
	}
	n, tail := leadingNumber(rest)
	if len(tail) == len(rest) || n <= 0 {
		return 0, p.errorf("invalid amount at offset %d", p.pos)
	}
	p.pos = len(p.src) - len(tail)
	return n, nil
}

func isNumberStart(b byte) bool { return b >= '0' && b <= '9' || b == '.' }

// leadingNumber splits a decimal prefix off s. It returns 0 when s does not
// start with a number.
func leadingNumber(s string) (float64, string) {
	end := 0
	for end < len(s) && (unicode.IsDigit(rune(s[end])) || s[end] == '.') {
		end++
	}
	if end == 0 {
		return 0, s
	}
	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, s
	}
	return n, s[end:]
}

func (c *Composition) add(sym string, n float64) {
	if _, ok := c.amounts[sym]; !ok {
		c.order = append(c.order, sym)
	}
	c.amounts[sym] += n
}

// Formula returns the formula as written by the caller.
func (c Composition) Formula() string { return c.formula }

// Symbols returns the distinct symbols in order of first appearance.
func (c Composition) Symbols() []string { return append([]string(nil), c.order...) }

// Amount returns the number of atoms of sym per formula unit.
func (c Composition) Amount(sym string) float64 { return c.amounts[sym] }

// NumAtoms returns the total atom count per formula unit.
func (c Composition) NumAtoms() float64 {
	var n float64
	for _, sym := range c.order {
		n += c.amounts[sym]
	}
	return n
}

// MaxCount returns the largest per-element amount.
func (c Composition) MaxCount() float64 {
	var m float64
	for _, sym := range c.order {
		m = math.Max(m, c.amounts[sym])
	}
	return m
}

// AtomicFraction returns the share of sym among all atoms.
func (c Composition) AtomicFraction(sym string) float64 {
	total := c.NumAtoms()
	if total == 0 {
		return 0
	}
	return c.amounts[sym] / total
}

// Weight returns the molar mass in g/mol using each element's atomic_mass.
func (c Composition) Weight(p Provider) (float64, error) {
	var w float64
	for _, sym := range c.order {
		m, err := atomicMass(p, sym)
		if err != nil {
			return 0, err
		}
		w += m * c.amounts[sym]
	}
	return w, nil
}

// WeightFraction returns the mass share of sym in the compound.
func (c Composition) WeightFraction(sym string, p Provider) (float64, error) {
	if c.amounts[sym] == 0 {
		return 0, nil
	}
	total, err := c.Weight(p)
	if err != nil {
		return 0, err
	}
	m, err := atomicMass(p, sym)
	if err != nil {
		return 0, err
	}
	return m * c.amounts[sym] / total, nil
}

func atomicMass(p Provider, sym string) (float64, error) {
	e, err := p.Lookup(Sym(sym))
	if err != nil {
		return 0, err
	}
	m, ok := e.Float(PropAtomicMass)
	if !ok {
		return 0, errors.New(errors.ErrCodeUnknownProperty, "%s has no %s", sym, PropAtomicMass)
	}
	return m, nil
}

// String returns the normalised formula with merged symbols, e.g. "Mg(OH)2"
// becomes "MgO2H2".
func (c Composition) String() string {
	var b strings.Builder
	for _, sym := range c.order {
		b.WriteString(sym)
		b.WriteString(formatAmount(c.amounts[sym]))
	}
	return b.String()
}

// Reduced divides whole-number amounts by their greatest common divisor.
// Compositions with fractional amounts are returned unreduced.
func (c Composition) Reduced() string {
	div := 0
	for _, sym := range c.order {
		n := c.amounts[sym]
		if n != math.Trunc(n) {
			return c.String()
		}
		div = gcd(div, int(n))
	}
	if div <= 1 {
		return c.String()
	}
	var b strings.Builder
	for _, sym := range c.order {
		b.WriteString(sym)
		b.WriteString(formatAmount(c.amounts[sym] / float64(div)))
	}
	return b.String()
}

func formatAmount(n float64) string {
	if n == 1 {
		return ""
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
