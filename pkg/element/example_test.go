package element_test

import (
	"fmt"

	"github.com/matzehuels/ptable/pkg/element"
)

func ExampleTable_Lookup() {
	tbl := element.Default()

	fe, _ := tbl.Lookup(element.Sym("Fe"))
	fmt.Println(fe.Z, fe.Name, fe.Category)
	fmt.Println("group", fe.Group, "row", fe.Row)
	fmt.Println(fe.FormatValue(element.PropElectronConfiguration))
	// Output:
	// 26 Iron transition metal
	// group 8 row 4
	// [Ar] 3d6 4s2
}

func ExampleWithOverrides() {
	tbl, err := element.WithOverrides(element.Default(), element.Overrides{
		"Pt": {"surface_energy": 2.49},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	pt, _ := tbl.Lookup(element.Sym("Pt"))
	fmt.Println(pt.FormatValue("surface_energy"))
	// Output: 2.49
}

func ExampleParseFormula() {
	c, _ := element.ParseFormula("Mg(OH)2")
	w, _ := c.Weight(element.Default())

	fmt.Println(c.Symbols())
	fmt.Printf("%.2f g/mol\n", w)
	fmt.Printf("x(H) = %.1f\n", c.AtomicFraction("H"))
	// Output:
	// [Mg O H]
	// 58.32 g/mol
	// x(H) = 0.4
}
