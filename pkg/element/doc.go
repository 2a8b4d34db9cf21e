// Package element provides per-element reference data for H (Z=1) through
// Lr (Z=103).
//
// # Overview
//
// Every element is identified by its atomic number Z and its chemical symbol,
// which map one-to-one. An [Element] carries its display placement on the
// periodic table grid (Group and Row), its chemical Period and Category, and
// a mapping of property name to value. Numeric properties are float64;
// structured properties such as the electron configuration are strings.
//
// The built-in dataset is embedded TOML and is parsed once on first use:
//
//	tbl := element.Default()
//	fe, err := tbl.Lookup(element.Sym("Fe"))
//	mass, ok := fe.Float("atomic_mass")
//
// # Overrides
//
// Callers can replace or extend properties per element with [WithOverrides].
// The result is a new [Table]; the source provider is never modified:
//
//	tbl, err := element.WithOverrides(element.Default(), element.Overrides{
//	    "Fe": {"surface_energy": 2.45},
//	})
//
// # Placement
//
// Group and Row follow the conventional 18-column layout. Lanthanides (La..Lu)
// occupy columns 3..17 of row 8 and actinides (Ac..Lr) columns 3..17 of row 9,
// so every element has a distinct grid position.
//
// # Compounds
//
// [ParseFormula] splits a chemical formula such as "Mg(OH)2" into a
// [Composition] that reports molar weight and atomic or weight fractions.
package element
