// Package io reads and writes element data files.
//
// # Element Tables
//
// [WriteElementsCSV] writes one row per element with its identity columns
// followed by the requested properties:
//
//	z,symbol,name,category,group,period,atomic_mass,electronegativity
//	1,H,Hydrogen,nonmetal,1,1,1.008,2.2
//
// Missing values are empty cells. [ExportElementsCSV] writes to a file.
//
// # Compounds
//
// [WriteCompoundsCSV] writes one row per parsed formula with its reduced
// formula, molar weight, atom count, largest count and, when requested, the
// atomic and weight fraction of one element. Compositions whose largest count
// reaches [LargeCount] are flagged; cells that large are costly to simulate.
//
// # Overrides
//
// [ReadOverrides] decodes per-element data overrides from JSON:
//
//	{
//	  "Fe": {"melting_point": 1811},
//	  "26": {"magnetic": "ferro"}
//	}
//
// Keys are symbols or atomic numbers. [ImportOverrides] reads a .json or
// .toml file; TOML files use one table per element.
package io
