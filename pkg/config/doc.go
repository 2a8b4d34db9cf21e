// Package config reads periodic table descriptions from TOML files.
//
// A file mirrors [table.Config] with one table per block plus a [render]
// table for figure options:
//
//	[frame]
//	shape = "rounded-rectangle"
//	pad = 0.1
//
//	[colors]
//	frame = "black"
//	background = { depend_on = "electronegativity", cmap = "coolwarm", cbar = true }
//
//	[labels.frame]
//	Alkali = ["Li", "Na", "K"]
//	Halogens = { elements = ["F", "Cl"], color = "tab:green" }
//
//	[data.Fe]
//	melting_point = 1811.0
//
//	[render]
//	title = "Pauling electronegativity"
//	width = 10.0
//	height = 6.0
//
// A channel under [colors] is a string (one colour for every cell), an array
// of 103 colours, or a gradient table. Labels directly under [labels] colour
// the background channel. Label order follows the file.
//
// [table.Config]: github.com/matzehuels/ptable/pkg/render/table.Config
package config
