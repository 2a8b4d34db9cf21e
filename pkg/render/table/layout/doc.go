// Package layout places periodic table cells on a 2-D grid.
//
// Each element occupies one cell whose lower-left corner is
// (group, -row) scaled by the cell size, so rows grow downward and
// the f-block rows 8 and 9 sit below the main table. Positions are taken
// verbatim from the element placement; the placement data guarantees that
// no two elements share a cell.
//
//	pos := layout.Positions(element.Default().All(), 1, 1)
//	fe := pos[26] // {X: 8, Y: -4}
package layout
