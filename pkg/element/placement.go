package element

// periodStarts holds the atomic number opening each period, plus a sentinel.
var periodStarts = [...]int{1, 3, 11, 19, 37, 55, 87, 119}

// PeriodOf returns the chemical period of atomic number z, or 0 when z is out
// of range.
func PeriodOf(z int) int {
	if z < 1 || z > Count {
		return 0
	}
	for p := 1; p < len(periodStarts); p++ {
		if z < periodStarts[p] {
			return p
		}
	}
	return 0
}

// Place returns the display column and row of atomic number z. The f-block
// is laid out below the main table: lanthanides in row 8, actinides in row 9,
// both starting at column 3.
func Place(z int) (group, row int) {
	switch {
	case z >= 57 && z <= 71:
		return z - 54, 8
	case z >= 89 && z <= 103:
		return z - 86, 9
	}
	p := PeriodOf(z)
	if p == 0 {
		return 0, 0
	}
	pos := z - periodStarts[p-1] + 1
	switch p {
	case 1:
		if z == 1 {
			return 1, 1
		}
		return 18, 1
	case 2, 3:
		if pos <= 2 {
			return pos, p
		}
		return pos + 10, p
	case 4, 5:
		return pos, p
	default:
		// Positions 3..17 belong to the f-block rows handled above.
		if pos <= 2 {
			return pos, p
		}
		return pos - 14, p
	}
}
