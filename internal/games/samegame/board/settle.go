package board

// SettleVertical drops the tiles of every column to the bottom.
// Tiles keep their top-to-bottom order; the top of the column fills with Empty.
func SettleVertical(g Grid) Grid {
	out := blank(g.width, g.height)
	for x := 0; x < g.width; x++ {
		floor := g.height - 1
		for y := g.height - 1; y >= 0; y-- {
			if c := g.cell(x, y); c != Empty {
				out.set(x, floor, c)
				floor--
			}
		}
	}
	return out
}

// SettleHorizontal removes fully empty columns and slides the remaining
// columns left, keeping their order. Vacated columns on the right are Empty.
//
// Run it on the output of SettleVertical: a column only reads as empty once
// its tiles have been resolved.
func SettleHorizontal(g Grid) Grid {
	out := blank(g.width, g.height)
	dst := 0
	for x := 0; x < g.width; x++ {
		if g.columnEmpty(x) {
			continue
		}
		for y := 0; y < g.height; y++ {
			out.set(dst, y, g.cell(x, y))
		}
		dst++
	}
	return out
}

// Settle applies gravity: vertical collapse, then horizontal collapse.
// A grid that is already settled comes back equal to itself.
func Settle(g Grid) Grid {
	return SettleHorizontal(SettleVertical(g))
}
