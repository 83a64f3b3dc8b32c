package board

// IsWon reports whether every cell is empty.
func IsWon(g Grid) bool {
	for _, c := range g.cells {
		if c != Empty {
			return false
		}
	}
	return true
}

// IsLost always reports false. The game has no lose condition: a board with
// no remaining pops is not treated as a loss. Use HasMoves to tell the player.
func IsLost(Grid) bool {
	return false
}

// HasMoves returns true if any two orthogonally adjacent tiles share a color.
func HasMoves(g Grid) bool {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cell(x, y)
			if c == Empty {
				continue
			}
			// Check right neighbor
			if x < g.width-1 && g.cell(x+1, y) == c {
				return true
			}
			// Check bottom neighbor
			if y < g.height-1 && g.cell(x, y+1) == c {
				return true
			}
		}
	}
	return false
}
