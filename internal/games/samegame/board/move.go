package board

// PlayMove clicks (x, y): pops the component under the cell when it has at
// least MinPopSize members, then settles the board.
//
// Clicking an empty cell or a lone tile is a legal no-op and returns g itself.
// Only an out-of-bounds coordinate is an error.
func PlayMove(g Grid, x, y int) (Grid, error) {
	c, err := g.At(x, y)
	if err != nil {
		return g, err
	}
	if c == Empty {
		return g, nil
	}

	component := FindComponent(g, C(x, y))
	if !CanPop(component) {
		return g, nil
	}
	return Settle(RemoveComponent(g, component)), nil
}

// Preview returns the component a click at (x, y) would pop, or an empty
// component when the click would be a no-op.
func Preview(g Grid, x, y int) Component {
	component := FindComponent(g, C(x, y))
	if !CanPop(component) {
		return newComponent()
	}
	return component
}
