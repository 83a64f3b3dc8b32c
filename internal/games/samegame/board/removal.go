package board

// MinPopSize is the smallest component that can be popped.
// A lone tile with no same-colored neighbor stays on the board.
const MinPopSize = 2

// CanPop reports whether the component is large enough to be removed.
func CanPop(c Component) bool {
	return c.Size() >= MinPopSize
}

// RemoveComponent returns a grid with every member of c emptied.
// If c is too small to pop, g is returned unchanged.
func RemoveComponent(g Grid, c Component) Grid {
	if !CanPop(c) {
		return g
	}

	out := g.clone()
	c.Each(func(p Coord) {
		if out.InBounds(p.X, p.Y) {
			out.set(p.X, p.Y, Empty)
		}
	})
	return out
}
