package board

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// Component is a set of 4-connected cells sharing one color.
// The zero Component is empty.
type Component struct {
	members *mapset.Set[Coord]
}

func newComponent() Component {
	members := mapset.New[Coord]()
	return Component{members: &members}
}

// Size returns the number of cells in the component.
func (c Component) Size() int {
	if c.members == nil {
		return 0
	}
	return c.members.Size()
}

// Has reports whether p belongs to the component.
func (c Component) Has(p Coord) bool {
	if c.members == nil {
		return false
	}
	return c.members.Has(p)
}

// Each calls fn for every member in no particular order.
func (c Component) Each(fn func(p Coord)) {
	if c.members == nil {
		return
	}
	c.members.Each(fn)
}

// Coords returns the members sorted row by row, left to right.
func (c Component) Coords() []Coord {
	coords := make([]Coord, 0, c.Size())
	c.Each(func(p Coord) {
		coords = append(coords, p)
	})
	sort.Slice(coords, func(i, j int) bool {
		return coords[i].less(coords[j])
	})
	return coords
}

// FindComponent flood-fills from seed over cells of the seed's color.
// An empty or out-of-bounds seed yields an empty component.
//
// The fill uses an explicit worklist, so board size never bounds call depth.
func FindComponent(g Grid, seed Coord) Component {
	found := newComponent()
	if !g.InBounds(seed.X, seed.Y) {
		return found
	}
	color := g.cell(seed.X, seed.Y)
	if color == Empty {
		return found
	}

	explored := mapset.New[Coord]()
	frontier := stack.New[Coord]()
	frontier.Push(seed)

	for frontier.Size() > 0 {
		p := frontier.Pop()
		if explored.Has(p) {
			continue
		}
		explored.Put(p)

		if g.cell(p.X, p.Y) != color {
			continue
		}
		found.members.Put(p)

		for _, n := range NeighborsInBounds(p, g.width, g.height) {
			if !explored.Has(n) {
				frontier.Push(n)
			}
		}
	}

	return found
}
