package board

// neighborOffsets are the four orthogonal steps: down, right, left, up.
var neighborOffsets = [4]Coord{{0, 1}, {1, 0}, {-1, 0}, {0, -1}}

// NeighborsInBounds returns the up-to-4 orthogonal neighbors of p that lie
// within [0,width) x [0,height). The origin itself is never included.
func NeighborsInBounds(p Coord, width, height int) []Coord {
	neighbors := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := p.Add(d.X, d.Y)
		if n.X >= 0 && n.X < width && n.Y >= 0 && n.Y < height {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}
