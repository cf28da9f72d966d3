package engine

import "sort"

// MatchSet is the set of cells found in a run during one scan.
type MatchSet map[Coord]struct{}

func (m MatchSet) Add(c Coord) {
	m[c] = struct{}{}
}

func (m MatchSet) Contains(c Coord) bool {
	_, ok := m[c]
	return ok
}

func (m MatchSet) Len() int {
	return len(m)
}

// Sorted returns the coordinates in row-major order.
func (m MatchSet) Sorted() []Coord {
	coords := make([]Coord, 0, len(m))
	for c := range m {
		coords = append(coords, c)
	}

	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
	return coords
}
