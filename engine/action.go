package engine

import "fmt"

// Action is a single swap between two cells.
type Action struct {
	From Coord
	To   Coord
}

func (a Action) String() string {
	return fmt.Sprintf("%v -> %v", a.From, a.To)
}

// Adjacent reports whether From and To share an edge.
func (a Action) Adjacent() bool {
	dr := a.From.Row - a.To.Row
	dc := a.From.Col - a.To.Col
	return dr*dr+dc*dc == 1
}
