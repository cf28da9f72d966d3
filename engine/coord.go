package engine

import "fmt"

// Coord addresses a cell, row 0 being the top row.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func GetNeighbor(dir Direction, from Coord) Coord {
	offset := DirToOffset(dir)
	return Coord{Row: from.Row + int(offset.Y), Col: from.Col + int(offset.X)}
}
