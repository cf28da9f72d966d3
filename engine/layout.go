package engine

import (
	"gioui.org/f32"

	"runedrag/utils"
)

// Layout places the board on screen: Origin is the pixel position of the top
// left corner of cell (0,0) and TileSize the side of a square cell.
type Layout struct {
	Origin   f32.Point
	TileSize float32
}

// CellAt maps a pixel position to the cell under it. Positions left of or
// above the origin map to negative indices.
func (l Layout) CellAt(p f32.Point) Coord {
	return Coord{
		Row: utils.FloorDiv(p.Y-l.Origin.Y, l.TileSize),
		Col: utils.FloorDiv(p.X-l.Origin.X, l.TileSize),
	}
}

// CellOrigin is the pixel position of the top left corner of c.
func (l Layout) CellOrigin(c Coord) f32.Point {
	return f32.Point{
		X: l.Origin.X + float32(c.Col)*l.TileSize,
		Y: l.Origin.Y + float32(c.Row)*l.TileSize,
	}
}

// CellCenter is the pixel position of the middle of c.
func (l Layout) CellCenter(c Coord) f32.Point {
	return l.CellOrigin(c).Add(f32.Point{X: l.TileSize / 2, Y: l.TileSize / 2})
}
