package engine

import "gioui.org/f32"

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// DirToOffset converts dir to a (col, row) offset: X is the column delta,
// Y the row delta.
func DirToOffset(dir Direction) f32.Point {
	offset := f32.Point{X: 0, Y: 0}

	switch dir {
	case Up:
		offset = f32.Point{X: 0, Y: -1}
	case Down:
		offset = f32.Point{X: 0, Y: 1}
	case Left:
		offset = f32.Point{X: -1, Y: 0}
	case Right:
		offset = f32.Point{X: 1, Y: 0}
	}
	return offset
}
