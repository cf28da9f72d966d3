package engine

import "gioui.org/f32"

// MapPointerToCell returns the cell under p, or false when p is off the board.
func (e *Engine) MapPointerToCell(p f32.Point) (Coord, bool) {
	c := e.layout.CellAt(p)
	if !e.board.InBounds(c) {
		return Coord{}, false
	}
	return c, true
}

// BeginDrag records the cell under p as the start of a drag path.
func (e *Engine) BeginDrag(p f32.Point) {
	c, ok := e.MapPointerToCell(p)
	if !ok {
		return
	}

	e.dragPath = append(e.dragPath, c)
	e.logger.Debug("drag started", "cell", c)
}

// ContinueDrag swaps the last visited cell with the one under p when the
// pointer has entered a new cell, and extends the path. The two cells need
// not be neighbours: a fast pointer that skips cells swaps across the gap.
// It reports whether a swap happened.
func (e *Engine) ContinueDrag(p f32.Point) bool {
	c, ok := e.MapPointerToCell(p)
	if !ok || len(e.dragPath) == 0 {
		return false
	}

	last := e.dragPath[len(e.dragPath)-1]
	if last == c {
		return false
	}

	e.board.Swap(last, c)
	e.dragPath = append(e.dragPath, c)
	e.logger.Debug("drag swap", "from", last, "to", c)

	return true
}

// EndDrag forgets the drag path. Matches are not checked here.
func (e *Engine) EndDrag() {
	e.dragPath = e.dragPath[:0]
}

// DragPath returns a copy of the cells visited by the current drag.
func (e *Engine) DragPath() []Coord {
	path := make([]Coord, len(e.dragPath))
	copy(path, e.dragPath)
	return path
}

func (e *Engine) Dragging() bool {
	return len(e.dragPath) > 0
}
