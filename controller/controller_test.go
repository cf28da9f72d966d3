package controller

import (
	"math/rand"
	"testing"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runedrag/engine"
)

var layout = engine.Layout{Origin: f32.Point{X: 50, Y: 300}, TileSize: 100}

func at(row, col int) f32.Point {
	return layout.CellCenter(engine.Coord{Row: row, Col: col})
}

func newController(kinds [][]engine.Kind) *Controller {
	e := engine.New(0, 0, layout,
		engine.WithBoard(engine.BoardFromKinds(kinds)),
		engine.WithRand(rand.New(rand.NewSource(1))),
	)
	return New(e, nil)
}

func TestMatchingGesture(t *testing.T) {
	c := newController([][]engine.Kind{
		{engine.Bus, engine.Car, engine.Bike},
		{engine.Car, engine.Bike, engine.Car},
	})

	c.PointerDown(at(0, 1))
	c.PointerMove(at(1, 1))
	out := c.PointerUp()

	require.Equal(t, 3, out.Removed)
	assert.Equal(t, 3, out.Matched.Len())
	assert.Equal(t, 3, c.Score)
	assert.Equal(t, 1, c.Combo)

	board := c.Engine().Board()
	assert.True(t, board.IsFull())
	assert.Empty(t, c.Engine().DragPath())
}

func TestNonMatchingGestureKeepsCombo(t *testing.T) {
	c := newController([][]engine.Kind{
		{engine.Bus, engine.Car, engine.Bike},
		{engine.Car, engine.Bike, engine.Car},
	})
	c.Combo = 2

	c.PointerDown(at(0, 0))
	c.PointerMove(at(0, 1))
	out := c.PointerUp()

	assert.Zero(t, out.Removed)
	assert.Zero(t, out.Matched.Len())
	assert.Equal(t, 2, c.Combo)
	assert.Zero(t, c.Score)
	assert.Equal(t, [][]engine.Kind{
		{engine.Car, engine.Bus, engine.Bike},
		{engine.Car, engine.Bike, engine.Car},
	}, c.Engine().Kinds())
}

func TestMoveWithoutPressIsIgnored(t *testing.T) {
	kinds := [][]engine.Kind{{engine.Bus, engine.Car, engine.Bike}}
	c := newController(kinds)

	c.PointerMove(at(0, 1))
	c.PointerMove(at(0, 2))

	assert.False(t, c.Dragging())
	assert.Equal(t, kinds, c.Engine().Kinds())
}

func TestPressOffBoardThenMoveOnBoard(t *testing.T) {
	kinds := [][]engine.Kind{{engine.Bus, engine.Car, engine.Bike}}
	c := newController(kinds)

	c.PointerDown(f32.Point{X: 5, Y: 5})
	c.PointerMove(at(0, 1))
	c.PointerMove(at(0, 2))

	assert.True(t, c.Dragging())
	assert.Equal(t, kinds, c.Engine().Kinds())
}

func TestResetAndHint(t *testing.T) {
	e := engine.New(5, 6, layout, engine.WithRand(rand.New(rand.NewSource(9))))
	c := New(e, nil)
	c.Score = 30
	c.Combo = 4

	c.Reset()

	assert.Zero(t, c.Score)
	assert.Zero(t, c.Combo)
	assert.False(t, engine.HasRun(e.Board()))

	if move, ok := c.Hint(); ok {
		assert.True(t, move.Adjacent())
	}
}
