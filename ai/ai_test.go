package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runedrag/engine"
)

func TestFindValidMoves(t *testing.T) {
	board := engine.NewBoard(2, 3)

	moves := New(nil).FindValidMoves(board)

	// 2 rows of 2 horizontal pairs + 3 vertical pairs
	assert.Len(t, moves, 7)
	for _, m := range moves {
		assert.True(t, m.Adjacent(), "%v", m)
		assert.True(t, board.InBounds(m.To), "%v", m)
	}
}

func TestScoreActionDoesNotMutate(t *testing.T) {
	board := engine.BoardFromKinds([][]engine.Kind{
		{engine.Car, engine.Bus, engine.Car, engine.Car},
		{engine.Bike, engine.Car, engine.Train, engine.Scooter},
	})
	before := board.Kinds()

	score := New(nil).ScoreAction(board, engine.Action{
		From: engine.Coord{Row: 0, Col: 1},
		To:   engine.Coord{Row: 1, Col: 1},
	})

	assert.Equal(t, 4, score)
	assert.Equal(t, before, board.Kinds())
}

func TestFindBestMove(t *testing.T) {
	board := engine.BoardFromKinds([][]engine.Kind{
		{engine.Car, engine.Bus, engine.Car, engine.Train},
		{engine.Bike, engine.Car, engine.Scooter, engine.Bus},
	})

	move, ok := New(nil).FindBestMove(board)

	require.True(t, ok)
	assert.Equal(t, engine.Action{
		From: engine.Coord{Row: 0, Col: 1},
		To:   engine.Coord{Row: 1, Col: 1},
	}, move)
}

func TestFindBestMoveNone(t *testing.T) {
	board := engine.BoardFromKinds([][]engine.Kind{
		{engine.Car, engine.Bus},
		{engine.Bike, engine.Train},
	})

	_, ok := New(nil).FindBestMove(board)

	assert.False(t, ok)
}
