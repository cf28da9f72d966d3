package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasRun(t *testing.T) {
	tests := []struct {
		name  string
		kinds [][]Kind
		want  bool
	}{
		{"horizontal", [][]Kind{{Bus, Bus, Bus}}, true},
		{"vertical", [][]Kind{{Car}, {Car}, {Car}}, true},
		{"pairs only", [][]Kind{{Car, Car, Bus, Bus}, {Bus, Bus, Car, Car}}, false},
		{"empties never match", [][]Kind{{Empty, Empty, Empty}}, false},
		{"too narrow", [][]Kind{{Car, Car}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasRun(BoardFromKinds(tt.kinds)))
		})
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewSource(7)), nil).Generate(5, 6)
	b := NewGenerator(rand.New(rand.NewSource(7)), nil).Generate(5, 6)

	assert.Equal(t, a.Kinds(), b.Kinds())
}

func TestGenerateSmallBoards(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(11)), nil)

	for _, size := range [][2]int{{1, 1}, {1, 3}, {3, 1}, {3, 3}, {9, 9}} {
		b := g.Generate(size[0], size[1])
		assert.Equal(t, size[0], b.Rows)
		assert.Equal(t, size[1], b.Cols)
		assert.True(t, b.IsFull())
		assert.False(t, HasRun(b))
	}
}

func TestGenerateRejectsInvalidSize(t *testing.T) {
	g := NewGenerator(nil, nil)

	assert.Panics(t, func() { g.Generate(0, 6) })
	assert.Panics(t, func() { g.Generate(5, -1) })
}

func TestRandomTokenIsPlayable(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(5)), nil)

	seen := map[Kind]bool{}
	for i := 0; i < 500; i++ {
		tok := g.RandomToken()
		assert.NotEqual(t, Empty, tok.Kind)
		seen[tok.Kind] = true
	}
	assert.Len(t, seen, len(Kinds))
}
