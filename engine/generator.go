package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Generator produces boards and refill tokens from a single random source.
type Generator struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewGenerator returns a generator drawing from rng. A nil rng is replaced by
// a time seeded source, a nil logger by a discarding one.
func NewGenerator(rng *rand.Rand, logger *log.Logger) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{rng: rng, logger: logger}
}

// RandomToken draws one playable kind uniformly.
func (g *Generator) RandomToken() Token {
	return Token{Kind: Kinds[g.rng.Intn(len(Kinds))]}
}

// Generate fills a rows x cols board at random and starts over until no row
// or column holds three equal kinds in a row. There is no retry cap.
func (g *Generator) Generate(rows, cols int) Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("invalid board size: %dx%d", rows, cols))
	}

	for attempt := 1; ; attempt++ {
		board := NewBoard(rows, cols)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				board.Cells[i][j] = g.RandomToken()
			}
		}

		if !HasRun(board) {
			g.logger.Debug("board generated", "rows", rows, "cols", cols, "attempts", attempt)
			return board
		}
	}
}

// HasRun reports whether any row or column contains three adjacent cells of
// the same non-empty kind. Longer runs always contain such a window.
func HasRun(b Board) bool {
	for i := 0; i < b.Rows; i++ {
		for j := 0; j < b.Cols-2; j++ {
			if sameKind(b.Cells[i][j], b.Cells[i][j+1], b.Cells[i][j+2]) {
				return true
			}
		}
	}

	for j := 0; j < b.Cols; j++ {
		for i := 0; i < b.Rows-2; i++ {
			if sameKind(b.Cells[i][j], b.Cells[i+1][j], b.Cells[i+2][j]) {
				return true
			}
		}
	}

	return false
}

func sameKind(a, b, c Token) bool {
	return !a.IsEmpty() && a.Kind == b.Kind && a.Kind == c.Kind
}
