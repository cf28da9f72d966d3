package engine

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

/**
 * Drag-to-swap match engine (game logic only, no timing or drawing)
 */

type Engine struct {
	board     Board
	dragPath  []Coord
	layout    Layout
	generator *Generator
	logger    *log.Logger

	// OnMatched is called by CheckMatches with every non-empty match set.
	OnMatched func(matched MatchSet)
}

type Option func(*engineOptions)

type engineOptions struct {
	rng    *rand.Rand
	logger *log.Logger
	board  *Board
}

// WithRand makes generation and refill draw from rng.
func WithRand(rng *rand.Rand) Option {
	return func(o *engineOptions) {
		o.rng = rng
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithBoard starts the engine on a copy of b instead of a generated board.
// The board size then overrides the rows and cols passed to New.
func WithBoard(b Board) Option {
	return func(o *engineOptions) {
		clone := b.Clone()
		o.board = &clone
	}
}

// New returns an engine owning a freshly generated rows x cols board.
func New(rows, cols int, layout Layout, opts ...Option) *Engine {
	o := engineOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	e := &Engine{
		layout:    layout,
		generator: NewGenerator(o.rng, o.logger),
		logger:    o.logger,
	}

	if o.board != nil {
		e.board = *o.board
	} else {
		e.board = e.generator.Generate(rows, cols)
	}

	return e
}

// Regenerate replaces the board with a new match-free one of the same size
// and drops any drag in progress.
func (e *Engine) Regenerate() {
	e.board = e.generator.Generate(e.board.Rows, e.board.Cols)
	e.dragPath = e.dragPath[:0]
}

// Board returns a copy of the live board.
func (e *Engine) Board() Board {
	return e.board.Clone()
}

func (e *Engine) Kinds() [][]Kind {
	return e.board.Kinds()
}

func (e *Engine) Rows() int {
	return e.board.Rows
}

func (e *Engine) Cols() int {
	return e.board.Cols
}

func (e *Engine) Layout() Layout {
	return e.layout
}
