package controller

import (
	"io"

	"gioui.org/f32"
	"github.com/charmbracelet/log"

	"runedrag/ai"
	"runedrag/engine"
)

// Outcome is the result of one finished gesture.
type Outcome struct {
	Matched engine.MatchSet
	Removed int
}

// Controller runs the gesture lifecycle against an engine: press starts a
// drag, moves chain swaps, release ends the drag, clears matches and applies
// gravity when something matched. It is meant to be driven by a single
// input loop.
type Controller struct {
	engine   *engine.Engine
	ai       *ai.AI
	logger   *log.Logger
	dragging bool

	Score int
	Combo int
}

func New(e *engine.Engine, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		engine: e,
		ai:     ai.New(logger),
		logger: logger,
	}
}

func (c *Controller) Engine() *engine.Engine {
	return c.engine
}

func (c *Controller) Dragging() bool {
	return c.dragging
}

func (c *Controller) PointerDown(p f32.Point) {
	c.dragging = true
	c.engine.BeginDrag(p)
}

// PointerMove is ignored unless a press is in progress.
func (c *Controller) PointerMove(p f32.Point) {
	if !c.dragging {
		return
	}
	c.engine.ContinueDrag(p)
}

func (c *Controller) PointerUp() Outcome {
	c.dragging = false
	c.engine.EndDrag()

	matched := c.engine.CheckMatches()
	if matched.Len() == 0 {
		return Outcome{Matched: matched}
	}

	c.Combo++
	c.Score += matched.Len()
	c.engine.ApplyGravity()

	c.logger.Info("match", "removed", matched.Len(), "combo", c.Combo, "score", c.Score)

	return Outcome{Matched: matched, Removed: matched.Len()}
}

// Reset deals a new board and zeroes score and combo.
func (c *Controller) Reset() {
	c.dragging = false
	c.engine.Regenerate()
	c.Score = 0
	c.Combo = 0
}

// Hint suggests a swap that would match on the current board.
func (c *Controller) Hint() (engine.Action, bool) {
	return c.ai.FindBestMove(c.engine.Board())
}
