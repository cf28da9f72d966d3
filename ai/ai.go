package ai

import (
	"io"

	"github.com/charmbracelet/log"

	"runedrag/engine"
)

// AI looks for swaps that would produce a match. It works on copies and
// never touches the live board.
type AI struct {
	Logger *log.Logger
}

func New(logger *log.Logger) *AI {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &AI{Logger: logger}
}

// FindValidMoves lists every swap between grid neighbours, each pair once.
func (ai *AI) FindValidMoves(board engine.Board) []engine.Action {
	var validMoves []engine.Action

	for i := 0; i < board.Rows; i++ {
		for j := 0; j < board.Cols; j++ {
			from := engine.Coord{Row: i, Col: j}
			for _, dir := range []engine.Direction{engine.Right, engine.Down} {
				to := engine.GetNeighbor(dir, from)
				if board.InBounds(to) {
					validMoves = append(validMoves, engine.Action{From: from, To: to})
				}
			}
		}
	}

	return validMoves
}

// ScoreAction applies the swap to a copy of board and returns the number of
// cells a match check would clear. Higher is better.
func (ai *AI) ScoreAction(board engine.Board, action engine.Action) int {
	clone := board.Clone()
	clone.Swap(action.From, action.To)
	return engine.FindMatches(clone).Len()
}

// FindBestMove returns the highest scoring swap. The boolean is false when no
// swap produces a match.
func (ai *AI) FindBestMove(board engine.Board) (engine.Action, bool) {
	best := engine.Action{}
	bestScore := 0

	for _, move := range ai.FindValidMoves(board) {
		score := ai.ScoreAction(board, move)
		if score > bestScore {
			best = move
			bestScore = score
		}
	}

	ai.Logger.Debug("best move", "move", best, "score", bestScore)

	return best, bestScore > 0
}
