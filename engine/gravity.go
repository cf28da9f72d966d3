package engine

// Fall compacts every column downward in place, keeping the order of the
// tokens, and returns the cells that received a falling token.
func Fall(b *Board) [][]bool {
	fallen := make([][]bool, b.Rows)
	for i := 0; i < b.Rows; i++ {
		fallen[i] = make([]bool, b.Cols)
	}

	for j := 0; j < b.Cols; j++ {
		for i := b.Rows - 1; i >= 0; i-- {
			if !b.Cells[i][j].IsEmpty() {
				continue
			}
			for k := i - 1; k >= 0; k-- {
				if !b.Cells[k][j].IsEmpty() {
					b.Cells[i][j] = b.Cells[k][j]
					b.Cells[k][j] = Token{}
					fallen[i][j] = true
					break
				}
			}
		}
	}

	return fallen
}

// ApplyGravity drops tokens into the gaps left by CheckMatches and fills
// whatever is still empty with fresh random tokens. The refill is not
// checked for runs.
func (e *Engine) ApplyGravity() {
	Fall(&e.board)

	filled := 0
	for j := 0; j < e.board.Cols; j++ {
		for i := 0; i < e.board.Rows; i++ {
			if e.board.Cells[i][j].IsEmpty() {
				e.board.Cells[i][j] = e.generator.RandomToken()
				filled++
			}
		}
	}

	e.logger.Debug("gravity applied", "refilled", filled)
}
