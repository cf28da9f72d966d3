package engine

/*
 * Run detection: every window of three equal non-empty kinds on a row or a
 * column marks its cells. The union of the windows is the union of the
 * maximal runs, so a cell on both a row run and a column run counts once.
 */
func FindMatches(b Board) MatchSet {
	matched := MatchSet{}

	// rows
	for i := 0; i < b.Rows; i++ {
		for j := 0; j < b.Cols-2; j++ {
			if sameKind(b.Cells[i][j], b.Cells[i][j+1], b.Cells[i][j+2]) {
				matched.Add(Coord{Row: i, Col: j})
				matched.Add(Coord{Row: i, Col: j + 1})
				matched.Add(Coord{Row: i, Col: j + 2})
			}
		}
	}

	// columns
	for j := 0; j < b.Cols; j++ {
		for i := 0; i < b.Rows-2; i++ {
			if sameKind(b.Cells[i][j], b.Cells[i+1][j], b.Cells[i+2][j]) {
				matched.Add(Coord{Row: i, Col: j})
				matched.Add(Coord{Row: i + 1, Col: j})
				matched.Add(Coord{Row: i + 2, Col: j})
			}
		}
	}

	return matched
}

// CheckMatches finds every run on the live board, empties its cells and
// returns them. An empty set means the board was left untouched.
func (e *Engine) CheckMatches() MatchSet {
	matched := FindMatches(e.board)

	for c := range matched {
		e.board.Set(c, Token{})
	}

	if matched.Len() > 0 {
		e.logger.Debug("matches cleared", "count", matched.Len())
		if e.OnMatched != nil {
			e.OnMatched(matched)
		}
	}

	return matched
}
