package engine

// Board is a rows x cols grid of tokens indexed Cells[row][col].
type Board struct {
	Rows  int
	Cols  int
	Cells [][]Token
}

// NewBoard returns a board with every cell empty.
func NewBoard(rows, cols int) Board {
	cells := make([][]Token, rows)
	for i := 0; i < rows; i++ {
		cells[i] = make([]Token, cols)
	}

	return Board{
		Rows:  rows,
		Cols:  cols,
		Cells: cells,
	}
}

// BoardFromKinds builds a board from a row-major kind matrix. Rows must all
// have the same length.
func BoardFromKinds(kinds [][]Kind) Board {
	rows := len(kinds)
	cols := 0
	if rows > 0 {
		cols = len(kinds[0])
	}

	b := NewBoard(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			b.Cells[i][j] = Token{Kind: kinds[i][j]}
		}
	}
	return b
}

func (b *Board) Set(c Coord, t Token) {
	b.Cells[c.Row][c.Col] = t
}

func (b *Board) Get(c Coord) Token {
	return b.Cells[c.Row][c.Col]
}

func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

func (b *Board) Swap(a, c Coord) {
	b.Cells[a.Row][a.Col], b.Cells[c.Row][c.Col] = b.Cells[c.Row][c.Col], b.Cells[a.Row][a.Col]
}

// IsFull reports whether no cell is empty.
func (b *Board) IsFull() bool {
	for i := 0; i < b.Rows; i++ {
		for j := 0; j < b.Cols; j++ {
			if b.Cells[i][j].IsEmpty() {
				return false
			}
		}
	}
	return true
}

// Kinds returns the kind matrix, row-major.
func (b *Board) Kinds() [][]Kind {
	kinds := make([][]Kind, b.Rows)
	for i := 0; i < b.Rows; i++ {
		kinds[i] = make([]Kind, b.Cols)
		for j := 0; j < b.Cols; j++ {
			kinds[i][j] = b.Cells[i][j].Kind
		}
	}
	return kinds
}

func (b *Board) Clone() Board {
	// deep copy
	newBoard := NewBoard(b.Rows, b.Cols)
	for i := 0; i < b.Rows; i++ {
		copy(newBoard.Cells[i], b.Cells[i])
	}
	return newBoard
}
