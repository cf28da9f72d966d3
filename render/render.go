package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"runedrag/engine"
)

var kindColors = map[engine.Kind]lipgloss.Color{
	engine.Car:     lipgloss.Color("196"),
	engine.Bus:     lipgloss.Color("226"),
	engine.Bike:    lipgloss.Color("46"),
	engine.Scooter: lipgloss.Color("33"),
	engine.Train:   lipgloss.Color("129"),
}

var (
	cellStyle    = lipgloss.NewStyle().Width(3).Align(lipgloss.Center)
	emptyStyle   = cellStyle.Foreground(lipgloss.Color("240"))
	matchedStyle = lipgloss.NewStyle().Reverse(true)
	frameStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Symbol is the one letter used for a kind on the terminal.
func Symbol(k engine.Kind) string {
	switch k {
	case engine.Car:
		return "C"
	case engine.Bus:
		return "B"
	case engine.Bike:
		return "K"
	case engine.Scooter:
		return "S"
	case engine.Train:
		return "T"
	default:
		return "."
	}
}

// Board draws the board as a framed grid of letters. Cells in highlight are
// shown reversed; highlight may be nil.
func Board(b engine.Board, highlight engine.MatchSet) string {
	rows := make([]string, 0, b.Rows)

	for i := 0; i < b.Rows; i++ {
		cells := make([]string, 0, b.Cols)
		for j := 0; j < b.Cols; j++ {
			cells = append(cells, cell(b.Cells[i][j].Kind, highlight.Contains(engine.Coord{Row: i, Col: j})))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return frameStyle.Render(strings.Join(rows, "\n"))
}

func cell(k engine.Kind, highlighted bool) string {
	style := emptyStyle
	if color, ok := kindColors[k]; ok {
		style = cellStyle.Foreground(color)
	}
	if highlighted {
		style = style.Inherit(matchedStyle)
	}
	return style.Render(Symbol(k))
}

// Plain draws the board without styling, one row per line.
func Plain(b engine.Board) string {
	var sb strings.Builder
	for i := 0; i < b.Rows; i++ {
		for j := 0; j < b.Cols; j++ {
			sb.WriteString(Symbol(b.Cells[i][j].Kind))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
