package cli

import (
	"strings"

	"github.com/avillega/pulse/internal/cli/formatter"
	"github.com/charmbracelet/lipgloss"
)

// gridMinWidth is the narrowest terminal that still fits two card
// columns; below it every section falls back to the list layout.
const gridMinWidth = 76

// joinCardRows lays cards out two per row, indented to the section
// margin.
func joinCardRows(cards []string) string {
	var rows []string
	for i := 0; i < len(cards); i += 2 {
		if i+1 < len(cards) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], " ", cards[i+1]))
		} else {
			rows = append(rows, cards[i])
		}
	}
	return "  " + strings.ReplaceAll(strings.Join(rows, "\n"), "\n", "\n  ") + "\n"
}

// cardStyle returns the bordered card style, highlighting the cursor.
func cardStyle(width int, selected bool) lipgloss.Style {
	border := formatter.ColorDim
	if selected {
		border = formatter.ColorHeader
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width).
		Padding(0, 1)
}
