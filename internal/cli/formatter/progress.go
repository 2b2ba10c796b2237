package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderProgress renders a colored progress bar like "[████░░░░░░] 40%".
// The fill color shifts from red through yellow to green as percent rises.
func RenderProgress(percent float64, width int) string {
	if width < 4 {
		width = 4
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}

	var color lipgloss.Color
	switch {
	case percent >= 75:
		color = ColorGreen
	case percent >= 40:
		color = ColorYellow
	default:
		color = ColorRed
	}

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("[%s] %d%%", bar, int(percent))
}
