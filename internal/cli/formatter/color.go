package formatter

import (
	"fmt"
	"strings"

	"github.com/avillega/pulse/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// HealthStyle returns the style for a derived date status.
func HealthStyle(h domain.HealthStatus) lipgloss.Style {
	switch h {
	case domain.HealthOverdue:
		return StyleRed
	case domain.HealthWarning:
		return StyleYellow
	case domain.HealthGood:
		return StyleGreen
	default:
		return StyleDim
	}
}

// PriorityPill returns a colored priority tag such as "▲ high".
func PriorityPill(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("▲ high")
	case domain.PriorityMedium:
		return StyleYellow.Render("● medium")
	default:
		return StyleBlue.Render("▽ low")
	}
}

// TaskStatusPill returns a colored status indicator for a task.
func TaskStatusPill(s domain.TaskStatus) string {
	if s == domain.TaskCompleted {
		return StyleDim.Render("✔ Done")
	}
	return StyleBlue.Render("○ Pending")
}

// SkillLevelBadge returns a purple-styled level label.
func SkillLevelBadge(l domain.SkillLevel) string {
	if l == "" {
		return StyleDim.Render("--")
	}
	label := strings.ToUpper(string(l)[:1]) + string(l)[1:]
	return StylePurple.Render(label)
}

// CategoryBadge returns a capitalized contact category label.
func CategoryBadge(c domain.ContactCategory) string {
	if c == "" {
		return StyleDim.Render("--")
	}
	label := strings.ToUpper(string(c)[:1]) + string(c)[1:]
	return StyleBlue.Render(label)
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
