package components

import (
	"fmt"

	"plancast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with the plan's context.
func RenderStatusBar(width int, business string, weeks int) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [r]eroll  [q]uit"
	right := fmt.Sprintf("%d week horizon ", weeks)
	if business != "" {
		right = fmt.Sprintf("%s · %s", business, right)
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
