package tui

import (
	"fmt"
	"strings"

	"plancast/internal/budget"
	"plancast/internal/cli"
	"plancast/internal/insight"
	"plancast/internal/tui/components"
	"plancast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	cats := a.budgetTpl.Categories
	stats := a.budgetStats
	total := budget.Total(cats)

	if len(cats) == 0 {
		return components.ContentCard("Budget", "No budget template for this industry.", cw)
	}

	var b []string

	cards := []struct{ Label, Value, Note string }{
		{"Monthly Total", cli.FormatMoney(total), a.budgetTpl.Name},
		{"Fixed", cli.FormatMoney(stats.FixedTotal), cli.FormatPercent(stats.FixedPct) + " of total"},
		{"Variable", cli.FormatMoney(stats.VariableTotal), cli.FormatPercent(stats.VariablePct) + " of total"},
	}
	b = append(b, components.MetricCardRow(cards, cw))

	// Category share bars
	innerW := components.CardInnerWidth(cw)
	labelW := 0
	for _, c := range cats {
		if len(c.Name) > labelW {
			labelW = len(c.Name)
		}
	}
	if labelW > innerW/3 {
		labelW = innerW / 3
	}
	barW := innerW - labelW - 20
	if barW < 10 {
		barW = 10
	}

	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var shares strings.Builder
	for _, c := range cats {
		share := 0.0
		if total > 0 {
			share = c.Amount / total
		}
		shares.WriteString(components.ShareBar(truncStr(c.Name, labelW), share, labelW, barW))
		shares.WriteString(amountStyle.Render(fmt.Sprintf("  %10s", cli.FormatMoney(c.Amount))))
		shares.WriteString("\n")
	}
	b = append(b, components.ContentCard("Allocation", strings.TrimRight(shares.String(), "\n"), cw))

	// Narrative read on the allocation
	text := insight.Budget(cats, a.inputs.Industry, total)
	wrapped := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(innerW).
		Render(text)
	b = append(b, components.ContentCard("Insight", wrapped, cw))

	return lipgloss.JoinVertical(lipgloss.Left, b...)
}
