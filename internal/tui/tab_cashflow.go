package tui

import (
	"fmt"
	"strconv"
	"strings"

	"plancast/internal/cli"
	"plancast/internal/tui/components"
	"plancast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCashFlowTab(cw int) string {
	t := theme.Active
	points := a.result.Points
	if len(points) == 0 {
		return components.ContentCard("Cash Flow", "No forecast data.", cw)
	}

	revVals := make([]float64, len(points))
	expVals := make([]float64, len(points))
	labels := make([]string, len(points))
	for i, p := range points {
		revVals[i] = p.Revenue
		expVals[i] = p.Expenses
		labels[i] = strconv.Itoa(p.Week)
	}

	var b []string

	// Revenue and expense charts side by side
	chartH := 8
	if a.isCompactLayout() {
		chartH = 6
		b = append(b,
			components.ContentCard("Weekly Revenue",
				components.BarChart(revVals, labels, t.Green, components.CardInnerWidth(cw), chartH), cw),
			components.ContentCard("Weekly Expenses",
				components.BarChart(expVals, labels, t.Orange, components.CardInnerWidth(cw), chartH), cw),
		)
	} else {
		halves := components.LayoutRow(cw, 2)
		b = append(b, components.CardRow([]string{
			components.ContentCard("Weekly Revenue",
				components.BarChart(revVals, labels, t.Green, components.CardInnerWidth(halves[0]), chartH), halves[0]),
			components.ContentCard("Weekly Expenses",
				components.BarChart(expVals, labels, t.Orange, components.CardInnerWidth(halves[1]), chartH), halves[1]),
		}))
	}

	// Weekly ledger
	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	numStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	gainStyle := lipgloss.NewStyle().Foreground(t.Green)
	lossStyle := lipgloss.NewStyle().Foreground(t.Red)

	var ledger strings.Builder
	ledger.WriteString(headStyle.Render(fmt.Sprintf("%-6s %14s %14s %14s", "Week", "Revenue", "Expenses", "Balance")))
	ledger.WriteString("\n")
	for _, p := range points {
		balStyle := gainStyle
		if p.Balance < 0 {
			balStyle = lossStyle
		}
		ledger.WriteString(numStyle.Render(fmt.Sprintf("%-6d %14s %14s ", p.Week,
			cli.FormatMoney(p.Revenue), cli.FormatMoney(p.Expenses))))
		ledger.WriteString(balStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(p.Balance))))
		ledger.WriteString("\n")
	}
	b = append(b, components.ContentCard("Weekly Ledger", strings.TrimRight(ledger.String(), "\n"), cw))

	return lipgloss.JoinVertical(lipgloss.Left, b...)
}
