package tui

import (
	"fmt"
	"strconv"

	"plancast/internal/cli"
	"plancast/internal/insight"
	"plancast/internal/tui/components"
	"plancast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	r := a.result
	var b []string

	breakEvenNote := "not reached"
	if r.BreakEvenWeek > 0 {
		breakEvenNote = fmt.Sprintf("week %d", r.BreakEvenWeek)
	}

	burnNote := "no deficit weeks"
	if r.BurnRate > 0 {
		burnNote = cli.FormatMoney(r.BurnRate) + "/week"
	}

	cards := []struct{ Label, Value, Note string }{
		{"Revenue", cli.FormatMoney(r.CumulativeRevenue), fmt.Sprintf("%d weeks", len(r.Points))},
		{"Net Profit", cli.FormatSignedMoney(r.NetProfit), cli.FormatPercent(r.ProfitMarginPct) + " margin"},
		{"Break-even", cli.FormatWeek(r.BreakEvenWeek), breakEvenNote},
		{"Burn", cli.FormatMoney(r.BurnRate), burnNote},
	}
	b = append(b, components.MetricCardRow(cards, cw))

	// Weekly closing balance chart
	if len(r.Points) > 0 {
		vals := make([]float64, len(r.Points))
		labels := make([]string, len(r.Points))
		for i, p := range r.Points {
			vals[i] = p.Balance
			labels[i] = strconv.Itoa(p.Week)
		}
		chartH := 10
		if a.isCompactLayout() {
			chartH = 7
		}
		b = append(b, components.ContentCard(
			fmt.Sprintf("Closing Balance (%d weeks)", len(r.Points)),
			components.BarChart(vals, labels, t.Blue, components.CardInnerWidth(cw), chartH),
			cw,
		))
	}

	// Narrative read on the numbers
	text := insight.CashFlow(r, a.inputs)
	wrapped := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(components.CardInnerWidth(cw)).
		Render(text)
	b = append(b, components.ContentCard("Insight", wrapped, cw))

	return lipgloss.JoinVertical(lipgloss.Left, b...)
}
