package tui

import (
	"fmt"
	"strings"

	"plancast/internal/cli"
	"plancast/internal/tui/components"
	"plancast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderScenariosTab(cw int) string {
	t := theme.Active
	base := a.base

	if len(a.comparisons) == 0 {
		return components.ContentCard("Scenarios", "No forecast data.", cw)
	}

	var b []string

	cards := []struct{ Label, Value, Note string }{
		{"Baseline Revenue", cli.FormatMoney(base.Revenue), fmt.Sprintf("%d weeks", len(a.result.Points))},
		{"Baseline Profit", cli.FormatSignedMoney(base.Profit), cli.FormatPercent(base.ROI) + " ROI"},
	}
	b = append(b, components.MetricCardRow(cards, cw))

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	gainStyle := lipgloss.NewStyle().Foreground(t.Green)
	lossStyle := lipgloss.NewStyle().Foreground(t.Red)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var tbl strings.Builder
	tbl.WriteString(headStyle.Render(fmt.Sprintf("%-22s %13s %13s %13s %8s %12s",
		"Scenario", "Revenue", "Expenses", "Profit", "ROI", "vs Base")))
	tbl.WriteString("\n")

	tbl.WriteString(nameStyle.Render(fmt.Sprintf("%-22s %13s %13s %13s %8s %12s",
		truncStr(base.Name, 22),
		cli.FormatMoney(base.Revenue),
		cli.FormatMoney(base.Expenses),
		cli.FormatSignedMoney(base.Profit),
		cli.FormatPercent(base.ROI),
		"")))
	tbl.WriteString("\n")

	for _, c := range a.comparisons {
		s := c.Scenario
		varStyle := gainStyle
		if c.Variance < 0 {
			varStyle = lossStyle
		}
		tbl.WriteString(mutedStyle.Render(fmt.Sprintf("%-22s %13s %13s %13s %8s ",
			truncStr(s.Name, 22),
			cli.FormatMoney(s.Revenue),
			cli.FormatMoney(s.Expenses),
			cli.FormatSignedMoney(s.Profit),
			cli.FormatPercent(s.ROI))))
		tbl.WriteString(varStyle.Render(fmt.Sprintf("%12s", cli.FormatSignedMoney(c.Variance))))
		tbl.WriteString("\n")
	}
	b = append(b, components.ContentCard("What-if Comparison", strings.TrimRight(tbl.String(), "\n"), cw))

	// Profit variance bars
	innerW := components.CardInnerWidth(cw)
	maxAbs := 0.0
	for _, c := range a.comparisons {
		if v := c.Variance; v < 0 {
			v = -v
			if v > maxAbs {
				maxAbs = v
			}
		} else if v > maxAbs {
			maxAbs = v
		}
	}
	barMax := innerW - 24 - 14
	if barMax < 5 {
		barMax = 5
	}

	var bars strings.Builder
	for _, c := range a.comparisons {
		v := c.Variance
		style := gainStyle
		if v < 0 {
			style = lossStyle
			v = -v
		}
		barLen := 0
		if maxAbs > 0 {
			barLen = int(v / maxAbs * float64(barMax))
		}
		bars.WriteString(mutedStyle.Render(fmt.Sprintf("%-22s ", truncStr(c.Scenario.Name, 22))))
		bars.WriteString(style.Render(strings.Repeat("█", barLen)))
		bars.WriteString(style.Render(fmt.Sprintf(" %s", cli.FormatSignedMoney(c.Variance))))
		bars.WriteString("\n")
	}
	b = append(b, components.ContentCard("Profit Impact", strings.TrimRight(bars.String(), "\n"), cw))

	return lipgloss.JoinVertical(lipgloss.Left, b...)
}
