// Package insight turns numeric forecast and budget outputs into short
// narrative commentary. Generators are pure string assembly: they never fail
// and fall back to generic phrasing when a metric is absent.
package insight

import (
	"fmt"
	"strings"

	"plancast/internal/model"
)

// CashFlow summarizes a forecast result as advisory prose.
func CashFlow(result model.ForecastResult, inputs model.ForecastInputs) string {
	if len(result.Points) == 0 {
		return "Not enough forecast data to generate a cash-flow assessment."
	}

	var parts []string

	switch {
	case result.ProfitMarginPct > 15:
		parts = append(parts, fmt.Sprintf(
			"The forecast shows strong profitability with a %.1f%% margin; consider reinvesting surplus cash into growth.",
			result.ProfitMarginPct))
	case result.NetProfit > 0:
		parts = append(parts, fmt.Sprintf(
			"The business is profitable but margins are thin (%.1f%%); watch recurring costs closely.",
			result.ProfitMarginPct))
	default:
		parts = append(parts, fmt.Sprintf(
			"The forecast runs at a loss of %.0f over %d weeks; reduce expenses or raise revenue before cash runs out.",
			-result.NetProfit, len(result.Points)))
	}

	switch {
	case result.BreakEvenWeek == 0:
		parts = append(parts, "Break-even is not reached within the forecast horizon.")
	case result.BreakEvenWeek <= 4:
		parts = append(parts, fmt.Sprintf("Break-even arrives quickly, in week %d.", result.BreakEvenWeek))
	case result.BreakEvenWeek <= 8:
		parts = append(parts, fmt.Sprintf("Break-even lands in week %d, a healthy runway.", result.BreakEvenWeek))
	default:
		parts = append(parts, fmt.Sprintf(
			"Break-even takes until week %d; keep a cash reserve for the early stretch.", result.BreakEvenWeek))
	}

	if result.BurnRate > 0 {
		parts = append(parts, fmt.Sprintf("Average burn on deficit weeks is %.0f.", result.BurnRate))
	}

	switch strings.ToLower(inputs.Lifecycle) {
	case "startup":
		parts = append(parts, "Startup phase: expect volatile weeks and prioritize runway over margin.")
	case "declining":
		parts = append(parts, "A declining business should treat any surplus as a buffer, not growth capital.")
	case "mature":
		parts = append(parts, "A mature business can favor efficiency gains over top-line growth.")
	default:
		parts = append(parts, "Growth phase: balance reinvestment against the widening expense base.")
	}

	switch strings.ToLower(inputs.Economy) {
	case "recession":
		parts = append(parts, "Recession conditions depress revenue; defensive budgeting is advisable.")
	case "boom":
		parts = append(parts, "Boom conditions lift revenue but also costs; lock in favorable supplier terms now.")
	}

	if strings.EqualFold(inputs.Seasonality, "high") {
		parts = append(parts, "High seasonality means weekly figures will swing; plan inventory and staffing around the peaks.")
	}
	if strings.EqualFold(inputs.Competition, "high") {
		parts = append(parts, "Heavy competition is already priced into the revenue line; differentiation matters more than discounts.")
	}

	return strings.Join(parts, " ")
}
