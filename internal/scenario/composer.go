// Package scenario derives what-if variants from a baseline plan outcome and
// compares them. All functions are pure; deriving with zero deltas reproduces
// the base exactly.
package scenario

import "plancast/internal/model"

// Derive applies percentage deltas and a one-time investment to a base
// scenario. ROI falls back to 0 when adjusted expenses are zero.
func Derive(base model.ScenarioData, revenueDeltaPct, expenseDeltaPct, extraInvestment float64, name string) model.ScenarioData {
	revenue := base.Revenue * (1 + revenueDeltaPct/100)
	expenses := base.Expenses*(1+expenseDeltaPct/100) + extraInvestment
	profit := revenue - expenses

	roi := 0.0
	if expenses > 0 {
		roi = profit / expenses * 100
	}

	return model.ScenarioData{
		Name:     name,
		Revenue:  revenue,
		Expenses: expenses,
		Profit:   profit,
		ROI:      roi,
	}
}

// Presets derives the four built-in what-if variants from a base scenario.
func Presets(base model.ScenarioData) []model.ScenarioData {
	return []model.ScenarioData{
		Derive(base, 10, 5, 0, "Conservative Growth"),
		Derive(base, 30, 25, 0, "Aggressive Growth"),
		Derive(base, -5, -15, 0, "Cost Optimization"),
		Derive(base, -30, -10, 0, "Market Downturn"),
	}
}

// CompareToBase computes each scenario's profit variance against the base.
// The base itself is skipped when it appears in the list.
func CompareToBase(scenarios []model.ScenarioData, base model.ScenarioData) []model.ScenarioComparison {
	comparisons := make([]model.ScenarioComparison, 0, len(scenarios))
	for _, s := range scenarios {
		if s.Name == base.Name {
			continue
		}
		comparisons = append(comparisons, model.ScenarioComparison{
			Scenario: s,
			Variance: s.Profit - base.Profit,
		})
	}
	return comparisons
}

// FromForecast folds a forecast result into the baseline scenario totals.
func FromForecast(result model.ForecastResult) model.ScenarioData {
	roi := 0.0
	if result.CumulativeExpenses > 0 {
		roi = result.NetProfit / result.CumulativeExpenses * 100
	}
	return model.ScenarioData{
		Name:     "Baseline",
		Revenue:  result.CumulativeRevenue,
		Expenses: result.CumulativeExpenses,
		Profit:   result.NetProfit,
		ROI:      roi,
	}
}
