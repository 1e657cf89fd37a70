package model

// ScenarioData is one what-if variant of a plan's totals.
// Profit is always Revenue - Expenses; ROI is Profit/Expenses*100
// (0 when expenses are zero).
type ScenarioData struct {
	Name     string
	Revenue  float64
	Expenses float64
	Profit   float64
	ROI      float64
}

// ScenarioComparison pairs a scenario with its profit variance against a base.
type ScenarioComparison struct {
	Scenario ScenarioData
	Variance float64 // scenario profit minus base profit
}
