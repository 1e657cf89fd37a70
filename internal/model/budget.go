package model

// BudgetCategory is a single line item in a budget allocation.
type BudgetCategory struct {
	ID      string
	Name    string
	Amount  float64
	IsFixed bool
	Tags    []string
}

// BudgetTemplate is a named starting allocation for a type of business.
type BudgetTemplate struct {
	Name         string
	BusinessType string
	Categories   []BudgetCategory
}

// BudgetStats holds the fixed/variable partition of a category list.
// FixedTotal + VariableTotal always equals the sum of all amounts.
type BudgetStats struct {
	Total         float64
	FixedTotal    float64
	VariableTotal float64
	FixedPct      float64
	VariablePct   float64
	Highest       BudgetCategory
	Lowest        BudgetCategory
}

// BudgetPeriod is the time basis of a category list's amounts.
type BudgetPeriod string

const (
	PeriodMonthly   BudgetPeriod = "monthly"
	PeriodQuarterly BudgetPeriod = "quarterly"
	PeriodAnnual    BudgetPeriod = "annual"
)
