package model

import "fmt"

// ForecastInputs holds every business parameter the forecast engine consumes.
// Profile labels (Industry, Economy, Lifecycle, Seasonality, Competition) are
// resolved to numeric coefficients by the params package before the engine runs.
type ForecastInputs struct {
	BusinessName string

	InitialBalance     float64
	WeeklyRevenueBase  float64
	WeeklyExpensesBase float64

	RevenueGrowthPct  float64 // weekly compounding, percent
	ExpensesGrowthPct float64
	TaxRatePct        float64

	// One-time spikes. Week is 1-based; 0 means no spike.
	RevenueSpikeWeek   int
	RevenueSpikeAmount float64
	ExpenseSpikeWeek   int
	ExpenseSpikeAmount float64

	EmployeeCount       int
	HasPhysicalLocation bool
	ForecastWeeks       int

	Industry    string
	Economy     string // recession, normal, boom
	Lifecycle   string // startup, growth, mature, declining
	Seasonality string // low, medium, high
	Competition string // low, medium, high

	InitialMarketingBoost bool
	IncludeRandomEvents   bool
}

// WeeklyPoint is one week of the projected series. Revenue and expenses are
// rounded to whole currency units before the balance is accumulated.
type WeeklyPoint struct {
	Week     int
	Revenue  float64
	Expenses float64
	Balance  float64
}

// ForecastResult holds the weekly series and its derived KPIs.
type ForecastResult struct {
	Points []WeeklyPoint

	CumulativeRevenue  float64
	CumulativeExpenses float64
	NetProfit          float64
	ProfitMarginPct    float64

	// BreakEvenWeek is 1-based; 0 means break-even was never reached.
	BreakEvenWeek int

	// BurnRate is the average weekly deficit across deficit weeks only.
	BurnRate float64
}

// ValidationError reports an input rejected at the boundary before any
// computation ran.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}
