package config

import "plancast/internal/model"

// MergeOverrides applies the sparse overrides on top of the plan defaults,
// returning a new plan. Unset override fields leave the plan untouched.
func MergeOverrides(plan PlanConfig, o Overrides) PlanConfig {
	if o.WeeklyRevenueBase != nil {
		plan.WeeklyRevenueBase = *o.WeeklyRevenueBase
	}
	if o.WeeklyExpensesBase != nil {
		plan.WeeklyExpensesBase = *o.WeeklyExpensesBase
	}
	if o.InitialBalance != nil {
		plan.InitialBalance = *o.InitialBalance
	}
	if o.EmployeeCount != nil {
		plan.EmployeeCount = *o.EmployeeCount
	}
	if o.HasPhysicalLocation != nil {
		plan.HasPhysicalLocation = *o.HasPhysicalLocation
	}
	if o.Industry != nil {
		plan.Industry = *o.Industry
	}
	if o.Lifecycle != nil {
		plan.Lifecycle = *o.Lifecycle
	}
	return plan
}

// Inputs converts a plan into the typed record the forecast engine consumes.
func (p PlanConfig) Inputs() model.ForecastInputs {
	return model.ForecastInputs{
		BusinessName:          p.BusinessName,
		InitialBalance:        p.InitialBalance,
		WeeklyRevenueBase:     p.WeeklyRevenueBase,
		WeeklyExpensesBase:    p.WeeklyExpensesBase,
		RevenueGrowthPct:      p.RevenueGrowthPct,
		ExpensesGrowthPct:     p.ExpensesGrowthPct,
		TaxRatePct:            p.TaxRatePct,
		RevenueSpikeWeek:      p.RevenueSpikeWeek,
		RevenueSpikeAmount:    p.RevenueSpikeAmount,
		ExpenseSpikeWeek:      p.ExpenseSpikeWeek,
		ExpenseSpikeAmount:    p.ExpenseSpikeAmount,
		EmployeeCount:         p.EmployeeCount,
		HasPhysicalLocation:   p.HasPhysicalLocation,
		ForecastWeeks:         p.ForecastWeeks,
		Industry:              p.Industry,
		Economy:               p.Economy,
		Lifecycle:             p.Lifecycle,
		Seasonality:           p.Seasonality,
		Competition:           p.Competition,
		InitialMarketingBoost: p.InitialMarketingBoost,
		IncludeRandomEvents:   p.IncludeRandomEvents,
	}
}
