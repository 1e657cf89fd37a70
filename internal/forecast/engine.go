// Package forecast projects a business plan into a week-by-week
// revenue/expense/balance series with derived KPIs. The engine is a pure
// function of its inputs plus an injected randomness source; identical inputs
// and seed produce identical output.
package forecast

import (
	"math"

	"plancast/internal/model"
	"plancast/internal/params"
)

// Per-employee and physical-location weekly overhead, in currency units.
const (
	weeklyEmployeeCost = 1000.0
	weeklyLocationCost = 2000.0
)

// marketingBoosts are the launch-campaign multipliers for the first four weeks.
var marketingBoosts = [4]float64{1.20, 1.15, 1.10, 1.05}

// Expense noise is dampened relative to revenue noise.
const expenseVolatilityRatio = 0.7

// Generate runs the weekly projection loop over the plan inputs and resolved
// coefficients. rng is only consulted when inputs.IncludeRandomEvents is set;
// it may be nil otherwise.
func Generate(inputs model.ForecastInputs, r params.Resolved, rng Source) (model.ForecastResult, error) {
	if err := validate(inputs); err != nil {
		return model.ForecastResult{}, err
	}

	weeks := inputs.ForecastWeeks
	points := make([]model.WeeklyPoint, 0, weeks)

	baseRevenue := inputs.WeeklyRevenueBase *
		r.Industry.BaseRevenueMultiplier *
		r.Economy.RevenueMultiplier *
		r.CompetitionFactor
	baseExpenses := inputs.WeeklyExpensesBase*
		r.Industry.BaseExpenseMultiplier*
		r.Economy.ExpenseMultiplier +
		float64(inputs.EmployeeCount)*weeklyEmployeeCost
	if inputs.HasPhysicalLocation {
		baseExpenses += weeklyLocationCost
	}

	revGrowth := 1 + inputs.RevenueGrowthPct/100 + r.Lifecycle.RevenueGrowthModifier
	expGrowth := 1 + inputs.ExpensesGrowthPct/100 + r.Lifecycle.ExpenseGrowthModifier
	trend := 1 + r.Industry.MarketTrendFactor
	volatility := r.Industry.Volatility * r.Economy.VolatilityMultiplier * r.Lifecycle.VolatilityModifier

	balance := inputs.InitialBalance

	for i := 0; i < weeks; i++ {
		seasonal := 1 + (r.Industry.SeasonalityFactors[i%4]-1)*r.SeasonalityStrength

		boost := 1.0
		if inputs.InitialMarketingBoost && i < len(marketingBoosts) {
			boost = marketingBoosts[i]
		}

		revenue := baseRevenue *
			math.Pow(revGrowth, float64(i)) *
			math.Pow(trend, float64(i)) *
			seasonal * boost
		if inputs.RevenueSpikeWeek == i+1 {
			revenue += inputs.RevenueSpikeAmount
		}
		if inputs.IncludeRandomEvents && rng != nil {
			revenue *= 1 + rng.Uniform()*volatility
		}

		expenses := baseExpenses * math.Pow(expGrowth, float64(i))
		if inputs.ExpenseSpikeWeek == i+1 {
			expenses += inputs.ExpenseSpikeAmount
		}
		if inputs.IncludeRandomEvents && rng != nil {
			expenses *= 1 + rng.Uniform()*volatility*expenseVolatilityRatio
		}

		// Tax only applies to the positive weekly operating result.
		if tax := (revenue - expenses) * inputs.TaxRatePct / 100; tax > 0 {
			expenses += tax
		}

		revenue = math.Round(revenue)
		expenses = math.Round(expenses)
		balance += revenue - expenses

		points = append(points, model.WeeklyPoint{
			Week:     i + 1,
			Revenue:  revenue,
			Expenses: expenses,
			Balance:  balance,
		})
	}

	return summarize(inputs, points), nil
}

func validate(inputs model.ForecastInputs) error {
	if inputs.ForecastWeeks < 1 {
		return &model.ValidationError{Field: "forecast weeks", Msg: "must be at least 1"}
	}
	if inputs.InitialBalance < 0 {
		return &model.ValidationError{Field: "initial balance", Msg: "must not be negative"}
	}
	if inputs.WeeklyRevenueBase < 0 {
		return &model.ValidationError{Field: "weekly revenue", Msg: "must not be negative"}
	}
	if inputs.WeeklyExpensesBase < 0 {
		return &model.ValidationError{Field: "weekly expenses", Msg: "must not be negative"}
	}
	return nil
}

func summarize(inputs model.ForecastInputs, points []model.WeeklyPoint) model.ForecastResult {
	result := model.ForecastResult{Points: points}

	var runningRevenue, runningExpenses float64
	var deficitSum float64
	deficitWeeks := 0

	for _, p := range points {
		runningRevenue += p.Revenue
		runningExpenses += p.Expenses

		// Break-even: first week where cumulative revenue covers the initial
		// balance plus cumulative expenses. First match wins.
		if result.BreakEvenWeek == 0 && runningRevenue >= inputs.InitialBalance+runningExpenses {
			result.BreakEvenWeek = p.Week
		}

		if p.Expenses > p.Revenue {
			deficitSum += p.Expenses - p.Revenue
			deficitWeeks++
		}
	}

	result.CumulativeRevenue = runningRevenue
	result.CumulativeExpenses = runningExpenses
	result.NetProfit = runningRevenue - runningExpenses
	if runningRevenue > 0 {
		result.ProfitMarginPct = result.NetProfit / runningRevenue * 100
	}
	if deficitWeeks > 0 {
		result.BurnRate = deficitSum / float64(deficitWeeks)
	}

	return result
}
