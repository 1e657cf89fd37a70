package insight

import (
	"strings"
	"testing"

	"plancast/internal/budget"
	"plancast/internal/model"
)

func points(n int) []model.WeeklyPoint {
	pts := make([]model.WeeklyPoint, n)
	for i := range pts {
		pts[i] = model.WeeklyPoint{Week: i + 1}
	}
	return pts
}

func TestCashFlowEmptyForecast(t *testing.T) {
	got := CashFlow(model.ForecastResult{}, model.ForecastInputs{})
	if !strings.Contains(got, "Not enough forecast data") {
		t.Fatalf("empty forecast insight = %q, want generic fallback", got)
	}
}

func TestCashFlowStrongMargin(t *testing.T) {
	result := model.ForecastResult{
		Points:          points(12),
		NetProfit:       30000,
		ProfitMarginPct: 22.5,
		BreakEvenWeek:   3,
	}
	got := CashFlow(result, model.ForecastInputs{Lifecycle: "growth"})

	if !strings.Contains(got, "strong profitability") {
		t.Fatalf("insight = %q, want strong profitability branch", got)
	}
	if !strings.Contains(got, "week 3") {
		t.Fatalf("insight = %q, want fast break-even mention", got)
	}
}

func TestCashFlowLossAndNoBreakEven(t *testing.T) {
	result := model.ForecastResult{
		Points:    points(8),
		NetProfit: -4200,
		BurnRate:  525,
	}
	got := CashFlow(result, model.ForecastInputs{Lifecycle: "startup", Economy: "recession"})

	if !strings.Contains(got, "loss") {
		t.Fatalf("insight = %q, want loss branch", got)
	}
	if !strings.Contains(got, "not reached") {
		t.Fatalf("insight = %q, want missing break-even mention", got)
	}
	if !strings.Contains(got, "Startup phase") {
		t.Fatalf("insight = %q, want startup branch", got)
	}
	if !strings.Contains(got, "Recession") {
		t.Fatalf("insight = %q, want recession branch", got)
	}
}

func TestCashFlowModifiers(t *testing.T) {
	result := model.ForecastResult{Points: points(4), NetProfit: 100, ProfitMarginPct: 1, BreakEvenWeek: 10}
	in := model.ForecastInputs{Lifecycle: "mature", Economy: "boom", Seasonality: "high", Competition: "high"}

	got := CashFlow(result, in)
	for _, want := range []string{"Boom", "seasonality", "competition", "week 10"} {
		if !strings.Contains(strings.ToLower(got), strings.ToLower(want)) {
			t.Fatalf("insight = %q, missing %q", got, want)
		}
	}
}

func TestBudgetEmptyCategories(t *testing.T) {
	got := Budget(nil, "retail", 0)
	if !strings.Contains(got, "Add budget categories") {
		t.Fatalf("empty budget insight = %q, want generic fallback", got)
	}
}

func TestBudgetHighFixedShare(t *testing.T) {
	cats := []model.BudgetCategory{
		{ID: "rent", Name: "Rent", Amount: 8000, IsFixed: true},
		{ID: "marketing", Name: "Marketing", Amount: 2000},
	}
	got := Budget(cats, "retail", budget.Total(cats))

	if !strings.Contains(got, "limited flexibility") {
		t.Fatalf("insight = %q, want limited flexibility branch", got)
	}
	if !strings.Contains(got, "Rent") {
		t.Fatalf("insight = %q, want concentration warning for Rent", got)
	}
}

func TestBudgetLowFixedShareAndMarketing(t *testing.T) {
	cats := []model.BudgetCategory{
		{ID: "insurance", Name: "Insurance", Amount: 500, IsFixed: true},
		{ID: "inventory", Name: "Inventory", Amount: 7000},
		{ID: "marketing", Name: "Marketing", Amount: 400},
		{ID: "ops", Name: "Operations", Amount: 2100},
	}
	got := Budget(cats, "corner store", budget.Total(cats))

	if !strings.Contains(got, "excellent flexibility") {
		t.Fatalf("insight = %q, want excellent flexibility branch", got)
	}
	if !strings.Contains(got, "Marketing is only") {
		t.Fatalf("insight = %q, want low-marketing warning", got)
	}
}

func TestBudgetBenchmarkCommentary(t *testing.T) {
	// Inventory at 70% of a retail budget is far above the ~33% benchmark.
	cats := []model.BudgetCategory{
		{ID: "inventory", Name: "Inventory", Amount: 7000},
		{ID: "rent", Name: "Rent", Amount: 1500, IsFixed: true},
		{ID: "marketing", Name: "Marketing", Amount: 1500},
	}
	got := Budget(cats, "retail", budget.Total(cats))

	if !strings.Contains(got, "Inventory") || !strings.Contains(got, "typical") {
		t.Fatalf("insight = %q, want inventory benchmark commentary", got)
	}
}
