package forecast

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"plancast/internal/model"
	"plancast/internal/params"
)

// baselinePlan is the reference plan: default industry, normal economy,
// growth lifecycle, medium seasonality and competition, no noise.
func baselinePlan() model.ForecastInputs {
	return model.ForecastInputs{
		InitialBalance:     10000,
		WeeklyRevenueBase:  5000,
		WeeklyExpensesBase: 3500,
		RevenueGrowthPct:   10,
		ExpensesGrowthPct:  5,
		ForecastWeeks:      12,
		Industry:           "unknown",
		Economy:            "normal",
		Lifecycle:          "growth",
		Seasonality:        "medium",
		Competition:        "medium",
	}
}

func resolve(in model.ForecastInputs) params.Resolved {
	return params.Resolve(in.Industry, in.Economy, in.Lifecycle, in.Seasonality, in.Competition)
}

func TestGenerateBaselineFirstTwoWeeks(t *testing.T) {
	in := baselinePlan()
	in.ForecastWeeks = 2

	result, err := Generate(in, resolve(in), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Points) != 2 {
		t.Fatalf("len(Points) = %d, want 2", len(result.Points))
	}

	w1 := result.Points[0]
	if w1.Revenue != 5000 || w1.Expenses != 3500 || w1.Balance != 11500 {
		t.Fatalf("week 1 = %+v, want revenue 5000, expenses 3500, balance 11500", w1)
	}

	// Week 2: revenue 5000 * 1.15 (growth) * 1.02 (trend) = 5865,
	// expenses 3500 * 1.08 = 3780.
	w2 := result.Points[1]
	if w2.Revenue != 5865 || w2.Expenses != 3780 || w2.Balance != 13585 {
		t.Fatalf("week 2 = %+v, want revenue 5865, expenses 3780, balance 13585", w2)
	}
}

func TestGenerateRejectsZeroWeeks(t *testing.T) {
	in := baselinePlan()
	in.ForecastWeeks = 0

	_, err := Generate(in, resolve(in), nil)
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *model.ValidationError", err)
	}
}

func TestGenerateRejectsNegativeInitialBalance(t *testing.T) {
	in := baselinePlan()
	in.InitialBalance = -1

	_, err := Generate(in, resolve(in), nil)
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *model.ValidationError", err)
	}
}

func TestGenerateRejectsNegativeAmounts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.ForecastInputs)
	}{
		{"revenue", func(in *model.ForecastInputs) { in.WeeklyRevenueBase = -100 }},
		{"expenses", func(in *model.ForecastInputs) { in.WeeklyExpensesBase = -100 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baselinePlan()
			tt.mutate(&in)

			_, err := Generate(in, resolve(in), nil)
			var verr *model.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want *model.ValidationError", err)
			}
		})
	}
}

func TestGenerateDeterministicWithoutRandomEvents(t *testing.T) {
	in := baselinePlan()
	in.Industry = "retail"
	in.InitialMarketingBoost = true

	a, err := Generate(in, resolve(in), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(in, resolve(in), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("repeated runs without random events differ")
	}
}

func TestGenerateDeterministicWithFixedSeed(t *testing.T) {
	in := baselinePlan()
	in.IncludeRandomEvents = true

	a, err := Generate(in, resolve(in), NewSource(42))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(in, resolve(in), NewSource(42))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("seeded runs differ")
	}

	c, err := Generate(in, resolve(in), NewSource(43))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if reflect.DeepEqual(a, c) {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestGenerateBalanceRecurrence(t *testing.T) {
	in := baselinePlan()
	in.Industry = "restaurant"
	in.IncludeRandomEvents = true
	in.ForecastWeeks = 52

	result, err := Generate(in, resolve(in), NewSource(7))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	prev := in.InitialBalance
	for _, p := range result.Points {
		want := prev + p.Revenue - p.Expenses
		if math.Abs(p.Balance-want) > 1e-9 {
			t.Fatalf("week %d balance = %v, want %v", p.Week, p.Balance, want)
		}
		prev = p.Balance
	}
}

func TestGenerateSummationConsistency(t *testing.T) {
	in := baselinePlan()
	in.IncludeRandomEvents = true

	result, err := Generate(in, resolve(in), NewSource(99))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var sumRev, sumExp float64
	for _, p := range result.Points {
		sumRev += p.Revenue
		sumExp += p.Expenses
	}
	if result.CumulativeRevenue != sumRev {
		t.Fatalf("CumulativeRevenue = %v, want %v", result.CumulativeRevenue, sumRev)
	}
	if result.CumulativeExpenses != sumExp {
		t.Fatalf("CumulativeExpenses = %v, want %v", result.CumulativeExpenses, sumExp)
	}
	if result.NetProfit != sumRev-sumExp {
		t.Fatalf("NetProfit = %v, want %v", result.NetProfit, sumRev-sumExp)
	}
}

func TestGenerateZeroRevenueDegeneratesCleanly(t *testing.T) {
	in := baselinePlan()
	in.WeeklyRevenueBase = 0
	in.RevenueGrowthPct = 0

	result, err := Generate(in, resolve(in), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.ProfitMarginPct != 0 {
		t.Fatalf("ProfitMarginPct = %v, want 0 when revenue is 0", result.ProfitMarginPct)
	}
	if math.IsNaN(result.ProfitMarginPct) || math.IsInf(result.ProfitMarginPct, 0) {
		t.Fatal("ProfitMarginPct is not finite")
	}
	if result.BreakEvenWeek != 0 {
		t.Fatalf("BreakEvenWeek = %d, want 0 (never reached)", result.BreakEvenWeek)
	}
	if result.BurnRate <= 0 {
		t.Fatalf("BurnRate = %v, want > 0 with weekly deficits", result.BurnRate)
	}
}

func TestGenerateBreakEvenIsFirstMatch(t *testing.T) {
	in := baselinePlan()
	in.InitialBalance = 2000
	in.WeeklyRevenueBase = 5000
	in.WeeklyExpensesBase = 3500

	result, err := Generate(in, resolve(in), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.BreakEvenWeek == 0 {
		t.Fatal("expected a break-even week")
	}

	// Recompute the forward scan and check no earlier week qualifies.
	var rev, exp float64
	for _, p := range result.Points {
		rev += p.Revenue
		exp += p.Expenses
		reached := rev >= in.InitialBalance+exp
		if p.Week < result.BreakEvenWeek && reached {
			t.Fatalf("week %d already satisfies break-even before reported week %d", p.Week, result.BreakEvenWeek)
		}
		if p.Week == result.BreakEvenWeek && !reached {
			t.Fatalf("reported break-even week %d does not satisfy the inequality", p.Week)
		}
	}
}

func TestGenerateBurnRateZeroWithoutDeficits(t *testing.T) {
	in := baselinePlan()

	result, err := Generate(in, resolve(in), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, p := range result.Points {
		if p.Expenses > p.Revenue {
			t.Skip("plan produced a deficit week; adjust fixture")
		}
	}
	if result.BurnRate != 0 {
		t.Fatalf("BurnRate = %v, want 0 with no deficit weeks", result.BurnRate)
	}
}

func TestGenerateRevenueSpikeWeek(t *testing.T) {
	in := baselinePlan()
	in.ForecastWeeks = 4
	in.RevenueSpikeWeek = 3
	in.RevenueSpikeAmount = 10000

	with, err := Generate(in, resolve(in), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	in.RevenueSpikeWeek = 0
	without, err := Generate(in, resolve(in), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	diff := with.Points[2].Revenue - without.Points[2].Revenue
	if diff != 10000 {
		t.Fatalf("spike week revenue diff = %v, want 10000", diff)
	}
	if with.Points[1].Revenue != without.Points[1].Revenue {
		t.Fatal("spike leaked into a non-spike week")
	}
}

func TestGenerateExpenseSpikeAndTax(t *testing.T) {
	in := baselinePlan()
	in.ForecastWeeks = 1
	in.TaxRatePct = 20

	result, err := Generate(in, resolve(in), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// Week 1: revenue 5000, pre-tax expenses 3500, tax 20% of 1500 = 300.
	if got := result.Points[0].Expenses; got != 3800 {
		t.Fatalf("expenses with tax = %v, want 3800", got)
	}

	in.ExpenseSpikeWeek = 1
	in.ExpenseSpikeAmount = 4000
	result, err = Generate(in, resolve(in), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// Spiked expenses 7500 exceed revenue: no tax is added on a loss week.
	if got := result.Points[0].Expenses; got != 7500 {
		t.Fatalf("expenses with spike = %v, want 7500 (no tax on loss)", got)
	}
}

func TestGenerateOverheadCosts(t *testing.T) {
	in := baselinePlan()
	in.ForecastWeeks = 1
	in.EmployeeCount = 3
	in.HasPhysicalLocation = true

	result, err := Generate(in, resolve(in), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// 3500 base + 3*1000 employees + 2000 location.
	if got := result.Points[0].Expenses; got != 8500 {
		t.Fatalf("expenses = %v, want 8500", got)
	}
}

func TestGenerateMarketingBoostFirstFourWeeks(t *testing.T) {
	in := baselinePlan()
	in.RevenueGrowthPct = 0
	in.Lifecycle = "mature"
	in.ForecastWeeks = 5
	in.InitialMarketingBoost = true

	with, err := Generate(in, resolve(in), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	in.InitialMarketingBoost = false
	without, err := Generate(in, resolve(in), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	wantRatios := []float64{1.20, 1.15, 1.10, 1.05, 1.0}
	for i, want := range wantRatios {
		got := with.Points[i].Revenue / without.Points[i].Revenue
		if math.Abs(got-want) > 0.001 {
			t.Fatalf("week %d boost ratio = %v, want %v", i+1, got, want)
		}
	}
}
