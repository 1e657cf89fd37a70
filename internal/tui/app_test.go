package tui

import (
	"testing"

	"plancast/internal/config"
	"plancast/internal/tui/components"
)

func testApp(t *testing.T) App {
	t.Helper()
	cfg := config.DefaultConfig()
	return NewApp(cfg.Plan.Inputs(), cfg, false)
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < len(components.Tabs); active++ {
		a := App{activeTab: active}
		pos := 1 // leading space before the first tab

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < len(components.Tabs)-1 {
				pos += 2 // separator
			}
		}
	}
}

func TestNewAppComputesForecast(t *testing.T) {
	a := testApp(t)

	if a.genErr != nil {
		t.Fatalf("genErr = %v, want nil", a.genErr)
	}
	if len(a.result.Points) != a.inputs.ForecastWeeks {
		t.Fatalf("points = %d, want %d", len(a.result.Points), a.inputs.ForecastWeeks)
	}
	if len(a.comparisons) == 0 {
		t.Fatal("expected preset scenario comparisons")
	}
	if len(a.budgetTpl.Categories) == 0 {
		t.Fatal("expected a budget template for the default industry")
	}
}

func TestRecomputeRejectsBadPlan(t *testing.T) {
	a := testApp(t)

	a.inputs.ForecastWeeks = 0
	a.recompute()

	if a.genErr == nil {
		t.Fatal("expected a validation error for a zero-week horizon")
	}
	if len(a.result.Points) != 0 {
		t.Fatalf("points = %d, want 0 after rejected plan", len(a.result.Points))
	}
}

func TestSeedRerollIsStableWithoutRandomEvents(t *testing.T) {
	a := testApp(t)
	a.inputs.IncludeRandomEvents = false
	a.recompute()
	before := a.result.NetProfit

	a.seed++
	a.recompute()

	if a.result.NetProfit != before {
		t.Fatalf("profit changed from %v to %v with random events off", before, a.result.NetProfit)
	}
}
