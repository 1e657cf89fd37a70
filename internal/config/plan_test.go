package config

import "testing"

func TestMergeOverridesAppliesSetFields(t *testing.T) {
	plan := DefaultConfig().Plan

	revenue := 8000.0
	employees := 4
	industry := "retail"
	merged := MergeOverrides(plan, Overrides{
		WeeklyRevenueBase: &revenue,
		EmployeeCount:     &employees,
		Industry:          &industry,
	})

	if merged.WeeklyRevenueBase != 8000 {
		t.Fatalf("WeeklyRevenueBase = %v, want 8000", merged.WeeklyRevenueBase)
	}
	if merged.EmployeeCount != 4 {
		t.Fatalf("EmployeeCount = %d, want 4", merged.EmployeeCount)
	}
	if merged.Industry != "retail" {
		t.Fatalf("Industry = %q, want retail", merged.Industry)
	}

	// Unset fields keep plan defaults.
	if merged.WeeklyExpensesBase != plan.WeeklyExpensesBase {
		t.Fatalf("WeeklyExpensesBase changed: %v", merged.WeeklyExpensesBase)
	}
	if merged.Lifecycle != plan.Lifecycle {
		t.Fatalf("Lifecycle changed: %q", merged.Lifecycle)
	}
}

func TestMergeOverridesEmptyIsIdentity(t *testing.T) {
	plan := DefaultConfig().Plan
	merged := MergeOverrides(plan, Overrides{})
	if merged != plan {
		t.Fatalf("empty overrides changed the plan: %+v", merged)
	}
}

func TestPlanInputsRoundTrip(t *testing.T) {
	plan := DefaultConfig().Plan
	plan.BusinessName = "Sunrise Cafe"
	plan.EmployeeCount = 2
	plan.HasPhysicalLocation = true

	in := plan.Inputs()
	if in.BusinessName != "Sunrise Cafe" {
		t.Fatalf("BusinessName = %q", in.BusinessName)
	}
	if in.WeeklyRevenueBase != plan.WeeklyRevenueBase || in.ForecastWeeks != plan.ForecastWeeks {
		t.Fatalf("inputs drifted from plan: %+v", in)
	}
	if !in.HasPhysicalLocation || in.EmployeeCount != 2 {
		t.Fatalf("overhead fields lost: %+v", in)
	}
}
