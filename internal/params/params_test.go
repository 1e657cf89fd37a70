package params

import "testing"

func TestResolveIndustryCaseInsensitive(t *testing.T) {
	p := ResolveIndustry("  Retail ")
	if p.Name != "retail" {
		t.Fatalf("Name = %q, want retail", p.Name)
	}
	if p.BaseExpenseMultiplier != 0.95 {
		t.Fatalf("BaseExpenseMultiplier = %v, want 0.95", p.BaseExpenseMultiplier)
	}
}

func TestResolveIndustryUnknownFallsBack(t *testing.T) {
	p := ResolveIndustry("underwater basket weaving")
	if p.Name != "general" {
		t.Fatalf("Name = %q, want general", p.Name)
	}
	if p.BaseRevenueMultiplier != 1.0 || p.MarketTrendFactor != 0.02 || p.Volatility != 0.10 {
		t.Fatalf("default profile coefficients wrong: %+v", p)
	}
	for i, f := range p.SeasonalityFactors {
		if f != 1.0 {
			t.Fatalf("SeasonalityFactors[%d] = %v, want flat 1.0", i, f)
		}
	}
}

func TestResolveEconomyDefaultsToNormal(t *testing.T) {
	e := ResolveEconomy("apocalypse")
	if e.Name != "normal" {
		t.Fatalf("Name = %q, want normal", e.Name)
	}
	if e.RevenueMultiplier != 1.0 || e.ExpenseMultiplier != 1.0 || e.VolatilityMultiplier != 1.0 {
		t.Fatalf("normal scenario not neutral: %+v", e)
	}
}

func TestResolveLifecycleDefaultsToGrowth(t *testing.T) {
	l := ResolveLifecycle("")
	if l.Name != "growth" {
		t.Fatalf("Name = %q, want growth", l.Name)
	}
	if l.RevenueGrowthModifier != 0.05 || l.ExpenseGrowthModifier != 0.03 {
		t.Fatalf("growth modifiers = %v/%v, want 0.05/0.03", l.RevenueGrowthModifier, l.ExpenseGrowthModifier)
	}
}

func TestResolveSeasonalityStrength(t *testing.T) {
	cases := []struct {
		level string
		want  float64
	}{
		{"low", 0.5},
		{"medium", 1.0},
		{"HIGH", 1.5},
		{"bogus", 1.0},
	}
	for _, tc := range cases {
		if got := ResolveSeasonalityStrength(tc.level); got != tc.want {
			t.Errorf("ResolveSeasonalityStrength(%q) = %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestResolveCompetitionFactor(t *testing.T) {
	cases := []struct {
		level string
		want  float64
	}{
		{"low", 1.15},
		{"medium", 1.0},
		{"high", 0.85},
		{"", 1.0},
	}
	for _, tc := range cases {
		if got := ResolveCompetitionFactor(tc.level); got != tc.want {
			t.Errorf("ResolveCompetitionFactor(%q) = %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestResolveBundlesAllDimensions(t *testing.T) {
	r := Resolve("technology", "boom", "startup", "high", "low")
	if r.Industry.Name != "technology" {
		t.Fatalf("Industry = %q, want technology", r.Industry.Name)
	}
	if r.Economy.Name != "boom" {
		t.Fatalf("Economy = %q, want boom", r.Economy.Name)
	}
	if r.Lifecycle.Name != "startup" {
		t.Fatalf("Lifecycle = %q, want startup", r.Lifecycle.Name)
	}
	if r.SeasonalityStrength != 1.5 || r.CompetitionFactor != 1.15 {
		t.Fatalf("strength/factor = %v/%v, want 1.5/1.15", r.SeasonalityStrength, r.CompetitionFactor)
	}
}
