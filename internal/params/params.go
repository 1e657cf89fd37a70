// Package params maps business labels to the fixed coefficient sets the
// forecast engine runs on. Every resolver is total: an unknown label falls
// back to a documented default instead of failing.
package params

import "strings"

// IndustryProfile holds the fixed multiplier set for a type of business.
// SeasonalityFactors cycle per week of month (index = week mod 4).
type IndustryProfile struct {
	Name                  string
	BaseRevenueMultiplier float64
	BaseExpenseMultiplier float64
	SeasonalityFactors    [4]float64
	MarketTrendFactor     float64
	Volatility            float64
}

// EconomicScenario scales revenue, expenses, and volatility for a macro climate.
type EconomicScenario struct {
	Name                 string
	RevenueMultiplier    float64
	ExpenseMultiplier    float64
	VolatilityMultiplier float64
}

// LifecyclePhase adjusts weekly growth and volatility for business maturity.
type LifecyclePhase struct {
	Name                  string
	RevenueGrowthModifier float64
	ExpenseGrowthModifier float64
	VolatilityModifier    float64
}

// DefaultIndustry is the fallback profile for unrecognized industry labels:
// neutral multipliers, flat seasonality, 2% trend, 10% volatility.
var DefaultIndustry = IndustryProfile{
	Name:                  "general",
	BaseRevenueMultiplier: 1.0,
	BaseExpenseMultiplier: 1.0,
	SeasonalityFactors:    [4]float64{1.0, 1.0, 1.0, 1.0},
	MarketTrendFactor:     0.02,
	Volatility:            0.10,
}

var industries = map[string]IndustryProfile{
	"retail": {
		Name:                  "retail",
		BaseRevenueMultiplier: 1.0,
		BaseExpenseMultiplier: 0.95,
		SeasonalityFactors:    [4]float64{0.90, 0.95, 1.05, 1.25},
		MarketTrendFactor:     0.015,
		Volatility:            0.12,
	},
	"technology": {
		Name:                  "technology",
		BaseRevenueMultiplier: 1.20,
		BaseExpenseMultiplier: 1.10,
		SeasonalityFactors:    [4]float64{0.98, 1.00, 1.02, 1.00},
		MarketTrendFactor:     0.035,
		Volatility:            0.18,
	},
	"service": {
		Name:                  "service",
		BaseRevenueMultiplier: 0.95,
		BaseExpenseMultiplier: 0.85,
		SeasonalityFactors:    [4]float64{1.00, 1.05, 1.00, 0.95},
		MarketTrendFactor:     0.02,
		Volatility:            0.08,
	},
	"restaurant": {
		Name:                  "restaurant",
		BaseRevenueMultiplier: 1.05,
		BaseExpenseMultiplier: 1.10,
		SeasonalityFactors:    [4]float64{0.85, 0.95, 1.10, 1.20},
		MarketTrendFactor:     0.01,
		Volatility:            0.15,
	},
	"manufacturing": {
		Name:                  "manufacturing",
		BaseRevenueMultiplier: 1.10,
		BaseExpenseMultiplier: 1.05,
		SeasonalityFactors:    [4]float64{1.00, 1.00, 1.05, 0.95},
		MarketTrendFactor:     0.018,
		Volatility:            0.10,
	},
}

var economies = map[string]EconomicScenario{
	"recession": {Name: "recession", RevenueMultiplier: 0.75, ExpenseMultiplier: 0.90, VolatilityMultiplier: 1.50},
	"normal":    {Name: "normal", RevenueMultiplier: 1.0, ExpenseMultiplier: 1.0, VolatilityMultiplier: 1.0},
	"boom":      {Name: "boom", RevenueMultiplier: 1.25, ExpenseMultiplier: 1.10, VolatilityMultiplier: 0.80},
}

var lifecycles = map[string]LifecyclePhase{
	"startup":   {Name: "startup", RevenueGrowthModifier: 0.08, ExpenseGrowthModifier: 0.06, VolatilityModifier: 1.50},
	"growth":    {Name: "growth", RevenueGrowthModifier: 0.05, ExpenseGrowthModifier: 0.03, VolatilityModifier: 1.20},
	"mature":    {Name: "mature", RevenueGrowthModifier: 0.02, ExpenseGrowthModifier: 0.015, VolatilityModifier: 0.80},
	"declining": {Name: "declining", RevenueGrowthModifier: -0.02, ExpenseGrowthModifier: 0.01, VolatilityModifier: 1.10},
}

// ResolveIndustry returns the profile for a business-type label,
// case-insensitively. Unknown labels resolve to DefaultIndustry.
func ResolveIndustry(label string) IndustryProfile {
	if p, ok := industries[normalize(label)]; ok {
		return p
	}
	return DefaultIndustry
}

// ResolveEconomy returns the macro scenario for an identifier.
// Unknown identifiers resolve to normal.
func ResolveEconomy(id string) EconomicScenario {
	if e, ok := economies[normalize(id)]; ok {
		return e
	}
	return economies["normal"]
}

// ResolveLifecycle returns the maturity phase for an identifier.
// Unknown identifiers resolve to growth.
func ResolveLifecycle(id string) LifecyclePhase {
	if l, ok := lifecycles[normalize(id)]; ok {
		return l
	}
	return lifecycles["growth"]
}

// ResolveSeasonalityStrength maps a low/medium/high level to the factor that
// scales an industry's seasonal swing. Unknown levels resolve to medium.
func ResolveSeasonalityStrength(level string) float64 {
	switch normalize(level) {
	case "low":
		return 0.5
	case "high":
		return 1.5
	default:
		return 1.0
	}
}

// ResolveCompetitionFactor maps a competition level to an effective revenue
// multiplier. Lower competition raises revenue. Unknown levels resolve to medium.
func ResolveCompetitionFactor(level string) float64 {
	switch normalize(level) {
	case "low":
		return 1.15
	case "high":
		return 0.85
	default:
		return 1.0
	}
}

// Resolved bundles every coefficient set for one forecast run.
type Resolved struct {
	Industry            IndustryProfile
	Economy             EconomicScenario
	Lifecycle           LifecyclePhase
	SeasonalityStrength float64
	CompetitionFactor   float64
}

// Resolve looks up all five label dimensions at once.
func Resolve(industry, economy, lifecycle, seasonality, competition string) Resolved {
	return Resolved{
		Industry:            ResolveIndustry(industry),
		Economy:             ResolveEconomy(economy),
		Lifecycle:           ResolveLifecycle(lifecycle),
		SeasonalityStrength: ResolveSeasonalityStrength(seasonality),
		CompetitionFactor:   ResolveCompetitionFactor(competition),
	}
}

// IndustryNames lists the known industry labels (excluding the default).
func IndustryNames() []string {
	return []string{"retail", "technology", "service", "restaurant", "manufacturing"}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
