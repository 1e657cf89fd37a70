package insight

import (
	"fmt"
	"strings"

	"plancast/internal/budget"
	"plancast/internal/model"
)

// benchmark is an expected allocation share for a keyword-matched category.
type benchmark struct {
	keyword     string
	expectedPct float64
}

// Rough industry benchmarks as a share of total budget.
var budgetBenchmarks = map[string][]benchmark{
	"retail":     {{"inventory", 33}, {"rent", 17}},
	"tech":       {{"salar", 55}, {"cloud", 10}},
	"service":    {{"salar", 55}},
	"restaurant": {{"food", 33}, {"staff", 30}},
}

// Budget comments on the shape of a budget allocation: flexibility,
// concentration, marketing share, and industry benchmarks.
func Budget(cats []model.BudgetCategory, businessType string, totalBudget float64) string {
	if len(cats) == 0 || totalBudget <= 0 {
		return "Add budget categories to get an allocation assessment."
	}

	stats := budget.Stats(cats)
	var parts []string

	switch {
	case stats.FixedPct > 70:
		parts = append(parts, fmt.Sprintf(
			"Fixed costs are %.0f%% of the budget, leaving limited flexibility to cut back in a slow month.",
			stats.FixedPct))
	case stats.FixedPct < 30:
		parts = append(parts, fmt.Sprintf(
			"Only %.0f%% of the budget is fixed, giving excellent flexibility to scale spending with revenue.",
			stats.FixedPct))
	default:
		parts = append(parts, fmt.Sprintf(
			"The fixed/variable split (%.0f%%/%.0f%%) is balanced.", stats.FixedPct, stats.VariablePct))
	}

	// Concentration of the single largest line item.
	if highestPct := stats.Highest.Amount / totalBudget * 100; highestPct > 50 {
		parts = append(parts, fmt.Sprintf(
			"%s alone consumes %.0f%% of the budget, a risky concentration.", stats.Highest.Name, highestPct))
	} else if highestPct > 30 {
		parts = append(parts, fmt.Sprintf(
			"%s is the dominant expense at %.0f%% of the budget.", stats.Highest.Name, highestPct))
	}

	if tpl := matchedTemplateType(businessType); tpl != "" {
		for _, bm := range budgetBenchmarks[tpl] {
			c, ok := findByKeyword(cats, bm.keyword)
			if !ok {
				continue
			}
			actualPct := c.Amount / totalBudget * 100
			switch {
			case actualPct > bm.expectedPct*1.25:
				parts = append(parts, fmt.Sprintf(
					"%s runs at %.0f%% versus a typical %.0f%% for this kind of business.",
					c.Name, actualPct, bm.expectedPct))
			case actualPct < bm.expectedPct*0.75:
				parts = append(parts, fmt.Sprintf(
					"%s is lean at %.0f%%; similar businesses typically allocate around %.0f%%.",
					c.Name, actualPct, bm.expectedPct))
			}
		}
	}

	if c, ok := findByKeyword(cats, "marketing"); ok {
		pct := c.Amount / totalBudget * 100
		if pct < 10 {
			parts = append(parts, fmt.Sprintf(
				"Marketing is only %.0f%% of spend; growth may stall without more visibility.", pct))
		} else if pct > 25 {
			parts = append(parts, fmt.Sprintf(
				"Marketing takes %.0f%% of the budget; make sure acquisition costs are paying back.", pct))
		}
	}

	if len(parts) == 0 {
		return "The budget allocation looks reasonable for this business type."
	}
	return strings.Join(parts, " ")
}

func matchedTemplateType(businessType string) string {
	label := strings.ToLower(businessType)
	for tplType, aliases := range map[string][]string{
		"retail":     {"retail", "store"},
		"tech":       {"tech", "software"},
		"service":    {"service"},
		"restaurant": {"restaurant", "food"},
	} {
		for _, alias := range aliases {
			if strings.Contains(label, alias) {
				return tplType
			}
		}
	}
	return ""
}

func findByKeyword(cats []model.BudgetCategory, keyword string) (model.BudgetCategory, bool) {
	for _, c := range cats {
		if strings.Contains(strings.ToLower(c.Name), keyword) {
			return c, true
		}
	}
	return model.BudgetCategory{}, false
}
