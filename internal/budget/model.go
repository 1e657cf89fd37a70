// Package budget implements the allocation model: template selection,
// category list transforms, time-period conversion, and fixed/variable
// statistics. Category lists are treated as immutable; every transform
// returns a new slice and the total is always recomputed from the list,
// never cached.
package budget

import (
	"fmt"
	"math"

	"plancast/internal/model"
)

// Total sums the category amounts. This is the only definition of a budget's
// total; nothing stores it separately.
func Total(cats []model.BudgetCategory) float64 {
	var sum float64
	for _, c := range cats {
		sum += c.Amount
	}
	return sum
}

// Add validates and appends a category, returning a new list. The category's
// ID is derived from its name, suffixed when it would collide.
func Add(cats []model.BudgetCategory, c model.BudgetCategory) ([]model.BudgetCategory, error) {
	if c.Amount < 0 {
		return cats, &model.ValidationError{Field: "category amount", Msg: "must not be negative"}
	}
	if c.Name == "" {
		return cats, &model.ValidationError{Field: "category name", Msg: "must not be empty"}
	}

	if c.ID == "" {
		c.ID = slugify(c.Name)
	}
	base := c.ID
	for n := 2; hasID(cats, c.ID); n++ {
		c.ID = fmt.Sprintf("%s-%d", base, n)
	}

	out := make([]model.BudgetCategory, len(cats), len(cats)+1)
	copy(out, cats)
	return append(out, c), nil
}

// Update replaces the category with the given ID, returning a new list.
// Unknown IDs and negative amounts leave the list unchanged.
func Update(cats []model.BudgetCategory, updated model.BudgetCategory) ([]model.BudgetCategory, error) {
	if updated.Amount < 0 {
		return cats, &model.ValidationError{Field: "category amount", Msg: "must not be negative"}
	}
	if !hasID(cats, updated.ID) {
		return cats, &model.ValidationError{Field: "category id", Msg: fmt.Sprintf("unknown category %q", updated.ID)}
	}

	out := make([]model.BudgetCategory, len(cats))
	copy(out, cats)
	for i := range out {
		if out[i].ID == updated.ID {
			out[i] = updated
		}
	}
	return out, nil
}

// Delete removes the category with the given ID, returning a new list.
func Delete(cats []model.BudgetCategory, id string) ([]model.BudgetCategory, error) {
	if !hasID(cats, id) {
		return cats, &model.ValidationError{Field: "category id", Msg: fmt.Sprintf("unknown category %q", id)}
	}

	out := make([]model.BudgetCategory, 0, len(cats)-1)
	for _, c := range cats {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out, nil
}

// periodMultiplier returns months per period; 0 for unknown periods so the
// conversion math can guard the division.
func periodMultiplier(p model.BudgetPeriod) float64 {
	switch p {
	case model.PeriodMonthly:
		return 1
	case model.PeriodQuarterly:
		return 3
	case model.PeriodAnnual:
		return 12
	default:
		return 0
	}
}

// ConvertPeriod rescales every amount from one time basis to another,
// rounding each category. A monthly -> annual -> monthly round trip recovers
// the original amounts within one unit per category. Unknown periods yield
// zero amounts rather than NaN.
func ConvertPeriod(cats []model.BudgetCategory, from, to model.BudgetPeriod) []model.BudgetCategory {
	fromMult := periodMultiplier(from)
	toMult := periodMultiplier(to)

	factor := 0.0
	if fromMult > 0 {
		factor = toMult / fromMult
	}

	out := make([]model.BudgetCategory, len(cats))
	copy(out, cats)
	for i := range out {
		out[i].Amount = math.Round(out[i].Amount * factor)
	}
	return out
}

// Stats partitions the categories into fixed and variable totals and finds
// the largest and smallest line items. FixedTotal + VariableTotal always
// equals Total(cats); percentages are 0 for an empty or zero budget.
func Stats(cats []model.BudgetCategory) model.BudgetStats {
	var s model.BudgetStats
	for i, c := range cats {
		if c.IsFixed {
			s.FixedTotal += c.Amount
		} else {
			s.VariableTotal += c.Amount
		}
		if i == 0 || c.Amount > s.Highest.Amount {
			s.Highest = c
		}
		if i == 0 || c.Amount < s.Lowest.Amount {
			s.Lowest = c
		}
	}

	s.Total = s.FixedTotal + s.VariableTotal
	if s.Total > 0 {
		s.FixedPct = s.FixedTotal / s.Total * 100
		s.VariablePct = s.VariableTotal / s.Total * 100
	}
	return s
}

func hasID(cats []model.BudgetCategory, id string) bool {
	for _, c := range cats {
		if c.ID == id {
			return true
		}
	}
	return false
}
