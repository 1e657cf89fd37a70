package budget

import (
	"errors"
	"math"
	"testing"

	"plancast/internal/model"
)

func TestSelectTemplateSubstrings(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"Retail", "retail"},
		{"my corner store", "retail"},
		{"Software Startup", "tech"},
		{"TECH consulting", "tech"},
		{"cleaning service", "service"},
		{"Fast Food Truck", "restaurant"},
		{"crystal shop", "general"},
		{"", "general"},
	}
	for _, tc := range cases {
		got := SelectTemplate(tc.label)
		if got.BusinessType != tc.want {
			t.Errorf("SelectTemplate(%q).BusinessType = %q, want %q", tc.label, got.BusinessType, tc.want)
		}
	}
}

func TestRetailTemplateMonthlyTotal(t *testing.T) {
	tpl := SelectTemplate("retail")
	if got := Total(tpl.Categories); got != 14800 {
		t.Fatalf("retail monthly total = %v, want 14800", got)
	}
}

func TestSelectTemplateReturnsCopy(t *testing.T) {
	a := SelectTemplate("retail")
	a.Categories[0].Amount = 99999

	b := SelectTemplate("retail")
	if b.Categories[0].Amount == 99999 {
		t.Fatal("mutating a selected template leaked into the shared table")
	}
}

func TestConvertPeriodMonthlyToQuarterly(t *testing.T) {
	tpl := SelectTemplate("retail")

	quarterly := ConvertPeriod(tpl.Categories, model.PeriodMonthly, model.PeriodQuarterly)
	for i, c := range quarterly {
		if want := tpl.Categories[i].Amount * 3; c.Amount != want {
			t.Fatalf("%s = %v, want %v", c.Name, c.Amount, want)
		}
	}
	if got := Total(quarterly); got != 44400 {
		t.Fatalf("quarterly total = %v, want 44400", got)
	}
}

func TestConvertPeriodRoundTrip(t *testing.T) {
	cats := []model.BudgetCategory{
		{ID: "a", Name: "A", Amount: 1234},
		{ID: "b", Name: "B", Amount: 567},
		{ID: "c", Name: "C", Amount: 89},
	}

	annual := ConvertPeriod(cats, model.PeriodMonthly, model.PeriodAnnual)
	back := ConvertPeriod(annual, model.PeriodAnnual, model.PeriodMonthly)

	var totalErr float64
	for i := range cats {
		totalErr += math.Abs(back[i].Amount - cats[i].Amount)
	}
	if totalErr > float64(len(cats)) {
		t.Fatalf("round-trip error = %v, want <= %d", totalErr, len(cats))
	}
}

func TestConvertPeriodUnknownPeriodYieldsZero(t *testing.T) {
	cats := []model.BudgetCategory{{ID: "a", Name: "A", Amount: 100}}

	out := ConvertPeriod(cats, model.BudgetPeriod("fortnightly"), model.PeriodMonthly)
	if out[0].Amount != 0 {
		t.Fatalf("Amount = %v, want 0 for unknown source period", out[0].Amount)
	}
	if math.IsNaN(out[0].Amount) || math.IsInf(out[0].Amount, 0) {
		t.Fatal("Amount is not finite")
	}
}

func TestAddRejectsNegativeAmount(t *testing.T) {
	cats := SelectTemplate("service").Categories
	before := len(cats)

	out, err := Add(cats, model.BudgetCategory{Name: "Bribes", Amount: -50})
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *model.ValidationError", err)
	}
	if len(out) != before {
		t.Fatalf("list changed on rejected add: %d -> %d", before, len(out))
	}
}

func TestAddGeneratesUniqueIDs(t *testing.T) {
	var cats []model.BudgetCategory
	var err error

	cats, err = Add(cats, model.BudgetCategory{Name: "Marketing", Amount: 100})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	cats, err = Add(cats, model.BudgetCategory{Name: "Marketing", Amount: 200})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if cats[0].ID != "marketing" || cats[1].ID != "marketing-2" {
		t.Fatalf("IDs = %q, %q, want marketing, marketing-2", cats[0].ID, cats[1].ID)
	}
}

func TestAddDoesNotMutateOriginal(t *testing.T) {
	original := SelectTemplate("retail").Categories
	origLen := len(original)

	out, err := Add(original, model.BudgetCategory{Name: "Signage", Amount: 200})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(original) != origLen {
		t.Fatal("Add mutated the input slice length")
	}
	if len(out) != origLen+1 {
		t.Fatalf("len(out) = %d, want %d", len(out), origLen+1)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	cats := SelectTemplate("retail").Categories

	updated, err := Update(cats, model.BudgetCategory{ID: "rent", Name: "Rent", Amount: 2800, IsFixed: true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := Total(updated); got != 15100 {
		t.Fatalf("total after update = %v, want 15100", got)
	}

	if _, err := Update(cats, model.BudgetCategory{ID: "missing", Amount: 1}); err == nil {
		t.Fatal("Update with unknown ID succeeded")
	}

	deleted, err := Delete(updated, "equipment")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := Total(deleted); got != 14100 {
		t.Fatalf("total after delete = %v, want 14100", got)
	}

	if _, err := Delete(deleted, "equipment"); err == nil {
		t.Fatal("double delete succeeded")
	}
}

func TestStatsPartition(t *testing.T) {
	cats := SelectTemplate("restaurant").Categories

	s := Stats(cats)
	if s.FixedTotal+s.VariableTotal != Total(cats) {
		t.Fatalf("partition broken: %v + %v != %v", s.FixedTotal, s.VariableTotal, Total(cats))
	}
	if math.Abs(s.FixedPct+s.VariablePct-100) > 1e-9 {
		t.Fatalf("percentages = %v + %v, want 100", s.FixedPct, s.VariablePct)
	}
	if s.Highest.Name != "Food & Ingredients" {
		t.Fatalf("Highest = %q, want Food & Ingredients", s.Highest.Name)
	}
	if s.Lowest.Name != "Insurance" {
		t.Fatalf("Lowest = %q, want Insurance", s.Lowest.Name)
	}
}

func TestStatsEmptyList(t *testing.T) {
	s := Stats(nil)
	if s.Total != 0 || s.FixedPct != 0 || s.VariablePct != 0 {
		t.Fatalf("empty stats = %+v, want zeros", s)
	}
}
