package store

import (
	"path/filepath"
	"testing"

	"plancast/internal/model"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func sampleRun() (model.ForecastInputs, model.ForecastResult) {
	inputs := model.ForecastInputs{
		InitialBalance:     10000,
		WeeklyRevenueBase:  5000,
		WeeklyExpensesBase: 3500,
		ForecastWeeks:      2,
		Industry:           "retail",
		Economy:            "normal",
		Lifecycle:          "growth",
	}
	result := model.ForecastResult{
		Points: []model.WeeklyPoint{
			{Week: 1, Revenue: 5000, Expenses: 3500, Balance: 11500},
			{Week: 2, Revenue: 5865, Expenses: 3780, Balance: 13585},
		},
		CumulativeRevenue:  10865,
		CumulativeExpenses: 7280,
		NetProfit:          3585,
		ProfitMarginPct:    33.0,
	}
	return inputs, result
}

func TestSaveAndGetRun(t *testing.T) {
	h := openTestHistory(t)
	inputs, result := sampleRun()

	id, err := h.SaveRun("baseline", inputs, result)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	r, points, err := h.GetRun(id)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if r.Name != "baseline" || r.Industry != "retail" || r.Weeks != 2 {
		t.Fatalf("run header = %+v", r)
	}
	if r.NetProfit != 3585 {
		t.Fatalf("NetProfit = %v, want 3585", r.NetProfit)
	}
	if len(points) != 2 {
		t.Fatalf("len(points) = %d, want 2", len(points))
	}
	if points[1].Balance != 13585 {
		t.Fatalf("week 2 balance = %v, want 13585", points[1].Balance)
	}
}

func TestListRunsMostRecentFirst(t *testing.T) {
	h := openTestHistory(t)
	inputs, result := sampleRun()

	if _, err := h.SaveRun("first", inputs, result); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if _, err := h.SaveRun("second", inputs, result); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	runs, err := h.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].Name != "second" || runs[1].Name != "first" {
		t.Fatalf("order = %q, %q, want second, first", runs[0].Name, runs[1].Name)
	}

	latest, ok, err := h.LatestRun()
	if err != nil || !ok {
		t.Fatalf("LatestRun: ok=%v err=%v", ok, err)
	}
	if latest.Name != "second" {
		t.Fatalf("latest = %q, want second", latest.Name)
	}
}

func TestLatestRunEmptyArchive(t *testing.T) {
	h := openTestHistory(t)
	_, ok, err := h.LatestRun()
	if err != nil {
		t.Fatalf("LatestRun: %v", err)
	}
	if ok {
		t.Fatal("LatestRun reported a run in an empty archive")
	}
}

func TestSaveAndGetScenarios(t *testing.T) {
	h := openTestHistory(t)
	inputs, result := sampleRun()

	id, err := h.SaveRun("baseline", inputs, result)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	comparisons := []model.ScenarioComparison{
		{Scenario: model.ScenarioData{Name: "Aggressive Growth", Revenue: 14125, Expenses: 9100, Profit: 5025, ROI: 55.2}, Variance: 1440},
		{Scenario: model.ScenarioData{Name: "Market Downturn", Revenue: 7606, Expenses: 6552, Profit: 1054, ROI: 16.1}, Variance: -2531},
	}
	if err := h.SaveScenarios(id, comparisons); err != nil {
		t.Fatalf("SaveScenarios: %v", err)
	}

	got, err := h.GetScenarios(id)
	if err != nil {
		t.Fatalf("GetScenarios: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(scenarios) = %d, want 2", len(got))
	}
	if got[0].Scenario.Name != "Aggressive Growth" || got[0].Variance != 1440 {
		t.Fatalf("scenario[0] = %+v", got[0])
	}
}

func TestDeleteRun(t *testing.T) {
	h := openTestHistory(t)
	inputs, result := sampleRun()

	id, err := h.SaveRun("doomed", inputs, result)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := h.DeleteRun(id); err != nil {
		t.Fatalf("DeleteRun: %v", err)
	}
	if _, _, err := h.GetRun(id); err == nil {
		t.Fatal("GetRun succeeded after delete")
	}
	if err := h.DeleteRun(id); err == nil {
		t.Fatal("double delete succeeded")
	}
}
