// Package store persists named forecast runs and their scenarios in SQLite,
// so successive forecasts can be compared against history.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"plancast/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// History is the SQLite-backed forecast run archive.
type History struct {
	db *sql.DB
}

// RunSummary is one archived run's header and KPIs.
type RunSummary struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	Industry  string
	Economy   string
	Lifecycle string
	Weeks     int

	InitialBalance float64
	WeeklyRevenue  float64
	WeeklyExpenses float64

	CumulativeRevenue  float64
	CumulativeExpenses float64
	NetProfit          float64
	ProfitMarginPct    float64
	BreakEvenWeek      int
	BurnRate           float64
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// SaveRun archives a forecast run with its weekly series, returning the run ID.
func (h *History) SaveRun(name string, inputs model.ForecastInputs, result model.ForecastResult) (int64, error) {
	tx, err := h.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := tx.Exec(`INSERT INTO runs
		(name, created_at, industry, economy, lifecycle, weeks,
		 initial_balance, weekly_revenue, weekly_expenses,
		 cumulative_revenue, cumulative_expenses, net_profit,
		 profit_margin_pct, break_even_week, burn_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		name, now, inputs.Industry, inputs.Economy, inputs.Lifecycle, inputs.ForecastWeeks,
		inputs.InitialBalance, inputs.WeeklyRevenueBase, inputs.WeeklyExpensesBase,
		result.CumulativeRevenue, result.CumulativeExpenses, result.NetProfit,
		result.ProfitMarginPct, result.BreakEvenWeek, result.BurnRate,
	)
	if err != nil {
		return 0, err
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, p := range result.Points {
		_, err = tx.Exec(`INSERT INTO run_points (run_id, week, revenue, expenses, balance)
			VALUES (?, ?, ?, ?, ?)`,
			runID, p.Week, p.Revenue, p.Expenses, p.Balance,
		)
		if err != nil {
			return 0, err
		}
	}

	return runID, tx.Commit()
}

// SaveScenarios archives what-if comparisons under an existing run.
func (h *History) SaveScenarios(runID int64, comparisons []model.ScenarioComparison) error {
	tx, err := h.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec("DELETE FROM run_scenarios WHERE run_id = ?", runID)
	if err != nil {
		return err
	}

	for _, c := range comparisons {
		_, err = tx.Exec(`INSERT INTO run_scenarios (run_id, name, revenue, expenses, profit, roi, variance)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			runID, c.Scenario.Name, c.Scenario.Revenue, c.Scenario.Expenses,
			c.Scenario.Profit, c.Scenario.ROI, c.Variance,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListRuns returns archived runs, most recent first.
func (h *History) ListRuns() ([]RunSummary, error) {
	rows, err := h.db.Query(`SELECT run_id, name, created_at, industry, economy, lifecycle, weeks,
		initial_balance, weekly_revenue, weekly_expenses,
		cumulative_revenue, cumulative_expenses, net_profit,
		profit_margin_pct, break_even_week, burn_rate
		FROM runs ORDER BY run_id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []RunSummary
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LatestRun returns the most recently archived run, or ok=false when the
// archive is empty.
func (h *History) LatestRun() (RunSummary, bool, error) {
	runs, err := h.ListRuns()
	if err != nil {
		return RunSummary{}, false, err
	}
	if len(runs) == 0 {
		return RunSummary{}, false, nil
	}
	return runs[0], true, nil
}

// GetRun returns one archived run and its weekly series.
func (h *History) GetRun(runID int64) (RunSummary, []model.WeeklyPoint, error) {
	row := h.db.QueryRow(`SELECT run_id, name, created_at, industry, economy, lifecycle, weeks,
		initial_balance, weekly_revenue, weekly_expenses,
		cumulative_revenue, cumulative_expenses, net_profit,
		profit_margin_pct, break_even_week, burn_rate
		FROM runs WHERE run_id = ?`, runID)

	r, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunSummary{}, nil, fmt.Errorf("run %d not found", runID)
		}
		return RunSummary{}, nil, err
	}

	rows, err := h.db.Query(`SELECT week, revenue, expenses, balance
		FROM run_points WHERE run_id = ? ORDER BY week`, runID)
	if err != nil {
		return RunSummary{}, nil, err
	}
	defer func() { _ = rows.Close() }()

	var points []model.WeeklyPoint
	for rows.Next() {
		var p model.WeeklyPoint
		if err := rows.Scan(&p.Week, &p.Revenue, &p.Expenses, &p.Balance); err != nil {
			return RunSummary{}, nil, err
		}
		points = append(points, p)
	}
	return r, points, rows.Err()
}

// GetScenarios returns the archived what-if comparisons for a run.
func (h *History) GetScenarios(runID int64) ([]model.ScenarioComparison, error) {
	rows, err := h.db.Query(`SELECT name, revenue, expenses, profit, roi, variance
		FROM run_scenarios WHERE run_id = ? ORDER BY name`, runID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.ScenarioComparison
	for rows.Next() {
		var c model.ScenarioComparison
		if err := rows.Scan(&c.Scenario.Name, &c.Scenario.Revenue, &c.Scenario.Expenses,
			&c.Scenario.Profit, &c.Scenario.ROI, &c.Variance); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// DeleteRun removes an archived run, its points, and its scenarios.
func (h *History) DeleteRun(runID int64) error {
	res, err := h.db.Exec("DELETE FROM runs WHERE run_id = ?", runID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("run %d not found", runID)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (RunSummary, error) {
	var r RunSummary
	var created string
	err := row.Scan(&r.ID, &r.Name, &created, &r.Industry, &r.Economy, &r.Lifecycle, &r.Weeks,
		&r.InitialBalance, &r.WeeklyRevenue, &r.WeeklyExpenses,
		&r.CumulativeRevenue, &r.CumulativeExpenses, &r.NetProfit,
		&r.ProfitMarginPct, &r.BreakEvenWeek, &r.BurnRate)
	if err != nil {
		return RunSummary{}, err
	}
	r.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return r, nil
}
