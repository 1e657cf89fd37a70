package tui

import (
	"fmt"
	"strconv"
	"strings"

	"plancast/internal/config"
	"plancast/internal/model"
	"plancast/internal/params"

	"github.com/charmbracelet/huh"
)

// setupValues backs the first-run huh form. Numeric fields are kept as
// strings until the form completes.
type setupValues struct {
	business  string
	industry  string
	lifecycle string
	revenue   string
	expenses  string
	balance   string
}

func setupDefaults(inputs model.ForecastInputs) setupValues {
	return setupValues{
		business:  inputs.BusinessName,
		industry:  inputs.Industry,
		lifecycle: inputs.Lifecycle,
		revenue:   fmt.Sprintf("%.0f", inputs.WeeklyRevenueBase),
		expenses:  fmt.Sprintf("%.0f", inputs.WeeklyExpensesBase),
		balance:   fmt.Sprintf("%.0f", inputs.InitialBalance),
	}
}

func validateMoney(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func newSetupForm(v *setupValues) *huh.Form {
	industryOpts := make([]huh.Option[string], 0, len(params.IndustryNames()))
	for _, name := range params.IndustryNames() {
		industryOpts = append(industryOpts, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Business name").
				Placeholder("Corner Store").
				Value(&v.business),

			huh.NewSelect[string]().
				Title("Industry").
				Options(industryOpts...).
				Value(&v.industry),

			huh.NewSelect[string]().
				Title("Business stage").
				Options(
					huh.NewOption("Startup", "startup"),
					huh.NewOption("Growth", "growth"),
					huh.NewOption("Mature", "mature"),
					huh.NewOption("Declining", "declining"),
				).
				Value(&v.lifecycle),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Average weekly revenue").
				Validate(validateMoney).
				Value(&v.revenue),

			huh.NewInput().
				Title("Average weekly expenses").
				Validate(validateMoney).
				Value(&v.expenses),

			huh.NewInput().
				Title("Cash in the bank today").
				Validate(validateMoney).
				Value(&v.balance),
		),
	)
}

// applySetup folds the completed form values into the live plan and persists
// them to the config file. Save errors are non-fatal; the session keeps the
// entered values.
func (a *App) applySetup() {
	v := a.setupVals

	if name := strings.TrimSpace(v.business); name != "" {
		a.inputs.BusinessName = name
	}
	if v.industry != "" {
		a.inputs.Industry = v.industry
	}
	if v.lifecycle != "" {
		a.inputs.Lifecycle = v.lifecycle
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(v.revenue), 64); err == nil && f >= 0 {
		a.inputs.WeeklyRevenueBase = f
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(v.expenses), 64); err == nil && f >= 0 {
		a.inputs.WeeklyExpensesBase = f
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(v.balance), 64); err == nil && f >= 0 {
		a.inputs.InitialBalance = f
	}

	a.cfg.Plan.BusinessName = a.inputs.BusinessName
	a.cfg.Plan.Industry = a.inputs.Industry
	a.cfg.Plan.Lifecycle = a.inputs.Lifecycle
	a.cfg.Plan.WeeklyRevenueBase = a.inputs.WeeklyRevenueBase
	a.cfg.Plan.WeeklyExpensesBase = a.inputs.WeeklyExpensesBase
	a.cfg.Plan.InitialBalance = a.inputs.InitialBalance

	_ = config.Save(a.cfg)
}
