package cmd

import (
	"fmt"

	"plancast/internal/cli"
	"plancast/internal/config"
	"plancast/internal/model"
	"plancast/internal/scenario"

	"github.com/spf13/cobra"
)

var (
	flagRevenueDelta float64
	flagExpenseDelta float64
	flagInvestment   float64
	flagScenarioName string
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "What-if scenario comparison",
	Long:  "Compare preset what-if scenarios against the baseline forecast, or derive a custom one with --revenue-delta and --expense-delta.",
	RunE:  runScenario,
}

func init() {
	scenarioCmd.Flags().Float64Var(&flagRevenueDelta, "revenue-delta", 0, "Revenue change in percent for a custom scenario")
	scenarioCmd.Flags().Float64Var(&flagExpenseDelta, "expense-delta", 0, "Expense change in percent for a custom scenario")
	scenarioCmd.Flags().Float64Var(&flagInvestment, "investment", 0, "Extra upfront investment for the custom scenario")
	scenarioCmd.Flags().StringVar(&flagScenarioName, "name", "", "Name for the custom scenario")
	rootCmd.AddCommand(scenarioCmd)
}

func runScenario(_ *cobra.Command, _ []string) error {
	inputs, cfg, err := loadPlan()
	if err != nil {
		return err
	}

	result, err := runEngine(inputs)
	if err != nil {
		return err
	}

	base := scenario.FromForecast(result)

	scenarios := []model.ScenarioData{base}
	custom := flagRevenueDelta != 0 || flagExpenseDelta != 0 || flagInvestment != 0
	if custom {
		name := flagScenarioName
		if name == "" {
			name = "Custom"
		}
		scenarios = append(scenarios, scenario.Derive(base, flagRevenueDelta, flagExpenseDelta, flagInvestment, name))
	} else {
		scenarios = append(scenarios, scenario.Presets(base)...)
	}

	comparisons := scenario.CompareToBase(scenarios, base)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SCENARIO COMPARISON"))
	fmt.Println()

	rows := [][]string{{
		base.Name,
		cli.FormatMoney(base.Revenue),
		cli.FormatMoney(base.Expenses),
		cli.Colorize(cli.FormatSignedMoney(base.Profit), base.Profit),
		cli.FormatPercent(base.ROI),
		"",
	}, {"---"}}

	for _, c := range comparisons {
		s := c.Scenario
		rows = append(rows, []string{
			s.Name,
			cli.FormatMoney(s.Revenue),
			cli.FormatMoney(s.Expenses),
			cli.Colorize(cli.FormatSignedMoney(s.Profit), s.Profit),
			cli.FormatPercent(s.ROI),
			cli.FormatDelta(s.Profit, base.Profit),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Scenario", "Revenue", "Expenses", "Profit", "ROI", "vs Base"},
		Rows:    rows,
	}))
	fmt.Println()

	saveScenarios(cfg, inputs, result, comparisons)

	return nil
}

// saveScenarios attaches the comparison set to the latest archived run.
func saveScenarios(cfg config.Config, inputs model.ForecastInputs, result model.ForecastResult, comparisons []model.ScenarioComparison) {
	if flagNoSave || !cfg.History.Autosave {
		return
	}

	h, err := openHistory(cfg)
	if err != nil {
		return
	}
	defer func() { _ = h.Close() }()

	name := inputs.BusinessName
	if name == "" {
		name = "scenario"
	}
	runID, err := h.SaveRun(name, inputs, result)
	if err != nil {
		return
	}
	if err := h.SaveScenarios(runID, comparisons); err != nil && !flagQuiet {
		fmt.Printf("  could not save scenarios: %v\n", err)
	}
}
