package cmd

import (
	"fmt"
	"strconv"

	"plancast/internal/cli"
	"plancast/internal/store"

	"github.com/spf13/cobra"
)

var flagDeleteRun int64

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Archived forecast runs",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int64Var(&flagDeleteRun, "delete", 0, "Delete the archived run with this ID")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, args []string) error {
	_, cfg, err := loadPlan()
	if err != nil {
		return err
	}

	h, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = h.Close() }()

	if flagDeleteRun > 0 {
		if err := h.DeleteRun(flagDeleteRun); err != nil {
			return err
		}
		fmt.Printf("\n  Deleted run %d.\n", flagDeleteRun)
		return nil
	}

	if len(args) == 1 {
		runID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run id %q", args[0])
		}
		return showRun(h, runID)
	}

	runs, err := h.ListRuns()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("\n  No archived runs yet. Run a forecast first.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("FORECAST HISTORY"))
	fmt.Println()

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.ID),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Name,
			r.Industry,
			fmt.Sprintf("%dw", r.Weeks),
			cli.Colorize(cli.FormatSignedMoney(r.NetProfit), r.NetProfit),
			cli.FormatPercent(r.ProfitMarginPct),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Date", "Name", "Industry", "Weeks", "Profit", "Margin"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

func showRun(h *store.History, runID int64) error {
	run, points, err := h.GetRun(runID)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("RUN %d  %s", run.ID, run.Name)))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "RUN DETAILS",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Created", run.CreatedAt.Local().Format("Jan 2 2006 15:04")},
			{"Industry", run.Industry},
			{"Economy", run.Economy},
			{"Lifecycle", run.Lifecycle},
			{"Horizon", fmt.Sprintf("%d weeks", run.Weeks)},
			{"---"},
			{"Total revenue", cli.FormatMoney(run.CumulativeRevenue)},
			{"Total expenses", cli.FormatMoney(run.CumulativeExpenses)},
			{"Net profit", cli.Colorize(cli.FormatSignedMoney(run.NetProfit), run.NetProfit)},
			{"Profit margin", cli.FormatPercent(run.ProfitMarginPct)},
			{"Break-even week", cli.FormatWeek(run.BreakEvenWeek)},
		},
	}))

	if len(points) > 0 {
		balances := make([]float64, 0, len(points))
		rows := make([][]string, 0, len(points))
		for _, p := range points {
			balances = append(balances, p.Balance)
			rows = append(rows, []string{
				fmt.Sprintf("%d", p.Week),
				cli.FormatMoney(p.Revenue),
				cli.FormatMoney(p.Expenses),
				cli.Colorize(cli.FormatMoney(p.Balance), p.Balance),
			})
		}
		rows = append(rows, []string{"---"},
			[]string{"Trend", "", "", cli.RenderSparkline(balances)})

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Week", "Revenue", "Expenses", "Balance"},
			Rows:    rows,
		}))
	}

	if comparisons, err := h.GetScenarios(runID); err == nil && len(comparisons) > 0 {
		rows := make([][]string, 0, len(comparisons))
		for _, c := range comparisons {
			rows = append(rows, []string{
				c.Scenario.Name,
				cli.FormatMoney(c.Scenario.Revenue),
				cli.Colorize(cli.FormatSignedMoney(c.Scenario.Profit), c.Scenario.Profit),
				cli.FormatSignedMoney(c.Variance),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "SAVED SCENARIOS",
			Headers: []string{"Scenario", "Revenue", "Profit", "vs Base"},
			Rows:    rows,
		}))
	}

	fmt.Println()
	return nil
}
