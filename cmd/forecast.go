package cmd

import (
	"fmt"

	"plancast/internal/cli"
	"plancast/internal/insight"
	"plancast/internal/model"

	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Weekly cash flow forecast",
	RunE:  runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	inputs, cfg, err := loadPlan()
	if err != nil {
		return err
	}

	result, err := runEngine(inputs)
	if err != nil {
		return err
	}

	prev, havePrev := archiveRun(cfg, inputs, result)

	title := "CASH FLOW FORECAST"
	if inputs.BusinessName != "" {
		title = fmt.Sprintf("CASH FLOW FORECAST  %s", inputs.BusinessName)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	rows := make([][]string, 0, len(result.Points))
	for _, p := range result.Points {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Week),
			cli.FormatMoney(p.Revenue),
			cli.FormatMoney(p.Expenses),
			cli.Colorize(cli.FormatMoney(p.Balance), p.Balance),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Week", "Revenue", "Expenses", "Balance"},
		Rows:    rows,
	}))

	fmt.Println()
	printSummary(result)

	if havePrev {
		fmt.Println()
		fmt.Printf("  vs previous run (%s): profit %s, revenue %s\n",
			prev.CreatedAt.Local().Format("Jan 2 15:04"),
			cli.FormatDelta(result.NetProfit, prev.NetProfit),
			cli.FormatDelta(result.CumulativeRevenue, prev.CumulativeRevenue))
	}

	if !flagQuiet {
		fmt.Println()
		fmt.Print(cli.RenderParagraph("INSIGHT", insight.CashFlow(result, inputs), 72))
		fmt.Println()
	}

	return nil
}

func printSummary(result model.ForecastResult) {
	balances := make([]float64, 0, len(result.Points))
	for _, p := range result.Points {
		balances = append(balances, p.Balance)
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "SUMMARY",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total revenue", cli.FormatMoney(result.CumulativeRevenue)},
			{"Total expenses", cli.FormatMoney(result.CumulativeExpenses)},
			{"Net profit", cli.Colorize(cli.FormatSignedMoney(result.NetProfit), result.NetProfit)},
			{"Profit margin", cli.FormatPercent(result.ProfitMarginPct)},
			{"Break-even week", cli.FormatWeek(result.BreakEvenWeek)},
			{"Avg weekly burn", cli.FormatMoney(result.BurnRate)},
			{"---"},
			{"Balance trend", cli.RenderSparkline(balances)},
		},
	}))
}
