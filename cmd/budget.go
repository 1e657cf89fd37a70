package cmd

import (
	"fmt"

	"plancast/internal/budget"
	"plancast/internal/cli"
	"plancast/internal/insight"
	"plancast/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagBudgetType string
	flagToPeriod   string
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Budget template with category breakdown",
	RunE:  runBudget,
}

func init() {
	budgetCmd.Flags().StringVarP(&flagBudgetType, "type", "t", "", "Business type for template selection (defaults to the configured industry)")
	budgetCmd.Flags().StringVar(&flagToPeriod, "to-period", "", "Convert amounts to another period (monthly, quarterly, annual)")
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	inputs, _, err := loadPlan()
	if err != nil {
		return err
	}

	businessType := flagBudgetType
	if businessType == "" {
		businessType = inputs.Industry
	}

	tpl := budget.SelectTemplate(businessType)
	cats := tpl.Categories
	period := model.PeriodMonthly

	if flagToPeriod != "" {
		to := model.BudgetPeriod(flagToPeriod)
		cats = budget.ConvertPeriod(cats, period, to)
		period = to
	}

	total := budget.Total(cats)
	stats := budget.Stats(cats)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET  %s (%s)", tpl.Name, period)))
	fmt.Println()

	rows := make([][]string, 0, len(cats)+2)
	for _, c := range cats {
		kind := "variable"
		if c.IsFixed {
			kind = "fixed"
		}
		share := 0.0
		if total > 0 {
			share = c.Amount / total * 100
		}
		rows = append(rows, []string{
			c.Name,
			cli.FormatMoney(c.Amount),
			cli.FormatPercent(share),
			kind,
		})
	}
	rows = append(rows, []string{"---"},
		[]string{"Total", cli.FormatMoney(total), "", ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Amount", "Share", "Type"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "STRUCTURE",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Fixed costs", fmt.Sprintf("%s (%s)", cli.FormatMoney(stats.FixedTotal), cli.FormatPercent(stats.FixedPct))},
			{"Variable costs", fmt.Sprintf("%s (%s)", cli.FormatMoney(stats.VariableTotal), cli.FormatPercent(stats.VariablePct))},
			{"Largest category", fmt.Sprintf("%s (%s)", stats.Highest.Name, cli.FormatMoney(stats.Highest.Amount))},
			{"Smallest category", fmt.Sprintf("%s (%s)", stats.Lowest.Name, cli.FormatMoney(stats.Lowest.Amount))},
		},
	}))

	if !flagQuiet {
		fmt.Println()
		fmt.Print(cli.RenderParagraph("INSIGHT", insight.Budget(cats, businessType, total), 72))
		fmt.Println()
	}

	return nil
}
