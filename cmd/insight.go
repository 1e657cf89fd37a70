package cmd

import (
	"fmt"

	"plancast/internal/budget"
	"plancast/internal/cli"
	"plancast/internal/insight"

	"github.com/spf13/cobra"
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Narrative read on the forecast and budget",
	RunE:  runInsight,
}

func init() {
	rootCmd.AddCommand(insightCmd)
}

func runInsight(_ *cobra.Command, _ []string) error {
	inputs, _, err := loadPlan()
	if err != nil {
		return err
	}

	result, err := runEngine(inputs)
	if err != nil {
		return err
	}

	tpl := budget.SelectTemplate(inputs.Industry)

	fmt.Println()
	fmt.Println(cli.RenderTitle("INSIGHTS"))
	fmt.Println()
	fmt.Print(cli.RenderParagraph("CASH FLOW", insight.CashFlow(result, inputs), 72))
	fmt.Println()
	fmt.Print(cli.RenderParagraph("BUDGET", insight.Budget(tpl.Categories, inputs.Industry, budget.Total(tpl.Categories)), 72))
	fmt.Println()

	return nil
}
