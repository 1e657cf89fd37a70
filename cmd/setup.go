package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"plancast/internal/config"
	"plancast/internal/params"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to plancast!")
	fmt.Println()

	// 1. Business name
	fmt.Println("  1. Business name")
	if cfg.Plan.BusinessName != "" {
		fmt.Printf("     Current: %s\n", cfg.Plan.BusinessName)
	}
	fmt.Print("     > ")
	name, _ := reader.ReadString('\n')
	if name = strings.TrimSpace(name); name != "" {
		cfg.Plan.BusinessName = name
	}
	fmt.Println()

	// 2. Industry
	fmt.Println("  2. Industry")
	fmt.Printf("     One of: %s\n", strings.Join(params.IndustryNames(), ", "))
	fmt.Printf("     Current: %s\n", cfg.Plan.Industry)
	fmt.Print("     > ")
	industry, _ := reader.ReadString('\n')
	if industry = strings.TrimSpace(industry); industry != "" {
		cfg.Plan.Industry = industry
	}
	fmt.Println()

	// 3. Weekly figures
	cfg.Plan.WeeklyRevenueBase = askMoney(reader, "3. Average weekly revenue", cfg.Plan.WeeklyRevenueBase)
	cfg.Plan.WeeklyExpensesBase = askMoney(reader, "4. Average weekly expenses", cfg.Plan.WeeklyExpensesBase)
	cfg.Plan.InitialBalance = askMoney(reader, "5. Cash in the bank today", cfg.Plan.InitialBalance)

	// 6. Staffing and premises
	fmt.Println("  6. How many employees on payroll?")
	fmt.Printf("     Current: %d\n", cfg.Plan.EmployeeCount)
	fmt.Print("     > ")
	raw, _ := reader.ReadString('\n')
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n >= 0 {
		cfg.Plan.EmployeeCount = n
	}
	fmt.Println()

	fmt.Println("  7. Physical storefront or office? (y/n)")
	fmt.Print("     > ")
	yn, _ := reader.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(yn)) {
	case "y", "yes":
		cfg.Plan.HasPhysicalLocation = true
	case "n", "no":
		cfg.Plan.HasPhysicalLocation = false
	}
	fmt.Println()

	// 8. Lifecycle
	fmt.Println("  8. Business stage")
	fmt.Println("     (1) Startup")
	fmt.Println("     (2) Growth [default]")
	fmt.Println("     (3) Mature")
	fmt.Println("     (4) Declining")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "1":
		cfg.Plan.Lifecycle = "startup"
	case "3":
		cfg.Plan.Lifecycle = "mature"
	case "4":
		cfg.Plan.Lifecycle = "declining"
	default:
		cfg.Plan.Lifecycle = "growth"
	}
	fmt.Println()

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println()
	fmt.Println("  Run `plancast` for a forecast, or `plancast tui` for the dashboard.")
	fmt.Println()

	return nil
}

func askMoney(reader *bufio.Reader, prompt string, current float64) float64 {
	fmt.Printf("  %s\n", prompt)
	fmt.Printf("     Current: $%.0f\n", current)
	fmt.Print("     > ")
	raw, _ := reader.ReadString('\n')
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$"))
	fmt.Println()
	if raw == "" {
		return current
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || v < 0 {
		return current
	}
	return v
}
