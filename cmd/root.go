package cmd

import (
	"fmt"
	"os"
	"time"

	"plancast/internal/config"
	"plancast/internal/forecast"
	"plancast/internal/model"
	"plancast/internal/params"
	"plancast/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagWeeks       int
	flagIndustry    string
	flagEconomy     string
	flagLifecycle   string
	flagSeasonality string
	flagCompetition string
	flagSeed        int64
	flagRandom      bool
	flagNoSave      bool
	flagQuiet       bool
	flagConfig      string
)

var rootCmd = &cobra.Command{
	Use:   "plancast",
	Short: "Small-Business Financial Planning CLI",
	Long:  "Forecast cash flow, plan budgets, and explore what-if scenarios for a small business.",
	RunE:  runForecast,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagWeeks, "weeks", "w", 0, "Forecast horizon in weeks (0 = config default)")
	rootCmd.PersistentFlags().StringVarP(&flagIndustry, "industry", "i", "", "Industry profile (retail, technology, service, restaurant, manufacturing)")
	rootCmd.PersistentFlags().StringVarP(&flagEconomy, "economy", "e", "", "Economic scenario (recession, normal, boom)")
	rootCmd.PersistentFlags().StringVarP(&flagLifecycle, "lifecycle", "l", "", "Lifecycle phase (startup, growth, mature, declining)")
	rootCmd.PersistentFlags().StringVar(&flagSeasonality, "seasonality", "", "Seasonality impact (low, medium, high)")
	rootCmd.PersistentFlags().StringVar(&flagCompetition, "competition", "", "Market competition (low, medium, high)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Random seed for volatility sampling (0 = time-based)")
	rootCmd.PersistentFlags().BoolVar(&flagRandom, "random", false, "Enable random volatility events")
	rootCmd.PersistentFlags().BoolVar(&flagNoSave, "no-save", false, "Skip archiving this run to history")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default ~/.config/plancast/config.toml)")
}

// loadPlan is the shared plan loading path used by all commands: config file
// defaults, sparse overrides, then CLI flags, in that order.
func loadPlan() (model.ForecastInputs, config.Config, error) {
	var cfg config.Config
	var err error
	if flagConfig != "" {
		cfg, err = config.LoadFrom(flagConfig)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return model.ForecastInputs{}, cfg, err
	}

	plan := config.MergeOverrides(cfg.Plan, cfg.Overrides)
	inputs := plan.Inputs()

	if flagWeeks > 0 {
		inputs.ForecastWeeks = flagWeeks
	}
	if flagIndustry != "" {
		inputs.Industry = flagIndustry
	}
	if flagEconomy != "" {
		inputs.Economy = flagEconomy
	}
	if flagLifecycle != "" {
		inputs.Lifecycle = flagLifecycle
	}
	if flagSeasonality != "" {
		inputs.Seasonality = flagSeasonality
	}
	if flagCompetition != "" {
		inputs.Competition = flagCompetition
	}
	if flagRandom {
		inputs.IncludeRandomEvents = true
	}

	return inputs, cfg, nil
}

// runEngine resolves the plan's labels and runs the forecast with a seeded
// or time-based randomness source.
func runEngine(inputs model.ForecastInputs) (model.ForecastResult, error) {
	resolved := params.Resolve(inputs.Industry, inputs.Economy, inputs.Lifecycle, inputs.Seasonality, inputs.Competition)

	var rng forecast.Source
	if inputs.IncludeRandomEvents {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = forecast.NewSource(seed)
	}

	return forecast.Generate(inputs, resolved, rng)
}

// openHistory opens the run archive; callers must Close it.
func openHistory(cfg config.Config) (*store.History, error) {
	return store.Open(config.HistoryPath(cfg))
}

// archiveRun saves a run unless --no-save is set, returning the previous
// run's summary (when one exists) for delta display.
func archiveRun(cfg config.Config, inputs model.ForecastInputs, result model.ForecastResult) (prev store.RunSummary, havePrev bool) {
	if flagNoSave || !cfg.History.Autosave {
		return store.RunSummary{}, false
	}

	h, err := openHistory(cfg)
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  history unavailable: %v\n", err)
		}
		return store.RunSummary{}, false
	}
	defer func() { _ = h.Close() }()

	prev, havePrev, _ = h.LatestRun()

	name := inputs.BusinessName
	if name == "" {
		name = "forecast"
	}
	if _, err := h.SaveRun(name, inputs, result); err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  could not archive run: %v\n", err)
	}

	return prev, havePrev
}
