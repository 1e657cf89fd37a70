// Package config loads and saves plancast configuration: the business plan
// defaults, optional sparse overrides supplied by external tooling, and
// appearance/history settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all plancast configuration.
type Config struct {
	Plan       PlanConfig       `toml:"plan"`
	Overrides  Overrides        `toml:"overrides"`
	Appearance AppearanceConfig `toml:"appearance"`
	History    HistoryConfig    `toml:"history"`
}

// PlanConfig is the persisted default business plan.
type PlanConfig struct {
	BusinessName string `toml:"business_name,omitempty"`

	InitialBalance     float64 `toml:"initial_balance"`
	WeeklyRevenueBase  float64 `toml:"weekly_revenue"`
	WeeklyExpensesBase float64 `toml:"weekly_expenses"`

	RevenueGrowthPct  float64 `toml:"revenue_growth_pct"`
	ExpensesGrowthPct float64 `toml:"expenses_growth_pct"`
	TaxRatePct        float64 `toml:"tax_rate_pct"`

	RevenueSpikeWeek   int     `toml:"revenue_spike_week,omitempty"`
	RevenueSpikeAmount float64 `toml:"revenue_spike_amount,omitempty"`
	ExpenseSpikeWeek   int     `toml:"expense_spike_week,omitempty"`
	ExpenseSpikeAmount float64 `toml:"expense_spike_amount,omitempty"`

	EmployeeCount       int  `toml:"employee_count"`
	HasPhysicalLocation bool `toml:"has_physical_location"`
	ForecastWeeks       int  `toml:"forecast_weeks"`

	Industry    string `toml:"industry"`
	Economy     string `toml:"economy"`
	Lifecycle   string `toml:"lifecycle"`
	Seasonality string `toml:"seasonality"`
	Competition string `toml:"competition"`

	InitialMarketingBoost bool `toml:"initial_marketing_boost"`
	IncludeRandomEvents   bool `toml:"include_random_events"`
}

// Overrides is a sparse partial plan produced by external extraction tooling
// (e.g. best-effort parsing of a written business plan). Set fields replace
// the corresponding plan defaults before the engine runs; the core never
// parses free text itself.
type Overrides struct {
	WeeklyRevenueBase   *float64 `toml:"weekly_revenue,omitempty"`
	WeeklyExpensesBase  *float64 `toml:"weekly_expenses,omitempty"`
	InitialBalance      *float64 `toml:"initial_balance,omitempty"`
	EmployeeCount       *int     `toml:"employee_count,omitempty"`
	HasPhysicalLocation *bool    `toml:"has_physical_location,omitempty"`
	Industry            *string  `toml:"industry,omitempty"`
	Lifecycle           *string  `toml:"lifecycle,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// HistoryConfig holds forecast-history settings.
type HistoryConfig struct {
	Path     string `toml:"path,omitempty"`
	Autosave bool   `toml:"autosave"`
}

// DefaultConfig returns the default configuration: a modest service business
// forecast over 12 weeks.
func DefaultConfig() Config {
	return Config{
		Plan: PlanConfig{
			InitialBalance:     10000,
			WeeklyRevenueBase:  5000,
			WeeklyExpensesBase: 3500,
			RevenueGrowthPct:   10,
			ExpensesGrowthPct:  5,
			ForecastWeeks:      12,
			Industry:           "service",
			Economy:            "normal",
			Lifecycle:          "growth",
			Seasonality:        "medium",
			Competition:        "medium",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		History: HistoryConfig{
			Autosave: true,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "plancast")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "plancast")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// HistoryPath returns the path of the forecast history database,
// honoring the configured override.
func HistoryPath(cfg Config) string {
	if cfg.History.Path != "" {
		return cfg.History.Path
	}
	return filepath.Join(ConfigDir(), "history.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads a config file from an explicit path, returning defaults if
// it doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
