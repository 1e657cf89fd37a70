package tui

import (
	"fmt"
	"strconv"
	"strings"

	"plancast/internal/config"
	"plancast/internal/tui/components"
	"plancast/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldBusiness = iota
	settingsFieldIndustry
	settingsFieldEconomy
	settingsFieldLifecycle
	settingsFieldRevenue
	settingsFieldExpenses
	settingsFieldBalance
	settingsFieldWeeks
	settingsFieldTheme
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldBusiness:
		ti.Placeholder = "Corner Store"
		ti.SetValue(a.inputs.BusinessName)
	case settingsFieldIndustry:
		ti.Placeholder = "retail, technology, service, restaurant, manufacturing"
		ti.SetValue(a.inputs.Industry)
	case settingsFieldEconomy:
		ti.Placeholder = "recession, normal, boom"
		ti.SetValue(a.inputs.Economy)
	case settingsFieldLifecycle:
		ti.Placeholder = "startup, growth, mature, declining"
		ti.SetValue(a.inputs.Lifecycle)
	case settingsFieldRevenue:
		ti.Placeholder = "5000"
		ti.SetValue(fmt.Sprintf("%.0f", a.inputs.WeeklyRevenueBase))
	case settingsFieldExpenses:
		ti.Placeholder = "3500"
		ti.SetValue(fmt.Sprintf("%.0f", a.inputs.WeeklyExpensesBase))
	case settingsFieldBalance:
		ti.Placeholder = "10000"
		ti.SetValue(fmt.Sprintf("%.0f", a.inputs.InitialBalance))
	case settingsFieldWeeks:
		ti.Placeholder = "12"
		ti.SetValue(strconv.Itoa(a.inputs.ForecastWeeks))
	case settingsFieldTheme:
		ti.Placeholder = "flexoki-dark, catppuccin-mocha, tokyo-night"
		ti.SetValue(a.cfg.Appearance.Theme)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldBusiness:
		a.inputs.BusinessName = val
		a.cfg.Plan.BusinessName = val
	case settingsFieldIndustry:
		if val != "" {
			a.inputs.Industry = val
			a.cfg.Plan.Industry = val
		}
	case settingsFieldEconomy:
		if val != "" {
			a.inputs.Economy = val
			a.cfg.Plan.Economy = val
		}
	case settingsFieldLifecycle:
		if val != "" {
			a.inputs.Lifecycle = val
			a.cfg.Plan.Lifecycle = val
		}
	case settingsFieldRevenue:
		if f, err := strconv.ParseFloat(val, 64); err == nil && f >= 0 {
			a.inputs.WeeklyRevenueBase = f
			a.cfg.Plan.WeeklyRevenueBase = f
		}
	case settingsFieldExpenses:
		if f, err := strconv.ParseFloat(val, 64); err == nil && f >= 0 {
			a.inputs.WeeklyExpensesBase = f
			a.cfg.Plan.WeeklyExpensesBase = f
		}
	case settingsFieldBalance:
		if f, err := strconv.ParseFloat(val, 64); err == nil && f >= 0 {
			a.inputs.InitialBalance = f
			a.cfg.Plan.InitialBalance = f
		}
	case settingsFieldWeeks:
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			a.inputs.ForecastWeeks = n
			a.cfg.Plan.ForecastWeeks = n
		}
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				a.cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	}

	a.settings.saveErr = config.Save(a.cfg)
	a.recompute()
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	business := a.inputs.BusinessName
	if business == "" {
		business = "(not set)"
	}

	fields := []field{
		{"Business Name", business},
		{"Industry", a.inputs.Industry},
		{"Economy", a.inputs.Economy},
		{"Lifecycle", a.inputs.Lifecycle},
		{"Weekly Revenue", fmt.Sprintf("$%.0f", a.inputs.WeeklyRevenueBase)},
		{"Weekly Expenses", fmt.Sprintf("$%.0f", a.inputs.WeeklyExpensesBase)},
		{"Initial Balance", fmt.Sprintf("$%.0f", a.inputs.InitialBalance)},
		{"Forecast Weeks", strconv.Itoa(a.inputs.ForecastWeeks)},
		{"Theme", a.cfg.Appearance.Theme},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			if padLen := innerW - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// General info card
	randomState := "off"
	if a.inputs.IncludeRandomEvents {
		randomState = "on"
	}
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:     ") + valueStyle.Render(config.ConfigPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("History file:    ") + valueStyle.Render(config.HistoryPath(a.cfg)) + "\n")
	infoBody.WriteString(labelStyle.Render("Random events:   ") + valueStyle.Render(randomState+"  ([v] toggles, [r] re-rolls)"))

	var b strings.Builder
	b.WriteString(components.ContentCard("Plan", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
