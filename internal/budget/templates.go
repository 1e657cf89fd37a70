package budget

import (
	"strings"

	"plancast/internal/model"
)

// cat builds a template line item with its ID derived from the name.
func cat(name string, amount float64, fixed bool, tags ...string) model.BudgetCategory {
	return model.BudgetCategory{
		ID:      slugify(name),
		Name:    name,
		Amount:  amount,
		IsFixed: fixed,
		Tags:    tags,
	}
}

// Monthly starting allocations per business type.
var templates = []model.BudgetTemplate{
	{
		Name:         "Retail Store",
		BusinessType: "retail",
		Categories: []model.BudgetCategory{
			cat("Rent", 2500, true, "location"),
			cat("Inventory", 5000, false, "stock"),
			cat("Staffing", 4000, true, "payroll"),
			cat("Marketing", 1500, false, "growth"),
			cat("Insurance", 300, true),
			cat("Utilities", 500, true, "location"),
			cat("Equipment", 1000, false),
		},
	},
	{
		Name:         "Tech / Software",
		BusinessType: "tech",
		Categories: []model.BudgetCategory{
			cat("Salaries", 12000, true, "payroll"),
			cat("Cloud Infrastructure", 2000, false, "hosting"),
			cat("Marketing", 2500, false, "growth"),
			cat("Office", 1500, true, "location"),
			cat("Software Tools", 800, true),
			cat("Insurance", 400, true),
			cat("Contingency", 800, false),
		},
	},
	{
		Name:         "Service Business",
		BusinessType: "service",
		Categories: []model.BudgetCategory{
			cat("Salaries", 6000, true, "payroll"),
			cat("Rent", 1800, true, "location"),
			cat("Marketing", 1200, false, "growth"),
			cat("Supplies", 600, false),
			cat("Insurance", 350, true),
			cat("Transport", 450, false),
		},
	},
	{
		Name:         "Restaurant",
		BusinessType: "restaurant",
		Categories: []model.BudgetCategory{
			cat("Rent", 3000, true, "location"),
			cat("Food & Ingredients", 6000, false, "stock"),
			cat("Staffing", 5500, true, "payroll"),
			cat("Marketing", 800, false, "growth"),
			cat("Utilities", 900, true, "location"),
			cat("Insurance", 450, true),
			cat("Maintenance", 600, false),
		},
	},
}

// DefaultTemplate is the fallback allocation for unmatched business types.
var DefaultTemplate = model.BudgetTemplate{
	Name:         "General Business",
	BusinessType: "general",
	Categories: []model.BudgetCategory{
		cat("Rent", 2000, true, "location"),
		cat("Payroll", 5000, true, "payroll"),
		cat("Marketing", 1000, false, "growth"),
		cat("Operations", 1500, false),
		cat("Insurance", 300, true),
		cat("Miscellaneous", 700, false),
	},
}

// Keyword aliases accepted per template, matched as substrings.
var templateAliases = map[string][]string{
	"retail":     {"retail", "store"},
	"tech":       {"tech", "software"},
	"service":    {"service"},
	"restaurant": {"restaurant", "food"},
}

// SelectTemplate picks the starting allocation whose keywords appear in the
// business-type label, case-insensitively. Unmatched labels get the general
// template. The returned template's categories are a fresh copy.
func SelectTemplate(businessType string) model.BudgetTemplate {
	label := strings.ToLower(strings.TrimSpace(businessType))
	for _, tpl := range templates {
		for _, alias := range templateAliases[tpl.BusinessType] {
			if strings.Contains(label, alias) {
				return copyTemplate(tpl)
			}
		}
	}
	return copyTemplate(DefaultTemplate)
}

func copyTemplate(tpl model.BudgetTemplate) model.BudgetTemplate {
	out := tpl
	out.Categories = append([]model.BudgetCategory(nil), tpl.Categories...)
	return out
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}
