package models

// Reserved categories are ledger activity that is never counted as spending.
const (
	CategoryIncome   = "Income"
	CategorySavings  = "Savings"
	CategoryTransfer = "Transfer"
)

// ReservedCategories is the non-expense category set.
var ReservedCategories = []string{CategoryIncome, CategorySavings, CategoryTransfer}

// PortfolioSeries names the whole-portfolio forecast series.
const PortfolioSeries = "All spending"

// MinForecastMonths is the number of distinct calendar months a series needs
// before it can be forecast.
const MinForecastMonths = 2

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
