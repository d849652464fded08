// Package scope narrows a record set to a reporting window and to expenses.
package scope

import (
	"sort"

	"fjacquet/spendwise/internal/models"
)

// IsReserved reports whether category is one of the non-expense categories.
// The comparison is exact.
func IsReserved(category string) bool {
	for _, reserved := range models.ReservedCategories {
		if category == reserved {
			return true
		}
	}
	return false
}

// IsExpense reports whether record counts as spending: a positive amount in a
// non-reserved category.
func IsExpense(record models.Record) bool {
	return record.Amount.IsPositive() && !IsReserved(record.Category)
}

// Filter keeps the expense records inside the selector's window. It always
// matches the year, the month for monthly and weekly scopes and the week of
// the month for weekly scope. A window without data yields an empty slice.
// The input is never modified.
func Filter(records []models.Record, selector models.ScopeSelector) []models.Record {
	filtered := make([]models.Record, 0)
	for _, record := range records {
		if inWindow(record, selector) && IsExpense(record) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// Expenses keeps every expense record regardless of date.
func Expenses(records []models.Record) []models.Record {
	expenses := make([]models.Record, 0, len(records))
	for _, record := range records {
		if IsExpense(record) {
			expenses = append(expenses, record)
		}
	}
	return expenses
}

func inWindow(record models.Record, selector models.ScopeSelector) bool {
	if record.Year != selector.Year {
		return false
	}
	switch selector.Scope {
	case models.ScopeMonthly:
		return record.Month == selector.Month
	case models.ScopeWeekly:
		return record.Month == selector.Month && record.WeekOfMonth == selector.Week
	default:
		return true
	}
}

// AvailableYears lists the distinct years present, newest first.
func AvailableYears(records []models.Record) []int {
	seen := make(map[int]bool)
	years := make([]int, 0)
	for _, record := range records {
		if !seen[record.Year] {
			seen[record.Year] = true
			years = append(years, record.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// DefaultSelector opens a report on the latest year in the data and, for the
// monthly and weekly scopes, on the latest month of that year. Weekly scope
// starts at week 1. With no records the zero selector of the scope is
// returned.
func DefaultSelector(records []models.Record, scope models.Scope) models.ScopeSelector {
	selector := models.ScopeSelector{Scope: scope}
	if len(records) == 0 {
		return selector
	}

	for _, record := range records {
		if record.Year > selector.Year {
			selector.Year = record.Year
		}
	}
	if scope == models.ScopeYearly {
		return selector
	}

	selector.Month = LatestMonth(records, selector.Year)
	if scope == models.ScopeWeekly {
		selector.Week = 1
	}
	return selector
}

// LatestMonth returns the last month of year that has records, or 0 when the
// year has none.
func LatestMonth(records []models.Record, year int) int {
	latest := 0
	for _, record := range records {
		if record.Year == year && record.Month > latest {
			latest = record.Month
		}
	}
	return latest
}
