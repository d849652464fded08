// Package models provides the data structures shared by the analysis engine.
package models

import (
	"strings"
	"time"

	"fjacquet/spendwise/internal/dateutils"

	"github.com/shopspring/decimal"
)

// Record is one canonical ledger entry. Derived calendar fields are computed
// once by NewRecord and never change afterwards.
type Record struct {
	Date        time.Time       `json:"date" yaml:"date"`
	Category    string          `json:"category" yaml:"category"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Description string          `json:"description" yaml:"description"`

	Year        int `json:"year" yaml:"year"`
	Month       int `json:"month" yaml:"month"`
	Day         int `json:"day" yaml:"day"`
	WeekOfMonth int `json:"week_of_month" yaml:"week_of_month"`
}

// NewRecord builds a Record and its derived fields. A blank description
// defaults to the category.
func NewRecord(date time.Time, category string, amount decimal.Decimal, description string) Record {
	category = strings.TrimSpace(category)
	description = strings.TrimSpace(description)
	if description == "" {
		description = category
	}

	return Record{
		Date:        time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Category:    category,
		Amount:      amount,
		Description: description,
		Year:        date.Year(),
		Month:       int(date.Month()),
		Day:         date.Day(),
		WeekOfMonth: dateutils.WeekOfMonth(date.Day()),
	}
}

// CanonicalRow is the CSV shape of a normalized record.
type CanonicalRow struct {
	Date        string `csv:"Date"`
	Category    string `csv:"Category"`
	Amount      string `csv:"Amount"`
	Description string `csv:"Description"`
	Year        int    `csv:"Year"`
	Month       int    `csv:"Month"`
	Day         int    `csv:"Day"`
	WeekOfMonth int    `csv:"WeekOfMonth"`
}

// ToCanonicalRow converts r for CSV export with two decimal places.
func (r Record) ToCanonicalRow() CanonicalRow {
	return CanonicalRow{
		Date:        dateutils.ToISODate(r.Date),
		Category:    r.Category,
		Amount:      r.Amount.StringFixed(2),
		Description: r.Description,
		Year:        r.Year,
		Month:       r.Month,
		Day:         r.Day,
		WeekOfMonth: r.WeekOfMonth,
	}
}
