// Package aggregator sums record sets by category and by period.
package aggregator

import (
	"fmt"
	"sort"

	"fjacquet/spendwise/internal/dateutils"
	"fjacquet/spendwise/internal/models"

	"github.com/shopspring/decimal"
)

// Total sums every amount in records.
func Total(records []models.Record) decimal.Decimal {
	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.Amount)
	}
	return total
}

// ByCategory groups records by exact category name. Aggregates are sorted by
// total descending, ties broken by category ascending. Only categories present
// in records appear; empty input gives an empty slice. Share is the
// category's fraction of the grand total and is 0 when the grand total is 0.
func ByCategory(records []models.Record) []models.CategoryAggregate {
	totals := make(map[string]decimal.Decimal)
	for _, record := range records {
		totals[record.Category] = totals[record.Category].Add(record.Amount)
	}

	grand := Total(records)
	aggregates := make([]models.CategoryAggregate, 0, len(totals))
	for category, total := range totals {
		aggregates = append(aggregates, models.CategoryAggregate{
			Category: category,
			Total:    total,
			Share:    share(total, grand),
		})
	}

	sort.Slice(aggregates, func(i, j int) bool {
		if c := aggregates[i].Total.Cmp(aggregates[j].Total); c != 0 {
			return c > 0
		}
		return aggregates[i].Category < aggregates[j].Category
	})
	return aggregates
}

func share(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).InexactFloat64()
}

// ByPeriod groups records into the buckets that make up a window of the given
// scope: months of a year, weeks of a month, or calendar days of a week.
// Buckets are sorted chronologically and only occupied ones appear.
func ByPeriod(records []models.Record, scope models.Scope) []models.PeriodAggregate {
	buckets := make(map[string]*models.PeriodAggregate)
	for _, record := range records {
		key, label, ordinal := bucketOf(record, scope)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &models.PeriodAggregate{Key: key, Label: label, Ordinal: ordinal, Total: decimal.Zero}
			buckets[key] = bucket
		}
		bucket.Total = bucket.Total.Add(record.Amount)
	}

	periods := make([]models.PeriodAggregate, 0, len(buckets))
	for _, bucket := range buckets {
		periods = append(periods, *bucket)
	}
	sort.Slice(periods, func(i, j int) bool {
		if periods[i].Ordinal != periods[j].Ordinal {
			return periods[i].Ordinal < periods[j].Ordinal
		}
		return periods[i].Key < periods[j].Key
	})
	return periods
}

func bucketOf(record models.Record, scope models.Scope) (key, label string, ordinal int) {
	switch scope {
	case models.ScopeMonthly:
		return fmt.Sprintf("%04d-%02d-W%d", record.Year, record.Month, record.WeekOfMonth),
			fmt.Sprintf("Week %d", record.WeekOfMonth),
			(record.Year*12+record.Month)*10 + record.WeekOfMonth
	case models.ScopeWeekly:
		iso := dateutils.ToISODate(record.Date)
		return iso, iso, record.Year*10000 + record.Month*100 + record.Day
	default:
		return fmt.Sprintf("%04d-%02d", record.Year, record.Month),
			dateutils.MonthName(record.Month),
			record.Year*12 + record.Month
	}
}
