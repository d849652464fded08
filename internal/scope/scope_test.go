package scope

import (
	"fmt"
	"testing"
	"time"

	"fjacquet/spendwise/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(date, category, amount string) models.Record {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.NewRecord(d, category, decimal.RequireFromString(amount), "")
}

// generatedLedger spans two years with every category and sign mix.
func generatedLedger() []models.Record {
	categories := []string{"Food", "Coffee", "Rent", "Income", "Savings", "Transfer"}
	var records []models.Record
	for year := 2023; year <= 2024; year++ {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= 31; day += 3 {
				date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
				if date.Month() != time.Month(month) {
					continue
				}
				category := categories[(day+month)%len(categories)]
				amount := decimal.NewFromInt(int64((day*month)%50 - 5))
				records = append(records, models.NewRecord(date, category, amount, ""))
			}
		}
	}
	return records
}

func TestIsReserved(t *testing.T) {
	assert.True(t, IsReserved("Income"))
	assert.True(t, IsReserved("Savings"))
	assert.True(t, IsReserved("Transfer"))
	assert.False(t, IsReserved("income"))
	assert.False(t, IsReserved("Food"))
}

func TestIsExpense(t *testing.T) {
	tests := []struct {
		name     string
		record   models.Record
		expected bool
	}{
		{name: "Positive", record: rec("2024-01-01", "Food", "10"), expected: true},
		{name: "Zero", record: rec("2024-01-01", "Food", "0"), expected: false},
		{name: "Negative", record: rec("2024-01-01", "Food", "-10"), expected: false},
		{name: "Income", record: rec("2024-01-01", "Income", "3000"), expected: false},
		{name: "Savings", record: rec("2024-01-01", "Savings", "500"), expected: false},
		{name: "Transfer", record: rec("2024-01-01", "Transfer", "20"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsExpense(tt.record))
		})
	}
}

func TestFilter(t *testing.T) {
	records := []models.Record{
		rec("2023-03-03", "Food", "1"),
		rec("2024-03-03", "Food", "2"),
		rec("2024-03-10", "Food", "3"),
		rec("2024-03-29", "Food", "4"),
		rec("2024-04-01", "Food", "5"),
		rec("2024-03-04", "Income", "100"),
		rec("2024-03-05", "Food", "-7"),
	}

	tests := []struct {
		name     string
		selector models.ScopeSelector
		amounts  []string
	}{
		{name: "Yearly", selector: models.ScopeSelector{Scope: models.ScopeYearly, Year: 2024}, amounts: []string{"2", "3", "4", "5"}},
		{name: "Monthly", selector: models.ScopeSelector{Scope: models.ScopeMonthly, Year: 2024, Month: 3}, amounts: []string{"2", "3", "4"}},
		{name: "WeeklyFirst", selector: models.ScopeSelector{Scope: models.ScopeWeekly, Year: 2024, Month: 3, Week: 1}, amounts: []string{"2"}},
		{name: "WeeklyFifth", selector: models.ScopeSelector{Scope: models.ScopeWeekly, Year: 2024, Month: 3, Week: 5}, amounts: []string{"4"}},
		{name: "NoSuchYear", selector: models.ScopeSelector{Scope: models.ScopeYearly, Year: 1999}, amounts: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := Filter(records, tt.selector)
			amounts := make([]string, 0, len(filtered))
			for _, r := range filtered {
				amounts = append(amounts, r.Amount.String())
			}
			assert.Equal(t, tt.amounts, amounts)
		})
	}
}

func TestFilter_EmptyWeekIsNotAnError(t *testing.T) {
	// February 2023 has 28 days, so week 5 never occurs
	records := []models.Record{rec("2023-02-01", "Food", "10"), rec("2023-02-28", "Food", "20")}

	filtered := Filter(records, models.ScopeSelector{Scope: models.ScopeWeekly, Year: 2023, Month: 2, Week: 5})
	require.NotNil(t, filtered)
	assert.Empty(t, filtered)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := []models.Record{rec("2024-01-01", "Food", "1"), rec("2024-01-02", "Income", "9")}
	snapshot := append([]models.Record(nil), records...)

	_ = Filter(records, models.ScopeSelector{Scope: models.ScopeYearly, Year: 2024})
	assert.Equal(t, snapshot, records)
}

// Property: every filtered record is an expense inside the window, and the
// windows nest yearly ⊇ monthly ⊇ weekly.
func TestFilter_Properties(t *testing.T) {
	records := generatedLedger()

	for month := 1; month <= 12; month++ {
		yearly := Filter(records, models.ScopeSelector{Scope: models.ScopeYearly, Year: 2024})
		monthly := Filter(records, models.ScopeSelector{Scope: models.ScopeMonthly, Year: 2024, Month: month})
		assert.GreaterOrEqual(t, len(yearly), len(monthly))

		for _, r := range monthly {
			assert.True(t, IsExpense(r))
			assert.Equal(t, 2024, r.Year)
			assert.Equal(t, month, r.Month)
			assert.Contains(t, yearly, r)
		}

		for week := 1; week <= 5; week++ {
			t.Run(fmt.Sprintf("month%d_week%d", month, week), func(t *testing.T) {
				weekly := Filter(records, models.ScopeSelector{Scope: models.ScopeWeekly, Year: 2024, Month: month, Week: week})
				assert.GreaterOrEqual(t, len(monthly), len(weekly))
				for _, r := range weekly {
					assert.Equal(t, week, r.WeekOfMonth)
					assert.Contains(t, monthly, r)
				}
			})
		}
	}
}

func TestExpenses(t *testing.T) {
	records := []models.Record{
		rec("2023-01-01", "Food", "1"),
		rec("2024-01-01", "Transfer", "1"),
		rec("2024-06-01", "Food", "0"),
		rec("2024-06-02", "Rent", "900"),
	}

	expenses := Expenses(records)
	require.Len(t, expenses, 2)
	assert.Equal(t, "Food", expenses[0].Category)
	assert.Equal(t, "Rent", expenses[1].Category)
}

func TestAvailableYears(t *testing.T) {
	records := []models.Record{
		rec("2022-01-01", "Food", "1"),
		rec("2024-01-01", "Food", "1"),
		rec("2023-01-01", "Income", "1"),
		rec("2024-05-01", "Food", "1"),
	}

	assert.Equal(t, []int{2024, 2023, 2022}, AvailableYears(records))
	assert.Empty(t, AvailableYears(nil))
}

func TestDefaultSelector(t *testing.T) {
	records := []models.Record{
		rec("2023-12-01", "Food", "1"),
		rec("2024-02-14", "Food", "1"),
		rec("2024-05-20", "Food", "1"),
		rec("2024-03-01", "Food", "1"),
	}

	assert.Equal(t, models.ScopeSelector{Scope: models.ScopeYearly, Year: 2024}, DefaultSelector(records, models.ScopeYearly))
	assert.Equal(t, models.ScopeSelector{Scope: models.ScopeMonthly, Year: 2024, Month: 5}, DefaultSelector(records, models.ScopeMonthly))
	assert.Equal(t, models.ScopeSelector{Scope: models.ScopeWeekly, Year: 2024, Month: 5, Week: 1}, DefaultSelector(records, models.ScopeWeekly))
	assert.Equal(t, models.ScopeSelector{Scope: models.ScopeMonthly}, DefaultSelector(nil, models.ScopeMonthly))

	for _, scope := range []models.Scope{models.ScopeYearly, models.ScopeMonthly, models.ScopeWeekly} {
		assert.NoError(t, DefaultSelector(records, scope).Validate())
	}
}

func TestLatestMonth(t *testing.T) {
	records := []models.Record{
		rec("2023-11-01", "Food", "1"),
		rec("2023-12-31", "Food", "1"),
		rec("2024-02-01", "Food", "1"),
	}

	assert.Equal(t, 12, LatestMonth(records, 2023))
	assert.Equal(t, 2, LatestMonth(records, 2024))
	assert.Equal(t, 0, LatestMonth(records, 2025))
}
