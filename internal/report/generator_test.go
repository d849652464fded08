package report

import (
	"encoding/json"
	"strings"
	"testing"

	"fjacquet/spendwise/internal/logging"
	"fjacquet/spendwise/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleSummary() models.SummaryReport {
	selector := models.ScopeSelector{Scope: models.ScopeMonthly, Year: 2024, Month: 2}
	return models.SummaryReport{
		Selector: selector,
		Window:   selector.String(),
		Records:  3,
		Total:    d("1048"),
		Categories: []models.CategoryAggregate{
			{Category: "Rent", Total: d("1000"), Share: 1000.0 / 1048.0},
			{Category: "Food", Total: d("40"), Share: 40.0 / 1048.0},
			{Category: "Coffee", Total: d("8"), Share: 8.0 / 1048.0},
		},
		Periods: []models.PeriodAggregate{
			{Key: "2024-02-W1", Label: "Week 1", Ordinal: 1, Total: d("8")},
			{Key: "2024-02-W2", Label: "Week 2", Ordinal: 2, Total: d("1040")},
		},
	}
}

func sampleForecast() models.ForecastReport {
	coffee := models.ForecastResult{
		Category: "Coffee", NextPeriodForecast: d("12"), NextYearForecast: d("672"),
		Slope: 4, Observations: 2,
	}
	portfolio := models.ForecastResult{
		Category: models.PortfolioSeries, NextPeriodForecast: d("12"), NextYearForecast: d("672"),
		Slope: 4, Observations: 2,
	}
	return models.ForecastReport{
		NextSequence:    3,
		Results:         []models.ForecastResult{coffee},
		TotalNextPeriod: d("12"),
		TotalNextYear:   d("672"),
		Portfolio:       &portfolio,
	}
}

func TestGenerator_SummaryText(t *testing.T) {
	out, err := NewGenerator(nil, 0).Summary(sampleSummary(), FormatText)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "February 2024")
	assert.Contains(t, text, "Total spent: 1048.00 (3 records)")
	assert.Contains(t, text, "Rent")
	assert.Contains(t, text, "95.4%")
	assert.Contains(t, text, "Week 2")
	assert.Contains(t, text, "1040.00")
}

func TestGenerator_SummaryTextEmpty(t *testing.T) {
	report := models.SummaryReport{Window: "March 2024, week 5", Total: decimal.Zero}

	out, err := NewGenerator(nil, 0).Summary(report, FormatText)
	require.NoError(t, err)
	assert.Contains(t, string(out), noData)
}

func TestGenerator_SummaryJSON(t *testing.T) {
	out, err := NewGenerator(nil, 0).Summary(sampleSummary(), FormatJSON)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "February 2024", decoded["window"])
	assert.Equal(t, "1048", decoded["total"])

	categories, ok := decoded["categories"].([]interface{})
	require.True(t, ok)
	assert.Len(t, categories, 3)
}

func TestGenerator_SummaryYAML(t *testing.T) {
	out, err := NewGenerator(nil, 0).Summary(sampleSummary(), FormatYAML)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "February 2024", decoded["window"])
	assert.Contains(t, string(out), "category: Rent")
}

func TestGenerator_SummaryCSV(t *testing.T) {
	out, err := NewGenerator(nil, ';').Summary(sampleSummary(), FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Category;Total;Share", lines[0])
	assert.Equal(t, "Rent;1000.00;0.9542", lines[1])
	assert.Equal(t, "Coffee;8.00;0.0076", lines[3])
}

func TestGenerator_WasteFormats(t *testing.T) {
	report := models.WasteReport{
		Window:  "2024",
		Records: 2,
		Total:   d("52"),
		Categories: []models.CategoryAggregate{
			{Category: "Food", Total: d("40"), Share: 40.0 / 52.0},
			{Category: "Coffee", Total: d("12"), Share: 12.0 / 52.0},
		},
	}
	g := NewGenerator(nil, 0)

	text, err := g.Waste(report, FormatText)
	require.NoError(t, err)
	assert.Contains(t, string(text), "Total waste: 52.00 (2 records)")
	assert.Contains(t, string(text), "76.9%")

	csv, err := g.Waste(report, FormatCSV)
	require.NoError(t, err)
	assert.Contains(t, string(csv), "Food,40.00,0.7692")

	empty, err := g.Waste(models.WasteReport{Window: "2024", Total: decimal.Zero}, FormatText)
	require.NoError(t, err)
	assert.Contains(t, string(empty), noData)

	emptyCSV, err := g.Waste(models.WasteReport{Total: decimal.Zero}, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "Category,Total,Share", strings.TrimSpace(string(emptyCSV)))
}

func TestGenerator_Forecast(t *testing.T) {
	g := NewGenerator(nil, 0)

	text, err := g.Forecast(sampleForecast(), FormatText)
	require.NoError(t, err)
	assert.Contains(t, string(text), "Next month: 12.00  Next year: 672.00")
	assert.Contains(t, string(text), "TOTAL")
	assert.Contains(t, string(text), "projected to month 3")

	csv, err := g.Forecast(sampleForecast(), FormatCSV)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csv)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Category,NextPeriodForecast,NextYearForecast,MeanSquaredError,Slope,Intercept,Observations", lines[0])
	assert.Equal(t, "Coffee,12.00,672.00,0.0000,4.0000,0.0000,2", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], models.PortfolioSeries+","))

	out, err := g.Forecast(sampleForecast(), FormatJSON)
	require.NoError(t, err)
	var decoded models.ForecastReport
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, 3, decoded.NextSequence)
	assert.True(t, decoded.TotalNextYear.Equal(d("672")))
	require.NotNil(t, decoded.Portfolio)
}

func TestGenerator_Periods(t *testing.T) {
	report := models.PeriodsReport{
		Years:   []int{2024, 2023},
		Default: models.ScopeSelector{Scope: models.ScopeMonthly, Year: 2024, Month: 5},
	}
	g := NewGenerator(nil, 0)

	text, err := g.Periods(report, FormatText)
	require.NoError(t, err)
	assert.Contains(t, string(text), "Years: 2024, 2023")
	assert.Contains(t, string(text), "Default: May 2024 (monthly)")

	csv, err := g.Periods(report, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "Year,Default\n2024,true\n2023,false\n", string(csv))
}

func TestGenerator_UnsupportedFormat(t *testing.T) {
	logger := logging.NewMockLogger()
	_, err := NewGenerator(logger, 0).Summary(sampleSummary(), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format: xml")
}
