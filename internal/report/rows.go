package report

import (
	"strconv"

	"fjacquet/spendwise/internal/models"
)

type categoryRow struct {
	Category string `csv:"Category"`
	Total    string `csv:"Total"`
	Share    string `csv:"Share"`
}

func categoryRows(aggregates []models.CategoryAggregate) []categoryRow {
	rows := make([]categoryRow, len(aggregates))
	for i, a := range aggregates {
		rows[i] = categoryRow{
			Category: a.Category,
			Total:    a.Total.StringFixed(2),
			Share:    strconv.FormatFloat(a.Share, 'f', 4, 64),
		}
	}
	return rows
}

type forecastRow struct {
	Category           string `csv:"Category"`
	NextPeriodForecast string `csv:"NextPeriodForecast"`
	NextYearForecast   string `csv:"NextYearForecast"`
	MeanSquaredError   string `csv:"MeanSquaredError"`
	Slope              string `csv:"Slope"`
	Intercept          string `csv:"Intercept"`
	Observations       int    `csv:"Observations"`
}

func toForecastRow(r models.ForecastResult) forecastRow {
	return forecastRow{
		Category:           r.Category,
		NextPeriodForecast: r.NextPeriodForecast.StringFixed(2),
		NextYearForecast:   r.NextYearForecast.StringFixed(2),
		MeanSquaredError:   strconv.FormatFloat(r.MeanSquaredError, 'f', 4, 64),
		Slope:              strconv.FormatFloat(r.Slope, 'f', 4, 64),
		Intercept:          strconv.FormatFloat(r.Intercept, 'f', 4, 64),
		Observations:       r.Observations,
	}
}

// forecastRows lists the categories, then the portfolio headline if any.
func forecastRows(report models.ForecastReport) []forecastRow {
	rows := make([]forecastRow, 0, len(report.Results)+1)
	for _, r := range report.Results {
		rows = append(rows, toForecastRow(r))
	}
	if report.Portfolio != nil {
		rows = append(rows, toForecastRow(*report.Portfolio))
	}
	return rows
}

type periodRow struct {
	Year    int  `csv:"Year"`
	Default bool `csv:"Default"`
}

func periodRows(report models.PeriodsReport) []periodRow {
	rows := make([]periodRow, len(report.Years))
	for i, year := range report.Years {
		rows[i] = periodRow{Year: year, Default: year == report.Default.Year}
	}
	return rows
}
