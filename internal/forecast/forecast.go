// Package forecast fits a straight-line trend to monthly spending and
// projects it forward.
package forecast

import (
	"math"
	"sort"

	"fjacquet/spendwise/internal/ledgererror"
	"fjacquet/spendwise/internal/logging"
	"fjacquet/spendwise/internal/models"
	"fjacquet/spendwise/internal/scope"

	"github.com/shopspring/decimal"
)

// singularTolerance is the smallest regression denominator treated as
// non-zero.
const singularTolerance = 1e-12

type monthKey struct {
	year  int
	month int
}

func (k monthKey) before(other monthKey) bool {
	return k.year < other.year || (k.year == other.year && k.month < other.month)
}

// series maps each month of one category to its summed amount.
type series map[monthKey]decimal.Decimal

// Forecaster produces per-category and portfolio forecasts.
type Forecaster struct {
	logger logging.Logger
}

// New creates a Forecaster. A nil logger discards output.
func New(logger logging.Logger) *Forecaster {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Forecaster{logger: logger}
}

// Forecast runs a Forecaster without logging.
func Forecast(records []models.Record) ([]models.ForecastResult, error) {
	return New(nil).Forecast(records)
}

// Portfolio runs a Forecaster without logging.
func Portfolio(records []models.Record) (models.ForecastResult, error) {
	return New(nil).Portfolio(records)
}

// Report runs a Forecaster without logging.
func Report(records []models.Record) (models.ForecastReport, error) {
	return New(nil).Report(records)
}

// Forecast fits every expense category observed in at least two distinct
// months. All categories share one month sequence, numbered from 1 over the
// months in which any eligible category has spending, so "next month" means
// the same thing for each of them. Results are sorted by category.
func (f *Forecaster) Forecast(records []models.Record) ([]models.ForecastResult, error) {
	results, _, err := f.forecast(records)
	return results, err
}

func (f *Forecaster) forecast(records []models.Record) ([]models.ForecastResult, int, error) {
	byCategory := make(map[string]series)
	for _, record := range scope.Expenses(records) {
		s, ok := byCategory[record.Category]
		if !ok {
			s = make(series)
			byCategory[record.Category] = s
		}
		key := monthKey{record.Year, record.Month}
		s[key] = s[key].Add(record.Amount)
	}

	eligible := make([]string, 0, len(byCategory))
	for category, s := range byCategory {
		if len(s) >= models.MinForecastMonths {
			eligible = append(eligible, category)
		} else {
			f.logger.Debug("Not enough history to forecast category",
				logging.Field{Key: logging.FieldCategory, Value: category},
				logging.Field{Key: logging.FieldCount, Value: len(s)})
		}
	}
	if len(eligible) == 0 {
		return nil, 0, &ledgererror.InsufficientHistoryError{MinMonths: models.MinForecastMonths}
	}
	sort.Strings(eligible)

	eligibleSeries := make([]series, len(eligible))
	for i, category := range eligible {
		eligibleSeries[i] = byCategory[category]
	}
	sequence := sequenceOf(eligibleSeries...)
	nextSeq := len(sequence) + 1

	results := make([]models.ForecastResult, 0, len(eligible))
	for _, category := range eligible {
		result := project(category, byCategory[category], sequence, nextSeq)
		f.logger.Debug("Forecast category",
			logging.Field{Key: logging.FieldCategory, Value: category},
			logging.Field{Key: "slope", Value: result.Slope},
			logging.Field{Key: "intercept", Value: result.Intercept})
		results = append(results, result)
	}
	return results, nextSeq, nil
}

// Portfolio treats all expense records as a single series and forecasts it
// under the same eligibility rule.
func (f *Forecaster) Portfolio(records []models.Record) (models.ForecastResult, error) {
	total := make(series)
	for _, record := range scope.Expenses(records) {
		key := monthKey{record.Year, record.Month}
		total[key] = total[key].Add(record.Amount)
	}

	if len(total) < models.MinForecastMonths {
		return models.ForecastResult{}, &ledgererror.InsufficientHistoryError{
			Series:    models.PortfolioSeries,
			MinMonths: models.MinForecastMonths,
		}
	}

	sequence := sequenceOf(total)
	return project(models.PortfolioSeries, total, sequence, len(sequence)+1), nil
}

// Report bundles the category forecasts with their totals and the portfolio
// headline.
func (f *Forecaster) Report(records []models.Record) (models.ForecastReport, error) {
	results, nextSeq, err := f.forecast(records)
	if err != nil {
		f.logger.WithError(err).Warn("Cannot forecast spending")
		return models.ForecastReport{}, err
	}

	report := models.ForecastReport{
		NextSequence:    nextSeq,
		Results:         results,
		TotalNextPeriod: decimal.Zero,
		TotalNextYear:   decimal.Zero,
	}
	for _, result := range results {
		report.TotalNextPeriod = report.TotalNextPeriod.Add(result.NextPeriodForecast)
		report.TotalNextYear = report.TotalNextYear.Add(result.NextYearForecast)
	}

	if portfolio, err := f.Portfolio(records); err == nil {
		report.Portfolio = &portfolio
	}

	f.logger.Info("Forecast complete",
		logging.Field{Key: logging.FieldCount, Value: len(results)},
		logging.Field{Key: "next_period_total", Value: report.TotalNextPeriod.StringFixed(2)})
	return report, nil
}

// sequenceOf numbers the union of the months of all given series
// chronologically from 1.
func sequenceOf(all ...series) map[monthKey]int {
	var months []monthKey
	seen := make(map[monthKey]bool)
	for _, s := range all {
		for key := range s {
			if !seen[key] {
				seen[key] = true
				months = append(months, key)
			}
		}
	}
	sort.Slice(months, func(i, j int) bool { return months[i].before(months[j]) })

	sequence := make(map[monthKey]int, len(months))
	for i, key := range months {
		sequence[key] = i + 1
	}
	return sequence
}

func project(name string, s series, sequence map[monthKey]int, nextSeq int) models.ForecastResult {
	keys := make([]monthKey, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].before(keys[j]) })

	xs := make([]float64, len(keys))
	ys := make([]float64, len(keys))
	for i, key := range keys {
		xs[i] = float64(sequence[key])
		ys[i] = s[key].InexactFloat64()
	}

	slope, intercept := fitLine(xs, ys)

	nextPeriod := math.Max(0, slope*float64(nextSeq)+intercept)
	// rate one year ahead times twelve
	nextYear := math.Max(0, slope*float64(nextSeq+11)+intercept) * 12

	return models.ForecastResult{
		Category:           name,
		NextPeriodForecast: toAmount(nextPeriod),
		NextYearForecast:   toAmount(nextYear),
		MeanSquaredError:   meanSquaredError(xs, ys, slope, intercept),
		Slope:              slope,
		Intercept:          intercept,
		Observations:       len(keys),
	}
}

// fitLine is ordinary least squares for y = slope*x + intercept. A singular
// system falls back to a flat line through the mean.
func fitLine(xs, ys []float64) (slope, intercept float64) {
	n := float64(len(xs))
	if n == 0 {
		return 0, 0
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumX2 += xs[i] * xs[i]
	}

	denominator := n*sumX2 - sumX*sumX
	if math.Abs(denominator) < singularTolerance {
		return 0, sumY / n
	}

	slope = (n*sumXY - sumX*sumY) / denominator
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

func meanSquaredError(xs, ys []float64, slope, intercept float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for i := range xs {
		residual := ys[i] - (slope*xs[i] + intercept)
		sum += residual * residual
	}
	return sum / float64(len(xs))
}

func toAmount(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
