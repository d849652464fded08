// Package session holds the canonical record set of one analysis and serves
// the report views computed from it.
package session

import (
	"fjacquet/spendwise/internal/aggregator"
	"fjacquet/spendwise/internal/forecast"
	"fjacquet/spendwise/internal/logging"
	"fjacquet/spendwise/internal/models"
	"fjacquet/spendwise/internal/normalizer"
	"fjacquet/spendwise/internal/scope"
	"fjacquet/spendwise/internal/waste"

	"github.com/google/uuid"
)

// Session owns a read-only record set. Every accessor hands out copies, so
// callers can never alter what later views are computed from.
type Session struct {
	id      string
	records []models.Record
	logger  logging.Logger
}

// New normalizes ledgers into a fresh session.
func New(logger logging.Logger, ledgers ...models.RawLedger) (*Session, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}

	id := uuid.NewString()
	logger = logger.WithField(logging.FieldSession, id)

	records, err := normalizer.New(logger).Normalize(ledgers...)
	if err != nil {
		return nil, err
	}

	logger.Info("Session started", logging.Field{Key: logging.FieldCount, Value: len(records)})
	return &Session{id: id, records: records, logger: logger}, nil
}

// FromRecords starts a session on records that are already canonical.
func FromRecords(logger logging.Logger, records []models.Record) *Session {
	if logger == nil {
		logger = logging.NopLogger()
	}
	id := uuid.NewString()
	return &Session{
		id:      id,
		records: append([]models.Record(nil), records...),
		logger:  logger.WithField(logging.FieldSession, id),
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// Records returns a copy of the canonical record set.
func (s *Session) Records() []models.Record {
	return append([]models.Record(nil), s.records...)
}

// Len is the number of canonical records.
func (s *Session) Len() int {
	return len(s.records)
}

// Periods lists the years with data and the window a report of the given
// scope opens on.
func (s *Session) Periods(sc models.Scope) models.PeriodsReport {
	return models.PeriodsReport{
		Years:   scope.AvailableYears(s.records),
		Default: scope.DefaultSelector(s.records, sc),
	}
}

// Resolve fills a zero year with the latest year in the data and, for the
// monthly and weekly scopes, a zero month with the latest month of that year.
// A zero week becomes the first week.
func (s *Session) Resolve(selector models.ScopeSelector) models.ScopeSelector {
	if selector.Year == 0 {
		selector.Year = scope.DefaultSelector(s.records, models.ScopeYearly).Year
	}
	if selector.Scope != models.ScopeYearly && selector.Month == 0 {
		selector.Month = scope.LatestMonth(s.records, selector.Year)
	}
	if selector.Scope == models.ScopeWeekly && selector.Week == 0 {
		selector.Week = 1
	}
	return selector
}

// Window returns the expense records inside selector.
func (s *Session) Window(selector models.ScopeSelector) ([]models.Record, error) {
	if err := selector.Validate(); err != nil {
		return nil, err
	}
	return scope.Filter(s.records, selector), nil
}

// Summary reports total, categories and period trend for selector.
func (s *Session) Summary(selector models.ScopeSelector) (models.SummaryReport, error) {
	window, err := s.Window(selector)
	if err != nil {
		return models.SummaryReport{}, err
	}

	s.logger.Debug("Summarizing window",
		logging.Field{Key: logging.FieldScope, Value: selector.String()},
		logging.Field{Key: logging.FieldCount, Value: len(window)})

	return models.SummaryReport{
		Selector:   selector,
		Window:     selector.String(),
		Records:    len(window),
		Total:      aggregator.Total(window),
		Categories: aggregator.ByCategory(window),
		Periods:    aggregator.ByPeriod(window, selector.Scope),
	}, nil
}

// Waste reports the waste breakdown of selector's window.
func (s *Session) Waste(selector models.ScopeSelector, vocabulary waste.Vocabulary) (models.WasteReport, error) {
	window, err := s.Window(selector)
	if err != nil {
		return models.WasteReport{}, err
	}

	report := waste.Breakdown(window, vocabulary)
	report.Selector = selector
	report.Window = selector.String()

	s.logger.Debug("Classified waste",
		logging.Field{Key: logging.FieldScope, Value: report.Window},
		logging.Field{Key: logging.FieldCount, Value: report.Records})
	return report, nil
}

// Forecast projects every category over the full record set.
func (s *Session) Forecast() (models.ForecastReport, error) {
	return forecast.New(s.logger).Report(s.records)
}
