// Package normalizer turns raw ledger rows into canonical records.
package normalizer

import (
	"sort"

	"fjacquet/spendwise/internal/dateutils"
	"fjacquet/spendwise/internal/ledgererror"
	"fjacquet/spendwise/internal/logging"
	"fjacquet/spendwise/internal/models"
)

// Normalizer validates ledger schemas and builds records.
type Normalizer struct {
	logger logging.Logger
}

// New creates a Normalizer. A nil logger discards output.
func New(logger logging.Logger) *Normalizer {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Normalizer{logger: logger}
}

// Normalize runs a Normalizer without logging.
func Normalize(ledgers ...models.RawLedger) ([]models.Record, error) {
	return New(nil).Normalize(ledgers...)
}

// Normalize checks every ledger header before converting any row, so a
// SchemaError leaves nothing half processed. Rows with an unparsable date are
// dropped, unparsable amounts become zero. The result is sorted by date with
// equal dates keeping input order. If no row survives, the error is a
// NoValidRecordsError.
func (n *Normalizer) Normalize(ledgers ...models.RawLedger) ([]models.Record, error) {
	for _, ledger := range ledgers {
		if missing := ledger.MissingColumns(); len(missing) > 0 {
			err := &ledgererror.SchemaError{Source: ledger.Source, Missing: missing}
			n.logger.WithError(err).Error("Ledger is missing required columns",
				logging.Field{Key: logging.FieldFile, Value: ledger.Source})
			return nil, err
		}
	}

	var (
		records []models.Record
		total   models.NormalizationStats
	)
	for _, ledger := range ledgers {
		kept, stats := n.normalizeLedger(ledger)
		records = append(records, kept...)
		stats.LogSummary(n.logger, ledger.Source)

		total.Rows += stats.Rows
		total.Kept += stats.Kept
		total.DroppedDates += stats.DroppedDates
		total.ZeroedAmounts += stats.ZeroedAmounts
	}

	if len(records) == 0 {
		return nil, &ledgererror.NoValidRecordsError{Rows: total.Rows, Dropped: total.DroppedDates}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}

func (n *Normalizer) normalizeLedger(ledger models.RawLedger) ([]models.Record, models.NormalizationStats) {
	stats := models.NormalizationStats{Rows: len(ledger.Rows)}
	records := make([]models.Record, 0, len(ledger.Rows))

	for i, row := range ledger.Rows {
		// header is line 1
		line := i + 2

		date, err := dateutils.ParseDate(row.Date)
		if err != nil {
			stats.DroppedDates++
			n.logger.Debug("Dropping row with unparsable date",
				logging.Field{Key: logging.FieldFile, Value: ledger.Source},
				logging.Field{Key: logging.FieldRow, Value: line},
				logging.Field{Key: logging.FieldReason, Value: err.Error()})
			continue
		}

		amount, ok := models.ParseAmount(row.Amount)
		if !ok {
			stats.ZeroedAmounts++
			n.logger.Debug("Amount could not be parsed, using 0",
				logging.Field{Key: logging.FieldFile, Value: ledger.Source},
				logging.Field{Key: logging.FieldRow, Value: line})
		}

		records = append(records, models.NewRecord(date, row.Category, amount, row.Description))
		stats.Kept++
	}

	return records, stats
}
