package models

import (
	"fjacquet/spendwise/internal/logging"
)

// NormalizationStats counts what happened to the rows of one normalization.
type NormalizationStats struct {
	Rows          int // rows read
	Kept          int // rows that became records
	DroppedDates  int // rows dropped for an unparsable date
	ZeroedAmounts int // rows whose amount could not be parsed and became 0
}

// LogSummary logs the counters at info level.
func (s NormalizationStats) LogSummary(logger logging.Logger, source string) {
	if logger == nil {
		return
	}

	logger.Info("Normalization summary",
		logging.Field{Key: logging.FieldFile, Value: source},
		logging.Field{Key: "rows", Value: s.Rows},
		logging.Field{Key: "kept", Value: s.Kept},
		logging.Field{Key: logging.FieldDropped, Value: s.DroppedDates},
		logging.Field{Key: "zeroed_amounts", Value: s.ZeroedAmounts},
		logging.Field{Key: "kept_rate", Value: s.KeptRate()},
	)
}

// KeptRate is the percentage of rows that survived normalization.
func (s NormalizationStats) KeptRate() float64 {
	if s.Rows == 0 {
		return 0.0
	}
	return float64(s.Kept) / float64(s.Rows) * 100.0
}
