// Package ledgererror defines the error taxonomy of the analysis engine.
package ledgererror

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is checks.
var (
	ErrSchema              = errors.New("ledger schema invalid")
	ErrNoValidRecords      = errors.New("no valid records")
	ErrInsufficientHistory = errors.New("insufficient history")
	ErrInvalidSelector     = errors.New("invalid scope selector")
)

// SchemaError reports required columns missing from a ledger. It is fatal to
// normalization.
type SchemaError struct {
	Source  string
	Missing []string
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
	if e.Source != "" {
		return fmt.Sprintf("%s: %s", e.Source, msg)
	}
	return msg
}

func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

// NoValidRecordsError reports that every row was dropped during normalization
// because its date could not be parsed.
type NoValidRecordsError struct {
	Rows    int
	Dropped int
}

func (e *NoValidRecordsError) Error() string {
	return fmt.Sprintf("no valid records: %d of %d rows had unparsable dates", e.Dropped, e.Rows)
}

func (e *NoValidRecordsError) Unwrap() error {
	return ErrNoValidRecords
}

// InsufficientHistoryError reports that no series has observations in at
// least MinMonths distinct calendar months.
type InsufficientHistoryError struct {
	Series    string
	MinMonths int
}

func (e *InsufficientHistoryError) Error() string {
	if e.Series != "" {
		return fmt.Sprintf("need at least %d months of data to forecast %s", e.MinMonths, e.Series)
	}
	return fmt.Sprintf("need at least %d months of data for prediction", e.MinMonths)
}

func (e *InsufficientHistoryError) Unwrap() error {
	return ErrInsufficientHistory
}

// SelectorError reports a scope selector missing a required period or
// carrying one out of range.
type SelectorError struct {
	Field  string
	Reason string
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *SelectorError) Unwrap() error {
	return ErrInvalidSelector
}
