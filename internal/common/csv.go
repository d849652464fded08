// Package common provides the ledger CSV reader and writer shared by the
// commands.
package common

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/spendwise/internal/logging"
	"fjacquet/spendwise/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter is used when no delimiter is configured.
const DefaultDelimiter = ','

const utf8BOM = "\ufeff"

// headerReader hands rows to gocsv while keeping a trimmed copy of the
// header row, so the declared columns survive unmarshalling.
type headerReader struct {
	*csv.Reader
	header []string
}

func (h *headerReader) ReadAll() ([][]string, error) {
	rows, err := h.Reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		for i, cell := range rows[0] {
			rows[0][i] = strings.TrimSpace(strings.TrimPrefix(cell, utf8BOM))
		}
		h.header = append([]string(nil), rows[0]...)
	}
	return rows, nil
}

func newCSVReader(r io.Reader, delimiter rune) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	return reader
}

// ReadLedger reads the rows of one ledger from r. Columns holds the header
// as written; unknown columns are ignored and missing ones are left for the
// normalizer to report. An empty input yields a ledger with no columns.
func ReadLedger(r io.Reader, source string, delimiter rune, logger logging.Logger) (models.RawLedger, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	reader := &headerReader{Reader: newCSVReader(r, delimiter)}
	ledger := models.RawLedger{Source: source}

	var rows []models.RawRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			logger.Warn("Ledger is empty", logging.Field{Key: logging.FieldFile, Value: source})
			return ledger, nil
		}
		return ledger, fmt.Errorf("error parsing ledger %s: %w", source, err)
	}

	ledger.Columns = reader.header
	ledger.Rows = rows

	logger.Debug("Read ledger",
		logging.Field{Key: logging.FieldFile, Value: source},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(delimiter)})
	return ledger, nil
}

// ReadLedgerFile opens filePath and reads it with ReadLedger.
func ReadLedgerFile(filePath string, delimiter rune, logger logging.Logger) (models.RawLedger, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}

	file, err := os.Open(filePath) // #nosec G304 -- path comes from the command line
	if err != nil {
		return models.RawLedger{Source: filePath}, fmt.Errorf("error opening ledger file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: filePath})
		}
	}()

	return ReadLedger(file, filePath, delimiter, logger)
}

// WriteCSV marshals a slice of csv-tagged structs to w, header first.
func WriteCSV(w io.Writer, rows interface{}, delimiter rune) error {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteRecordsCSV writes records in canonical form, derived fields included.
func WriteRecordsCSV(w io.Writer, records []models.Record, delimiter rune) error {
	rows := make([]models.CanonicalRow, len(records))
	for i, record := range records {
		rows[i] = record.ToCanonicalRow()
	}
	return WriteCSV(w, rows, delimiter)
}

// WriteRecordsToFile writes records to csvFile, creating its directory when
// needed.
func WriteRecordsToFile(records []models.Record, csvFile string, delimiter rune, logger logging.Logger) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}
	if logger == nil {
		logger = logging.NopLogger()
	}

	if err := os.MkdirAll(filepath.Dir(csvFile), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- path comes from the command line
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: csvFile})
		}
	}()

	if err := WriteRecordsCSV(file, records, delimiter); err != nil {
		return err
	}

	logger.Info("Wrote records to CSV file",
		logging.Field{Key: logging.FieldOutput, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return nil
}
