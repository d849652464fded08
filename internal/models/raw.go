package models

import "strings"

// Column names of the ledger input.
const (
	ColumnDate        = "Date"
	ColumnCategory    = "Category"
	ColumnAmount      = "Amount"
	ColumnDescription = "Description"
)

// RequiredColumns must all be present in a ledger header.
var RequiredColumns = []string{ColumnDate, ColumnCategory, ColumnAmount}

// RawRow is one loosely typed input row, as read from a ledger file.
type RawRow struct {
	Date        string `csv:"Date"`
	Category    string `csv:"Category"`
	Amount      string `csv:"Amount"`
	Description string `csv:"Description"`
}

// RawLedger is the row set of one input source together with the columns its
// header declared.
type RawLedger struct {
	Source  string
	Columns []string
	Rows    []RawRow
}

// HasColumn reports whether the header declared name. Surrounding whitespace
// in header cells is ignored.
func (l RawLedger) HasColumn(name string) bool {
	for _, column := range l.Columns {
		if strings.TrimSpace(column) == name {
			return true
		}
	}
	return false
}

// MissingColumns lists the required columns the header lacks, in
// RequiredColumns order.
func (l RawLedger) MissingColumns() []string {
	var missing []string
	for _, column := range RequiredColumns {
		if !l.HasColumn(column) {
			missing = append(missing, column)
		}
	}
	return missing
}
