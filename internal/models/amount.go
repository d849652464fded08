package models

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// ParseAmount strips every character that is not a digit, '.' or '-' and
// parses the rest as a decimal. ok is false when nothing parsable remains, in
// which case the amount is zero.
func ParseAmount(raw string) (amount decimal.Decimal, ok bool) {
	cleaned := nonNumeric.ReplaceAllString(raw, "")
	if cleaned == "" {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// CleanAmount is ParseAmount without the ok flag.
//
//	"$1,234.56" -> 1234.56
//	"n/a"       -> 0
func CleanAmount(raw string) decimal.Decimal {
	amount, _ := ParseAmount(raw)
	return amount
}
