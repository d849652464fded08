// Package dateutils provides the calendar helpers used by the normalizer and
// the reporting windows.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date layouts understood by ParseDate.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutFull     = "2006-01-02 15:04:05"
	DateLayoutUS       = "1/2/2006"
	DateLayoutEuropean = "2.1.2006"
)

// CommonFormats is tried in order by ParseDate. Numeric slash and dash forms
// are read month first; dotted forms are read day first.
var CommonFormats = []string{
	DateLayoutISO,
	time.RFC3339,
	"2006-01-02T15:04:05",
	DateLayoutFull,
	"2006-01-02 15:04",
	"2006-1-2",
	"2006/1/2",
	DateLayoutUS,
	"1/2/06",
	"1-2-2006",
	DateLayoutEuropean,
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"2-Jan-2006",
	"Mon, 2 Jan 2006",
}

// MonthNames holds the English month names, January first.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var whitespace = regexp.MustCompile(`\s+`)

// ParseDate parses dateStr with the first matching layout of CommonFormats and
// returns the calendar date at midnight UTC.
func ParseDate(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("unable to parse date: empty value")
	}

	for _, layout := range CommonFormats {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString trims and collapses whitespace.
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ToISODate formats date as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// WeekOfMonth returns ((day-1) div 7) + 1, a value in 1..5. It is not an ISO
// week.
func WeekOfMonth(day int) int {
	return (day-1)/7 + 1
}

// MonthName returns the English name of month (1-12), or "" when out of
// range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return MonthNames[month-1]
}

// ParseMonth accepts a month number ("3", "03") or an English month name or
// its three letter abbreviation in any case ("March", "mar").
func ParseMonth(value string) (int, error) {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month out of range: %d", n)
		}
		return n, nil
	}

	for i, name := range MonthNames {
		if strings.EqualFold(value, name) || (len(value) == 3 && strings.EqualFold(value, name[:3])) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("unknown month: %q", value)
}

// CompareMonths orders (year, month) pairs chronologically, returning -1, 0
// or 1.
func CompareMonths(y1, m1, y2, m2 int) int {
	switch {
	case y1 < y2 || (y1 == y2 && m1 < m2):
		return -1
	case y1 == y2 && m1 == m2:
		return 0
	default:
		return 1
	}
}
