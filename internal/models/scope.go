package models

import (
	"fmt"
	"strings"

	"fjacquet/spendwise/internal/dateutils"
	"fjacquet/spendwise/internal/ledgererror"
)

// Scope is the reporting granularity.
type Scope string

const (
	ScopeYearly  Scope = "yearly"
	ScopeMonthly Scope = "monthly"
	ScopeWeekly  Scope = "weekly"
)

// ParseScope parses a scope name, case-insensitively.
func ParseScope(value string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(value))) {
	case ScopeYearly:
		return ScopeYearly, nil
	case ScopeMonthly:
		return ScopeMonthly, nil
	case ScopeWeekly:
		return ScopeWeekly, nil
	}
	return "", &ledgererror.SelectorError{
		Field:  "scope",
		Reason: fmt.Sprintf("%q is not one of yearly, monthly, weekly", value),
	}
}

// ScopeSelector selects one reporting window. Month is 1-12 and Week 1-5;
// zero means unset.
type ScopeSelector struct {
	Scope Scope `json:"scope" yaml:"scope"`
	Year  int   `json:"year" yaml:"year"`
	Month int   `json:"month,omitempty" yaml:"month,omitempty"`
	Week  int   `json:"week,omitempty" yaml:"week,omitempty"`
}

// Validate checks that the periods required by the scope are present and in
// range. A week that merely has no data is valid.
func (s ScopeSelector) Validate() error {
	if _, err := ParseScope(string(s.Scope)); err != nil {
		return err
	}
	if s.Scope == ScopeYearly {
		return nil
	}

	if s.Month == 0 {
		return &ledgererror.SelectorError{Field: "month", Reason: fmt.Sprintf("required for %s scope", s.Scope)}
	}
	if s.Month < 1 || s.Month > 12 {
		return &ledgererror.SelectorError{Field: "month", Reason: fmt.Sprintf("%d is not between 1 and 12", s.Month)}
	}
	if s.Scope != ScopeWeekly {
		return nil
	}

	if s.Week == 0 {
		return &ledgererror.SelectorError{Field: "week", Reason: "required for weekly scope"}
	}
	if s.Week < 1 || s.Week > 5 {
		return &ledgererror.SelectorError{Field: "week", Reason: fmt.Sprintf("%d is not between 1 and 5", s.Week)}
	}
	return nil
}

// String describes the window, e.g. "March 2024, week 2".
func (s ScopeSelector) String() string {
	switch s.Scope {
	case ScopeMonthly:
		return fmt.Sprintf("%s %d", dateutils.MonthName(s.Month), s.Year)
	case ScopeWeekly:
		return fmt.Sprintf("%s %d, week %d", dateutils.MonthName(s.Month), s.Year, s.Week)
	default:
		return fmt.Sprintf("%d", s.Year)
	}
}
