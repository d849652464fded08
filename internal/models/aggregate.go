package models

import "github.com/shopspring/decimal"

// CategoryAggregate is the spend of one category within a record set.
// Share is the fraction of the set's total.
type CategoryAggregate struct {
	Category string          `json:"category" yaml:"category" csv:"Category"`
	Total    decimal.Decimal `json:"total" yaml:"total" csv:"Total"`
	Share    float64         `json:"share" yaml:"share" csv:"Share"`
}

// PeriodAggregate is the spend of one period bucket (a month, a week of the
// month or a calendar day). Ordinal orders buckets chronologically.
type PeriodAggregate struct {
	Key     string          `json:"key" yaml:"key" csv:"Key"`
	Label   string          `json:"label" yaml:"label" csv:"Label"`
	Ordinal int             `json:"ordinal" yaml:"ordinal" csv:"Ordinal"`
	Total   decimal.Decimal `json:"total" yaml:"total" csv:"Total"`
}

// SummaryReport is the spending overview of one scope window.
type SummaryReport struct {
	Selector   ScopeSelector       `json:"selector" yaml:"selector"`
	Window     string              `json:"window" yaml:"window"`
	Records    int                 `json:"records" yaml:"records"`
	Total      decimal.Decimal     `json:"total" yaml:"total"`
	Categories []CategoryAggregate `json:"categories" yaml:"categories"`
	Periods    []PeriodAggregate   `json:"periods" yaml:"periods"`
}

// WasteReport ranks the discretionary spend of one scope window. Shares are
// fractions of the waste total.
type WasteReport struct {
	Selector   ScopeSelector       `json:"selector" yaml:"selector"`
	Window     string              `json:"window" yaml:"window"`
	Records    int                 `json:"records" yaml:"records"`
	Total      decimal.Decimal     `json:"total" yaml:"total"`
	Categories []CategoryAggregate `json:"categories" yaml:"categories"`
}

// PeriodsReport lists the years present in a record set and the default
// window a report opens on.
type PeriodsReport struct {
	Years   []int         `json:"years" yaml:"years"`
	Default ScopeSelector `json:"default" yaml:"default"`
}
