package models

import "github.com/shopspring/decimal"

// ForecastResult is the trend forecast of one series.
type ForecastResult struct {
	Category           string          `json:"category" yaml:"category" csv:"Category"`
	NextPeriodForecast decimal.Decimal `json:"next_period_forecast" yaml:"next_period_forecast" csv:"NextPeriodForecast"`
	NextYearForecast   decimal.Decimal `json:"next_year_forecast" yaml:"next_year_forecast" csv:"NextYearForecast"`
	MeanSquaredError   float64         `json:"mean_squared_error" yaml:"mean_squared_error" csv:"MeanSquaredError"`
	Slope              float64         `json:"slope" yaml:"slope" csv:"Slope"`
	Intercept          float64         `json:"intercept" yaml:"intercept" csv:"Intercept"`
	Observations       int             `json:"observations" yaml:"observations" csv:"Observations"`
}

// ForecastReport gathers the per-category forecasts, their totals and the
// whole-portfolio headline.
type ForecastReport struct {
	NextSequence    int              `json:"next_sequence" yaml:"next_sequence"`
	Results         []ForecastResult `json:"results" yaml:"results"`
	TotalNextPeriod decimal.Decimal  `json:"total_next_period" yaml:"total_next_period"`
	TotalNextYear   decimal.Decimal  `json:"total_next_year" yaml:"total_next_year"`
	Portfolio       *ForecastResult  `json:"portfolio,omitempty" yaml:"portfolio,omitempty"`
}
