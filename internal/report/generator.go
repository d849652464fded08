// Package report renders analysis results as text, JSON, YAML or CSV.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/spendwise/internal/common"
	"fjacquet/spendwise/internal/logging"
	"fjacquet/spendwise/internal/models"

	"gopkg.in/yaml.v3"
)

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// Generator renders reports. The CSV format writes the report's main table
// only; the other formats carry every field.
type Generator struct {
	logger    logging.Logger
	delimiter rune
}

// NewGenerator creates a Generator whose CSV output uses delimiter.
func NewGenerator(logger logging.Logger, delimiter rune) *Generator {
	if logger == nil {
		logger = logging.NopLogger()
	}
	if delimiter == 0 {
		delimiter = common.DefaultDelimiter
	}
	return &Generator{logger: logger, delimiter: delimiter}
}

// Summary renders a summary report.
func (g *Generator) Summary(report models.SummaryReport, format string) ([]byte, error) {
	return g.render(report, format, func() []byte { return renderSummaryText(report) },
		func() interface{} { return categoryRows(report.Categories) })
}

// Waste renders a waste report.
func (g *Generator) Waste(report models.WasteReport, format string) ([]byte, error) {
	return g.render(report, format, func() []byte { return renderWasteText(report) },
		func() interface{} { return categoryRows(report.Categories) })
}

// Forecast renders a forecast report.
func (g *Generator) Forecast(report models.ForecastReport, format string) ([]byte, error) {
	return g.render(report, format, func() []byte { return renderForecastText(report) },
		func() interface{} { return forecastRows(report) })
}

// Periods renders the available years and the default selection.
func (g *Generator) Periods(report models.PeriodsReport, format string) ([]byte, error) {
	return g.render(report, format, func() []byte { return renderPeriodsText(report) },
		func() interface{} { return periodRows(report) })
}

func (g *Generator) render(report interface{}, format string, text func() []byte, rows func() interface{}) ([]byte, error) {
	var (
		out []byte
		err error
	)

	switch strings.ToLower(format) {
	case FormatText, "":
		out = text()
	case FormatJSON:
		out, err = json.MarshalIndent(report, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case FormatYAML:
		out, err = yaml.Marshal(report)
	case FormatCSV:
		var buf bytes.Buffer
		err = common.WriteCSV(&buf, rows(), g.delimiter)
		out = buf.Bytes()
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}

	if err != nil {
		g.logger.WithError(err).Error("Failed to render report",
			logging.Field{Key: logging.FieldFormat, Value: format})
		return nil, fmt.Errorf("failed to render %s report: %w", format, err)
	}
	return out, nil
}
