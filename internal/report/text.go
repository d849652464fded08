package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"fjacquet/spendwise/internal/models"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

const noData = "No data for this period."

func newTable(buf *bytes.Buffer) *tabwriter.Writer {
	return tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
}

func header(w *tabwriter.Writer, columns ...string) {
	styled := make([]string, len(columns))
	rules := make([]string, len(columns))
	for i, c := range columns {
		styled[i] = headerStyle.Render(c)
		rules[i] = strings.Repeat("-", len(c))
	}
	fmt.Fprintln(w, strings.Join(styled, "\t"))
	fmt.Fprintln(w, strings.Join(rules, "\t"))
}

func percent(share float64) string {
	return strconv.FormatFloat(share*100, 'f', 1, 64) + "%"
}

func writeCategories(buf *bytes.Buffer, aggregates []models.CategoryAggregate) {
	w := newTable(buf)
	header(w, "Category", "Total", "Share")
	for _, a := range aggregates {
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.Category, a.Total.StringFixed(2), percent(a.Share))
	}
	_ = w.Flush()
}

func renderSummaryText(report models.SummaryReport) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, titleStyle.Render("Spending summary: "+report.Window))
	fmt.Fprintf(&buf, "Total spent: %s (%d records)\n\n", report.Total.StringFixed(2), report.Records)

	if report.Records == 0 {
		fmt.Fprintln(&buf, mutedStyle.Render(noData))
		return buf.Bytes()
	}

	writeCategories(&buf, report.Categories)

	fmt.Fprintln(&buf)
	w := newTable(&buf)
	header(w, "Period", "Total")
	for _, p := range report.Periods {
		fmt.Fprintf(w, "%s\t%s\n", p.Label, p.Total.StringFixed(2))
	}
	_ = w.Flush()
	return buf.Bytes()
}

func renderWasteText(report models.WasteReport) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, titleStyle.Render("Waste breakdown: "+report.Window))
	fmt.Fprintf(&buf, "Total waste: %s (%d records)\n\n", report.Total.StringFixed(2), report.Records)

	if report.Records == 0 {
		fmt.Fprintln(&buf, mutedStyle.Render(noData))
		return buf.Bytes()
	}

	writeCategories(&buf, report.Categories)
	return buf.Bytes()
}

func renderForecastText(report models.ForecastReport) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, titleStyle.Render("Spending forecast"))

	if report.Portfolio != nil {
		fmt.Fprintf(&buf, "Next month: %s  Next year: %s\n",
			report.Portfolio.NextPeriodForecast.StringFixed(2), report.Portfolio.NextYearForecast.StringFixed(2))
	}
	fmt.Fprintln(&buf)

	w := newTable(&buf)
	header(w, "Category", "Next month", "Next year", "MSE", "Months")
	for _, r := range report.Results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", r.Category,
			r.NextPeriodForecast.StringFixed(2), r.NextYearForecast.StringFixed(2),
			strconv.FormatFloat(r.MeanSquaredError, 'f', 2, 64), r.Observations)
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t\t\n", headerStyle.Render("TOTAL"),
		report.TotalNextPeriod.StringFixed(2), report.TotalNextYear.StringFixed(2))
	_ = w.Flush()

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, mutedStyle.Render(
		fmt.Sprintf("Linear trend over months 1..%d of the history, projected to month %d.",
			report.NextSequence-1, report.NextSequence)))
	return buf.Bytes()
}

func renderPeriodsText(report models.PeriodsReport) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, titleStyle.Render("Available periods"))

	years := make([]string, len(report.Years))
	for i, y := range report.Years {
		years[i] = strconv.Itoa(y)
	}
	fmt.Fprintf(&buf, "Years: %s\n", strings.Join(years, ", "))
	fmt.Fprintf(&buf, "Default: %s (%s)\n", report.Default.String(), report.Default.Scope)
	return buf.Bytes()
}
