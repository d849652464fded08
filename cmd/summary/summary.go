// Package summary implements the summary command
package summary

import (
	"fjacquet/spendwise/cmd/common"
	"fjacquet/spendwise/cmd/root"

	"github.com/spf13/cobra"
)

var scopeFlags common.ScopeFlags

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary [FILE...]",
	Short: "Total spending and category breakdown for a year, month or week",
	Long: `Report the total spent, the spending per category with its share of the
total, and the trend across the periods of the selected window. Income,
Savings and Transfer rows are never counted as spending.

A missing --year or --month defaults to the latest period in the data.`,
	RunE: run,
}

func init() {
	common.AddScopeFlags(Cmd, &scopeFlags)
}

func run(cmd *cobra.Command, args []string) error {
	selector, err := scopeFlags.Selector()
	if err != nil {
		return err
	}

	s, err := common.OpenSession(cmd, args)
	if err != nil {
		return err
	}

	report, err := s.Summary(s.Resolve(selector))
	if err != nil {
		return err
	}

	data, err := root.AppContainer.GetReportGenerator().Summary(report, common.ReportFormat())
	if err != nil {
		return err
	}
	return common.WriteOutput(cmd, data)
}
