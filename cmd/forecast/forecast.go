// Package forecast implements the forecast command
package forecast

import (
	"fjacquet/spendwise/cmd/common"
	"fjacquet/spendwise/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the forecast command
var Cmd = &cobra.Command{
	Use:   "forecast [FILE...]",
	Short: "Forecast next month's and next year's spending per category",
	Long: `Fit a straight line through each category's monthly spending and project
it to the next month and to the twelve months after it. A category needs at
least two months of history. The whole-portfolio forecast is reported as a
headline next to the per-category totals.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := common.OpenSession(cmd, args)
		if err != nil {
			return err
		}

		report, err := s.Forecast()
		if err != nil {
			return err
		}

		data, err := root.AppContainer.GetReportGenerator().Forecast(report, common.ReportFormat())
		if err != nil {
			return err
		}
		return common.WriteOutput(cmd, data)
	},
}
