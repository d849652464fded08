// Package periods implements the periods command
package periods

import (
	"fjacquet/spendwise/cmd/common"
	"fjacquet/spendwise/cmd/root"
	"fjacquet/spendwise/internal/models"

	"github.com/spf13/cobra"
)

var scopeName string

// Cmd represents the periods command
var Cmd = &cobra.Command{
	Use:   "periods [FILE...]",
	Short: "List the years in the data and the default selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := models.ParseScope(scopeName)
		if err != nil {
			return err
		}

		s, err := common.OpenSession(cmd, args)
		if err != nil {
			return err
		}

		data, err := root.AppContainer.GetReportGenerator().Periods(s.Periods(sc), common.ReportFormat())
		if err != nil {
			return err
		}
		return common.WriteOutput(cmd, data)
	},
}

func init() {
	Cmd.Flags().StringVarP(&scopeName, "scope", "s", string(models.ScopeMonthly), "Scope of the default selection")
}
