// Package waste implements the waste command
package waste

import (
	"fjacquet/spendwise/cmd/common"
	"fjacquet/spendwise/cmd/root"

	"github.com/spf13/cobra"
)

var scopeFlags common.ScopeFlags

// Cmd represents the waste command
var Cmd = &cobra.Command{
	Use:   "waste [FILE...]",
	Short: "Discretionary spending in a year, month or week",
	Long: `Report the spending that matches the waste vocabulary, either by category
name or by a keyword found in the description, grouped by category.

The vocabulary comes from --vocabulary, waste.vocabulary_file or a waste.yaml
found in the working directory, config/ or ~/.spendwise, and falls back to
the built-in list. waste.terms adds terms on top of it.`,
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

	vocabulary, err := root.AppContainer.Vocabulary()
	if err != nil {
		return err
	}

	report, err := s.Waste(s.Resolve(selector), vocabulary)
	if err != nil {
		return err
	}

	data, err := root.AppContainer.GetReportGenerator().Waste(report, common.ReportFormat())
	if err != nil {
		return err
	}
	return common.WriteOutput(cmd, data)
}
