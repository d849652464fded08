// Package normalize implements the normalize command
package normalize

import (
	"bytes"

	"fjacquet/spendwise/cmd/common"
	"fjacquet/spendwise/cmd/root"
	csvio "fjacquet/spendwise/internal/common"

	"github.com/spf13/cobra"
)

// Cmd represents the normalize command
var Cmd = &cobra.Command{
	Use:   "normalize [FILE...]",
	Short: "Write the canonical records of the input ledgers as CSV",
	Long: `Merge the input ledgers, drop rows with unparsable dates, clean amounts and
write the sorted canonical records with their derived Year, Month, Day and
WeekOfMonth columns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := common.OpenSession(cmd, args)
		if err != nil {
			return err
		}

		c := root.AppContainer
		delimiter := c.GetConfig().Delimiter()
		if root.SharedFlags.Output != "" {
			return csvio.WriteRecordsToFile(s.Records(), root.SharedFlags.Output, delimiter, c.GetLogger())
		}

		var buf bytes.Buffer
		if err := csvio.WriteRecordsCSV(&buf, s.Records(), delimiter); err != nil {
			return err
		}
		return common.WriteOutput(cmd, buf.Bytes())
	},
}
