// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/spendwise/cmd/root"
	"fjacquet/spendwise/internal/dateutils"
	"fjacquet/spendwise/internal/logging"
	"fjacquet/spendwise/internal/models"
	"fjacquet/spendwise/internal/session"

	"github.com/spf13/cobra"
)

// ScopeFlags hold the window selection of the report commands.
type ScopeFlags struct {
	Scope string
	Year  int
	Month string
	Week  int
}

// AddScopeFlags registers --scope, --year, --month and --week on cmd.
func AddScopeFlags(cmd *cobra.Command, flags *ScopeFlags) {
	cmd.Flags().StringVarP(&flags.Scope, "scope", "s", string(models.ScopeMonthly), "Window scope: yearly, monthly or weekly")
	cmd.Flags().IntVarP(&flags.Year, "year", "y", 0, "Year (default latest in the data)")
	cmd.Flags().StringVarP(&flags.Month, "month", "m", "", "Month name or number (default latest in the year)")
	cmd.Flags().IntVarP(&flags.Week, "week", "w", 0, "Week of month 1-5 (default 1)")
}

// Selector converts the flags into a selector. Zero fields are left for
// session.Resolve to fill from the data.
func (f ScopeFlags) Selector() (models.ScopeSelector, error) {
	sc, err := models.ParseScope(f.Scope)
	if err != nil {
		return models.ScopeSelector{}, err
	}
	selector := models.ScopeSelector{Scope: sc, Year: f.Year, Week: f.Week}
	if strings.TrimSpace(f.Month) != "" {
		month, err := dateutils.ParseMonth(f.Month)
		if err != nil {
			return models.ScopeSelector{}, err
		}
		selector.Month = month
	}
	return selector, nil
}

// InputFiles merges --input values with positional arguments.
func InputFiles(args []string) ([]string, error) {
	paths := append(append([]string{}, root.SharedFlags.Inputs...), args...)
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files: use --input FILE or pass files as arguments")
	}
	return paths, nil
}

// OpenSession loads and normalizes the command's input files.
func OpenSession(cmd *cobra.Command, args []string) (*session.Session, error) {
	paths, err := InputFiles(args)
	if err != nil {
		return nil, err
	}
	c, err := root.GetContainer()
	if err != nil {
		return nil, err
	}
	return c.OpenSession(cmd.Context(), paths)
}

// ReportFormat returns the --format flag, or the configured default.
func ReportFormat() string {
	if c, err := root.GetContainer(); err == nil {
		return c.GetConfig().Report.Format
	}
	return root.SharedFlags.Format
}

// WriteOutput writes data to --output when set, otherwise to the command's
// standard output.
func WriteOutput(cmd *cobra.Command, data []byte) error {
	output := root.SharedFlags.Output
	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, data, models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	if c, err := root.GetContainer(); err == nil {
		c.GetLogger().Info("Report written",
			logging.Field{Key: logging.FieldOutput, Value: output},
			logging.Field{Key: logging.FieldCount, Value: len(data)})
	}
	return nil
}
