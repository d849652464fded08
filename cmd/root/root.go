// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/spendwise/internal/config"
	"fjacquet/spendwise/internal/container"
	"fjacquet/spendwise/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Inputs     []string
	Output     string
	Format     string
	Delimiter  string
	LogLevel   string
	LogFormat  string
	Vocabulary string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppContainer is built once per invocation by PersistentPreRunE.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "spendwise",
		Short: "Analyze personal spending ledgers: summaries, waste and forecasts.",
		Long: `spendwise reads spending ledgers (CSV with Date, Category, Amount and an
optional Description) and reports where the money goes: totals per category
for a year, month or week, discretionary "waste" spending and a linear
forecast of next month's and next year's spending per category.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: setup,
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringSliceVarP(&SharedFlags.Inputs, "input", "i", nil, "Ledger file (repeatable)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Report format: text, json, yaml or csv")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Delimiter, "delimiter", "", "CSV delimiter for input and CSV output")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text or json)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Vocabulary, "vocabulary", "", "Waste vocabulary YAML file")
}

// setup loads configuration, applies flag overrides and builds AppContainer.
func setup(cmd *cobra.Command, args []string) error {
	config.LoadEnv(logging.NewLogrusAdapterFromLogger(Log))

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	Log = config.ConfigureLoggingFromConfig(cfg)
	Log.SetOutput(cmd.ErrOrStderr())

	AppContainer, err = container.NewContainer(cfg, logging.NewLogrusAdapterFromLogger(Log))
	return err
}

// applyFlags overrides cfg with the persistent flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Report.Format = SharedFlags.Format
	}
	if flags.Changed("delimiter") {
		cfg.CSV.Delimiter = SharedFlags.Delimiter
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = SharedFlags.LogFormat
	}
	if flags.Changed("vocabulary") {
		cfg.Waste.VocabularyFile = SharedFlags.Vocabulary
	}
}

// GetContainer returns the container built for the running command.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application container not initialized")
	}
	return AppContainer, nil
}
