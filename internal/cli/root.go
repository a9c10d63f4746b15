package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erptools/erplog/pkg/color"
	"github.com/erptools/erplog/pkg/logging"
)

var (
	jsonOutput bool
	noColor    bool
	logLevel   string

	rootCmd = &cobra.Command{
		Use:   "erplog",
		Short: "erplog - ERP event log converter",
		Long: `erplog converts the per-trial event log of an evoked-potential
averaging pipeline between its hand-editable ASCII form and the
fixed-layout binary form consumed by the averaging program. Every
conversion validates the invariants that keep the log aligned with the
raw-signal file: contiguous item indices and non-decreasing timestamps.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		color.Init(noColor)
		logging.SetGlobal(logging.NewLogger(resolveLogLevel()))
	}
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// outputJSON prints v as indented JSON to stdout.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
