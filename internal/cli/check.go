package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erptools/erplog/internal/validate"
	"github.com/erptools/erplog/pkg/color"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate an event log and report every integrity violation",
	Long: `Validate an event log in either representation (sniffed by magic).

Unlike parsing, which stops at the first malformed line, the integrity
checks collect every violation in one pass, so a hand-editor sees the
complete list of problems at once. Exits non-zero if any are found.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		doc, err := readLog(args[0], cfg)
		if err != nil {
			fmtErr("check: %v", err)
			os.Exit(1)
		}

		rep := validate.Check(doc)

		if jsonOutput {
			out := map[string]any{
				"file":    args[0],
				"records": len(doc.Records),
				"valid":   rep == nil,
			}
			if rep != nil {
				out["findings"] = rep.Findings
			}
			outputJSON(out)
			if rep != nil {
				os.Exit(1)
			}
			return
		}

		if rep == nil {
			status := "OK"
			if color.Enabled() {
				status = color.Success(status)
			}
			fmt.Printf("%s: %d records, %s\n", args[0], len(doc.Records), status)
			return
		}

		fmt.Printf("%s: %d records, %d violation(s)\n", args[0], len(doc.Records), len(rep.Findings))
		printFindings(rep.Findings)
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
