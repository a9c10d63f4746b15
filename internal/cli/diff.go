package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erptools/erplog/internal/asclog"
	"github.com/erptools/erplog/internal/diff"
)

var diffCmd = &cobra.Command{
	Use:   "diff <from> <to>",
	Short: "Compare two event logs record by record",
	Long: `Compare two event logs record by record. Either argument may be
the ASCII or the binary representation; records are matched by position.
Comment lines are ignored. Exits non-zero when the logs differ.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		from, err := readLog(args[0], cfg)
		if err != nil {
			fmtErr("diff: %s: %v", args[0], err)
			os.Exit(1)
		}
		to, err := readLog(args[1], cfg)
		if err != nil {
			fmtErr("diff: %s: %v", args[1], err)
			os.Exit(1)
		}

		res := diff.Compare(from, to)

		if jsonOutput {
			outputJSON(res)
			if !res.Identical {
				os.Exit(1)
			}
			return
		}

		if res.Identical {
			fmt.Printf("logs are identical (%d records)\n", res.TotalFrom)
			return
		}

		fmt.Printf("%d change(s) between %s (%d records) and %s (%d records)\n",
			len(res.Changes), args[0], res.TotalFrom, args[1], res.TotalTo)
		for _, ch := range res.Changes {
			switch ch.Type {
			case diff.ChangeModified:
				fmt.Printf("  ~ %d: %s -> %s\n", ch.Index, asclog.FormatRecord(*ch.From), asclog.FormatRecord(*ch.To))
			case diff.ChangeAdded:
				fmt.Printf("  + %d: %s\n", ch.Index, asclog.FormatRecord(*ch.To))
			case diff.ChangeRemoved:
				fmt.Printf("  - %d: %s\n", ch.Index, asclog.FormatRecord(*ch.From))
			}
		}
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
