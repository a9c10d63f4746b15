package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erptools/erplog/internal/convert"
	"github.com/erptools/erplog/pkg/fsutil"
	"github.com/erptools/erplog/pkg/logging"
)

var tobinCmd = &cobra.Command{
	Use:   "tobin <in.asc> <out.log>",
	Short: "Convert an ASCII event log to the binary form",
	Long: `Convert an ASCII event log to the binary form consumed by the
averaging program.

The input is parsed line by line (comment lines pass through untouched
and are dropped from the binary form), integrity-checked, and encoded.
Any malformed line or integrity violation aborts the conversion; the
output file is written atomically and never left half-converted.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		in, err := os.Open(args[0])
		if err != nil {
			fmtErr("open input: %v", err)
			os.Exit(1)
		}
		defer in.Close()

		data, err := convert.AsciiToBinary(in, convertOptions(cfg))
		if err != nil {
			reportError(err)
			os.Exit(1)
		}

		if err := fsutil.AtomicWrite(args[1], data, 0644); err != nil {
			fmtErr("write output: %v", err)
			os.Exit(1)
		}

		logging.Info("converted ascii log to binary", map[string]any{
			"input": args[0], "output": args[1], "bytes": len(data),
		})
		if jsonOutput {
			outputJSON(map[string]any{"output": args[1], "bytes": len(data)})
			return
		}
		fmt.Printf("wrote %s (%d bytes)\n", args[1], len(data))
	},
}

func init() {
	rootCmd.AddCommand(tobinCmd)
}
