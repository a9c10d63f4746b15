package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erptools/erplog/internal/convert"
	"github.com/erptools/erplog/pkg/fsutil"
	"github.com/erptools/erplog/pkg/logging"
)

var toascCmd = &cobra.Command{
	Use:   "toasc <in.log> <out.asc>",
	Short: "Convert a binary event log to the hand-editable ASCII form",
	Long: `Convert a binary event log to its ASCII rendering, one data line
per record with flags in octal. The decoded records are integrity-checked
before any text is produced, and the output file is written atomically.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		data, err := os.ReadFile(args[0])
		if err != nil {
			fmtErr("read input: %v", err)
			os.Exit(1)
		}

		text, err := convert.BinaryToAscii(data, convertOptions(cfg))
		if err != nil {
			reportError(err)
			os.Exit(1)
		}

		if err := fsutil.AtomicWrite(args[1], []byte(text), 0644); err != nil {
			fmtErr("write output: %v", err)
			os.Exit(1)
		}

		logging.Info("converted binary log to ascii", map[string]any{
			"input": args[0], "output": args[1], "bytes": len(text),
		})
		if jsonOutput {
			outputJSON(map[string]any{"output": args[1], "bytes": len(text)})
			return
		}
		fmt.Printf("wrote %s (%d bytes)\n", args[1], len(text))
	},
}

func init() {
	rootCmd.AddCommand(toascCmd)
}
