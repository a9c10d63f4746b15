package cli

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/erptools/erplog/internal/binlog"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show summary information about an event log",
	Long: `Show summary information about an event log in either
representation: record count, timestamp span, a census of condition
codes, and a content fingerprint (SHA-256 of the canonical binary
encoding, so the same records fingerprint identically regardless of
ASCII whitespace).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		doc, err := readLog(args[0], cfg)
		if err != nil {
			fmtErr("info: %v", err)
			os.Exit(1)
		}

		info := map[string]any{
			"file":    args[0],
			"records": len(doc.Records),
		}

		conditions := make(map[int64]int)
		for _, rec := range doc.Records {
			conditions[rec.CondCode]++
		}
		if n := len(doc.Records); n > 0 {
			info["first_timestamp"] = doc.Records[0].Timestamp
			info["last_timestamp"] = doc.Records[n-1].Timestamp
		}

		if data, err := binlog.Encode(doc); err == nil {
			sum := sha256.Sum256(data)
			info["fingerprint"] = hex.EncodeToString(sum[:])
		}

		if jsonOutput {
			condJSON := make(map[string]int, len(conditions))
			for code, count := range conditions {
				condJSON[fmt.Sprintf("%d", code)] = count
			}
			info["conditions"] = condJSON
			outputJSON(info)
			return
		}

		fmt.Printf("Log: %s\n", args[0])
		fmt.Printf("  Records: %d\n", len(doc.Records))
		if n := len(doc.Records); n > 0 {
			fmt.Printf("  Timestamps: %d .. %d ticks\n", doc.Records[0].Timestamp, doc.Records[n-1].Timestamp)
		}
		codes := make([]int64, 0, len(conditions))
		for code := range conditions {
			codes = append(codes, code)
		}
		sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
		for _, code := range codes {
			fmt.Printf("  Condition %d: %d record(s)\n", code, conditions[code])
		}
		if fp, ok := info["fingerprint"]; ok {
			fmt.Printf("  Fingerprint: %s\n", fp)
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
