package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/erptools/erplog/internal/asclog"
	"github.com/erptools/erplog/internal/binlog"
	"github.com/erptools/erplog/internal/convert"
	"github.com/erptools/erplog/internal/validate"
	"github.com/erptools/erplog/pkg/color"
	"github.com/erptools/erplog/pkg/config"
	"github.com/erptools/erplog/pkg/logging"
	"github.com/erptools/erplog/pkg/model"
	"github.com/erptools/erplog/pkg/progress"
)

func fmtErr(format string, args ...any) {
	prefix := "erplog: "
	if color.Enabled() {
		prefix = color.Error("erplog:") + " "
	}
	fmt.Fprintf(os.Stderr, prefix+format+"\n", args...)
}

// loadConfig loads .erplog.yaml from the working directory, falling back
// to defaults, or exits on a broken config file.
func loadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		fmtErr("cannot get current directory: %v", err)
		os.Exit(1)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		fmtErr("load config: %v", err)
		os.Exit(1)
	}
	return cfg
}

// resolveLogLevel picks the global log level: an explicit --log-level
// flag wins, otherwise the config file's logging.level applies.
func resolveLogLevel() logging.Level {
	if rootCmd.PersistentFlags().Changed("log-level") {
		return logging.ParseLevel(logLevel)
	}
	if cwd, err := os.Getwd(); err == nil {
		if cfg, err := config.Load(cwd); err == nil {
			return logging.ParseLevel(cfg.Logging.Level)
		}
	}
	return logging.ParseLevel(logLevel)
}

// convertOptions builds the conversion options shared by tobin and toasc,
// with pipeline stages reported through the debug log.
func convertOptions(cfg *config.Config) convert.Options {
	return convert.Options{
		InputEncoding: cfg.ASCII.InputEncoding,
		ColumnWidth:   cfg.ASCII.ColumnWidth,
		Progress:      stageProgress(),
	}
}

func stageProgress() progress.Callback {
	return func(op string, current, total int, message string) {
		logging.Debug("conversion progress", map[string]any{
			"op": op, "stage": current, "stages": total, "detail": message,
		})
	}
}

// readLog loads either representation of a log file, sniffing the binary
// magic to decide which decoder applies.
func readLog(path string, cfg *config.Config) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if binlog.IsBinary(data) {
		return binlog.Decode(data)
	}
	return asclog.ReadEncoded(bytes.NewReader(data), cfg.ASCII.InputEncoding)
}

// reportError prints a conversion error; validation reports are expanded
// finding by finding so a hand-editor sees every problem at once.
func reportError(err error) {
	var rep *validate.Report
	if errors.As(err, &rep) {
		fmtErr("%d integrity violation(s) found:", len(rep.Findings))
		printFindings(rep.Findings)
		return
	}
	fmtErr("%v", err)
}

func printFindings(findings []validate.Finding) {
	for _, f := range findings {
		code := f.Code
		if color.Enabled() {
			code = color.Error(f.Code)
		}
		fmt.Fprintf(os.Stderr, "  %s  index %d: %s\n", code, f.Index, f.Description)
	}
}
