package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/erptools/erplog/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config <command>",
	Short: "Manage erplog configuration",
	Long: `Manage erplog configuration stored in ` + config.FileName + `
in the working directory.

Configuration options:
  logging.level         - log level (debug, info, warn, error)
  ascii.column_width    - left-justified field width for data lines
  ascii.input_encoding  - input text encoding (utf8, latin1)`,
	DisableFlagsInUseLine: true,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if jsonOutput {
			outputJSON(cfg)
			return
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmtErr("marshal config: %v", err)
			os.Exit(1)
		}
		fmt.Print(string(data))
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmtErr("cannot get current directory: %v", err)
			os.Exit(1)
		}
		if _, err := os.Stat(config.FileName); err == nil {
			fmtErr("%s already exists", config.FileName)
			os.Exit(1)
		}
		if err := config.Save(cwd, config.Default()); err != nil {
			fmtErr("write config: %v", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", config.FileName)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
