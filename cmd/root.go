package cmd

import (
	"fmt"
	"os"

	"tvgu-data-hub/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "tvgu-data-hub",
	Short: "TvGU Data Hub",
	Long: `TvGU Data Hub reconciles the university structure, teacher roster and class
schedules into one cross-referenced dataset with synthetic ids.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// configDir is where LoadConfig looks for the .env file.
var configDir string

func init() {
	RootCmd.PersistentFlags().StringVarP(&configDir, "config-dir", "c", ".", "Directory containing the .env file")
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development preset gives readable timestamps on a terminal.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
