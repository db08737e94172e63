package cmd

import (
	"fmt"
	"os"

	"shortage-tracker/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "shortage-tracker",
	Short: "Missing Parts Tracker",
	Long: `Shortage Tracker keeps per-department lists of missing production parts.
It reconciles spreadsheet imports, reports parts missing in several
departments at once, and serves the data over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with "debug" level gives ISO8601 timestamps,
		// which reads better for a CLI tool than the prod epoch format.
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
