// Command analytics-engine runs the ledger analytics engine: the
// Milestone Driver and Interval Driver against a configured ingestion,
// document-store and sink collaborator set.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ahratul/inx-chronicle/config"
	"github.com/ahratul/inx-chronicle/global"
)

var (
	cfgName  string
	logLevel string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "analytics-engine",
		Short: "Ledger analytics engine: per-milestone and per-interval measurements",
	}
	rootCmd.PersistentFlags().StringVar(&cfgName, "config", "", "config profile name (without .yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log_level from the config profile")

	initRunCmd(rootCmd)
	initReplayCmd(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, *zap.SugaredLogger) {
	cfg, err := config.ReadInConfig(cfgName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, global.NewLogger("analytics-engine", cfg.LogLevel)
}
