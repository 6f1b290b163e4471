// Package cmd provides the financectl commands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/pos_finance_manager/internal/platform/bootstrap"
	"github.com/SscSPs/pos_finance_manager/internal/platform/config"
	"github.com/spf13/cobra"
)

var (
	debug    bool
	operator string
)

var rootCmd = &cobra.Command{
	Use:   "financectl",
	Short: "Operate the POS finance ledger",
	Long: `financectl runs maintenance tasks against the finance database
using the same configuration as the API server.

Example:
  financectl reconcile
  financectl repost 0b6f3c1e-9a55-4d8e-8f57-2a3a8d5f1c11`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&operator, "user", "financectl", "user id recorded on writes")

	rootCmd.AddCommand(reconcileCmd)
	rootCmd.AddCommand(repostCmd)
}

// openApp wires the services without touching the schema.
func openApp(ctx context.Context) (*bootstrap.App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return bootstrap.New(ctx, cfg, slog.Default(), false)
}
