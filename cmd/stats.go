package cmd

import (
	"context"
	"fmt"

	"finforge/core/config"
	"finforge/core/database"
	"finforge/core/logger"
	"finforge/feature/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	statsHistory    bool
	statsBreakdowns bool
)

// statsCmd prints record counts and optional load history for the store.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-table record counts",
	Long: `Show per-table record counts for the finance store.

Examples:
  # Counts only
  finforge stats

  # Counts plus load history grouped by insertion date
  finforge stats --history

  # Counts plus per-type and per-currency rollups
  finforge stats --breakdowns`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsHistory, "history", false, "Show load history by insertion date")
	statsCmd.Flags().BoolVar(&statsBreakdowns, "breakdowns", false, "Show per-type rollups")

	RootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	svc := report.NewService(db, l)

	stats, err := svc.Stats(ctx)
	if err != nil {
		return err
	}
	l.Info("Database statistics",
		zap.Int64("customers", stats["customers"]),
		zap.Int64("accounts", stats["accounts"]),
		zap.Int64("transactions", stats["transactions"]),
	)

	if statsHistory {
		history, err := svc.LoadHistory(ctx)
		if err != nil {
			return err
		}
		for table, buckets := range history {
			for _, b := range buckets {
				l.Info("Load history",
					zap.String("table", table),
					zap.String("load_date", b.LoadDate),
					zap.Int64("records", b.Count),
				)
			}
		}
	}

	if statsBreakdowns {
		breakdowns, err := svc.Breakdowns(ctx)
		if err != nil {
			return err
		}
		for key, counts := range breakdowns {
			for _, c := range counts {
				l.Info("Breakdown",
					zap.String("rollup", key),
					zap.String("value", c.Value),
					zap.Int64("records", c.Count),
				)
			}
		}
	}

	return nil
}
