package cmd

import (
	"context"
	"fmt"
	"time"

	"finforge/core/config"
	"finforge/core/database"
	"finforge/core/logger"
	"finforge/core/storage"
	"finforge/feature/backup"
	"finforge/feature/ledger"
	"finforge/feature/ledger/models"
	"finforge/feature/seed"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	genCustomers    int
	genAccountsPer  int
	genTxnsPer      int
	genMode         string
	genBackup       bool
	genBackupDir    string
	genUploadBackup bool
)

// generateCmd runs the full generation pipeline.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate synthetic finance data into the store",
	Long: `Generate synthetic customers, accounts, and transactions.

The load mode controls how the generated batch meets existing rows:

  replace  discard all prior rows, write the new batch (default)
  insert   append new rows, never touching prior ones
  merge    keep prior rows and top each customer/account up to the targets

Examples:
  # Fresh dataset with the default volumes (1000 x 2 x 50)
  finforge generate

  # Add 100 more customers without touching existing data
  finforge generate --customers 100 --mode insert

  # Top every customer up to 3 accounts, every account up to 80 transactions
  finforge generate --accounts-per-customer 3 --transactions-per-account 80 --mode merge

  # Generate and export a JSON snapshot
  finforge generate --backup`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&genCustomers, "customers", seed.DefaultCustomers, "Number of customers to generate")
	generateCmd.Flags().IntVar(&genAccountsPer, "accounts-per-customer", seed.DefaultAccountsPerCustomer, "Accounts per customer")
	generateCmd.Flags().IntVar(&genTxnsPer, "transactions-per-account", seed.DefaultTransactionsPerAccount, "Transactions per account")
	generateCmd.Flags().StringVar(&genMode, "mode", "replace", "Loading mode: replace, insert or merge")
	generateCmd.Flags().BoolVar(&genBackup, "backup", false, "Export a JSON snapshot after loading")
	generateCmd.Flags().StringVar(&genBackupDir, "backup-dir", "backup", "Directory for JSON snapshots")
	generateCmd.Flags().BoolVar(&genUploadBackup, "upload", false, "Also upload the snapshot to object storage")

	RootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	mode, err := models.ParseLoadMode(genMode)
	if err != nil {
		return err
	}

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

	store := ledger.NewStore(db)

	// The exporter doubles as the pipeline's snapshotter and, on request,
	// uploads the same snapshot to object storage.
	var client storage.Client
	if genBackup && genUploadBackup && cfg.Storage.Enabled() {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}
	exporter := backup.NewExporter(store, client, cfg.Storage.Bucket, l)

	now := time.Now()
	domains := seed.DefaultDomains(now)
	factory := seed.NewFactory(gofakeit.New(0), domains)

	svc := seed.NewService(store, factory, domains, exporter, l)

	params := seed.Params{
		Customers:              genCustomers,
		AccountsPerCustomer:    genAccountsPer,
		TransactionsPerAccount: genTxnsPer,
		Mode:                   mode,
	}
	if genBackup {
		params.BackupDir = genBackupDir
	}

	counts, err := svc.Run(ctx, params)
	if err != nil {
		return err
	}

	if genBackup && genUploadBackup && client != nil {
		if err := exporter.Upload(ctx); err != nil {
			return fmt.Errorf("failed to upload backup: %w", err)
		}
	}

	printGenerationSummary(l, mode, counts)
	return nil
}

// printGenerationSummary logs the final per-table record counts.
func printGenerationSummary(l *zap.Logger, mode models.LoadMode, counts map[string]int64) {
	l.Info("Finance data generation complete",
		zap.String("mode", mode.String()),
		zap.Int64("customers", counts["customers"]),
		zap.Int64("accounts", counts["accounts"]),
		zap.Int64("transactions", counts["transactions"]),
	)

	switch mode {
	case models.ModeReplace:
		l.Info("All existing data was replaced with new data")
	case models.ModeInsert:
		l.Info("New data was added alongside existing data")
	case models.ModeMerge:
		l.Info("Existing data kept, new records added as needed")
	}
}
