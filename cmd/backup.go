package cmd

import (
	"context"
	"fmt"

	"finforge/core/config"
	"finforge/core/database"
	"finforge/core/logger"
	"finforge/core/storage"
	"finforge/feature/backup"
	"finforge/feature/ledger"

	"github.com/spf13/cobra"
)

var (
	backupDir    string
	backupUpload bool
)

// backupCmd exports the store to JSON snapshot files.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export the store to JSON snapshot files",
	Long: `Export each table's full row set to indented JSON files.

Examples:
  # Snapshot into the default backup directory
  finforge backup

  # Snapshot elsewhere and mirror it to object storage
  finforge backup --dir /srv/backups --upload`,
	RunE: runBackup,
}

func init() {
	backupCmd.Flags().StringVar(&backupDir, "dir", "backup", "Directory for JSON snapshots")
	backupCmd.Flags().BoolVar(&backupUpload, "upload", false, "Also upload the snapshot to object storage")

	RootCmd.AddCommand(backupCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
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

	var client storage.Client
	if backupUpload {
		if !cfg.Storage.Enabled() {
			return fmt.Errorf("upload requested but no storage endpoint is configured")
		}
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	exporter := backup.NewExporter(ledger.NewStore(db), client, cfg.Storage.Bucket, l)

	if err := exporter.Export(ctx, backupDir); err != nil {
		return err
	}
	if backupUpload {
		if err := exporter.Upload(ctx); err != nil {
			return err
		}
	}

	l.Info("Backup complete")
	return nil
}
