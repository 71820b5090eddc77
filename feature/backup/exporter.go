package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"finforge/core/storage"
	"finforge/feature/ledger/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Source is the read surface the exporter needs from the ledger store.
type Source interface {
	AllCustomers(ctx context.Context) ([]models.Customer, error)
	AllAccounts(ctx context.Context) ([]models.Account, error)
	AllTransactions(ctx context.Context) ([]models.Transaction, error)
}

// Exporter writes full-table JSON snapshots, optionally mirroring them to
// object storage. One-way and best-effort: no schema versioning, no restore
// path.
type Exporter struct {
	source Source
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewExporter creates an exporter. The storage client may be nil; snapshots
// then stay on the local filesystem.
func NewExporter(source Source, client storage.Client, bucket string, logger *zap.Logger) *Exporter {
	return &Exporter{source: source, client: client, bucket: bucket, logger: logger}
}

// Export writes customers.json, accounts.json, and transactions.json into dir.
func (e *Exporter) Export(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	snapshots, err := e.snapshots(ctx)
	if err != nil {
		return err
	}

	for name, data := range snapshots {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		e.logger.Info("Backed up table to JSON", zap.String("file", path))
	}
	return nil
}

// Upload pushes the same snapshots to object storage under a timestamped
// prefix, creating the bucket on first use.
func (e *Exporter) Upload(ctx context.Context) error {
	if e.client == nil {
		return fmt.Errorf("object storage is not configured")
	}

	exists, err := e.client.BucketExists(ctx, e.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := e.client.MakeBucket(ctx, e.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	snapshots, err := e.snapshots(ctx)
	if err != nil {
		return err
	}

	prefix := "backups/" + time.Now().Format("20060102T150405")
	for name, data := range snapshots {
		object := prefix + "/" + name
		_, err := e.client.PutObject(ctx, e.bucket, object,
			bytes.NewReader(data), int64(len(data)),
			minio.PutObjectOptions{ContentType: "application/json"})
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", object, err)
		}
		e.logger.Info("Uploaded snapshot", zap.String("object", object))
	}
	return nil
}

// snapshots serializes each table's full row set.
func (e *Exporter) snapshots(ctx context.Context) (map[string][]byte, error) {
	customers, err := e.source.AllCustomers(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := e.source.AllAccounts(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := e.source.AllTransactions(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]byte, 3)
	for name, rows := range map[string]any{
		"customers.json":    customers,
		"accounts.json":     accounts,
		"transactions.json": transactions,
	} {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", name, err)
		}
		out[name] = data
	}
	return out, nil
}
