package backup

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"finforge/core/storage/mocks"
	"finforge/feature/ledger/models"

	"github.com/minio/minio-go/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	customers    []models.Customer
	accounts     []models.Account
	transactions []models.Transaction
}

func (f *fakeSource) AllCustomers(ctx context.Context) ([]models.Customer, error) {
	return f.customers, nil
}

func (f *fakeSource) AllAccounts(ctx context.Context) ([]models.Account, error) {
	return f.accounts, nil
}

func (f *fakeSource) AllTransactions(ctx context.Context) ([]models.Transaction, error) {
	return f.transactions, nil
}

func sampleSource() *fakeSource {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return &fakeSource{
		customers: []models.Customer{
			{CustomerID: "c1", Name: "Ann", Email: "ann@example.com", DateJoined: now},
		},
		accounts: []models.Account{
			{AccountID: "a1", CustomerID: "c1", Balance: decimal.NewFromInt(100), Currency: "USD"},
		},
		transactions: []models.Transaction{
			{TransactionID: "t1", AccountID: "a1", Amount: decimal.NewFromInt(5), BalanceAfter: decimal.NewFromInt(95)},
		},
	}
}

func TestExporter_Export(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(sampleSource(), nil, "", zap.NewNop())

	err := exporter.Export(context.Background(), dir)
	require.NoError(t, err)

	for _, name := range []string{"customers.json", "accounts.json", "transactions.json"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, "missing snapshot %s", name)

		var rows []map[string]any
		require.NoError(t, json.Unmarshal(data, &rows))
		assert.Len(t, rows, 1)
	}

	var customers []models.Customer
	data, err := os.ReadFile(filepath.Join(dir, "customers.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &customers))
	assert.Equal(t, "c1", customers[0].CustomerID)
	assert.Equal(t, "ann@example.com", customers[0].Email)
}

func TestExporter_Upload(t *testing.T) {
	client := new(mocks.Client)
	exporter := NewExporter(sampleSource(), client, "finance-backups", zap.NewNop())

	client.On("BucketExists", mock.Anything, "finance-backups").Return(true, nil)
	client.On("PutObject", mock.Anything, "finance-backups", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Times(3)

	err := exporter.Upload(context.Background())
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestExporter_UploadCreatesBucket(t *testing.T) {
	client := new(mocks.Client)
	exporter := NewExporter(sampleSource(), client, "finance-backups", zap.NewNop())

	client.On("BucketExists", mock.Anything, "finance-backups").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "finance-backups", mock.Anything).Return(nil)
	client.On("PutObject", mock.Anything, "finance-backups", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Times(3)

	err := exporter.Upload(context.Background())
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestExporter_UploadWithoutClient(t *testing.T) {
	exporter := NewExporter(sampleSource(), nil, "", zap.NewNop())

	err := exporter.Upload(context.Background())
	assert.Error(t, err)
}
