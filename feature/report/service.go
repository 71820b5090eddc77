package report

import (
	"context"
	"fmt"

	"finforge/feature/ledger/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Sanity bounds for stored values. Wider than the generation ranges on
// purpose: the floor clamp can push balances negative and merge loads may
// carry older data.
const (
	minReasonableBalance = -10000.0
	maxReasonableBalance = 100000.0
	minReasonableAmount  = 0.0
	maxReasonableAmount  = 10000.0
)

// LoadBucket is one load batch, grouped by insertion date.
type LoadBucket struct {
	LoadDate string `json:"load_date"`
	Count    int64  `json:"count"`
}

// ValueCount is a per-value rollup within one column.
type ValueCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// QualityReport aggregates the data quality checks over the finished store.
type QualityReport struct {
	Counts map[string]int64 `json:"counts"`

	CustomersWithoutEmail   int64 `json:"customers_without_email"`
	AccountsWithoutBalance  int64 `json:"accounts_without_balance"`
	DuplicateEmails         int64 `json:"duplicate_emails"`
	DuplicateAccountNumbers int64 `json:"duplicate_account_numbers"`

	// Referential integrity: child rows whose parent is missing.
	OrphanedAccounts     int64 `json:"orphaned_accounts"`
	OrphanedTransactions int64 `json:"orphaned_transactions"`

	BalanceRangeOK bool `json:"balance_range_ok"`
	AmountRangeOK  bool `json:"amount_range_ok"`
}

// Passed reports whether every check came back clean.
func (r *QualityReport) Passed() bool {
	return r.CustomersWithoutEmail == 0 &&
		r.AccountsWithoutBalance == 0 &&
		r.DuplicateEmails == 0 &&
		r.DuplicateAccountNumbers == 0 &&
		r.OrphanedAccounts == 0 &&
		r.OrphanedTransactions == 0 &&
		r.BalanceRangeOK &&
		r.AmountRangeOK
}

// Service answers read-only reporting queries over the store. It never feeds
// back into generation.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a reporting service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Stats returns per-table row counts.
func (s *Service) Stats(ctx context.Context) (map[string]int64, error) {
	db := s.db.WithContext(ctx)
	counts := make(map[string]int64, 3)

	for _, t := range []struct {
		name  string
		model any
	}{
		{"customers", &models.Customer{}},
		{"accounts", &models.Account{}},
		{"transactions", &models.Transaction{}},
	} {
		var n int64
		if err := db.Model(t.model).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", t.name, err)
		}
		counts[t.name] = n
	}
	return counts, nil
}

// LoadHistory groups each table's rows by the date of their insertion
// timestamp, newest first, exposing how the store was loaded over time.
func (s *Service) LoadHistory(ctx context.Context) (map[string][]LoadBucket, error) {
	db := s.db.WithContext(ctx)
	history := make(map[string][]LoadBucket, 3)

	for _, table := range []string{"customers", "accounts", "transactions"} {
		var buckets []LoadBucket
		query := fmt.Sprintf(`
			SELECT DATE(timestamp_insert) AS load_date, COUNT(*) AS count
			FROM %s
			GROUP BY DATE(timestamp_insert)
			ORDER BY load_date DESC`, table)
		if err := db.Raw(query).Scan(&buckets).Error; err != nil {
			return nil, fmt.Errorf("failed to load history for %s: %w", table, err)
		}
		history[table] = buckets
	}
	return history, nil
}

// Breakdowns returns per-type rollups for each table.
func (s *Service) Breakdowns(ctx context.Context) (map[string][]ValueCount, error) {
	db := s.db.WithContext(ctx)
	out := make(map[string][]ValueCount)

	for _, q := range []struct {
		key    string
		table  string
		column string
	}{
		{"customers_by_type", "customers", "customer_type"},
		{"accounts_by_type", "accounts", "account_type"},
		{"accounts_by_currency", "accounts", "currency"},
		{"transactions_by_type", "transactions", "transaction_type"},
		{"transactions_by_category", "transactions", "category"},
	} {
		var counts []ValueCount
		query := fmt.Sprintf(`
			SELECT %s AS value, COUNT(*) AS count
			FROM %s
			GROUP BY %s
			ORDER BY count DESC`, q.column, q.table, q.column)
		if err := db.Raw(query).Scan(&counts).Error; err != nil {
			return nil, fmt.Errorf("failed to roll up %s: %w", q.key, err)
		}
		out[q.key] = counts
	}
	return out, nil
}

// Quality runs the full data quality report: counts, null and duplicate
// checks, referential integrity, and value-range sanity checks.
func (s *Service) Quality(ctx context.Context) (*QualityReport, error) {
	db := s.db.WithContext(ctx)

	counts, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	report := &QualityReport{Counts: counts}

	scalars := []struct {
		dst   *int64
		query string
	}{
		{&report.CustomersWithoutEmail,
			`SELECT COUNT(*) FROM customers WHERE email IS NULL OR email = ''`},
		{&report.AccountsWithoutBalance,
			`SELECT COUNT(*) FROM accounts WHERE balance IS NULL`},
		{&report.DuplicateEmails,
			`SELECT COUNT(*) - COUNT(DISTINCT email) FROM customers`},
		{&report.DuplicateAccountNumbers,
			`SELECT COUNT(*) - COUNT(DISTINCT account_number) FROM accounts`},
		{&report.OrphanedAccounts, `
			SELECT COUNT(*) FROM accounts a
			LEFT JOIN customers c ON a.customer_id = c.customer_id
			WHERE c.customer_id IS NULL`},
		{&report.OrphanedTransactions, `
			SELECT COUNT(*) FROM transactions t
			LEFT JOIN accounts a ON t.account_id = a.account_id
			WHERE a.account_id IS NULL`},
	}
	for _, q := range scalars {
		if err := db.Raw(q.query).Scan(q.dst).Error; err != nil {
			return nil, fmt.Errorf("quality query failed: %w", err)
		}
	}

	report.BalanceRangeOK, err = s.rangeOK(ctx, "accounts", "balance", minReasonableBalance, maxReasonableBalance)
	if err != nil {
		return nil, err
	}
	report.AmountRangeOK, err = s.rangeOK(ctx, "transactions", "amount", minReasonableAmount, maxReasonableAmount)
	if err != nil {
		return nil, err
	}

	return report, nil
}

// rangeOK checks that every value of a column falls inside [min, max].
// An empty table passes.
func (s *Service) rangeOK(ctx context.Context, table, column string, min, max float64) (bool, error) {
	var out struct {
		N int64
	}
	query := fmt.Sprintf(`SELECT COUNT(*) AS n FROM %s WHERE %s < ? OR %s > ?`, table, column, column)
	if err := s.db.WithContext(ctx).Raw(query, min, max).Scan(&out).Error; err != nil {
		return false, fmt.Errorf("range check on %s.%s failed: %w", table, column, err)
	}
	return out.N == 0, nil
}
