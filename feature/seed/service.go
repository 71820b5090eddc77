package seed

import (
	"context"
	"fmt"
	"time"

	"finforge/feature/ledger/models"

	"go.uber.org/zap"
)

// Store is the persistence surface the pipeline needs from the ledger.
type Store interface {
	Migrate(ctx context.Context) error

	CustomerIDs(ctx context.Context) (map[string]struct{}, error)
	AccountIDs(ctx context.Context) (map[string]struct{}, error)
	TransactionIDs(ctx context.Context) (map[string]struct{}, error)

	AllCustomers(ctx context.Context) ([]models.Customer, error)
	AllAccounts(ctx context.Context) ([]models.Account, error)
	AllTransactions(ctx context.Context) ([]models.Transaction, error)

	WriteCustomers(ctx context.Context, mode models.LoadMode, batch []models.Customer) error
	WriteAccounts(ctx context.Context, mode models.LoadMode, batch []models.Account) error
	WriteTransactions(ctx context.Context, mode models.LoadMode, batch []models.Transaction) error

	Counts(ctx context.Context) (map[string]int64, error)
}

// Snapshotter exports the finished store to serialized backup files.
type Snapshotter interface {
	Export(ctx context.Context, dir string) error
}

// Params controls one generation run.
type Params struct {
	Customers              int
	AccountsPerCustomer    int
	TransactionsPerAccount int
	Mode                   models.LoadMode

	// BackupDir, when non-empty, triggers a JSON snapshot after the write.
	BackupDir string
}

// Service orchestrates one generation run end to end.
type Service struct {
	store       Store
	factory     *Factory
	domains     Domains
	snapshotter Snapshotter
	logger      *zap.Logger
}

// NewService wires the pipeline. The snapshotter may be nil when backups are
// disabled.
func NewService(store Store, factory *Factory, domains Domains, snapshotter Snapshotter, logger *zap.Logger) *Service {
	return &Service{
		store:       store,
		factory:     factory,
		domains:     domains,
		snapshotter: snapshotter,
		logger:      logger,
	}
}

// Run executes the full pipeline: schema, preload, customers, accounts,
// transactions, persist, optional backup. Returns per-table row counts.
func (s *Service) Run(ctx context.Context, p Params) (map[string]int64, error) {
	s.logger.Info("Starting finance data generation",
		zap.String("mode", p.Mode.String()),
		zap.Int("customers", p.Customers),
		zap.Int("accounts_per_customer", p.AccountsPerCustomer),
		zap.Int("transactions_per_account", p.TransactionsPerAccount),
	)

	if err := s.store.Migrate(ctx); err != nil {
		return nil, err
	}

	rec := Reconciler{Mode: p.Mode}

	custIDs, acctIDs, txnIDs, err := s.loadExistingIDs(ctx, p.Mode)
	if err != nil {
		return nil, err
	}

	customers, err := s.generateCustomers(ctx, rec, custIDs, p.Customers)
	if err != nil {
		return nil, err
	}

	accounts, err := s.generateAccounts(ctx, rec, acctIDs, customers, p.AccountsPerCustomer)
	if err != nil {
		return nil, err
	}

	transactions, err := s.generateTransactions(ctx, rec, txnIDs, accounts, p.TransactionsPerAccount)
	if err != nil {
		return nil, err
	}

	if err := s.store.WriteCustomers(ctx, p.Mode, customers); err != nil {
		return nil, fmt.Errorf("failed to write customers: %w", err)
	}
	if err := s.store.WriteAccounts(ctx, p.Mode, accounts); err != nil {
		return nil, fmt.Errorf("failed to write accounts: %w", err)
	}
	if err := s.store.WriteTransactions(ctx, p.Mode, transactions); err != nil {
		return nil, fmt.Errorf("failed to write transactions: %w", err)
	}

	if p.BackupDir != "" && s.snapshotter != nil {
		if err := s.snapshotter.Export(ctx, p.BackupDir); err != nil {
			return nil, fmt.Errorf("failed to export backup: %w", err)
		}
	}

	counts, err := s.store.Counts(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Generation completed",
		zap.String("mode", p.Mode.String()),
		zap.Int64("customers", counts["customers"]),
		zap.Int64("accounts", counts["accounts"]),
		zap.Int64("transactions", counts["transactions"]),
	)
	return counts, nil
}

// loadExistingIDs preloads the identifier exclusion sets under insert and
// merge modes. Replace starts from scratch, so it skips the read entirely.
func (s *Service) loadExistingIDs(ctx context.Context, mode models.LoadMode) (cust, acct, txn map[string]struct{}, err error) {
	cust = make(map[string]struct{})
	acct = make(map[string]struct{})
	txn = make(map[string]struct{})

	if mode == models.ModeReplace {
		return cust, acct, txn, nil
	}

	if cust, err = s.store.CustomerIDs(ctx); err != nil {
		return nil, nil, nil, err
	}
	if acct, err = s.store.AccountIDs(ctx); err != nil {
		return nil, nil, nil, err
	}
	if txn, err = s.store.TransactionIDs(ctx); err != nil {
		return nil, nil, nil, err
	}

	s.logger.Info("Loaded existing identifiers",
		zap.Int("customers", len(cust)),
		zap.Int("accounts", len(acct)),
		zap.Int("transactions", len(txn)),
	)
	return cust, acct, txn, nil
}

func (s *Service) generateCustomers(ctx context.Context, rec Reconciler, ids map[string]struct{}, target int) ([]models.Customer, error) {
	var customers []models.Customer

	if rec.KeepExisting() {
		existing, err := s.store.AllCustomers(ctx)
		if err != nil {
			return nil, err
		}
		customers = existing
	}

	alloc := NewAllocator(ids)
	need := rec.NewCount(len(customers), target)
	insertedAt := time.Now()

	for i := 0; i < need; i++ {
		customers = append(customers, s.factory.Customer(alloc.Allocate(), insertedAt))
	}

	s.logger.Info("Generated customers", zap.Int("total", len(customers)), zap.Int("new", need))
	return customers, nil
}

func (s *Service) generateAccounts(ctx context.Context, rec Reconciler, ids map[string]struct{}, customers []models.Customer, perCustomer int) ([]models.Account, error) {
	var accounts []models.Account

	if rec.KeepExisting() {
		existing, err := s.store.AllAccounts(ctx)
		if err != nil {
			return nil, err
		}
		accounts = existing
	}

	// Existing counts must come from the already-loaded rows before any
	// top-up batch is generated.
	perOwner := AccountsPerCustomer(accounts)

	alloc := NewAllocator(ids)
	now := time.Now()
	insertedAt := now
	newCount := 0

	for _, c := range customers {
		need := rec.NewCount(perOwner[c.CustomerID], perCustomer)
		for i := 0; i < need; i++ {
			accounts = append(accounts, s.factory.Account(alloc.Allocate(), c, now, insertedAt))
		}
		newCount += need
	}

	s.logger.Info("Generated accounts", zap.Int("total", len(accounts)), zap.Int("new", newCount))
	return accounts, nil
}

func (s *Service) generateTransactions(ctx context.Context, rec Reconciler, ids map[string]struct{}, accounts []models.Account, perAccount int) ([]models.Transaction, error) {
	var transactions []models.Transaction

	if rec.KeepExisting() {
		existing, err := s.store.AllTransactions(ctx)
		if err != nil {
			return nil, err
		}
		transactions = existing
	}

	perOwner := TransactionsPerAccount(transactions)

	alloc := NewAllocator(ids)
	insertedAt := time.Now()
	newCount := 0

	for _, a := range accounts {
		need := rec.NewCount(perOwner[a.AccountID], perAccount)
		if need == 0 {
			continue
		}

		start, end := s.domains.TransactionWindow(a.CreatedDate)
		dates := s.factory.TransactionDates(need, start, end)

		balance := a.Balance
		for _, date := range dates {
			t := s.factory.TransactionType()
			amount := s.factory.Amount()
			balance, amount = ApplyBalance(balance, t, amount)

			transactions = append(transactions,
				s.factory.Transaction(alloc.Allocate(), a, date, t, amount, balance, insertedAt))
		}
		newCount += need
	}

	s.logger.Info("Generated transactions", zap.Int("total", len(transactions)), zap.Int("new", newCount))
	return transactions, nil
}
