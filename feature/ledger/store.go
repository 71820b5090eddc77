package ledger

import (
	"context"
	"fmt"

	"finforge/feature/ledger/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// batchSize bounds the row count of a single INSERT statement.
const batchSize = 500

// Store persists ledger entities through GORM.
// Each batch write runs inside one transaction, so a failed write leaves no
// partial rows behind.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on top of an open database connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the ledger tables and their indexes. Idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&models.Customer{},
		&models.Account{},
		&models.Transaction{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate ledger schema: %w", err)
	}
	return nil
}

// CustomerIDs returns the set of customer identifiers currently stored.
// A missing table counts as empty existing state, not an error.
func (s *Store) CustomerIDs(ctx context.Context) (map[string]struct{}, error) {
	return s.idSet(ctx, &models.Customer{}, "customer_id")
}

// AccountIDs returns the set of account identifiers currently stored.
func (s *Store) AccountIDs(ctx context.Context) (map[string]struct{}, error) {
	return s.idSet(ctx, &models.Account{}, "account_id")
}

// TransactionIDs returns the set of transaction identifiers currently stored.
func (s *Store) TransactionIDs(ctx context.Context) (map[string]struct{}, error) {
	return s.idSet(ctx, &models.Transaction{}, "transaction_id")
}

func (s *Store) idSet(ctx context.Context, model any, column string) (map[string]struct{}, error) {
	ids := make(map[string]struct{})

	db := s.db.WithContext(ctx)
	if !db.Migrator().HasTable(model) {
		return ids, nil
	}

	var list []string
	if err := db.Model(model).Pluck(column, &list).Error; err != nil {
		return nil, fmt.Errorf("failed to load %s set: %w", column, err)
	}
	for _, id := range list {
		ids[id] = struct{}{}
	}
	return ids, nil
}

// AllCustomers loads every stored customer row.
func (s *Store) AllCustomers(ctx context.Context) ([]models.Customer, error) {
	var rows []models.Customer
	db := s.db.WithContext(ctx)
	if !db.Migrator().HasTable(&models.Customer{}) {
		return rows, nil
	}
	if err := db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	return rows, nil
}

// AllAccounts loads every stored account row.
func (s *Store) AllAccounts(ctx context.Context) ([]models.Account, error) {
	var rows []models.Account
	db := s.db.WithContext(ctx)
	if !db.Migrator().HasTable(&models.Account{}) {
		return rows, nil
	}
	if err := db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	return rows, nil
}

// AllTransactions loads every stored transaction row.
func (s *Store) AllTransactions(ctx context.Context) ([]models.Transaction, error) {
	var rows []models.Transaction
	db := s.db.WithContext(ctx)
	if !db.Migrator().HasTable(&models.Transaction{}) {
		return rows, nil
	}
	if err := db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return rows, nil
}

// Counts returns the per-table row counts.
func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, 3)
	db := s.db.WithContext(ctx)

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

// WriteCustomers persists a customer batch according to the load mode.
func (s *Store) WriteCustomers(ctx context.Context, mode models.LoadMode, batch []models.Customer) error {
	return writeBatch(s.db.WithContext(ctx), mode, &models.Customer{}, batch)
}

// WriteAccounts persists an account batch according to the load mode.
func (s *Store) WriteAccounts(ctx context.Context, mode models.LoadMode, batch []models.Account) error {
	return writeBatch(s.db.WithContext(ctx), mode, &models.Account{}, batch)
}

// WriteTransactions persists a transaction batch according to the load mode.
func (s *Store) WriteTransactions(ctx context.Context, mode models.LoadMode, batch []models.Transaction) error {
	return writeBatch(s.db.WithContext(ctx), mode, &models.Transaction{}, batch)
}

// writeBatch dispatches on the load mode:
//   - replace: delete all rows, then insert the batch
//   - insert: plain append; an ID collision surfaces as a constraint error
//   - merge: upsert by primary key
func writeBatch[T any](db *gorm.DB, mode models.LoadMode, model any, batch []T) error {
	return db.Transaction(func(tx *gorm.DB) error {
		switch mode {
		case models.ModeReplace:
			del := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model)
			if del.Error != nil {
				return fmt.Errorf("failed to clear table: %w", del.Error)
			}
			if len(batch) == 0 {
				return nil
			}
			if err := tx.CreateInBatches(batch, batchSize).Error; err != nil {
				return fmt.Errorf("failed to insert batch: %w", err)
			}
			return nil

		case models.ModeInsert:
			if len(batch) == 0 {
				return nil
			}
			if err := tx.CreateInBatches(batch, batchSize).Error; err != nil {
				return fmt.Errorf("failed to insert batch: %w", err)
			}
			return nil

		case models.ModeMerge:
			if len(batch) == 0 {
				return nil
			}
			err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
				CreateInBatches(batch, batchSize).Error
			if err != nil {
				return fmt.Errorf("failed to upsert batch: %w", err)
			}
			return nil

		default:
			return fmt.Errorf("unknown load mode: %v", mode)
		}
	})
}
