package seed

import (
	"context"
	"testing"
	"time"

	"finforge/feature/ledger/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeStore is an in-memory Store with the same mode semantics as the ledger.
type fakeStore struct {
	customers    []models.Customer
	accounts     []models.Account
	transactions []models.Transaction
	migrated     bool
}

func (f *fakeStore) Migrate(ctx context.Context) error {
	f.migrated = true
	return nil
}

func (f *fakeStore) CustomerIDs(ctx context.Context) (map[string]struct{}, error) {
	ids := make(map[string]struct{})
	for _, c := range f.customers {
		ids[c.CustomerID] = struct{}{}
	}
	return ids, nil
}

func (f *fakeStore) AccountIDs(ctx context.Context) (map[string]struct{}, error) {
	ids := make(map[string]struct{})
	for _, a := range f.accounts {
		ids[a.AccountID] = struct{}{}
	}
	return ids, nil
}

func (f *fakeStore) TransactionIDs(ctx context.Context) (map[string]struct{}, error) {
	ids := make(map[string]struct{})
	for _, t := range f.transactions {
		ids[t.TransactionID] = struct{}{}
	}
	return ids, nil
}

func (f *fakeStore) AllCustomers(ctx context.Context) ([]models.Customer, error) {
	return append([]models.Customer(nil), f.customers...), nil
}

func (f *fakeStore) AllAccounts(ctx context.Context) ([]models.Account, error) {
	return append([]models.Account(nil), f.accounts...), nil
}

func (f *fakeStore) AllTransactions(ctx context.Context) ([]models.Transaction, error) {
	return append([]models.Transaction(nil), f.transactions...), nil
}

func (f *fakeStore) WriteCustomers(ctx context.Context, mode models.LoadMode, batch []models.Customer) error {
	f.customers = mergeByKey(mode, f.customers, batch, func(c models.Customer) string { return c.CustomerID })
	return nil
}

func (f *fakeStore) WriteAccounts(ctx context.Context, mode models.LoadMode, batch []models.Account) error {
	f.accounts = mergeByKey(mode, f.accounts, batch, func(a models.Account) string { return a.AccountID })
	return nil
}

func (f *fakeStore) WriteTransactions(ctx context.Context, mode models.LoadMode, batch []models.Transaction) error {
	f.transactions = mergeByKey(mode, f.transactions, batch, func(t models.Transaction) string { return t.TransactionID })
	return nil
}

func (f *fakeStore) Counts(ctx context.Context) (map[string]int64, error) {
	return map[string]int64{
		"customers":    int64(len(f.customers)),
		"accounts":     int64(len(f.accounts)),
		"transactions": int64(len(f.transactions)),
	}, nil
}

func mergeByKey[T any](mode models.LoadMode, prior, batch []T, key func(T) string) []T {
	switch mode {
	case models.ModeReplace:
		return append([]T(nil), batch...)
	case models.ModeInsert:
		return append(prior, batch...)
	case models.ModeMerge:
		index := make(map[string]int, len(prior))
		out := append([]T(nil), prior...)
		for i, row := range out {
			index[key(row)] = i
		}
		for _, row := range batch {
			if i, ok := index[key(row)]; ok {
				out[i] = row
			} else {
				index[key(row)] = len(out)
				out = append(out, row)
			}
		}
		return out
	default:
		return prior
	}
}

func newTestService(store Store) *Service {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	domains := DefaultDomains(now)
	factory := NewFactory(gofakeit.New(7), domains)
	return NewService(store, factory, domains, nil, zap.NewNop())
}

func TestServiceRun_Replace(t *testing.T) {
	store := &fakeStore{
		// Prior rows must be discarded entirely.
		customers: []models.Customer{{CustomerID: "old-customer"}},
	}
	svc := newTestService(store)

	counts, err := svc.Run(context.Background(), Params{
		Customers:              3,
		AccountsPerCustomer:    2,
		TransactionsPerAccount: 5,
		Mode:                   models.ModeReplace,
	})
	require.NoError(t, err)

	assert.True(t, store.migrated)
	assert.Equal(t, int64(3), counts["customers"])
	assert.Equal(t, int64(6), counts["accounts"])
	assert.Equal(t, int64(30), counts["transactions"])

	for _, c := range store.customers {
		assert.NotEqual(t, "old-customer", c.CustomerID)
	}

	// Every account references a generated customer and respects its dates.
	byCustomer := make(map[string]models.Customer)
	for _, c := range store.customers {
		byCustomer[c.CustomerID] = c
	}
	for _, a := range store.accounts {
		owner, ok := byCustomer[a.CustomerID]
		require.True(t, ok, "account %s references unknown customer %s", a.AccountID, a.CustomerID)
		assert.False(t, a.CreatedDate.Before(owner.DateJoined))
	}

	// Every transaction references a generated account.
	byAccount := make(map[string]models.Account)
	for _, a := range store.accounts {
		byAccount[a.AccountID] = a
	}
	for _, txn := range store.transactions {
		_, ok := byAccount[txn.AccountID]
		require.True(t, ok, "transaction %s references unknown account %s", txn.TransactionID, txn.AccountID)
	}
}

func TestServiceRun_BalanceContinuity(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	_, err := svc.Run(context.Background(), Params{
		Customers:              2,
		AccountsPerCustomer:    1,
		TransactionsPerAccount: 40,
		Mode:                   models.ModeReplace,
	})
	require.NoError(t, err)

	byAccount := make(map[string]models.Account)
	for _, a := range store.accounts {
		byAccount[a.AccountID] = a
	}

	// Transactions keep per-account generation order, which is chronological.
	prevDate := make(map[string]time.Time)
	prevBalance := make(map[string]models.Transaction)

	for _, txn := range store.transactions {
		account := byAccount[txn.AccountID]

		if last, ok := prevDate[txn.AccountID]; ok {
			assert.False(t, txn.TransactionDate.Before(last),
				"transaction dates out of order for account %s", txn.AccountID)
		}
		prevDate[txn.AccountID] = txn.TransactionDate

		balance := account.Balance
		if last, ok := prevBalance[txn.AccountID]; ok {
			balance = last.BalanceAfter
		}

		switch txn.TransactionType {
		case models.TxnDeposit, models.TxnSalary, models.TxnBonus:
			assert.True(t, balance.Add(txn.Amount).Equal(txn.BalanceAfter),
				"credit does not add up for %s", txn.TransactionID)
		case models.TxnWithdrawal, models.TxnPayment, models.TxnFee:
			debited := balance.Sub(txn.Amount)
			rejected := txn.Amount.Equal(dec("0.01")) && txn.BalanceAfter.Equal(balance)
			assert.True(t, debited.Equal(txn.BalanceAfter) || rejected,
				"debit does not add up for %s", txn.TransactionID)
		default:
			assert.True(t, balance.Equal(txn.BalanceAfter),
				"transfer should not move balance for %s", txn.TransactionID)
		}
		prevBalance[txn.AccountID] = txn
	}
}

func TestServiceRun_InsertKeepsExistingAndAvoidsIDs(t *testing.T) {
	existing := models.Customer{CustomerID: "existing-1", Name: "Kept"}
	store := &fakeStore{customers: []models.Customer{existing}}
	svc := newTestService(store)

	counts, err := svc.Run(context.Background(), Params{
		Customers:              4,
		AccountsPerCustomer:    0,
		TransactionsPerAccount: 0,
		Mode:                   models.ModeInsert,
	})
	require.NoError(t, err)

	// Insert appends the full requested count on top of prior rows.
	assert.Equal(t, int64(5), counts["customers"])

	kept := 0
	for _, c := range store.customers {
		if c.CustomerID == "existing-1" {
			kept++
			assert.Equal(t, "Kept", c.Name)
		}
	}
	assert.Equal(t, 1, kept)
}

func TestServiceRun_MergeTopUp(t *testing.T) {
	joined := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	customer := models.Customer{CustomerID: "c1", DateJoined: joined}
	account := models.Account{AccountID: "a1", CustomerID: "c1", Balance: dec("500.00"), CreatedDate: joined}

	store := &fakeStore{
		customers: []models.Customer{customer},
		accounts:  []models.Account{account},
	}
	svc := newTestService(store)

	counts, err := svc.Run(context.Background(), Params{
		Customers:              1,
		AccountsPerCustomer:    3,
		TransactionsPerAccount: 0,
		Mode:                   models.ModeMerge,
	})
	require.NoError(t, err)

	// One customer already present: no new customers. One account out of
	// three: exactly two new ones, each dated on or after the join date.
	assert.Equal(t, int64(1), counts["customers"])
	assert.Equal(t, int64(3), counts["accounts"])

	for _, a := range store.accounts {
		assert.Equal(t, "c1", a.CustomerID)
		if a.AccountID != "a1" {
			assert.False(t, a.CreatedDate.Before(joined))
		}
	}
}

func TestServiceRun_MergeIsIdempotentOnTargets(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	params := Params{
		Customers:              5,
		AccountsPerCustomer:    2,
		TransactionsPerAccount: 10,
		Mode:                   models.ModeMerge,
	}

	first, err := svc.Run(context.Background(), params)
	require.NoError(t, err)

	second, err := svc.Run(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(5), second["customers"])
	assert.Equal(t, int64(10), second["accounts"])
	assert.Equal(t, int64(100), second["transactions"])
}
