package seed

import (
	"testing"

	"finforge/feature/ledger/models"

	"github.com/stretchr/testify/assert"
)

func TestReconciler_NewCount(t *testing.T) {
	tests := []struct {
		name     string
		mode     models.LoadMode
		existing int
		target   int
		want     int
	}{
		{"replace ignores existing", models.ModeReplace, 5, 10, 10},
		{"replace with zero target", models.ModeReplace, 5, 0, 0},
		{"insert ignores existing", models.ModeInsert, 100, 10, 10},
		{"merge tops up", models.ModeMerge, 1, 3, 2},
		{"merge already at target", models.ModeMerge, 3, 3, 0},
		{"merge above target generates nothing", models.ModeMerge, 7, 3, 0},
		{"merge from empty", models.ModeMerge, 0, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reconciler{Mode: tt.mode}
			assert.Equal(t, tt.want, r.NewCount(tt.existing, tt.target))
		})
	}
}

func TestReconciler_KeepExisting(t *testing.T) {
	assert.False(t, Reconciler{Mode: models.ModeReplace}.KeepExisting())
	assert.False(t, Reconciler{Mode: models.ModeInsert}.KeepExisting())
	assert.True(t, Reconciler{Mode: models.ModeMerge}.KeepExisting())
}

func TestAccountsPerCustomer(t *testing.T) {
	accounts := []models.Account{
		{AccountID: "a1", CustomerID: "c1"},
		{AccountID: "a2", CustomerID: "c1"},
		{AccountID: "a3", CustomerID: "c2"},
	}

	counts := AccountsPerCustomer(accounts)
	assert.Equal(t, map[string]int{"c1": 2, "c2": 1}, counts)
}

func TestTransactionsPerAccount(t *testing.T) {
	transactions := []models.Transaction{
		{TransactionID: "t1", AccountID: "a1"},
		{TransactionID: "t2", AccountID: "a1"},
		{TransactionID: "t3", AccountID: "a1"},
		{TransactionID: "t4", AccountID: "a2"},
	}

	counts := TransactionsPerAccount(transactions)
	assert.Equal(t, map[string]int{"a1": 3, "a2": 1}, counts)
}
