package seed

import "finforge/feature/ledger/models"

// Reconciler decides, per load mode, how existing rows influence the size of
// the generated batch and whether they are carried into it.
type Reconciler struct {
	Mode models.LoadMode
}

// KeepExisting reports whether already-stored rows are loaded and kept
// verbatim in the generated batch. Only merge mode preserves prior rows; the
// upsert write then rewrites them with identical data.
func (r Reconciler) KeepExisting() bool {
	return r.Mode == models.ModeMerge
}

// NewCount returns how many new entities to generate for one scope.
//
// Replace and insert ignore existing rows for counting and always generate
// the full target. Merge tops the scope up to the target: the scope is the
// whole table for customers, one customer for accounts, and one account for
// transactions.
func (r Reconciler) NewCount(existing, target int) int {
	switch r.Mode {
	case models.ModeReplace, models.ModeInsert:
		return target
	case models.ModeMerge:
		if n := target - existing; n > 0 {
			return n
		}
		return 0
	default:
		return 0
	}
}

// AccountsPerCustomer counts already-loaded accounts by owning customer.
func AccountsPerCustomer(accounts []models.Account) map[string]int {
	counts := make(map[string]int)
	for _, a := range accounts {
		counts[a.CustomerID]++
	}
	return counts
}

// TransactionsPerAccount counts already-loaded transactions by owning account.
func TransactionsPerAccount(transactions []models.Transaction) map[string]int {
	counts := make(map[string]int)
	for _, t := range transactions {
		counts[t.AccountID]++
	}
	return counts
}
