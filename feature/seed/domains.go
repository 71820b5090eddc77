package seed

import (
	"time"

	"finforge/feature/ledger/models"
)

// Default generation volumes, matching the historical dataset shape.
const (
	DefaultCustomers              = 1000
	DefaultAccountsPerCustomer    = 2
	DefaultTransactionsPerAccount = 50
)

// Domains bundles the value domains every generated field is drawn from.
type Domains struct {
	Currencies       []string
	AccountTypes     []models.AccountType
	CustomerTypes    []models.CustomerType
	TransactionTypes []models.TransactionType
	Categories       []string

	// Account balance range, in currency units.
	MinBalance float64
	MaxBalance float64

	// Transaction amount range, in currency units.
	MinAmount float64
	MaxAmount float64

	// Customer join dates are drawn from [JoinStart, JoinEnd].
	JoinStart time.Time
	JoinEnd   time.Time

	// Transaction dates are drawn from [TxnStart, TxnEnd], with the start
	// clamped per account to its creation date.
	TxnStart time.Time
	TxnEnd   time.Time
}

// DefaultDomains returns the standard value domains anchored at now:
// customers joined between three years and thirty days ago, transactions
// within the last year.
func DefaultDomains(now time.Time) Domains {
	return Domains{
		Currencies: []string{"USD", "EUR", "GBP", "CAD"},
		AccountTypes: []models.AccountType{
			models.AccountChecking, models.AccountSavings,
			models.AccountInvestment, models.AccountCredit,
		},
		CustomerTypes: []models.CustomerType{
			models.CustomerIndividual, models.CustomerBusiness, models.CustomerPremium,
		},
		TransactionTypes: []models.TransactionType{
			models.TxnDeposit, models.TxnWithdrawal, models.TxnTransfer,
			models.TxnPayment, models.TxnFee,
		},
		Categories: []string{
			"groceries", "restaurants", "gas", "shopping", "entertainment",
			"utilities", "rent", "insurance", "healthcare", "education",
			"travel", "investment", "salary", "bonus", "other",
		},
		MinBalance: 100.0,
		MaxBalance: 50000.0,
		MinAmount:  5.0,
		MaxAmount:  5000.0,
		JoinStart:  now.AddDate(-3, 0, 0),
		JoinEnd:    now.AddDate(0, 0, -30),
		TxnStart:   now.AddDate(-1, 0, 0),
		TxnEnd:     now,
	}
}

// TransactionWindow returns the date window for an account's transactions:
// the global window with the start clamped to the account's creation date.
func (d Domains) TransactionWindow(accountCreated time.Time) (start, end time.Time) {
	start = d.TxnStart
	if accountCreated.After(start) {
		start = accountCreated
	}
	return start, d.TxnEnd
}
