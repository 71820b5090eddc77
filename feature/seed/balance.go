package seed

import (
	"finforge/feature/ledger/models"

	"github.com/shopspring/decimal"
)

// balanceFloor is the lowest balance a debit may leave behind,
// currency-unit-agnostic.
var balanceFloor = decimal.NewFromInt(-1000)

// breachFee replaces the amount of a debit rejected by the floor.
var breachFee = decimal.New(1, -2) // 0.01

var creditTypes = map[models.TransactionType]struct{}{
	models.TxnDeposit: {},
	models.TxnSalary:  {},
	models.TxnBonus:   {},
}

var debitTypes = map[models.TransactionType]struct{}{
	models.TxnWithdrawal: {},
	models.TxnPayment:    {},
	models.TxnFee:        {},
}

func isCredit(t models.TransactionType) bool {
	_, ok := creditTypes[t]
	return ok
}

func isDebit(t models.TransactionType) bool {
	_, ok := debitTypes[t]
	return ok
}

// ApplyBalance applies a transaction to a running balance and returns the
// new balance together with the possibly adjusted amount.
//
// Credits add, debits subtract. A debit that would push the balance below
// the floor is rejected: the balance stays put and the emitted amount becomes
// a minimal fee of 0.01 instead of the original debit. Transfers have no
// defined balance effect and leave the balance unchanged.
func ApplyBalance(balance decimal.Decimal, t models.TransactionType, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	switch {
	case isCredit(t):
		return balance.Add(amount), amount
	case isDebit(t):
		next := balance.Sub(amount)
		if next.LessThan(balanceFloor) {
			return balance, breachFee
		}
		return next, amount
	default:
		return balance, amount
	}
}
