package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerType classifies a customer.
type CustomerType string

const (
	CustomerIndividual CustomerType = "individual"
	CustomerBusiness   CustomerType = "business"
	CustomerPremium    CustomerType = "premium"
)

// AccountType classifies an account.
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountInvestment AccountType = "investment"
	AccountCredit     AccountType = "credit"
)

// TransactionType classifies a transaction.
//
// The generator draws from the five declared types. Salary and bonus never
// come out of the draw but are recognized as credits by the balance engine,
// so rows loaded from elsewhere keep a consistent running balance.
type TransactionType string

const (
	TxnDeposit    TransactionType = "deposit"
	TxnWithdrawal TransactionType = "withdrawal"
	TxnTransfer   TransactionType = "transfer"
	TxnPayment    TransactionType = "payment"
	TxnFee        TransactionType = "fee"
	TxnSalary     TransactionType = "salary"
	TxnBonus      TransactionType = "bonus"
)

// Customer is a synthetic bank customer.
type Customer struct {
	CustomerID      string       `gorm:"column:customer_id;primaryKey" json:"customer_id"`
	Name            string       `gorm:"column:name;not null" json:"name"`
	Email           string       `gorm:"column:email;uniqueIndex" json:"email"`
	Phone           string       `gorm:"column:phone" json:"phone"`
	Address         string       `gorm:"column:address" json:"address"`
	DateJoined      time.Time    `gorm:"column:date_joined;type:date" json:"date_joined"`
	CustomerType    CustomerType `gorm:"column:customer_type" json:"customer_type"`
	TimestampInsert time.Time    `gorm:"column:timestamp_insert" json:"timestamp_insert"`
}

// TableName overrides the GORM table name.
func (Customer) TableName() string { return "customers" }

// Account is a synthetic bank account owned by a customer.
// CreatedDate always falls within [owner.DateJoined, now].
type Account struct {
	AccountID       string          `gorm:"column:account_id;primaryKey" json:"account_id"`
	CustomerID      string          `gorm:"column:customer_id;index:idx_accounts_customer_id" json:"customer_id"`
	AccountNumber   string          `gorm:"column:account_number;uniqueIndex" json:"account_number"`
	AccountType     AccountType     `gorm:"column:account_type" json:"account_type"`
	IBAN            string          `gorm:"column:iban" json:"iban"`
	Balance         decimal.Decimal `gorm:"column:balance;type:decimal(15,2)" json:"balance"`
	Currency        string          `gorm:"column:currency" json:"currency"`
	CreatedDate     time.Time       `gorm:"column:created_date;type:date" json:"created_date"`
	TimestampInsert time.Time       `gorm:"column:timestamp_insert" json:"timestamp_insert"`
}

// TableName overrides the GORM table name.
func (Account) TableName() string { return "accounts" }

// Transaction is a synthetic movement on an account.
//
// BalanceAfter snapshots the running balance immediately after applying the
// transaction; per account and ordered by TransactionDate these snapshots
// form a running sum starting from the account's initial balance.
type Transaction struct {
	TransactionID   string          `gorm:"column:transaction_id;primaryKey" json:"transaction_id"`
	AccountID       string          `gorm:"column:account_id;index:idx_transactions_account_id" json:"account_id"`
	TransactionDate time.Time       `gorm:"column:transaction_date;index:idx_transactions_date" json:"transaction_date"`
	TransactionType TransactionType `gorm:"column:transaction_type" json:"transaction_type"`
	Amount          decimal.Decimal `gorm:"column:amount;type:decimal(15,2)" json:"amount"`
	Currency        string          `gorm:"column:currency" json:"currency"`
	Description     string          `gorm:"column:description" json:"description"`
	Merchant        string          `gorm:"column:merchant" json:"merchant,omitempty"`
	Category        string          `gorm:"column:category" json:"category"`
	BalanceAfter    decimal.Decimal `gorm:"column:balance_after;type:decimal(15,2)" json:"balance_after"`
	TimestampInsert time.Time       `gorm:"column:timestamp_insert" json:"timestamp_insert"`
}

// TableName overrides the GORM table name.
func (Transaction) TableName() string { return "transactions" }
