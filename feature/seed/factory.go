package seed

import (
	"strings"
	"time"

	"finforge/feature/ledger/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// Factory builds fully populated entities from a randomness source and the
// configured value domains. It holds no other state, so output is fully
// determined by the faker seed.
type Factory struct {
	fake    *gofakeit.Faker
	domains Domains
}

// NewFactory creates a factory over the given faker and value domains.
func NewFactory(fake *gofakeit.Faker, domains Domains) *Factory {
	return &Factory{fake: fake, domains: domains}
}

func pick[T ~string](fake *gofakeit.Faker, options []T) T {
	return options[fake.IntRange(0, len(options)-1)]
}

// money draws a uniform value from [min, max] rounded to two decimal places.
func money(fake *gofakeit.Faker, min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(fake.Float64Range(min, max)).Round(2)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Customer builds one customer with a join date inside the configured
// historical window.
func (f *Factory) Customer(id string, insertedAt time.Time) models.Customer {
	return models.Customer{
		CustomerID:      id,
		Name:            f.fake.Name(),
		Email:           f.fake.Email(),
		Phone:           f.fake.Phone(),
		Address:         f.fake.Address().Address,
		DateJoined:      dateOnly(f.fake.DateRange(f.domains.JoinStart, f.domains.JoinEnd)),
		CustomerType:    pick(f.fake, f.domains.CustomerTypes),
		TimestampInsert: insertedAt,
	}
}

// Account builds one account for the owning customer. The creation date is
// drawn from [owner.DateJoined, now].
func (f *Factory) Account(id string, owner models.Customer, now, insertedAt time.Time) models.Account {
	return models.Account{
		AccountID:       id,
		CustomerID:      owner.CustomerID,
		AccountNumber:   f.fake.Numerify("############"),
		AccountType:     pick(f.fake, f.domains.AccountTypes),
		IBAN:            f.iban(),
		Balance:         money(f.fake, f.domains.MinBalance, f.domains.MaxBalance),
		Currency:        pick(f.fake, f.domains.Currencies),
		CreatedDate:     dateOnly(f.fake.DateRange(owner.DateJoined, now)),
		TimestampInsert: insertedAt,
	}
}

// TransactionType draws one type from the configured set.
func (f *Factory) TransactionType() models.TransactionType {
	return pick(f.fake, f.domains.TransactionTypes)
}

// Amount draws one transaction amount from the configured range.
func (f *Factory) Amount() decimal.Decimal {
	return money(f.fake, f.domains.MinAmount, f.domains.MaxAmount)
}

// Transaction builds one transaction row. The type, amount, and resulting
// balance are supplied by the caller, which threads the running balance
// through ApplyBalance in chronological order.
func (f *Factory) Transaction(id string, account models.Account, date time.Time,
	t models.TransactionType, amount, balanceAfter decimal.Decimal, insertedAt time.Time) models.Transaction {

	// Merchant only makes sense for outgoing money with a counterparty.
	var merchant string
	if t == models.TxnPayment || t == models.TxnWithdrawal {
		merchant = f.fake.Company()
	}

	category := pick(f.fake, f.domains.Categories)
	if isCredit(t) {
		category = "income"
	}

	return models.Transaction{
		TransactionID:   id,
		AccountID:       account.AccountID,
		TransactionDate: date,
		TransactionType: t,
		Amount:          amount,
		Currency:        account.Currency,
		Description:     f.fake.Sentence(4),
		Merchant:        merchant,
		Category:        category,
		BalanceAfter:    balanceAfter,
		TimestampInsert: insertedAt,
	}
}

// iban produces a GB-shaped IBAN. Purely cosmetic, no checksum.
func (f *Factory) iban() string {
	return "GB" + f.fake.Numerify("##") +
		strings.ToUpper(f.fake.LetterN(4)) +
		f.fake.Numerify("##############")
}
