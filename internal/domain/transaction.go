// internal/domain/transaction.go
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType defines the kind of a financial transaction. Negative or
// outflow semantics are expressed via the type, never via the amount's sign.
type TransactionType string

const (
	TransactionTypeIncome     TransactionType = "income"
	TransactionTypeExpense    TransactionType = "expense"
	TransactionTypeSavings    TransactionType = "savings"
	TransactionTypeInvestment TransactionType = "investment"
)

// TransactionTypes lists the valid types in a fixed order.
var TransactionTypes = []TransactionType{
	TransactionTypeIncome,
	TransactionTypeExpense,
	TransactionTypeSavings,
	TransactionTypeInvestment,
}

// Valid reports whether t is one of the fixed enum values.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeSavings, TransactionTypeInvestment:
		return true
	}
	return false
}

// Transaction represents a single monetary record owned by a user.
// UserID is immutable after creation; every read, update and delete must
// filter by both the transaction id and the owning user id.
type Transaction struct {
	ID          int64           `db:"id" json:"id"`
	UserID      int64           `db:"user_id" json:"user_id"`
	Type        TransactionType `db:"type" json:"type"`
	Category    string          `db:"category" json:"category"`
	Amount      Amount          `db:"amount" json:"amount"` // strictly positive, NUMERIC(10, 2) in DB
	Date        Date            `db:"date" json:"date"`
	Description string          `db:"description" json:"description"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// NewTransaction creates a new Transaction instance owned by userID.
func NewTransaction(userID int64, txType TransactionType, category string, amount Amount, date Date, description string) *Transaction {
	return &Transaction{
		UserID:      userID,
		Type:        txType,
		Category:    category,
		Amount:      amount,
		Date:        date,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now().UTC(),
	}
}

// TransactionFilter narrows a listing to the transactions matching every
// supplied predicate. Nil/empty fields are not applied.
type TransactionFilter struct {
	Type      TransactionType
	Category  string
	StartDate *Date // inclusive
	EndDate   *Date // inclusive
}

// TransactionPatch carries a partial update. Nil fields retain their prior
// values; supplied fields are re-validated against the creation rules and
// the whole patch is applied all-or-nothing.
type TransactionPatch struct {
	Type        *string `json:"type"`
	Category    *string `json:"category"`
	Amount      *Amount `json:"amount"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
}

// Summary aggregates a user's transactions by type.
//
// Balance is total income minus expenses, savings and investments: savings
// and investments count as money moved out of the spendable balance, not as
// assets. This mirrors the product's intent and can surprise users expecting
// a net-worth view.
type Summary struct {
	TotalIncome      Amount `json:"total_income"`
	TotalExpense     Amount `json:"total_expense"`
	TotalSavings     Amount `json:"total_savings"`
	TotalInvestment  Amount `json:"total_investment"`
	Balance          Amount `json:"balance"`
	TransactionCount int64  `json:"transaction_count"`
}

// NewSummary builds a Summary from per-type sums, computing the balance.
func NewSummary(sums map[TransactionType]decimal.Decimal, count int64) *Summary {
	income := sums[TransactionTypeIncome]
	expense := sums[TransactionTypeExpense]
	savings := sums[TransactionTypeSavings]
	investment := sums[TransactionTypeInvestment]
	balance := income.Sub(expense).Sub(savings).Sub(investment)

	return &Summary{
		TotalIncome:      NewAmount(income),
		TotalExpense:     NewAmount(expense),
		TotalSavings:     NewAmount(savings),
		TotalInvestment:  NewAmount(investment),
		Balance:          NewAmount(balance),
		TransactionCount: count,
	}
}

// CategoryTotal is one row of the by-category aggregation.
type CategoryTotal struct {
	Category string `db:"category" json:"category"`
	Total    Amount `db:"total" json:"total"`
}
