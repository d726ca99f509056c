package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is a single income record. Date is the transaction date supplied by
// the client, distinct from the CreatedAt bookkeeping timestamp.
type Income struct {
	IncomeID  int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Source    string          `json:"source"`
	Amount    decimal.Decimal `json:"amount"`
	Date      Date            `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Income model.
func (Income) TableName() string {
	return "incomes"
}

// Owner implements [Owned].
func (i Income) Owner() int64 {
	return i.UserID
}

// IncomeInput carries the client-suppliable fields of an income record.
// Source, Amount and Date are all required at creation.
type IncomeInput struct {
	Source *string          `json:"source"`
	Amount *decimal.Decimal `json:"amount"`
	Date   *Date            `json:"date"`
}
