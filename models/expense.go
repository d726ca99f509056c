package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single expense record, the mirror of [Income] with a category
// label instead of a source.
type Expense struct {
	ExpenseID int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Date      Date            `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Expense model.
func (Expense) TableName() string {
	return "expenses"
}

// Owner implements [Owned].
func (e Expense) Owner() int64 {
	return e.UserID
}

// ExpenseInput carries the client-suppliable fields of an expense record.
// Category, Amount and Date are all required at creation.
type ExpenseInput struct {
	Category *string          `json:"category"`
	Amount   *decimal.Decimal `json:"amount"`
	Date     *Date            `json:"date"`
}
