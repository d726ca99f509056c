package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a financial container owned by a single user: a bank account,
// a wallet, a card. Balance is a plain running value; nothing in the system
// links it to income or expense records.
type Account struct {
	AccountID int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (Account) TableName() string {
	return "accounts"
}

// Owner implements [Owned].
func (a Account) Owner() int64 {
	return a.UserID
}

// AccountInput carries the client-suppliable fields of an account.
// Pointer fields distinguish "omitted" from zero values, which is what makes
// partial updates possible. Name and Type are required at creation; Balance
// defaults to zero.
type AccountInput struct {
	Name    *string          `json:"name"`
	Type    *string          `json:"type"`
	Balance *decimal.Decimal `json:"balance"`
}
