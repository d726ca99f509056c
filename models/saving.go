package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Saving is a savings goal: an amount already put aside and a target to
// reach. When no target is supplied at creation the server derives one as
// 2.5 times the initial amount; once stored, the target is never recomputed.
type Saving struct {
	SavingID     int64           `json:"id"`
	UserID       int64           `json:"user_id"`
	Goal         string          `json:"goal"`
	Amount       decimal.Decimal `json:"amount"`
	Date         Date            `json:"date"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	CreatedAt    time.Time       `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Saving model.
func (Saving) TableName() string {
	return "savings"
}

// Owner implements [Owned].
func (s Saving) Owner() int64 {
	return s.UserID
}

// SavingInput carries the client-suppliable fields of a savings goal.
// Goal, Amount and Date are required at creation; a nil TargetAmount means
// "default it" on create and "keep the stored value" on update.
type SavingInput struct {
	Goal         *string          `json:"goal"`
	Amount       *decimal.Decimal `json:"amount"`
	Date         *Date            `json:"date"`
	TargetAmount *decimal.Decimal `json:"targetAmount"`
}
