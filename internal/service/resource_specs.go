package service

import (
	"github.com/ametelin/fintrack/models"
	"github.com/shopspring/decimal"
)

// savingTargetFactor derives a default savings target from the initial
// amount when the client supplies none: target = amount * 2.5.
var savingTargetFactor = decimal.NewFromFloat(2.5)

// accountSpec: name and type required, balance defaults to zero.
func accountSpec() ResourceSpec[models.AccountInput] {
	return ResourceSpec[models.AccountInput]{
		Kind: "account",
		ValidateCreate: func(in models.AccountInput) error {
			return requireFields(
				requiredField{"name", in.Name != nil},
				requiredField{"type", in.Type != nil},
			)
		},
		CreateFields: func(in models.AccountInput) map[string]any {
			fields := map[string]any{
				"name":    *in.Name,
				"type":    *in.Type,
				"balance": decimal.Zero,
			}
			if in.Balance != nil {
				fields["balance"] = *in.Balance
			}
			return fields
		},
		UpdateFields: func(in models.AccountInput) map[string]any {
			changes := make(map[string]any)
			if in.Name != nil {
				changes["name"] = *in.Name
			}
			if in.Type != nil {
				changes["type"] = *in.Type
			}
			if in.Balance != nil {
				changes["balance"] = *in.Balance
			}
			return changes
		},
	}
}

// incomeSpec: source, amount and date all required.
func incomeSpec() ResourceSpec[models.IncomeInput] {
	return ResourceSpec[models.IncomeInput]{
		Kind: "income",
		ValidateCreate: func(in models.IncomeInput) error {
			return requireFields(
				requiredField{"source", in.Source != nil},
				requiredField{"amount", in.Amount != nil},
				requiredField{"date", in.Date != nil},
			)
		},
		CreateFields: func(in models.IncomeInput) map[string]any {
			return map[string]any{
				"source": *in.Source,
				"amount": *in.Amount,
				"date":   *in.Date,
			}
		},
		UpdateFields: func(in models.IncomeInput) map[string]any {
			changes := make(map[string]any)
			if in.Source != nil {
				changes["source"] = *in.Source
			}
			if in.Amount != nil {
				changes["amount"] = *in.Amount
			}
			if in.Date != nil {
				changes["date"] = *in.Date
			}
			return changes
		},
	}
}

// expenseSpec: category, amount and date all required.
func expenseSpec() ResourceSpec[models.ExpenseInput] {
	return ResourceSpec[models.ExpenseInput]{
		Kind: "expense",
		ValidateCreate: func(in models.ExpenseInput) error {
			return requireFields(
				requiredField{"category", in.Category != nil},
				requiredField{"amount", in.Amount != nil},
				requiredField{"date", in.Date != nil},
			)
		},
		CreateFields: func(in models.ExpenseInput) map[string]any {
			return map[string]any{
				"category": *in.Category,
				"amount":   *in.Amount,
				"date":     *in.Date,
			}
		},
		UpdateFields: func(in models.ExpenseInput) map[string]any {
			changes := make(map[string]any)
			if in.Category != nil {
				changes["category"] = *in.Category
			}
			if in.Amount != nil {
				changes["amount"] = *in.Amount
			}
			if in.Date != nil {
				changes["date"] = *in.Date
			}
			return changes
		},
	}
}

// savingSpec: goal, amount and date required. A missing target at creation
// defaults to amount * 2.5; a missing target on update stays out of the
// change set, so the stored value is preserved rather than recomputed.
func savingSpec() ResourceSpec[models.SavingInput] {
	return ResourceSpec[models.SavingInput]{
		Kind: "saving",
		ValidateCreate: func(in models.SavingInput) error {
			return requireFields(
				requiredField{"goal", in.Goal != nil},
				requiredField{"amount", in.Amount != nil},
				requiredField{"date", in.Date != nil},
			)
		},
		CreateFields: func(in models.SavingInput) map[string]any {
			fields := map[string]any{
				"goal":          *in.Goal,
				"amount":        *in.Amount,
				"date":          *in.Date,
				"target_amount": in.Amount.Mul(savingTargetFactor),
			}
			if in.TargetAmount != nil {
				fields["target_amount"] = *in.TargetAmount
			}
			return fields
		},
		UpdateFields: func(in models.SavingInput) map[string]any {
			changes := make(map[string]any)
			if in.Goal != nil {
				changes["goal"] = *in.Goal
			}
			if in.Amount != nil {
				changes["amount"] = *in.Amount
			}
			if in.Date != nil {
				changes["date"] = *in.Date
			}
			if in.TargetAmount != nil {
				changes["target_amount"] = *in.TargetAmount
			}
			return changes
		},
	}
}
