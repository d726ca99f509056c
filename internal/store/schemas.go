package store

import "github.com/ametelin/fintrack/models"

// Table schemas for the four resource kinds. Accounts and savings list in
// creation order; incomes and expenses list by transaction date.

// AccountSchema describes the "accounts" table.
func AccountSchema() Schema[models.Account] {
	return Schema[models.Account]{
		Table:      "accounts",
		IDColumn:   "account_id",
		Columns:    []string{"account_id", "user_id", "name", "type", "balance", "created_at"},
		SortColumn: "created_at",
		Scan: func(row RowScanner) (models.Account, error) {
			var a models.Account
			err := row.Scan(&a.AccountID, &a.UserID, &a.Name, &a.Type, &a.Balance, &a.CreatedAt)
			return a, err
		},
	}
}

// IncomeSchema describes the "incomes" table.
func IncomeSchema() Schema[models.Income] {
	return Schema[models.Income]{
		Table:      "incomes",
		IDColumn:   "income_id",
		Columns:    []string{"income_id", "user_id", "source", "amount", "date", "created_at"},
		SortColumn: "date",
		Scan: func(row RowScanner) (models.Income, error) {
			var i models.Income
			err := row.Scan(&i.IncomeID, &i.UserID, &i.Source, &i.Amount, &i.Date, &i.CreatedAt)
			return i, err
		},
	}
}

// ExpenseSchema describes the "expenses" table.
func ExpenseSchema() Schema[models.Expense] {
	return Schema[models.Expense]{
		Table:      "expenses",
		IDColumn:   "expense_id",
		Columns:    []string{"expense_id", "user_id", "category", "amount", "date", "created_at"},
		SortColumn: "date",
		Scan: func(row RowScanner) (models.Expense, error) {
			var e models.Expense
			err := row.Scan(&e.ExpenseID, &e.UserID, &e.Category, &e.Amount, &e.Date, &e.CreatedAt)
			return e, err
		},
	}
}

// SavingSchema describes the "savings" table.
func SavingSchema() Schema[models.Saving] {
	return Schema[models.Saving]{
		Table:      "savings",
		IDColumn:   "saving_id",
		Columns:    []string{"saving_id", "user_id", "goal", "amount", "date", "target_amount", "created_at"},
		SortColumn: "created_at",
		Scan: func(row RowScanner) (models.Saving, error) {
			var s models.Saving
			err := row.Scan(&s.SavingID, &s.UserID, &s.Goal, &s.Amount, &s.Date, &s.TargetAmount, &s.CreatedAt)
			return s, err
		},
	}
}
