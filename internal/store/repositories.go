package store

import (
	"github.com/ametelin/fintrack/internal/logger"
	"github.com/ametelin/fintrack/models"
)

// Repositories bundles every repository the service layer needs. The four
// resource repositories share one generic implementation and differ only in
// their [Schema].
type Repositories struct {
	Users    UserRepository
	Accounts ResourceRepository[models.Account]
	Incomes  ResourceRepository[models.Income]
	Expenses ResourceRepository[models.Expense]
	Savings  ResourceRepository[models.Saving]
}

// NewRepositories constructs all repositories on top of the shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db, logger),
		Accounts: NewResourceRepository(db, AccountSchema(), logger),
		Incomes:  NewResourceRepository(db, IncomeSchema(), logger),
		Expenses: NewResourceRepository(db, ExpenseSchema(), logger),
		Savings:  NewResourceRepository(db, SavingSchema(), logger),
	}
}
