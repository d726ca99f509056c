package service

import (
	"github.com/ametelin/fintrack/internal/config"
	"github.com/ametelin/fintrack/internal/logger"
	"github.com/ametelin/fintrack/internal/store"
	"github.com/ametelin/fintrack/models"
)

// Services bundles every service the transport layer needs.
type Services struct {
	Auth     AuthService
	Accounts ResourceService[models.Account, models.AccountInput]
	Incomes  ResourceService[models.Income, models.IncomeInput]
	Expenses ResourceService[models.Expense, models.ExpenseInput]
	Savings  ResourceService[models.Saving, models.SavingInput]
}

// NewServices constructs the auth service and the four resource services on
// top of the given repositories.
func NewServices(repos *store.Repositories, cfg config.Auth, logger *logger.Logger) *Services {
	logger.Info().Msg("creating services...")

	return &Services{
		Auth:     NewAuthService(repos.Users, cfg, logger),
		Accounts: NewResourceService(repos.Accounts, accountSpec(), logger),
		Incomes:  NewResourceService(repos.Incomes, incomeSpec(), logger),
		Expenses: NewResourceService(repos.Expenses, expenseSpec(), logger),
		Savings:  NewResourceService(repos.Savings, savingSpec(), logger),
	}
}
