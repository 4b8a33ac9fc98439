package handlers

import (
	"log/slog"

	"github.com/finapp/backend/internal/middleware"
	"github.com/finapp/backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Verifier        middleware.Verifier
	AccountSvc      accountService
	CategorySvc     categoryService
	TransactionSvc  transactionService
	BudgetSvc       budgetService
	GoalSvc         goalService
	RecurringSvc    recurringService
	StatsSvc        statsService
}
