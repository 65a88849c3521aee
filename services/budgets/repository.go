package budgets

import (
	"context"

	"github.com/piresc/xpend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/xpend/services/budgets BudgetRepo,TransactionReader

// BudgetRepo defines the budget store. Category lookups are exact,
// case-sensitive string matches.
type BudgetRepo interface {
	CreateBudget(ctx context.Context, budget *models.Budget) error
	GetBudgetByID(ctx context.Context, id string) (*models.Budget, error)
	GetBudgetByCategory(ctx context.Context, userID, category string) (*models.Budget, error)
	ListBudgets(ctx context.Context, userID string) ([]*models.Budget, error)
	UpdateBudget(ctx context.Context, budget *models.Budget) error
	DeleteBudget(ctx context.Context, id string) error
}

// TransactionReader is the part of the ledger budgets need to compute spend
type TransactionReader interface {
	ListTransactions(ctx context.Context, userID string) ([]*models.Transaction, error)
}
