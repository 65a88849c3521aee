package exchange

import (
	"context"

	"github.com/piresc/xpend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/xpend/services/exchange TransactionStore,BudgetStore

// TransactionStore reads and records ledger entries. The transactions
// usecase satisfies it, so imported rows go through the same validation
// and event publishing as POST /transactions.
type TransactionStore interface {
	ListTransactions(ctx context.Context, userID string) ([]*models.Transaction, error)
	CreateTransaction(ctx context.Context, userID string, req *models.CreateTransactionRequest) (*models.Transaction, error)
}

// BudgetStore reads and records budgets; the budgets usecase satisfies it
type BudgetStore interface {
	ListBudgets(ctx context.Context, userID string) ([]models.BudgetView, error)
	CreateBudget(ctx context.Context, userID string, req *models.CreateBudgetRequest) (*models.BudgetView, error)
}
