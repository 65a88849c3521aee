package transactions

import (
	"context"
	"time"

	"github.com/piresc/xpend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/xpend/services/transactions TransactionUC

// TransactionUC represents the ledger and dashboard usecase interface
type TransactionUC interface {
	ListTransactions(ctx context.Context, userID string) ([]*models.Transaction, error)
	RecentTransactions(ctx context.Context, userID string, limit int) ([]*models.Transaction, error)
	CreateTransaction(ctx context.Context, userID string, req *models.CreateTransactionRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id string, req *models.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id string) error

	// dashboard
	Summary(ctx context.Context, userID string) (*models.FinancialSummary, error)
	MonthlySeries(ctx context.Context, userID string, months int, ref time.Time) ([]models.MonthlyBucket, error)
	CategoryBreakdown(ctx context.Context, userID string) ([]models.CategoryTotal, error)
}
