package transactions

import (
	"context"

	"github.com/piresc/xpend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/xpend/services/transactions TransactionRepo

// TransactionRepo defines the ledger store. Lists are ordered newest first:
// date descending, then creation time descending.
type TransactionRepo interface {
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, userID string) ([]*models.Transaction, error)
	ListRecentTransactions(ctx context.Context, userID string, limit int) ([]*models.Transaction, error)
	UpdateTransaction(ctx context.Context, txn *models.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
}
