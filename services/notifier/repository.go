package notifier

import (
	"context"
	"time"

	"github.com/piresc/xpend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/xpend/services/notifier UserReader,BudgetReader,TransactionReader,AlertLog

// UserReader looks up the recipients of notifications
type UserReader interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListUsersWithBudgetAlerts(ctx context.Context) ([]*models.User, error)
}

// BudgetReader lists the budgets of a user
type BudgetReader interface {
	ListBudgets(ctx context.Context, userID string) ([]*models.Budget, error)
}

// TransactionReader lists the ledger of a user
type TransactionReader interface {
	ListTransactions(ctx context.Context, userID string) ([]*models.Transaction, error)
}

// AlertLog remembers which budgets were already alerted on a given day.
// MarkAlerted reports true only for the first call per budget and day.
// UnmarkAlerted releases the mark when delivery failed.
type AlertLog interface {
	MarkAlerted(ctx context.Context, budgetID, day string, ttl time.Duration) (bool, error)
	UnmarkAlerted(ctx context.Context, budgetID, day string) error
}
