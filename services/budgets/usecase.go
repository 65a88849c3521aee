package budgets

import (
	"context"

	"github.com/piresc/xpend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/xpend/services/budgets BudgetUC

// BudgetUC represents the budget usecase interface
type BudgetUC interface {
	ListBudgets(ctx context.Context, userID string) ([]models.BudgetView, error)
	CreateBudget(ctx context.Context, userID string, req *models.CreateBudgetRequest) (*models.BudgetView, error)
	UpdateBudget(ctx context.Context, userID, id string, req *models.UpdateBudgetRequest) (*models.BudgetView, error)
	DeleteBudget(ctx context.Context, userID, id string) error
}
