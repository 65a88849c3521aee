package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/piresc/xpend/internal/pkg/aggregate"
	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	"github.com/piresc/xpend/internal/pkg/logger"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/internal/pkg/validation"
	"golang.org/x/sync/errgroup"
)

// ListBudgets returns every budget of userID with its spent figure
func (u *BudgetUC) ListBudgets(ctx context.Context, userID string) ([]models.BudgetView, error) {
	var (
		budgetList []*models.Budget
		txns       []*models.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budgetList, err = u.budgetRepo.ListBudgets(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		txns, err = u.txnReader.ListTransactions(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return aggregate.BudgetViews(budgetList, txns), nil
}

// CreateBudget adds a budget unless userID already has one for the category
func (u *BudgetUC) CreateBudget(ctx context.Context, userID string, req *models.CreateBudgetRequest) (*models.BudgetView, error) {
	if err := ValidateCreate(req); err != nil {
		return nil, err
	}

	_, err := u.budgetRepo.GetBudgetByCategory(ctx, userID, req.Category)
	if err == nil {
		return nil, apperrors.New(apperrors.ErrDuplicate, "Budget for this category already exists")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	budget := &models.Budget{
		UserID:    userID,
		Category:  req.Category,
		Allocated: req.Allocated,
	}
	if err := u.budgetRepo.CreateBudget(ctx, budget); err != nil {
		return nil, err
	}
	return u.view(ctx, budget)
}

// ValidateCreate trims the category of req and checks the allocation
func ValidateCreate(req *models.CreateBudgetRequest) error {
	req.Category = strings.TrimSpace(req.Category)
	return validation.Struct(req)
}

// UpdateBudget changes category and/or allocated of a budget owned by userID
// and recomputes spent against the resulting category
func (u *BudgetUC) UpdateBudget(ctx context.Context, userID, id string, req *models.UpdateBudgetRequest) (*models.BudgetView, error) {
	budget, err := u.ownedBudget(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Category != nil && strings.TrimSpace(*req.Category) != "" {
		budget.Category = strings.TrimSpace(*req.Category)
	}
	if req.Allocated != nil {
		if *req.Allocated <= 0 {
			return nil, apperrors.New(apperrors.ErrValidation, "allocated must be greater than 0")
		}
		budget.Allocated = *req.Allocated
	}

	if err := u.budgetRepo.UpdateBudget(ctx, budget); err != nil {
		return nil, err
	}
	return u.view(ctx, budget)
}

// DeleteBudget removes a budget owned by userID. Transactions are kept.
func (u *BudgetUC) DeleteBudget(ctx context.Context, userID, id string) error {
	if _, err := u.ownedBudget(ctx, userID, id); err != nil {
		return err
	}
	return u.budgetRepo.DeleteBudget(ctx, id)
}

// ownedBudget loads id; missing is NotFound, foreign is NotAuthorized
func (u *BudgetUC) ownedBudget(ctx context.Context, userID, id string) (*models.Budget, error) {
	budget, err := u.budgetRepo.GetBudgetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if budget.UserID != userID {
		logger.WarnCtx(ctx, "Rejected access to another user's budget",
			logger.String("budget_id", id))
		return nil, apperrors.New(apperrors.ErrNotAuthorized, "Not authorized")
	}
	return budget, nil
}

func (u *BudgetUC) view(ctx context.Context, budget *models.Budget) (*models.BudgetView, error) {
	txns, err := u.txnReader.ListTransactions(ctx, budget.UserID)
	if err != nil {
		return nil, err
	}
	view := aggregate.NewBudgetView(budget, txns)
	return &view, nil
}
