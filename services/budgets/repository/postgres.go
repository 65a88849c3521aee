package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/xpend/internal/pkg/database"
	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	"github.com/piresc/xpend/internal/pkg/models"
)

const budgetColumns = `id, user_id, category, allocated, created_at, updated_at`

var errDuplicateBudget = apperrors.New(apperrors.ErrDuplicate, "Budget for this category already exists")

// BudgetRepo implements budgets.BudgetRepo on Postgres
type BudgetRepo struct {
	db *sqlx.DB
}

// NewBudgetRepo creates a new budget repository instance
func NewBudgetRepo(db *sqlx.DB) *BudgetRepo {
	return &BudgetRepo{db: db}
}

// CreateBudget inserts budget; the (user_id, category) constraint rejects duplicates
func (r *BudgetRepo) CreateBudget(ctx context.Context, budget *models.Budget) error {
	budget.ID = uuid.NewString()
	now := time.Now().UTC()
	budget.CreatedAt = now
	budget.UpdatedAt = now

	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES (:id, :user_id, :category, :allocated, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, budget); err != nil {
		if database.IsUniqueViolation(err) {
			return errDuplicateBudget
		}
		return apperrors.Upstream("insert budget", err)
	}
	return nil
}

// GetBudgetByID retrieves a budget regardless of owner
func (r *BudgetRepo) GetBudgetByID(ctx context.Context, id string) (*models.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE id = $1`
	return r.get(ctx, query, id)
}

// GetBudgetByCategory retrieves the budget of userID for category
func (r *BudgetRepo) GetBudgetByCategory(ctx context.Context, userID, category string) (*models.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE user_id = $1 AND category = $2`
	return r.get(ctx, query, userID, category)
}

func (r *BudgetRepo) get(ctx context.Context, query string, args ...interface{}) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.GetContext(ctx, &budget, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) || database.IsInvalidText(err) {
			return nil, apperrors.New(apperrors.ErrNotFound, "Budget not found")
		}
		return nil, apperrors.Upstream("get budget", err)
	}
	return &budget, nil
}

// ListBudgets returns the budgets of userID in creation order
func (r *BudgetRepo) ListBudgets(ctx context.Context, userID string) ([]*models.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE user_id = $1 ORDER BY created_at, id`

	budgets := []*models.Budget{}
	if err := r.db.SelectContext(ctx, &budgets, query, userID); err != nil {
		return nil, apperrors.Upstream("list budgets", err)
	}
	return budgets, nil
}

// UpdateBudget overwrites category and allocated
func (r *BudgetRepo) UpdateBudget(ctx context.Context, budget *models.Budget) error {
	budget.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE budgets
		SET category = :category, allocated = :allocated, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, budget)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return errDuplicateBudget
		}
		return apperrors.Upstream("update budget", err)
	}
	return expectOneRow(result, "update budget")
}

// DeleteBudget removes a budget by id; transactions are untouched
func (r *BudgetRepo) DeleteBudget(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		if database.IsInvalidText(err) {
			return apperrors.New(apperrors.ErrNotFound, "Budget not found")
		}
		return apperrors.Upstream("delete budget", err)
	}
	return expectOneRow(result, "delete budget")
}

func expectOneRow(result sql.Result, op string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Upstream(op, err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.ErrNotFound, "Budget not found")
	}
	return nil
}
