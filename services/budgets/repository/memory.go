package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	"github.com/piresc/xpend/internal/pkg/models"
)

type storedBudget struct {
	budget models.Budget
	seq    uint64
}

// MemoryBudgetRepo is an in-process budgets.BudgetRepo used in demo mode and
// tests. It enforces the same (user, category) uniqueness as the table.
type MemoryBudgetRepo struct {
	mu      sync.RWMutex
	budgets map[string]*storedBudget
	seq     uint64
}

// NewMemoryBudgetRepo creates an empty store
func NewMemoryBudgetRepo() *MemoryBudgetRepo {
	return &MemoryBudgetRepo{budgets: make(map[string]*storedBudget)}
}

func (r *MemoryBudgetRepo) CreateBudget(_ context.Context, budget *models.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.categoryTaken(budget.UserID, budget.Category, "") {
		return errDuplicateBudget
	}
	budget.ID = uuid.NewString()
	now := time.Now().UTC()
	budget.CreatedAt = now
	budget.UpdatedAt = now

	r.seq++
	r.budgets[budget.ID] = &storedBudget{budget: *budget, seq: r.seq}
	return nil
}

func (r *MemoryBudgetRepo) GetBudgetByID(_ context.Context, id string) (*models.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.budgets[id]
	if !ok {
		return nil, apperrors.New(apperrors.ErrNotFound, "Budget not found")
	}
	budget := stored.budget
	return &budget, nil
}

func (r *MemoryBudgetRepo) GetBudgetByCategory(_ context.Context, userID, category string) (*models.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, stored := range r.budgets {
		if stored.budget.UserID == userID && stored.budget.Category == category {
			budget := stored.budget
			return &budget, nil
		}
	}
	return nil, apperrors.New(apperrors.ErrNotFound, "Budget not found")
}

func (r *MemoryBudgetRepo) ListBudgets(_ context.Context, userID string) ([]*models.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*storedBudget, 0)
	for _, stored := range r.budgets {
		if stored.budget.UserID == userID {
			matched = append(matched, stored)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].seq < matched[j].seq })

	budgets := make([]*models.Budget, 0, len(matched))
	for _, stored := range matched {
		budget := stored.budget
		budgets = append(budgets, &budget)
	}
	return budgets, nil
}

func (r *MemoryBudgetRepo) UpdateBudget(_ context.Context, budget *models.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.budgets[budget.ID]
	if !ok {
		return apperrors.New(apperrors.ErrNotFound, "Budget not found")
	}
	if r.categoryTaken(stored.budget.UserID, budget.Category, budget.ID) {
		return errDuplicateBudget
	}
	stored.budget.Category = budget.Category
	stored.budget.Allocated = budget.Allocated
	stored.budget.UpdatedAt = time.Now().UTC()
	*budget = stored.budget
	return nil
}

func (r *MemoryBudgetRepo) DeleteBudget(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.budgets[id]; !ok {
		return apperrors.New(apperrors.ErrNotFound, "Budget not found")
	}
	delete(r.budgets, id)
	return nil
}

// categoryTaken must be called with mu held
func (r *MemoryBudgetRepo) categoryTaken(userID, category, exceptID string) bool {
	for id, stored := range r.budgets {
		if id != exceptID && stored.budget.UserID == userID && stored.budget.Category == category {
			return true
		}
	}
	return false
}
