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

type storedTransaction struct {
	txn models.Transaction
	seq uint64
}

// MemoryTransactionRepo is an in-process transactions.TransactionRepo used in
// demo mode and tests
type MemoryTransactionRepo struct {
	mu   sync.RWMutex
	txns map[string]*storedTransaction
	seq  uint64
}

// NewMemoryTransactionRepo creates an empty ledger
func NewMemoryTransactionRepo() *MemoryTransactionRepo {
	return &MemoryTransactionRepo{txns: make(map[string]*storedTransaction)}
}

func (r *MemoryTransactionRepo) CreateTransaction(_ context.Context, txn *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	txn.ID = uuid.NewString()
	now := time.Now().UTC()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	r.seq++
	r.txns[txn.ID] = &storedTransaction{txn: *txn, seq: r.seq}
	return nil
}

func (r *MemoryTransactionRepo) GetTransactionByID(_ context.Context, id string) (*models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.txns[id]
	if !ok {
		return nil, apperrors.New(apperrors.ErrNotFound, "Transaction not found")
	}
	txn := stored.txn
	return &txn, nil
}

func (r *MemoryTransactionRepo) ListTransactions(_ context.Context, userID string) ([]*models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(userID, 0), nil
}

func (r *MemoryTransactionRepo) ListRecentTransactions(_ context.Context, userID string, limit int) ([]*models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(userID, limit), nil
}

func (r *MemoryTransactionRepo) UpdateTransaction(_ context.Context, txn *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.txns[txn.ID]
	if !ok {
		return apperrors.New(apperrors.ErrNotFound, "Transaction not found")
	}
	txn.CreatedAt = stored.txn.CreatedAt
	txn.UpdatedAt = time.Now().UTC()
	stored.txn = *txn
	return nil
}

func (r *MemoryTransactionRepo) DeleteTransaction(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.txns[id]; !ok {
		return apperrors.New(apperrors.ErrNotFound, "Transaction not found")
	}
	delete(r.txns, id)
	return nil
}

// list must be called with mu held; limit <= 0 means no limit
func (r *MemoryTransactionRepo) list(userID string, limit int) []*models.Transaction {
	matched := make([]*storedTransaction, 0)
	for _, stored := range r.txns {
		if stored.txn.UserID == userID {
			matched = append(matched, stored)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.txn.Date.Equal(b.txn.Date.Time) {
			return a.txn.Date.After(b.txn.Date.Time)
		}
		return a.seq > b.seq
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	txns := make([]*models.Transaction, 0, len(matched))
	for _, stored := range matched {
		txn := stored.txn
		txns = append(txns, &txn)
	}
	return txns
}
