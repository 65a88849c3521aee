package usecase

import (
	"context"
	"time"

	"github.com/piresc/xpend/internal/pkg/aggregate"
	"github.com/piresc/xpend/internal/pkg/models"
)

// Summary computes income, expenses and savings over the whole ledger
func (u *TransactionUC) Summary(ctx context.Context, userID string) (*models.FinancialSummary, error) {
	txns, err := u.txnRepo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := aggregate.Summarize(txns)
	return &summary, nil
}

// MonthlySeries buckets the ledger into months calendar months ending at
// ref. A zero ref means the current month.
func (u *TransactionUC) MonthlySeries(ctx context.Context, userID string, months int, ref time.Time) ([]models.MonthlyBucket, error) {
	if months <= 0 {
		months = aggregate.DefaultMonths
	}
	if ref.IsZero() {
		ref = u.now()
	}

	txns, err := u.txnRepo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	return aggregate.MonthlySeries(txns, months, ref), nil
}

// CategoryBreakdown totals expenses per category
func (u *TransactionUC) CategoryBreakdown(ctx context.Context, userID string) ([]models.CategoryTotal, error) {
	txns, err := u.txnRepo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	return aggregate.CategoryBreakdown(txns), nil
}
