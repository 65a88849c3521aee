package usecase

import (
	"context"
	"io"

	"github.com/piresc/xpend/internal/pkg/export"
	"github.com/piresc/xpend/internal/pkg/models"
	"golang.org/x/sync/errgroup"
)

// ExportCSV writes the ledger of userID as CSV, newest first
func (u *ExchangeUC) ExportCSV(ctx context.Context, userID string, w io.Writer) error {
	txns, err := u.txnStore.ListTransactions(ctx, userID)
	if err != nil {
		return err
	}
	return export.WriteCSV(w, txns)
}

// ExportJSON collects the ledger and budget views of userID
func (u *ExchangeUC) ExportJSON(ctx context.Context, userID string) (*models.ExportData, error) {
	data := &models.ExportData{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.Transactions, err = u.txnStore.ListTransactions(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		data.Budgets, err = u.budgetStore.ListBudgets(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}
