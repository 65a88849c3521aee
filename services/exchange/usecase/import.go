package usecase

import (
	"context"
	"errors"
	"io"

	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	"github.com/piresc/xpend/internal/pkg/export"
	"github.com/piresc/xpend/internal/pkg/logger"
	"github.com/piresc/xpend/internal/pkg/models"
	budgetusecase "github.com/piresc/xpend/services/budgets/usecase"
	txnusecase "github.com/piresc/xpend/services/transactions/usecase"
)

// Import parses r and records its content for userID. Every row is
// validated before anything is written. Budgets whose category the user
// already has are counted as skipped. Writes are not atomic: when a store
// call fails the counts of what was already written are returned with the
// error.
func (u *ExchangeUC) Import(ctx context.Context, userID string, format export.Format, r io.Reader) (*models.ImportResult, error) {
	data, err := decode(format, r)
	if err != nil {
		return nil, err
	}

	txnReqs := make([]*models.CreateTransactionRequest, 0, len(data.Transactions))
	for i, t := range data.Transactions {
		req := &models.CreateTransactionRequest{
			Date:          t.Date,
			Description:   t.Description,
			Category:      t.Category,
			Amount:        t.Amount,
			PaymentMethod: t.PaymentMethod,
		}
		if err := txnusecase.ValidateCreate(req); err != nil {
			return nil, apperrors.Newf(apperrors.ErrValidation, "transaction %d: %s", i+1, apperrors.Message(err))
		}
		txnReqs = append(txnReqs, req)
	}

	budgetReqs := make([]*models.CreateBudgetRequest, 0, len(data.Budgets))
	for i, b := range data.Budgets {
		req := &models.CreateBudgetRequest{Category: b.Category, Allocated: b.Allocated}
		if err := budgetusecase.ValidateCreate(req); err != nil {
			return nil, apperrors.Newf(apperrors.ErrValidation, "budget %d: %s", i+1, apperrors.Message(err))
		}
		budgetReqs = append(budgetReqs, req)
	}

	result := &models.ImportResult{}
	for _, req := range txnReqs {
		if _, err := u.txnStore.CreateTransaction(ctx, userID, req); err != nil {
			return result, u.stopped(ctx, result, err)
		}
		result.Transactions++
	}
	for _, req := range budgetReqs {
		_, err := u.budgetStore.CreateBudget(ctx, userID, req)
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			result.Skipped++
		case err != nil:
			return result, u.stopped(ctx, result, err)
		default:
			result.Budgets++
		}
	}

	logger.InfoCtx(ctx, "Import completed",
		logger.String("format", string(format)),
		logger.Int("transactions", result.Transactions),
		logger.Int("budgets", result.Budgets),
		logger.Int("skipped", result.Skipped))
	return result, nil
}

func (u *ExchangeUC) stopped(ctx context.Context, result *models.ImportResult, err error) error {
	logger.WarnCtx(ctx, "Import stopped before completion",
		logger.Int("transactions", result.Transactions),
		logger.Int("budgets", result.Budgets),
		logger.Int("skipped", result.Skipped),
		logger.ErrorField(err))
	return err
}

func decode(format export.Format, r io.Reader) (models.ExportData, error) {
	switch format {
	case export.FormatCSV:
		txns, err := export.ReadCSV(r)
		if err != nil {
			return models.ExportData{}, err
		}
		return models.ExportData{Transactions: txns}, nil
	case export.FormatJSON:
		return export.ReadJSON(r)
	default:
		return models.ExportData{}, apperrors.Newf(apperrors.ErrValidation, "unsupported import format %q", format)
	}
}
