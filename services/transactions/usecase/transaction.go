package usecase

import (
	"context"
	"strings"

	"github.com/piresc/xpend/internal/pkg/constants"
	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	"github.com/piresc/xpend/internal/pkg/logger"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/internal/pkg/validation"
)

// ListTransactions returns the requester's ledger, newest first
func (u *TransactionUC) ListTransactions(ctx context.Context, userID string) ([]*models.Transaction, error) {
	return u.txnRepo.ListTransactions(ctx, userID)
}

// RecentTransactions returns the newest limit transactions
func (u *TransactionUC) RecentTransactions(ctx context.Context, userID string, limit int) ([]*models.Transaction, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return u.txnRepo.ListRecentTransactions(ctx, userID, limit)
}

// CreateTransaction validates req and records it for userID
func (u *TransactionUC) CreateTransaction(ctx context.Context, userID string, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	if err := ValidateCreate(req); err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		UserID:        userID,
		Date:          req.Date,
		Description:   req.Description,
		Category:      req.Category,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	}
	if err := u.txnRepo.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}

	u.publish(ctx, constants.SubjectTransactionCreated, txn)
	return txn, nil
}

// ValidateCreate trims the text fields of req and checks that date,
// description, category and a non-zero amount are present
func ValidateCreate(req *models.CreateTransactionRequest) error {
	req.Description = strings.TrimSpace(req.Description)
	req.Category = strings.TrimSpace(req.Category)
	req.PaymentMethod = strings.TrimSpace(req.PaymentMethod)
	if req.Date.IsZero() {
		return apperrors.New(apperrors.ErrValidation, "date is required")
	}
	if err := validation.Struct(req); err != nil {
		return err
	}
	if req.Amount == 0 {
		return apperrors.New(apperrors.ErrValidation, "amount must be non-zero")
	}
	return nil
}

// UpdateTransaction applies the provided fields of req after checking that
// userID owns the transaction
func (u *TransactionUC) UpdateTransaction(ctx context.Context, userID, id string, req *models.UpdateTransactionRequest) (*models.Transaction, error) {
	txn, err := u.ownedTransaction(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil && !req.Date.IsZero() {
		txn.Date = *req.Date
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) != "" {
		txn.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil && strings.TrimSpace(*req.Category) != "" {
		txn.Category = strings.TrimSpace(*req.Category)
	}
	if req.Amount != nil {
		if *req.Amount == 0 {
			return nil, apperrors.New(apperrors.ErrValidation, "amount must be non-zero")
		}
		txn.Amount = *req.Amount
	}
	if req.PaymentMethod != nil && strings.TrimSpace(*req.PaymentMethod) != "" {
		txn.PaymentMethod = strings.TrimSpace(*req.PaymentMethod)
	}

	if err := u.txnRepo.UpdateTransaction(ctx, txn); err != nil {
		return nil, err
	}

	u.publish(ctx, constants.SubjectTransactionUpdated, txn)
	return txn, nil
}

// DeleteTransaction removes a transaction owned by userID
func (u *TransactionUC) DeleteTransaction(ctx context.Context, userID, id string) error {
	txn, err := u.ownedTransaction(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := u.txnRepo.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	u.publish(ctx, constants.SubjectTransactionDeleted, txn)
	return nil
}

// ownedTransaction loads id and rejects it when userID is not the owner.
// A missing id is NotFound for every caller.
func (u *TransactionUC) ownedTransaction(ctx context.Context, userID, id string) (*models.Transaction, error) {
	txn, err := u.txnRepo.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn.UserID != userID {
		logger.WarnCtx(ctx, "Rejected access to another user's transaction",
			logger.String("transaction_id", id))
		return nil, apperrors.New(apperrors.ErrNotAuthorized, "Not authorized")
	}
	return txn, nil
}

// publish logs and drops broker failures
func (u *TransactionUC) publish(ctx context.Context, subject string, txn *models.Transaction) {
	event := &models.TransactionEvent{
		Type:          subject,
		UserID:        txn.UserID,
		TransactionID: txn.ID,
		Category:      txn.Category,
		Amount:        txn.Amount,
		OccurredAt:    u.now().UTC(),
	}
	if err := u.txnGW.PublishTransactionEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish transaction event",
			logger.String("subject", subject),
			logger.String("transaction_id", txn.ID),
			logger.ErrorField(err))
	}
}
