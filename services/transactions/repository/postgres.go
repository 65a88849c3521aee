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

const transactionColumns = `id, user_id, date, description, category, amount, payment_method, created_at, updated_at`

// TransactionRepo implements transactions.TransactionRepo on Postgres
type TransactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepo creates a new ledger repository instance
func NewTransactionRepo(db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

// CreateTransaction inserts txn, assigning its id and timestamps
func (r *TransactionRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	txn.ID = uuid.NewString()
	now := time.Now().UTC()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES (:id, :user_id, :date, :description, :category, :amount, :payment_method,
			:created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, txn); err != nil {
		return apperrors.Upstream("insert transaction", err)
	}
	return nil
}

// GetTransactionByID retrieves a transaction regardless of owner
func (r *TransactionRepo) GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	var txn models.Transaction
	if err := r.db.GetContext(ctx, &txn, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) || database.IsInvalidText(err) {
			return nil, apperrors.New(apperrors.ErrNotFound, "Transaction not found")
		}
		return nil, apperrors.Upstream("get transaction", err)
	}
	return &txn, nil
}

// ListTransactions returns every transaction of userID, newest first
func (r *TransactionRepo) ListTransactions(ctx context.Context, userID string) ([]*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + ` FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
	`
	txns := []*models.Transaction{}
	if err := r.db.SelectContext(ctx, &txns, query, userID); err != nil {
		return nil, apperrors.Upstream("list transactions", err)
	}
	return txns, nil
}

// ListRecentTransactions returns at most limit transactions, newest first
func (r *TransactionRepo) ListRecentTransactions(ctx context.Context, userID string, limit int) ([]*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + ` FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2
	`
	txns := []*models.Transaction{}
	if err := r.db.SelectContext(ctx, &txns, query, userID, limit); err != nil {
		return nil, apperrors.Upstream("list recent transactions", err)
	}
	return txns, nil
}

// UpdateTransaction overwrites the mutable fields of txn
func (r *TransactionRepo) UpdateTransaction(ctx context.Context, txn *models.Transaction) error {
	txn.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE transactions
		SET date = :date, description = :description, category = :category, amount = :amount,
			payment_method = :payment_method, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, txn)
	if err != nil {
		return apperrors.Upstream("update transaction", err)
	}
	return expectOneRow(result, "update transaction", "Transaction not found")
}

// DeleteTransaction removes a transaction by id
func (r *TransactionRepo) DeleteTransaction(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		if database.IsInvalidText(err) {
			return apperrors.New(apperrors.ErrNotFound, "Transaction not found")
		}
		return apperrors.Upstream("delete transaction", err)
	}
	return expectOneRow(result, "delete transaction", "Transaction not found")
}

func expectOneRow(result sql.Result, op, notFound string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Upstream(op, err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.ErrNotFound, notFound)
	}
	return nil
}
