package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	"github.com/piresc/xpend/internal/pkg/models"
)

var transactionRowColumns = []string{
	"id", "user_id", "date", "description", "category", "amount", "payment_method", "created_at", "updated_at",
}

func setupTransactionRepoTest(t *testing.T) (*TransactionRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })
	return NewTransactionRepo(sqlxDB), mock
}

func TestTransactionRepo_CreateTransaction(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	txn := &models.Transaction{
		UserID:      "u1",
		Date:        models.MustDate("2024-02-10"),
		Description: "Groceries",
		Category:    "Food",
		Amount:      -42.5,
	}
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(sqlmock.AnyArg(), "u1", txn.Date.Time, "Groceries", "Food", -42.5, "", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.CreateTransaction(context.Background(), txn))
	assert.NotEmpty(t, txn.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListTransactions(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	now := time.Now()
	rows := sqlmock.NewRows(transactionRowColumns).
		AddRow("t2", "u1", time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC), "Salary", "Income", []byte("3000.00"), "Bank Transfer", now, now).
		AddRow("t1", "u1", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), "Groceries", "Food", []byte("-42.50"), "Cash", now, now)
	mock.ExpectQuery("SELECT (.+) FROM transactions\\s+WHERE user_id = \\$1\\s+ORDER BY date DESC, created_at DESC").
		WithArgs("u1").
		WillReturnRows(rows)

	txns, err := repo.ListTransactions(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "t2", txns[0].ID)
	assert.Equal(t, 3000.0, txns[0].Amount)
	assert.Equal(t, -42.5, txns[1].Amount)
	assert.Equal(t, "2024-02-10", txns[1].Date.String())
	assert.Equal(t, "Cash", txns[1].PaymentMethod)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListRecentTransactions(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	mock.ExpectQuery("SELECT (.+) FROM transactions(.+)LIMIT \\$2").
		WithArgs("u1", 5).
		WillReturnRows(sqlmock.NewRows(transactionRowColumns))

	txns, err := repo.ListRecentTransactions(context.Background(), "u1", 5)
	require.NoError(t, err)
	assert.NotNil(t, txns)
	assert.Empty(t, txns)
}

func TestTransactionRepo_GetTransactionByID(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE id = \\$1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetTransactionByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestTransactionRepo_SubCentAmountsRoundTrip(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)
	now := time.Now()
	date := models.MustDate("2024-02-10")

	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE id = \\$1").
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows(transactionRowColumns).
			AddRow("t1", "u1", date.Time, "Fee", "Bank", []byte("-0.001"), "", now, now))

	txn, err := repo.GetTransactionByID(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, -0.001, txn.Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_MalformedIDIsNotFound(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)
	invalidUUID := &pq.Error{Code: "22P02", Message: `invalid input syntax for type uuid: "not-a-uuid"`}

	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE id = \\$1").
		WithArgs("not-a-uuid").
		WillReturnError(invalidUUID)
	mock.ExpectExec("DELETE FROM transactions WHERE id = \\$1").
		WithArgs("not-a-uuid").
		WillReturnError(invalidUUID)

	_, err := repo.GetTransactionByID(context.Background(), "not-a-uuid")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.False(t, errors.Is(err, apperrors.ErrUpstream))

	err = repo.DeleteTransaction(context.Background(), "not-a-uuid")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_UpdateAndDelete(t *testing.T) {
	testCases := []struct {
		name     string
		run      func(repo *TransactionRepo) error
		expect   func(mock sqlmock.Sqlmock)
		wantKind error
	}{
		{
			name: "update",
			run: func(repo *TransactionRepo) error {
				return repo.UpdateTransaction(context.Background(), &models.Transaction{ID: "t1", Amount: -10})
			},
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE transactions").WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "update missing",
			run: func(repo *TransactionRepo) error {
				return repo.UpdateTransaction(context.Background(), &models.Transaction{ID: "t1"})
			},
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE transactions").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantKind: apperrors.ErrNotFound,
		},
		{
			name: "delete",
			run: func(repo *TransactionRepo) error {
				return repo.DeleteTransaction(context.Background(), "t1")
			},
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM transactions WHERE id = \\$1").
					WithArgs("t1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "delete failure",
			run: func(repo *TransactionRepo) error {
				return repo.DeleteTransaction(context.Background(), "t1")
			},
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM transactions").
					WithArgs("t1").
					WillReturnError(errors.New("connection reset"))
			},
			wantKind: apperrors.ErrUpstream,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := setupTransactionRepoTest(t)
			tc.expect(mock)

			err := tc.run(repo)
			if tc.wantKind != nil {
				assert.True(t, errors.Is(err, tc.wantKind))
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
