package usecase

import (
	"time"

	"github.com/piresc/xpend/services/transactions"
)

// DefaultRecentLimit is used when the caller asks for a non-positive limit
const DefaultRecentLimit = 5

type TransactionUC struct {
	txnRepo transactions.TransactionRepo
	txnGW   transactions.TransactionGW
	now     func() time.Time
}

// NewTransactionUC creates a new ledger usecase instance
func NewTransactionUC(
	txnRepo transactions.TransactionRepo,
	txnGW transactions.TransactionGW,
) *TransactionUC {
	return &TransactionUC{
		txnRepo: txnRepo,
		txnGW:   txnGW,
		now:     time.Now,
	}
}
