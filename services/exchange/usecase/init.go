package usecase

import (
	"github.com/piresc/xpend/services/exchange"
)

type ExchangeUC struct {
	txnStore    exchange.TransactionStore
	budgetStore exchange.BudgetStore
}

// NewExchangeUC creates a new export/import usecase instance
func NewExchangeUC(txnStore exchange.TransactionStore, budgetStore exchange.BudgetStore) *ExchangeUC {
	return &ExchangeUC{
		txnStore:    txnStore,
		budgetStore: budgetStore,
	}
}
